package command

import (
	"context"

	"github.com/abdul-hamid-achik/rest/packages/core/failure"
	"github.com/sirupsen/logrus"
)

// UsageText is printed for help and after every error
const UsageText = `
    REST Client in CLI is faster to open than the one with UI

    usage:
        rest <command>

        commands can be:

        get:        makes get request
        post:       makes post request
        put:        makes put request
        patch:      makes patch request
        delete:     makes delete request
        help:       shows this guide
    `

// Runner executes one request session for a request command.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// Reporter prints errors and usage to the user.
type Reporter interface {
	Error(err error)
	Usage(text string)
}

type Dispatcher struct {
	args     []string
	runner   Runner
	reporter Reporter
	log      logrus.FieldLogger
}

type DispatcherOption func(*Dispatcher)

func WithLogger(log logrus.FieldLogger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// NewDispatcher binds the positional arguments read once at startup.
func NewDispatcher(args []string, runner Runner, reporter Reporter, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		args:     append([]string(nil), args...),
		runner:   runner,
		reporter: reporter,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch parses the arguments and runs the selected command. Errors are
// reported with the usage text and then returned; they never need to change
// the exit status.
func (d *Dispatcher) Dispatch(ctx context.Context) error {
	cmd, err := Parse(d.args)
	if err != nil {
		d.fail(err)
		return err
	}

	d.log.WithField("command", cmd.String()).Debug("dispatching")

	if err := d.route(ctx, cmd); err != nil {
		d.fail(err)
		return err
	}
	return nil
}

func (d *Dispatcher) route(ctx context.Context, cmd Command) error {
	switch cmd {
	case Help:
		d.reporter.Usage(UsageText)
		return nil
	case Get, Post, Put, Patch, Delete:
		return d.runner.Run(ctx, cmd)
	default:
		return failure.Newf(failure.KindArgument, "unsupported command %d", int(cmd))
	}
}

func (d *Dispatcher) fail(err error) {
	d.log.WithError(err).Debug("command failed")
	d.reporter.Error(err)
	d.reporter.Usage(UsageText)
}
