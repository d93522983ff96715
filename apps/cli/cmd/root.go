package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/rest/packages/command"
	"github.com/abdul-hamid-achik/rest/packages/core/config"
	"github.com/abdul-hamid-achik/rest/packages/core/failure"
	"github.com/abdul-hamid-achik/rest/packages/core/session"
	"github.com/abdul-hamid-achik/rest/packages/http"
	"github.com/abdul-hamid-achik/rest/packages/output"
	"github.com/abdul-hamid-achik/rest/packages/prompt"
	"github.com/abdul-hamid-achik/rest/packages/request"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

type rootFlags struct {
	timeout           time.Duration
	insecure          bool
	proxy             string
	noFollowRedirects bool
	maxRedirects      int
	anyStatus         bool
	noColor           bool
	verbose           bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "rest <command>",
		Short: "REST client in the terminal",
		Long: `rest is an interactive HTTP client. Pick a method and answer the
prompts for URL, headers and body; the response is printed as JSON or
as an HTTP/1.1 message.

Examples:
  rest get
  rest post --timeout 5s
  rest delete -k --proxy http://localhost:8080
  rest help`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, flags)
		},
	}

	bindFlags(cmd, flags)
	cmd.SetFlagErrorFunc(reportFlagError)

	cmd.Version = version
	cmd.SetVersionTemplate(fmt.Sprintf("rest version {{.Version}}\nBuilt: %s\n", buildTime))

	return cmd
}

func bindFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().DurationVar(&flags.timeout, "timeout", http.DefaultTimeout, "Request timeout (e.g., 30s, 1m)")
	cmd.Flags().BoolVarP(&flags.insecure, "insecure", "k", false, "Disable SSL certificate validation")
	cmd.Flags().StringVar(&flags.proxy, "proxy", "", "Proxy URL for HTTP requests")
	cmd.Flags().BoolVar(&flags.noFollowRedirects, "no-follow-redirects", false, "Do not follow redirects")
	cmd.Flags().IntVar(&flags.maxRedirects, "max-redirects", http.DefaultMaxRedirects, "Maximum number of redirects to follow")
	cmd.Flags().BoolVar(&flags.anyStatus, "any-status", false, "Print 4xx and 5xx responses instead of reporting them as errors")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log request details to stderr")
}

func Execute(v, bt string) {
	version = v
	buildTime = bt

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(ExitUsageError)
	}
}

// reportFlagError treats anything cobra cannot parse as a bad argument: an
// unknown dash-prefixed token is an unknown command, any other flag error is
// reported as is. Both end with the usage text and a zero exit code.
func reportFlagError(cmd *cobra.Command, err error) error {
	if token := unknownFlagToken(err.Error()); token != "" {
		reportArgumentError(cmd, failure.Newf(failure.KindArgument, "command %q doesn't exist", token))
		return nil
	}
	reportArgumentError(cmd, failure.Wrap(err, failure.KindArgument, "invalid flag"))
	return nil
}

// unknownFlagToken extracts the offending token from pflag's
// "unknown flag: --x" and "unknown shorthand flag: 'x' in -xyz" errors.
func unknownFlagToken(msg string) string {
	switch {
	case strings.HasPrefix(msg, "unknown flag: "):
		return strings.TrimPrefix(msg, "unknown flag: ")
	case strings.HasPrefix(msg, "unknown shorthand flag: "):
		if i := strings.LastIndex(msg, " in "); i >= 0 {
			return msg[i+len(" in "):]
		}
	}
	return ""
}

func reportArgumentError(cmd *cobra.Command, err error) {
	console := output.NewConsole(output.WithWriter(cmd.OutOrStdout()))
	console.Error(err)
	console.Usage(command.UsageText)
}

// configFromFlags overlays the flags the user set on the defaults.
func configFromFlags(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	override := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("timeout") {
		override.Timeout = flags.timeout
	}
	if changed("max-redirects") {
		override.MaxRedirects = flags.maxRedirects
	}
	override.Proxy = flags.proxy
	if changed("insecure") {
		override.ValidateSSL = config.BoolPtr(!flags.insecure)
	}
	if changed("no-follow-redirects") {
		override.FollowRedirects = config.BoolPtr(!flags.noFollowRedirects)
	}
	if changed("any-status") {
		override.AcceptAnyStatus = config.BoolPtr(flags.anyStatus)
	}
	if changed("no-color") {
		override.NoColor = config.BoolPtr(flags.noColor)
	}
	if changed("verbose") {
		override.Verbose = config.BoolPtr(flags.verbose)
	}

	cfg := config.DefaultConfig().Merge(override)
	// Merge skips zero values; an explicit zero still counts
	if changed("timeout") {
		cfg.Timeout = flags.timeout
	}
	if changed("max-redirects") {
		cfg.MaxRedirects = flags.maxRedirects
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    cfg.GetNoColor(),
	})
	log.SetLevel(logrus.WarnLevel)
	if cfg.GetVerbose() {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func runRoot(cmd *cobra.Command, args []string, flags *rootFlags) error {
	cfg, err := configFromFlags(cmd, flags)
	if err != nil {
		reportArgumentError(cmd, failure.Wrap(err, failure.KindArgument, "invalid flag"))
		return nil
	}

	log := newLogger(cfg, cmd.ErrOrStderr())
	console := output.NewConsole(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithNoColor(cfg.GetNoColor()),
	)
	seq := prompt.NewSequencer(cmd.InOrStdin(), console.Writer())

	client := http.NewClient(
		http.WithTimeout(cfg.Timeout),
		http.WithFollowRedirects(cfg.GetFollowRedirects()),
		http.WithMaxRedirects(cfg.MaxRedirects),
		http.WithValidateSSL(cfg.GetValidateSSL()),
		http.WithProxy(cfg.Proxy),
		http.WithAcceptAnyStatus(cfg.GetAcceptAnyStatus()),
		http.WithDefaultHeader("User-Agent", "rest/"+version),
		http.WithLogger(log),
	)

	s := session.New(
		request.NewAssembler(seq, request.WithLogger(log)),
		client,
		output.NewRenderer(console, seq),
		session.WithLogger(log),
	)

	// errors are already reported with the usage text
	_ = command.NewDispatcher(args, s, console, command.WithLogger(log)).Dispatch(cmd.Context())
	return nil
}
