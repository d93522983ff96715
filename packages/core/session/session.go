package session

import (
	"context"

	"github.com/abdul-hamid-achik/rest/packages/command"
	"github.com/abdul-hamid-achik/rest/packages/http"
	"github.com/abdul-hamid-achik/rest/packages/request"
	"github.com/sirupsen/logrus"
)

type Assembler interface {
	Assemble(method command.Command) (*request.Descriptor, error)
}

type Transport interface {
	Send(ctx context.Context, d *request.Descriptor) (*http.Response, error)
}

type Renderer interface {
	Render(resp *http.Response) error
}

type Session struct {
	assembler Assembler
	transport Transport
	renderer  Renderer
	log       logrus.FieldLogger
}

type Option func(*Session)

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = log
	}
}

func New(assembler Assembler, transport Transport, renderer Renderer, opts ...Option) *Session {
	s := &Session{
		assembler: assembler,
		transport: transport,
		renderer:  renderer,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run implements command.Runner.
func (s *Session) Run(ctx context.Context, cmd command.Command) error {
	log := s.log.WithField("command", cmd.String())

	log.Debug("stage: assemble")
	d, err := s.assembler.Assemble(cmd)
	if err != nil {
		return err
	}

	log.Debug("stage: send")
	resp, err := s.transport.Send(ctx, d)
	if err != nil {
		return err
	}

	log.Debug("stage: render")
	return s.renderer.Render(resp)
}
