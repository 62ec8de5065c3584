package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"subway-simulation/internal/platform/obs"
	"subway-simulation/internal/ports"

	"github.com/sirupsen/logrus"
)

const Welcome = "Welcome to the subway simulation!"

// Session is the interactive command loop.
//
// Input lines and expired journey timers are handled on the goroutine that
// calls Run, one at a time, so a command never interleaves with a timer
// callback.
type Session struct {
	handler   Handler
	scheduler ports.EventLoopScheduler
	out       *Printer
	logger    logrus.FieldLogger
	prompt    bool
}

func NewSession(
	handler Handler,
	scheduler ports.EventLoopScheduler,
	out *Printer,
	logger logrus.FieldLogger,
	prompt bool,
) *Session {
	return &Session{
		handler:   handler,
		scheduler: scheduler,
		out:       out,
		logger:    logger,
		prompt:    prompt,
	}
}

// Run reads commands from in until "stop" or ctx is done. At end of input
// it keeps delivering timers until the journey under way has arrived.
// Only a read failure is returned as an error.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func(lines chan<- string) {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- sc.Err()
	}(lines)

	s.out.Announce(Welcome)
	s.showPrompt()

	var seq uint64
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session interrupted")
			return nil

		case f := <-s.scheduler.Fired():
			s.scheduler.Dispatch(f)
			if lines == nil && s.scheduler.Pending() == 0 {
				s.logger.Info("journey finished after end of input")
				return nil
			}

		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("session: read input: %w", err)
				}
				// A scheduler that never delivers cannot be drained.
				if s.scheduler.Pending() == 0 || s.scheduler.Fired() == nil {
					s.logger.Info("end of input")
					return nil
				}
				s.logger.Info("end of input, waiting for the train to arrive")
				lines = nil
				continue
			}

			seq++
			outcome := s.handler.Handle(obs.WithCommandID(ctx, seq), Parse(line))
			for _, l := range outcome.Lines {
				s.out.Announce(l)
			}
			if outcome.Stop {
				return nil
			}
			s.showPrompt()
		}
	}
}

func (s *Session) showPrompt() {
	if s.prompt {
		s.out.prompt()
	}
}
