package arith

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Session is the interactive read loop: one expression per line, an empty
// line or end of input ends it.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer

	prompt string
	format Format
	style  DiagnosticStyle
	log    zerolog.Logger
}

type Stats struct {
	Accepted int
	Rejected int
}

type SessionOption func(*Session)

func WithPrompt(prompt string) SessionOption {
	return func(s *Session) { s.prompt = prompt }
}

func WithFormat(format Format) SessionOption {
	return func(s *Session) { s.format = format }
}

func WithStyle(style DiagnosticStyle) SessionOption {
	return func(s *Session) { s.style = style }
}

func WithLogger(log zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = log }
}

func NewSession(in io.Reader, out, errOut io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
		prompt: "> ",
		format: FormatDebug,
		style:  PlainStyle,
		log:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	s.log.Info().Str("format", string(s.format)).Msg("session started")
	defer func() {
		s.log.Info().Int("accepted", stats.Accepted).Int("rejected", stats.Rejected).Msg("session ended")
	}()

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if _, err := io.WriteString(s.out, s.prompt); err != nil {
			return stats, fmt.Errorf("write prompt: %w", err)
		}

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return stats, fmt.Errorf("read line: %w", err)
			}

			return stats, nil
		}

		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			return stats, nil
		}

		ok, err := s.Eval(line)
		if err != nil {
			return stats, err
		}

		if ok {
			stats.Accepted++
		} else {
			stats.Rejected++
		}
	}
}

// Eval parses one line and reports the outcome. The returned bool is false
// when the line had syntax errors; the error is only set when writing the
// result failed.
func (s *Session) Eval(line string) (bool, error) {
	expr, errs := Parse(line)
	if len(errs) != 0 {
		s.log.Debug().Str("line", line).Int("errors", len(errs)).Msg("rejected")

		for _, e := range errs {
			if _, err := fmt.Fprintln(s.errOut, Diagnostic(line, e, s.style)); err != nil {
				return false, fmt.Errorf("write diagnostic: %w", err)
			}
		}

		return false, nil
	}

	s.log.Debug().Str("line", line).Stringer("ast", expr).Msg("parsed")

	if err := Encode(s.out, expr, s.format); err != nil {
		return true, fmt.Errorf("encode %s: %w", s.format, err)
	}

	return true, nil
}
