// Package feedback renders answer feedback: emphasis, terminal bell and
// speech. Renderers are best-effort; the returned error is for logging only.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"golang.org/x/text/message"

	"github.com/remaimber-it/kuku/internal/grader"
	"github.com/remaimber-it/kuku/internal/i18n"
)

// Renderer shows the message for a graded answer.
type Renderer interface {
	Render(ctx context.Context, outcome grader.Outcome, msg string) error
}

// Plain prints the message on its own line with no emphasis or sound.
type Plain struct {
	out io.Writer
}

// NewPlain creates a Plain renderer.
func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

func (p *Plain) Render(_ context.Context, _ grader.Outcome, msg string) error {
	_, err := fmt.Fprintln(p.out, msg)
	return err
}

// Terminal colours the message, rings the bell on incorrect answers and
// announces them through its Speaker. A nil Speaker disables speech.
type Terminal struct {
	out     io.Writer
	styler  Styler
	speaker Speaker
	printer *message.Printer
}

// NewTerminal creates a Terminal renderer.
func NewTerminal(out io.Writer, styler Styler, speaker Speaker, printer *message.Printer) *Terminal {
	return &Terminal{
		out:     out,
		styler:  styler,
		speaker: speaker,
		printer: printer,
	}
}

func (t *Terminal) Render(ctx context.Context, outcome grader.Outcome, msg string) error {
	if outcome == grader.Correct {
		_, err := fmt.Fprintln(t.out, t.styler.Paint(msg, Green, Bold))
		return err
	}

	if _, err := fmt.Fprintln(t.out, Bell+t.styler.Paint(msg, Red, Bold)); err != nil {
		return err
	}

	if t.speaker == nil {
		return nil
	}
	err := t.speaker.Speak(ctx, msg)
	switch {
	case errors.Is(err, exec.ErrNotFound):
		fmt.Fprintln(t.out, t.printer.Sprintf(i18n.SpeechNotFound, t.speaker.Name()))
	case errors.Is(err, ErrSpeechUnavailable):
		fmt.Fprintln(t.out, t.printer.Sprintf(i18n.SpeechFailed, t.speaker.Name()))
	}
	return err
}

var (
	_ Renderer = (*Plain)(nil)
	_ Renderer = (*Terminal)(nil)
)
