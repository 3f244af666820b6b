package feedback

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrSpeechUnavailable is returned when the speech command cannot be launched.
var ErrSpeechUnavailable = errors.New("speech synthesis unavailable")

// Speaker announces a message audibly.
type Speaker interface {
	Speak(ctx context.Context, text string) error
	Name() string
}

// SayCommand speaks through an external command invoked as
// `<Command> -v <Voice> <text>`. It blocks until the command exits.
type SayCommand struct {
	Command string
	Voice   string
}

// NewSayCommand creates a SayCommand.
func NewSayCommand(command, voice string) *SayCommand {
	return &SayCommand{Command: command, Voice: voice}
}

func (s *SayCommand) Name() string {
	return s.Command
}

// Speak runs the command. A non-zero exit status is not an error; only a
// failure to start the process is.
func (s *SayCommand) Speak(ctx context.Context, text string) error {
	args := []string{}
	if s.Voice != "" {
		args = append(args, "-v", s.Voice)
	}
	args = append(args, text)

	err := exec.CommandContext(ctx, s.Command, args...).Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrSpeechUnavailable, s.Command, err)
}
