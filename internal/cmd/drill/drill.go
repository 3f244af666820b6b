// Package drill wires configuration, logging and the quiz engine into a
// runnable command shared by both drill executables.
package drill

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	practicesession "github.com/remaimber-it/kuku/internal/domain/practice_session"
	"github.com/remaimber-it/kuku/internal/domain/questionbank"
	"github.com/remaimber-it/kuku/internal/feedback"
	"github.com/remaimber-it/kuku/internal/grader"
	"github.com/remaimber-it/kuku/internal/i18n"
	"github.com/remaimber-it/kuku/internal/infrastructure/config"
	"github.com/remaimber-it/kuku/internal/input"
	"github.com/remaimber-it/kuku/internal/service"
)

// Options overrides collaborators for tests.
type Options struct {
	Speaker feedback.Speaker // nil = SayCommand from config
	Rand    *rand.Rand
}

// Run plays one drill of the given mode on stdin/stdout. Diagnostics go to
// stderr as JSON.
func Run(ctx context.Context, cfg *config.Config, mode practicesession.Mode, stdin io.Reader, stdout, stderr io.Writer, opts Options) (service.Summary, error) {
	if cfg == nil {
		return service.Summary{}, errors.New("config is required")
	}
	sessionConfig, err := practicesession.ConfigFor(mode)
	if err != nil {
		return service.Summary{}, err
	}

	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	printer := i18n.NewPrinter(cfg.Locale)

	// ── Presentation ────────────────────────────────────────────────
	var (
		styler   feedback.Styler
		renderer feedback.Renderer
	)
	if sessionConfig.Feedback {
		styler = feedback.Styler{Enabled: feedback.ColorEnabled(cfg.Color, stdout)}
		speaker := opts.Speaker
		if speaker == nil && cfg.SpeechEnabled {
			speaker = feedback.NewSayCommand(cfg.SpeechCommand, cfg.SpeechVoice)
		}
		renderer = feedback.NewTerminal(stdout, styler, speaker, printer)
	} else {
		renderer = feedback.NewPlain(stdout)
	}

	// ── Input policy ────────────────────────────────────────────────
	var reader input.Reader
	if sessionConfig.RetryInput {
		reader = input.NewRetryingParse(stdin, stdout, func(reason input.Rejection) {
			key := i18n.InputNotNumber
			if reason == input.RejectedEmpty {
				key = i18n.InputEmpty
			}
			logger.Debug("input rejected", "reason", key)
			fmt.Fprintln(stdout, printer.Sprintf(key))
		})
	} else {
		reader = input.NewStrictParse(stdin, stdout)
	}

	svc := service.NewDrillService(service.Deps{
		Bank:     questionbank.New(),
		Config:   sessionConfig,
		Reader:   reader,
		Grader:   grader.ProductGrader{},
		Renderer: renderer,
		Styler:   styler,
		Printer:  printer,
		Out:      stdout,
		Logger:   logger,
		Rand:     opts.Rand,
	})
	return svc.Run(ctx)
}
