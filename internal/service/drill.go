package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"golang.org/x/text/message"

	practicesession "github.com/remaimber-it/kuku/internal/domain/practice_session"
	"github.com/remaimber-it/kuku/internal/domain/questionbank"
	"github.com/remaimber-it/kuku/internal/feedback"
	"github.com/remaimber-it/kuku/internal/grader"
	"github.com/remaimber-it/kuku/internal/i18n"
	"github.com/remaimber-it/kuku/internal/input"
)

// Summary is the final result of a drill.
type Summary struct {
	SessionID  string
	Mode       practicesession.Mode
	Score      int
	Total      int
	Percentage int
	BestStreak int
	Missed     []practicesession.SessionAnswer
}

// DrillService runs one interactive drill session.
//
// It owns the session state for the duration of Run: ask, grade, score and
// report each problem in order, then print the summary. There is no way to
// leave the loop early other than an input error.
type DrillService struct {
	bank     *questionbank.QuestionBank
	config   practicesession.SessionConfig
	reader   input.Reader
	grader   grader.Grader
	renderer feedback.Renderer
	styler   feedback.Styler
	printer  *message.Printer
	out      io.Writer
	logger   *slog.Logger
	rng      *rand.Rand
}

// Deps groups the collaborators of a DrillService.
type Deps struct {
	Bank     *questionbank.QuestionBank
	Config   practicesession.SessionConfig
	Reader   input.Reader
	Grader   grader.Grader
	Renderer feedback.Renderer
	Styler   feedback.Styler
	Printer  *message.Printer
	Out      io.Writer
	Logger   *slog.Logger
	Rand     *rand.Rand // nil = seeded from crypto/rand per session
}

// NewDrillService creates a DrillService.
func NewDrillService(d Deps) *DrillService {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &DrillService{
		bank:     d.Bank,
		config:   d.Config,
		reader:   d.Reader,
		grader:   d.Grader,
		renderer: d.Renderer,
		styler:   d.Styler,
		printer:  d.Printer,
		out:      d.Out,
		logger:   logger,
		rng:      d.Rand,
	}
}

// Run plays the whole session and returns its summary.
// An error means the session was abandoned; no summary is printed.
func (ds *DrillService) Run(ctx context.Context) (Summary, error) {
	session := practicesession.New(ds.bank, ds.config, ds.rng)
	logger := ds.logger.With("session_id", session.ID, "mode", string(ds.config.Mode))
	logger.Info("session started", "questions", session.Total())

	for i, problem := range session.Problems {
		answer, err := ds.reader.ReadAnswer(ds.prompt(i, session.Total(), problem))
		if err != nil {
			logger.Error("session abandoned", "question", i+1, "error", err)
			return Summary{}, fmt.Errorf("question %d (%s): %w", i+1, problem, err)
		}

		outcome := ds.grader.Grade(problem, answer)
		session.Record(problem, answer, outcome == grader.Correct)
		logger.Debug("answer graded",
			"question", i+1,
			"problem", problem.String(),
			"answer", answer,
			"outcome", outcome.String(),
		)

		if err := ds.renderer.Render(ctx, outcome, ds.resultMessage(outcome, problem)); err != nil {
			logger.Warn("feedback failed", "question", i+1, "error", err)
		}

		if err := ds.println(ds.styler.Paint(ds.statusLine(session), feedback.Bold)); err != nil {
			return Summary{}, err
		}
	}

	summary := Summary{
		SessionID:  session.ID,
		Mode:       ds.config.Mode,
		Score:      session.Score.Correct,
		Total:      session.Total(),
		Percentage: session.Percentage(),
		BestStreak: session.Score.BestStreak,
		Missed:     session.Missed(),
	}
	if err := ds.println(ds.summaryLine(summary)); err != nil {
		return Summary{}, err
	}
	if ds.config.ReviewMisses {
		if err := ds.printReview(summary.Missed); err != nil {
			return Summary{}, err
		}
	}

	logger.Info("session finished",
		"score", summary.Score,
		"total", summary.Total,
		"best_streak", summary.BestStreak,
		"missed", len(summary.Missed),
	)
	return summary, nil
}

func (ds *DrillService) prompt(i, total int, p questionbank.Problem) string {
	if ds.config.Mode == practicesession.ModeRandomized {
		text := ds.printer.Sprintf(i18n.PromptRandomized, i+1, total, p.FactorA, p.FactorB)
		return ds.styler.Paint(text, feedback.Cyan, feedback.Bold)
	}
	return ds.printer.Sprintf(i18n.PromptSequential, p.FactorA, p.FactorB)
}

func (ds *DrillService) resultMessage(outcome grader.Outcome, p questionbank.Problem) string {
	switch {
	case outcome == grader.Correct:
		return ds.printer.Sprintf(i18n.AnswerCorrect)
	case ds.config.Mode == practicesession.ModeRandomized:
		return ds.printer.Sprintf(i18n.IncorrectRandomized, p.FactorA, p.FactorB, p.Answer())
	default:
		return ds.printer.Sprintf(i18n.IncorrectSequential, p.Answer())
	}
}

func (ds *DrillService) statusLine(s *practicesession.PracticeSession) string {
	if ds.config.TrackStreaks {
		return ds.printer.Sprintf(i18n.StatusRandomized, s.Score.Correct, s.Total(), s.Score.CurrentStreak)
	}
	return ds.printer.Sprintf(i18n.StatusSequential, s.Score.Correct, s.Total())
}

func (ds *DrillService) summaryLine(s Summary) string {
	if ds.config.Mode == practicesession.ModeRandomized {
		return ds.printer.Sprintf(i18n.SummaryRandomized, s.Score, s.Total, s.Percentage, s.BestStreak)
	}
	return ds.printer.Sprintf(i18n.SummarySequential, s.Score)
}

// printReview lists each missed problem with its answer and what was typed.
func (ds *DrillService) printReview(missed []practicesession.SessionAnswer) error {
	if len(missed) == 0 {
		return nil
	}
	if err := ds.println(ds.printer.Sprintf(i18n.ReviewHeader)); err != nil {
		return err
	}
	for _, a := range missed {
		line := ds.printer.Sprintf(i18n.ReviewLine, a.Problem.FactorA, a.Problem.FactorB, a.Problem.Answer(), a.Given)
		if err := ds.println(line); err != nil {
			return err
		}
	}
	return nil
}

func (ds *DrillService) println(line string) error {
	if _, err := fmt.Fprintln(ds.out, line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
