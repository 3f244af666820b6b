package service_test

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	practicesession "github.com/remaimber-it/kuku/internal/domain/practice_session"
	"github.com/remaimber-it/kuku/internal/domain/questionbank"
	"github.com/remaimber-it/kuku/internal/feedback"
	"github.com/remaimber-it/kuku/internal/grader"
	"github.com/remaimber-it/kuku/internal/i18n"
	"github.com/remaimber-it/kuku/internal/input"
	"github.com/remaimber-it/kuku/internal/service"
)

const seed = 20261018

type recordingRenderer struct {
	outcomes []grader.Outcome
	messages []string
	err      error
}

func (r *recordingRenderer) Render(_ context.Context, outcome grader.Outcome, msg string) error {
	r.outcomes = append(r.outcomes, outcome)
	r.messages = append(r.messages, msg)
	return r.err
}

type fixture struct {
	out        *strings.Builder
	renderer   *recordingRenderer
	rejections []input.Rejection
	svc        *service.DrillService
}

func newFixture(t *testing.T, config practicesession.SessionConfig, stdin string) *fixture {
	t.Helper()

	f := &fixture{
		out:      &strings.Builder{},
		renderer: &recordingRenderer{},
	}

	var reader input.Reader
	if config.RetryInput {
		reader = input.NewRetryingParse(strings.NewReader(stdin), f.out, func(r input.Rejection) {
			f.rejections = append(f.rejections, r)
		})
	} else {
		reader = input.NewStrictParse(strings.NewReader(stdin), f.out)
	}

	f.svc = service.NewDrillService(service.Deps{
		Bank:     questionbank.New(),
		Config:   config,
		Reader:   reader,
		Grader:   grader.ProductGrader{},
		Renderer: f.renderer,
		Printer:  i18n.NewPrinter("ja"),
		Out:      f.out,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	return f
}

// seededProblems returns the problems a randomized session seeded with seed will ask.
func seededProblems() []questionbank.Problem {
	return practicesession.GenerateSequence(
		questionbank.New(),
		practicesession.RandomizedConfig(),
		rand.New(rand.NewSource(seed)),
	)
}

// answerLines builds stdin answering each problem correctly when correct(i) is true.
func answerLines(problems []questionbank.Problem, correct func(i int) bool) string {
	var b strings.Builder
	for i, p := range problems {
		answer := p.Answer()
		if !correct(i) {
			answer++
		}
		b.WriteString(strconv.Itoa(answer))
		b.WriteString("\n")
	}
	return b.String()
}

func TestRun_SequentialAllCorrect(t *testing.T) {
	stdin := answerLines(questionbank.New().Problems, func(int) bool { return true })
	f := newFixture(t, practicesession.SequentialConfig(), stdin)

	summary, err := f.svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Score != 81 || summary.Total != 81 {
		t.Errorf("expected 81/81, got %d/%d", summary.Score, summary.Total)
	}

	if !strings.Contains(f.out.String(), "ゲーム終了！あなたのスコアは 81 です。") {
		t.Errorf("expected summary containing 81, got tail %q", tail(f.out.String()))
	}

	if len(f.renderer.outcomes) != 81 {
		t.Errorf("expected 81 rendered results, got %d", len(f.renderer.outcomes))
	}
}

func TestRun_SequentialPromptsInTableOrder(t *testing.T) {
	stdin := answerLines(questionbank.New().Problems, func(int) bool { return true })
	f := newFixture(t, practicesession.SequentialConfig(), stdin)

	if _, err := f.svc.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := f.out.String()
	first := strings.Index(out, "1 x 1 = ")
	second := strings.Index(out, "1 x 2 = ")
	last := strings.Index(out, "9 x 9 = ")
	if first < 0 || second < first || last < second {
		t.Errorf("expected prompts in row-major order")
	}

	if !strings.Contains(out, "現在のスコア: 1/81") {
		t.Error("expected a status line after the first question")
	}
}

func TestRun_SequentialWrongAnswerStatesProduct(t *testing.T) {
	stdin := "1\n3\n" // 1x1 correct, 1x2 wrong
	f := newFixture(t, practicesession.SequentialConfig(), stdin)

	_, err := f.svc.Run(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after input ran out, got %v", err)
	}

	if len(f.renderer.messages) != 2 {
		t.Fatalf("expected 2 results, got %d", len(f.renderer.messages))
	}
	if f.renderer.messages[0] != "正解！" {
		t.Errorf("unexpected correct message %q", f.renderer.messages[0])
	}
	if f.renderer.messages[1] != "不正解。正しい答えは 2 です。" {
		t.Errorf("unexpected incorrect message %q", f.renderer.messages[1])
	}
}

func TestRun_SequentialNonNumberIsFatal(t *testing.T) {
	stdin := "1\n2\nthree\n4\n"
	f := newFixture(t, practicesession.SequentialConfig(), stdin)

	_, err := f.svc.Run(context.Background())
	if !errors.Is(err, input.ErrNotANumber) {
		t.Fatalf("expected ErrNotANumber, got %v", err)
	}

	if len(f.renderer.outcomes) != 2 {
		t.Errorf("expected the session to stop after 2 graded answers, got %d", len(f.renderer.outcomes))
	}
	if strings.Contains(f.out.String(), "ゲーム終了") {
		t.Error("expected no summary after a fatal input error")
	}
}

func TestRun_RandomizedAllCorrect(t *testing.T) {
	f := newFixture(t, practicesession.RandomizedConfig(), answerLines(seededProblems(), func(int) bool { return true }))

	summary, err := f.svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Score != 20 || summary.Total != 20 {
		t.Errorf("expected 20/20, got %d/%d", summary.Score, summary.Total)
	}
	if summary.Percentage != 100 {
		t.Errorf("expected 100%%, got %d", summary.Percentage)
	}
	if summary.BestStreak != 20 {
		t.Errorf("expected best streak 20, got %d", summary.BestStreak)
	}

	want := "ゲーム終了！最終スコアは 20/20 (100%)。最高連続正解数は 20 でした。"
	if !strings.Contains(f.out.String(), want) {
		t.Errorf("expected %q, got tail %q", want, tail(f.out.String()))
	}
}

func TestRun_RandomizedAlternating(t *testing.T) {
	f := newFixture(t, practicesession.RandomizedConfig(), answerLines(seededProblems(), func(i int) bool { return i%2 == 0 }))

	summary, err := f.svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Score != 10 {
		t.Errorf("expected score 10, got %d", summary.Score)
	}
	if summary.BestStreak != 1 {
		t.Errorf("expected best streak 1, got %d", summary.BestStreak)
	}
	if summary.Percentage != 50 {
		t.Errorf("expected 50%%, got %d", summary.Percentage)
	}
}

func TestRun_RandomizedPromptsAndStreakStatus(t *testing.T) {
	problems := seededProblems()
	f := newFixture(t, practicesession.RandomizedConfig(), answerLines(problems, func(i int) bool { return i != 2 }))

	if _, err := f.svc.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := f.out.String()
	p := problems[0]
	if !strings.Contains(out, "[1/20] "+p.String()+" = ") {
		t.Errorf("expected indexed prompt for %s", p)
	}
	if !strings.Contains(out, "[20/20] ") {
		t.Error("expected a prompt for question 20")
	}

	for _, line := range []string{
		"現在のスコア: 2/20 | 連続正解: 2",
		"現在のスコア: 2/20 | 連続正解: 0",
		"現在のスコア: 3/20 | 連続正解: 1",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("expected status line %q", line)
		}
	}

	wrong := problems[2]
	want := "不正解。" + strconv.Itoa(wrong.FactorA) + " かける " + strconv.Itoa(wrong.FactorB) +
		" の正しい答えは " + strconv.Itoa(wrong.Answer()) + " です。"
	if f.renderer.messages[2] != want {
		t.Errorf("expected %q, got %q", want, f.renderer.messages[2])
	}
}

func TestRun_RandomizedRetryScoresOnce(t *testing.T) {
	problems := seededProblems()
	stdin := "\n" + "abc\n" + answerLines(problems, func(int) bool { return true })
	f := newFixture(t, practicesession.RandomizedConfig(), stdin)

	summary, err := f.svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.rejections) != 2 {
		t.Fatalf("expected 2 rejected inputs, got %d", len(f.rejections))
	}
	if f.rejections[0] != input.RejectedEmpty || f.rejections[1] != input.RejectedNotNumber {
		t.Errorf("unexpected rejection order %v", f.rejections)
	}

	if len(f.renderer.outcomes) != 20 {
		t.Errorf("expected exactly one scoring event per question, got %d", len(f.renderer.outcomes))
	}
	if summary.Score != 20 {
		t.Errorf("expected score 20, got %d", summary.Score)
	}

	if n := strings.Count(f.out.String(), "[1/20] "); n != 3 {
		t.Errorf("expected question 1 prompted 3 times, got %d", n)
	}
	if strings.Count(f.out.String(), "[2/20] ") != 1 {
		t.Error("expected question 2 prompted once")
	}
}

func TestRun_RendererFailureDoesNotStopSession(t *testing.T) {
	f := newFixture(t, practicesession.RandomizedConfig(), answerLines(seededProblems(), func(int) bool { return false }))
	f.renderer.err = feedback.ErrSpeechUnavailable

	summary, err := f.svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Score != 0 || summary.BestStreak != 0 || summary.Percentage != 0 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if len(f.renderer.outcomes) != 20 {
		t.Errorf("expected 20 rendered results, got %d", len(f.renderer.outcomes))
	}
}

func TestRun_RandomizedReviewsMissedProblems(t *testing.T) {
	problems := seededProblems()
	missedIdx := map[int]bool{3: true, 11: true}
	f := newFixture(t, practicesession.RandomizedConfig(), answerLines(problems, func(i int) bool { return !missedIdx[i] }))

	summary, err := f.svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Missed) != 2 {
		t.Fatalf("expected 2 missed problems, got %d", len(summary.Missed))
	}
	if summary.Missed[0].Problem != problems[3] || summary.Missed[1].Problem != problems[11] {
		t.Errorf("expected missed problems in question order, got %+v", summary.Missed)
	}

	out := f.out.String()
	header := strings.Index(out, "間違えた問題:")
	end := strings.Index(out, "ゲーム終了！")
	if header < 0 || header < end {
		t.Fatalf("expected review after the summary, got tail %q", tail(out))
	}

	for _, i := range []int{3, 11} {
		p := problems[i]
		want := "  " + p.String() + " = " + strconv.Itoa(p.Answer()) + "（あなたの答え: " + strconv.Itoa(p.Answer()+1) + "）"
		if !strings.Contains(out[header:], want) {
			t.Errorf("expected review line %q", want)
		}
	}
}

func TestRun_RandomizedAllCorrectHasNoReview(t *testing.T) {
	f := newFixture(t, practicesession.RandomizedConfig(), answerLines(seededProblems(), func(int) bool { return true }))

	if _, err := f.svc.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(f.out.String(), "間違えた問題:") {
		t.Error("expected no review when nothing was missed")
	}
}

func TestRun_SequentialHasNoReview(t *testing.T) {
	stdin := answerLines(questionbank.New().Problems, func(i int) bool { return i != 0 })
	f := newFixture(t, practicesession.SequentialConfig(), stdin)

	summary, err := f.svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Missed) != 1 {
		t.Errorf("expected 1 missed problem in the summary, got %d", len(summary.Missed))
	}
	if strings.Contains(f.out.String(), "間違えた問題:") {
		t.Error("expected the sequential drill to print no review")
	}
}

func tail(s string) string {
	if len(s) > 200 {
		return s[len(s)-200:]
	}
	return s
}
