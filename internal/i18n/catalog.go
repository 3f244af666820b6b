// Package i18n holds the operator-facing message catalogs.
//
// Messages are registered in a golang.org/x/text catalog keyed by the
// constants below; Japanese is the base locale.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	PromptSequential    = "prompt.sequential"
	PromptRandomized    = "prompt.randomized"
	AnswerCorrect       = "answer.correct"
	IncorrectSequential = "answer.incorrect.sequential"
	IncorrectRandomized = "answer.incorrect.randomized"
	InputEmpty          = "input.empty"
	InputNotNumber      = "input.not_number"
	StatusSequential    = "status.sequential"
	StatusRandomized    = "status.randomized"
	SummarySequential   = "summary.sequential"
	SummaryRandomized   = "summary.randomized"
	ReviewHeader        = "review.header"
	ReviewLine          = "review.line"
	SpeechNotFound      = "speech.not_found"
	SpeechFailed        = "speech.failed"
)

// BaseLocale is used when the requested locale is unknown.
var BaseLocale = language.Japanese

var locales = map[language.Tag]map[string]string{
	language.Japanese: {
		PromptSequential:    "%d x %d = ",
		PromptRandomized:    "[%d/%d] %d x %d = ",
		AnswerCorrect:       "正解！",
		IncorrectSequential: "不正解。正しい答えは %d です。",
		IncorrectRandomized: "不正解。%d かける %d の正しい答えは %d です。",
		InputEmpty:          "入力が空です。数字を入力してください。",
		InputNotNumber:      "数字で答えてください。",
		StatusSequential:    "現在のスコア: %d/%d",
		StatusRandomized:    "現在のスコア: %d/%d | 連続正解: %d",
		SummarySequential:   "ゲーム終了！あなたのスコアは %d です。",
		SummaryRandomized:   "ゲーム終了！最終スコアは %d/%d (%d%%)。最高連続正解数は %d でした。",
		ReviewHeader:        "間違えた問題:",
		ReviewLine:          "  %d x %d = %d（あなたの答え: %d）",
		SpeechNotFound:      "音声出力に失敗しました（%s コマンドが見つかりません）。",
		SpeechFailed:        "音声出力に失敗しました（%s を起動できません）。",
	},
	language.English: {
		PromptSequential:    "%d x %d = ",
		PromptRandomized:    "[%d/%d] %d x %d = ",
		AnswerCorrect:       "Correct!",
		IncorrectSequential: "Wrong. The correct answer is %d.",
		IncorrectRandomized: "Wrong. %d times %d is %d.",
		InputEmpty:          "Input is empty. Please enter a number.",
		InputNotNumber:      "Please answer with a number.",
		StatusSequential:    "Score: %d/%d",
		StatusRandomized:    "Score: %d/%d | Streak: %d",
		SummarySequential:   "Game over! Your score is %d.",
		SummaryRandomized:   "Game over! Final score %d/%d (%d%%). Best streak: %d.",
		ReviewHeader:        "Missed problems:",
		ReviewLine:          "  %d x %d = %d (you answered %d)",
		SpeechNotFound:      "Speech output failed (%s command not found).",
		SpeechFailed:        "Speech output failed (could not start %s).",
	},
}

var builder = mustBuild()

func mustBuild() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(BaseLocale))
	for tag, messages := range locales {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Resolve parses locale and matches it against the supported locales,
// falling back to BaseLocale.
func Resolve(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return BaseLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return BaseLocale
	}
	matcher := language.NewMatcher(Supported())
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return Supported()[idx]
}

// Supported lists the catalog locales, base locale first.
func Supported() []language.Tag {
	tags := []language.Tag{BaseLocale}
	others := make([]language.Tag, 0, len(locales))
	for tag := range locales {
		if tag != BaseLocale {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	return append(tags, others...)
}

// NewPrinter returns a printer bound to the catalog for locale.
func NewPrinter(locale string) *message.Printer {
	return message.NewPrinter(Resolve(locale), message.Catalog(builder))
}
