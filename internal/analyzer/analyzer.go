// Package analyzer computes word, character and sentence counts plus a
// lexicon-based sentiment score for a piece of text.
package analyzer

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"insight-agent/internal/domain/entity"
)

var (
	positiveWords = wordSet("amazing", "cool", "excellent", "good", "happy", "awesome", "great", "love")
	negativeWords = wordSet("hate", "bad", "terrible", "awful", "poor", "worst", "disappointed")

	terminators = strings.NewReplacer("!", ".", "?", ".")
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Analyzer is stateless; the zero value is ready to use.
type Analyzer struct{}

func New() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Analyze(text string) entity.AnalysisResult {
	return Analyze(text)
}

// Analyze never fails. Length limits are the caller's concern.
func Analyze(text string) entity.AnalysisResult {
	words := fields(text)

	return entity.AnalysisResult{
		WordCount:      len(words),
		CharacterCount: utf8.RuneCountInString(text),
		SentenceCount:  countSentences(text),
		SentimentScore: score(fields(strings.ToLower(text))),
	}
}

// isSpace extends unicode.IsSpace with the ASCII information separators
// U+001C..U+001F, which also delimit tokens.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func fields(text string) []string {
	return strings.FieldsFunc(text, isSpace)
}

func countSentences(text string) int {
	n := 0
	for _, s := range strings.Split(terminators.Replace(text), ".") {
		if strings.TrimFunc(s, isSpace) != "" {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// score matches whole tokens only, so "good." does not count as "good".
func score(tokens []string) float64 {
	var pos, neg int
	for _, t := range tokens {
		if _, ok := positiveWords[t]; ok {
			pos++
		}
		if _, ok := negativeWords[t]; ok {
			neg++
		}
	}
	raw := float64(pos-neg) / float64(max(len(tokens), 1))
	return round2(raw)
}

// round2 rounds half away from zero.
func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// Label buckets a sentiment score by its sign.
func Label(score float64) string {
	switch {
	case score > 0:
		return LabelPositive
	case score < 0:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Lexicon returns sorted copies of the positive and negative word lists.
func Lexicon() (positive, negative []string) {
	return sortedKeys(positiveWords), sortedKeys(negativeWords)
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
