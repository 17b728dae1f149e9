// Package scoring turns free-text critiques into bounded heuristic scores.
//
// Every score starts at Neutral, moves by Step for each vocabulary term found in the
// text, and is clamped to [0,1]. Terms are matched as case-insensitive substrings, not
// whole words, so results stay identical to the scores clients already stored.
package scoring

import "strings"

const (
	Neutral = 0.5
	Step    = 0.1
)

// Vocabulary is a pair of term lists that raise and lower a score.
type Vocabulary struct {
	Positive []string
	Negative []string
}

var (
	ConfidenceVocabulary = Vocabulary{
		Positive: []string{"confident", "strong", "clear", "decisive", "assured"},
		Negative: []string{"nervous", "uncertain", "hesitant", "unsure", "anxious"},
	}
	ClarityVocabulary = Vocabulary{
		Positive: []string{"clear", "articulate", "well-structured", "organized", "coherent"},
		Negative: []string{"unclear", "confusing", "disorganized", "rambling", "incoherent"},
	}
	ContentVocabulary = Vocabulary{
		Positive: []string{"relevant", "comprehensive", "detailed", "accurate", "knowledgeable"},
		Negative: []string{"irrelevant", "superficial", "incomplete", "inaccurate", "lacking"},
	}
)

// Scores is the triple reported with every analysis.
type Scores struct {
	Confidence float64
	Clarity    float64
	Content    float64
}

// ConfidenceScore searches both the content critique and the vision critique.
func ConfidenceScore(analysis, vision string) float64 {
	return ConfidenceVocabulary.Score(analysis, vision)
}

func ClarityScore(analysis string) float64 {
	return ClarityVocabulary.Score(analysis)
}

func ContentScore(analysis string) float64 {
	return ContentVocabulary.Score(analysis)
}

func Score(analysis, vision string) Scores {
	return Scores{
		Confidence: ConfidenceScore(analysis, vision),
		Clarity:    ClarityScore(analysis),
		Content:    ContentScore(analysis),
	}
}

// Score applies the vocabulary to texts. A term counts once if it appears in any of them.
func (v Vocabulary) Score(texts ...string) float64 {
	lowered := make([]string, len(texts))
	for i, t := range texts {
		lowered[i] = strings.ToLower(t)
	}

	score := Neutral
	for _, term := range v.Positive {
		if containsAny(lowered, term) {
			score += Step
		}
	}
	for _, term := range v.Negative {
		if containsAny(lowered, term) {
			score -= Step
		}
	}
	return clamp(score)
}

func containsAny(texts []string, term string) bool {
	for _, t := range texts {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}

func clamp(score float64) float64 {
	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}
