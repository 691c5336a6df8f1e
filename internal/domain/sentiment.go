package domain

import "math"

// Label is the three-way sentiment classification returned to callers.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Classification thresholds. Scores strictly above PositiveThreshold are
// positive, strictly below NegativeThreshold are negative.
const (
	PositiveThreshold = 0.1
	NegativeThreshold = -0.1
)

func (l Label) IsValid() bool {
	switch l {
	case LabelPositive, LabelNegative, LabelNeutral:
		return true
	}
	return false
}

// Classify maps a polarity score in [-1, 1] to a Label.
func Classify(score float64) Label {
	switch {
	case score > PositiveThreshold:
		return LabelPositive
	case score < NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// NormalizeScore clamps score to [-1, 1] and rounds it to 3 decimal places.
// NaN is treated as 0.
func NormalizeScore(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	score = math.Max(-1, math.Min(1, score))
	r := math.Round(score*1000) / 1000
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// AnalyzeRequest is the POST /api/sentiment body. Text is a pointer so a
// missing field can be told apart from an empty string.
type AnalyzeRequest struct {
	Text *string `json:"text"`
}

// Validate returns ErrMissingText when the text field was absent or null.
func (r AnalyzeRequest) Validate() error {
	if r.Text == nil {
		return ErrMissingText
	}
	return nil
}

// Analysis is the result of classifying one piece of text.
type Analysis struct {
	Polarity Label   `json:"polarity"`
	Score    float64 `json:"score"`
}

// NewAnalysis classifies a raw score. The label is derived from the clamped
// but unrounded score so rounding never moves a value across a threshold.
func NewAnalysis(raw float64) Analysis {
	if math.IsNaN(raw) {
		raw = 0
	}
	clamped := math.Max(-1, math.Min(1, raw))
	return Analysis{
		Polarity: Classify(clamped),
		Score:    NormalizeScore(clamped),
	}
}
