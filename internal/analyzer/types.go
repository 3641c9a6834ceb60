package analyzer

import "fmt"

// Verdict is the three-way label derived from the final AI percentage.
type Verdict string

const (
	VerdictHumanWritten Verdict = "Human Written"
	VerdictAiGenerated  Verdict = "AI Generated"
	VerdictUncertain    Verdict = "Uncertain"
)

// Signal names. Weights are keyed by these, not by position.
const (
	SignalUniformity  = "uniformity"
	SignalDiversity   = "diversity"
	SignalPhrases     = "phrases"
	SignalPunctuation = "punctuation"
	SignalStructure   = "structure"
)

// SignalScore is one heuristic dimension's AI-likelihood in [0,1],
// where 1.0 is maximally AI-like.
type SignalScore struct {
	Name  string
	Value float64
}

// Result is the outcome of a single analysis. HumanPercentage and
// AiPercentage sum to 100.0 within one-decimal rounding.
type Result struct {
	HumanPercentage float64 `json:"human_percentage"`
	AiPercentage    float64 `json:"ai_percentage"`
	Verdict         Verdict `json:"verdict"`
}

// InputTooLargeError is returned when text exceeds the configured
// character bound. It is the only error Analyze surfaces.
type InputTooLargeError struct {
	Length int
	Limit  int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input is %d characters, limit is %d", e.Length, e.Limit)
}
