package analyzer

import "math"

// Weights keys each signal name to its share of the final score. A valid
// set sums to exactly 1.0; config validation asserts this at startup.
type Weights struct {
	Uniformity  float64
	Diversity   float64
	Phrases     float64
	Punctuation float64
	Structure   float64
}

// DefaultWeights returns the hand-tuned blend.
func DefaultWeights() Weights {
	return Weights{
		Uniformity:  0.25,
		Diversity:   0.20,
		Phrases:     0.30,
		Punctuation: 0.15,
		Structure:   0.10,
	}
}

// Sum adds the weights in field order.
func (w Weights) Sum() float64 {
	return w.Uniformity + w.Diversity + w.Phrases + w.Punctuation + w.Structure
}

func (w Weights) weightFor(name string) float64 {
	switch name {
	case SignalUniformity:
		return w.Uniformity
	case SignalDiversity:
		return w.Diversity
	case SignalPhrases:
		return w.Phrases
	case SignalPunctuation:
		return w.Punctuation
	case SignalStructure:
		return w.Structure
	default:
		return 0
	}
}

// Combine folds signal scores into a Result by weighted sum. Score order
// is irrelevant; weights are looked up by signal name.
func Combine(scores []SignalScore, w Weights) Result {
	var aiScore float64
	for _, s := range scores {
		aiScore += s.Value * w.weightFor(s.Name)
	}
	return resultFromScore(clamp01(aiScore))
}

// resultFromScore maps an AI-probability in [0,1] onto the wire
// percentages and verdict. Both the heuristic and the remote path end
// here, so the mapping is identical either way.
func resultFromScore(aiScore float64) Result {
	aiPct := round1(aiScore * 100)
	humanPct := round1(100 - aiPct)
	return Result{
		HumanPercentage: humanPct,
		AiPercentage:    aiPct,
		Verdict:         verdictFor(aiPct),
	}
}

// verdictFor applies the fixed bands to the rounded percentage: 60 and
// above is AI, 40 and below is human, anything between is uncertain.
func verdictFor(aiPct float64) Verdict {
	switch {
	case aiPct >= 60:
		return VerdictAiGenerated
	case aiPct <= 40:
		return VerdictHumanWritten
	default:
		return VerdictUncertain
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
