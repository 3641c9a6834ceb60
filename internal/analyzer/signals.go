package analyzer

import (
	"strings"
	"unicode/utf8"
)

// aiPhrases is the stock-phrase catalogue scanned by the phrases signal.
// Matching is case-insensitive and counts distinct entries, not occurrences.
var aiPhrases = []string{
	"as an ai",
	"i don't have personal",
	"i cannot",
	"i'm sorry, but",
	"it's important to note",
	"it is worth noting",
	"furthermore",
	"in conclusion",
	"to summarize",
	"delve into",
	"multifaceted",
	"paradigm shift",
	"cutting-edge",
	"state-of-the-art",
	"best practices",
	"leverage",
	"utilize",
	"facilitate",
	"comprehensive understanding",
}

// ExtractSignals runs the five extractors over one segmentation. Each is a
// pure function of the segmentation; the slice order carries no meaning.
func ExtractSignals(seg Segmentation) []SignalScore {
	return []SignalScore{
		scoreUniformity(seg),
		scoreDiversity(seg),
		scorePhrases(seg),
		scorePunctuation(seg),
		scoreStructure(seg),
	}
}

// scoreUniformity measures the variance of words-per-sentence. Uniform
// sentence lengths read as AI-like: variance at or below 10 maps to 0.8,
// at or above 100 to 0.2, linear in between.
func scoreUniformity(seg Segmentation) SignalScore {
	if len(seg.Sentences) < 2 {
		return SignalScore{Name: SignalUniformity, Value: 0.5}
	}

	counts := make([]float64, len(seg.Sentences))
	for i, s := range seg.Sentences {
		counts[i] = float64(s.WordCount)
	}

	return SignalScore{
		Name:  SignalUniformity,
		Value: mapBand(variance(counts), 10, 100, 0.8, 0.2),
	}
}

// scoreDiversity measures the unique-word ratio over the cleaned tokens.
// High diversity reads as human: ratio 0.7 and above maps to 0.2, 0.5 and
// below to 0.7, linear in between. Fewer than 10 words is too little signal.
func scoreDiversity(seg Segmentation) SignalScore {
	if len(seg.Words) < 10 {
		return SignalScore{Name: SignalDiversity, Value: 0.5}
	}

	unique := make(map[string]struct{}, len(seg.Words))
	for _, w := range seg.Words {
		unique[w] = struct{}{}
	}
	ratio := float64(len(unique)) / float64(len(seg.Words))

	return SignalScore{
		Name:  SignalDiversity,
		Value: mapBand(ratio, 0.5, 0.7, 0.7, 0.2),
	}
}

// scorePhrases counts distinct catalogue phrases present in the text.
func scorePhrases(seg Segmentation) SignalScore {
	lower := strings.ToLower(seg.Text)

	matches := 0
	for _, phrase := range aiPhrases {
		if strings.Contains(lower, phrase) {
			matches++
		}
	}

	var value float64
	switch {
	case matches >= 3:
		value = 0.85
	case matches == 2:
		value = 0.70
	case matches == 1:
		value = 0.55
	default:
		value = 0.30
	}
	return SignalScore{Name: SignalPhrases, Value: value}
}

// scorePunctuation looks at exclamation and comma densities as a share of
// the rune count. Sparse exclamation marks and a comma density inside the
// 2%-4% band both read as AI-like.
func scorePunctuation(seg Segmentation) SignalScore {
	if strings.TrimSpace(seg.Text) == "" {
		return SignalScore{Name: SignalPunctuation, Value: 0.5}
	}

	total := utf8.RuneCountInString(seg.Text)
	var exclamations, commas int
	for _, r := range seg.Text {
		switch r {
		case '!':
			exclamations++
		case ',':
			commas++
		}
	}

	exclamationDensity := float64(exclamations) / float64(total) * 100
	commaDensity := float64(commas) / float64(total) * 100

	score := 0.5
	if exclamationDensity < 0.5 {
		score += 0.15
	}
	if commaDensity > 2.0 && commaDensity < 4.0 {
		score += 0.10
	}
	return SignalScore{Name: SignalPunctuation, Value: clamp01(score)}
}

// scoreStructure checks the mean words-per-paragraph. Tidy paragraph
// sizing between 50 and 150 words reads as slightly AI-like.
func scoreStructure(seg Segmentation) SignalScore {
	if len(seg.Paragraphs) == 0 {
		return SignalScore{Name: SignalStructure, Value: 0.5}
	}

	total := 0
	for _, p := range seg.Paragraphs {
		total += p.WordCount
	}
	mean := float64(total) / float64(len(seg.Paragraphs))

	if mean >= 50 && mean <= 150 {
		return SignalScore{Name: SignalStructure, Value: 0.6}
	}
	return SignalScore{Name: SignalStructure, Value: 0.4}
}

// variance is the population variance of xs.
func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return sq / float64(len(xs))
}

// mapBand linearly maps x from [lo,hi] onto [atLo,atHi], clamping outside
// the band.
func mapBand(x, lo, hi, atLo, atHi float64) float64 {
	if x <= lo {
		return atLo
	}
	if x >= hi {
		return atHi
	}
	t := (x - lo) / (hi - lo)
	return atLo + t*(atHi-atLo)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
