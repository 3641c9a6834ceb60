package analyzer

import (
	"regexp"
	"strings"
)

var (
	// Sentence terminators only count when followed by whitespace or the
	// end of the text, so "3.14" stays inside one sentence.
	sentenceEnd    = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
	wordToken      = regexp.MustCompile(`[a-z0-9']+`)
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
)

// Sentence is one sentence of the input and its whitespace-field word count.
type Sentence struct {
	Text      string
	WordCount int
}

// Paragraph is one contiguous block of the input and its word count.
type Paragraph struct {
	Text      string
	WordCount int
}

// Segmentation is an immutable view over a single input text. It is built
// once per analysis and never mutated afterwards.
type Segmentation struct {
	Text       string
	Sentences  []Sentence
	Words      []string
	Paragraphs []Paragraph
}

// Segment splits text into sentences, lowercased word tokens and
// paragraphs. Empty or whitespace-only input yields empty slices for all
// three; callers must apply their own neutral guards.
func Segment(text string) Segmentation {
	seg := Segmentation{Text: text}

	for _, raw := range sentenceEnd.Split(text, -1) {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		seg.Sentences = append(seg.Sentences, Sentence{
			Text:      s,
			WordCount: len(strings.Fields(s)),
		})
	}

	seg.Words = wordToken.FindAllString(strings.ToLower(text), -1)

	for _, raw := range paragraphBreak.Split(text, -1) {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		seg.Paragraphs = append(seg.Paragraphs, Paragraph{
			Text:      p,
			WordCount: len(strings.Fields(p)),
		})
	}

	return seg
}
