package analyzer

import (
	"context"
	"unicode/utf8"

	"github.com/mfigueredo/veritext/internal/config"
	"github.com/mfigueredo/veritext/internal/utils"
)

// Classifier supplies an AI-class probability in [0,1] from a remote
// model. Any error means the engine falls back to the heuristic path.
type Classifier interface {
	Available() bool
	Classify(ctx context.Context, text string) (float64, error)
}

// Engine converts raw text into a Result. It holds no mutable state
// between analyses and is safe for concurrent use.
type Engine struct {
	classifier Classifier
	weights    Weights
	maxChars   int
	logger     *utils.Logger
}

func NewEngine(classifier Classifier, cfg *config.AnalysisConfig, logger *utils.Logger) *Engine {
	return &Engine{
		classifier: classifier,
		weights: Weights{
			Uniformity:  cfg.UniformityWeight,
			Diversity:   cfg.DiversityWeight,
			Phrases:     cfg.PhrasesWeight,
			Punctuation: cfg.PunctuationWeight,
			Structure:   cfg.StructureWeight,
		},
		maxChars: cfg.MaxInputChars,
		logger:   logger,
	}
}

// Analyze classifies text as human-written or AI-generated. The remote
// classifier is attempted once when configured; on any failure the
// heuristic path produces the result and the failure is logged only. The
// single surfaced error is *InputTooLargeError for text over the bound.
func (e *Engine) Analyze(ctx context.Context, text string) (Result, error) {
	if n := utf8.RuneCountInString(text); n > e.maxChars {
		return Result{}, &InputTooLargeError{Length: n, Limit: e.maxChars}
	}

	if e.classifier != nil && e.classifier.Available() {
		p, err := e.classifier.Classify(ctx, text)
		if err == nil {
			return resultFromScore(clamp01(p)), nil
		}
		e.logger.Warn("remote classifier failed, falling back to heuristics", "error", err)
	}

	seg := Segment(text)
	return Combine(ExtractSignals(seg), e.weights), nil
}
