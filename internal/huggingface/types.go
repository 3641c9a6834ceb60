package huggingface

import "fmt"

type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// classification is one label/score pair. The inference API responds with
// one inner array per input, each holding a pair per class.
type classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
