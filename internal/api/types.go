package api

import "github.com/mfigueredo/veritext/internal/analyzer"

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type AnalyzeResponse struct {
	HumanPercentage float64 `json:"human_percentage"`
	AiPercentage    float64 `json:"ai_percentage"`
	Verdict         string  `json:"verdict"`
}

// AnalyzeFileResponse adds upload metadata to the analysis result.
type AnalyzeFileResponse struct {
	AnalyzeResponse
	Filename   string `json:"filename"`
	Characters int    `json:"characters"`
	Words      int    `json:"words"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func newAnalyzeResponse(r analyzer.Result) AnalyzeResponse {
	return AnalyzeResponse{
		HumanPercentage: r.HumanPercentage,
		AiPercentage:    r.AiPercentage,
		Verdict:         string(r.Verdict),
	}
}
