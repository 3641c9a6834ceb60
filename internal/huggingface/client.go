package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mfigueredo/veritext/internal/config"
	"github.com/mfigueredo/veritext/internal/utils"
)

const maxResponseBytes = 1 << 20

// Client calls the HuggingFace inference API for text classification.
type Client struct {
	endpoint   string
	token      string
	model      string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *utils.Logger
}

func NewClient(cfg *config.Config, logger *utils.Logger) (*Client, error) {
	if cfg.HuggingFace.Token == "" {
		return nil, fmt.Errorf("HF_API_TOKEN is required")
	}

	timeout := time.Duration(cfg.HuggingFace.TimeoutSeconds) * time.Second
	return &Client{
		endpoint:   strings.TrimSuffix(cfg.HuggingFace.URL, "/") + "/models/" + cfg.HuggingFace.Model,
		token:      cfg.HuggingFace.Token,
		model:      cfg.HuggingFace.Model,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.HuggingFace.RequestsPerSecond), cfg.HuggingFace.Burst),
		logger:     logger,
	}, nil
}

func (c *Client) Available() bool {
	return c != nil && c.token != ""
}

// Classify returns the probability in [0,1] that text is AI-generated.
// The configured timeout bounds the whole call, limiter wait included.
// One request per call; retries are the caller's decision, and the engine
// makes none.
func (c *Client) Classify(ctx context.Context, text string) (float64, error) {
	if !c.Available() {
		return 0, fmt.Errorf("huggingface token not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limiter: %w", err)
	}

	body, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, c.handleAPIError(resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}

	var results [][]classification
	if err := json.Unmarshal(data, &results); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	score, err := extractAiScore(results)
	if err != nil {
		return 0, err
	}

	c.logger.Debug("huggingface classification", "model", c.model, "score", score)
	return score, nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
}

func (c *Client) handleAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		Body:       string(body),
	}
}

// extractAiScore picks the AI-class probability out of the label/score
// pairs. Detector models label the AI class inconsistently, so the lookup
// tries known label names, then LABEL_1, then the higher of the first two.
func extractAiScore(results [][]classification) (float64, error) {
	if len(results) == 0 || len(results[0]) == 0 {
		return 0, fmt.Errorf("empty classification response")
	}
	scores := results[0]

	for _, item := range scores {
		label := strings.ToLower(item.Label)
		if strings.Contains(label, "chatgpt") || strings.Contains(label, "ai") || strings.Contains(label, "fake") {
			return item.Score, nil
		}
	}

	for _, item := range scores {
		if item.Label == "LABEL_1" {
			return item.Score, nil
		}
	}

	if len(scores) >= 2 {
		if scores[0].Score > scores[1].Score {
			return scores[0].Score, nil
		}
		return scores[1].Score, nil
	}

	return 0, fmt.Errorf("no recognizable label in classification response")
}
