// Package gemini is an alternative estimation provider over the Gemini
// generateContent API. Same contract as the openai package: one call,
// no retry, every failure degrades to a recoverable zero.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/llm"
)

const systemPrompt = "You are a carbon footprint analysis expert. " +
	"Extract or estimate the carbon footprint value from the given text. " +
	"Return only the numeric value in kg CO2."

type Config struct {
	APIKey       string
	BaseURL      string // default https://generativelanguage.googleapis.com/v1beta
	Model        string // e.g., "gemini-2.0-flash"
	Temperature  float32
	Timeout      time.Duration
	MaxTextChars int
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.MaxTextChars <= 0 {
		cfg.MaxTextChars = 10000
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}, logger: logger}
}

type generateRequest struct {
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Estimate implements llm.Estimator.
func (c *Client) Estimate(ctx context.Context, req llm.EstimateRequest) (float64, error) {
	start := time.Now()
	text := llm.TruncateText(req.Text, c.cfg.MaxTextChars)
	c.logger.Info("estimate.start", "provider", "gemini", "model", c.cfg.Model, "text_len", len(text))

	user := "Analyze this text and extract or estimate the carbon footprint value in kg CO2. " +
		"*IMPORTANT: return only 1 value, which is the total number of overall analysis: " + text

	body := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: user}}}},
		GenerationConfig:  generationConfig{Temperature: c.cfg.Temperature, MaxOutputTokens: 100},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model, c.cfg.APIKey)
	raw, err := c.post(ctx, url, body)
	if err != nil {
		c.logger.Error("estimate.http_error", "provider", "gemini", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return 0, common.NewAppError("ESTIMATION_FAILED", "gemini call failed", common.ErrEstimationFailed)
	}

	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.Error("estimate.decode_error", "provider", "gemini", "error", err)
		return 0, common.NewAppError("ESTIMATION_FAILED", "decoding gemini response", common.ErrEstimationFailed)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		c.logger.Error("estimate.no_candidates", "provider", "gemini")
		return 0, common.NewAppError("ESTIMATION_FAILED", "no candidates in gemini response", common.ErrEstimationFailed)
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	v, ok := llm.ParseFootprint(b.String())
	if !ok {
		c.logger.Warn("estimate.no_number", "provider", "gemini", "content", b.String())
		return 0, common.NewAppError("ESTIMATION_FAILED", "no numeric value in reply", common.ErrEstimationFailed)
	}
	c.logger.Info("estimate.ok", "provider", "gemini", "footprint_kg", v,
		"elapsed_ms", time.Since(start).Milliseconds())
	return v, nil
}

func (c *Client) post(ctx context.Context, url string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini http error: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini status %d: %s", resp.StatusCode, data)
	}
	return data, nil
}
