package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/llm"
)

const systemPrompt = "You are a carbon footprint analysis expert. " +
	"Extract or estimate the carbon footprint value from the given text. " +
	"Return only the numeric value in kg CO2."

// Estimate implements llm.Estimator over chat/completions. One call per
// document, no retries; every failure path degrades to (0, recoverable).
func (c *Client) Estimate(ctx context.Context, req llm.EstimateRequest) (float64, error) {
	rid := uuid.New().String()
	start := time.Now()

	text := llm.TruncateText(req.Text, c.cfg.MaxTextChars)
	c.logger.Info("estimate.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
		"file_hint", req.FilenameHint,
		"json_mode", c.cfg.JSONMode,
	)

	user := "Analyze this text and extract or estimate the carbon footprint value in kg CO2. " +
		"*IMPORTANT: return only 1 value, which is the total number of overall analysis: " + text

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"max_tokens":  100,
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": user},
		},
	}
	if c.cfg.JSONMode {
		body["response_format"] = map[string]any{"type": "json_object"}
		body["messages"] = append(body["messages"].([]map[string]any),
			map[string]any{"role": "system", "content": "Return ONLY JSON matching this schema:\n" + mustJSON(llm.BuildFootprintJSONSchema())})
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.logger.Error("estimate.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return 0, common.NewAppError("ESTIMATION_FAILED", "openai call failed", common.ErrEstimationFailed)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("estimate.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return 0, common.NewAppError("ESTIMATION_FAILED", "decoding openai response", common.ErrEstimationFailed)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("estimate.no_choices", "req_id", rid)
		return 0, common.NewAppError("ESTIMATION_FAILED", "no choices in openai response", common.ErrEstimationFailed)
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)

	if c.cfg.JSONMode {
		v, err := llm.ParseStructuredFootprint([]byte(content))
		if err != nil {
			c.logger.Warn("estimate.structured_invalid", "req_id", rid, "error", err, "content", content)
			// fall through to the permissive number match
		} else {
			c.logger.Info("estimate.ok", "req_id", rid, "footprint_kg", v,
				"elapsed_ms", time.Since(start).Milliseconds())
			return v, nil
		}
	}

	v, ok := llm.ParseFootprint(content)
	if !ok {
		c.logger.Warn("estimate.no_number", "req_id", rid, "content", content)
		return 0, common.NewAppError("ESTIMATION_FAILED", "no numeric value in reply", common.ErrEstimationFailed)
	}
	c.logger.Info("estimate.ok",
		"req_id", rid,
		"footprint_kg", v,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return v, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
