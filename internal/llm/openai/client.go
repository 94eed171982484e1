package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edaudit/course-auditor/internal/common"
	"github.com/edaudit/course-auditor/internal/llm"
)

// Chat implements llm.ChatClient over chat/completions. Provider throttling
// (HTTP 429 or a rate_limit error body) surfaces as common.ErrRateLimited so
// the evaluators can retry with backoff; everything else is permanent.
func (c *Client) Chat(ctx context.Context, req llm.ChatRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.chat.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", req.Temperature,
		"system_len", len(req.System),
		"user_len", len(req.User),
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": req.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": req.System},
			{"role": "user", "content": req.User},
		},
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, status, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		if isRateLimit(status, raw) {
			c.logger.Warn("llm.chat.rate_limited",
				"req_id", rid, "status", status,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return "", fmt.Errorf("%w: status %d", common.ErrRateLimited, status)
		}
		c.logger.Error("llm.chat.http_error",
			"req_id", rid, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.chat.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.chat.no_choices", "req_id", rid, "raw", string(raw))
		return "", fmt.Errorf("no choices in chat response")
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	c.logger.Info("llm.chat.ok",
		"req_id", rid,
		"content_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func isRateLimit(status int, body []byte) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	return strings.Contains(strings.ToLower(string(body)), "rate_limit")
}
