package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"nexgenhealth/config"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

type generateRequest struct {
	Contents []Content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
}

// GeminiClient talks to the Gemini generateContent REST API.
type GeminiClient struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
	logger     *zap.Logger
}

func NewGeminiClient(cfg config.GeminiConfig, logger *zap.Logger) *GeminiClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &GeminiClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   strings.TrimRight(endpoint, "/"),
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

func (c *GeminiClient) StartChat(history []Content) Chat {
	chat := &geminiChat{client: c}
	chat.history = append(chat.history, history...)
	return chat
}

type geminiChat struct {
	client  *GeminiClient
	history []Content
}

// Send appends the user turn to the history, submits the whole conversation
// and records the model's reply as the next turn.
func (ch *geminiChat) Send(ctx context.Context, parts []Part) (string, error) {
	userTurn := Content{Role: "user", Parts: parts}
	contents := append(append([]Content{}, ch.history...), userTurn)

	reply, err := ch.client.generate(ctx, contents)
	if err != nil {
		return "", err
	}

	ch.history = append(ch.history, userTurn, reply)

	var sb strings.Builder
	for _, part := range reply.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

func (ch *geminiChat) History() []Content {
	out := make([]Content, len(ch.history))
	copy(out, ch.history)
	return out
}

func (c *GeminiClient) generate(ctx context.Context, contents []Content) (Content, error) {
	body, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return Content{}, fmt.Errorf("ошибка сериализации запроса к модели: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Content{}, fmt.Errorf("ошибка создания запроса к модели: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Content{}, fmt.Errorf("ошибка запроса к модели: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("модель вернула ошибку",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", payload))
		return Content{}, fmt.Errorf("модель вернула статус %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Content{}, fmt.Errorf("ошибка разбора ответа модели: %w", err)
	}

	if len(parsed.Candidates) == 0 {
		return Content{}, fmt.Errorf("модель не вернула ни одного варианта ответа")
	}

	c.logger.Debug("ответ модели получен",
		zap.Duration("latency", time.Since(start)),
		zap.Int("turns", len(contents)))

	reply := parsed.Candidates[0].Content
	if reply.Role == "" {
		reply.Role = "model"
	}
	return reply, nil
}
