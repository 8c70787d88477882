package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"quizAgent/internal/config"
	"quizAgent/internal/logger"
)

type Client struct {
	client   *openai.Client
	model    string
	retries  uint
	recorder Recorder
	limiter  *RateLimiter
	log      *logger.Zap
	runID    *uint
}

func NewClient(cfg config.DeepSeek, recorder Recorder, log *logger.Zap) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	retries := cfg.Retries
	if retries == 0 {
		retries = 3
	}

	return &Client{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		retries:  retries,
		recorder: recorder,
		limiter:  NewRateLimiter(cfg.RequestsPerMinute, cfg.TokensPerHour),
		log:      log,
	}
}

// SetRun привязывает последующие записи запросов к прогону в БД.
func (c *Client) SetRun(runID uint) {
	c.runID = &runID
}

// Ask отправляет диалог и возвращает текст ассистента. Апстрим ненадёжен,
// поэтому запрос повторяется с паузой; после исчерпания попыток
// возвращается пустая строка, ошибка наружу не выходит.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) string {
	var content string
	var tokensUsed int

	// Грубая оценка токенов до запроса: ~4 символа на токен
	estimated := (len(systemPrompt) + len(userPrompt)) / 4

	err := retry.Do(
		func() error {
			if err := c.limiter.Allow(ctx, estimated); err != nil {
				return err
			}

			resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
				Model: c.model,
				Messages: []openai.ChatCompletionMessage{
					{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
					{Role: openai.ChatMessageRoleUser, Content: userPrompt},
				},
			})
			if err != nil {
				return err
			}
			if len(resp.Choices) == 0 {
				return errors.New("в ответе нет choices")
			}

			content = strings.TrimSpace(resp.Choices[0].Message.Content)
			tokensUsed = resp.Usage.TotalTokens
			c.limiter.Consume(tokensUsed - estimated)
			return nil
		},
		retry.Attempts(c.retries),
		retry.Delay(2*time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		c.log.Warn("Запрос к LLM не удался, подставляем пустой ответ", zap.Error(err))
		if c.recorder != nil {
			_ = c.recorder.LogLLMRequest(ctx, c.runID, "error", userPrompt, err.Error(), c.model, 0)
		}
		return ""
	}

	if c.recorder != nil {
		_ = c.recorder.LogLLMRequest(ctx, c.runID, "assistant", userPrompt, content, c.model, tokensUsed)
	}

	return content
}
