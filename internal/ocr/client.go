// Package ocr — клиент сервиса распознавания формул (pix2tex-совместимый
// HTTP API): PNG на входе, LaTeX на выходе. Распознавание вспомогательное,
// поэтому любой сбой превращается в пустую строку.
package ocr

import (
	"bytes"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"quizAgent/internal/logger"
)

type Client struct {
	http *resty.Client
	log  *logger.Zap
}

type predictResponse struct {
	Latex string `json:"latex"`
}

func NewClient(endpoint, token string, log *logger.Zap) *Client {
	http := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(30 * time.Second)
	if token != "" {
		http.SetHeader("Authorization", "Bearer "+token)
	}

	return &Client{
		http: http,
		log:  log,
	}
}

// Recognize отправляет картинку на распознавание. Пустая строка — сбой
// или пустой результат; вызывающий подставит плейсхолдер.
func (c *Client) Recognize(ctx context.Context, image []byte) string {
	if len(image) == 0 {
		return ""
	}

	var out predictResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", "formula.png", bytes.NewReader(image)).
		SetResult(&out).
		Post("/predict/")
	if err != nil {
		c.log.Debug("Сбой распознавания формулы", zap.Error(err))
		return ""
	}
	if resp.IsError() {
		c.log.Debug("Сервис распознавания вернул ошибку", zap.Int("status", resp.StatusCode()))
		return ""
	}

	return out.Latex
}
