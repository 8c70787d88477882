// Package llm оборачивает DeepSeek Chat API (OpenAI-совместимый протокол).
// Включает rate limiting, повторы и запись запросов в базу данных.
package llm

import "context"

// Recorder сохраняет пары промпт/ответ. Реализуется репозиторием БД;
// nil-recorder допустим, тогда запросы не сохраняются.
type Recorder interface {
	LogLLMRequest(ctx context.Context, runID *uint, role, promptText, responseText, model string, tokensUsed int) error
}

// AnswerBackend — граница внешнего текстового сервиса: промпт на входе,
// текст на выходе. Любой сбой апстрима превращается в пустую строку,
// ошибки за границу не выходят.
type AnswerBackend interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) string
}
