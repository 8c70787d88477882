// Package database хранит историю прогонов в PostgreSQL через GORM.
// Персистентность опциональна: без настроенной БД репозиторий равен nil.
package database

import "time"

// QuizRun представляет один прогон по странице с вопросами.
// Статусы: running, completed, failed.
type QuizRun struct {
	ID        uint      `gorm:"primaryKey"`
	URL       string    `gorm:"type:text;not null"`
	Language  string    `gorm:"type:varchar(64)"`                             // язык программирования для кодовых вопросов
	Status    string    `gorm:"type:varchar(32);not null;default:'running'"`  // статус прогона
	Questions int       `gorm:"not null;default:0"`                           // сколько вопросов пройдено
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// AnswerRecord — результат по одному вопросу.
// Статусы: answered, skipped, failed.
type AnswerRecord struct {
	ID         uint      `gorm:"primaryKey"`
	RunID      uint      `gorm:"index;not null"`
	Seq        int       `gorm:"not null"`                  // порядковый номер вопроса в прогоне
	QuestionID string    `gorm:"type:varchar(128)"`         // id контейнера вопроса на странице
	TypeTag    string    `gorm:"type:varchar(64)"`          // исходный data-type страницы
	Kind       string    `gorm:"type:varchar(16)"`          // выбранная стратегия ответа
	Answer     string    `gorm:"type:text"`                 // ответ (усечённый)
	Status     string    `gorm:"type:varchar(16);not null"` // итог по вопросу
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// StatusCounts агрегирует записи прогона по статусу для итоговой сводки.
func StatusCounts(records []AnswerRecord) map[string]int {
	counts := make(map[string]int, 3)
	for _, rec := range records {
		counts[rec.Status]++
	}
	return counts
}

// LlmLog — лог одного запроса к LLM: промпт, ответ, модель, токены.
type LlmLog struct {
	ID           uint      `gorm:"primaryKey"`
	RunID        *uint     `gorm:"index"`                     // прогон (опционально)
	Role         string    `gorm:"type:varchar(16);not null"` // assistant или error
	PromptText   string    `gorm:"type:text;not null"`
	ResponseText string    `gorm:"type:text"`
	Model        string    `gorm:"type:varchar(64)"`
	TokensUsed   int
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}
