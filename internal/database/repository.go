package database

import (
	"context"

	"gorm.io/gorm"
)

type RunRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) CreateRun(run *QuizRun) error {
	return r.db.Create(run).Error
}

func (r *RunRepository) FinishRun(id uint, status string, questions int) error {
	return r.db.Model(&QuizRun{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":    status,
			"questions": questions,
		}).Error
}

func (r *RunRepository) CreateAnswer(rec *AnswerRecord) error {
	return r.db.Create(rec).Error
}

func (r *RunRepository) ListAnswers(runID uint) ([]AnswerRecord, error) {
	var records []AnswerRecord
	if err := r.db.Where("run_id = ?", runID).Order("seq ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// LogLLMRequest реализует llm.Recorder.
func (r *RunRepository) LogLLMRequest(ctx context.Context, runID *uint, role, promptText, responseText, model string, tokensUsed int) error {
	return r.db.WithContext(ctx).Create(&LlmLog{
		RunID:        runID,
		Role:         role,
		PromptText:   promptText,
		ResponseText: responseText,
		Model:        model,
		TokensUsed:   tokensUsed,
	}).Error
}
