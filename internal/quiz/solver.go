package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"quizAgent/internal/database"
	"quizAgent/internal/llm"
	"quizAgent/internal/logger"
)

// Интерфейсы компонентов цикла. Реальные реализации — Scraper, Injector,
// Navigator этого же пакета; в тестах подставляются фейки.

type questionSource interface {
	CaptureQuestion(ctx context.Context) (*Captured, error)
	CaptureCodeQuestionPrompt(ctx context.Context) (string, error)
	SnapshotBlanks(ctx context.Context) []BlankInput
}

type answerWriter interface {
	WriteAnswer(ctx context.Context, content string) bool
	EnsureEditor(ctx context.Context)
	SelectOption(ctx context.Context, letter string) error
	FillBlanks(ctx context.Context, answerText string) error
	TrySave(ctx context.Context)
}

type advancer interface {
	Advance(ctx context.Context, prev *Captured) (bool, error)
}

type Config struct {
	Language      string
	UnknownAsCode bool
	RunID         *uint // прогон в БД; nil — без персистентности
	WaitTimeout   time.Duration
	ShortTimeout  time.Duration
	Selectors     Selectors
}

// Solver гоняет машину состояний CAPTURE → CLASSIFY → ANSWER → INJECT →
// ADVANCE по одному вопросу за раз. Сбой на одном вопросе деградирует до
// пропуска, прогон продолжается; фатальны только ошибки перехода.
type Solver struct {
	page      playwright.Page
	scraper   questionSource
	injector  answerWriter
	navigator advancer
	backend   llm.AnswerBackend
	repo      *database.RunRepository
	log       *logger.Zap
	cfg       Config
}

func NewSolver(page playwright.Page, backend llm.AnswerBackend, ocr FormulaRecognizer, repo *database.RunRepository, log *logger.Zap, cfg Config) *Solver {
	if cfg.WaitTimeout == 0 {
		cfg.WaitTimeout = 15 * time.Second
	}
	if cfg.ShortTimeout == 0 {
		cfg.ShortTimeout = 3 * time.Second
	}
	if cfg.Selectors.QuestionItem == "" {
		cfg.Selectors = DefaultSelectors()
	}
	if cfg.Language == "" {
		cfg.Language = "C语言"
	}

	return &Solver{
		page:      page,
		scraper:   NewScraper(page, cfg.Selectors, ocr, cfg.WaitTimeout, log),
		injector:  NewInjector(page, cfg.Selectors, cfg.ShortTimeout, log),
		navigator: NewNavigator(page, cfg.Selectors, cfg.ShortTimeout, cfg.WaitTimeout, log),
		backend:   backend,
		repo:      repo,
		log:       log,
		cfg:       cfg,
	}
}

// Run крутит цикл до терминального сигнала. Возвращает ошибку только при
// невозможности продолжать: не захватился вопрос или не удался переход.
func (s *Solver) Run(ctx context.Context) error {
	count := 1
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		captured, err := s.scraper.CaptureQuestion(ctx)
		if err != nil {
			s.finishRun("failed", count-1)
			return fmt.Errorf("захват вопроса %d: %w", count, err)
		}
		q := &captured.Snapshot

		kind := ClassifyWithDefault(q.TypeTag, s.cfg.UnknownAsCode)
		s.log.Info("Вопрос",
			zap.Int("index", count),
			zap.String("qid", q.ID),
			zap.String("type", q.TypeTag),
			zap.String("kind", kind.String()))

		answer, err := s.answerQuestion(ctx, q, kind)
		status := "answered"
		switch {
		case err == nil:
		case IsType(err, ErrorTypeUnknownType):
			status = "skipped"
			s.log.Warn("Неизвестный тип вопроса, пропускаем", zap.String("type", q.TypeTag))
		default:
			// Один плохой вопрос не останавливает прогон
			status = "failed"
			s.log.Warn("Ошибка при ответе, вопрос пропущен", zap.Int("index", count), zap.Error(err))
		}
		s.recordAnswer(count, q, kind, answer, status)

		isLast, err := s.navigator.Advance(ctx, captured)
		if err != nil {
			s.finishRun("failed", count)
			return fmt.Errorf("переход после вопроса %d: %w", count, err)
		}
		if isLast {
			s.log.Info("Достигнут последний вопрос, прогон завершён", zap.Int("questions", count))
			s.finishRun("completed", count)
			return nil
		}

		count++
	}
}

// answerQuestion выполняет шаги CLASSIFY → ANSWER → INJECT для одного
// вопроса. Любая ошибка здесь восстановима: цикл перейдёт дальше.
func (s *Solver) answerQuestion(ctx context.Context, q *QuestionSnapshot, kind Kind) (string, error) {
	switch kind {
	case KindChoice:
		return s.answerChoice(ctx, q)
	case KindFill:
		return s.answerFill(ctx, q)
	case KindCode:
		return s.answerCode(ctx)
	default:
		return "", newError(ErrorTypeUnknownType, "classify", fmt.Errorf("тег %q", q.TypeTag))
	}
}

func (s *Solver) answerChoice(ctx context.Context, q *QuestionSnapshot) (string, error) {
	reply := s.backend.Ask(ctx, choiceSystemPrompt(s.cfg.Language), q.PromptText())
	s.log.Info("Ответ LLM (выбор)", zap.String("reply", Truncate(reply, 120)))

	valid := q.ValidLetters()
	letter := ExtractLetter(reply, valid)
	if letter == "" {
		letter = "A"
		if len(valid) > 0 {
			letter = valid[0]
		}
		s.log.Warn("Буква не распознана, используем запасной вариант", zap.String("letter", letter))
	}

	if err := s.injector.SelectOption(ctx, letter); err != nil {
		return letter, err
	}
	return letter, nil
}

func (s *Solver) answerFill(ctx context.Context, q *QuestionSnapshot) (string, error) {
	// Текст вопроса уже содержит маркеры формул на исходных позициях
	reply := s.backend.Ask(ctx, fillSystemPrompt(s.cfg.Language), q.Text)
	if reply == "" {
		return "", newError(ErrorTypeUpstream, "llm_ask", fmt.Errorf("пустой ответ на вопрос с пропусками"))
	}
	s.log.Info("Ответ LLM (пропуски)", zap.String("reply", Truncate(reply, 120)))
	s.log.Debug("Срез полей ввода", zap.Any("blanks", s.scraper.SnapshotBlanks(ctx)))

	if err := s.injector.FillBlanks(ctx, reply); err != nil {
		return reply, err
	}
	return reply, nil
}

func (s *Solver) answerCode(ctx context.Context) (string, error) {
	promptText, err := s.scraper.CaptureCodeQuestionPrompt(ctx)
	if err != nil {
		return "", err
	}

	s.injector.EnsureEditor(ctx)

	reply := s.backend.Ask(ctx, codeSystemPrompt(s.cfg.Language), promptText)
	if reply == "" {
		return "", newError(ErrorTypeUpstream, "llm_ask", fmt.Errorf("пустой ответ на кодовый вопрос"))
	}
	s.log.Info("Ответ LLM (код)", zap.Int("chars", len(reply)))

	if !s.injector.WriteAnswer(ctx, reply) {
		s.injector.TrySave(ctx)
		return reply, newError(ErrorTypeInjection, "write_answer", fmt.Errorf("все бэкенды редактора исчерпаны"))
	}

	s.injector.TrySave(ctx)
	return reply, nil
}

func (s *Solver) recordAnswer(seq int, q *QuestionSnapshot, kind Kind, answer, status string) {
	if s.repo == nil || s.cfg.RunID == nil {
		return
	}
	err := s.repo.CreateAnswer(&database.AnswerRecord{
		RunID:      *s.cfg.RunID,
		Seq:        seq,
		QuestionID: q.ID,
		TypeTag:    q.TypeTag,
		Kind:       kind.String(),
		Answer:     Truncate(answer, 2000),
		Status:     status,
	})
	if err != nil {
		s.log.Warn("Не удалось сохранить запись об ответе", zap.Error(err))
	}
}

func (s *Solver) finishRun(status string, questions int) {
	if s.repo == nil || s.cfg.RunID == nil {
		return
	}
	if err := s.repo.FinishRun(*s.cfg.RunID, status, questions); err != nil {
		s.log.Warn("Не удалось обновить статус прогона", zap.Error(err))
	}
}
