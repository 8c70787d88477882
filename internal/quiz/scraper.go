package quiz

import (
	"context"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"quizAgent/internal/logger"
)

// FormulaRecognizer — внешний распознаватель формул: картинка на входе,
// текст на выходе. Сбой распознавания — пустая строка, не ошибка.
type FormulaRecognizer interface {
	Recognize(ctx context.Context, image []byte) string
}

// Captured — результат захвата вопроса: снимок плюс живой хэндл контейнера,
// по которому Navigator отслеживает устаревание после перехода.
type Captured struct {
	Snapshot QuestionSnapshot

	item playwright.ElementHandle
}

// BlankInput — отладочный срез одного поля ввода пропуска.
type BlankInput struct {
	Index   int
	Label   string
	InputID string
	Value   string
}

// Scraper читает структуру текущего вопроса из живого DOM.
type Scraper struct {
	page        playwright.Page
	sel         Selectors
	ocr         FormulaRecognizer // nil — распознавание выключено
	waitTimeout time.Duration
	log         *logger.Zap
}

func NewScraper(page playwright.Page, sel Selectors, ocr FormulaRecognizer, waitTimeout time.Duration, log *logger.Zap) *Scraper {
	return &Scraper{
		page:        page,
		sel:         sel,
		ocr:         ocr,
		waitTimeout: waitTimeout,
		log:         log,
	}
}

// CaptureQuestion блокируется до видимости контейнера вопроса и собирает
// его снимок: id, тип, текст с внедрёнными формулами, варианты ответа.
func (s *Scraper) CaptureQuestion(ctx context.Context) (*Captured, error) {
	item, err := s.page.WaitForSelector(s.sel.QuestionItem, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(s.waitTimeout.Milliseconds())),
	})
	if err != nil {
		return nil, classifyError("capture_question", err)
	}

	id, _ := item.GetAttribute("id")
	typeTag, _ := item.GetAttribute("data-type")
	typeTag = strings.ToUpper(strings.TrimSpace(typeTag))

	face, err := s.page.WaitForSelector(s.sel.QuestionFace, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(s.waitTimeout.Milliseconds())),
	})
	if err != nil {
		return nil, classifyError("capture_question_face", err)
	}

	text := s.renderWithInlineFormulas(ctx, face)

	var options []Option
	labels, err := s.page.QuerySelectorAll(s.sel.AnswerLabels)
	if err == nil {
		for _, lab := range labels {
			labelText := s.renderWithInlineFormulas(ctx, lab)
			key, optText := ParseOptionLabel(labelText)
			options = append(options, Option{Key: key, Text: optText})
		}
	}

	return &Captured{
		Snapshot: QuestionSnapshot{
			ID:      id,
			TypeTag: typeTag,
			Text:    text,
			Options: options,
		},
		item: item,
	}, nil
}

// renderWithInlineFormulas превращает содержимое элемента в плоский текст.
// Картинки собираются заранее в порядке DOM и распознаются парным списком,
// после чего i-й <img> в разметке получает i-й распознанный текст.
func (s *Scraper) renderWithInlineFormulas(ctx context.Context, el playwright.ElementHandle) string {
	innerHTML, err := el.InnerHTML()
	if err != nil || innerHTML == "" {
		// Без разметки остаётся только чистый текст
		txt, _ := el.TextContent()
		return CleanWhitespace(txt)
	}

	imgs, err := el.QuerySelectorAll("img")
	if err != nil {
		imgs = nil
	}

	formulas := s.recognizeAll(ctx, imgs)
	return renderInline(innerHTML, formulas)
}

// recognizeAll возвращает список распознанных текстов той же длины, что imgs.
// Любой сбой по пути даёт пустую строку в соответствующей позиции.
func (s *Scraper) recognizeAll(ctx context.Context, imgs []playwright.ElementHandle) []string {
	formulas := make([]string, len(imgs))
	if s.ocr == nil {
		return formulas
	}

	for i, img := range imgs {
		shot, err := img.Screenshot()
		if err != nil || len(shot) == 0 {
			s.log.Debug("Не удалось снять скриншот картинки", zap.Int("index", i), zap.Error(err))
			continue
		}
		formulas[i] = s.ocr.Recognize(ctx, shot)
	}
	return formulas
}

// CaptureCodeQuestionPrompt собирает полный текст кодового вопроса:
// все области описания плюс стартовый код из <pre>. Если структурных
// частей нет, возвращает сырой текст областей описания.
func (s *Scraper) CaptureCodeQuestionPrompt(ctx context.Context) (string, error) {
	faces, err := s.page.QuerySelectorAll(s.sel.QuestionFaces)
	if err != nil {
		return "", notFound("capture_code_prompt", err)
	}

	var faceTexts []string
	for _, el := range faces {
		if txt := s.renderWithInlineFormulas(ctx, el); txt != "" {
			faceTexts = append(faceTexts, txt)
		}
	}
	faceText := strings.TrimSpace(strings.Join(faceTexts, "\n"))

	var templates []string
	pres, err := s.page.QuerySelectorAll(s.sel.CodeTemplatePre)
	if err == nil {
		for _, pre := range pres {
			txt, err := pre.TextContent()
			if err != nil {
				continue
			}
			txt = strings.Trim(strings.ReplaceAll(txt, "\r\n", "\n"), "\n")
			if txt != "" {
				templates = append(templates, txt)
			}
		}
	}

	var parts []string
	if faceText != "" {
		parts = append(parts, codePromptFaceHeader, faceText)
	}
	if len(templates) > 0 {
		parts = append(parts, codePromptTemplateHeader, strings.Join(templates, "\n\n"))
	}

	if len(parts) == 0 {
		var raw []string
		for _, el := range faces {
			txt, err := el.TextContent()
			if err != nil {
				continue
			}
			raw = append(raw, strings.TrimSpace(txt))
		}
		return strings.TrimSpace(strings.Join(raw, "\n")), nil
	}

	return strings.Join(parts, "\n\n"), nil
}

// SnapshotBlanks снимает отладочный срез полей ввода пропусков:
// подпись, id и текущее значение каждого поля.
func (s *Scraper) SnapshotBlanks(ctx context.Context) []BlankInput {
	inputs, err := s.page.QuerySelectorAll(s.sel.BlankInputs)
	if err != nil {
		return nil
	}

	result := make([]BlankInput, 0, len(inputs))
	for i, inp := range inputs {
		label := ""
		if v, err := inp.Evaluate(`el => {
			const l = el.previousElementSibling;
			return l && l.tagName === 'LABEL' ? l.textContent.trim() : '';
		}`); err == nil {
			if s, ok := v.(string); ok {
				label = s
			}
		}
		id, _ := inp.GetAttribute("id")
		value, _ := inp.InputValue()

		result = append(result, BlankInput{
			Index:   i + 1,
			Label:   label,
			InputID: id,
			Value:   value,
		})
	}
	return result
}
