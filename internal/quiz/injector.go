package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"quizAgent/internal/logger"
)

// EditorBackend — одна из взаимоисключающих реализаций виджета ответа.
// TryWrite не выбрасывает ошибок наружу: либо записал, либо нет.
type EditorBackend interface {
	Name() string
	TryWrite(ctx context.Context, content string) bool
}

// Injector пишет ответ в тот виджет, который страница отрендерила для
// текущего вопроса. Бэкенды пробуются строго по порядку до первого успеха.
type Injector struct {
	page     playwright.Page
	sel      Selectors
	short    time.Duration
	log      *logger.Zap
	backends []EditorBackend
}

func NewInjector(page playwright.Page, sel Selectors, short time.Duration, log *logger.Zap) *Injector {
	in := &Injector{
		page:  page,
		sel:   sel,
		short: short,
		log:   log,
	}
	in.backends = []EditorBackend{
		&tinyMCEBackend{page: page, sel: sel},
		&monacoBackend{page: page, sel: sel},
		&textareaBackend{page: page, sel: sel, timeout: short},
		&contentEditableBackend{page: page, sel: sel, timeout: short},
	}
	return in
}

// WriteAnswer записывает содержимое в первый сработавший бэкенд.
// false — все четыре попытки не нашли или не записали цель; это
// сообщаемое, но не фатальное состояние.
func (in *Injector) WriteAnswer(ctx context.Context, content string) bool {
	for _, b := range in.backends {
		if b.TryWrite(ctx, content) {
			in.log.Debug("Ответ записан", zap.String("backend", b.Name()))
			return true
		}
		in.log.Debug("Бэкенд не сработал", zap.String("backend", b.Name()))
	}
	return false
}

// EnsureEditor ждёт появления любого кандидата редактора. Таймаут не
// фатален: запись всё равно будет попробована.
func (in *Injector) EnsureEditor(ctx context.Context) {
	_, err := in.page.WaitForSelector(in.sel.AnyEditorCandidates, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(in.short.Milliseconds())),
	})
	if err != nil {
		in.log.Debug("Кандидаты редактора не появились за таймаут, пробуем писать вслепую")
	}
}

// SelectOption кликает по варианту с заданной буквой. Виджеты выбора на
// странице единообразны, цепочка бэкендов здесь не нужна.
func (in *Injector) SelectOption(ctx context.Context, letter string) error {
	css := fmt.Sprintf(in.sel.OptionInputByValue, letter)
	err := in.page.Click(css, playwright.PageClickOptions{
		Timeout: playwright.Float(float64(in.short.Milliseconds()) * 2),
	})
	if err != nil {
		return classifyError("select_option", err)
	}
	return nil
}

// FillBlanks раскладывает ответ по полям ввода по позициям. Частей меньше,
// чем полей — лишние поля очищаются. В конце пробует сохранить.
func (in *Injector) FillBlanks(ctx context.Context, answerText string) error {
	parts := SplitFillAnswer(answerText)

	inputs, err := in.page.QuerySelectorAll(in.sel.BlankInputs)
	if err != nil {
		return notFound("fill_blanks", err)
	}

	for i, inp := range inputs {
		val := ""
		if i < len(parts) {
			val = parts[i]
		}
		if err := inp.Fill(val); err != nil {
			in.log.Warn("Не удалось заполнить пропуск", zap.Int("index", i+1), zap.Error(err))
		}
	}

	in.TrySave(ctx)
	return nil
}

// TrySave кликает по кнопке сохранения, если она есть и активна.
// Отсутствие кнопки — нормальная ситуация.
func (in *Injector) TrySave(ctx context.Context) {
	err := in.page.Click(in.sel.SaveButton, playwright.PageClickOptions{
		Timeout: playwright.Float(float64(in.short.Milliseconds())),
	})
	if err != nil {
		in.log.Debug("Кнопка сохранения не найдена или неактивна", zap.Error(err))
	}
}

// ---- Бэкенды ----

// tinyMCEBackend пишет в TinyMCE, привязанный к textarea.question-design-input,
// и шлёт событие change.
type tinyMCEBackend struct {
	page playwright.Page
	sel  Selectors
}

func (b *tinyMCEBackend) Name() string { return "tinymce" }

func (b *tinyMCEBackend) TryWrite(ctx context.Context, content string) bool {
	result, err := b.page.Evaluate(`args => {
		try {
			if (window.tinymce && Array.isArray(tinymce.editors) && tinymce.editors.length) {
				let ok = false;
				tinymce.editors.forEach(ed => {
					try {
						const t = ed && ed.targetElm;
						if (t && t.matches && t.matches(args.selector)) {
							ed.setContent(args.content);
							ed.fire('change');
							ok = true;
						}
					} catch (e) {}
				});
				return ok;
			}
		} catch (e) {}
		return false;
	}`, map[string]interface{}{
		"content":  content,
		"selector": b.sel.DesignTextarea,
	})
	if err != nil {
		return false
	}
	ok, _ := result.(bool)
	return ok
}

// monacoBackend ищет один из известных iframe-контейнеров, входит в его
// фрейм и вызывает setValue на глобальном редакторе или модели. Фреймы в
// playwright адресуются на каждый вызов, контекст родительского документа
// не переключается и восстанавливать его не нужно.
type monacoBackend struct {
	page playwright.Page
	sel  Selectors
}

func (b *monacoBackend) Name() string { return "monaco" }

func (b *monacoBackend) TryWrite(ctx context.Context, content string) bool {
	for _, frameCSS := range b.sel.EditorFrames {
		if b.tryFrame(frameCSS, content) {
			return true
		}
	}
	return false
}

func (b *monacoBackend) tryFrame(frameCSS, content string) bool {
	el, err := b.page.QuerySelector(frameCSS)
	if err != nil || el == nil {
		return false
	}

	frame, err := el.ContentFrame()
	if err != nil || frame == nil {
		return false
	}

	result, err := frame.Evaluate(`value => {
		try {
			if (window.editor && typeof window.editor.setValue === 'function') {
				window.editor.setValue(value); return true;
			}
			if (window.monaco && monaco.editor) {
				if (monaco.editor.getEditors) {
					const eds = monaco.editor.getEditors();
					if (eds && eds.length) { eds[0].setValue(value); return true; }
				}
				if (monaco.editor.getModels) {
					const models = monaco.editor.getModels();
					if (models && models.length) { models[0].setValue(value); return true; }
				}
			}
		} catch (e) {}
		return false;
	}`, content)
	if err != nil {
		return false
	}
	ok, _ := result.(bool)
	return ok
}

// textareaBackend пишет в обычный многострочный textarea и шлёт input/change.
type textareaBackend struct {
	page    playwright.Page
	sel     Selectors
	timeout time.Duration
}

func (b *textareaBackend) Name() string { return "textarea" }

func (b *textareaBackend) TryWrite(ctx context.Context, content string) bool {
	ta, err := b.page.WaitForSelector(b.sel.DesignTextarea, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(b.timeout.Milliseconds())),
	})
	if err != nil || ta == nil {
		return false
	}

	_, err = ta.Evaluate(`(el, val) => {
		el.value = val;
		el.dispatchEvent(new Event('input', {bubbles: true}));
		el.dispatchEvent(new Event('change', {bubbles: true}));
	}`, content)
	return err == nil
}

// contentEditableBackend пишет в редактируемую область: сперва в
// #question_content, затем в любой [contenteditable='true'].
type contentEditableBackend struct {
	page    playwright.Page
	sel     Selectors
	timeout time.Duration
}

func (b *contentEditableBackend) Name() string { return "contenteditable" }

func (b *contentEditableBackend) TryWrite(ctx context.Context, content string) bool {
	target, err := b.page.WaitForSelector(b.sel.ContentEditableID, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(b.timeout.Milliseconds())),
	})
	if err != nil || target == nil {
		target, err = b.page.WaitForSelector(b.sel.ContentEditableAny, playwright.PageWaitForSelectorOptions{
			State:   playwright.WaitForSelectorStateAttached,
			Timeout: playwright.Float(float64(b.timeout.Milliseconds())),
		})
		if err != nil || target == nil {
			return false
		}
	}

	_, err = target.Evaluate(`(el, val) => {
		el.textContent = val;
		el.dispatchEvent(new Event('input', {bubbles: true}));
		el.dispatchEvent(new Event('change', {bubbles: true}));
	}`, content)
	return err == nil
}
