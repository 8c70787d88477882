package quiz

import (
	"context"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"quizAgent/internal/logger"
)

// Текст модального окна, означающий, что вопросов больше нет.
const lastQuestionSentinel = "最后一题"

// isTerminalDialog распознаёт в тексте диалога сигнал последнего вопроса.
// Страница показывает его в вариациях вроде "已经是最后一题了。", поэтому
// сравнение по вхождению, а не по точному тексту.
func isTerminalDialog(msg string) bool {
	return strings.Contains(strings.TrimSpace(msg), lastQuestionSentinel)
}

// Navigator переходит к следующему вопросу и распознаёт терминальный сигнал.
// Все всплывающие диалоги принимаются и закрываются, их текст проверяется
// на сентинел последнего вопроса.
type Navigator struct {
	page        playwright.Page
	sel         Selectors
	shortWait   time.Duration
	staleWait   time.Duration
	log         *logger.Zap
	dialogTexts chan string
}

func NewNavigator(page playwright.Page, sel Selectors, shortWait, staleWait time.Duration, log *logger.Zap) *Navigator {
	n := &Navigator{
		page:        page,
		sel:         sel,
		shortWait:   shortWait,
		staleWait:   staleWait,
		log:         log,
		dialogTexts: make(chan string, 4),
	}

	page.OnDialog(func(dialog playwright.Dialog) {
		msg := strings.TrimSpace(dialog.Message())
		select {
		case n.dialogTexts <- msg:
		default:
		}
		if err := dialog.Accept(); err != nil {
			n.log.Debug("Не удалось закрыть диалог", zap.Error(err))
		}
	})

	return n
}

// Advance кликает "следующий вопрос", закрывает возможный диалог и ждёт,
// пока контейнер предыдущего вопроса не отвалится от DOM, чтобы следующий
// захват не прочитал старый вопрос. true — вопросы закончились.
// Ошибка клика фатальна: без кнопки перехода прогон продолжать нельзя.
func (n *Navigator) Advance(ctx context.Context, prev *Captured) (bool, error) {
	n.drainDialogs()

	err := n.page.Click(n.sel.NextButton, playwright.PageClickOptions{
		Timeout: playwright.Float(float64(n.staleWait.Milliseconds())),
	})
	if err != nil {
		return false, classifyError("advance_next", err)
	}

	isLast := false
	select {
	case msg := <-n.dialogTexts:
		if isTerminalDialog(msg) {
			isLast = true
		}
		n.log.Debug("Диалог после перехода", zap.String("text", msg))
	case <-time.After(n.shortWait):
	case <-ctx.Done():
		return false, ctx.Err()
	}

	if prev != nil && prev.item != nil {
		n.waitStale(ctx, prev.item)
	}

	return isLast, nil
}

// waitStale ждёт отсоединения элемента от живого DOM. Таймаут не фатален:
// следующий захват сам дождётся видимости нового вопроса.
func (n *Navigator) waitStale(ctx context.Context, el playwright.ElementHandle) {
	deadline := time.Now().Add(n.staleWait)
	for {
		v, err := el.Evaluate("el => el.isConnected")
		if err != nil {
			// Разрушенный execution context — элемент заведомо устарел
			return
		}
		if connected, ok := v.(bool); ok && !connected {
			return
		}
		if time.Now().After(deadline) {
			n.log.Debug("Старый вопрос не устарел за таймаут, страница могла не обновиться")
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(200 * time.Millisecond):
		}
	}
}

func (n *Navigator) drainDialogs() {
	for {
		select {
		case <-n.dialogTexts:
		default:
			return
		}
	}
}
