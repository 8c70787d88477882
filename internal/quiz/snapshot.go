package quiz

import "strings"

// Option — один вариант ответа, разобранный из подписи вида "A. 文本".
type Option struct {
	Key  string // буква варианта, например "A"; пустая, если префикс не распознан
	Text string
}

// QuestionSnapshot — неизменяемый снимок одного вопроса на экране.
// Создаётся заново на каждой итерации цикла и не переживает переход
// к следующему вопросу.
type QuestionSnapshot struct {
	ID      string
	TypeTag string // data-type страницы, в верхнем регистре, например SINGLE_CHIOCE
	Text    string
	Options []Option
}

// ValidLetters возвращает буквы вариантов, у которых распознан префикс,
// в экранном порядке.
func (q *QuestionSnapshot) ValidLetters() []string {
	letters := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		if o.Key != "" {
			letters = append(letters, o.Key)
		}
	}
	return letters
}

// PromptText собирает текст вопроса с вариантами для передачи LLM.
func (q *QuestionSnapshot) PromptText() string {
	lines := make([]string, 0, len(q.Options)+1)
	lines = append(lines, q.Text)
	for _, opt := range q.Options {
		line := opt.Text
		if opt.Key != "" {
			line = opt.Key + ". " + opt.Text
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
