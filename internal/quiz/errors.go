package quiz

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorType int

const (
	// ErrorTypeNotFound — нужный узел не появился за отведённый таймаут.
	// Восстановимо для захвата и записи ответа, фатально для кнопки перехода.
	ErrorTypeNotFound ErrorType = iota
	// ErrorTypeStale — сохранённый элемент больше не соответствует живому DOM.
	ErrorTypeStale
	// ErrorTypeUnknownType — классификатор не распознал тип вопроса.
	ErrorTypeUnknownType
	// ErrorTypeInjection — все бэкенды записи ответа исчерпаны.
	ErrorTypeInjection
	// ErrorTypeUpstream — сбой внешнего сервиса (LLM или распознавание формул).
	ErrorTypeUpstream
)

func (e ErrorType) String() string {
	switch e {
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeStale:
		return "stale"
	case ErrorTypeUnknownType:
		return "unknown_type"
	case ErrorTypeInjection:
		return "injection"
	case ErrorTypeUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

type QuizError struct {
	Type ErrorType
	Op   string
	Err  error
}

func (e *QuizError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Type)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Type, e.Err)
}

func (e *QuizError) Unwrap() error {
	return e.Err
}

func newError(t ErrorType, op string, err error) *QuizError {
	return &QuizError{Type: t, Op: op, Err: err}
}

func notFound(op string, err error) *QuizError {
	return newError(ErrorTypeNotFound, op, err)
}

// IsType сообщает, относится ли ошибка к указанной категории.
func IsType(err error, t ErrorType) bool {
	var qe *QuizError
	if errors.As(err, &qe) {
		return qe.Type == t
	}
	return false
}

// classifyError приводит ошибку playwright к внутренней таксономии.
// Таймауты ожидания селекторов считаются not_found, разрушенный execution
// context после перерисовки страницы — stale.
func classifyError(op string, err error) *QuizError {
	if err == nil {
		return nil
	}

	var qe *QuizError
	if errors.As(err, &qe) {
		return qe
	}

	errStr := err.Error()

	if strings.Contains(errStr, "Timeout") || strings.Contains(errStr, "timeout") {
		return newError(ErrorTypeNotFound, op, err)
	}

	if strings.Contains(errStr, "detached") ||
		strings.Contains(errStr, "Execution context was destroyed") ||
		strings.Contains(errStr, "stale") {
		return newError(ErrorTypeStale, op, err)
	}

	return newError(ErrorTypeNotFound, op, err)
}
