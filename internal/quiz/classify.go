package quiz

import "strings"

// Kind — стратегия ответа на вопрос.
type Kind int

const (
	KindUnknown Kind = iota
	KindChoice       // одиночный выбор или суждение
	KindFill         // заполнение пропусков
	KindCode         // программирование, SQL, проектирование, исправление кода
)

func (k Kind) String() string {
	switch k {
	case KindChoice:
		return "choice"
	case KindFill:
		return "fill"
	case KindCode:
		return "code"
	default:
		return "unknown"
	}
}

// Подстроки тега, дающие кодовый вопрос. Проверяются после choice и fill,
// чтобы тег вроде PROGRAM_FILL ушёл в fill, а не в code.
var codeTagMarkers = []string{"PROGRAM", "SQL", "DESIGN", "CORRECT", "DB_SQL"}

// Classify отображает тег типа вопроса в стратегию ответа.
// Сравнение регистронезависимое, по вхождению подстроки.
func Classify(typeTag string) Kind {
	tag := strings.ToUpper(typeTag)

	if strings.Contains(tag, "SINGLE") || strings.Contains(tag, "JUDGE") {
		return KindChoice
	}
	if strings.Contains(tag, "FILL") {
		return KindFill
	}
	for _, marker := range codeTagMarkers {
		if strings.Contains(tag, marker) {
			return KindCode
		}
	}
	return KindUnknown
}

// ClassifyWithDefault повторяет Classify, но при включённом unknownAsCode
// трактует нераспознанный тег как кодовый вопрос. Исходные скрипты расходились
// в этом поведении, поэтому оно вынесено в настройку.
func ClassifyWithDefault(typeTag string, unknownAsCode bool) Kind {
	kind := Classify(typeTag)
	if kind == KindUnknown && unknownAsCode {
		return KindCode
	}
	return kind
}
