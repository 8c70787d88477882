package quiz

import (
	"regexp"
	"strings"
)

// Регулярка для разбора подписи варианта: "A. 文本" → ("A", "文本").
var optionLabelRe = regexp.MustCompile(`^([A-Z])\s*[\x{3001}\x{FF0E}.]?\s*(.*)$`)

var (
	whitespaceRe = regexp.MustCompile(`[\s\p{Zs}]+`)
	fillSplitRe  = regexp.MustCompile(`[|,\x{FF0C}]`)
	letterRe     = regexp.MustCompile(`[A-Z]`)
)

// CleanWhitespace сжимает любые пробельные последовательности в один пробел
// и убирает пробелы по краям.
func CleanWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// SplitFillAnswer делит ответ LLM на части по пропускам.
// Разделители: | , и полноширинная запятая. Пустые части отбрасываются.
func SplitFillAnswer(raw string) []string {
	parts := fillSplitRe.Split(raw, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseOptionLabel разбирает подпись варианта на букву и текст.
// Если буквенного префикса нет, возвращает пустую букву и исходный текст.
func ParseOptionLabel(raw string) (key, text string) {
	t := strings.TrimSpace(raw)
	if m := optionLabelRe.FindStringSubmatch(t); m != nil {
		return m[1], strings.TrimSpace(m[2])
	}
	return "", t
}

// ExtractLetter достаёт из ответа LLM первую заглавную букву, входящую в
// список допустимых вариантов. Пустая строка — буква не найдена.
func ExtractLetter(answer string, validLetters []string) string {
	text := strings.ToUpper(strings.TrimSpace(answer))
	m := letterRe.FindString(text)
	if m == "" {
		return ""
	}
	if len(validLetters) == 0 {
		return m
	}
	for _, l := range validLetters {
		if l == m {
			return m
		}
	}
	return ""
}

// Truncate обрезает строку для логов и записей в БД.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
