package quiz

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Теги, после которых ставится перенос строки при извлечении текста.
var blockTags = map[string]bool{
	"br": true, "p": true, "div": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"pre": true, "table": true,
}

// renderInline превращает innerHTML элемента в плоский текст.
// Каждый <img> заменяется маркером по позиции: i-я картинка в документе
// получает formulas[i]. Распознанный текст даёт "[formula: ...]",
// пустой — "[image]". Соответствие позиций 1:1 — ключевое свойство:
// картинок и маркеров всегда поровну, порядок слева направо сохраняется.
func renderInline(innerHTML string, formulas []string) string {
	doc, err := html.Parse(strings.NewReader(innerHTML))
	if err != nil {
		// Повреждённую разметку отдаём как есть, без тегов не разберёмся
		return CleanWhitespace(innerHTML)
	}

	var sb strings.Builder
	imgIndex := 0

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.ElementNode:
			switch n.Data {
			case "img":
				sb.WriteString(imageMarker(formulas, imgIndex))
				imgIndex++
				return
			case "script", "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			sb.WriteString("\n")
		}
	}
	walk(doc)

	return CleanWhitespace(sb.String())
}

func imageMarker(formulas []string, i int) string {
	if i < len(formulas) && formulas[i] != "" {
		return fmt.Sprintf(" [formula: %s] ", formulas[i])
	}
	return " [image] "
}
