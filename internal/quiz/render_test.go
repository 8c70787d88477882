package quiz

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var markerRe = regexp.MustCompile(`\[formula: [^\]]*\]|\[image\]`)

func TestRenderInline(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		formulas []string
		want     string
	}{
		{
			name:     "plain text",
			html:     "求下列极限",
			formulas: nil,
			want:     "求下列极限",
		},
		{
			name:     "recognized formula keeps position",
			html:     `设 <img src="a.png"> 则结果为`,
			formulas: []string{`\frac{1}{2}`},
			want:     `设 [formula: \frac{1}{2}] 则结果为`,
		},
		{
			name:     "unrecognized image becomes placeholder",
			html:     `前 <img src="a.png"> 后`,
			formulas: []string{""},
			want:     "前 [image] 后",
		},
		{
			name:     "br and block tags separate text",
			html:     "<p>один</p><p>два</p>три<br>четыре",
			formulas: nil,
			want:     "один два три четыре",
		},
		{
			name:     "tags stripped whitespace collapsed",
			html:     "  <span>a</span>\n\n<b> b </b>  ",
			formulas: nil,
			want:     "a b",
		},
		{
			name:     "script and style skipped",
			html:     "текст<script>var x=1;</script><style>.a{}</style>",
			formulas: nil,
			want:     "текст",
		},
		{
			name:     "more images than formulas",
			html:     `<img src="a"><img src="b">`,
			formulas: []string{"x"},
			want:     "[formula: x] [image]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderInline(tt.html, tt.formulas))
		})
	}
}

// Ключевое свойство: N картинок дают ровно N маркеров в исходном порядке
// слева направо, независимо от исхода распознавания каждой.
func TestRenderInlineImageOrdering(t *testing.T) {
	const n = 7

	var sb strings.Builder
	formulas := make([]string, n)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "текст%d <img src=\"%d.png\"> ", i, i)
		// Чередуем успешное и неуспешное распознавание
		if i%2 == 0 {
			formulas[i] = fmt.Sprintf("f_%d", i)
		}
	}

	out := renderInline(sb.String(), formulas)

	markers := markerRe.FindAllString(out, -1)
	require.Len(t, markers, n, "маркеров ровно столько же, сколько картинок")

	for i, m := range markers {
		if i%2 == 0 {
			assert.Equal(t, fmt.Sprintf("[formula: f_%d]", i), m)
		} else {
			assert.Equal(t, "[image]", m)
		}
	}

	// Текст между картинками сохраняет взаимный порядок с маркерами
	for i := 0; i < n; i++ {
		textPos := strings.Index(out, fmt.Sprintf("текст%d", i))
		markerPos := indexOfNthMarker(out, i)
		assert.Less(t, textPos, markerPos, "текст %d стоит до своего маркера", i)
	}
}

func indexOfNthMarker(s string, n int) int {
	locs := markerRe.FindAllStringIndex(s, -1)
	if n >= len(locs) {
		return -1
	}
	return locs[n][0]
}

func TestRenderInlineNestedImages(t *testing.T) {
	html := `<div>a <span>b <img src="1"></span></div><div><img src="2"> c</div>`
	out := renderInline(html, []string{"first", "second"})

	first := strings.Index(out, "[formula: first]")
	second := strings.Index(out, "[formula: second]")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second, "порядок DOM сохраняется и при вложенности")
}
