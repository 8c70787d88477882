package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		tag  string
		want Kind
	}{
		{tag: "SINGLE_CHIOCE", want: KindChoice},
		{tag: "JUDGE", want: KindChoice},
		{tag: "single_chioce", want: KindChoice},
		{tag: "FILL_BLANK", want: KindFill},
		{tag: "PROGRAM_DESIGN", want: KindCode},
		{tag: "DB_SQL", want: KindCode},
		{tag: "SQL_QUERY", want: KindCode},
		{tag: "CODE_CORRECT", want: KindCode},
		{tag: "WEB_DESIGN", want: KindCode},
		{tag: "ESSAY_FREEFORM", want: KindUnknown},
		{tag: "", want: KindUnknown},
		// Тег с маркерами и fill, и code уходит в fill: приоритет проверок
		{tag: "PROGRAM_FILL", want: KindFill},
		// SINGLE проверяется раньше code-маркеров
		{tag: "SINGLE_SQL", want: KindChoice},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.tag))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, KindFill, Classify("PROGRAM_FILL"))
	}
}

func TestClassifyWithDefault(t *testing.T) {
	assert.Equal(t, KindUnknown, ClassifyWithDefault("ESSAY_FREEFORM", false))
	assert.Equal(t, KindCode, ClassifyWithDefault("ESSAY_FREEFORM", true))
	// Распознанные теги настройка не трогает
	assert.Equal(t, KindChoice, ClassifyWithDefault("JUDGE", true))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "choice", KindChoice.String())
	assert.Equal(t, "fill", KindFill.String())
	assert.Equal(t, "code", KindCode.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
