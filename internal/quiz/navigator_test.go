package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminalDialog(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want bool
	}{
		{"штатный текст последнего вопроса", "已经是最后一题了。", true},
		{"сентинел без обрамления", "最后一题", true},
		{"пробелы по краям", "  已经是最后一题了。  ", true},
		{"обычный confirm сохранения", "确定要保存本题答案吗？", false},
		{"пустой диалог", "", false},
		{"текст про вопрос без сентинела", "请先回答本题", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTerminalDialog(tt.msg))
		})
	}
}

func TestDrainDialogs(t *testing.T) {
	n := &Navigator{dialogTexts: make(chan string, 4)}
	n.dialogTexts <- "确定吗？"
	n.dialogTexts <- "已保存"

	n.drainDialogs()

	select {
	case msg := <-n.dialogTexts:
		t.Fatalf("канал должен быть пуст, получено %q", msg)
	default:
	}
}
