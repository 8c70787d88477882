package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"quizAgent/internal/logger"
)

func nopLog() *logger.Zap {
	return &logger.Zap{Logger: zap.NewNop()}
}

type fakeBackend struct {
	name    string
	ok      bool
	calls   int
	written string
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) TryWrite(ctx context.Context, content string) bool {
	f.calls++
	if f.ok {
		f.written = content
	}
	return f.ok
}

func TestWriteAnswerShortCircuit(t *testing.T) {
	first := &fakeBackend{name: "first", ok: true}
	second := &fakeBackend{name: "second", ok: true}

	in := &Injector{log: nopLog(), backends: []EditorBackend{first, second}}

	assert.True(t, in.WriteAnswer(context.Background(), "code"))
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, "code", first.written)
	assert.Equal(t, 0, second.calls, "после успеха остальные бэкенды не пробуются")
}

func TestWriteAnswerFallsThrough(t *testing.T) {
	first := &fakeBackend{name: "first"}
	second := &fakeBackend{name: "second"}
	third := &fakeBackend{name: "third", ok: true}

	in := &Injector{log: nopLog(), backends: []EditorBackend{first, second, third}}

	assert.True(t, in.WriteAnswer(context.Background(), "code"))
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, "code", third.written)
}

func TestWriteAnswerAllFail(t *testing.T) {
	backends := []EditorBackend{
		&fakeBackend{name: "a"},
		&fakeBackend{name: "b"},
		&fakeBackend{name: "c"},
		&fakeBackend{name: "d"},
	}

	in := &Injector{log: nopLog(), backends: backends}

	// Ошибка не выбрасывается, только false
	assert.False(t, in.WriteAnswer(context.Background(), "code"))
	for _, b := range backends {
		assert.Equal(t, 1, b.(*fakeBackend).calls, "каждый бэкенд пробуется ровно раз")
	}
}

func TestDefaultBackendOrder(t *testing.T) {
	in := NewInjector(nil, DefaultSelectors(), 0, nopLog())

	names := make([]string, 0, len(in.backends))
	for _, b := range in.backends {
		names = append(names, b.Name())
	}
	assert.Equal(t, []string{"tinymce", "monaco", "textarea", "contenteditable"}, names)
}
