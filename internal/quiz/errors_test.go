package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyErrorTimeout(t *testing.T) {
	err := classifyError("capture_question", errors.New("playwright: Timeout 15000ms exceeded"))
	require.NotNil(t, err)
	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Equal(t, "capture_question", err.Op)
}

func TestClassifyErrorStale(t *testing.T) {
	cases := []string{
		"element is detached from document",
		"Execution context was destroyed, most likely because of a navigation",
	}
	for _, msg := range cases {
		err := classifyError("advance_next", errors.New(msg))
		require.NotNil(t, err)
		assert.Equal(t, ErrorTypeStale, err.Type, msg)
	}
}

func TestClassifyErrorPassesThroughTyped(t *testing.T) {
	orig := newError(ErrorTypeInjection, "write_answer", errors.New("исчерпаны"))
	got := classifyError("outer", orig)
	assert.Same(t, orig, got, "уже типизированная ошибка не переворачивается")
}

func TestClassifyErrorNil(t *testing.T) {
	assert.Nil(t, classifyError("op", nil))
}

func TestIsTypeThroughWrap(t *testing.T) {
	inner := notFound("select_option", errors.New("нет такого input"))
	wrapped := fmt.Errorf("ответ на вопрос 3: %w", inner)

	assert.True(t, IsType(wrapped, ErrorTypeNotFound))
	assert.False(t, IsType(wrapped, ErrorTypeStale))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeNotFound))
}

func TestQuizErrorMessage(t *testing.T) {
	err := newError(ErrorTypeUpstream, "llm_ask", errors.New("503"))
	assert.Equal(t, "llm_ask: upstream: 503", err.Error())
}
