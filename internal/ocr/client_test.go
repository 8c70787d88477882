package ocr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quizAgent/internal/logger"
)

func nopLog() *logger.Zap {
	return &logger.Zap{Logger: zap.NewNop()}
}

func TestRecognizeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict/", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "formula.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"latex": "x^2 + y^2"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", nopLog())
	got := c.Recognize(context.Background(), []byte("png-bytes"))
	assert.Equal(t, "x^2 + y^2", got)
}

func TestRecognizeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nopLog())
	assert.Equal(t, "", c.Recognize(context.Background(), []byte("png-bytes")))
}

func TestRecognizeUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "", nopLog())
	assert.Equal(t, "", c.Recognize(context.Background(), []byte("png-bytes")))
}

func TestRecognizeEmptyImage(t *testing.T) {
	// Пустая картинка не должна ходить в сеть вовсе
	c := NewClient("http://127.0.0.1:1", "", nopLog())
	assert.Equal(t, "", c.Recognize(context.Background(), nil))
}
