package browser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Browser = (*PlaywrightBrowser)(nil)

func TestNewDefaults(t *testing.T) {
	b := New(Config{})

	assert.Equal(t, 15*time.Second, b.cfg.Timeout)
	assert.Equal(t, 60*time.Second, b.cfg.NavigateTimeout, "навигация получает свой, более длинный таймаут")
}

func TestNewKeepsExplicitTimeouts(t *testing.T) {
	b := New(Config{
		Timeout:         5 * time.Second,
		NavigateTimeout: 90 * time.Second,
	})

	assert.Equal(t, 5*time.Second, b.cfg.Timeout)
	assert.Equal(t, 90*time.Second, b.cfg.NavigateTimeout)
}

func TestNavigateWithoutLaunch(t *testing.T) {
	b := New(Config{})

	err := b.Navigate(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "браузер не запущен")
}

func TestBrowserArgsAndEnv(t *testing.T) {
	b := New(Config{Display: ":1"})
	assert.Contains(t, b.getBrowserArgs(), "--no-sandbox")
	assert.Equal(t, map[string]string{"DISPLAY": ":1"}, b.getEnvMap())

	assert.Nil(t, New(Config{}).getEnvMap())
}
