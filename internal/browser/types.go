package browser

import (
	"context"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Browser управляет жизненным циклом браузера. Компоненты, работающие с DOM,
// получают playwright.Page напрямую через Page().
type Browser interface {
	Launch(ctx context.Context) error
	Navigate(ctx context.Context, url string) error
	Page() playwright.Page
	Close() error
}

type PlaywrightBrowser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	cfg     Config
	mu      sync.RWMutex
}

type Config struct {
	Headless        bool
	UserDataDir     string
	Display         string
	Timeout         time.Duration
	NavigateTimeout time.Duration
}
