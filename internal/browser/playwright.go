package browser

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// ErrLaunch marks a browser that could not be started at all; the only
// failure that is fatal to a whole scrape or enrich call.
var ErrLaunch = errors.New("browser launch failed")

// Fixed operation bounds. One attempt per operation, no retry.
const (
	NavigationTimeoutMs = 60000
	SelectorTimeoutMs   = 10000
)

const (
	viewportWidth  = 1366
	viewportHeight = 768
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
)

// Manager owns the playwright runtime and the shared browser process.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

func NewManager(headless bool) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args:     []string{"--no-sandbox", "--disable-setuid-sandbox"},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	return &Manager{pw: pw, browser: b}, nil
}

// NewSession opens an isolated browser context with a single page
// configured for scraping. Callers must Close the session on every
// path; the page is invalid afterwards.
func (m *Manager) NewSession() (*Session, error) {
	ctx, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(userAgent),
		Viewport: &playwright.Size{
			Width:  viewportWidth,
			Height: viewportHeight,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	return &Session{ctx: ctx, page: page}, nil
}

func (m *Manager) Close() error {
	if err := m.browser.Close(); err != nil {
		m.pw.Stop()
		return err
	}
	return m.pw.Stop()
}

// Session is the exclusive browser resource held by one scrape or
// enrich call.
type Session struct {
	ctx  playwright.BrowserContext
	page playwright.Page
}

func (s *Session) Page() playwright.Page {
	return s.page
}

func (s *Session) Close() {
	_ = s.ctx.Close()
}
