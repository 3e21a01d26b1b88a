package tui

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/canteenms/canteenms/internal/api"
	"github.com/canteenms/canteenms/internal/config"
	"github.com/canteenms/canteenms/internal/stubserver"
)

// newTestApp creates an App backed by the fixture server. The window is set
// to 120x40 and marked ready so View renders without a WindowSizeMsg.
func newTestApp(t *testing.T) *App {
	t.Helper()
	return newTestAppWith(t, stubserver.New(nil).Router())
}

// newTestAppWith creates an App whose client talks to the given handler.
func newTestAppWith(t *testing.T, handler http.Handler) *App {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Server.BaseURL = srv.URL

	client := api.New(srv.URL, 5*time.Second, nil)
	app := New(client, cfg, nil)

	app.width = 120
	app.height = 40
	app.ready = true

	return app
}

// login drives the login form with the operator credentials and runs the
// resulting baseline load to completion.
func login(t *testing.T, app *App) {
	t.Helper()

	typeString(app, loginUsername)
	app.Update(specialKeyMsg(tea.KeyEnter))
	typeString(app, loginPassword)
	_, cmd := app.Update(specialKeyMsg(tea.KeyEnter))

	if !app.router.Authenticated() {
		t.Fatal("login did not authenticate")
	}
	drainCmd(t, app, cmd)
}

// typeString sends each rune of s as a key press.
func typeString(app *App, s string) {
	for _, r := range s {
		app.Update(keyMsg(string(r)))
	}
}

// drainCmd executes a command tree synchronously, feeding every produced
// message back into Update until no commands remain.
func drainCmd(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()

	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drainCmd(t, app, c)
		}
		return
	}
	_, next := app.Update(msg)
	drainCmd(t, app, next)
}

// keyMsg creates a tea.KeyMsg for a regular character key.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// specialKeyMsg creates a tea.KeyMsg for a special key type.
func specialKeyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}
