package tui

import (
	"fmt"
	"strings"

	"github.com/canteenms/canteenms/internal/tui/components"
)

// The terminal is a shared kiosk with a single operator account.
const (
	loginUsername    = "admin"
	loginPassword    = "1234"
	maxLoginAttempts = 3
)

// loginForm is the credential gate shown before any data loads.
type loginForm struct {
	form     *components.Form
	username *components.Input
	password *components.Input

	attempts int
	errMsg   string
}

func newLoginForm() *loginForm {
	l := &loginForm{}
	l.reset()
	return l
}

func (l *loginForm) reset() {
	l.username = components.NewInput("Username").SetRequired(true).SetWidth(20)
	l.password = components.NewInput("Password").SetRequired(true).SetWidth(20)

	l.form = components.NewForm("OPERATOR LOGIN")
	l.form.AddField(l.username).AddField(l.password)
}

// attemptsLeft returns how many tries remain.
func (l *loginForm) attemptsLeft() int {
	return maxLoginAttempts - l.attempts
}

// handleKey processes a key. It returns authenticated=true on a correct
// credential pair and lockedOut=true once the attempt budget is spent.
func (l *loginForm) handleKey(key string) (authenticated, lockedOut bool) {
	l.form.HandleKey(key)
	l.form.ClearCancelled() // nothing to cancel into

	if !l.form.IsSubmitted() {
		return false, false
	}
	l.form.ClearSubmitted()

	if l.username.Value() == loginUsername && l.password.Value() == loginPassword {
		l.errMsg = ""
		return true, false
	}

	l.attempts++
	if l.attempts >= maxLoginAttempts {
		return false, true
	}

	l.errMsg = fmt.Sprintf("Invalid credentials (%d attempts left)", l.attemptsLeft())
	l.reset()
	l.form.SetError(l.errMsg)
	return false, false
}

// render renders the login screen.
func (l *loginForm) render(theme *Theme, width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("CANTEEN MANAGEMENT SYSTEM"))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render("Terminal access requires operator credentials"))
	b.WriteString("\n\n")
	b.WriteString(l.form.Render())

	return centerBlock(b.String(), width, height)
}
