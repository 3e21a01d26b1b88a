package tui

import "time"

// NoticeLevel indicates the severity of a notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// Notice is a transient status line shown in the notice bar: save
// confirmations, fetch failures, resolve results.
type Notice struct {
	Level   NoticeLevel
	Message string
	Time    time.Time
}

// AddNotice pushes a notice to the front of the bar.
func (a *App) AddNotice(level NoticeLevel, message string) {
	a.notices = append([]Notice{{
		Level:   level,
		Message: message,
		Time:    time.Now(),
	}}, a.notices...)

	// Keep only the last 10 notices
	if len(a.notices) > 10 {
		a.notices = a.notices[:10]
	}
}

// ClearNotices removes all notices.
func (a *App) ClearNotices() {
	a.notices = nil
}
