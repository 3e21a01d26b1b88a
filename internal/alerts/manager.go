// Package alerts manages the resolve lifecycle of active backend alerts.
// The backend owns alert creation and ordering; the client only displays
// them and marks them resolved.
package alerts

import (
	"errors"

	"github.com/canteenms/canteenms/internal/models"
)

// The terminal runs as a single shared operator account, so resolutions are
// attributed to a fixed resolver with a standard note.
const (
	ResolverID     = 1
	ResolutionNote = "Resolved via terminal"
)

// ErrResolveInFlight is returned when a resolve is requested for an alert
// that already has one pending.
var ErrResolveInFlight = errors.New("resolve already in flight")

// Manager tracks which alerts have a resolve request in flight so a second
// keypress cannot double-resolve the same alert.
type Manager struct {
	inflight map[int]bool
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{inflight: make(map[int]bool)}
}

// BeginResolve marks the alert as resolving and returns the request body to
// send. Returns ErrResolveInFlight if the alert is already being resolved.
func (m *Manager) BeginResolve(alertID int) (models.ResolveRequest, error) {
	if m.inflight[alertID] {
		return models.ResolveRequest{}, ErrResolveInFlight
	}
	m.inflight[alertID] = true
	return models.ResolveRequest{
		ResolvedBy:      ResolverID,
		ResolutionNotes: ResolutionNote,
	}, nil
}

// FinishResolve clears the in-flight mark, whether the resolve succeeded or
// failed. A failed resolve leaves the alert active and resolvable again.
func (m *Manager) FinishResolve(alertID int) {
	delete(m.inflight, alertID)
}

// Resolving reports whether a resolve is pending for the alert.
func (m *Manager) Resolving(alertID int) bool {
	return m.inflight[alertID]
}

// TopN returns the first n alerts in backend order. The backend sorts by
// severity and recency; the client never re-ranks.
func TopN(list []models.Alert, n int) []models.Alert {
	if n >= len(list) {
		return list
	}
	return list[:n]
}
