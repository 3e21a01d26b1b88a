package alerts

import (
	"errors"
	"testing"

	"github.com/canteenms/canteenms/internal/models"
)

func TestBeginResolveBuildsFixedAttribution(t *testing.T) {
	m := NewManager()

	req, err := m.BeginResolve(5)
	if err != nil {
		t.Fatalf("BeginResolve: %v", err)
	}
	if req.ResolvedBy != 1 {
		t.Errorf("ResolvedBy = %d, want 1", req.ResolvedBy)
	}
	if req.ResolutionNotes != "Resolved via terminal" {
		t.Errorf("ResolutionNotes = %q", req.ResolutionNotes)
	}
	if !m.Resolving(5) {
		t.Error("alert should be marked resolving")
	}
}

func TestDoubleResolveRejected(t *testing.T) {
	m := NewManager()
	if _, err := m.BeginResolve(5); err != nil {
		t.Fatalf("first BeginResolve: %v", err)
	}
	if _, err := m.BeginResolve(5); !errors.Is(err, ErrResolveInFlight) {
		t.Errorf("second BeginResolve = %v, want ErrResolveInFlight", err)
	}

	// A different alert is unaffected.
	if _, err := m.BeginResolve(6); err != nil {
		t.Errorf("unrelated alert blocked: %v", err)
	}
}

func TestFailedResolveIsRetryable(t *testing.T) {
	m := NewManager()
	if _, err := m.BeginResolve(9); err != nil {
		t.Fatalf("BeginResolve: %v", err)
	}

	m.FinishResolve(9)

	if m.Resolving(9) {
		t.Error("FinishResolve should clear the in-flight mark")
	}
	if _, err := m.BeginResolve(9); err != nil {
		t.Errorf("retry after failure blocked: %v", err)
	}
}

func TestTopNKeepsBackendOrder(t *testing.T) {
	list := []models.Alert{
		{AlertID: 3, Severity: models.SeverityCritical},
		{AlertID: 1, Severity: models.SeverityHigh},
		{AlertID: 2, Severity: models.SeverityLow},
	}

	top := TopN(list, 2)
	if len(top) != 2 || top[0].AlertID != 3 || top[1].AlertID != 1 {
		t.Errorf("TopN = %+v", top)
	}

	if got := TopN(list, 10); len(got) != 3 {
		t.Errorf("TopN beyond length = %d items", len(got))
	}
}
