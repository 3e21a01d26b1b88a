package models

// Severity is the ordered alert severity scale.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank returns the ordinal position of the severity (low < medium < high
// < critical). Unknown severities rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// Alert is an active stock or wastage alert raised by the backend. Alerts
// arrive in backend order (authoritative, presumed severity/recency) and
// transition to resolved exactly once; resolution is terminal.
type Alert struct {
	AlertID           int      `json:"AlertID"`
	FoodID            int      `json:"FoodID"`
	AlertType         string   `json:"AlertType"`
	Severity          Severity `json:"Severity"`
	AlertMessage      string   `json:"AlertMessage"`
	AlertDate         string   `json:"AlertDate"`
	WastagePercentage *Amount  `json:"WastagePercentage,omitempty"`
	IsResolved        bool     `json:"IsResolved,omitempty"`

	// Denormalized display names.
	FoodName     string `json:"FoodName,omitempty"`
	CategoryName string `json:"CategoryName,omitempty"`
}

// ResolveRequest is the POST /api/alerts/{id}/resolve request body.
type ResolveRequest struct {
	ResolvedBy      int    `json:"resolved_by"`
	ResolutionNotes string `json:"resolution_notes,omitempty"`
}
