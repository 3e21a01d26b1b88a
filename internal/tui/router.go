package tui

// Screen identifies one top-level view of the terminal.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenFood
	ScreenProduction
	ScreenSales
	ScreenAnalytics
	ScreenAlerts
	ScreenHelp
)

// String returns the screen name used in logs and titles.
func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenDashboard:
		return "dashboard"
	case ScreenFood:
		return "food"
	case ScreenProduction:
		return "production"
	case ScreenSales:
		return "sales"
	case ScreenAnalytics:
		return "analytics"
	case ScreenAlerts:
		return "alerts"
	case ScreenHelp:
		return "help"
	default:
		return "unknown"
	}
}

// LoadPlan lists the fetches a navigation step requires. The baseline is the
// full post-login load; suggestions and wastage are the per-screen extras
// fetched fresh on every entry, including re-entry.
type LoadPlan struct {
	Baseline    bool
	Suggestions bool
	Wastage     bool
}

// Empty reports whether the plan requires no fetches.
func (p LoadPlan) Empty() bool {
	return !p.Baseline && !p.Suggestions && !p.Wastage
}

// Router owns screen navigation. Until Authenticate is called every
// navigation attempt stays on the login screen.
type Router struct {
	current       Screen
	previous      Screen
	authenticated bool
}

// NewRouter starts at the login screen.
func NewRouter() *Router {
	return &Router{current: ScreenLogin}
}

// Current returns the active screen.
func (r *Router) Current() Screen {
	return r.current
}

// Authenticated reports whether login has completed.
func (r *Router) Authenticated() bool {
	return r.authenticated
}

// Authenticate unlocks navigation and moves to the dashboard. The returned
// plan demands the full baseline load.
func (r *Router) Authenticate() LoadPlan {
	r.authenticated = true
	r.current = ScreenDashboard
	return LoadPlan{Baseline: true}
}

// Navigate moves to the given screen and returns the fetches that entry
// requires. Entering the dashboard or any detail screen re-runs the baseline
// load; production and analytics add their per-screen fetch on top.
// Re-entry re-triggers the same fetches, backend state may have changed.
func (r *Router) Navigate(target Screen) LoadPlan {
	if !r.authenticated {
		return LoadPlan{}
	}
	if target == ScreenHelp && r.current != ScreenHelp {
		r.previous = r.current
	}
	r.current = target

	switch target {
	case ScreenProduction:
		return LoadPlan{Baseline: true, Suggestions: true}
	case ScreenAnalytics:
		return LoadPlan{Baseline: true, Wastage: true}
	case ScreenHelp:
		return LoadPlan{}
	default:
		return LoadPlan{Baseline: true}
	}
}

// Back leaves the help screen, restoring the screen it was opened from.
// On other screens it is a no-op and reports false.
func (r *Router) Back() bool {
	if r.current == ScreenHelp {
		r.current = r.previous
		return true
	}
	return false
}
