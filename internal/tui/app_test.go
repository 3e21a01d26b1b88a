package tui

import (
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/canteenms/canteenms/internal/forms"
	"github.com/canteenms/canteenms/internal/store"
	"github.com/canteenms/canteenms/internal/stubserver"
)

func TestApp_InitialState(t *testing.T) {
	app := newTestApp(t)

	if app.router.Current() != ScreenLogin {
		t.Errorf("expected initial screen login, got %s", app.router.Current())
	}
	if app.router.Authenticated() {
		t.Error("expected app to start unauthenticated")
	}
	if app.quitting {
		t.Error("expected app not to be quitting")
	}
}

func TestApp_View_NotReady(t *testing.T) {
	app := newTestApp(t)
	app.ready = false

	if !strings.Contains(app.View(), "Initializing") {
		t.Error("expected initialization message when not ready")
	}
}

func TestApp_View_Login(t *testing.T) {
	app := newTestApp(t)

	if !strings.Contains(app.View(), "OPERATOR LOGIN") {
		t.Error("expected login form before authentication")
	}
}

func TestApp_LoginSuccess_LoadsBaseline(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	if app.router.Current() != ScreenDashboard {
		t.Errorf("expected dashboard after login, got %s", app.router.Current())
	}

	for _, c := range []store.Collection{
		store.Categories, store.Units, store.Suppliers, store.Staff,
		store.FoodItems, store.Dashboard, store.Alerts,
	} {
		if !app.store.Loaded(c) {
			t.Errorf("expected %s loaded after baseline", c)
		}
	}

	if got := len(app.store.FoodItems); got != 6 {
		t.Errorf("expected 6 food items, got %d", got)
	}
	if !strings.Contains(app.View(), "DASHBOARD") {
		t.Error("expected dashboard view after login")
	}
}

func TestApp_LoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	typeString(app, "admin")
	app.Update(specialKeyMsg(tea.KeyEnter))
	typeString(app, "wrong")
	app.Update(specialKeyMsg(tea.KeyEnter))

	if app.router.Authenticated() {
		t.Error("expected wrong password to be rejected")
	}
	if !strings.Contains(app.View(), "2 attempts left") {
		t.Error("expected remaining attempt count on the login screen")
	}
}

func TestApp_LoginLockout(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < maxLoginAttempts; i++ {
		typeString(app, "admin")
		app.Update(specialKeyMsg(tea.KeyEnter))
		typeString(app, "wrong")
		app.Update(specialKeyMsg(tea.KeyEnter))
	}

	if !app.quitting {
		t.Error("expected lockout to quit the terminal")
	}
}

func TestApp_Navigation_FKeys(t *testing.T) {
	tests := []struct {
		key      tea.KeyType
		expected Screen
	}{
		{tea.KeyF3, ScreenFood},
		{tea.KeyF4, ScreenProduction},
		{tea.KeyF5, ScreenSales},
		{tea.KeyF6, ScreenAnalytics},
		{tea.KeyF7, ScreenAlerts},
		{tea.KeyF2, ScreenDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			app := newTestApp(t)
			login(t, app)

			_, cmd := app.Update(specialKeyMsg(tt.key))
			drainCmd(t, app, cmd)

			if app.router.Current() != tt.expected {
				t.Errorf("expected screen %s, got %s", tt.expected, app.router.Current())
			}
		})
	}
}

func TestApp_Navigation_BlockedBeforeLogin(t *testing.T) {
	app := newTestApp(t)

	app.Update(specialKeyMsg(tea.KeyF3))

	if app.router.Current() != ScreenLogin {
		t.Errorf("expected to stay on login, got %s", app.router.Current())
	}
}

func TestApp_HelpAndBack(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	app.Update(specialKeyMsg(tea.KeyF5))
	app.Update(specialKeyMsg(tea.KeyF1))
	if app.router.Current() != ScreenHelp {
		t.Fatalf("expected help screen, got %s", app.router.Current())
	}

	app.Update(specialKeyMsg(tea.KeyEscape))
	if app.router.Current() != ScreenSales {
		t.Errorf("expected return to sales, got %s", app.router.Current())
	}
}

func TestApp_EscReturnsToDashboard(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	for _, screen := range []tea.KeyType{tea.KeyF3, tea.KeyF5, tea.KeyF7} {
		_, cmd := app.Update(specialKeyMsg(screen))
		drainCmd(t, app, cmd)

		_, cmd = app.Update(specialKeyMsg(tea.KeyEscape))
		if app.router.Current() != ScreenDashboard {
			t.Fatalf("esc left %s instead of dashboard", app.router.Current())
		}
		if cmd == nil {
			t.Error("returning to the dashboard must re-run the baseline load")
		}
		drainCmd(t, app, cmd)
	}
}

func TestApp_EscCancelsOpenFoodForm(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF3))
	drainCmd(t, app, cmd)

	app.Update(keyMsg("a"))
	app.Update(specialKeyMsg(tea.KeyEscape))

	if app.foodView.FormOpen() {
		t.Error("expected esc to close the add form")
	}
	if app.router.Current() != ScreenFood {
		t.Errorf("expected to stay on food screen, got %s", app.router.Current())
	}
}

func TestApp_PartialFetchFailure_KeepsSnapshot(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	before := len(app.store.Alerts)
	if before == 0 {
		t.Fatal("expected alerts in the baseline snapshot")
	}

	app.Update(alertsMsg{err: errors.New("connection reset")})

	if got := len(app.store.Alerts); got != before {
		t.Errorf("expected prior snapshot kept, got %d alerts", got)
	}
	if len(app.notices) == 0 || app.notices[0].Level != NoticeWarning {
		t.Error("expected a warning notice for the failed fetch")
	}
}

func TestApp_ProductionEntry_FetchesSuggestions(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF4))
	drainCmd(t, app, cmd)

	if !app.store.Loaded(store.Suggestions) {
		t.Error("expected suggestions loaded on production entry")
	}
	if !strings.Contains(app.View(), "SUGGESTED QUANTITIES") {
		t.Error("expected suggestion panel on production screen")
	}
}

func TestApp_AnalyticsEntry_FetchesWastage(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF6))
	drainCmd(t, app, cmd)

	if !app.store.Loaded(store.Wastage) {
		t.Error("expected wastage loaded on analytics entry")
	}

	// Leaving and re-entering fetches again
	app.Update(specialKeyMsg(tea.KeyF2))
	_, cmd = app.Update(specialKeyMsg(tea.KeyF6))
	if cmd == nil {
		t.Error("expected re-entry to re-fetch analytics")
	}
}

func TestApp_SalesSubmit_RefreshesDashboard(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF5))
	drainCmd(t, app, cmd)

	soldBefore := app.store.Dashboard.TotalSold.Float()

	// food select -> date -> quantity
	app.Update(specialKeyMsg(tea.KeyTab))
	app.Update(specialKeyMsg(tea.KeyTab))
	typeString(app, "5")
	_, cmd = app.Update(specialKeyMsg(tea.KeyCtrlS))
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	drainCmd(t, app, cmd)

	if got := app.store.Dashboard.TotalSold.Float(); got != soldBefore+5 {
		t.Errorf("expected sold total %v after sale, got %v", soldBefore+5, got)
	}
	if len(app.notices) == 0 || !strings.Contains(app.notices[0].Message, "Sale recorded") {
		t.Error("expected sale confirmation notice")
	}
}

func TestApp_SalesValidationFailure_NoNetwork(t *testing.T) {
	var hits atomic.Int32
	fixture := stubserver.New(nil).Router()
	app := newTestAppWith(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fixture.ServeHTTP(w, r)
	}))
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF5))
	drainCmd(t, app, cmd)

	before := hits.Load()

	// Quantity left empty
	_, cmd = app.Update(specialKeyMsg(tea.KeyCtrlS))
	if cmd != nil {
		t.Error("expected no command for an invalid draft")
	}
	if hits.Load() != before {
		t.Error("expected validation failure to stay off the network")
	}
	if app.salesView.Controller().Busy() {
		t.Error("expected controller not busy after validation failure")
	}
}

func TestApp_SalesSubmit_ServerRuleRejectionKeepsForm(t *testing.T) {
	fixture := stubserver.New(nil).Router()
	app := newTestAppWith(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Rule violations come back as success=false on a 200.
		if r.Method == http.MethodPost && r.URL.Path == "/api/sales" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":false,"error":"insufficient stock"}`))
			return
		}
		fixture.ServeHTTP(w, r)
	}))
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF5))
	drainCmd(t, app, cmd)

	soldBefore := app.store.Dashboard.TotalSold.Float()

	app.Update(specialKeyMsg(tea.KeyTab))
	app.Update(specialKeyMsg(tea.KeyTab))
	typeString(app, "5")
	_, cmd = app.Update(specialKeyMsg(tea.KeyCtrlS))
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	drainCmd(t, app, cmd)

	ctrl := app.salesView.Controller()
	if ctrl.Busy() {
		t.Error("expected controller idle after the rejection")
	}
	if got := ctrl.Get(forms.FieldQuantity); got != "5" {
		t.Errorf("quantity = %q, want the form preserved for correction", got)
	}
	if len(app.notices) == 0 || !strings.Contains(app.notices[0].Message, "insufficient stock") {
		t.Error("expected the server's rejection text in the notice")
	}
	if got := app.store.Dashboard.TotalSold.Float(); got != soldBefore {
		t.Errorf("sold total = %v, a rejected save must not trigger a refresh delta", got)
	}
}

func TestApp_SalesSubmit_BusyRejectsSecond(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF5))
	drainCmd(t, app, cmd)

	app.Update(specialKeyMsg(tea.KeyTab))
	app.Update(specialKeyMsg(tea.KeyTab))
	typeString(app, "3")
	_, first := app.Update(specialKeyMsg(tea.KeyCtrlS))
	if first == nil {
		t.Fatal("expected a submit command")
	}

	// Submission still in flight: the frozen form swallows the second save.
	_, second := app.Update(specialKeyMsg(tea.KeyCtrlS))
	if second != nil {
		t.Error("expected second submit to be rejected while busy")
	}

	drainCmd(t, app, first)
}

func TestApp_SalesSubmit_StickyFields(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF5))
	drainCmd(t, app, cmd)

	app.Update(specialKeyMsg(tea.KeyTab))
	app.Update(specialKeyMsg(tea.KeyTab))
	typeString(app, "4")
	_, cmd = app.Update(specialKeyMsg(tea.KeyCtrlS))
	drainCmd(t, app, cmd)

	ctrl := app.salesView.Controller()
	if ctrl.Get("quantity") != "" {
		t.Error("expected quantity cleared after save")
	}
	if ctrl.Get("date") == "" {
		t.Error("expected date to stay sticky after save")
	}
}

func TestApp_FoodForm_AddItem(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF3))
	drainCmd(t, app, cmd)

	app.Update(keyMsg("a"))
	if !app.foodView.FormOpen() {
		t.Fatal("expected add form to open")
	}

	typeString(app, "Iced Tea")
	_, cmd = app.Update(specialKeyMsg(tea.KeyCtrlS))
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	drainCmd(t, app, cmd)

	if app.foodView.FormOpen() {
		t.Error("expected form closed after save")
	}
	if got := len(app.store.FoodItems); got != 7 {
		t.Errorf("expected 7 food items after add, got %d", got)
	}
}

func TestApp_AlertResolve_RemovesAlert(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF7))
	drainCmd(t, app, cmd)

	before := len(app.store.Alerts)
	if before == 0 {
		t.Fatal("expected alerts to resolve")
	}
	target, ok := app.alertView.Selected()
	if !ok {
		t.Fatal("expected a selected alert")
	}

	_, cmd = app.Update(keyMsg("r"))
	if cmd == nil {
		t.Fatal("expected a resolve command")
	}
	drainCmd(t, app, cmd)

	if got := len(app.store.Alerts); got != before-1 {
		t.Errorf("expected %d alerts after resolve, got %d", before-1, got)
	}
	if _, found := app.store.AlertByID(target.AlertID); found {
		t.Errorf("expected alert %d gone from the snapshot", target.AlertID)
	}
	if app.resolver.Resolving(target.AlertID) {
		t.Error("expected resolve no longer in flight")
	}
}

func TestApp_AlertResolveSuccess_SnapshotUntouchedUntilRefetch(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF7))
	drainCmd(t, app, cmd)

	target, ok := app.alertView.Selected()
	if !ok {
		t.Fatal("expected a selected alert")
	}

	// Feed the completion without running the refresh it schedules.
	_, refetch := app.Update(resolveDoneMsg{alertID: target.AlertID})
	if refetch == nil {
		t.Fatal("expected a refetch command")
	}
	if _, found := app.store.AlertByID(target.AlertID); !found {
		t.Error("resolve completion must not edit the snapshot; only a fetch writes it")
	}
	if len(app.notices) == 0 || app.notices[0].Message != "Alert resolved" {
		t.Error("expected the plain resolution notice")
	}
}

func TestApp_DashboardInlineResolve(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	before := len(app.store.Alerts)
	if before < 2 {
		t.Fatal("expected seeded alerts")
	}

	// Move to the second alert in the compact list and resolve it.
	_, _ = app.Update(specialKeyMsg(tea.KeyDown))
	target := app.store.Alerts[1]

	_, cmd := app.Update(keyMsg("r"))
	if cmd == nil {
		t.Fatal("expected a resolve command from the dashboard")
	}
	drainCmd(t, app, cmd)

	if _, found := app.store.AlertByID(target.AlertID); found {
		t.Errorf("expected alert %d gone from the snapshot", target.AlertID)
	}
	if app.router.Current() != ScreenDashboard {
		t.Errorf("expected to stay on the dashboard, got %v", app.router.Current())
	}
}

func TestApp_AnalyticsDateChange_Refetches(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, cmd := app.Update(specialKeyMsg(tea.KeyF6))
	drainCmd(t, app, cmd)

	app.Update(keyMsg("d"))
	if !app.analyticsView.Editing() {
		t.Fatal("expected date edit mode")
	}

	// Clear the seeded date and type a new one
	for i := 0; i < 10; i++ {
		app.Update(specialKeyMsg(tea.KeyBackspace))
	}
	typeString(app, "2026-01-15")
	_, cmd = app.Update(specialKeyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a wastage fetch for the new date")
	}
	if app.analyticsView.Date() != "2026-01-15" {
		t.Errorf("expected date 2026-01-15, got %s", app.analyticsView.Date())
	}
	drainCmd(t, app, cmd)
}

func TestApp_QuitConfirmAndCancel(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	app.Update(keyMsg("q"))
	if !app.showConfirm {
		t.Fatal("expected quit confirmation")
	}

	app.Update(keyMsg("n"))
	if app.showConfirm || app.quitting {
		t.Error("expected cancel to dismiss the confirmation")
	}

	app.Update(keyMsg("q"))
	app.Update(keyMsg("y"))
	if !app.quitting {
		t.Error("expected confirmed quit")
	}
}
