package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/canteenms/canteenms/internal/alerts"
	"github.com/canteenms/canteenms/internal/api"
	"github.com/canteenms/canteenms/internal/config"
	"github.com/canteenms/canteenms/internal/forms"
	"github.com/canteenms/canteenms/internal/models"
	"github.com/canteenms/canteenms/internal/store"
	"github.com/canteenms/canteenms/internal/tui/views/alertboard"
	"github.com/canteenms/canteenms/internal/tui/views/analytics"
	"github.com/canteenms/canteenms/internal/tui/views/food"
	"github.com/canteenms/canteenms/internal/tui/views/production"
	"github.com/canteenms/canteenms/internal/tui/views/sales"
	"github.com/canteenms/canteenms/internal/util"
)

// Build information, shown in the header (set by the launcher via ldflags).
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// dashboardAlertCount is how many alerts the dashboard summary shows.
const dashboardAlertCount = 3

// App is the root Bubble Tea model. All state mutation happens inside
// Update; the store is never written from anywhere else.
type App struct {
	client *api.Client
	config *config.Config
	log    *slog.Logger

	theme  *Theme
	keys   KeyMap
	router *Router
	store  *store.Store

	login    *loginForm
	resolver *alerts.Manager

	foodView       *food.View
	productionView *production.View
	salesView      *sales.View
	analyticsView  *analytics.View
	alertView      *alertboard.View

	notices []Notice

	// Cursor into the dashboard's compact alert list.
	dashCursor int

	width       int
	height      int
	ready       bool
	quitting    bool
	showConfirm bool
}

// New creates the application model.
func New(client *api.Client, cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &App{
		client:         client,
		config:         cfg,
		log:            logger,
		theme:          NewTheme(cfg.Display.ColorScheme),
		keys:           DefaultKeyMap(),
		router:         NewRouter(),
		store:          store.New(),
		login:          newLoginForm(),
		resolver:       alerts.NewManager(),
		foodView:       food.NewView(),
		productionView: production.NewView(),
		salesView:      sales.NewView(),
		analyticsView:  analytics.NewView(),
		alertView:      alertboard.NewView(),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case submitDoneMsg:
		return a.handleSubmitDone(msg)

	case resolveDoneMsg:
		return a.handleResolveDone(msg)
	}

	if isFetchMsg(msg) {
		return a.handleFetch(msg)
	}

	return a, nil
}

// handleKey routes a key press. Order matters: the quit confirmation and the
// login gate come first, then function keys (never text), then whichever
// screen component is capturing input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		a.quitting = true
		return a, tea.Quit
	}

	if a.showConfirm {
		switch key {
		case "y", "Y", "enter":
			a.quitting = true
			return a, tea.Quit
		default:
			a.showConfirm = false
			return a, nil
		}
	}

	if !a.router.Authenticated() {
		return a.handleLoginKey(key)
	}

	if a.keys.F8.Matches(msg) {
		a.showConfirm = true
		return a, nil
	}

	if screen, ok := a.keys.FunctionKeyScreen(msg); ok {
		plan := a.router.Navigate(screen)
		a.log.Debug("navigate", "screen", screen.String())
		return a, a.planCmds(plan)
	}

	return a.handleScreenKey(msg, key)
}

func (a *App) handleLoginKey(key string) (tea.Model, tea.Cmd) {
	authenticated, lockedOut := a.login.handleKey(key)
	if lockedOut {
		a.log.Warn("login locked out")
		a.quitting = true
		return a, tea.Quit
	}
	if authenticated {
		a.log.Info("login succeeded")
		plan := a.router.Authenticate()
		return a, a.planCmds(plan)
	}
	return a, nil
}

func (a *App) handleScreenKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	cur := a.router.Current()

	// Back returns to the dashboard from any detail screen. Components that
	// capture input (an open add form, the date editor) see the key first.
	if a.keys.Back.Matches(msg) {
		if cur == ScreenHelp {
			a.router.Back()
			return a, nil
		}
		capturing := (cur == ScreenFood && a.foodView.FormOpen()) ||
			(cur == ScreenAnalytics && a.analyticsView.Editing())
		if cur != ScreenDashboard && !capturing {
			return a, a.planCmds(a.router.Navigate(ScreenDashboard))
		}
	}

	switch cur {
	case ScreenHelp:
		if a.keys.IsQuit(msg) {
			a.router.Back()
		}
		return a, nil

	case ScreenFood:
		return a.handleFoodKey(msg, key)

	case ScreenProduction:
		if a.productionView.HandleKey(key) {
			return a, a.beginSubmit(a.productionView.Controller(), a.productionView)
		}
		return a, nil

	case ScreenSales:
		if a.salesView.HandleKey(key) {
			return a, a.beginSubmit(a.salesView.Controller(), a.salesView)
		}
		return a, nil

	case ScreenAnalytics:
		return a.handleAnalyticsKey(key)

	case ScreenAlerts:
		return a.handleAlertKey(msg, key)

	default: // dashboard
		return a.handleDashboardKey(msg, key)
	}
}

// handleDashboardKey moves the cursor over the compact alert list and
// resolves the highlighted alert without leaving the dashboard.
func (a *App) handleDashboardKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	top := alerts.TopN(a.store.Alerts, dashboardAlertCount)
	if a.dashCursor >= len(top) {
		a.dashCursor = 0
	}

	switch {
	case a.keys.Up.Matches(msg):
		if a.dashCursor > 0 {
			a.dashCursor--
		}
	case a.keys.Down.Matches(msg):
		if a.dashCursor < len(top)-1 {
			a.dashCursor++
		}
	case key == "r":
		if a.dashCursor < len(top) {
			return a, a.beginResolve(top[a.dashCursor].AlertID)
		}
	case a.keys.IsQuit(msg):
		a.showConfirm = true
	}
	return a, nil
}

func (a *App) handleFoodKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	if a.foodView.FormOpen() {
		submitted, _ := a.foodView.HandleFormKey(key)
		if submitted {
			return a, a.beginSubmit(a.foodView.Controller(), a.foodView)
		}
		return a, nil
	}

	switch {
	case a.keys.Up.Matches(msg):
		a.foodView.MoveUp()
	case a.keys.Down.Matches(msg):
		a.foodView.MoveDown()
	case key == "a":
		a.foodView.OpenForm(a.store)
	case key == "g":
		a.foodView.ToggleChart()
	case a.keys.IsQuit(msg):
		a.showConfirm = true
	}
	return a, nil
}

func (a *App) handleAnalyticsKey(key string) (tea.Model, tea.Cmd) {
	if a.analyticsView.Editing() {
		if a.analyticsView.HandleDateKey(key) {
			return a, a.fetchWastage(a.analyticsView.Date())
		}
		return a, nil
	}
	switch key {
	case "d":
		a.analyticsView.StartDateEdit()
	case "q":
		a.showConfirm = true
	}
	return a, nil
}

func (a *App) handleAlertKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.Up.Matches(msg):
		a.alertView.MoveUp()
	case a.keys.Down.Matches(msg):
		a.alertView.MoveDown()
	case key == "g":
		a.alertView.ToggleChart()
	case key == "r":
		if alert, ok := a.alertView.Selected(); ok {
			return a, a.beginResolve(alert.AlertID)
		}
	case a.keys.IsQuit(msg):
		a.showConfirm = true
	}
	return a, nil
}

func (a *App) beginResolve(alertID int) tea.Cmd {
	req, err := a.resolver.BeginResolve(alertID)
	if err != nil {
		// Resolve already in flight for this alert.
		return nil
	}
	a.log.Info("resolving alert", "alert_id", alertID)
	return a.resolveCmd(alertID, req)
}

// formView is the slice of view behavior the submit flow needs.
type formView interface {
	SetBusy(bool)
	SetError(string)
	Succeed()
}

// beginSubmit validates the draft and, if it passes, freezes the form and
// sends it. Validation failures never touch the network.
func (a *App) beginSubmit(ctrl *forms.Controller, view formView) tea.Cmd {
	if err := ctrl.BeginSubmit(); err != nil {
		if errors.Is(err, forms.ErrBusy) {
			return nil
		}
		view.SetError(err.Error())
		return nil
	}
	view.SetBusy(true)
	view.SetError("")
	return a.submitCmd(ctrl)
}

func (a *App) viewFor(kind forms.Kind) formView {
	switch kind {
	case forms.FoodItem:
		return a.foodView
	case forms.Production:
		return a.productionView
	default:
		return a.salesView
	}
}

func (a *App) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	view := a.viewFor(msg.kind)
	view.SetBusy(false)

	ctrl := a.controllerFor(msg.kind)

	if msg.err != nil {
		if ctrl != nil {
			ctrl.Fail()
		}
		reason := api.UserMessage(msg.err)
		view.SetError(reason)
		a.log.Warn("save failed", "kind", msg.kind.String(), "error", msg.err)
		a.AddNotice(NoticeError, "Save failed: "+reason)
		return a, nil
	}

	view.Succeed()
	a.log.Info("saved", "kind", msg.kind.String())
	a.AddNotice(NoticeInfo, savedNotice(msg.kind))
	return a, a.refreshAfter(msg.kind)
}

func (a *App) controllerFor(kind forms.Kind) *forms.Controller {
	switch kind {
	case forms.FoodItem:
		return a.foodView.Controller()
	case forms.Production:
		return a.productionView.Controller()
	default:
		return a.salesView.Controller()
	}
}

func savedNotice(kind forms.Kind) string {
	switch kind {
	case forms.FoodItem:
		return "Food item saved"
	case forms.Production:
		return "Production recorded"
	default:
		return "Sale recorded"
	}
}

func (a *App) handleResolveDone(msg resolveDoneMsg) (tea.Model, tea.Cmd) {
	a.resolver.FinishResolve(msg.alertID)

	if msg.err != nil {
		// Generic notice only: resolve failures carry no detail to the user.
		a.log.Warn("resolve failed", "alert_id", msg.alertID, "error", msg.err)
		a.AddNotice(NoticeError, "Could not resolve alert")
		return a, nil
	}

	a.log.Info("alert resolved", "alert_id", msg.alertID)
	a.AddNotice(NoticeInfo, "Alert resolved")

	// The snapshot is only ever written by a fetch; the board updates when
	// the refreshed alert list lands.
	return a, a.fetchAlerts(alertBarLimit)
}

func (a *App) handleFetch(msg tea.Msg) (tea.Model, tea.Cmd) {
	collection, err := applyFetch(a.store, msg)
	if err != nil {
		a.log.Warn("fetch failed", "collection", collection.String(), "error", err)
		a.AddNotice(NoticeWarning, "Could not load "+collection.String()+": "+api.UserMessage(err))
		return a, nil
	}

	a.log.Debug("fetched", "collection", collection.String())
	a.refreshViews(collection)
	return a, nil
}

// refreshViews rebuilds the views a refreshed collection feeds.
func (a *App) refreshViews(collection store.Collection) {
	currency := a.config.Display.CurrencySymbol

	switch collection {
	case store.FoodItems:
		a.foodView.Refresh(a.store, currency)
		a.productionView.Refresh(a.store)
		a.salesView.Refresh(a.store, currency)
	case store.Staff:
		a.productionView.Refresh(a.store)
		a.salesView.Refresh(a.store, currency)
	case store.Suggestions:
		a.productionView.Refresh(a.store)
	case store.Alerts:
		a.alertView.Refresh(a.store, a.config.Display.DateFormat)
	case store.Wastage:
		a.analyticsView.Refresh(a.store)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return a.theme.Muted.Render("Terminal shutting down...") + "\n"
	}
	if !a.ready {
		return a.theme.Muted.Render("Initializing terminal...") + "\n"
	}

	if !a.router.Authenticated() {
		return a.login.render(a.theme, a.width, a.height)
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderNoticeBar())
	b.WriteString("\n")

	if a.showConfirm {
		b.WriteString(a.renderConfirm())
	} else {
		b.WriteString(a.renderContent())
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())
	return b.String()
}

func (a *App) renderHeader() string {
	left := a.theme.Header.Render(fmt.Sprintf("CANTEEN MANAGEMENT SYSTEM v%s", Version))
	right := a.theme.Secondary.Render(util.FormatDisplayDate(util.Today(), a.config.Display.DateFormat))

	width := ContentWidth(a.width, 60, 0)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right + "\n" + a.theme.DrawDoubleLine(width)
}

func (a *App) renderNoticeBar() string {
	if len(a.notices) == 0 {
		return ""
	}
	n := a.notices[0]
	switch n.Level {
	case NoticeError:
		return a.theme.NoticeErr.Render("! " + n.Message)
	case NoticeWarning:
		return a.theme.NoticeWarn.Render("! " + n.Message)
	default:
		return a.theme.Notice.Render("* " + n.Message)
	}
}

func (a *App) renderContent() string {
	switch a.router.Current() {
	case ScreenDashboard:
		return a.renderDashboard()
	case ScreenFood:
		return a.foodView.Render(a.store.Loaded(store.FoodItems))
	case ScreenProduction:
		return a.productionView.Render(a.store, a.store.Loaded(store.FoodItems))
	case ScreenSales:
		return a.salesView.Render(a.store, a.store.Loaded(store.FoodItems), a.config.Display.CurrencySymbol)
	case ScreenAnalytics:
		return a.analyticsView.Render(a.store, a.store.Loaded(store.Wastage), a.config.Display.DateFormat)
	case ScreenAlerts:
		return a.alertView.Render(a.store.Loaded(store.Alerts), a.resolver.Resolving)
	case ScreenHelp:
		return a.renderHelp()
	default:
		return ""
	}
}

func (a *App) renderDashboard() string {
	t := a.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("=== DASHBOARD ==="))
	b.WriteString("\n\n")

	if !a.store.Loaded(store.Dashboard) {
		b.WriteString(t.Label.Render("Loading..."))
		return b.String()
	}

	d := a.store.Dashboard
	currency := a.config.Display.CurrencySymbol

	summary := fmt.Sprintf("%s %s    %s %s    %s %s    %s %s",
		t.Label.Render("Produced:"), t.Value.Render(fmt.Sprintf("%.0f", d.TotalProduced.Float())),
		t.Label.Render("Sold:"), t.Value.Render(fmt.Sprintf("%.0f", d.TotalSold.Float())),
		t.Label.Render("Wasted:"), t.Warning.Render(fmt.Sprintf("%.0f", d.TotalWasted.Float())),
		t.Label.Render("Revenue:"), t.Value.Render(util.FormatMoney(currency, d.TotalRevenue.Float())))
	b.WriteString(t.Panel("TODAY", summary, ContentWidth(a.width, 60, 100)))
	b.WriteString("\n\n")

	// Wastage bar: wasted over produced
	if d.TotalProduced.Float() > 0 {
		b.WriteString(t.Label.Render("Wastage "))
		b.WriteString(t.ProgressBar(d.TotalWasted.Float(), d.TotalProduced.Float(), 32))
		b.WriteString(t.Label.Render(fmt.Sprintf(" %.1f%%", 100*d.TotalWasted.Float()/d.TotalProduced.Float())))
		b.WriteString("\n\n")
	}

	b.WriteString(t.Label.Render(fmt.Sprintf("ACTIVE ALERTS (%d)", d.ActiveAlerts)))
	b.WriteString("\n")
	top := alerts.TopN(a.store.Alerts, dashboardAlertCount)
	if len(top) == 0 {
		b.WriteString(t.Muted.Render("  none"))
		b.WriteString("\n")
	}
	cursor := a.dashCursor
	if cursor >= len(top) {
		cursor = 0
	}
	for i, al := range top {
		sev := strings.ToUpper(string(al.Severity))
		sevStyle := t.Warning
		if al.Severity.Rank() >= models.SeverityHigh.Rank() {
			sevStyle = t.Error
		}
		marker := "  "
		if i == cursor {
			marker = t.Value.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(sevStyle.Render(fmt.Sprintf("%-9s", sev)))
		b.WriteString(t.Value.Render(al.AlertMessage))
		if a.resolver.Resolving(al.AlertID) {
			b.WriteString(t.Warning.Render("  resolving..."))
		}
		b.WriteString("\n")
	}
	if len(top) > 0 {
		b.WriteString(t.Muted.Render("  Up/Down:Select  r:Resolve"))
		b.WriteString("\n")
	}

	return b.String()
}

func (a *App) renderHelp() string {
	t := a.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("=== HELP ==="))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"F1", "This help screen"},
		{"F2", "Dashboard with today's totals and top alerts"},
		{"F3", "Food items: list, cost/price chart, add items"},
		{"F4", "Production log with suggested quantities"},
		{"F5", "Sales entry"},
		{"F6", "Wastage analytics by date"},
		{"F7", "Active alerts and resolution"},
		{"F8", "Quit"},
	}
	for _, r := range rows {
		b.WriteString(t.StatusKey.Render(fmt.Sprintf("  %-4s", r[0])))
		b.WriteString(t.Value.Render(r[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Label.Render("Forms: Tab/Down next field, Shift+Tab/Up previous, Ctrl+S save."))
	b.WriteString("\n")
	b.WriteString(t.Label.Render("Esc or Backspace returns here to the previous screen."))
	b.WriteString("\n\n")
	b.WriteString(t.Muted.Render("Server: " + a.client.BaseURL()))
	b.WriteString("\n")

	return b.String()
}

func (a *App) renderConfirm() string {
	box := a.theme.Box.Render(
		a.theme.Bold.Render("CONFIRM EXIT") + "\n\n" +
			a.theme.Label.Render("y: quit    any other key: stay"))
	return centerBlock(box, a.width, ContentHeight(a.height, 5))
}

func (a *App) renderFooter() string {
	width := ContentWidth(a.width, 60, 0)
	return a.theme.DrawHorizontalLine(width) + "\n" + a.theme.Footer.Render(a.keys.StatusBarHelp())
}

// Run starts the program and blocks until it exits. Cancelling ctx shuts the
// terminal down cleanly.
func Run(ctx context.Context, client *api.Client, cfg *config.Config, logger *slog.Logger) error {
	app := New(client, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	_, err := p.Run()
	return err
}
