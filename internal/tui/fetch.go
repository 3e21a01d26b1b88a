package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/canteenms/canteenms/internal/forms"
	"github.com/canteenms/canteenms/internal/models"
	"github.com/canteenms/canteenms/internal/store"
)

// alertBarLimit is how many alerts the baseline load requests; the alert
// board fetches the full list.
const alertBarLimit = 10

// Completion messages for the fetch orchestrator. Each independent fetch
// reports through its own typed message carrying either data or its error,
// so one failed collection never blocks or clears the others.
type (
	categoriesMsg struct {
		items []models.Category
		err   error
	}
	unitsMsg struct {
		items []models.Unit
		err   error
	}
	suppliersMsg struct {
		items []models.Supplier
		err   error
	}
	staffMsg struct {
		items []models.StaffMember
		err   error
	}
	foodItemsMsg struct {
		items []models.FoodItem
		err   error
	}
	dashboardMsg struct {
		summary models.DashboardSummary
		err     error
	}
	alertsMsg struct {
		items []models.Alert
		err   error
	}
	suggestionsMsg struct {
		items []models.ProductionSuggestion
		err   error
	}
	wastageMsg struct {
		data models.WastageAnalytics
		err  error
	}

	submitDoneMsg struct {
		kind forms.Kind
		err  error
	}
	resolveDoneMsg struct {
		alertID int
		err     error
	}
)

func (a *App) fetchCategories() tea.Cmd {
	return func() tea.Msg {
		items, err := a.client.Categories(context.Background())
		return categoriesMsg{items: items, err: err}
	}
}

func (a *App) fetchUnits() tea.Cmd {
	return func() tea.Msg {
		items, err := a.client.Units(context.Background())
		return unitsMsg{items: items, err: err}
	}
}

func (a *App) fetchSuppliers() tea.Cmd {
	return func() tea.Msg {
		items, err := a.client.Suppliers(context.Background())
		return suppliersMsg{items: items, err: err}
	}
}

func (a *App) fetchStaff() tea.Cmd {
	return func() tea.Msg {
		items, err := a.client.Staff(context.Background())
		return staffMsg{items: items, err: err}
	}
}

func (a *App) fetchFoodItems() tea.Cmd {
	return func() tea.Msg {
		items, err := a.client.FoodItems(context.Background())
		return foodItemsMsg{items: items, err: err}
	}
}

func (a *App) fetchDashboard() tea.Cmd {
	return func() tea.Msg {
		summary, err := a.client.Dashboard(context.Background())
		return dashboardMsg{summary: summary, err: err}
	}
}

func (a *App) fetchAlerts(limit int) tea.Cmd {
	return func() tea.Msg {
		items, err := a.client.Alerts(context.Background(), limit)
		return alertsMsg{items: items, err: err}
	}
}

func (a *App) fetchSuggestions() tea.Cmd {
	return func() tea.Msg {
		items, err := a.client.Suggestions(context.Background())
		return suggestionsMsg{items: items, err: err}
	}
}

func (a *App) fetchWastage(date string) tea.Cmd {
	return func() tea.Msg {
		data, err := a.client.Wastage(context.Background(), date)
		return wastageMsg{data: data, err: err}
	}
}

// baselineCmds is the full post-login load: seven independent fetches run
// concurrently, each reporting its own success or failure.
func (a *App) baselineCmds() []tea.Cmd {
	return []tea.Cmd{
		a.fetchCategories(),
		a.fetchUnits(),
		a.fetchSuppliers(),
		a.fetchStaff(),
		a.fetchFoodItems(),
		a.fetchDashboard(),
		a.fetchAlerts(alertBarLimit),
	}
}

// planCmds turns a router load plan into the batch of fetch commands it
// requires. Returns nil for an empty plan.
func (a *App) planCmds(plan LoadPlan) tea.Cmd {
	var cmds []tea.Cmd
	if plan.Baseline {
		cmds = append(cmds, a.baselineCmds()...)
	}
	if plan.Suggestions {
		cmds = append(cmds, a.fetchSuggestions())
	}
	if plan.Wastage {
		cmds = append(cmds, a.fetchWastage(a.analyticsView.Date()))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// refreshAfter returns the collections to re-fetch after a successful
// mutation: a new food item refreshes the item list, production refreshes
// the dashboard totals, and a sale can additionally raise or clear alerts.
func (a *App) refreshAfter(kind forms.Kind) tea.Cmd {
	switch kind {
	case forms.FoodItem:
		return a.fetchFoodItems()
	case forms.Production:
		return a.fetchDashboard()
	case forms.Sales:
		return tea.Batch(a.fetchDashboard(), a.fetchAlerts(alertBarLimit))
	default:
		return nil
	}
}

// submitCmd sends the form's draft to the backend.
func (a *App) submitCmd(ctrl *forms.Controller) tea.Cmd {
	kind := ctrl.Kind()
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		switch kind {
		case forms.FoodItem:
			var draft models.FoodItemDraft
			if draft, err = ctrl.FoodItemDraft(); err == nil {
				err = a.client.CreateFoodItem(ctx, draft)
			}
		case forms.Production:
			var draft models.ProductionDraft
			if draft, err = ctrl.ProductionDraft(); err == nil {
				err = a.client.CreateProduction(ctx, draft)
			}
		case forms.Sales:
			var draft models.SalesDraft
			if draft, err = ctrl.SalesDraft(); err == nil {
				err = a.client.CreateSales(ctx, draft)
			}
		}
		return submitDoneMsg{kind: kind, err: err}
	}
}

// resolveCmd sends an alert resolution to the backend.
func (a *App) resolveCmd(alertID int, req models.ResolveRequest) tea.Cmd {
	return func() tea.Msg {
		err := a.client.ResolveAlert(context.Background(), alertID, req)
		return resolveDoneMsg{alertID: alertID, err: err}
	}
}

// applyFetch folds a fetch completion into the store. Failed fetches leave
// the prior snapshot intact and only surface a notice; the error text for
// notices is produced by the caller.
func applyFetch(s *store.Store, msg tea.Msg) (collection store.Collection, err error) {
	switch m := msg.(type) {
	case categoriesMsg:
		if m.err == nil {
			s.Categories = m.items
			s.MarkLoaded(store.Categories)
		}
		return store.Categories, m.err
	case unitsMsg:
		if m.err == nil {
			s.Units = m.items
			s.MarkLoaded(store.Units)
		}
		return store.Units, m.err
	case suppliersMsg:
		if m.err == nil {
			s.Suppliers = m.items
			s.MarkLoaded(store.Suppliers)
		}
		return store.Suppliers, m.err
	case staffMsg:
		if m.err == nil {
			s.Staff = m.items
			s.MarkLoaded(store.Staff)
		}
		return store.Staff, m.err
	case foodItemsMsg:
		if m.err == nil {
			s.FoodItems = m.items
			s.MarkLoaded(store.FoodItems)
		}
		return store.FoodItems, m.err
	case dashboardMsg:
		if m.err == nil {
			s.Dashboard = m.summary
			s.MarkLoaded(store.Dashboard)
		}
		return store.Dashboard, m.err
	case alertsMsg:
		if m.err == nil {
			s.Alerts = m.items
			s.MarkLoaded(store.Alerts)
		}
		return store.Alerts, m.err
	case suggestionsMsg:
		if m.err == nil {
			s.Suggestions = m.items
			s.MarkLoaded(store.Suggestions)
		}
		return store.Suggestions, m.err
	case wastageMsg:
		if m.err == nil {
			s.Wastage = m.data
			s.MarkLoaded(store.Wastage)
		}
		return store.Wastage, m.err
	}
	return 0, nil
}

// isFetchMsg reports whether a message is a fetch completion.
func isFetchMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case categoriesMsg, unitsMsg, suppliersMsg, staffMsg, foodItemsMsg,
		dashboardMsg, alertsMsg, suggestionsMsg, wastageMsg:
		return true
	}
	return false
}
