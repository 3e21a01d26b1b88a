// Package stubserver is an in-memory canteen backend for development and
// client testing. It serves the same REST surface and wire shapes as the
// production backend but holds everything in memory and applies only the
// validation the client contract depends on.
package stubserver

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/canteenms/canteenms/internal/models"
	"github.com/canteenms/canteenms/internal/util"
)

// dataset is the mutable in-memory state behind the REST surface.
type dataset struct {
	categories   []models.Category
	units        []models.Unit
	suppliers    []models.Supplier
	staff        []models.StaffMember
	foodItems    []models.FoodItem
	alerts       []models.Alert
	suggestions  []models.ProductionSuggestion
	dashboard    models.DashboardSummary
	wastageChart []models.WastagePoint

	nextFoodID  int
	nextAlertID int
}

// Server is the stub backend. Safe for concurrent requests.
type Server struct {
	mu   sync.Mutex
	data *dataset
	log  *zap.Logger
}

// New creates a Server with the seeded development dataset. A nil logger
// disables request logging.
func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{data: seed(), log: logger}
}

// Router builds the gin handler serving the backend REST surface.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/categories", s.listCategories)
		api.GET("/units", s.listUnits)
		api.GET("/suppliers", s.listSuppliers)
		api.GET("/staff", s.listStaff)
		api.GET("/fooditems", s.listFoodItems)
		api.POST("/fooditems", s.createFoodItem)
		api.POST("/production", s.createProduction)
		api.GET("/production/suggestions", s.listSuggestions)
		api.POST("/sales", s.createSales)
		api.GET("/alerts", s.listAlerts)
		api.POST("/alerts/:id/resolve", s.resolveAlert)
		api.GET("/dashboard", s.getDashboard)
		api.GET("/wastage/analytics", s.getWastage)
	}

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("request_id", c.GetHeader("X-Request-ID")))
	}
}

// fail writes the rejection envelope the production backend uses: mutation
// outcomes always carry a success flag alongside the error text.
func fail(c *gin.Context, status int, format string, args ...any) {
	c.JSON(status, gin.H{"success": false, "error": fmt.Sprintf(format, args...)})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) listCategories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.data.categories)
}

func (s *Server) listUnits(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.data.units)
}

func (s *Server) listSuppliers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.data.suppliers)
}

func (s *Server) listStaff(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.data.staff)
}

func (s *Server) listFoodItems(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.data.foodItems)
}

func (s *Server) createFoodItem(c *gin.Context) {
	var draft models.FoodItemDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if draft.FoodName == "" {
		fail(c, http.StatusBadRequest, "food_name is required")
		return
	}

	categoryID, err := strconv.Atoi(draft.CategoryID)
	if err != nil {
		fail(c, http.StatusBadRequest, "category_id must be numeric")
		return
	}
	unitID, err := strconv.Atoi(draft.UnitID)
	if err != nil {
		fail(c, http.StatusBadRequest, "unit_id must be numeric")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.FoodItem{
		FoodID:              s.data.nextFoodID,
		FoodName:            draft.FoodName,
		CategoryID:          categoryID,
		UnitID:              unitID,
		CostPerUnit:         models.ParseAmount(draft.CostPerUnit),
		SellingPricePerUnit: models.ParseAmount(draft.SellingPrice),
		MinStockLevel:       models.ParseAmount(draft.MinStock),
		MaxStockLevel:       models.ParseAmount(draft.MaxStock),
		IsActive:            true,
	}

	// Denormalize lookup names the way the production backend does.
	for _, cat := range s.data.categories {
		if cat.CategoryID == categoryID {
			item.CategoryName = cat.CategoryName
		}
	}
	if item.CategoryName == "" {
		fail(c, http.StatusBadRequest, "unknown category_id %d", categoryID)
		return
	}
	for _, u := range s.data.units {
		if u.UnitID == unitID {
			item.UnitName = u.UnitName
			item.UnitSymbol = u.UnitSymbol
		}
	}
	if item.UnitName == "" {
		fail(c, http.StatusBadRequest, "unknown unit_id %d", unitID)
		return
	}
	if draft.SupplierID != "" {
		supplierID, err := strconv.Atoi(draft.SupplierID)
		if err != nil {
			fail(c, http.StatusBadRequest, "supplier_id must be numeric")
			return
		}
		for _, sup := range s.data.suppliers {
			if sup.SupplierID == supplierID {
				item.SupplierID = &supplierID
				item.SupplierName = sup.SupplierName
			}
		}
		if item.SupplierID == nil {
			fail(c, http.StatusBadRequest, "unknown supplier_id %d", supplierID)
			return
		}
	}

	s.data.nextFoodID++
	s.data.foodItems = append(s.data.foodItems, item)
	c.JSON(http.StatusOK, gin.H{"success": true, "FoodID": item.FoodID})
}

// validateRecord checks the fields production and sales drafts share.
func (s *Server) validateRecord(foodID, date, quantity string) (int, float64, error) {
	id, err := strconv.Atoi(foodID)
	if err != nil {
		return 0, 0, fmt.Errorf("food_id must be numeric")
	}
	found := false
	for _, f := range s.data.foodItems {
		if f.FoodID == id {
			found = true
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("unknown food_id %d", id)
	}
	if date == "" {
		return 0, 0, fmt.Errorf("date is required")
	}
	qty, err := util.ParsePositive(quantity)
	if err != nil {
		return 0, 0, fmt.Errorf("quantity must be a positive number")
	}
	return id, qty, nil
}

func (s *Server) createProduction(c *gin.Context) {
	var draft models.ProductionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, qty, err := s.validateRecord(draft.FoodID, draft.Date, draft.Quantity)
	if err != nil {
		fail(c, http.StatusBadRequest, "%v", err)
		return
	}

	s.data.dashboard.TotalProduced += models.Amount(qty)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) createSales(c *gin.Context) {
	var draft models.SalesDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, qty, err := s.validateRecord(draft.FoodID, draft.Date, draft.Quantity)
	if err != nil {
		fail(c, http.StatusBadRequest, "%v", err)
		return
	}

	s.data.dashboard.TotalSold += models.Amount(qty)
	for _, f := range s.data.foodItems {
		if f.FoodID == id {
			s.data.dashboard.TotalRevenue += models.Amount(qty * f.SellingPricePerUnit.Float())
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) listSuggestions(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.data.suggestions)
}

func (s *Server) listAlerts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.data.alerts
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			fail(c, http.StatusBadRequest, "invalid limit")
			return
		}
		if limit < len(out) {
			out = out[:limit]
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) resolveAlert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid alert id")
		return
	}

	var req models.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.data.alerts {
		if a.AlertID == id {
			s.data.alerts = append(s.data.alerts[:i], s.data.alerts[i+1:]...)
			if s.data.dashboard.ActiveAlerts > 0 {
				s.data.dashboard.ActiveAlerts--
			}
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
	}
	fail(c, http.StatusNotFound, "alert %d not found", id)
}

func (s *Server) getDashboard(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.data.dashboard)
}

func (s *Server) getWastage(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = util.Today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var prepared, sold, wasted models.Amount
	for _, p := range s.data.wastageChart {
		prepared += p.Prepared
		sold += p.Sold
		wasted += p.Wasted
	}
	var pct models.Amount
	if prepared > 0 {
		pct = wasted / prepared * 100
	}

	c.JSON(http.StatusOK, models.WastageAnalytics{
		Date: date,
		Summary: models.WastageSummary{
			TotalPrepared:     prepared,
			TotalSold:         sold,
			TotalWasted:       wasted,
			WastagePercentage: pct,
		},
		Alerts:    s.data.alerts,
		ChartData: s.data.wastageChart,
	})
}
