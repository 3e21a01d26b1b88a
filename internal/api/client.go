// Package api implements the HTTP client for the canteen backend. All
// requests are JSON over REST; the client owns timeouts, request IDs, and
// the translation of transport and server failures into typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/canteenms/canteenms/internal/models"
)

// Client talks to the canteen backend.
type Client struct {
	base   string
	client *http.Client
	log    *slog.Logger
}

// New creates a Client for the given base URL. A nil logger discards logs.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: timeout},
		log:    logger,
	}
}

// BaseURL returns the backend base URL the client was created with.
func (c *Client) BaseURL() string {
	return c.base
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Method: method, Path: path, Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return &RequestError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("request failed", "method", method, "path", path, "error", err)
		return &RequestError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("request complete",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Rejection{
			Status:  resp.StatusCode,
			Message: rejectionMessage(resp),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Method: method, Path: path, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return nil
}

// rejectionMessage extracts the server's own error text from a non-2xx
// response body. The text is passed through verbatim so the operator sees
// exactly what the backend said.
func rejectionMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return http.StatusText(resp.StatusCode)
	}

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}

	return strings.TrimSpace(string(data))
}

// Categories fetches all food categories.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Units fetches all measurement units.
func (c *Client) Units(ctx context.Context) ([]models.Unit, error) {
	var out []models.Unit
	if err := c.do(ctx, http.MethodGet, "/api/units", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Suppliers fetches all suppliers.
func (c *Client) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	var out []models.Supplier
	if err := c.do(ctx, http.MethodGet, "/api/suppliers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Staff fetches all kitchen staff members.
func (c *Client) Staff(ctx context.Context) ([]models.StaffMember, error) {
	var out []models.StaffMember
	if err := c.do(ctx, http.MethodGet, "/api/staff", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FoodItems fetches all food items with denormalized lookup names.
func (c *Client) FoodItems(ctx context.Context) ([]models.FoodItem, error) {
	var out []models.FoodItem
	if err := c.do(ctx, http.MethodGet, "/api/fooditems", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Dashboard fetches the aggregate dashboard summary.
func (c *Client) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	var out models.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &out); err != nil {
		return models.DashboardSummary{}, err
	}
	return out, nil
}

// Alerts fetches active alerts, newest and most severe first as ordered by
// the backend. A positive limit caps the result server-side.
func (c *Client) Alerts(ctx context.Context, limit int) ([]models.Alert, error) {
	path := "/api/alerts"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var out []models.Alert
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Suggestions fetches production quantity suggestions.
func (c *Client) Suggestions(ctx context.Context) ([]models.ProductionSuggestion, error) {
	var out []models.ProductionSuggestion
	if err := c.do(ctx, http.MethodGet, "/api/production/suggestions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Wastage fetches wastage analytics for the given ISO date.
func (c *Client) Wastage(ctx context.Context, date string) (models.WastageAnalytics, error) {
	var out models.WastageAnalytics
	path := "/api/wastage/analytics?date=" + date
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return models.WastageAnalytics{}, err
	}
	return out, nil
}

// mutationResult is the envelope every create and resolve endpoint returns.
// The backend reports rule violations as success=false on a 200, not as an
// HTTP error status.
type mutationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// mutate posts a draft and checks the success envelope. A transported call
// that comes back success=false is a Rejection like any non-2xx.
func (c *Client) mutate(ctx context.Context, path string, body any) error {
	var res mutationResult
	if err := c.do(ctx, http.MethodPost, path, body, &res); err != nil {
		return err
	}
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = "request rejected by server"
		}
		return &Rejection{Status: http.StatusOK, Message: msg}
	}
	return nil
}

// CreateFoodItem submits a new food item.
func (c *Client) CreateFoodItem(ctx context.Context, draft models.FoodItemDraft) error {
	return c.mutate(ctx, "/api/fooditems", draft)
}

// CreateProduction submits a production record.
func (c *Client) CreateProduction(ctx context.Context, draft models.ProductionDraft) error {
	return c.mutate(ctx, "/api/production", draft)
}

// CreateSales submits a sales record.
func (c *Client) CreateSales(ctx context.Context, draft models.SalesDraft) error {
	return c.mutate(ctx, "/api/sales", draft)
}

// ResolveAlert marks an alert resolved. Resolution is terminal; the backend
// drops the alert from subsequent active-alert listings.
func (c *Client) ResolveAlert(ctx context.Context, alertID int, req models.ResolveRequest) error {
	path := fmt.Sprintf("/api/alerts/%d/resolve", alertID)
	return c.mutate(ctx, path, req)
}
