package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/application/adapter/adaptertest"
	"github.com/finance-tracker/budget-service/internal/application/usecase/budget"
	"github.com/finance-tracker/budget-service/internal/application/usecase/category"
	"github.com/finance-tracker/budget-service/internal/application/usecase/insight"
	"github.com/finance-tracker/budget-service/internal/application/usecase/record"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	"github.com/finance-tracker/budget-service/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/budget-service/internal/integration/entrypoint/middleware"
)

const testUser = "user-1"

type fixture struct {
	engine  *gin.Engine
	records *adaptertest.RecordRepository
	budgets *adaptertest.BudgetRepository
}

func newFixture(t *testing.T, records []*entity.Record, budgets []*entity.Budget) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recordRepo := adaptertest.NewRecordRepository(records...)
	budgetRepo := adaptertest.NewBudgetRepository(budgets...)
	cache := adaptertest.NewCache()
	clock := adaptertest.Clock{At: time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)}
	loader := insight.NewLedgerLoader(recordRepo, budgetRepo, clock)

	recordController := NewRecordController(
		record.NewListRecordsUseCase(recordRepo),
		record.NewCreateRecordUseCase(recordRepo, cache),
		record.NewUpdateRecordUseCase(recordRepo, cache),
		record.NewDeleteRecordUseCase(recordRepo, cache),
	)
	budgetController := NewBudgetController(
		budget.NewListBudgetsUseCase(budgetRepo),
		budget.NewCreateBudgetUseCase(budgetRepo, recordRepo, cache, clock),
		budget.NewUpdateBudgetUseCase(budgetRepo, recordRepo, cache),
		budget.NewDeleteBudgetUseCase(budgetRepo, cache),
	)
	insightController := NewInsightController(
		insight.NewGetBudgetComparisonUseCase(loader),
		insight.NewGetSpendingInsightsUseCase(loader, cache, time.Minute),
		insight.NewGetAvailableCategoriesUseCase(loader, entity.DefaultCatalog()),
		insight.NewCheckExpenseUseCase(loader),
		insight.NewGetDashboardUseCase(loader, cache, time.Minute),
	)
	categoryController := NewCategoryController(category.NewListCategoriesUseCase(entity.DefaultCatalog(), recordRepo))

	engine := gin.New()
	api := engine.Group("/")
	api.Use(func(c *gin.Context) {
		if c.GetHeader("X-Anonymous") == "" {
			c.Set(string(middleware.UserIDKey), testUser)
		}
		c.Next()
	})
	api.GET("/records", recordController.List)
	api.POST("/records", recordController.Create)
	api.PUT("/records/:id", recordController.Update)
	api.DELETE("/records/:id", recordController.Delete)
	api.GET("/budgets", budgetController.List)
	api.POST("/budgets", budgetController.Create)
	api.PUT("/budgets/:id", budgetController.Update)
	api.DELETE("/budgets/:id", budgetController.Delete)
	api.GET("/insights/comparison", insightController.Comparison)
	api.GET("/insights/summary", insightController.Summary)
	api.GET("/insights/available-categories", insightController.AvailableCategories)
	api.GET("/insights/dashboard", insightController.Dashboard)
	api.POST("/insights/check-expense", insightController.CheckExpense)
	api.GET("/categories", categoryController.List)

	return &fixture{engine: engine, records: recordRepo, budgets: budgetRepo}
}

func (f *fixture) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return resp
}

func seedRecord(amount string, day int, cat string) *entity.Record {
	return entity.NewRecord(testUser, "seed", decimal.RequireFromString(amount),
		time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC), cat, entity.PaymentMethodCash, entity.CurrencyUSD)
}

func TestRecordController(t *testing.T) {
	existing := seedRecord("-20", 1, "food")

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		headers        []string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "create record",
			method:         http.MethodPost,
			path:           "/records",
			body:           `{"description":"Lunch","amount":"12.50","type":"expense","date":"2024-03-05","category":"food","payment_method":"cash"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid date",
			method:         http.MethodPost,
			path:           "/records",
			body:           `{"description":"Lunch","amount":"12.50","date":"05/03/2024","category":"food","payment_method":"cash"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "REC-020003",
		},
		{
			name:           "zero amount",
			method:         http.MethodPost,
			path:           "/records",
			body:           `{"description":"Lunch","amount":"0","date":"2024-03-05","category":"food","payment_method":"cash"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "REC-020001",
		},
		{
			name:           "malformed id",
			method:         http.MethodDelete,
			path:           "/records/not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "REC-020009",
		},
		{
			name:           "unknown record",
			method:         http.MethodDelete,
			path:           "/records/6f1c2a9e-8d5b-4c3e-9a7f-1b2c3d4e5f60",
			expectedStatus: http.StatusNotFound,
			expectedCode:   "REC-010001",
		},
		{
			name:           "update existing",
			method:         http.MethodPut,
			path:           "/records/" + existing.ID.String(),
			body:           `{"description":"Dinner"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "delete existing",
			method:         http.MethodDelete,
			path:           "/records/" + existing.ID.String(),
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "anonymous",
			method:         http.MethodGet,
			path:           "/records",
			headers:        []string{"X-Anonymous", "1"},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "AUTH-030003",
		},
	}

	f := newFixture(t, []*entity.Record{existing}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(tt.method, tt.path, tt.body, tt.headers...)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedCode != "" {
				if got := decodeError(t, w).Code; got != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, got)
				}
			}
		})
	}
}

func TestBudgetController_DuplicateIsConflict(t *testing.T) {
	f := newFixture(t, nil, nil)

	body := `{"category":"Food","amount":"100","month":3,"year":2024}`
	if w := f.do(http.MethodPost, "/budgets", body); w.Code != http.StatusCreated {
		t.Fatalf("expected first create to succeed, got %d: %s", w.Code, w.Body.String())
	}

	w := f.do(http.MethodPost, "/budgets", `{"category":" food ","amount":"50","month":3,"year":2024}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeError(t, w).Code; got != "BUD-010002" {
		t.Errorf("expected BUD-010002, got %s", got)
	}
	if f.budgets.Len() != 1 {
		t.Errorf("expected one stored budget, got %d", f.budgets.Len())
	}
}

func TestInsightController_Comparison(t *testing.T) {
	food := entity.NewBudget(testUser, "Food", decimal.NewFromInt(100), 3, 2024, entity.CurrencyUSD)
	f := newFixture(t, []*entity.Record{seedRecord("-85", 10, "food")}, []*entity.Budget{food})

	w := f.do(http.MethodGet, "/insights/comparison?month=3&year=2024", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.ComparisonResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(resp.Rows) != 1 {
		t.Fatalf("expected one row, got %d", len(resp.Rows))
	}
	row := resp.Rows[0]
	if row.Spent != "85.00" || row.Remaining != "15.00" || row.Status != "warning" {
		t.Errorf("unexpected row %+v", row)
	}
}

func TestInsightController_InvalidParameters(t *testing.T) {
	f := newFixture(t, nil, nil)

	tests := []struct {
		name string
		path string
	}{
		{name: "month out of range", path: "/insights/comparison?month=13"},
		{name: "unsupported currency", path: "/insights/summary?currency=EUR"},
		{name: "non numeric year", path: "/insights/dashboard?year=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(http.MethodGet, tt.path, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if got := decodeError(t, w).Code; got != "INS-010004" {
				t.Errorf("expected INS-010004, got %s", got)
			}
		})
	}
}

func TestInsightController_CheckExpense(t *testing.T) {
	food := entity.NewBudget(testUser, "food", decimal.NewFromInt(100), 3, 2024, entity.CurrencyUSD)
	f := newFixture(t, []*entity.Record{seedRecord("-85", 10, "food")}, []*entity.Budget{food})

	w := f.do(http.MethodPost, "/insights/check-expense", `{"category":"Food","amount":"20","month":3,"year":2024}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp dto.CheckExpenseResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !resp.Exceeded || resp.OverAmount != "5.00" {
		t.Errorf("expected 5.00 over budget, got %+v", resp)
	}

	w = f.do(http.MethodPost, "/insights/check-expense", `{"category":"Food","amount":"0"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero amount, got %d", w.Code)
	}
}

func TestCategoryController_List(t *testing.T) {
	f := newFixture(t, []*entity.Record{seedRecord("-5", 2, "food")}, nil)

	w := f.do(http.MethodGet, "/categories", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = f.do(http.MethodGet, "/categories?currency=EUR", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported currency, got %d", w.Code)
	}
}

func TestHealthController_Check(t *testing.T) {
	up := func(context.Context) bool { return true }
	down := func(context.Context) bool { return false }

	tests := []struct {
		name           string
		db             HealthChecker
		cache          HealthChecker
		expectedStatus int
		expectedBody   HealthResponse
	}{
		{name: "all up", db: up, cache: up, expectedStatus: http.StatusOK, expectedBody: HealthResponse{Status: "ok", Database: "connected", Cache: "connected"}},
		{name: "cache disabled", db: up, expectedStatus: http.StatusOK, expectedBody: HealthResponse{Status: "ok", Database: "connected", Cache: "disabled"}},
		{name: "cache down", db: up, cache: down, expectedStatus: http.StatusOK, expectedBody: HealthResponse{Status: "degraded", Database: "connected", Cache: "disconnected"}},
		{name: "database down", db: down, cache: up, expectedStatus: http.StatusServiceUnavailable, expectedBody: HealthResponse{Status: "unavailable", Database: "disconnected", Cache: "connected"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			engine := gin.New()
			engine.GET("/health", NewHealthController(tt.db, tt.cache).Check)

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var got HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			got.Timestamp = ""
			if got != tt.expectedBody {
				t.Errorf("expected %+v, got %+v", tt.expectedBody, got)
			}
		})
	}
}
