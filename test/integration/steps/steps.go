// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/config"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	"github.com/finance-tracker/budget-service/internal/infra/dependency"
	"github.com/finance-tracker/budget-service/internal/integration/persistence/model"
	"github.com/finance-tracker/budget-service/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var (
	serverInit  sync.Once
	server      *httptest.Server
	testDB      *mock.Db
	redisClient *redis.Client
	redisServer *miniredis.Miniredis
	clock       = mock.NewTime()
)

type testContext struct {
	headers     map[string]string
	client      *http.Client
	response    *response
	accessToken string
	lastID      string
}

type response struct {
	status int
	body   any
	raw    []byte
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
		if redisServer != nil {
			redisServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)

	// Auth steps
	ctx.Given(`^I am authenticated as "([^"]*)"$`, test.iAmAuthenticatedAs)
	ctx.Given(`^I am authenticated with an expired token$`, test.iAmAuthenticatedWithAnExpiredToken)

	// Data setup steps
	ctx.Given(`^the user "([^"]*)" has the records:$`, test.theUserHasTheRecords)
	ctx.Given(`^the user "([^"]*)" has the budgets:$`, test.theUserHasTheBudgets)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Storage assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the insight cache should hold (\d+) entries$`, test.theInsightCacheShouldHoldEntries)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.lastID = ""
	clock.Reset()

	t.startServer()
	if err := testDB.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(redisClient)
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		testDB = mock.NewDb(map[string]any{
			"records": &model.RecordModel{},
			"budgets": &model.BudgetModel{},
		})
		redisClient, redisServer = mock.NewRedis()

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Auth.JWTSecret = testJWTSecret
		cfg.Auth.Issuer = ""
		cfg.Cache.Enabled = true
		cfg.Cache.TTL = time.Minute

		injector := dependency.NewInjector(cfg, testDB.DbConn, redisClient, clock)
		server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(server.URL + "/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server is not healthy, status %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) theCurrentDateIs(value string) error {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value, err)
	}
	clock.SetCurrentTime(date.Add(12 * time.Hour))
	return nil
}

func (t *testContext) iAmAuthenticatedAs(userID string) error {
	token, err := signToken(userID, time.Now().Add(15*time.Minute))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmAuthenticatedWithAnExpiredToken() error {
	token, err := signToken("expired-user", time.Now().Add(-time.Minute))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func signToken(subject string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": subject + "@example.com",
		"exp":   jwt.NewNumericDate(expiresAt),
		"iat":   jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// theUserHasTheRecords seeds records from a table with the columns
// description, amount, date, category, payment_method and optionally currency.
func (t *testContext) theUserHasTheRecords(userID string, table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}
		date, err := time.Parse("2006-01-02", row["date"])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", row["date"], err)
		}

		record := entity.NewRecord(
			userID,
			row["description"],
			amount,
			date,
			row["category"],
			entity.PaymentMethod(row["payment_method"]),
			entity.Currency(row["currency"]),
		)
		if err := testDB.DbConn.Create(model.RecordFromEntity(record)).Error; err != nil {
			return err
		}
		t.lastID = record.ID.String()
	}
	return nil
}

// theUserHasTheBudgets seeds budgets from a table with the columns
// category, amount, month, year and optionally currency.
func (t *testContext) theUserHasTheBudgets(userID string, table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}
		month, err := strconv.Atoi(row["month"])
		if err != nil {
			return fmt.Errorf("invalid month %q: %w", row["month"], err)
		}
		year, err := strconv.Atoi(row["year"])
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", row["year"], err)
		}

		budget := entity.NewBudget(userID, row["category"], amount, month, year, entity.Currency(row["currency"]))
		if err := testDB.DbConn.Create(model.BudgetFromEntity(budget)).Error; err != nil {
			return err
		}
		t.lastID = budget.ID.String()
	}
	return nil
}

func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header and at least one row")
	}

	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, r := range table.Rows[1:] {
		row := make(map[string]string, len(header))
		for i, cell := range r.Cells {
			row[header[i].Value] = cell.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.executeRequest(method, path, []byte(body.Content))
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	// {last_id} refers to the most recently seeded or created entity.
	path = strings.ReplaceAll(path, "{last_id}", t.lastID)

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, server.URL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.response = &response{status: resp.StatusCode, raw: raw}
	if len(raw) > 0 {
		var body any
		if err := json.Unmarshal(raw, &body); err == nil {
			t.response.body = body
		}
	}

	if id, ok := getFieldValue(t.response.body, "id").(string); ok && resp.StatusCode == http.StatusCreated {
		t.lastID = id
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, t.response.raw)
	}
	if actual := fmt.Sprintf("%v", value); actual != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	items, ok := getFieldValue(t.response.body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list. Body: %s", field, t.response.raw)
	}
	if len(items) != quantity {
		return fmt.Errorf("expected %d items in '%s', got %d", quantity, field, len(items))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	m, ok := testDB.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	// Build a *[]T for the registered model type so Count runs on its table.
	slice := reflect.New(reflect.SliceOf(reflect.TypeOf(m).Elem()))
	var count int64
	if err := testDB.DbConn.Model(slice.Interface()).Count(&count).Error; err != nil {
		return err
	}
	if int(count) != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theInsightCacheShouldHoldEntries(quantity int) error {
	keys := redisServer.Keys()
	if len(keys) != quantity {
		return fmt.Errorf("expected %d cache entries, got %d: %v", quantity, len(keys), keys)
	}
	return nil
}

// getFieldValue walks a dot separated path through decoded JSON. Numeric
// segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	var field = object
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		switch v := field.(type) {
		case map[string]any:
			field = v[segment]
		case []any:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(v) {
				return nil
			}
			field = v[i]
		default:
			return nil
		}
	}
	return field
}
