// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

const (
	testJWTSecret       = "test-jwt-secret-key-for-testing-purposes"
	testSecurityAnswer  = "azul"
	testDefaultPassword = "senha123"
	testRateLimit       = 3
)

var categoryPlaceholder = regexp.MustCompile(`\{\{category:([^}]+)\}\}`)

type testContext struct {
	uri          string
	headers      map[string]string
	client       *http.Client
	response     *response
	db           *mock.Db
	timeMock     *mock.Time
	accessToken  string
	refreshToken string
	lastID       string
	groupID      string
	categoryIDs  map[string]string
}

type response struct {
	status  int
	headers http.Header
	raw     []byte
	body    any
}

var (
	serverInit sync.Once
	server     *httptest.Server
	testDB     *mock.Db
	testClock  = mock.NewTime()
)

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		testDB = mock.NewDb(
			[]string{"refresh_tokens", "payments", "budgets", "categories", "users"},
			map[string]any{
				"users":          &model.UserModel{},
				"refresh_tokens": &model.RefreshTokenModel{},
				"categories":     &model.CategoryModel{},
				"payments":       &model.PaymentModel{},
				"budgets":        &model.BudgetModel{},
			},
		)
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: testClock,
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Given(`^the clock advances by "([^"]*)"$`, test.theClockAdvancesBy)

	// Setup steps
	ctx.Given(`^I am registered as "([^"]*)"$`, test.iAmRegisteredAs)
	ctx.Given(`^I am registered as "([^"]*)" with password "([^"]*)"$`, test.iAmRegisteredAsWithPassword)
	ctx.Given(`^a category "([^"]*)" exists$`, test.aCategoryExists)
	ctx.Given(`^I have a payment "([^"]*)" of "([^"]*)" due "([^"]*)"$`, test.iHaveAPayment)
	ctx.Given(`^I have a payment "([^"]*)" of "([^"]*)" due "([^"]*)" in category "([^"]*)"$`, test.iHaveAPaymentInCategory)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I remember the response field "([^"]*)" as the payment id$`, test.iRememberTheResponseFieldAsThePaymentID)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)
	ctx.Then(`^the response body should start with "([^"]*)"$`, test.theResponseBodyShouldStartWith)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.lastID = ""
	t.groupID = ""
	t.categoryIDs = make(map[string]string)
	t.db = testDB
	t.timeMock.SetCurrentTime(time.Now())

	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	if t.db != nil {
		return t.db.ClearDB()
	}
	return nil
}

func startServer() {
	serverInit.Do(func() {
		cfg := config.Load()
		cfg.Server.Environment = "integration"
		cfg.JWT.Secret = testJWTSecret
		cfg.JWT.AccessTokenExpiry = 15 * time.Minute
		cfg.RateLimit.MaxAttempts = testRateLimit
		cfg.RateLimit.Window = time.Minute

		injector := dependency.NewInjector(cfg, testDB.DbConn,
			dependency.WithClock(testClock),
			dependency.WithPasswordService(adapters.NewPasswordServiceWithCost(bcrypt.MinCost)),
			dependency.WithRedis(mock.NewRedis()),
		)
		server = httptest.NewServer(injector.Router.Setup("test"))
	})
}

func (t *testContext) theAPIServerIsRunning() error {
	startServer()
	t.uri = server.URL

	resp, err := t.client.Get(t.uri + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check answered %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) theClockAdvancesBy(duration string) error {
	d, err := time.ParseDuration(duration)
	if err != nil {
		return err
	}
	t.timeMock.Advance(d)
	return nil
}

func (t *testContext) iAmRegisteredAs(username string) error {
	return t.iAmRegisteredAsWithPassword(username, testDefaultPassword)
}

func (t *testContext) iAmRegisteredAsWithPassword(username, password string) error {
	body, _ := json.Marshal(map[string]string{
		"username":          username,
		"password":          password,
		"security_question": "Cor favorita?",
		"security_answer":   testSecurityAnswer,
	})
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/register", body); err != nil {
		return err
	}
	if err := t.expectStatus(http.StatusCreated); err != nil {
		return err
	}
	return t.loadCategories()
}

// loadCategories records the ids of the categories seeded at registration.
func (t *testContext) loadCategories() error {
	if err := t.executeRequest(http.MethodGet, "/api/v1/categories", nil); err != nil {
		return err
	}
	if err := t.expectStatus(http.StatusOK); err != nil {
		return err
	}

	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	items, _ := body["data"].([]any)
	for _, item := range items {
		category, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := category["name"].(string)
		id, _ := category["id"].(string)
		t.categoryIDs[name] = id
	}
	return nil
}

func (t *testContext) aCategoryExists(name string) error {
	body, _ := json.Marshal(map[string]string{"name": name})
	if err := t.executeRequest(http.MethodPost, "/api/v1/categories", body); err != nil {
		return err
	}
	return t.expectStatus(http.StatusCreated)
}

func (t *testContext) iHaveAPayment(description, amount, dueDate string) error {
	return t.iHaveAPaymentInCategory(description, amount, dueDate, "")
}

func (t *testContext) iHaveAPaymentInCategory(description, amount, dueDate, categoryName string) error {
	due, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		return err
	}

	payload := map[string]any{
		"description": description,
		"amount":      amount,
		"due_date":    dueDate,
		"month":       int(due.Month()),
		"year":        due.Year(),
	}
	if categoryName != "" {
		id, ok := t.categoryIDs[categoryName]
		if !ok {
			return fmt.Errorf("category %q was not created in this scenario", categoryName)
		}
		payload["category_id"] = id
	}

	body, _ := json.Marshal(payload)
	if err := t.executeRequest(http.MethodPost, "/api/v1/payments", body); err != nil {
		return err
	}
	return t.expectStatus(http.StatusCreated)
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Simulates an unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iRememberTheResponseFieldAsThePaymentID(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	id, ok := getFieldValue(body, field).(string)
	if !ok || id == "" {
		return fmt.Errorf("field '%s' is not an id: %v", field, body)
	}
	t.lastID = id
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{payment_id}}", t.lastID)
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID)
	content = strings.ReplaceAll(content, "{{group_id}}", t.groupID)
	content = strings.ReplaceAll(content, "{{random_id}}", uuid.NewString())
	return categoryPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		name := categoryPlaceholder.FindStringSubmatch(match)[1]
		return t.categoryIDs[name]
	})
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
		raw:     raw,
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = decoded
	t.capture(decoded)
	return nil
}

// capture remembers identifiers and tokens returned by the API for later steps.
func (t *testContext) capture(decoded any) {
	body, ok := decoded.(map[string]any)
	if !ok || t.response.status >= http.StatusBadRequest {
		return
	}

	if token, ok := body["access_token"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := body["refresh_token"].(string); ok && token != "" {
		t.refreshToken = token
	}
	if groupID, ok := body["group_id"].(string); ok {
		t.groupID = groupID
	}
	if id, ok := body["id"].(string); ok {
		t.lastID = id
		if name, ok := body["name"].(string); ok {
			t.categoryIDs[name] = id
		}
	}
}

func (t *testContext) expectStatus(expected int) error {
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	return t.expectStatus(expectedStatus)
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if value := getFieldValue(body, field); value != nil {
		return fmt.Errorf("field '%s' should be absent, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldBe(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.headers.Get(header); actual != expected {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, fragment string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.headers.Get(header); !strings.Contains(actual, fragment) {
		return fmt.Errorf("header '%s' does not contain '%s': '%s'", header, fragment, actual)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldStartWith(prefix string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !bytes.HasPrefix(t.response.raw, []byte(prefix)) {
		return fmt.Errorf("body does not start with %q", prefix)
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn
	for key, value := range criteria {
		if value == nil {
			query = query.Where(fmt.Sprintf("%s IS NULL", key))
			continue
		}
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// getFieldValue resolves dotted paths such as "data.0.category.name".
func getFieldValue(object any, dotSeparatedField string) any {
	current := object
	for _, part := range strings.Split(dotSeparatedField, ".") {
		switch v := current.(type) {
		case map[string]any:
			value, ok := v[part]
			if !ok {
				return nil
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(v) {
				return nil
			}
			current = v[index]
		default:
			return nil
		}
	}
	return current
}
