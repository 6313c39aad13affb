package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"

	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/logger"
	"spendwise/internal/notify"
	"spendwise/internal/store"
	"spendwise/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// testApp holds the full application stack for flow tests.
type testApp struct {
	*App
	Router *gin.Engine
}

func testConfig(backend string) *config.Config {
	return &config.Config{
		Env:              "test",
		Port:             "0",
		StoreBackend:     backend,
		CacheMaxCost:     1000,
		Location:         time.UTC,
		JWTSecret:        "flow-test-secret",
		JWTExpirationDur: time.Hour,
	}
}

// setupApp opens the application on a fresh sqlite file.
func setupApp(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()
	config.Set(cfg)

	dbCfg := &database.Config{Driver: database.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "flow.db")}
	a, err := Open(context.Background(), cfg, dbCfg)
	if err != nil {
		t.Fatalf("failed to open app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	return &testApp{App: a, Router: NewRouter(a)}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// mustStatus fails the test unless rec carries want.
func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	mustStatus(t, rec, http.StatusCreated)
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

func TestAuthFlow(t *testing.T) {
	app := setupApp(t, testConfig(config.StoreMemory))

	token, userID := app.registerUser(t, "Auth@Test.com", "password123")
	if token == "" || userID == "" {
		t.Fatal("expected token and user id from registration")
	}

	rec := app.request("POST", "/api/v1/auth/login", `{"email":"auth@test.com","password":"password123"}`, "")
	mustStatus(t, rec, http.StatusOK)
	loginToken := parseJSON(t, rec)["token"].(string)

	rec = app.request("GET", "/api/v1/profile", "", loginToken)
	mustStatus(t, rec, http.StatusOK)
	result := parseJSON(t, rec)
	if email := result["profile"].(map[string]interface{})["email_address"]; email != "auth@test.com" {
		t.Errorf("expected account email in profile, got %v", email)
	}

	rec = app.request("PUT", "/api/v1/profile", `{"user_name":"tester","mobile_number":"555-0100"}`, loginToken)
	mustStatus(t, rec, http.StatusOK)

	rec = app.request("GET", "/api/v1/profile", "", loginToken)
	profile := parseJSON(t, rec)["profile"].(map[string]interface{})
	if profile["user_name"] != "tester" || profile["mobile_number"] != "555-0100" {
		t.Errorf("profile not persisted: %v", profile)
	}

	rec = app.request("POST", "/api/v1/auth/login", `{"email":"auth@test.com","password":"wrong-password"}`, "")
	mustStatus(t, rec, http.StatusUnauthorized)

	rec = app.request("POST", "/api/v1/auth/register", `{"email":"auth@test.com","password":"password123"}`, "")
	mustStatus(t, rec, http.StatusConflict)

	rec = app.request("GET", "/api/v1/expenses", "", "")
	mustStatus(t, rec, http.StatusUnauthorized)
}

func TestRecordFlow(t *testing.T) {
	for _, backend := range []string{config.StoreMemory, config.StoreSQL} {
		t.Run(backend, func(t *testing.T) {
			app := setupApp(t, testConfig(backend))
			token, _ := app.registerUser(t, "flow-"+backend+"@test.com", "password123")

			rec := app.request("POST", "/api/v1/incomes", `{"name":"Salary","amount":"200","date":"2024-06-01"}`, token)
			mustStatus(t, rec, http.StatusCreated)
			income := parseJSON(t, rec)["income"].(map[string]interface{})
			if income["category"] != "Salary" {
				t.Errorf("expected default income category, got %v", income["category"])
			}

			rec = app.request("POST", "/api/v1/expenses", `{"name":"Groceries","cost":"120","category":"Food","date":"2024-06-02"}`, token)
			mustStatus(t, rec, http.StatusCreated)
			food := parseJSON(t, rec)["expense"].(map[string]interface{})

			rec = app.request("POST", "/api/v1/expenses",
				`{"name":"Vet","cost":30,"category":"other","new_category":"Pets","date":"2024-06-03"}`, token)
			mustStatus(t, rec, http.StatusCreated)
			vet := parseJSON(t, rec)["expense"].(map[string]interface{})
			if vet["category"] != "Pets" {
				t.Errorf("expected new category to replace sentinel, got %v", vet["category"])
			}

			rec = app.request("GET", "/api/v1/categories", "", token)
			mustStatus(t, rec, http.StatusOK)
			set := parseJSON(t, rec)["categories"].(map[string]interface{})
			if custom, _ := set["custom"].([]interface{}); len(custom) != 1 || custom[0] != "Pets" {
				t.Errorf("expected custom [Pets], got %v", set["custom"])
			}

			rec = app.request("POST", "/api/v1/expenses", `{"name":"Bad","cost":-5}`, token)
			mustStatus(t, rec, http.StatusBadRequest)

			rec = app.request("GET", "/api/v1/summary", "", token)
			mustStatus(t, rec, http.StatusOK)
			summary := parseJSON(t, rec)
			if summary["remaining"] != "50" {
				t.Errorf("expected remaining 50, got %v", summary["remaining"])
			}
			if summary["total_expense"] != "150" {
				t.Errorf("expected total expense 150, got %v", summary["total_expense"])
			}

			rec = app.request("GET", "/api/v1/expenses?category=Food", "", token)
			mustStatus(t, rec, http.StatusOK)
			list := parseJSON(t, rec)
			if list["filtered_total"] != "120" || list["total_items"] != float64(1) {
				t.Errorf("unexpected filtered list: %v", list)
			}

			rec = app.request("PUT", "/api/v1/expenses/"+food["id"].(string),
				`{"name":"Groceries","cost":100,"category":"Food","date":"2024-06-02"}`, token)
			mustStatus(t, rec, http.StatusOK)
			updated := parseJSON(t, rec)["expense"].(map[string]interface{})
			if updated["timestamp"] != food["timestamp"] {
				t.Errorf("expected timestamp %v preserved, got %v", food["timestamp"], updated["timestamp"])
			}

			rec = app.request("DELETE", "/api/v1/expenses/"+vet["id"].(string), "", token)
			mustStatus(t, rec, http.StatusOK)

			rec = app.request("GET", "/api/v1/summary", "", token)
			summary = parseJSON(t, rec)
			if summary["remaining"] != "100" {
				t.Errorf("expected remaining 100 after update and delete, got %v", summary["remaining"])
			}

			rec = app.request("PUT", "/api/v1/expenses/missing-id", `{"name":"Ghost","cost":1}`, token)
			mustStatus(t, rec, http.StatusNotFound)
		})
	}
}

func TestBudgetFlow(t *testing.T) {
	app := setupApp(t, testConfig(config.StoreSQL))
	token, _ := app.registerUser(t, "budget@test.com", "password123")

	rec := app.request("GET", "/api/v1/budget", "", token)
	mustStatus(t, rec, http.StatusNotFound)

	rec = app.request("PUT", "/api/v1/budget", `{"monthly_budget":"100"}`, token)
	mustStatus(t, rec, http.StatusOK)
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	if budget["spending_goal"] != "80" {
		t.Errorf("expected spending goal 80, got %v", budget["spending_goal"])
	}

	rec = app.request("PUT", "/api/v1/budget", `{"monthly_budget":"lots"}`, token)
	mustStatus(t, rec, http.StatusBadRequest)

	rec = app.request("POST", "/api/v1/expenses", `{"name":"Rent","cost":90,"category":"Rent"}`, token)
	mustStatus(t, rec, http.StatusCreated)

	rec = app.request("GET", "/api/v1/summary?date_filter=today", "", token)
	mustStatus(t, rec, http.StatusOK)
	summary := parseJSON(t, rec)
	alert, ok := summary["alert"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected budget alert, got %v", summary)
	}
	if !strings.Contains(alert["message"].(string), "exceeded") {
		t.Errorf("unexpected alert message: %v", alert["message"])
	}
	if summary["filtered_total"] != "90" {
		t.Errorf("expected today's expense to be filtered in, got %v", summary["filtered_total"])
	}
}

func TestOwnerIsolation(t *testing.T) {
	app := setupApp(t, testConfig(config.StoreSQL))
	alice, _ := app.registerUser(t, "alice@test.com", "password123")
	bob, _ := app.registerUser(t, "bob@test.com", "password123")

	rec := app.request("POST", "/api/v1/expenses", `{"name":"Books","cost":25,"category":"Food"}`, alice)
	mustStatus(t, rec, http.StatusCreated)
	id := parseJSON(t, rec)["expense"].(map[string]interface{})["id"].(string)

	rec = app.request("GET", "/api/v1/expenses", "", bob)
	mustStatus(t, rec, http.StatusOK)
	if parseJSON(t, rec)["total_items"] != float64(0) {
		t.Error("bob must not see alice's expenses")
	}

	rec = app.request("PUT", "/api/v1/expenses/"+id, `{"name":"Hijack","cost":1}`, bob)
	mustStatus(t, rec, http.StatusNotFound)
}

func TestHealthAndDocs(t *testing.T) {
	app := setupApp(t, testConfig(config.StoreMemory))

	rec := app.request("GET", "/api/health", "", "")
	mustStatus(t, rec, http.StatusOK)
	if parseJSON(t, rec)["status"] != "ok" {
		t.Error("expected status ok")
	}

	rec = app.request("GET", "/swagger/doc.json", "", "")
	mustStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "/summary/stream") {
		t.Error("expected swagger spec to document the summary stream")
	}

	rec = app.request("OPTIONS", "/api/v1/expenses", "", "")
	mustStatus(t, rec, http.StatusNoContent)
}

func TestOpen_backends(t *testing.T) {
	t.Run("sql store with cache", func(t *testing.T) {
		app := setupApp(t, testConfig(config.StoreSQL))
		if _, ok := app.Store.(*store.SQL); !ok {
			t.Errorf("expected *store.SQL, got %T", app.Store)
		}
		if app.cache == nil {
			t.Error("expected snapshot cache")
		}
		if _, ok := app.Broker.(*notify.Local); !ok {
			t.Errorf("expected local broker, got %T", app.Broker)
		}
	})

	t.Run("memory store without cache", func(t *testing.T) {
		cfg := testConfig(config.StoreMemory)
		cfg.CacheMaxCost = 0
		app := setupApp(t, cfg)
		if _, ok := app.Store.(*store.Memory); !ok {
			t.Errorf("expected *store.Memory, got %T", app.Store)
		}
	})

	t.Run("redis broker", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := testConfig(config.StoreSQL)
		cfg.RedisURL = "redis://" + mr.Addr()
		app := setupApp(t, cfg)
		if _, ok := app.Broker.(*notify.Redis); !ok {
			t.Errorf("expected redis broker, got %T", app.Broker)
		}
	})

	t.Run("unreachable redis fails", func(t *testing.T) {
		cfg := testConfig(config.StoreMemory)
		cfg.RedisURL = "redis://127.0.0.1:1"
		config.Set(cfg)
		dbCfg := &database.Config{Driver: database.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "x.db")}
		if _, err := Open(context.Background(), cfg, dbCfg); err == nil {
			t.Fatal("expected error for unreachable redis")
		}
	})
}
