package app

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/etfpulse/config"
)

func testConfig(backend, dir string) config.Config {
	return config.Config{
		Data:  config.DataConfig{Dir: dir, Backend: backend},
		Stats: config.StatsConfig{TradingDays: 252, MaxRangeDays: 3650},
		Postgres: config.PostgresConfig{
			Host:     "127.0.0.1",
			Port:     54329, // unlikely mapped
			User:     "x",
			Password: "y",
			DBName:   "z",
			SSLMode:  "disable",
		},
	}
}

func useConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = old })
}

func writeDataSet(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "prices"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]string{
		"etfs.json": `[{"symbol":"SPY","name":"SPDR S&P 500 ETF Trust","currency":"USD","inception_date":"1993-01-22"}]`,
		filepath.Join("prices", "SPY.json"): `[
			{"date":"2024-01-02","close":100},
			{"date":"2024-01-03","close":120},
			{"date":"2024-01-04","close":90},
			{"date":"2024-01-05","close":130}
		]`,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// TestInitPostgres_InvalidHost expects ping failure.
func TestInitPostgres_InvalidHost(t *testing.T) {
	db, err := InitPostgres(testConfig(config.BackendPostgres, ""))
	if err == nil {
		_ = db.Close()
		t.Fatalf("expected error connecting to invalid DB")
	}
}

// TestInitializeApp_DBFailure ensures InitializeApp returns error when DB cannot connect.
func TestInitializeApp_DBFailure(t *testing.T) {
	useConfig(t, testConfig(config.BackendPostgres, "data"))

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with invalid DB config")
	}
}

func TestInitializeApp_UnknownBackend(t *testing.T) {
	useConfig(t, testConfig("sqlite", "data"))

	if _, _, err := InitializeApp(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestInitializeApp_JSONBackend(t *testing.T) {
	gin.SetMode(gin.TestMode)
	useConfig(t, testConfig(config.BackendJSON, writeDataSet(t)))

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	defer cleanup()

	for _, path := range []string{"/health", "/readyz", "/v1/etfs", "/v1/etfs/spy"} {
		if w := get(router, path); w.Code != http.StatusOK {
			t.Fatalf("%s status=%d body=%s", path, w.Code, w.Body.String())
		}
	}

	w := get(router, "/v1/stats/spy")
	if w.Code != http.StatusOK {
		t.Fatalf("stats status=%d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Count       int     `json:"count"`
		MaxDrawdown float64 `json:"max_drawdown"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Count != 4 || body.MaxDrawdown != 0.25 {
		t.Fatalf("unexpected stats: %+v", body)
	}

	if w := get(router, "/v1/prices/QQQ"); w.Code != http.StatusNotFound {
		t.Fatalf("missing price file status=%d", w.Code)
	}
}

func TestInitializeApp_JSONBackendNotReady(t *testing.T) {
	gin.SetMode(gin.TestMode)
	useConfig(t, testConfig(config.BackendJSON, filepath.Join(t.TempDir(), "missing")))

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	defer cleanup()

	if w := get(router, "/readyz"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d", w.Code)
	}
	if w := get(router, "/healthz"); w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}
}

func TestInitializeApp_PostgresBackend(t *testing.T) {
	gin.SetMode(gin.TestMode)
	useConfig(t, testConfig(config.BackendPostgres, "data"))

	// Override opener to return a sqlmock DB that pings successfully
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	old := postgresOpener
	postgresOpener = func(cfg config.Config) (*sql.DB, error) { return db, nil }
	t.Cleanup(func() { postgresOpener = old })

	mock.ExpectPing()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT price_date, close FROM prices WHERE symbol = $1 ORDER BY price_date`)).
		WithArgs("VT").
		WillReturnRows(sqlmock.NewRows([]string{"price_date", "close"}).
			AddRow(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 100.0).
			AddRow(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), 110.0))
	mock.ExpectClose()

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}

	if w := get(router, "/readyz"); w.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w.Code)
	}

	w := get(router, "/v1/prices/vt?from=2024-01-01")
	if w.Code != http.StatusOK {
		t.Fatalf("prices status=%d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		From  string `json:"from"`
		To    string `json:"to"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.From != "2024-01-01" || body.To != "2024-01-08" || body.Count != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}

	cleanup()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
