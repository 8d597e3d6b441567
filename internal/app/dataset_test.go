package app

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/etfpulse/config"
)

// These run against the sample data set shipped in data/.
func datasetRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	useConfig(t, testConfig(config.BackendJSON, filepath.Join("..", "..", "data")))

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	t.Cleanup(cleanup)
	return router
}

func TestDataset_ListETFs(t *testing.T) {
	w := get(datasetRouter(t), "/v1/etfs")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body struct {
		Items []map[string]any `json:"items"`
		Count int              `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Count != len(body.Items) || body.Count < 5 {
		t.Fatalf("unexpected catalog: count=%d items=%d", body.Count, len(body.Items))
	}
}

func TestDataset_PricesWindow(t *testing.T) {
	router := datasetRouter(t)

	w := get(router, "/v1/prices/VT?from=2024-01-05&to=2024-01-10")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		From  string `json:"from"`
		To    string `json:"to"`
		Count int    `json:"count"`
		Items []struct {
			Date string `json:"date"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.From != "2024-01-05" || body.To != "2024-01-10" || body.Count != len(body.Items) || body.Count == 0 {
		t.Fatalf("unexpected window: %+v", body)
	}
	for _, it := range body.Items {
		if it.Date < "2024-01-05" || it.Date > "2024-01-10" {
			t.Fatalf("item outside window: %s", it.Date)
		}
	}

	if w := get(router, "/v1/prices/VT?from=2024-01-10&to=2024-01-05"); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("inverted window status=%d", w.Code)
	}
	if w := get(router, "/v1/prices/NOPE"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown symbol status=%d", w.Code)
	}
}

func TestDataset_Stats(t *testing.T) {
	w := get(datasetRouter(t), "/v1/stats/SPY")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Count                int     `json:"count"`
		VolatilityAnnualized float64 `json:"volatility_annualized"`
		MaxDrawdown          float64 `json:"max_drawdown"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Count < 2 || body.VolatilityAnnualized <= 0 || body.MaxDrawdown < 0 || body.MaxDrawdown > 1 {
		t.Fatalf("unexpected stats: %+v", body)
	}
}
