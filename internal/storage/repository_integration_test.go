//go:build integration
// +build integration

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/etfpulse/internal/domain/models"
	"github.com/guttosm/etfpulse/internal/testutil/pgtest"
)

func TestPostgresRepository_RoundTrip(t *testing.T) {
	pg := pgtest.Start(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	repo := NewPostgresRepository(pg.DB)

	etfs := []models.ETF{
		{Symbol: "SPY", Name: "SPDR S&P 500 ETF Trust", Currency: "USD", InceptionDate: "1993-01-22"},
		{Symbol: "VT", Name: "Vanguard Total World Stock ETF", Currency: "USD", InceptionDate: "2008-06-24"},
	}
	if err := repo.UpsertETFs(ctx, etfs); err != nil {
		t.Fatalf("UpsertETFs: %v", err)
	}
	got, err := repo.ListETFs(ctx)
	if err != nil || len(got) != 2 {
		t.Fatalf("ListETFs: got=%+v err=%v", got, err)
	}
	if _, err := repo.GetETF(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetETF unknown: want ErrNotFound, got %v", err)
	}

	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	points := []models.PricePoint{
		{Date: day.AddDate(0, 0, 1), Close: 101},
		{Date: day, Close: 100},
	}
	if err := repo.InsertPricesBatch(ctx, "vt", points); err != nil {
		t.Fatalf("InsertPricesBatch: %v", err)
	}
	if err := repo.UpsertIngestionLog(ctx, "VT", "VT.json", len(points)); err != nil {
		t.Fatalf("UpsertIngestionLog: %v", err)
	}

	stored, err := repo.GetPrices(ctx, "VT")
	if err != nil || len(stored) != 2 {
		t.Fatalf("GetPrices: got=%+v err=%v", stored, err)
	}
	if !stored[0].Date.Equal(day) || stored[0].Close != 100 {
		t.Fatalf("expected ascending order, got %+v", stored)
	}

	ok, err := repo.HasIngestionForSymbol(ctx, "VT")
	if err != nil || !ok {
		t.Fatalf("HasIngestionForSymbol: ok=%v err=%v", ok, err)
	}

	if err := repo.DeletePricesBySymbol(ctx, "VT"); err != nil {
		t.Fatalf("DeletePricesBySymbol: %v", err)
	}
	stored, err = repo.GetPrices(ctx, "VT")
	if err != nil || len(stored) != 0 {
		t.Fatalf("expected no prices after delete, got=%+v err=%v", stored, err)
	}
}
