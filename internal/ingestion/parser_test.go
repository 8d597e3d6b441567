package ingestion

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/guttosm/etfpulse/internal/storage"
)

func TestLoadAndPersistFile_TableDriven(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name        string
		content     string
		batch       int
		wantRows    int
		wantBatches int
		wantErr     string
	}{
		{
			name:        "single batch",
			content:     `[{"date":"2024-01-02","close":1.5},{"date":"2024-01-03","close":1.6}]`,
			batch:       10,
			wantRows:    2,
			wantBatches: 1,
		},
		{
			name:        "split into batches",
			content:     `[{"date":"2024-01-02","close":1},{"date":"2024-01-03","close":2},{"date":"2024-01-04","close":3}]`,
			batch:       2,
			wantRows:    3,
			wantBatches: 2,
		},
		{
			name:        "empty file",
			content:     `[]`,
			batch:       2,
			wantRows:    0,
			wantBatches: 0,
		},
		{
			name:    "not an array",
			content: `{"date":"2024-01-02","close":1}`,
			batch:   2,
			wantErr: "expected a JSON array",
		},
		{
			name:    "bad date",
			content: `[{"date":"02/01/2024","close":1}]`,
			batch:   2,
			wantErr: "invalid date",
		},
		{
			name:    "non-positive close",
			content: `[{"date":"2024-01-02","close":0}]`,
			batch:   2,
			wantErr: "close must be positive",
		},
		{
			name:    "duplicate date",
			content: `[{"date":"2024-01-02","close":1},{"date":"2024-01-02","close":2}]`,
			batch:   2,
			wantErr: "duplicate date",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, strings.ReplaceAll(tc.name, " ", "_")+".json", tc.content)
			fr := newFakeRepo()

			n, err := loadAndPersistFile(context.Background(), storage.NewJSONStore(), path, "SPY", fr, tc.batch)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != tc.wantRows || fr.inserted["SPY"] != tc.wantRows {
				t.Fatalf("rows: got %d (inserted %d) want %d", n, fr.inserted["SPY"], tc.wantRows)
			}
			if fr.batches["SPY"] != tc.wantBatches {
				t.Fatalf("batches: got %d want %d", fr.batches["SPY"], tc.wantBatches)
			}
		})
	}
}

func TestLoadAndPersistFile_ContextCancelled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "SPY.json", `[{"date":"2024-01-02","close":1}]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loadAndPersistFile(ctx, storage.NewJSONStore(), path, "SPY", newFakeRepo(), 10)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
