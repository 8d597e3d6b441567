package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeJSON(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestJSONStore_LoadList_ArrayOfObjects(t *testing.T) {
	path := writeJSON(t, t.TempDir(), "data.json", `[{"a": 1}, {"b": 2}]`)

	items, err := NewJSONStore().LoadList(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 || items[0]["a"] != float64(1) || items[1]["b"] != float64(2) {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestJSONStore_LoadList_Errors(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.json"), wantMsg: "not found"},
		{name: "invalid json", path: writeJSON(t, dir, "bad.json", "{not valid json]"), wantMsg: "invalid json"},
		{name: "root not list", path: writeJSON(t, dir, "root.json", `{"a": 1}`), wantMsg: "expected a json array"},
		{name: "item not object", path: writeJSON(t, dir, "items.json", `[{"a": 1}, 123]`), wantMsg: "index 1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewJSONStore().LoadList(tc.path)
			if err == nil {
				t.Fatalf("expected error")
			}
			var dsErr *DataStoreError
			if !errors.As(err, &dsErr) {
				t.Fatalf("want *DataStoreError, got %T", err)
			}
			if dsErr.Path != tc.path {
				t.Fatalf("path: want %q got %q", tc.path, dsErr.Path)
			}
			if !strings.Contains(strings.ToLower(err.Error()), tc.wantMsg) {
				t.Fatalf("error %q does not contain %q", err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestDataStoreError_Error(t *testing.T) {
	if got := (&DataStoreError{Message: "boom"}).Error(); got != "boom" {
		t.Fatalf("got %q", got)
	}
	if got := (&DataStoreError{Message: "boom", Path: "/x.json"}).Error(); got != "boom (path=/x.json)" {
		t.Fatalf("got %q", got)
	}
}
