package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DataStoreError reports a JSON file that could not be loaded or has the wrong shape.
type DataStoreError struct {
	Message string
	Path    string
	Err     error
}

func (e *DataStoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (path=%s)", e.Message, e.Path)
	}
	return e.Message
}

func (e *DataStoreError) Unwrap() error { return e.Err }

// JSONStore loads JSON documents from the local filesystem.
// It keeps data shape validation at the I/O boundary so repositories
// only deal with well-formed lists of objects.
type JSONStore struct{}

// NewJSONStore returns a JSONStore.
func NewJSONStore() *JSONStore {
	return &JSONStore{}
}

// LoadList reads path and returns its top-level array of objects.
//
// It fails with *DataStoreError when:
//   - the file does not exist or cannot be read;
//   - the content is not valid JSON;
//   - the root is not an array;
//   - any array element is not an object (the index is reported).
func (s *JSONStore) LoadList(path string) ([]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &DataStoreError{Message: "JSON file not found", Path: path, Err: err}
		}
		return nil, &DataStoreError{Message: fmt.Sprintf("cannot read JSON file: %v", err), Path: path, Err: err}
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &DataStoreError{Message: fmt.Sprintf("invalid JSON: %v", err), Path: path, Err: err}
	}

	list, ok := data.([]any)
	if !ok {
		return nil, &DataStoreError{Message: "expected a JSON array (list)", Path: path}
	}

	items := make([]map[string]any, 0, len(list))
	for idx, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &DataStoreError{
				Message: fmt.Sprintf("expected each array item to be an object, got %s at index %d", jsonKind(item), idx),
				Path:    path,
			}
		}
		items = append(items, obj)
	}
	return items, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
