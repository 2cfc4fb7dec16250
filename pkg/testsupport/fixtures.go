// Package testsupport holds shared golden-file and fixture helpers used by
// the module's contract tests.
package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgmodel "github.com/caseflow/go-intake/pkg/model"
)

// MustLoadFormRecord loads a JSON golden file into a FormRecord.
func MustLoadFormRecord(t *testing.T, path string) pkgmodel.FormRecord {
	t.Helper()

	record, err := LoadFormRecord(path)
	if err != nil {
		t.Fatalf("load form record: %v", err)
	}
	return record
}

// LoadFormRecord reads a JSON fixture into a FormRecord, returning an error
// for callers managing setup outside of *testing.T.
func LoadFormRecord(path string) (pkgmodel.FormRecord, error) {
	if path == "" {
		return pkgmodel.FormRecord{}, errors.New("testsupport: form record path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.FormRecord{}, fmt.Errorf("testsupport: read form record: %w", err)
	}
	var out pkgmodel.FormRecord
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgmodel.FormRecord{}, fmt.Errorf("testsupport: unmarshal form record: %w", err)
	}
	return out, nil
}

// WriteGolden writes a JSON golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
