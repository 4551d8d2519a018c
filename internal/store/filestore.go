// Package store persists ordered record collections as single JSON-array
// files. The file on disk is the source of truth: every append re-reads the
// whole array, modifies it in memory, and rewrites the whole file. Appends
// on one store serialize through its mutex so concurrent requests cannot
// interleave the read-modify-write cycle.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"resumeslide/internal/apperrors"
)

// readArray loads a whole JSON-array file into out. A missing file is an
// empty collection. A corrupt file is treated as empty with a logged alert
// rather than a fatal error, so one bad write does not brick the store.
func readArray(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &apperrors.PersistenceError{Message: fmt.Sprintf("failed to read %s", path), Err: err}
	}

	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("⚠️ Store file %s is corrupt, treating as empty: %v", path, err)
		// Unmarshal may have partially populated out before failing.
		_ = json.Unmarshal([]byte("[]"), out)
		return nil
	}

	return nil
}

// writeArray rewrites the whole JSON-array file, creating its directory on
// first use.
func writeArray(path string, records interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &apperrors.PersistenceError{Message: "failed to create data directory", Err: err}
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &apperrors.PersistenceError{Message: "failed to encode records", Err: err}
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return &apperrors.PersistenceError{Message: fmt.Sprintf("failed to write %s", path), Err: err}
	}

	return nil
}
