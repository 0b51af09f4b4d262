package services

import (
	"bytes"
	"encoding/json"

	"sikdan-backend/domain/core/entities"
	apperrors "sikdan-backend/pkg/errors"
	"sikdan-backend/pkg/utils"
)

// Snapshot is the import/export envelope for the full record list
type Snapshot struct {
	Records    []entities.MealRecord `json:"records"`
	ExportDate string                `json:"exportDate"`
	Version    string                `json:"version"`
}

// ExportSnapshot produces the envelope over the current list. Records
// go out as stored, without re-validation.
func (s *RecordStore) ExportSnapshot() Snapshot {
	return Snapshot{
		Records:    s.snapshotRecords(),
		ExportDate: utils.NowRFC3339(),
		Version:    s.dcfg.SnapshotVersion,
	}
}

// ImportSnapshot parses an uploaded envelope and replaces the list
// wholesale. Unparseable bytes yield a parse error; a parseable
// document without a records array yields a malformed-input error.
// Existing state is untouched on either failure. Returns the number of
// imported records.
func (s *RecordStore) ImportSnapshot(raw []byte) (int, error) {
	var envelope struct {
		Records json.RawMessage `json:"records"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return 0, apperrors.NewParseError("failed to parse snapshot file", err)
	}

	// The records field must be present and hold a JSON array
	trimmed := bytes.TrimSpace(envelope.Records)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, apperrors.NewMalformedInputError("snapshot is missing a records array")
	}

	var records []entities.MealRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return 0, apperrors.NewMalformedInputError("snapshot records have an invalid shape").WithCause(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records
	s.writeCache()

	return len(records), nil
}
