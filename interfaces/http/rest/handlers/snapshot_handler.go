package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"sikdan-backend/application/services"
	"sikdan-backend/pkg/common"
	apperrors "sikdan-backend/pkg/errors"
	"sikdan-backend/pkg/utils"
)

// maxSnapshotBytes bounds uploaded snapshot size
const maxSnapshotBytes = 10 << 20

// SnapshotHandler handles export/import of the full record list
type SnapshotHandler struct {
	store  *services.RecordStore
	logger *zap.Logger
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(store *services.RecordStore, logger *zap.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		store:  store,
		logger: logger,
	}
}

// ExportSnapshot handles GET /snapshot/export, serving the envelope as
// a downloadable date-stamped JSON file
func (h *SnapshotHandler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot := h.store.ExportSnapshot()

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, common.StandardErrorCodes.InternalError, "failed to serialize snapshot")
		return
	}

	filename := fmt.Sprintf("sik-dan-backup-%s.json", utils.Today())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

// ImportSnapshot handles POST /snapshot/import. The two failure modes
// stay distinct: unreadable bytes report a parse error, a readable
// document without a records array reports malformed input. Neither
// touches existing state.
func (h *SnapshotHandler) ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSnapshotBytes))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "failed to read snapshot upload")
		return
	}

	count, err := h.store.ImportSnapshot(raw)
	if err != nil {
		switch {
		case apperrors.IsParse(err):
			common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ParseError, "snapshot file could not be parsed")
		case apperrors.IsMalformedInput(err):
			common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.MalformedInput, "snapshot file has an invalid format")
		default:
			h.logger.Error("snapshot import failed", zap.Error(err))
			common.RespondError(w, http.StatusInternalServerError, common.StandardErrorCodes.InternalError, "snapshot import failed")
		}
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"imported": count})
}

// ClearRecords handles DELETE /snapshot, emptying the in-memory list
// and the local cache entry
func (h *SnapshotHandler) ClearRecords(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"cleared": true})
}
