package handlers

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mythosquest/scenario-engine/internal/content"
	"github.com/mythosquest/scenario-engine/internal/generate"
	"github.com/mythosquest/scenario-engine/internal/storage"
	"github.com/mythosquest/scenario-engine/pkg/scenario"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// GenerateRequest defines the request body for generating a new scenario.
type GenerateRequest struct {
	Difficulty string `json:"difficulty"`        // normal, hard or nightmare; defaults to normal
	Seed       int64  `json:"seed,omitempty"`    // 0 means draw a fresh seed
	Mission    string `json:"mission,omitempty"` // optional mission type ID; random when empty
}

// GenerateResponse is the stored record plus the seed that produced it,
// so callers can reproduce the exact scenario.
type GenerateResponse struct {
	Seed int64 `json:"seed"`
	*storage.Record
}

type ScenarioHandler struct {
	storage     storage.Storage
	logger      *slog.Logger
	maxAttempts int
}

func NewScenarioHandler(storage storage.Storage, logger *slog.Logger, maxAttempts int) *ScenarioHandler {
	return &ScenarioHandler{
		storage:     storage,
		logger:      logger,
		maxAttempts: maxAttempts,
	}
}

// ServeHTTP handles HTTP requests for scenario operations
// Routes:
// POST /v1/scenarios          - Generate and store a new scenario
// GET /v1/scenarios           - List stored scenario record IDs
// GET /v1/scenarios/{id}      - Read a scenario record by ID
// DELETE /v1/scenarios/{id}   - Delete a scenario record by ID
func (h *ScenarioHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.TrimPrefix(r.URL.Path, "/v1/scenarios")
	var recordID uuid.UUID
	var err error

	if path != "" && path != "/" {
		idStr := strings.Trim(path, "/")
		recordID, err = uuid.Parse(idStr)
		if err != nil {
			h.logger.Warn("Invalid scenario record ID", "id", idStr, "error", err)
			h.writeError(w, http.StatusBadRequest, "Invalid scenario record ID format")
			return
		}
	}

	switch r.Method {
	case http.MethodPost:
		if recordID != uuid.Nil {
			h.writeError(w, http.StatusBadRequest, "POST does not accept a record ID")
			return
		}
		h.handleGenerate(w, r)

	case http.MethodGet:
		if recordID == uuid.Nil {
			h.handleList(w, r)
			return
		}
		h.handleRead(w, r, recordID)

	case http.MethodDelete:
		if recordID == uuid.Nil {
			h.logger.Warn("DELETE request without scenario record ID")
			h.writeError(w, http.StatusBadRequest, "Scenario record ID is required for DELETE requests")
			return
		}
		h.handleDelete(w, r, recordID)

	default:
		h.logger.Warn("Method not allowed for scenario endpoint", "method", r.Method)
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET, DELETE")
	}
}

func (h *ScenarioHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}

func (h *ScenarioHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Warn("Invalid JSON in request body", "error", err)
			h.writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
			return
		}
	}

	difficulty := scenario.ParseDifficulty(req.Difficulty)

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := generate.New(rand.New(rand.NewSource(seed)), h.logger)
	gen.SetMaxAttempts(h.maxAttempts)

	var result *generate.Result
	var err error
	if req.Mission != "" {
		mt, ok := content.MissionTypeByID(req.Mission)
		if !ok {
			h.logger.Warn("Unknown mission type requested", "mission", req.Mission)
			h.writeError(w, http.StatusBadRequest, "Unknown mission type: "+req.Mission)
			return
		}
		result, err = gen.GenerateValidatedMission(mt, difficulty)
	} else {
		result, err = gen.GenerateValidated(difficulty)
	}
	if err != nil {
		h.logger.Error("Scenario generation failed", "error", err, "difficulty", difficulty, "seed", seed)
		h.writeError(w, http.StatusInternalServerError, "Scenario generation failed")
		return
	}

	rec := &storage.Record{
		ID:         uuid.New(),
		Scenario:   result.Scenario,
		Report:     result.Report,
		Fixes:      result.Fixes,
		Attempts:   result.Attempts,
		BestEffort: result.BestEffort,
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.storage.SaveRecord(r.Context(), rec); err != nil {
		h.logger.Error("Failed to save scenario record", "error", err, "id", rec.ID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to save scenario record")
		return
	}

	h.logger.Debug("Scenario generated",
		"id", rec.ID.String(),
		"scenario_id", rec.Scenario.ID,
		"difficulty", difficulty,
		"seed", seed,
		"attempts", rec.Attempts,
		"best_effort", rec.BestEffort)

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(GenerateResponse{Seed: seed, Record: rec}); err != nil {
		h.logger.Error("Failed to encode scenario response", "error", err)
	}
}

func (h *ScenarioHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := h.storage.ListRecords(r.Context())
	if err != nil {
		h.logger.Error("Failed to list scenario records", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to list scenario records")
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ids); err != nil {
		h.logger.Error("Failed to encode scenario list response", "error", err)
	}
}

func (h *ScenarioHandler) handleRead(w http.ResponseWriter, r *http.Request, recordID uuid.UUID) {
	rec, err := h.storage.GetRecord(r.Context(), recordID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.logger.Warn("Scenario record not found", "id", recordID.String())
			h.writeError(w, http.StatusNotFound, "Scenario record not found")
			return
		}
		h.logger.Error("Failed to load scenario record", "error", err, "id", recordID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to load scenario record")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		h.logger.Error("Failed to encode scenario record response", "error", err)
	}
}

func (h *ScenarioHandler) handleDelete(w http.ResponseWriter, r *http.Request, recordID uuid.UUID) {
	if err := h.storage.DeleteRecord(r.Context(), recordID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.logger.Warn("Scenario record not found for delete", "id", recordID.String())
			h.writeError(w, http.StatusNotFound, "Scenario record not found")
			return
		}
		h.logger.Error("Failed to delete scenario record", "error", err, "id", recordID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to delete scenario record")
		return
	}
	h.logger.Debug("Scenario record deleted", "id", recordID.String())
	w.WriteHeader(http.StatusNoContent)
}
