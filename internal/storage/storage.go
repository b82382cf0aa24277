package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mythosquest/scenario-engine/internal/repair"
	"github.com/mythosquest/scenario-engine/pkg/scenario"
	"github.com/mythosquest/scenario-engine/pkg/validate"
)

// Record is one generated scenario together with the validation outcome that
// shipped with it, kept browsable for the setup flow and preview tooling.
type Record struct {
	ID         uuid.UUID          `json:"id"`
	Scenario   *scenario.Scenario `json:"scenario"`
	Report     validate.Report    `json:"report"`
	Fixes      []repair.Fix       `json:"fixes,omitempty"`
	Attempts   int                `json:"attempts"`
	BestEffort bool               `json:"best_effort"`
	CreatedAt  time.Time          `json:"created_at"`
}

// Storage persists generated scenario records.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// WaitForConnection waits for the backend to be available with retries
	WaitForConnection(ctx context.Context) error

	SaveRecord(ctx context.Context, rec *Record) error
	GetRecord(ctx context.Context, id uuid.UUID) (*Record, error)
	ListRecords(ctx context.Context) ([]uuid.UUID, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}
