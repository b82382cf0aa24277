package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythosquest/scenario-engine/pkg/scenario"
	"github.com/mythosquest/scenario-engine/pkg/validate"
)

func newTestStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rs := NewRedisStorage(mr.Addr(), time.Hour, logger)
	t.Cleanup(func() {
		_ = rs.Close()
	})
	return rs, mr
}

func testRecord() *Record {
	return &Record{
		ID: uuid.New(),
		Scenario: &scenario.Scenario{
			ID:        "scn-0000002a",
			Title:     "The Red Sign Of The Witch Quarter",
			StartDoom: 14,
			Objectives: []scenario.ScenarioObjective{
				{ID: "obj-1", Kind: scenario.ObjectiveExplore, Description: "Sweep the quarter"},
			},
			DoomEvents: []scenario.DoomEvent{
				{Threshold: 8, Kind: scenario.DoomSpawnEnemy, TargetID: "ghoul", Amount: 3, Message: "Ghouls!"},
			},
		},
		Report:    validate.Report{IsWinnable: true, Confidence: 100},
		Attempts:  1,
		CreatedAt: time.Now().UTC(),
	}
}

func TestRedisStorage_SaveAndGet(t *testing.T) {
	rs, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, rs.Ping(ctx))

	rec := testRecord()
	require.NoError(t, rs.SaveRecord(ctx, rec))

	got, err := rs.GetRecord(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Scenario.Title, got.Scenario.Title)
	assert.Equal(t, rec.Scenario.Objectives, got.Scenario.Objectives)
	assert.True(t, got.Report.IsWinnable)
}

func TestRedisStorage_GetMissing(t *testing.T) {
	rs, _ := newTestStorage(t)

	_, err := rs.GetRecord(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRedisStorage_List(t *testing.T) {
	rs, _ := newTestStorage(t)
	ctx := context.Background()

	want := map[uuid.UUID]bool{}
	for i := 0; i < 3; i++ {
		rec := testRecord()
		require.NoError(t, rs.SaveRecord(ctx, rec))
		want[rec.ID] = true
	}

	ids, err := rs.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	for _, id := range ids {
		assert.True(t, want[id], "unexpected id %s", id)
	}
}

func TestRedisStorage_Delete(t *testing.T) {
	rs, _ := newTestStorage(t)
	ctx := context.Background()

	rec := testRecord()
	require.NoError(t, rs.SaveRecord(ctx, rec))
	require.NoError(t, rs.DeleteRecord(ctx, rec.ID))

	_, err := rs.GetRecord(ctx, rec.ID)
	assert.Error(t, err)

	err = rs.DeleteRecord(ctx, rec.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRedisStorage_TTL(t *testing.T) {
	rs, mr := newTestStorage(t)
	ctx := context.Background()

	rec := testRecord()
	require.NoError(t, rs.SaveRecord(ctx, rec))

	mr.FastForward(2 * time.Hour)

	_, err := rs.GetRecord(ctx, rec.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
