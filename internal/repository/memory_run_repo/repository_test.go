package memory_run_repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baccarat_sim/internal/model"
	"baccarat_sim/internal/repository"
)

func record(id string) *model.RunRecord {
	return &model.RunRecord{
		ID:        id,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Summary:   model.RunSummary{FinalBankroll: 1000},
		Events:    []model.HandEvent{{HandNo: 1}},
	}
}

func TestRepo_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewRunRepository()

	require.NoError(t, r.SaveRun(ctx, record("a")))
	err := r.SaveRun(ctx, record("a"))
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	got, err := r.GetRun(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got.Summary.FinalBankroll)
	assert.Nil(t, got.Events)

	_, err = r.GetRun(ctx, "b")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepo_Events(t *testing.T) {
	ctx := context.Background()
	r := NewRunRepository()

	err := r.SaveEvents(ctx, "ghost", []model.HandEvent{{HandNo: 1}})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, r.SaveRun(ctx, record("a")))
	require.NoError(t, r.SaveEvents(ctx, "a", []model.HandEvent{{HandNo: 1}, {HandNo: 2}}))
	require.NoError(t, r.SaveEvents(ctx, "a", []model.HandEvent{{HandNo: 3}}))

	events, err := r.GetEvents(ctx, "a")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 3, events[2].HandNo)

	// callers get a copy
	events[0].HandNo = 99
	again, err := r.GetEvents(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, again[0].HandNo)

	none, err := r.GetEvents(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepo_ListRuns(t *testing.T) {
	ctx := context.Background()
	r := NewRunRepository()

	for i := range 5 {
		require.NoError(t, r.SaveRun(ctx, record(fmt.Sprintf("run-%d", i))))
	}

	list, err := r.ListRuns(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "run-4", list[0].ID)
	assert.Equal(t, "run-2", list[2].ID)

	list, err = r.ListRuns(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestTxManager_RunsInline(t *testing.T) {
	m := NewTxManager()
	boom := errors.New("boom")

	called := false
	err := m.Do(context.Background(), func(ctx context.Context) error {
		called = true
		return boom
	})
	assert.True(t, called)
	assert.ErrorIs(t, err, boom)
}
