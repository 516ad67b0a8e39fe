package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunState_String(t *testing.T) {
	tests := []struct {
		state RunState
		want  string
	}{
		{RunIdle, "idle"},
		{RunParsing, "parsing"},
		{RunFetching, "fetching"},
		{RunProofreading, "proofreading"},
		{RunDone, "done"},
		{RunFailed, "failed"},
		{RunState(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}

func TestRunState_CanTransition(t *testing.T) {
	allowed := map[RunState][]RunState{
		RunIdle:         {RunParsing},
		RunParsing:      {RunFetching, RunFailed},
		RunFetching:     {RunProofreading, RunFailed},
		RunProofreading: {RunDone, RunFailed},
		RunDone:         nil,
		RunFailed:       nil,
	}
	states := []RunState{RunIdle, RunParsing, RunFetching, RunProofreading, RunDone, RunFailed}

	for from, targets := range allowed {
		for _, to := range states {
			want := false
			for _, target := range targets {
				if target == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestRunState_IsTerminal(t *testing.T) {
	assert.True(t, RunDone.IsTerminal())
	assert.True(t, RunFailed.IsTerminal())
	assert.False(t, RunIdle.IsTerminal())
	assert.False(t, RunProofreading.IsTerminal())
}

func TestRun_HasOriginal(t *testing.T) {
	assert.False(t, (&Run{State: RunFetching}).HasOriginal())
	assert.True(t, (&Run{State: RunProofreading}).HasOriginal())
	assert.True(t, (&Run{State: RunDone}).HasOriginal())

	fetchErr := fmt.Errorf("%w: boom", ErrFetchFailed)
	assert.False(t, (&Run{State: RunFailed, Err: fetchErr}).HasOriginal())

	genErr := fmt.Errorf("%w: quota", ErrProofreadFailed)
	assert.True(t, (&Run{State: RunFailed, Err: genErr, Original: "text"}).HasOriginal())

	assert.False(t, (&Run{State: RunFailed, Err: errors.New("other")}).HasOriginal())
}

func TestRun_HasRevised(t *testing.T) {
	assert.True(t, (&Run{State: RunDone}).HasRevised())
	assert.False(t, (&Run{State: RunFailed}).HasRevised())
}

func TestRun_Duration(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Zero(t, (&Run{StartedAt: start}).Duration())
	assert.Equal(t, 3*time.Second, (&Run{StartedAt: start, FinishedAt: start.Add(3 * time.Second)}).Duration())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, "Error: fetch document: boom",
		ErrorMessage(fmt.Errorf("%w: %w", ErrFetchFailed, errors.New("boom"))))
	assert.Contains(t, ErrorMessage(ErrInvalidLink), "Error: invalid link: no document ID found")
}

func TestRun_Message(t *testing.T) {
	assert.Equal(t, "", (&Run{State: RunDone}).Message())
	assert.Equal(t, "Error: fetch document",
		(&Run{State: RunFailed, Err: ErrFetchFailed}).Message())
}
