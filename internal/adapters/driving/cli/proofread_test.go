package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driving"
)

// scriptedRun walks a run to final, notifying observer on the way.
func scriptedRun(final domain.RunState, err error) func(context.Context, string, driving.RunObserver) *domain.Run {
	return func(_ context.Context, link string, observer driving.RunObserver) *domain.Run {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		run := &domain.Run{ID: "run-1", Link: link, Model: "gemini-pro", StartedAt: start}
		notify := func(state domain.RunState) {
			run.State = state
			if observer != nil {
				observer(*run)
			}
		}

		notify(domain.RunParsing)
		if final == domain.RunFailed && err == domain.ErrInvalidLink {
			run.Err = err
			run.FinishedAt = start.Add(time.Millisecond)
			notify(domain.RunFailed)
			return run
		}
		run.Reference = "abc123"
		notify(domain.RunFetching)
		run.Original = "Teh quick fox."
		notify(domain.RunProofreading)
		run.FinishedAt = start.Add(1500 * time.Millisecond)
		if final == domain.RunFailed {
			run.Err = err
			notify(domain.RunFailed)
			return run
		}
		run.Revised = "The quick fox."
		notify(domain.RunDone)
		return run
	}
}

func resetProofreadFlags(t *testing.T) {
	t.Cleanup(func() { proofreadJSON = false })
}

func TestProofreadCmd_PrintsBothTexts(t *testing.T) {
	resetProofreadFlags(t)
	withServices(t, Services{Proofread: &mockProofreadService{RunFunc: scriptedRun(domain.RunDone, nil)}})

	out, errOut, err := execute(t, "proofread", "https://docs.google.com/document/d/abc123/edit")

	require.NoError(t, err)
	assert.Contains(t, out, "Original Text\n=============\nTeh quick fox.")
	assert.Contains(t, out, "Improved Text\n=============\nThe quick fox.")
	assert.Contains(t, errOut, "Fetching document...")
	assert.Contains(t, errOut, "Proofreading with gemini-pro...")
}

func TestProofreadCmd_InvalidLink(t *testing.T) {
	resetProofreadFlags(t)
	withServices(t, Services{Proofread: &mockProofreadService{
		RunFunc: scriptedRun(domain.RunFailed, domain.ErrInvalidLink),
	}})

	out, errOut, err := execute(t, "proofread", "hello")

	require.ErrorIs(t, err, domain.ErrInvalidLink)
	assert.NotContains(t, out, "Original Text")
	assert.Contains(t, errOut, "Error: invalid link")
}

func TestProofreadCmd_ProofreadFailureKeepsOriginal(t *testing.T) {
	resetProofreadFlags(t)
	failure := fmt.Errorf("%w: quota exceeded", domain.ErrProofreadFailed)
	withServices(t, Services{Proofread: &mockProofreadService{RunFunc: scriptedRun(domain.RunFailed, failure)}})

	out, _, err := execute(t, "proofread", "https://docs.google.com/document/d/abc123")

	require.ErrorIs(t, err, domain.ErrProofreadFailed)
	assert.Contains(t, out, "Teh quick fox.")
	assert.NotContains(t, out, "Improved Text")
}

func TestProofreadCmd_JSON(t *testing.T) {
	resetProofreadFlags(t)
	withServices(t, Services{Proofread: &mockProofreadService{RunFunc: scriptedRun(domain.RunDone, nil)}})

	out, errOut, err := execute(t, "proofread", "--json", "https://docs.google.com/document/d/abc123")
	require.NoError(t, err)

	var got runOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, runOutput{
		ID:         "run-1",
		State:      "done",
		DocumentID: "abc123",
		Original:   "Teh quick fox.",
		Revised:    "The quick fox.",
		Model:      "gemini-pro",
		DurationMS: 1500,
	}, got)
	assert.NotContains(t, errOut, "Fetching document...")
}

func TestProofreadCmd_JSONFailure(t *testing.T) {
	resetProofreadFlags(t)
	withServices(t, Services{Proofread: &mockProofreadService{
		RunFunc: scriptedRun(domain.RunFailed, domain.ErrInvalidLink),
	}})

	out, _, err := execute(t, "proofread", "--json", "hello")
	require.Error(t, err)

	var got runOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "failed", got.State)
	assert.Contains(t, got.Error, "Error: invalid link")
	assert.Empty(t, got.Original)
}

func TestProofreadCmd_BlankLinkDoesNothing(t *testing.T) {
	resetProofreadFlags(t)
	withServices(t, Services{Proofread: &mockProofreadService{}})

	out, _, err := execute(t, "proofread", "")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestProofreadCmd_RequiresLink(t *testing.T) {
	resetProofreadFlags(t)
	withServices(t, Services{Proofread: &mockProofreadService{}})

	_, _, err := execute(t, "proofread")

	assert.Error(t, err)
}

func TestProofreadCmd_NotConfigured(t *testing.T) {
	resetProofreadFlags(t)
	withServices(t, Services{})

	_, _, err := execute(t, "proofread", "https://docs.google.com/document/d/abc")

	assert.EqualError(t, err, "proofread service not configured")
}
