package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docproof/internal/core/ports/driven"
)

func TestNewLLMService(t *testing.T) {
	_, err := NewLLMService(Config{})
	require.Error(t, err)

	svc, err := NewLLMService(Config{APIKey: "k", BaseURL: "http://example.test/v1/"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.Equal(t, "http://example.test/v1", svc.baseURL)
}

func TestLLMService_Generate(t *testing.T) {
	var got generateContentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-pro:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Better "},{"text":"text.\n"}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	svc, err := NewLLMService(Config{APIKey: "secret", BaseURL: srv.URL})
	require.NoError(t, err)

	out, err := svc.Generate(context.Background(), "Please proofread:\n\nbad txt", driven.GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Better text.\n", out)
	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "Please proofread:\n\nbad txt", got.Contents[0].Parts[0].Text)
	assert.Nil(t, got.GenerationConfig)
}

func TestLLMService_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "api error",
			status:  http.StatusBadRequest,
			body:    `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`,
			wantMsg: "API key not valid",
		},
		{
			name:    "blocked prompt",
			status:  http.StatusOK,
			body:    `{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`,
			wantMsg: "SAFETY",
		},
		{
			name:    "no candidates",
			status:  http.StatusOK,
			body:    `{}`,
			wantMsg: "no candidates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			svc, _ := NewLLMService(Config{APIKey: "k", BaseURL: srv.URL})
			_, err := svc.Generate(context.Background(), "p", driven.GenerateOptions{})
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestLLMService_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-pro" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"name":"models/gemini-pro"}`))
	}))
	defer srv.Close()

	ok, _ := NewLLMService(Config{APIKey: "k", BaseURL: srv.URL})
	assert.NoError(t, ok.Ping(context.Background()))

	missing, _ := NewLLMService(Config{APIKey: "k", BaseURL: srv.URL, Model: "nope"})
	assert.ErrorContains(t, missing.Ping(context.Background()), "status 404")
}
