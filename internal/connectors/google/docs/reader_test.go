package docs

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gdocs "google.golang.org/api/docs/v1"
	"google.golang.org/api/option"

	"github.com/custodia-labs/docproof/internal/connectors/google"
	"github.com/custodia-labs/docproof/internal/core/domain"
)

func newTestReader(t *testing.T, handler http.HandlerFunc) *Reader {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := gdocs.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return NewReader(svc)
}

const twoParagraphDoc = `{
  "documentId": "ABC123xyz",
  "title": "Draft",
  "body": {
    "content": [
      {"sectionBreak": {}},
      {"paragraph": {"elements": [{"textRun": {"content": "Hello "}}]}},
      {"table": {"rows": 1}},
      {"paragraph": {"elements": [{"inlineObjectElement": {}}, {"textRun": {"content": "world.\n"}}]}}
    ]
  }
}`

func TestReader_ReadDocument(t *testing.T) {
	reader := newTestReader(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/documents/ABC123xyz", r.URL.Path)
		assert.Equal(t, bodyFields, r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(twoParagraphDoc))
	})

	body, err := reader.ReadDocument(context.Background(), "ABC123xyz")

	require.NoError(t, err)
	assert.Equal(t, "Draft", body.Title)
	require.Len(t, body.Content, 4)
	assert.Nil(t, body.Content[0].Paragraph)
	assert.Nil(t, body.Content[2].Paragraph)
	assert.Nil(t, body.Content[3].Paragraph.Elements[0].TextRun)
	assert.Equal(t, domain.DocumentContent("Hello world."), body.PlainText())
}

func TestReader_ReadDocument_NoBody(t *testing.T) {
	reader := newTestReader(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"documentId":"x","title":"Empty"}`))
	})

	body, err := reader.ReadDocument(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, domain.DocumentContent(""), body.PlainText())
}

func TestReader_ReadDocument_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"not shared", http.StatusForbidden, google.ErrForbidden},
		{"missing", http.StatusNotFound, google.ErrNotFound},
		{"bad credentials", http.StatusUnauthorized, google.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := newTestReader(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprintf(w, `{"error":{"code":%d,"message":"denied"}}`, tt.status)
			})

			body, err := reader.ReadDocument(context.Background(), "id")

			assert.Nil(t, body)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}
