package google

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docproof/internal/core/domain"
)

// An authorized_user credential parses without a private key and makes no
// network call until a token is requested.
const userCredentials = `{
  "type": "authorized_user",
  "client_id": "id.apps.googleusercontent.com",
  "client_secret": "secret",
  "refresh_token": "refresh"
}`

func TestNewTokenSource_NoCredentials(t *testing.T) {
	_, err := NewTokenSource(context.Background(), domain.GoogleSettings{})

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestNewTokenSource_InlineJSON(t *testing.T) {
	ts, err := NewTokenSource(context.Background(), domain.GoogleSettings{CredentialsJSON: userCredentials})

	require.NoError(t, err)
	assert.NotNil(t, ts)
}

func TestNewTokenSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte(userCredentials), 0600))

	ts, err := NewTokenSource(context.Background(), domain.GoogleSettings{CredentialsFile: path})

	require.NoError(t, err)
	assert.NotNil(t, ts)
}

func TestNewTokenSource_Invalid(t *testing.T) {
	_, err := NewTokenSource(context.Background(), domain.GoogleSettings{CredentialsJSON: "not json"})
	assert.ErrorIs(t, err, domain.ErrAuthInvalid)

	_, err = NewTokenSource(context.Background(), domain.GoogleSettings{
		CredentialsFile: filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.ErrorIs(t, err, domain.ErrAuthInvalid)
}
