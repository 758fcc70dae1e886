package state

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drover/internal/domain"
)

func TestWriteAndLoad(t *testing.T) {
	dir := t.TempDir()

	session := &Session{
		SessionID: "sess-abc123",
		APIURL:    "http://localhost:3000/api",
		StartedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, session.Write(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, loaded.SessionID)
	assert.Equal(t, session.APIURL, loaded.APIURL)
	assert.True(t, session.StartedAt.Equal(loaded.StartedAt))
}

func TestWrite_RejectsEmptyID(t *testing.T) {
	session := &Session{APIURL: "http://localhost:3000/api"}
	require.Error(t, session.Write(t.TempDir()))
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoSession))
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()

	session := &Session{SessionID: "sess-1", APIURL: "http://localhost:3000/api"}
	require.NoError(t, session.Write(dir))
	require.NoError(t, Remove(dir))

	_, err := Load(dir)
	assert.True(t, errors.Is(err, domain.ErrNoSession))

	// Removing twice is not an error
	require.NoError(t, Remove(dir))
}
