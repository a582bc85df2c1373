package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "")
	t.Setenv("GOOGLE_JSON_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ENGINE_PAUSE_SECONDS", "")

	s := FromEnv()

	assert.Equal(t, 2*time.Second, s.EnginePause)
	assert.Error(t, s.ValidateStore())
}

func TestFromEnv_PauseOverride(t *testing.T) {
	t.Setenv("ENGINE_PAUSE_SECONDS", "5")
	assert.Equal(t, 5*time.Second, FromEnv().EnginePause)

	t.Setenv("ENGINE_PAUSE_SECONDS", "not-a-number")
	assert.Equal(t, 2*time.Second, FromEnv().EnginePause)
}

func TestValidateStore(t *testing.T) {
	assert.NoError(t, Settings{DatabaseURL: "postgres://localhost/geo"}.ValidateStore())
	assert.NoError(t, Settings{SpreadsheetID: "sheet", CredentialsJSON: "{}"}.ValidateStore())

	err := Settings{SpreadsheetID: "sheet"}.ValidateStore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_JSON_KEY")
}
