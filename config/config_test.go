package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "₹", cfg.CurrencySymbol)
	assert.Equal(t, 60*time.Minute, cfg.JWTTTL())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=courtside sslmode=disable", cfg.DSN())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_BadTimezone(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_Timezone(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_TIMEZONE", "Asia/Kolkata")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
}

func TestLocation_ZeroConfig(t *testing.T) {
	var cfg Config
	assert.Equal(t, time.Local, cfg.Location())
}
