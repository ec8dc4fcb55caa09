package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("API_URL", "http://api.local/")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.local", cfg.Backend.BaseURL, "se quita la barra final")
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Session.ExpiryMargin)
	assert.Equal(t, 30*time.Second, cfg.Session.CheckInterval)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NombresHeredados(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_API_URL", "https://backend.example.com")
	t.Setenv("NEXTAUTH_SECRET", "heredado")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://backend.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, "heredado", cfg.JWT.Secret)
}

func TestLoad_NombreNuevoTienePrioridad(t *testing.T) {
	t.Setenv("JWT_SECRET", "nuevo")
	t.Setenv("NEXTAUTH_SECRET", "heredado")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "nuevo", cfg.JWT.Secret)
}

func TestLoad_EnterosInvalidosUsanElDefecto(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY_MARGIN_SECONDS", "abc")
	t.Setenv("SESSION_STORE", "Redis")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.Session.ExpiryMargin)
	assert.Equal(t, "redis", cfg.Session.Store)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Backend: BackendConfig{BaseURL: "http://api.local"},
			JWT:     JWTConfig{Secret: "x"},
			Session: SessionConfig{Store: "memory"},
		}
	}

	cfg := base()
	cfg.Backend.BaseURL = ""
	assert.ErrorContains(t, cfg.Validate(), "API_URL")

	cfg = base()
	cfg.JWT.Secret = ""
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")

	cfg = base()
	cfg.Session.Store = "etcd"
	assert.ErrorContains(t, cfg.Validate(), "SESSION_STORE")

	assert.NoError(t, base().Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := DBConfig{Host: "db", Port: 5432, User: "panel", Password: "p@ss:word", DBName: "panel_admin", SSLMode: "disable"}
	assert.Equal(t, "postgres://panel:p%40ss%3Aword@db:5432/panel_admin?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", db.ConnectionString())
}
