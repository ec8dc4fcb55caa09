package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del panel (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	JWT     JWTConfig
	Session SessionConfig
	DB      DBConfig
	Redis   RedisConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig API REST externa a la que el panel delega todas las operaciones.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// JWTConfig verificación de los tokens emitidos por el backend.
type JWTConfig struct {
	Secret string
	Issuer string // vacío = no se valida el emisor
}

// SessionConfig cookies de sesión y chequeo de expiración.
type SessionConfig struct {
	CookieSecure  bool
	CookieDomain  string
	ExpiryMargin  time.Duration // un token que vence dentro de este margen se considera vencido
	CheckInterval time.Duration // período del sondeo /session/status desde el navegador
	Store         string        // memory | postgres | redis
}

// DBConfig configuración de PostgreSQL (solo para SESSION_STORE=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig configuración de Redis (solo para SESSION_STORE=redis).
type RedisConfig struct {
	URL string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Para API_URL y JWT_SECRET se aceptan también los nombres
// heredados NEXT_PUBLIC_API_URL y NEXTAUTH_SECRET.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "panel-admin"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(firstString(v, "", "API_URL", "NEXT_PUBLIC_API_URL"), "/"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		JWT: JWTConfig{
			Secret: firstString(v, "", "JWT_SECRET", "NEXTAUTH_SECRET"),
			Issuer: getString(v, "JWT_ISSUER", ""),
		},
		Session: SessionConfig{
			CookieSecure:  getBool(v, "COOKIE_SECURE", false),
			CookieDomain:  getString(v, "COOKIE_DOMAIN", ""),
			ExpiryMargin:  time.Duration(getInt(v, "TOKEN_EXPIRY_MARGIN_SECONDS", 60)) * time.Second,
			CheckInterval: time.Duration(getInt(v, "TOKEN_CHECK_INTERVAL_SECONDS", 30)) * time.Second,
			Store:         strings.ToLower(getString(v, "SESSION_STORE", "memory")),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "panel_admin"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL: getString(v, "REDIS_URL", "redis://localhost:6379/0"),
		},
	}

	return cfg, nil
}

// Validate comprueba los valores sin los cuales el panel no puede atender peticiones.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("config: API_URL (o NEXT_PUBLIC_API_URL) es obligatorio")
	}
	if _, err := url.ParseRequestURI(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("config: API_URL inválido: %w", err)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET (o NEXTAUTH_SECRET) es obligatorio")
	}
	switch c.Session.Store {
	case "memory", "postgres", "redis":
	default:
		return fmt.Errorf("config: SESSION_STORE desconocido %q", c.Session.Store)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// firstString devuelve el primer valor definido entre keys.
func firstString(v *viper.Viper, def string, keys ...string) string {
	for _, k := range keys {
		if v.IsSet(k) && v.GetString(k) != "" {
			return v.GetString(k)
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
