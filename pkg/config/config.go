package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Data    DataConfig
	Auth    AuthConfig
	Swagger SwaggerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	Version     string
	LogLevel    string
	FrontendURL string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	AllowOrigins []string // orígenes CORS permitidos
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DataConfig ubicación del archivo JSON con los CFDIs de prueba.
type DataConfig struct {
	FilePath string
}

// AuthConfig parámetros del login de demostración.
type AuthConfig struct {
	TokenSalt        string
	SessionHours     int
	DemoAccountsFile string // YAML opcional; vacío = cuentas integradas
	BcryptCost       int    // 0 = bcrypt.DefaultCost
}

// SessionTTL duración informativa de la sesión.
func (c AuthConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionHours) * time.Hour
}

// SwaggerConfig documento OpenAPI servido en /docs.
type SwaggerConfig struct {
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATA_FILE_PATH, AUTH_TOKEN_SALT, etc.
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

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia ya preparada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "mvp-cfdi-api"),
			Version:     getString(v, "APP_VERSION", "1.0.0"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			FrontendURL: getString(v, "FRONTEND_URL", "http://localhost:3000"),
		},
		HTTP: HTTPConfig{
			Host:         getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:         getInt(v, "HTTP_PORT", 8000),
			AllowOrigins: getList(v, "CORS_ALLOW_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:3001"}),
		},
		Data: DataConfig{
			FilePath: getString(v, "DATA_FILE_PATH", "data/dummy_cfdis.json"),
		},
		Auth: AuthConfig{
			TokenSalt:        getString(v, "AUTH_TOKEN_SALT", "mvp-cfdi-2024"),
			SessionHours:     getInt(v, "AUTH_SESSION_HOURS", 8),
			DemoAccountsFile: getString(v, "AUTH_DEMO_ACCOUNTS_FILE", ""),
			BcryptCost:       getInt(v, "AUTH_BCRYPT_COST", 0),
		},
		Swagger: SwaggerConfig{
			FilePath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT fuera de rango: %d", cfg.HTTP.Port)
	}
	if cfg.Data.FilePath == "" {
		return nil, fmt.Errorf("config: DATA_FILE_PATH vacío")
	}
	if cfg.Auth.SessionHours < 0 {
		return nil, fmt.Errorf("config: AUTH_SESSION_HOURS negativo: %d", cfg.Auth.SessionHours)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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

// getList acepta una lista separada por comas.
func getList(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return def
	}
	var out []string
	for _, p := range strings.Split(v.GetString(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
