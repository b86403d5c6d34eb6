package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	Backend  BackendConfig
	Snapshot SnapshotConfig
	DB       DBConfig
	Mongo    MongoConfig
	Digest   DigestConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	SwaggerFile string // vacío = sin /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig secreto compartido con el backend de inventario que emite los tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// BackendConfig backend REST de inventario (dueño de los reportes).
type BackendConfig struct {
	BaseURL      string
	Timeout      time.Duration
	ServiceToken string // bearer para el digest programado (sin usuario)
}

// SnapshotConfig dónde se guardan los snapshots: memory | postgres | mongo.
type SnapshotConfig struct {
	Store string
}

// DBConfig configuración de PostgreSQL.
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

// MongoConfig configuración de MongoDB (solo si Snapshot.Store = mongo).
type MongoConfig struct {
	URI    string
	DBName string
}

// DigestConfig digest programado de reposición.
type DigestConfig struct {
	Cron      string   // expresión cron de 5 campos; vacío = desactivado
	Customers []string // clientes (tenants) a procesar
	// RunOnStart ejecuta un digest al arrancar, además del programado.
	RunOnStart bool
}

// Enabled indica si el digest debe programarse.
func (c DigestConfig) Enabled() bool {
	return c.Cron != "" && len(c.Customers) > 0
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, BACKEND_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventory-restock"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8090),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "inventory-pro"),
		},
		Backend: BackendConfig{
			BaseURL:      getString(v, "BACKEND_BASE_URL", "http://localhost:8080"),
			Timeout:      time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
			ServiceToken: getString(v, "BACKEND_SERVICE_TOKEN", ""),
		},
		Snapshot: SnapshotConfig{
			Store: strings.ToLower(getString(v, "SNAPSHOT_STORE", "memory")),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventory_restock"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Mongo: MongoConfig{
			URI:    getString(v, "MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getString(v, "MONGODB_DB_NAME", "inventory_restock"),
		},
		Digest: DigestConfig{
			Cron:       getString(v, "DIGEST_CRON", ""),
			Customers:  splitList(getString(v, "DIGEST_CUSTOMERS", "")),
			RunOnStart: getBool(v, "DIGEST_RUN_ON_START", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica los campos obligatorios y combinaciones inválidas.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("config: BACKEND_BASE_URL es obligatorio")
	}
	switch c.Snapshot.Store {
	case "memory", "postgres", "mongo":
	default:
		return fmt.Errorf("config: SNAPSHOT_STORE inválido %q (memory|postgres|mongo)", c.Snapshot.Store)
	}
	if c.Digest.Enabled() && c.Backend.ServiceToken == "" {
		return fmt.Errorf("config: DIGEST_CRON requiere BACKEND_SERVICE_TOKEN")
	}
	return nil
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

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
