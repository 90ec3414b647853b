package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config raggruppa la configurazione dell'applicazione (lettura via Viper da env e opzionalmente da file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	DB      DBConfig
	Gateway GatewayConfig
}

// AppConfig configurazione generale dell'applicazione.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configurazione del server HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr ritorna l'indirizzo di ascolto (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GatewayConfig selezione e parametri del gateway dati.
// Driver "mock" simula il backend con dati fissi e latenza; "postgres" usa il DB reale.
type GatewayConfig struct {
	Driver  string        // mock | postgres
	Timeout time.Duration // limite superiore di attesa per operazione
	Latency bool          // mock: simula la latenza di rete
}

// DBConfig configurazione PostgreSQL (solo con Driver=postgres).
// Se DatabaseURL non è vuoto, viene usato come connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString ritorna il DSN da usare: DATABASE_URL se definito, altrimenti quello costruito con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN ritorna il connection string PostgreSQL con URL encoding per i caratteri speciali.
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

// Load legge la configurazione dalle variabili d'ambiente (e opzionalmente da file).
// Le env var hanno priorità. Nomi attesi: APP_ENV, HTTP_PORT, GATEWAY_DRIVER, DB_HOST, ecc.
func Load() (*Config, error) {
	v := viper.New()

	// Opzionale: file di configurazione (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // errore ignorato se non esiste

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // errore ignorato se non esiste

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gestione-magazzino"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Gateway: GatewayConfig{
			Driver:  getString(v, "GATEWAY_DRIVER", "mock"),
			Timeout: time.Duration(getInt(v, "GATEWAY_TIMEOUT_SECONDS", 10)) * time.Second,
			Latency: getString(v, "MOCK_LATENCY", "on") != "off",
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "magazzino"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
	}

	if cfg.Gateway.Driver != "mock" && cfg.Gateway.Driver != "postgres" {
		return nil, fmt.Errorf("GATEWAY_DRIVER non valido: %q", cfg.Gateway.Driver)
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
