package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g. EMPLOYEE_API_HTTP_ADDRESS.
const EnvPrefix = "EMPLOYEE_API"

var ErrConfigNotFound = errors.New("config file does not exist")

type Config struct {
	Env        string           `yaml:"env"`        // Env is the current environment: local, development, production.
	HTTP       HTTPConfig       `yaml:"http"`       // HTTP holds the API listener configuration
	Monitoring MonitoringConfig `yaml:"monitoring"` // Monitoring holds the metrics/health listener configuration
	Store      StoreConfig      `yaml:"store"`      // Store holds the in-memory store configuration
}

// HTTPConfig struct holds the configuration details for the employee API listener.
type HTTPConfig struct {
	Address         string        `yaml:"address"`          // Address is the host:port the API listens on.
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // ReadTimeout bounds reading a whole request.
	WriteTimeout    time.Duration `yaml:"write_timeout"`    // WriteTimeout bounds writing the response.
	IdleTimeout     time.Duration `yaml:"idle_timeout"`     // IdleTimeout bounds keep-alive connections.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // ShutdownTimeout bounds graceful shutdown.
}

// MonitoringConfig struct holds the configuration of the /metrics and /healthz listener.
type MonitoringConfig struct {
	Port int `yaml:"port"`
}

// StoreConfig struct holds the configuration of the in-memory employee store.
type StoreConfig struct {
	Seed bool `yaml:"seed"` // Seed populates the store with mock employees on startup.
}

// MustLoad loads the configuration and panics on failure.
// The file path is taken from CONFIG_PATH; without it only defaults and environment are used.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

// Load reads the optional YAML file at configPath, applies EMPLOYEE_API_* environment overrides
// and fills everything else with defaults.
func Load(configPath string) (*Config, error) {
	vpr := viper.New()
	setDefaults(vpr)

	vpr.SetEnvPrefix(EnvPrefix)
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	if configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}

		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{
		Env: vpr.GetString("env"),
		HTTP: HTTPConfig{
			Address:         vpr.GetString("http.address"),
			ReadTimeout:     vpr.GetDuration("http.read_timeout"),
			WriteTimeout:    vpr.GetDuration("http.write_timeout"),
			IdleTimeout:     vpr.GetDuration("http.idle_timeout"),
			ShutdownTimeout: vpr.GetDuration("http.shutdown_timeout"),
		},
		Monitoring: MonitoringConfig{
			Port: vpr.GetInt("monitoring.port"),
		},
		Store: StoreConfig{
			Seed: vpr.GetBool("store.seed"),
		},
	}, nil
}

func setDefaults(vpr *viper.Viper) {
	var (
		readTimeout     = 5 * time.Second
		writeTimeout    = 10 * time.Second
		idleTimeout     = 60 * time.Second
		shutdownTimeout = 10 * time.Second
		monitoringPort  = 9090
	)

	vpr.SetDefault("env", "local")
	vpr.SetDefault("http.address", ":8080")
	vpr.SetDefault("http.read_timeout", readTimeout)
	vpr.SetDefault("http.write_timeout", writeTimeout)
	vpr.SetDefault("http.idle_timeout", idleTimeout)
	vpr.SetDefault("http.shutdown_timeout", shutdownTimeout)
	vpr.SetDefault("monitoring.port", monitoringPort)
	vpr.SetDefault("store.seed", true)
}
