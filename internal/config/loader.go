package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logger     LoggerConfig     `mapstructure:"logger"`
	Dispatcher DispatcherConfig `mapstructure:"dispatcher"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Static     StaticConfig     `mapstructure:"static"`
	Features   FeaturesConfig   `mapstructure:"features"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level            string   `mapstructure:"level"`
	Encoding         string   `mapstructure:"encoding"`
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

type DispatcherConfig struct {
	Workers int `mapstructure:"workers"`
}

// DefaultWorkers bounds the dispatcher pool when no worker count is configured.
const DefaultWorkers = 8

func (d *DispatcherConfig) WorkerCount() int {
	if d.Workers <= 0 {
		return DefaultWorkers
	}
	return d.Workers
}

type AuthConfig struct {
	AdminUsername   string   `mapstructure:"admin_username"`
	AdminPassword   string   `mapstructure:"admin_password"`
	AdminDepartment string   `mapstructure:"admin_department"`
	CookieName      string   `mapstructure:"cookie_name"`
	CookieSecure    bool     `mapstructure:"cookie_secure"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

type FeaturesConfig struct {
	RequestIDHeader      string `mapstructure:"request_id_header"`
	EnableRequestLogging bool   `mapstructure:"enable_request_logging"`
}

func Load(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("ATLAS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("dispatcher.workers", DefaultWorkers)
	viper.SetDefault("auth.admin_username", "admin")
	viper.SetDefault("auth.admin_password", "admin")
	viper.SetDefault("auth.admin_department", "HQ")
	viper.SetDefault("auth.cookie_name", "session")
	viper.SetDefault("static.dir", "./web/static")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
