package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	ErrMissingConnectionString = errors.New("no DB_CONNECTION_STRING provided")
	ErrMissingJWTSecret        = errors.New("no JWT_SECRET provided")
)

type Config struct {
	Env      string
	HTTP     HTTPConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Log      LogConfig
	CORS     CORSConfig
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	ConnectionString string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
	MigrateOnStart   bool
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", "15s")
	v.SetDefault("http.write_timeout", "15s")
	v.SetDefault("http.idle_timeout", "60s")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("db.connection_string", "")
	v.SetDefault("db.max_open_conns", 50)
	v.SetDefault("db.max_idle_conns", 25)
	v.SetDefault("db.conn_max_lifetime", "5m")
	v.SetDefault("db.migrate_on_start", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cors.allowed_origins", "*")
}

// Load reads the .env file (if any), an optional config.yml from the working
// directory and finally the process environment. Environment variables win,
// e.g. db.connection_string is read from DB_CONNECTION_STRING.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("Error loading .env file, continuing with system environment variables")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	cfg.Env = v.GetString("env")
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.HTTP.ReadTimeout = v.GetDuration("http.read_timeout")
	cfg.HTTP.WriteTimeout = v.GetDuration("http.write_timeout")
	cfg.HTTP.IdleTimeout = v.GetDuration("http.idle_timeout")
	cfg.HTTP.ShutdownTimeout = v.GetDuration("http.shutdown_timeout")
	cfg.Database.ConnectionString = v.GetString("db.connection_string")
	cfg.Database.MaxOpenConns = v.GetInt("db.max_open_conns")
	cfg.Database.MaxIdleConns = v.GetInt("db.max_idle_conns")
	cfg.Database.ConnMaxLifetime = v.GetDuration("db.conn_max_lifetime")
	cfg.Database.MigrateOnStart = v.GetBool("db.migrate_on_start")
	cfg.JWT.Secret = v.GetString("jwt.secret")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))

	if cfg.Database.ConnectionString == "" {
		return nil, ErrMissingConnectionString
	}
	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return &cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
