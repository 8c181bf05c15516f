package config

import (
	"time"

	"github.com/hirokishimizu39/ThisIsJapan/internal/env"
)

type Config struct {
	HTTP     httpConfig
	DB       dbConfig
	Redis    redisConfig
	SeedDemo bool
}

type httpConfig struct {
	ListenAddr      string
	IdleTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type dbConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type redisConfig struct {
	Host       string
	Port       string
	Password   string
	DB         int
	SessionTTL time.Duration
}

func FromEnv() Config {
	return Config{
		HTTP: httpConfig{
			ListenAddr:      env.String("HTTP_LISTEN_ADDR", ":8080"),
			IdleTimeout:     env.Duration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			ReadTimeout:     env.Duration("HTTP_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    env.Duration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: env.Duration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		DB: dbConfig{
			Host:          env.String("DB_HOST", "localhost"),
			Port:          env.String("DB_PORT", "5432"),
			User:          env.String("DB_USER", "postgres"),
			Password:      env.String("DB_PASSWORD", "password"),
			Name:          env.String("DB_NAME", "thisisjapan"),
			MigrationsDir: env.String("DB_MIGRATIONS_DIR", "db/migrations"),
		},
		Redis: redisConfig{
			Host:       env.String("REDIS_HOST", "localhost"),
			Port:       env.String("REDIS_PORT", "6379"),
			Password:   env.String("REDIS_PASSWORD", ""),
			DB:         env.Int("REDIS_DB", 0),
			SessionTTL: env.Duration("SESSION_TTL", 7*24*time.Hour),
		},
		SeedDemo: env.Bool("SEED_DEMO_DATA", true),
	}
}
