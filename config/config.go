package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caarlos0/env/v11"
	_ "github.com/lib/pq"
)

type Config struct {
	DatabaseHost     string `env:"DATABASE_HOST" envDefault:"db"`
	DatabasePort     string `env:"DATABASE_PORT" envDefault:"5432"`
	DatabaseUser     string `env:"DATABASE_USER" envDefault:"postgres"`
	DatabasePassword string `env:"DATABASE_PASSWORD" envDefault:"password"`
	DatabaseName     string `env:"DATABASE_NAME" envDefault:"coingarden"`
	ServerPort       string `env:"SERVER_PORT" envDefault:"8080"`
	JWTSecret        string `env:"JWT_SECRET" envDefault:"secret"`
	AdminKey         string `env:"ADMIN_KEY" envDefault:"admin"`
	ClientVersion    string `env:"CLIENT_VERSION" envDefault:"1.0.0"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("разбор переменных окружения: %w", err)
	}
	return cfg, nil
}

func LoadConfigOrPanic() Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c Config) PostgresConnStr() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseName,
	)
}

func InitDB(ctx context.Context, cfg Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresConnStr())
	if err != nil {
		panic(fmt.Sprintf("Ошибка подключения к БД: %v", err))
	}
	if err = db.PingContext(ctx); err != nil {
		panic(fmt.Sprintf("Ошибка пинга БД: %v", err))
	}
	return db
}
