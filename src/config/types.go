package config

import (
	"fmt"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

type Environment string

const (
	Live Environment = "live"
	Beta             = "beta"
	Dev              = "dev"
)

type WvlConfig struct {
	Env      Environment
	BaseUrl  string
	LogLevel zerolog.Level
	Postgres PostgresConfig
	Spaces   SpacesConfig
	Import   ImportConfig
}

type PostgresConfig struct {
	User     string
	Password string
	Hostname string
	Port     int
	DbName   string
	LogLevel tracelog.LogLevel
	MinConn  int32
	MaxConn  int32
}

func (info PostgresConfig) DSN() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%d dbname=%s", info.User, info.Password, info.Hostname, info.Port, info.DbName)
}

type SpacesConfig struct {
	Key      string
	Secret   string
	Region   string
	Endpoint string
	Bucket   string
}

type ImportConfig struct {
	UserAgent string

	// Per-request bound on feed fetches and asset downloads, in seconds.
	FetchTimeoutSeconds int

	// Cap on any single downloaded asset (cover, avatar, audio), in bytes.
	MaxDownloadBytes int64
}
