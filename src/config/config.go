package config

import (
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// Dev defaults. Deployments override this file at build time.
var Config = WvlConfig{
	Env:      Dev,
	BaseUrl:  "http://wavelength.local:9001",
	LogLevel: zerolog.DebugLevel,
	Postgres: PostgresConfig{
		User:     "wvl",
		Password: "password",
		Hostname: "localhost",
		Port:     5432,
		DbName:   "wvl",
		LogLevel: tracelog.LogLevelWarn,
		MinConn:  2,
		MaxConn:  10,
	},
	Spaces: SpacesConfig{
		Key:      "dev",
		Secret:   "dev",
		Region:   "dev",
		Endpoint: "http://localhost:9003",
		Bucket:   "wvl-assets-dev",
	},
	Import: ImportConfig{
		UserAgent:           "Wavelength/1.0",
		FetchTimeoutSeconds: 30,
		MaxDownloadBytes:    500 * 1024 * 1024,
	},
}
