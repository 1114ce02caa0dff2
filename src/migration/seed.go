package migration

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"git.wavelength.fm/wvl/wvl/src/config"
	"github.com/jackc/pgx/v5/pgconn"
)

// Resets the db, applies all migrations, and restores the given pg_dump
// file on top.
// NOTE: The db role specified in the config must have the CREATEDB
// attribute! `ALTER ROLE wvl WITH CREATEDB;`
func SeedFromFile(seedFile string) {
	file, err := os.Open(seedFile)
	if err != nil {
		panic(fmt.Errorf("couldn't open seed file %s: %w", seedFile, err))
	}
	file.Close()

	ResetDB()

	fmt.Println("Running migrations...")
	Migrate(LatestVersion())

	fmt.Println("Executing seed...")
	cmd := exec.Command("pg_restore",
		"--single-transaction",
		"--data-only",
		"--dbname", config.Config.Postgres.DSN(),
		seedFile,
	)
	fmt.Println("Running command:", cmd)
	if output, err := cmd.CombinedOutput(); err != nil {
		fmt.Print(string(output))
		panic(fmt.Errorf("failed to execute seed: %w", err))
	}

	fmt.Println("Done! You may want to migrate forward from here.")
	ListMigrations()
}

func ResetDB() {
	fmt.Println("Resetting database...")
	ctx := context.Background()

	// We connect to db "template1" because we have to connect to something
	// other than our own db in order to drop it.
	template1DSN := fmt.Sprintf("user=%s password=%s host=%s port=%d dbname=template1",
		config.Config.Postgres.User,
		config.Config.Postgres.Password,
		config.Config.Postgres.Hostname,
		config.Config.Postgres.Port,
	)
	// We have to use the low-level API of pgconn, because the pgx Exec
	// always wraps the query in a transaction.
	lowLevelConn, err := pgconn.Connect(ctx, template1DSN)
	if err != nil {
		panic(fmt.Errorf("failed to connect to db: %w", err))
	}
	defer lowLevelConn.Close(ctx)

	result := lowLevelConn.ExecParams(ctx, fmt.Sprintf("DROP DATABASE %s", config.Config.Postgres.DbName), nil, nil, nil, nil)
	_, err = result.Close()
	pgErr, isPgError := err.(*pgconn.PgError)
	if err != nil {
		// 3D000 means the database does not exist, which is fine.
		if !(isPgError && pgErr.SQLState() == "3D000") {
			panic(fmt.Errorf("failed to drop db: %w", err))
		}
	}

	result = lowLevelConn.ExecParams(ctx, fmt.Sprintf("CREATE DATABASE %s", config.Config.Postgres.DbName), nil, nil, nil, nil)
	_, err = result.Close()
	if err != nil {
		panic(fmt.Errorf("failed to create db: %w", err))
	}
}
