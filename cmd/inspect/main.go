// Command inspect prints the users and todos tables of the configured database.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/workout-tracker/internal/database"
)

func main() {
	configPath := parseFlags()
	databaseURL, sqlitePath := parseConfig(configPath)

	if err := run(context.Background(), databaseURL, sqlitePath, os.Stdout); err != nil {
		log.Fatalf("inspect failed: %v", err)
	}
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads the database settings shared with the server.
func parseConfig(path string) (databaseURL, sqlitePath string) {
	_ = godotenv.Load(path)

	databaseURL = os.Getenv("DATABASE_URL")
	sqlitePath = os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "./workout.db"
	}
	return
}

func run(ctx context.Context, databaseURL, sqlitePath string, w io.Writer) error {
	db, err := database.Open(ctx, databaseURL, sqlitePath, 1, 1)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, table := range database.DumpTables {
		if err := database.DumpTable(ctx, db, table, w); err != nil {
			return fmt.Errorf("dump %s: %w", table, err)
		}
	}
	return nil
}
