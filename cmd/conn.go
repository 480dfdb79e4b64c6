package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SyedTasneemKousar/asana/internal/config"
	"github.com/SyedTasneemKousar/asana/internal/store"
)

// dbFlags holds connection overrides shared by every command that talks
// to the database. Empty values fall through to the environment.
type dbFlags struct {
	host           string
	port           int
	user           string
	name           string
	nonInteractive bool
}

func (f *dbFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.host, "host", "", "PostgreSQL host (or DB_HOST env)")
	cmd.Flags().IntVar(&f.port, "port", 0, "PostgreSQL port (default 5432, or DB_PORT env)")
	cmd.Flags().StringVar(&f.user, "user", "", "PostgreSQL username (or DB_USER env)")
	cmd.Flags().StringVar(&f.name, "db", "", "Database name (or DB_NAME env)")
	cmd.Flags().BoolVar(&f.nonInteractive, "non-interactive", false, "Never prompt; fail if any required value is missing")
}

// resolveConfig layers flags over the environment and prompts for
// anything still missing, unless --non-interactive forbids prompting.
func resolveConfig(f *dbFlags) (*config.Configuration, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if f.host != "" {
		cfg.Database.Host = f.host
	}
	if f.port != 0 {
		cfg.Database.Port = f.port
	}
	if f.user != "" {
		cfg.Database.User = f.user
	}
	if f.name != "" {
		cfg.Database.Name = f.name
	}
	if cfg.Database.Password == "" {
		cfg.Database.Password = os.Getenv("PGPASSWORD")
	}

	if !f.nonInteractive {
		if err := promptDBConfig(&cfg.Database); err != nil {
			return nil, err
		}
	}
	if cfg.Database.Host == "" || cfg.Database.User == "" || cfg.Database.Name == "" {
		return nil, fmt.Errorf("missing required config: set flags/env or run interactively (see --help)")
	}
	return cfg, nil
}

// promptDBConfig fills in whatever connection settings are still blank.
func promptDBConfig(db *config.DatabaseOptions) error {
	reader := bufio.NewReader(os.Stdin)

	if db.Host == "" {
		fmt.Print("  Host: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read host: %w", err)
		}
		db.Host = strings.TrimSpace(line)
	}
	if db.Port == 0 {
		fmt.Print("  Port [5432]: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read port: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			db.Port = 5432
		} else if port, err := strconv.Atoi(line); err == nil {
			db.Port = port
		} else {
			db.Port = 5432
		}
	}
	if db.User == "" {
		fmt.Print("  Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read user: %w", err)
		}
		db.User = strings.TrimSpace(line)
	}
	if db.Password == "" {
		db.Password = promptPassword("  Password: ")
	}
	if db.Name == "" {
		fmt.Print("  Database: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read database: %w", err)
		}
		db.Name = strings.TrimSpace(line)
	}
	return nil
}

func promptPassword(prompt string) string {
	fmt.Print(prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(pass))
}

// connect opens the store and verifies the connection.
func connect(ctx context.Context, cfg *config.Configuration) (*store.PG, error) {
	pg, err := store.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	if err := pg.Ping(ctx); err != nil {
		_ = pg.Close(ctx)
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pg, nil
}
