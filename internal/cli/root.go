// Package cli is the affordability command line front end.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/segyhp/affordability-engine/internal/calculator"
	"github.com/segyhp/affordability-engine/internal/config"
	"github.com/segyhp/affordability-engine/internal/repository"
	"github.com/segyhp/affordability-engine/internal/service"
)

type rootOptions struct {
	dbPath string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "affordability",
		Short:         "Australian property affordability calculator",
		Long:          "Find the most expensive property a buyer can afford after transfer duty, LMI and deposit rules.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", DefaultHistoryPath(), "SQLite file holding calculation history")

	rootCmd.AddCommand(
		newCalcCmd(opts),
		newDutyCmd(opts),
		newHistoryCmd(opts),
	)

	return rootCmd
}

// Execute is the main entry point called from main.go.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

// DefaultHistoryPath returns the XDG-compliant location of the history database.
func DefaultHistoryPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "affordability", "history.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "affordability", "history.db")
}

// session is a service wired to local history. close releases the database.
type session struct {
	svc *service.AffordabilityService
	db  *sqlx.DB
}

func (s *session) close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// openSession builds the service. With history disabled nothing is opened
// and only the pure operations may be used.
func openSession(ctx context.Context, dbPath string, history bool) (*session, error) {
	cfg, err := config.LoadLocal(dbPath)
	if err != nil {
		return nil, err
	}

	engine, err := calculator.NewEngine(cfg.EngineConfig())
	if err != nil {
		return nil, err
	}

	if !history {
		return &session{svc: service.NewAffordabilityService(nil, nil, engine, cfg)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := repository.Open(cfg.Database.Driver, cfg.Database.URL, repository.PoolOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	repo := repository.NewCalculationRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &session{
		svc: service.NewAffordabilityService(repo, repository.NewMemoryCache(), engine, cfg),
		db:  db,
	}, nil
}
