package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/sipwait/internal/backup"
	"github.com/julianstephens/sipwait/internal/cli"
	"github.com/julianstephens/sipwait/internal/logger"
	"github.com/julianstephens/sipwait/internal/storage"
)

type InitCmd struct {
	Force    bool `help:"Delete the existing database before initializing."`
	NoBackup bool `help:"Do not snapshot the database before --force deletes it."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if storage.IsPostgres(dbPath) || dbPath == "postgresql" {
			return fmt.Errorf("--force is only supported for SQLite databases")
		}
		if _, err := os.Stat(dbPath); err == nil {
			// Close first so the file is not held open while deleting
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if c.NoBackup {
				logger.Info("Skipping backup before reset", "path", dbPath)
			} else {
				path, err := backup.NewManager(dbPath).Create()
				if err != nil {
					return fmt.Errorf("failed to back up existing database (use --no-backup to skip): %w", err)
				}
				fmt.Printf("Backed up existing database to: %s\n", path)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized sipwait storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
