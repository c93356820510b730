package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"starwars/internal/config"
	"starwars/internal/database"
	"starwars/internal/pkg/logger"
	"starwars/internal/seed"
	"starwars/internal/store"
)

var (
	reset        bool
	fixturesPath string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Database tooling for the Star Wars API",
	Long: `seed prepares the database configured by DATABASE_URL.

Examples:

  seed migrate
  seed load
  seed load --reset --file fixtures.yaml
`,
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update all tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(cfg *config.Config, db *gorm.DB) error {
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("AutoMigrate failed: %w", err)
			}
			if err := store.EnsureIndexes(cmd.Context(), db, cfg.Store); err != nil {
				return err
			}
			color.New(color.FgGreen, color.Bold).Println("✅ Tables are up to date.")
			return nil
		})
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Insert fixtures",
	Long: `Insert users, characters, planets, starships and favorites.

Without --file the built-in fixtures are used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixtures, err := readFixtures()
		if err != nil {
			return err
		}

		return withDB(func(cfg *config.Config, db *gorm.DB) error {
			ctx := cmd.Context()
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("AutoMigrate failed: %w", err)
			}
			if err := store.EnsureIndexes(ctx, db, cfg.Store); err != nil {
				return err
			}
			if reset {
				color.New(color.FgYellow).Println("Cleaning old data...")
				if err := seed.Reset(ctx, db); err != nil {
					return fmt.Errorf("reset: %w", err)
				}
			}

			sum, err := seed.Apply(ctx, store.NewRegistry(db, cfg.Store), fixtures)
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen, color.Bold)
			cyan := color.New(color.FgCyan)
			green.Println("✅ Seed complete")
			cyan.Printf("   users:      %d\n", sum.Users)
			cyan.Printf("   characters: %d\n", sum.Characters)
			cyan.Printf("   planets:    %d\n", sum.Planets)
			cyan.Printf("   starships:  %d\n", sum.Starships)
			cyan.Printf("   favorites:  %d\n", sum.Favorites)
			return nil
		})
	},
}

func init() {
	loadCmd.Flags().BoolVar(&reset, "reset", false, "Delete existing rows first")
	loadCmd.Flags().StringVarP(&fixturesPath, "file", "f", "", "YAML fixtures file")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(loadCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed, color.Bold).Println("❌", err)
		os.Exit(1)
	}
}

func readFixtures() (*seed.Fixtures, error) {
	if fixturesPath == "" {
		return seed.Default()
	}
	f, err := os.Open(fixturesPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.Load(f)
}

func withDB(fn func(cfg *config.Config, db *gorm.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB connection failed: %w", err)
	}
	defer database.Close(db)

	return fn(cfg, db)
}
