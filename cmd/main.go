package main

import (
	"Go-Shopping-Inventory/cmd/config"
	migration "Go-Shopping-Inventory/cmd/database/migrate"
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/internal/utils"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// mailTo is set by the mail command's --to flag.
	mailTo string

	db       *gorm.DB
	services *config.Services
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Shopping list and household inventory manager",
	Long: `inventory keeps the food, cleaning and miscellaneous shopping lists in a
relational database and serves them over HTTP and as browser views.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// finalizers run even when a command fails
	cobra.OnFinalize(func() {
		if err := teardown(); err != nil {
			log.Errorw("teardown failed", "error", err)
		}
	})

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "path to the YAML configuration file")

	mailCmd.Flags().StringVar(&mailTo, "to", "", "recipient of the shopping list")
	_ = mailCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(mailCmd)
}

// setup loads configuration and opens the shared database handle.
func setup(cmd *cobra.Command, args []string) error {
	if err := utils.LoadConfig(configFile); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var err error
	db, err = config.ConnectDB()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	services, err = config.NewServices(cmd.Context(), db)
	return err
}

// teardown releases what setup opened, including after a failed command.
func teardown() error {
	if services != nil {
		services.Close()
		services = nil
	}
	err := config.CloseDB(db)
	db = nil
	return err
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server and views",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.GetConfigBool("AUTO_MIGRATE", true) {
			if err := migration.Migrate(db); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		services.Health.CheckInBackground(ctx)

		app, logFile, err := config.NewApp(services)
		if err != nil {
			return err
		}
		defer logFile.Close()

		go func() {
			<-ctx.Done()
			log.Info("shutting down")
			if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
				log.Errorw("shutdown failed", "error", err)
			}
		}()

		addr := ":" + utils.GetConfig("APP_PORT")
		log.Infof("listening on %s", addr)
		return app.Listen(addr)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the purchase and task tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return migration.Migrate(db)
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables of the configured schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range services.Tables.ListTables(cmd.Context()) {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the database is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := services.Health.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", domain.MessageDatabaseUnreachable, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), domain.MessageDatabaseReachable)
		return nil
	},
}

var mailCmd = &cobra.Command{
	Use:   "mail",
	Short: "Mail the pending shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		sent, err := services.Report.SendShoppingList(cmd.Context(), domain.SendShoppingListRequest{Email: mailTo})
		if errors.Is(err, domain.ErrNothingPending) {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing pending")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sent %d items to %s\n", sent, mailTo)
		return nil
	},
}
