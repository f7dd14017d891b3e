package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"inkwell/backend/internal/config"
	"inkwell/backend/internal/db"
	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/service"
)

const shutdownTimeout = 15 * time.Second

var envFile string

var rootCmd = &cobra.Command{
	Use:           "inkwell",
	Short:         config.AppName + " - keyword research and AI blog writing backend",
	Version:       config.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnvFile(envFile)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, the static client and the translation scheduler",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE:  runMigrate,
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var userCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create an account, optionally as admin",
	Example: `  inkwell user create --email admin@example.com --password 'correct horse' --admin`,
	RunE:    runUserCreate,
}

var (
	userEmail    string
	userPassword string
	userName     string
	userAdmin    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional .env file with INKWELL_* variables")

	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "account email (required)")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "account password (required)")
	userCreateCmd.Flags().StringVar(&userName, "name", "", "full name")
	userCreateCmd.Flags().BoolVar(&userAdmin, "admin", false, "grant the admin role")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, userCmd)
}

//go:generate swag init -d ../.. -g cmd/server/main.go -o ../../docs --parseInternal

// @title Inkwell API
// @version 1.0
// @description Keyword research, AI article generation and blog publishing.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	// Bare invocation keeps the container entrypoint working.
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"serve"})
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.scheduler.Start()
	defer app.scheduler.Stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "module", "server", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr, "version", config.AppVersion)
		errCh <- app.router.Start(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "module", "server", "action", "stop", "resource", "http", "result", "ok")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.router.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Open applies pending migrations.
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	logger.Info("migrations applied", "module", "db", "action", "migrate", "resource", "database", "result", "ok", "path", cfg.DBPath)
	return nil
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initIDs(cfg); err != nil {
		return err
	}
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	role := model.RoleUser
	if userAdmin {
		role = model.RoleAdmin
	}
	users := service.NewUserService(repository.NewUserRepository(conn))
	user, err := users.CreateUser(cmd.Context(), service.CreateUserInput{
		Email:    userEmail,
		Password: userPassword,
		FullName: userName,
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s user %s (id %d)\n", user.Role, user.Email, user.ID)
	return nil
}
