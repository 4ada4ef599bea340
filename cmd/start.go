package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"customer-importer/core/config"
	"customer-importer/core/loader"
	"customer-importer/core/logger"
	"customer-importer/core/middleware/rayid"
	"customer-importer/feature/customers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "customer-importer/docs/swagger"
)

// @title Customer Importer API
// @version 1.0
// @description Read-only API over imported customers.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the customer HTTP server",
	Long:  `Starts the HTTP server with the customer list, detail and browser view.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		d, err := bootstrap(cfg, true)
		if err != nil {
			return err
		}
		defer d.logger.Sync()
		zap.ReplaceGlobals(d.logger)

		app, err := newServer(d)
		if err != nil {
			return err
		}

		errs := make(chan error, 1)
		go func() {
			d.logger.Info("Starting server", zap.String("address", cfg.Server.Address()))
			errs <- app.Listen(cfg.Server.Address())
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errs:
			return fmt.Errorf("server failed: %w", err)
		case <-quit:
		}

		d.logger.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newServer builds the fiber app with middleware, swagger and every feature loaded.
func newServer(d *deps) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           d.cfg.Server.ReadTimeout(),
		WriteTimeout:          d.cfg.Server.WriteTimeout(),
	})

	// RayID first so every later log line carries it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(d.logger, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)

	mgr := loader.NewManager(d.logger)
	mgr.Register(customers.NewFeature(d.store, d.logger))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
