package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/selamsoft/selam-web/internal/api"
	"github.com/selamsoft/selam-web/internal/config"
	"github.com/selamsoft/selam-web/internal/db"
	"github.com/selamsoft/selam-web/internal/view"
	"github.com/selamsoft/selam-web/internal/web"
	"github.com/selamsoft/selam-web/internal/web/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort          int
	serveSecureCookies bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website server",
	Long:  `Start an HTTP server that renders the site and forwards job applications to the backend API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveSecureCookies, "secure-cookies", false, "Mark flash cookies Secure (enable behind HTTPS)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	keys, err := signingKeys(cfg.SessionSecret)
	if err != nil {
		return fmt.Errorf("failed to derive signing keys: %w", err)
	}

	client, err := api.NewClient(api.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout.Std(),
	})
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	// Left as a nil interface in notify mode.
	var contacts view.ContactSink
	if cfg.ContactDelivery == config.DeliveryStore {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Printf("[web] Contact messages will be stored in PostgreSQL")
		contacts = database
	}

	srv, err := web.New(web.Config{
		Port:           cfg.Port,
		RenderTimeout:  cfg.RenderTimeout.Std(),
		MaxUploadBytes: cfg.MaxUploadBytes,
		FlashTTL:       cfg.FlashTTL.Std(),
		Keys:           keys,
		SecureCookies:  serveSecureCookies,
		RateLimit:      ratelimit.LoadConfig(),
	}, client, contacts)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
