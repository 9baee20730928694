package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/selamsoft/selam-web/internal/db"
	"github.com/selamsoft/selam-web/internal/observability"
	"github.com/spf13/cobra"
)

var (
	contactDatabaseURL string
	contactLimit       int
	contactJSON        bool
)

var contactMessagesCmd = &cobra.Command{
	Use:   "contact-messages",
	Short: "List stored contact form messages",
	Long:  "List the newest contact form messages saved when the site runs with contact delivery set to store.",
	RunE:  runContactMessages,
}

func init() {
	contactMessagesCmd.Flags().StringVar(&contactDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	contactMessagesCmd.Flags().IntVar(&contactLimit, "limit", db.DefaultListLimit, "Maximum number of messages to show")
	contactMessagesCmd.Flags().BoolVar(&contactJSON, "json", false, "Print messages as JSON")
	rootCmd.AddCommand(contactMessagesCmd)
}

func runContactMessages(cmd *cobra.Command, _ []string) error {
	databaseURL := contactDatabaseURL
	if databaseURL == "" {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		databaseURL = cfg.DatabaseURL
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	messages, err := database.ListContactMessages(ctx, contactLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if contactJSON {
		if messages == nil {
			messages = []db.ContactMessage{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(messages)
	}
	observability.NewPrinter(out).PrintContactMessages(messages)
	return nil
}
