package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/selamsoft/selam-web/internal/api"
	"github.com/selamsoft/selam-web/internal/observability"
	"github.com/selamsoft/selam-web/internal/types"
	"github.com/selamsoft/selam-web/internal/view"
	"github.com/spf13/cobra"
)

var (
	listAPIURL string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:       "list {jobs|products}",
	Short:     "Fetch and print the job or product list",
	Long:      "Fetch a list from the backend API exactly as the site does and print it, or print its state as JSON with --json.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"jobs", "products"},
	RunE:      runList,
}

func init() {
	listCmd.Flags().StringVar(&listAPIURL, "api-url", "", "Backend base URL (overrides SITE_API_URL)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the list state as JSON")
	rootCmd.AddCommand(listCmd)
}

// listOutput is the --json form of a list state.
type listOutput[T any] struct {
	State string `json:"state"`
	Shape string `json:"shape,omitempty"`
	Error string `json:"error,omitempty"`
	Items []T    `json:"items"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if listAPIURL != "" {
		cfg.APIBaseURL = strings.TrimRight(listAPIURL, "/")
	}
	if cfg.APIBaseURL == "" {
		return fmt.Errorf("backend URL is required (set SITE_API_URL or use --api-url)")
	}

	client, err := api.NewClient(api.Options{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout.Std()})
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RenderTimeout.Std())
	defer cancel()

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)

	switch args[0] {
	case "jobs":
		state := view.Load[types.Job](ctx, client.ListJobs)
		if listJSON {
			return writeListJSON(out, state)
		}
		printer.PrintJobs(state)
		return stateError(state.Phase, state.Err)
	case "products":
		state := view.Load[types.Product](ctx, client.ListProducts)
		if listJSON {
			return writeListJSON(out, state)
		}
		printer.PrintProducts(state)
		return stateError(state.Phase, state.Err)
	default:
		return fmt.Errorf("unknown list %q (want jobs or products)", args[0])
	}
}

func writeListJSON[T any](w io.Writer, state view.ListState[T]) error {
	o := listOutput[T]{State: state.Phase.String(), Error: state.Err, Items: state.Items}
	if state.Phase == view.PhaseReady {
		o.Shape = state.Shape.String()
	}
	if o.Items == nil {
		o.Items = []T{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return stateError(state.Phase, state.Err)
}

// stateError makes a failed or unsettled fetch exit non-zero.
func stateError(phase view.Phase, msg string) error {
	switch phase {
	case view.PhaseError:
		return errors.New(msg)
	case view.PhaseLoading:
		return fmt.Errorf("timed out waiting for the backend")
	}
	return nil
}
