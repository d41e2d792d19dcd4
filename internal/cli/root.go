// Package cli implements leadctl, the maintenance command line for the
// estimate engine.
package cli

import (
	"context"
	"fmt"
	"time"

	"fence_estimate_backend/internal/leads/holidays"
	"fence_estimate_backend/internal/leads/service"
	"fence_estimate_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// App holds the CLI application dependencies.
type App struct {
	Service  *service.Service
	Holidays holidays.Calendar
	// Today returns midnight of the current business day.
	Today    func() time.Time
	Location *time.Location
}

var (
	app *App
	log *logger.Logger
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

var rootCmd = &cobra.Command{
	Use:           "leadctl",
	Short:         "Fence estimate lead scoring and scheduling tools",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		info := commandContext{
			correlationID: uuid.New(),
			startedAt:     time.Now(),
		}
		cmd.SetContext(context.WithValue(cmd.Context(), commandContextKey{}, info))
		if log != nil {
			log.Debug("command start",
				"command", cmd.CommandPath(),
				"correlation_id", info.correlationID.String(),
			)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok || log == nil {
			return
		}
		log.Debug("command end",
			"command", cmd.CommandPath(),
			"correlation_id", info.correlationID.String(),
			"duration_ms", time.Since(info.startedAt).Milliseconds(),
		)
	},
}

// Execute runs the root command. The caller decides the exit code.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetApp sets the CLI application dependencies.
func SetApp(a *App) {
	app = a
}

// GetApp returns the CLI application dependencies.
func GetApp() *App {
	return app
}

// SetLogger sets the CLI logger.
func SetLogger(l *logger.Logger) {
	log = l
}

func requireApp() (*App, error) {
	if app == nil || app.Service == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(holidaysCmd)
}
