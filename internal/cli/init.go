// Package cli provides common CLI initialization utilities and the
// expensejournal command tree.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/joho/godotenv"

	"expensejournal/internal/config"
	"expensejournal/internal/journal"
	"expensejournal/internal/log"
	"expensejournal/internal/services"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment, applies
// the data directory override when set, and validates the result.
func LoadAndValidateConfig(dataDir string) (*config.Config, error) {
	cfg := config.Load()
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger initializes structured logging from config and sets it as the
// default logger. Logs go to w, normally stderr.
func SetupLogger(cfg *config.Config, w io.Writer) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	logger := log.New(log.Config{
		Level:     level,
		Format:    cfg.LogFormat,
		Component: log.ComponentApp,
		Output:    w,
	})
	if err != nil {
		logger.WarnContext(context.Background(), "Falling back to info level", log.FieldError, err)
	}
	log.SetDefault(logger)
	return logger
}

// OpenService loads the journal described by cfg and wraps it in the
// expense service. Load problems are logged, never fatal.
func OpenService(ctx context.Context, cfg *config.Config, logger *log.Logger) *services.ExpenseService {
	store := journal.Open(ctx, cfg.JournalPaths(), logger)
	return services.NewExpenseService(store, logger)
}

// Runtime is what every command's Run method receives.
type Runtime struct {
	Ctx     context.Context
	Service *services.ExpenseService
	Out     io.Writer
	// Interactive enables huh prompts for missing input.
	Interactive bool
}

// NewRuntime builds a Runtime writing to stdout, interactive when stdin is
// a terminal.
func NewRuntime(ctx context.Context, svc *services.ExpenseService) *Runtime {
	return &Runtime{
		Ctx:         ctx,
		Service:     svc,
		Out:         os.Stdout,
		Interactive: isTerminal(),
	}
}

func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
