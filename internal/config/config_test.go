package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				ExpensesFile:   "expenses.json",
				CategoriesFile: "categories.json",
				LogLevel:       "info",
				LogFormat:      "text",
			},
			wantErr: false,
		},
		{
			name: "level is case-insensitive",
			config: Config{
				ExpensesFile:   "expenses.json",
				CategoriesFile: "categories.json",
				LogLevel:       "DEBUG",
				LogFormat:      "json",
			},
			wantErr: false,
		},
		{
			name: "empty expenses file",
			config: Config{
				ExpensesFile:   "",
				CategoriesFile: "categories.json",
				LogLevel:       "info",
				LogFormat:      "text",
			},
			wantErr:     true,
			errorString: "expenses file cannot be empty",
		},
		{
			name: "same file for both collections",
			config: Config{
				ExpensesFile:   "data.json",
				CategoriesFile: "data.json",
				LogLevel:       "info",
				LogFormat:      "text",
			},
			wantErr:     true,
			errorString: "expenses and categories must be different files",
		},
		{
			name: "invalid log level",
			config: Config{
				ExpensesFile:   "expenses.json",
				CategoriesFile: "categories.json",
				LogLevel:       "verbose",
				LogFormat:      "text",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose': must be one of [debug info warn error]",
		},
		{
			name: "invalid log format",
			config: Config{
				ExpensesFile:   "expenses.json",
				CategoriesFile: "categories.json",
				LogLevel:       "info",
				LogFormat:      "xml",
			},
			wantErr:     true,
			errorString: "invalid log format 'xml': must be one of [text json]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.DataDir = t.TempDir()
			err := tt.config.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Validate() expected error but got none")
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Validate() error = %v, want error containing %v", err, tt.errorString)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{DataDir: t.TempDir(), LogLevel: "x", LogFormat: "y"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"expenses file", "categories file", "log level", "log format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestConfig_ValidateCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := Config{DataDir: dir, ExpensesFile: "e.json", CategoriesFile: "c.json", LogLevel: "info", LogFormat: "text"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("data dir not created: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"EXPENSEJOURNAL_DATA_DIR", "EXPENSES_FILE", "CATEGORIES_FILE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DataDir != "./data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.ExpensesPath() != filepath.Join("data", "expenses.json") {
		t.Errorf("ExpensesPath = %q", cfg.ExpensesPath())
	}
	if cfg.CategoriesPath() != filepath.Join("data", "categories.json") {
		t.Errorf("CategoriesPath = %q", cfg.CategoriesPath())
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "text" {
		t.Errorf("unexpected logging defaults: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "mine.json")
	t.Setenv("EXPENSEJOURNAL_DATA_DIR", "/var/lib/ej")
	t.Setenv("EXPENSES_FILE", abs)
	t.Setenv("CATEGORIES_FILE", "cats.json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()
	if cfg.ExpensesPath() != abs {
		t.Errorf("absolute expenses path should be kept, got %q", cfg.ExpensesPath())
	}
	if cfg.CategoriesPath() != filepath.Join("/var/lib/ej", "cats.json") {
		t.Errorf("CategoriesPath = %q", cfg.CategoriesPath())
	}
	paths := cfg.JournalPaths()
	if paths.Expenses != abs || paths.Categories != cfg.CategoriesPath() {
		t.Errorf("JournalPaths = %+v", paths)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("unexpected logging config: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
}
