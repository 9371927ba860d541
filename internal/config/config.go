package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"expensejournal/internal/journal"
)

type Config struct {
	// Storage
	DataDir        string
	ExpensesFile   string
	CategoriesFile string

	// Logging
	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		DataDir:        getEnv("EXPENSEJOURNAL_DATA_DIR", "./data"),
		ExpensesFile:   getEnv("EXPENSES_FILE", "expenses.json"),
		CategoriesFile: getEnv("CATEGORIES_FILE", "categories.json"),

		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.ExpensesFile) == "" {
		errors = append(errors, "expenses file cannot be empty")
	}
	if strings.TrimSpace(c.CategoriesFile) == "" {
		errors = append(errors, "categories file cannot be empty")
	}
	if c.ExpensesFile != "" && c.ExpensesPath() == c.CategoriesPath() {
		errors = append(errors, fmt.Sprintf("expenses and categories must be different files, both are '%s'", c.ExpensesPath()))
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, strings.ToLower(c.LogLevel)) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	validFormats := []string{"text", "json"}
	if !contains(validFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validFormats))
	}

	// Check if directory exists or can be created
	if c.DataDir != "" && c.DataDir != "." {
		if _, err := os.Stat(c.DataDir); os.IsNotExist(err) {
			if err := os.MkdirAll(c.DataDir, 0755); err != nil {
				errors = append(errors, fmt.Sprintf("cannot create data directory '%s': %v", c.DataDir, err))
			}
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// ExpensesPath resolves the expenses file against DataDir.
func (c *Config) ExpensesPath() string {
	return c.resolve(c.ExpensesFile)
}

// CategoriesPath resolves the categories file against DataDir.
func (c *Config) CategoriesPath() string {
	return c.resolve(c.CategoriesFile)
}

// JournalPaths bundles both resolved paths for journal.Open.
func (c *Config) JournalPaths() journal.Paths {
	return journal.Paths{
		Expenses:   c.ExpensesPath(),
		Categories: c.CategoriesPath(),
	}
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) || c.DataDir == "" {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
