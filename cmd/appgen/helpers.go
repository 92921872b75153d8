package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/application-customizer/internal/customize"
	"github.com/jonathan/application-customizer/internal/db"
	"github.com/jonathan/application-customizer/internal/llm"
	"github.com/jonathan/application-customizer/internal/types"
)

var profileValidator = validator.New()

// newLogger builds the CLI logger. Verbose mode lowers the level to debug.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadProfile reads and validates the user profile JSON file.
func loadProfile(path string) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := profileValidator.Struct(&profile); err != nil {
		return nil, fmt.Errorf("profile is invalid: %w", err)
	}
	return &profile, nil
}

// loadAnalysis reads the job description analysis JSON file.
func loadAnalysis(path string) (*types.JDAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis file: %w", err)
	}
	var analysis types.JDAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	if analysis.Company == "" || analysis.RoleTitle == "" {
		return nil, fmt.Errorf("analysis must include company and role_title")
	}
	return &analysis, nil
}

// loadTemplate reads the optional template structure JSON file.
func loadTemplate(path string) (*types.TemplateStructure, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}
	var t types.TemplateStructure
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse template JSON: %w", err)
	}
	return &t, nil
}

// buildGateway wires LLM providers from explicit keys, falling back to the
// environment. Anthropic is primary when available; Gemini backs it up.
func buildGateway(ctx context.Context, anthropicKey, geminiKey string, logger *slog.Logger) *llm.Gateway {
	if anthropicKey == "" {
		anthropicKey = os.Getenv(llm.EnvAnthropicAPIKey)
	}
	if geminiKey == "" {
		geminiKey = os.Getenv(llm.EnvGeminiAPIKey)
	}

	var primary, fallback llm.Provider
	if anthropicKey != "" {
		primary = llm.NewAnthropicClient(anthropicKey, llm.DefaultAnthropicModel)
	}
	if geminiKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, geminiKey, llm.DefaultGeminiModel)
		if err != nil {
			logger.Warn("failed to initialize Gemini client", "error", err)
		} else if primary == nil {
			primary = gemini
		} else {
			fallback = gemini
		}
	}
	if primary == nil {
		logger.Warn("no LLM API keys configured; generation will use static fallback content")
	}

	return llm.NewGateway(primary, fallback, logger)
}

// openSink connects the persistence sink when a database URL is configured.
// Returns a nil sink (persistence disabled) when no URL is set.
func openSink(ctx context.Context, databaseURL string, logger *slog.Logger) (customize.Sink, func(), error) {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, func() {}, nil
	}
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		logger.Warn("failed to connect to database, persistence disabled", "error", err)
		return nil, func() {}, nil
	}
	return database, database.Close, nil
}

// writeOutput marshals v as indented JSON to the given path, or stdout when
// the path is empty.
func writeOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}
	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
