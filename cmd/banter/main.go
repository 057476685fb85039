// Command banter is a terminal chat client for LLM providers.
//
// Usage:
//
//	GEMINI_API_KEY=gk-...    banter [flags]
//	ANTHROPIC_API_KEY=sk-... banter [flags]
//
// Flags:
//
//	-provider string    Provider: gemini, anthropic (auto-detected from env vars if omitted)
//	-model string       Model ID (default: provider default)
//	-config string      Path to config file (default: ~/.config/banter/config.yaml)
//	-persist string     Path to sqlite database for durable sessions (default: in-memory)
//	-restore string     Glob of markdown transcripts to import on startup (** matches recursively)
//	-export-dir string  Directory for exported transcripts (default: current directory)
//	-api-key string     API key (overrides provider's env var)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/banterhq/banter"
	bt "github.com/banterhq/banter/bubbletea"
	"github.com/banterhq/banter/config"
	"github.com/banterhq/banter/markdown"
	"github.com/banterhq/banter/memory"
	"github.com/banterhq/banter/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "banter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse flags.
	var (
		configPath   = flag.String("config", config.DefaultPath(), "Path to config file")
		modelFlag    = flag.String("model", "", "Model ID (provider-specific)")
		providerFlag = flag.String("provider", "", "Provider: gemini, anthropic (auto-detected from env vars if omitted)")
		apiKey       = flag.String("api-key", "", "API key (overrides provider's env var)")
		persistPath  = flag.String("persist", "", "Path to sqlite database for durable sessions")
		restoreGlob  = flag.String("restore", "", "Glob of markdown transcripts to import on startup")
		exportDir    = flag.String("export-dir", "", "Directory for exported transcripts")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Load the config file, then merge flags on top (flags win).
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *providerFlag != "" {
		cfg.Provider = *providerFlag
	}
	if *modelFlag != "" {
		cfg.Model = *modelFlag
	}
	if *persistPath != "" {
		cfg.PersistPath = *persistPath
	}
	if *exportDir != "" {
		cfg.ExportDir = *exportDir
	}

	// Resolve provider. Env vars are read here and passed as values.
	gen, err := resolveProvider(ctx, cfg.Provider, *apiKey,
		os.Getenv("GEMINI_API_KEY"), os.Getenv("ANTHROPIC_API_KEY"))
	if err != nil {
		return err
	}

	// Select the store: sqlite when a persist path is set, otherwise
	// everything stays in process memory and is discarded on exit.
	var store banter.Store
	if cfg.PersistPath != "" {
		store, err = sqlite.Open(cfg.PersistPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
	} else {
		store = memory.New()
	}
	defer store.Close()

	// Zero limit fields pick up the defaults.
	opts := []banter.ControllerOption{banter.WithLimits(limitsFrom(cfg))}
	if cfg.Model != "" {
		opts = append(opts, banter.WithModel(cfg.Model))
	}
	ctrl := banter.NewController(store, gen, opts...)

	// Import transcripts before the UI starts so restored sessions count
	// against the session cap the same way new ones do.
	if *restoreGlob != "" {
		sessions, err := markdown.ImportGlob(*restoreGlob)
		if err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		for _, s := range sessions {
			if err := ctrl.AddSession(s); err != nil {
				return fmt.Errorf("restore %s: %w", s.Title, err)
			}
		}
	}

	tuiModel := bt.New(ctrl, banter.DefaultTheme(), bt.Config{
		Models:    cfg.Models,
		ExportDir: cfg.ExportDir,
	})

	if err := bt.Run(ctx, tuiModel); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// limitsFrom maps config overrides onto Limits, leaving zero fields for
// the controller to fill with defaults.
func limitsFrom(cfg config.Config) banter.Limits {
	return banter.Limits{
		MaxSessions:   cfg.MaxSessions,
		MaxMessages:   cfg.MaxMessages,
		ContextWindow: cfg.ContextWindow,
	}
}
