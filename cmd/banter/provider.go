package main

import (
	"context"
	"fmt"

	"github.com/banterhq/banter"
	"github.com/banterhq/banter/anthropic"
	"github.com/banterhq/banter/gemini"
)

// resolveProvider selects and constructs the generator. The model ID is
// carried per-request by the controller, so providers are built with their
// defaults. All env var values are passed in as parameters — env is only
// read in main().
func resolveProvider(ctx context.Context, providerName, apiKeyFlag, geminiEnvKey, anthropicEnvKey string) (banter.Generator, error) {
	provider := providerName

	// Auto-detect from env vars if not configured.
	if provider == "" {
		hasGemini := geminiEnvKey != ""
		hasAnthropic := anthropicEnvKey != ""
		switch {
		case hasGemini && hasAnthropic:
			return nil, fmt.Errorf("multiple API keys found (GEMINI_API_KEY, ANTHROPIC_API_KEY): use -provider flag to select")
		case hasGemini:
			provider = "gemini"
		case hasAnthropic:
			provider = "anthropic"
		default:
			return nil, fmt.Errorf("no API key found: set GEMINI_API_KEY or ANTHROPIC_API_KEY (or use -provider and -api-key flags)")
		}
	}

	// Resolve API key: explicit flag overrides env var.
	key := apiKeyFlag
	switch provider {
	case "gemini":
		if key == "" {
			key = geminiEnvKey
		}
		if key == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set (use -api-key flag or environment variable)")
		}
		client, err := gemini.New(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		return client, nil
	case "anthropic":
		if key == "" {
			key = anthropicEnvKey
		}
		if key == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set (use -api-key flag or environment variable)")
		}
		return anthropic.New(key), nil
	default:
		return nil, fmt.Errorf("unknown provider %q: must be \"gemini\" or \"anthropic\"", provider)
	}
}
