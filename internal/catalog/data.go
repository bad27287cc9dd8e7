package catalog

import "github.com/nulzo/model-catalog-api/pkg/schema"

// Default model ids per tier. Both are validated against the catalog when the
// registry is built.
const (
	DefaultProModel  = "gpt-5"
	DefaultFreeModel = "gpt-4.1-nano"
)

// Providers is the builtin provider table. Slice order is the display order
// used by grouped views, so keep new entries in the position they should
// render in.
var Providers = []schema.Provider{
	{
		ID:       schema.ServiceOpenAI,
		Name:     "OpenAI",
		DocsURL:  "https://platform.openai.com/docs/models",
		LogoPath: "/logos/openai.svg",
		EnvKey:   "OPENAI_API_KEY",
		SDKType:  "openai",
	},
	{
		ID:       schema.ServiceOpenRouter,
		Name:     "OpenRouter",
		DocsURL:  "https://openrouter.ai/docs/models",
		LogoPath: "/logos/openrouter.svg",
		EnvKey:   "OPENROUTER_API_KEY",
		SDKType:  "openai-compatible",
	},
}

// Models is the builtin catalog, in display order. Every entry must reference
// a provider from the table above and keep its availability record in sync
// with its feature flags; registry construction enforces both.
var Models = []schema.Model{
	// OpenAI
	{
		ID:       "gpt-5",
		Name:     "GPT-5",
		Provider: schema.ServiceOpenAI,
		Features: schema.ModelFeatures{
			Recommended: true,
			Vision:      true,
			Tools:       true,
			MaxTokens:   128000,
		},
		Availability: schema.ModelAvailability{RequiresAPIKey: true},
	},
	{
		ID:       "gpt-5-mini",
		Name:     "GPT-5 Mini",
		Provider: schema.ServiceOpenAI,
		Features: schema.ModelFeatures{
			Vision:    true,
			Tools:     true,
			MaxTokens: 128000,
		},
		Availability: schema.ModelAvailability{RequiresAPIKey: true},
	},
	{
		ID:       "gpt-5-pro",
		Name:     "GPT-5 Pro",
		Provider: schema.ServiceOpenAI,
		Features: schema.ModelFeatures{
			Vision:    true,
			Tools:     true,
			Pro:       true,
			MaxTokens: 272000,
		},
		Availability: schema.ModelAvailability{RequiresAPIKey: true, RequiresPro: true},
	},
	{
		ID:       "gpt-4.1",
		Name:     "GPT-4.1",
		Provider: schema.ServiceOpenAI,
		Features: schema.ModelFeatures{
			Vision:    true,
			Tools:     true,
			MaxTokens: 32768,
		},
		Availability: schema.ModelAvailability{RequiresAPIKey: true},
	},
	{
		ID:       "gpt-4.1-nano",
		Name:     "GPT-4.1 Nano",
		Provider: schema.ServiceOpenAI,
		Features: schema.ModelFeatures{
			Free:      true,
			Vision:    true,
			Tools:     true,
			MaxTokens: 32768,
		},
	},
	{
		ID:       "o4-mini",
		Name:     "o4-mini",
		Provider: schema.ServiceOpenAI,
		Features: schema.ModelFeatures{
			Tools:     true,
			MaxTokens: 100000,
		},
		Availability: schema.ModelAvailability{RequiresAPIKey: true},
	},

	// OpenRouter
	{
		ID:       "anthropic/claude-sonnet-4",
		Name:     "Claude Sonnet 4",
		Provider: schema.ServiceOpenRouter,
		Features: schema.ModelFeatures{
			Recommended: true,
			Vision:      true,
			Tools:       true,
			MaxTokens:   64000,
		},
		Availability: schema.ModelAvailability{RequiresAPIKey: true},
	},
	{
		ID:       "google/gemini-2.5-flash",
		Name:     "Gemini 2.5 Flash",
		Provider: schema.ServiceOpenRouter,
		Features: schema.ModelFeatures{
			Vision:    true,
			Tools:     true,
			MaxTokens: 65536,
		},
		Availability: schema.ModelAvailability{RequiresAPIKey: true},
	},
	{
		ID:       "meta-llama/llama-4-maverick:free",
		Name:     "Llama 4 Maverick (free)",
		Provider: schema.ServiceOpenRouter,
		Features: schema.ModelFeatures{
			Free:      true,
			Tools:     true,
			MaxTokens: 8192,
		},
	},
	{
		ID:       "deepseek/deepseek-r1",
		Name:     "DeepSeek R1",
		Provider: schema.ServiceOpenRouter,
		Features: schema.ModelFeatures{
			Unstable:  true,
			MaxTokens: 32768,
		},
		Availability: schema.ModelAvailability{RequiresAPIKey: true},
	},
}
