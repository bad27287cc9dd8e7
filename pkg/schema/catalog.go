package schema

import "time"

// ServiceID identifies a configured upstream AI service.
type ServiceID string

const (
	ServiceOpenAI     ServiceID = "openai"
	ServiceOpenRouter ServiceID = "openrouter"
)

// Provider describes a configured AI service: how to display it, where its
// docs live, which environment variable carries its credential, and which SDK
// initializer a client factory should use for it.
type Provider struct {
	ID       ServiceID `mapstructure:"id" json:"id" validate:"required"`
	Name     string    `mapstructure:"name" json:"name" validate:"required"`
	DocsURL  string    `mapstructure:"docs_url" json:"docs_url" validate:"required,url"`
	LogoPath string    `mapstructure:"logo_path" json:"logo_path,omitempty"`
	EnvKey   string    `mapstructure:"env_key" json:"env_key" validate:"required"`
	SDKType  string    `mapstructure:"sdk_type" json:"sdk_type" validate:"required"`
	Unstable bool      `mapstructure:"unstable" json:"unstable"`
}

// ModelFeatures are independent capability and labeling flags for a model.
// MaxTokens is zero when the catalog does not pin an output limit.
type ModelFeatures struct {
	Free        bool `mapstructure:"free" json:"free"`
	Recommended bool `mapstructure:"recommended" json:"recommended"`
	Unstable    bool `mapstructure:"unstable" json:"unstable"`
	Vision      bool `mapstructure:"vision" json:"vision"`
	Tools       bool `mapstructure:"tools" json:"tools"`
	Pro         bool `mapstructure:"pro" json:"pro"`
	MaxTokens   int  `mapstructure:"max_tokens" json:"max_tokens,omitempty"`
}

// ModelAvailability is the advisory access summary for a model. The registry
// keeps it consistent with ModelFeatures at load time; the actual availability
// decision lives in catalog.Registry.IsAvailable.
type ModelAvailability struct {
	RequiresAPIKey bool `mapstructure:"requires_api_key" json:"requires_api_key"`
	RequiresPro    bool `mapstructure:"requires_pro" json:"requires_pro"`
}

// Model is one catalog entry. ID is the provider-specific model identifier and
// is unique across the whole catalog.
type Model struct {
	ID           string            `mapstructure:"id" json:"id" validate:"required"`
	Name         string            `mapstructure:"name" json:"name" validate:"required"`
	Provider     ServiceID         `mapstructure:"provider" json:"provider" validate:"required"`
	Features     ModelFeatures     `mapstructure:"features" json:"features"`
	Availability ModelAvailability `mapstructure:"availability" json:"availability"`
}

// APIKey is a caller-supplied credential reference. The registry only checks
// Service membership; the Key value itself is never read or stored.
type APIKey struct {
	Service ServiceID `json:"service" validate:"required" binding:"required"`
	Key     string    `json:"key" validate:"required" binding:"required"`
	AddedAt time.Time `json:"added_at" binding:"-"`
}

// AIConfig pairs a selected model with the credentials the caller holds. It is
// owned and persisted (or not) by the caller.
type AIConfig struct {
	Model   string   `json:"model" validate:"required" binding:"required"`
	APIKeys []APIKey `json:"api_keys" validate:"omitempty,dive" binding:"omitempty,dive"`
}

// GroupedModels is a derived view: one provider and the ordered subsequence of
// catalog models that belong to it.
type GroupedModels struct {
	Provider ServiceID `json:"provider"`
	Name     string    `json:"name"`
	Models   []Model   `json:"models"`
}

// SDKConfig is the minimal descriptor an SDK factory needs to construct a
// client for a model: the full provider entry (env key, sdk type) plus the
// model id to send upstream.
type SDKConfig struct {
	Provider Provider `json:"provider"`
	ModelID  string   `json:"model_id"`
}
