// Package catalog holds the static provider and model tables and the
// read-only registry that answers queries against them. The registry is built
// once, validated, and never written afterwards, so it is safe to share across
// goroutines without locking.
package catalog

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/nulzo/model-catalog-api/pkg/schema"
)

// Registry is an immutable view over the provider table and model catalog.
type Registry struct {
	providers []schema.Provider
	models    []schema.Model

	providerIndex map[schema.ServiceID]int
	modelIndex    map[string]int

	defaultPro  string
	defaultFree string
}

// New builds the registry from the builtin tables, validating every
// cross-reference up front. It fails instead of letting a dangling model or
// default id surface later as a silent absent result.
func New() (*Registry, error) {
	return build(Providers, Models, DefaultProModel, DefaultFreeModel)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := New()
	if err != nil {
		panic("catalog: builtin tables invalid: " + err.Error())
	}
	return r
})

// Default returns the process-wide registry built from the builtin tables.
func Default() *Registry {
	return defaultRegistry()
}

func build(providers []schema.Provider, models []schema.Model, defaultPro, defaultFree string) (*Registry, error) {
	validate := validator.New()

	r := &Registry{
		providers:     providers,
		models:        models,
		providerIndex: make(map[schema.ServiceID]int, len(providers)),
		modelIndex:    make(map[string]int, len(models)),
		defaultPro:    defaultPro,
		defaultFree:   defaultFree,
	}

	for i, p := range providers {
		if err := validate.Struct(&p); err != nil {
			return nil, fmt.Errorf("provider %q: %w", p.ID, err)
		}
		if _, dup := r.providerIndex[p.ID]; dup {
			return nil, fmt.Errorf("duplicate provider id %q", p.ID)
		}
		r.providerIndex[p.ID] = i
	}

	for i, m := range models {
		if err := validate.Struct(&m); err != nil {
			return nil, fmt.Errorf("model %q: %w", m.ID, err)
		}
		if _, dup := r.modelIndex[m.ID]; dup {
			return nil, fmt.Errorf("duplicate model id %q", m.ID)
		}
		if _, ok := r.providerIndex[m.Provider]; !ok {
			return nil, fmt.Errorf("model %q references unknown provider %q", m.ID, m.Provider)
		}
		// Keep the advisory availability record a pure function of the
		// feature flags so there is a single source of truth.
		if m.Availability.RequiresAPIKey == m.Features.Free {
			return nil, fmt.Errorf("model %q: requires_api_key must be the inverse of features.free", m.ID)
		}
		if m.Availability.RequiresPro != m.Features.Pro {
			return nil, fmt.Errorf("model %q: requires_pro out of sync with features.pro", m.ID)
		}
		r.modelIndex[m.ID] = i
	}

	for _, id := range []string{defaultPro, defaultFree} {
		if _, ok := r.modelIndex[id]; !ok {
			return nil, fmt.Errorf("default model %q not in catalog", id)
		}
	}

	return r, nil
}

// ListProviders returns all providers in table order.
func (r *Registry) ListProviders() []schema.Provider {
	out := make([]schema.Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// GetProvider looks up the provider entry for a service id.
func (r *Registry) GetProvider(id schema.ServiceID) (schema.Provider, bool) {
	i, ok := r.providerIndex[id]
	if !ok {
		return schema.Provider{}, false
	}
	return r.providers[i], true
}

// GetModel looks up a model by exact id.
func (r *Registry) GetModel(id string) (schema.Model, bool) {
	i, ok := r.modelIndex[id]
	if !ok {
		return schema.Model{}, false
	}
	return r.models[i], true
}

// ListModels returns the full catalog in catalog order.
func (r *Registry) ListModels() []schema.Model {
	out := make([]schema.Model, len(r.models))
	copy(out, r.models)
	return out
}

// ListModelsForProvider returns the models owned by one service, preserving
// catalog order. Unknown services yield an empty slice.
func (r *Registry) ListModelsForProvider(id schema.ServiceID) []schema.Model {
	var out []schema.Model
	for _, m := range r.models {
		if m.Provider == id {
			out = append(out, m)
		}
	}
	return out
}

// IsAvailable reports whether a model can be selected by a caller. Precedence:
// Pro entitlement bypasses every other gate, then the model must exist, then
// free models pass, and finally a credential for the model's provider must be
// present. Only key membership is checked; the secret itself is never read.
func (r *Registry) IsAvailable(modelID string, isPro bool, keys []schema.APIKey) bool {
	if isPro {
		return true
	}
	m, ok := r.GetModel(modelID)
	if !ok {
		return false
	}
	if m.Features.Free {
		return true
	}
	for _, k := range keys {
		if k.Service == m.Provider {
			return true
		}
	}
	return false
}

// DefaultModel returns the default model id for the caller's tier.
func (r *Registry) DefaultModel(isPro bool) string {
	if isPro {
		return r.defaultPro
	}
	return r.defaultFree
}

// ModelProvider resolves a model id straight to its provider entry.
func (r *Registry) ModelProvider(modelID string) (schema.Provider, bool) {
	m, ok := r.GetModel(modelID)
	if !ok {
		return schema.Provider{}, false
	}
	return r.GetProvider(m.Provider)
}

// GroupByProvider returns one group per provider that owns at least one model.
// Group order follows the provider table, so adding a provider to the table is
// enough to have it show up here.
func (r *Registry) GroupByProvider() []schema.GroupedModels {
	var out []schema.GroupedModels
	for _, p := range r.providers {
		models := r.ListModelsForProvider(p.ID)
		if len(models) == 0 {
			continue
		}
		out = append(out, schema.GroupedModels{
			Provider: p.ID,
			Name:     p.Name,
			Models:   models,
		})
	}
	return out
}

// ListSelectableModels filters the catalog through IsAvailable, preserving
// catalog order.
func (r *Registry) ListSelectableModels(isPro bool, keys []schema.APIKey) []schema.Model {
	var out []schema.Model
	for _, m := range r.models {
		if r.IsAvailable(m.ID, isPro, keys) {
			out = append(out, m)
		}
	}
	return out
}

// SDKConfig resolves a model to the descriptor an SDK factory needs to build a
// client for it.
func (r *Registry) SDKConfig(modelID string) (schema.SDKConfig, bool) {
	p, ok := r.ModelProvider(modelID)
	if !ok {
		return schema.SDKConfig{}, false
	}
	return schema.SDKConfig{Provider: p, ModelID: modelID}, true
}
