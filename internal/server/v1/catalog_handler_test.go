package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-catalog-api/internal/catalog"
	"github.com/nulzo/model-catalog-api/internal/server/middleware"
	"github.com/nulzo/model-catalog-api/internal/server/validator"
	"github.com/nulzo/model-catalog-api/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testProToken = "pro-token-1"

func setupRouter(t *testing.T, envKeys []schema.APIKey) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.InitValidator()

	registry, err := catalog.New()
	require.NoError(t, err)

	handler := NewHandler(registry, zap.NewNop())

	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop()))
	r.Use(middleware.Entitlement(registry.ListProviders(), []string{testProToken}, envKeys))

	r.GET("/v1/providers", handler.HandleListProviders)
	r.GET("/v1/models", handler.HandleListModels)
	r.GET("/v1/models/grouped", handler.HandleGroupedModels)
	r.GET("/v1/models/selectable", handler.HandleSelectableModels)
	r.GET("/v1/models/default", handler.HandleDefaultModel)
	r.GET("/v1/model", handler.HandleGetModel)
	r.GET("/v1/model/availability", handler.HandleModelAvailability)
	r.GET("/v1/model/sdk-config", handler.HandleModelSDKConfig)
	r.POST("/v1/config/check", handler.HandleConfigCheck)

	return r
}

func doRequest(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type listEnvelope struct {
	Object string            `json:"object"`
	Data   []json.RawMessage `json:"data"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listEnvelope {
	t.Helper()
	var env listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandleListProviders(t *testing.T) {
	r := setupRouter(t, nil)

	w := doRequest(r, http.MethodGet, "/v1/providers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeList(t, w)
	assert.Equal(t, "list", env.Object)
	assert.Len(t, env.Data, 2)
}

func TestHandleListModels(t *testing.T) {
	r := setupRouter(t, nil)
	registry, err := catalog.New()
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/v1/models", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w).Data, len(registry.ListModels()))

	// Provider filter
	w = doRequest(r, http.MethodGet, "/v1/models?provider=openrouter", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w).Data, len(registry.ListModelsForProvider(schema.ServiceOpenRouter)))

	// Unknown provider degrades to an empty list
	w = doRequest(r, http.MethodGet, "/v1/models?provider=unknown", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w).Data)
}

func TestHandleGetModel(t *testing.T) {
	r := setupRouter(t, nil)

	w := doRequest(r, http.MethodGet, "/v1/model?id=gpt-5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var m schema.Model
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "gpt-5", m.ID)

	w = doRequest(r, http.MethodGet, "/v1/model?id=nonexistent", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/v1/model", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetModel_SlashedID(t *testing.T) {
	r := setupRouter(t, nil)

	w := doRequest(r, http.MethodGet, "/v1/model?id="+"anthropic%2Fclaude-sonnet-4", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var m schema.Model
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "anthropic/claude-sonnet-4", m.ID)
}

func TestHandleModelAvailability(t *testing.T) {
	r := setupRouter(t, nil)

	// Paid model, anonymous caller: unavailable.
	w := doRequest(r, http.MethodGet, "/v1/model/availability?id=gpt-5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Available bool `json:"available"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)

	// Same caller with a key header for the owning service.
	w = doRequest(r, http.MethodGet, "/v1/model/availability?id=gpt-5", "", map[string]string{
		"X-Api-Key-Openai": "sk-anything",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)

	// Pro entitlement bypasses the key requirement.
	w = doRequest(r, http.MethodGet, "/v1/model/availability?id=gpt-5", "", map[string]string{
		"X-Pro-Entitlement": testProToken,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)

	w = doRequest(r, http.MethodGet, "/v1/model/availability?id=nonexistent", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSelectableModels(t *testing.T) {
	registry, err := catalog.New()
	require.NoError(t, err)
	r := setupRouter(t, nil)

	// Anonymous: free models only.
	w := doRequest(r, http.MethodGet, "/v1/models/selectable", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	anonCount := len(decodeList(t, w).Data)
	assert.Greater(t, anonCount, 0)
	assert.Less(t, anonCount, len(registry.ListModels()))

	// Pro: the whole catalog.
	w = doRequest(r, http.MethodGet, "/v1/models/selectable", "", map[string]string{
		"X-Pro-Entitlement": testProToken,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w).Data, len(registry.ListModels()))
}

func TestHandleSelectableModels_EnvKeys(t *testing.T) {
	envKeys := []schema.APIKey{{Service: schema.ServiceOpenAI, Key: "sk-env"}}
	r := setupRouter(t, envKeys)

	w := doRequest(r, http.MethodGet, "/v1/models/selectable", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data []schema.Model `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	ids := make(map[string]bool)
	for _, m := range env.Data {
		ids[m.ID] = true
	}
	assert.True(t, ids["gpt-5"], "server-held openai key should unlock paid openai models")
	assert.False(t, ids["anthropic/claude-sonnet-4"], "openrouter models stay locked")
}

func TestHandleDefaultModel(t *testing.T) {
	r := setupRouter(t, nil)

	var resp struct {
		Model string `json:"model"`
		Pro   bool   `json:"pro"`
	}

	w := doRequest(r, http.MethodGet, "/v1/models/default", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "gpt-4.1-nano", resp.Model)
	assert.False(t, resp.Pro)

	w = doRequest(r, http.MethodGet, "/v1/models/default", "", map[string]string{
		"X-Pro-Entitlement": testProToken,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "gpt-5", resp.Model)
	assert.True(t, resp.Pro)
}

func TestHandleGroupedModels(t *testing.T) {
	r := setupRouter(t, nil)

	w := doRequest(r, http.MethodGet, "/v1/models/grouped", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data []schema.GroupedModels `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 2)
	assert.Equal(t, schema.ServiceOpenAI, env.Data[0].Provider)
	assert.Equal(t, schema.ServiceOpenRouter, env.Data[1].Provider)
}

func TestHandleModelSDKConfig(t *testing.T) {
	r := setupRouter(t, nil)

	w := doRequest(r, http.MethodGet, "/v1/model/sdk-config?id=gpt-5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cfg schema.SDKConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, "gpt-5", cfg.ModelID)
	assert.Equal(t, schema.ServiceOpenAI, cfg.Provider.ID)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Provider.EnvKey)

	w = doRequest(r, http.MethodGet, "/v1/model/sdk-config?id=nonexistent", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleConfigCheck(t *testing.T) {
	r := setupRouter(t, nil)

	body := `{"model": "gpt-5", "api_keys": [{"service": "openai", "key": "sk-from-config"}]}`
	w := doRequest(r, http.MethodPost, "/v1/config/check", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Known     bool `json:"known"`
		Available bool `json:"available"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Known)
	assert.True(t, resp.Available)

	// Unknown model degrades, not errors: the config is caller-owned.
	body = `{"model": "nonexistent"}`
	w = doRequest(r, http.MethodPost, "/v1/config/check", body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Known)
	assert.False(t, resp.Available)
}

func TestHandleConfigCheck_ValidationError(t *testing.T) {
	r := setupRouter(t, nil)

	w := doRequest(r, http.MethodPost, "/v1/config/check", `{}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "model")
}
