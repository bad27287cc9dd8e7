package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-catalog-api/pkg/schema"
)

// ProEntitlementHeader carries the caller's Pro-tier token. Membership in the
// configured token list is the only check; issuing and revoking tokens is the
// authorization layer's problem.
const ProEntitlementHeader = "X-Pro-Entitlement"

const identityKey = "identity"

// Identity is the per-request view of who is asking: their tier and the
// credentials usable for availability checks.
type Identity struct {
	Pro  bool
	Keys []schema.APIKey
}

// Entitlement resolves the caller's identity from request headers. Keys
// resolved from the server environment are always present; callers can add
// their own per-service keys via X-Api-Key-<service> headers.
func Entitlement(providers []schema.Provider, proTokens []string, envKeys []schema.APIKey) gin.HandlerFunc {
	tokens := make(map[string]bool, len(proTokens))
	for _, t := range proTokens {
		tokens[t] = true
	}

	return func(c *gin.Context) {
		id := Identity{
			Keys: append([]schema.APIKey(nil), envKeys...),
		}

		if token := c.GetHeader(ProEntitlementHeader); token != "" && tokens[token] {
			id.Pro = true
		}

		now := time.Now()
		for _, p := range providers {
			header := fmt.Sprintf("X-Api-Key-%s", p.ID)
			val := c.GetHeader(header)
			if val == "" {
				continue
			}
			id.Keys = append(id.Keys, schema.APIKey{
				Service: p.ID,
				Key:     val,
				AddedAt: now,
			})
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// GetIdentity returns the identity resolved by the Entitlement middleware.
// The zero Identity (no tier, no keys) is returned when the middleware did
// not run.
func GetIdentity(c *gin.Context) Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Identity{}
}
