// Package identity carries the authenticated principal through a request.
package identity

import "github.com/gin-gonic/gin"

// ContextKey is the gin context key under which the middleware stores the principal.
const ContextKey = "principal"

// Principal is the authenticated actor making a request.
// A nil *Principal means the caller is anonymous.
type Principal struct {
	ID      uint
	Email   string
	IsOAuth bool
}

// FromContext returns the principal resolved by the auth middleware,
// or nil when the request is anonymous.
func FromContext(c *gin.Context) *Principal {
	v, ok := c.Get(ContextKey)
	if !ok {
		return nil
	}
	p, ok := v.(*Principal)
	if !ok {
		return nil
	}
	return p
}
