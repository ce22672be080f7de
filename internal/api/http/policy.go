package http

// SecurityLevel expresses what a route requires from the caller.
type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // no authentication
	SecurityAccess                      // access token required
)

// routeKey identifies a route by method and mux path template.
type routeKey struct {
	Method string
	Path   string
}

// EndpointSecurityConfig maps routes to their required security level. The
// auth middleware consults this before any scope resolution or mutation
// runs: write access to orders, comments and rentals and any profile read
// require a token; the catalog and comment reads stay public.
var EndpointSecurityConfig = map[routeKey]SecurityLevel{
	// Catalog - public, read-only
	{"GET", "/api/v1/products"}:        SecurityPublic,
	{"GET", "/api/v1/products/{slug}"}: SecurityPublic,
	{"GET", "/api/v1/rentready"}:       SecurityPublic,

	// Users - public create and listing
	{"POST", "/api/v1/users"}: SecurityPublic,
	{"GET", "/api/v1/users"}:  SecurityPublic,
	{"POST", "/api/v1/login"}: SecurityPublic,

	// Profile - caller-owned only
	{"GET", "/api/v1/profile"}:            SecurityAccess,
	{"GET", "/api/v1/profile/{username}"}: SecurityAccess,

	// Orders - caller-owned only
	{"POST", "/api/v1/orders"}:     SecurityAccess,
	{"GET", "/api/v1/orders"}:      SecurityAccess,
	{"GET", "/api/v1/orders/{id}"}: SecurityAccess,

	// Comments - public read, token write
	{"POST", "/api/v1/comments"}:     SecurityAccess,
	{"GET", "/api/v1/comments"}:      SecurityPublic,
	{"GET", "/api/v1/comments/{id}"}: SecurityPublic,

	// Rentals - token required
	{"POST", "/api/v1/rentals"}:             SecurityAccess,
	{"GET", "/api/v1/rentals"}:              SecurityAccess,
	{"GET", "/api/v1/rentals/mine"}:         SecurityAccess,
	{"POST", "/api/v1/rentals/{id}/return"}: SecurityAccess,
}

// GetSecurityLevel returns the level for a route; unknown routes default to
// requiring a token.
func GetSecurityLevel(method, pathTemplate string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[routeKey{Method: method, Path: pathTemplate}]; ok {
		return level
	}
	return SecurityAccess
}
