package middleware

// Headers set by the intranet gateway.
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserRole  = "X-User-Role"
	HeaderRequestID = "X-Request-ID"
)

const (
	scopeKey = "scope"

	limiterCacheSize = 1000
	maxRequestIDLen  = 64
)
