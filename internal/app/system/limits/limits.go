// internal/app/system/limits/limits.go
package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBodySize is the maximum size for JSON request bodies.
	// Registration payloads are tiny; anything near this limit is abuse.
	MaxJSONBodySize = 1 << 20 // 1 MB
)
