package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer generates cache keys for the two cacheable payload classes:
// built diagram results and rendered artifacts.
type Keyer interface {
	// ResultKey keys a built diagram by the hash of its canonical
	// request encoding.
	ResultKey(requestHash string) string

	// ArtifactKey keys a rendered artifact by the diagram it was
	// rendered from plus the render parameters.
	ArtifactKey(diagramID, format string, scale float64) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ResultKey generates a key for built-geometry caching.
func (k *DefaultKeyer) ResultKey(requestHash string) string {
	return hashKey("result", requestHash)
}

// ArtifactKey generates a key for rendered-artifact caching.
func (k *DefaultKeyer) ArtifactKey(diagramID, format string, scale float64) string {
	return hashKey("artifact", diagramID, format, scale)
}

// ScopedKeyer wraps a Keyer with a prefix so callers sharing one
// backend get separate namespaces (the HTTP facade keys per tenant
// this way).
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer whose prefix is prepended to every
// generated key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ResultKey generates a prefixed key for built-geometry caching.
func (k *ScopedKeyer) ResultKey(requestHash string) string {
	return k.prefix + k.inner.ResultKey(requestHash)
}

// ArtifactKey generates a prefixed key for rendered-artifact caching.
func (k *ScopedKeyer) ArtifactKey(diagramID, format string, scale float64) string {
	return k.prefix + k.inner.ArtifactKey(diagramID, format, scale)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
