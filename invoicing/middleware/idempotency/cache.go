package idempotency

import (
	"encoding/json"
	"time"

	"encore.dev/storage/cache"
)

// CacheKey identifies one idempotent request: the endpoint path plus the
// operator-supplied key.
type CacheKey struct {
	Resource string
	Key      string
}

// Entry statuses. A processing entry blocks concurrent duplicates; a
// completed entry replays the stored response.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// CacheEntry is the stored state of an idempotent request.
type CacheEntry struct {
	Status          string          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash,omitempty"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at,omitempty"`
}

// Cluster is the cache cluster backing idempotency tracking.
var Cluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Cache is the keyspace for storing idempotency entries. Entries expire
// after a day, matching the draft session's idle timeout.
var Cache = cache.NewStructKeyspace[CacheKey, CacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
