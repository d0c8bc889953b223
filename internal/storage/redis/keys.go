package redis

import (
	"fmt"

	"github.com/spiderxog/hub/internal/model"
)

// Key prefix for all hub data
const keyPrefix = "sxhub"

// documentKey returns the Redis key holding a collection snapshot
func documentKey(collection model.Collection) string {
	return fmt.Sprintf("%s:doc:%s", keyPrefix, collection)
}
