package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxFeedDecimals is used for prefixing cached oracle feed decimals
	PfxFeedDecimals = "feedDecimals"
	// PfxEvents is used for prefixing marketplace event channels
	PfxEvents = "events"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the prefix of a key.
func GetPrefix(key string) string {
	if idx := strings.Index(key, ":"); idx >= 0 {
		return key[:idx]
	}
	return key
}
