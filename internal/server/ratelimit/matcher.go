package ratelimit

import (
	"strings"
)

// unlimited marks endpoints that bypass throttling.
var unlimited = map[string]bool{
	"GET /health":    true,
	"GET /templates": true,
}

// MatchEndpoint returns the configuration governing path and method, or nil
// when the default limit applies. An exact path wins over a prefix entry
// (a Path ending in "/"); among prefixes the longest wins.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimited[method+" "+path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			if best == nil || len(c.Path) > len(best.Path) {
				best = c
			}
		}
	}
	return best
}
