package auth

import "strings"

// RequireAuth reports whether path needs authentication given the excluded
// path list. An entry ending in '*' excludes every path sharing the prefix
// before the star; any other entry must match the path exactly. A single
// trailing slash is ignored on both the path and each entry, so "/status"
// and "/status/" are the same route.
//
// An empty path or an empty exclusion list always requires auth.
func RequireAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}

	p := trimTrailingSlash(path)
	for _, entry := range excludedPaths {
		e := trimTrailingSlash(entry)
		if strings.HasSuffix(e, "*") {
			if strings.HasPrefix(p, strings.TrimSuffix(e, "*")) {
				return false
			}
		} else if p == e {
			return false
		}
	}
	return true
}

// trimTrailingSlash strips at most one trailing '/'.
func trimTrailingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}
