package apiclient

import (
	"net/url"
	"strings"
)

// Prefix returns the API root for base and version, e.g.
// http://localhost:3000/api/v1.
func Prefix(base, version string) string {
	return BuildURL(BuildURL(base, "api"), version)
}

// BuildURL joins prefix and path with exactly one slash. A path that is
// already an absolute http(s) URL is returned unchanged.
func BuildURL(prefix, path string) string {
	if isAbsolute(path) {
		return path
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(path, "/")
}

func isAbsolute(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func withQuery(u string, q url.Values) string {
	if len(q) == 0 {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + q.Encode()
}
