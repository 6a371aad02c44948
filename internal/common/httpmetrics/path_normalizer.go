package httpmetrics

import (
	"regexp"
	"strings"
)

var uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// NormalizePath collapses per-account path segments so metric labels stay
// low-cardinality. /user/<uuid> becomes /user/:id.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}

	path = uuidRegex.ReplaceAllString(path, ":id")

	if strings.HasPrefix(path, "/user/") && path != "/user/:id" {
		return "/user/:id"
	}

	return path
}
