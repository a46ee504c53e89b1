// Package pathstr implements path string operations for an explicitly
// chosen platform rather than the build platform. This lets a resolver
// configured for Windows be exercised on a Unix test host and vice
// versa, which path/filepath cannot do.
package pathstr

import "strings"

// IsAbs reports whether path is absolute under the conventions of the
// target platform. Windows accepts drive-rooted paths (C:\ or C:/) and
// UNC paths (\\server\share); everything else uses a leading slash.
func IsAbs(path string, windows bool) bool {
	if !windows {
		return strings.HasPrefix(path, "/")
	}
	if strings.HasPrefix(path, `\\`) {
		return true
	}
	if len(path) >= 3 && path[1] == ':' && (path[2] == '\\' || path[2] == '/') {
		c := path[0]
		return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
	}
	return false
}

// Join appends elem to base using the target platform's separator.
// No cleaning or normalization is performed beyond avoiding a doubled
// separator; resolved paths are returned as derived.
func Join(base, elem string, windows bool) string {
	sep := "/"
	if windows {
		sep = `\`
	}
	if strings.HasSuffix(base, sep) {
		return base + elem
	}
	return base + sep + elem
}
