package gdrive

import "strings"

// Normalize canonicalizes a raw path into the slash-separated form the
// adapter uses to address the emulated tree. Backslashes become forward
// slashes, separator runs collapse, empty and "." segments are dropped, and
// ".." pops the previous segment (a ".." at the root is silently discarded,
// so a path can never escape above the root). The empty string denotes the
// root itself.
//
// Normalize never fails and is idempotent: Normalize(Normalize(s)) ==
// Normalize(s) for every s.
func Normalize(raw string) string {
	raw = strings.ReplaceAll(raw, "\\", "/")

	var parts []string
	for _, p := range strings.Split(raw, "/") {
		switch p {
		case "", ".":
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

// splitPath splits a normalized path into its segments. The root path has no
// segments.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// splitDir splits a normalized path into its directory portion and last
// segment. For a single-segment path the directory is the root ("").
func splitDir(path string) (dir, leaf string) {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}

// joinPath appends a child name to a normalized parent path.
func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
