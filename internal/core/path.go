package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(p, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	// Requests have the extension of their last segment removed before
	// matching, so such a route could never be addressed.
	if last := path.Base(p); path.Ext(last) != "" && path.Ext(last) != last {
		return fmt.Errorf("last path segment cannot have an extension")
	}

	return nil
}

// SlashPath converts backslash separators to forward slashes regardless of
// the host OS. path/filepath.ToSlash is a no-op on unix, which is not enough
// for configuration written on Windows.
func SlashPath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// NormalizeEntryFile turns an entry file or emitted file name into the form
// used for registry lookups: forward slashes, one leading slash removed,
// cleaned.
func NormalizeEntryFile(name string) string {
	name = SlashPath(name)
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return ""
	}
	return path.Clean(name)
}

func IsHTMLPath(p string) bool {
	return strings.HasSuffix(strings.ToLower(p), ".html")
}

// JoinRoot joins a project-relative path (with or without a leading slash)
// onto root, returning a forward-slash path.
func JoinRoot(root, rel string) string {
	return path.Join(SlashPath(root), strings.TrimPrefix(SlashPath(rel), "/"))
}

// RelativePath returns target expressed relative to the directory base. Both
// arguments must be absolute forward-slash paths.
func RelativePath(base, target string) string {
	base = path.Clean(base)
	target = path.Clean(target)
	if base == target {
		return "."
	}

	baseParts := splitSegments(base)
	targetParts := splitSegments(target)

	common := 0
	for common < len(baseParts) && common < len(targetParts) && baseParts[common] == targetParts[common] {
		common++
	}

	parts := make([]string, 0, len(baseParts)-common+len(targetParts)-common)
	for i := common; i < len(baseParts); i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, targetParts[common:]...)
	return strings.Join(parts, "/")
}

func splitSegments(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
