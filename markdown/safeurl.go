package markdown

import (
	"net/url"
	"strings"
)

// SafeURL validates a URL for use in href and src attributes. Relative paths,
// fragments and http(s)/mailto/tel URLs pass; anything else yields "".
// The result is not escaped: markup serialization escapes attribute values.
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") || strings.HasPrefix(val, "./") || strings.HasPrefix(val, "../") {
		return val
	}
	parsed, err := url.Parse(val)
	if err != nil {
		return ""
	}
	if parsed.Scheme == "" {
		// Bare relative reference such as "other-post/" or "img.png".
		if strings.Contains(val, ":") {
			return ""
		}
		return val
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return val
	default:
		return ""
	}
}
