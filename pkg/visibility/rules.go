// Package visibility decides which auxiliary widgets a page may render for a given path.
package visibility

import "strings"

// AdminPrefix is the reserved administrative path root
const AdminPrefix = "/admin"

// DefaultAllowList is where the assistant widget is allowed when nothing is configured
var DefaultAllowList = []string{"/", "/about", "/services", "/pricing", "/contact", "/faq", "/blog"}

// Normalize trims whitespace, strips query and fragment, and removes trailing slashes.
// The root path stays "/". An empty input stays empty.
func Normalize(path string) string {
	p := strings.TrimSpace(path)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// IsAdminPath reports whether path is the admin root or anything beneath it
func IsAdminPath(path string) bool {
	p := Normalize(path)
	return p == AdminPrefix || strings.HasPrefix(p, AdminPrefix+"/")
}

// Matches reports whether path equals entry or is a sub-path of it.
// The root entry matches only the root itself.
func Matches(path, entry string) bool {
	p := Normalize(path)
	e := Normalize(entry)
	if p == "" || e == "" {
		return false
	}
	if p == e {
		return true
	}
	if e == "/" {
		return false
	}
	return strings.HasPrefix(p, e+"/")
}

// WidgetVisible reports whether a path-gated widget should render.
// Empty paths and admin paths are never visible.
func WidgetVisible(path string, allowList []string) bool {
	if Normalize(path) == "" || IsAdminPath(path) {
		return false
	}
	for _, entry := range allowList {
		if Matches(path, entry) {
			return true
		}
	}
	return false
}

// Rules bundles the visibility decisions for every auxiliary widget
type Rules struct {
	AllowList []string
}

// NewRules builds rules for the allow-list, falling back to DefaultAllowList when it is empty
func NewRules(allowList []string) Rules {
	if len(allowList) == 0 {
		allowList = DefaultAllowList
	}
	list := make([]string, len(allowList))
	copy(list, allowList)
	return Rules{AllowList: list}
}

// ChatWidget is shown when the chatbot is enabled and the path is allow-listed
func (r Rules) ChatWidget(path string, enabled bool) bool {
	return enabled && WidgetVisible(path, r.AllowList)
}

// TrackingScripts load on every public page once at least one tracking ID is configured
func (r Rules) TrackingScripts(path string, hasTrackingIDs bool) bool {
	return hasTrackingIDs && publicPath(path)
}

// ConsentBanner accompanies tracking scripts
func (r Rules) ConsentBanner(path string, trackingActive bool) bool {
	return trackingActive && publicPath(path)
}

func publicPath(path string) bool {
	return Normalize(path) != "" && !IsAdminPath(path)
}
