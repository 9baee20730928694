package ratelimit

import "strings"

// Match returns the rule for a request, or nil when the default applies.
// Exact paths win over prefixes.
func Match(method, path string, rules []Rule) *Rule {
	for i := range rules {
		r := &rules[i]
		if r.Method == method && r.Path == path {
			return r
		}
	}
	for i := range rules {
		r := &rules[i]
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}
	return nil
}
