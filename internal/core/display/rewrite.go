// Package display turns canonical catalog URLs into the form shown to users.
package display

import "strings"

// Default hosts.
const (
	DefaultSourceHost = "www.youtube.com"
	DefaultTargetHost = "inv.nadeko.net"
)

// HostRewriter swaps the canonical video host for an alternate front-end.
// It is a plain substring substitution; the URL is not parsed.
type HostRewriter struct {
	From string
	To   string
}

// NewHostRewriter creates a rewriter. Leaving either host empty disables rewriting.
func NewHostRewriter(from, to string) HostRewriter {
	return HostRewriter{From: from, To: to}
}

// Enabled reports whether Rewrite changes anything.
func (r HostRewriter) Enabled() bool {
	return r.From != "" && r.To != ""
}

// Rewrite replaces the first occurrence of From with To. URLs without
// From are returned unchanged.
func (r HostRewriter) Rewrite(url string) string {
	if !r.Enabled() {
		return url
	}
	return strings.Replace(url, r.From, r.To, 1)
}
