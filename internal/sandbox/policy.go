// Package sandbox describes what a document surface is allowed to do.
//
// The token names follow the iframe sandbox attribute so the config reads
// the same way a web page would:
//
//	allow-scripts      active content may style the terminal: SGR colour
//	                   and attribute sequences in a document are kept and
//	                   <noscript> fallbacks are hidden. Other control
//	                   sequences are always dropped.
//	allow-same-origin  the surface may resolve locators against the host's
//	                   origin, i.e. read local files next to the config
//
// A policy with neither token is the strictest surface.
package sandbox

import (
	"strings"

	"github.com/notedeck/notedeck/internal/errors"
)

const (
	TokenAllowScripts    = "allow-scripts"
	TokenAllowSameOrigin = "allow-same-origin"
)

// Policy is the capability set of a surface.
type Policy struct {
	AllowScripts    bool
	AllowSameOrigin bool
}

// Strict returns a policy with every capability off.
func Strict() Policy {
	return Policy{}
}

// Parse reads a whitespace separated token list. Unknown tokens are an
// error rather than silently ignored.
func Parse(s string) (Policy, error) {
	var p Policy
	for _, tok := range strings.Fields(s) {
		switch strings.ToLower(tok) {
		case TokenAllowScripts:
			p.AllowScripts = true
		case TokenAllowSameOrigin:
			p.AllowSameOrigin = true
		default:
			return Policy{}, errors.UnknownSandboxToken(tok)
		}
	}
	return p, nil
}

// String renders the policy back to its token list.
func (p Policy) String() string {
	var toks []string
	if p.AllowScripts {
		toks = append(toks, TokenAllowScripts)
	}
	if p.AllowSameOrigin {
		toks = append(toks, TokenAllowSameOrigin)
	}
	return strings.Join(toks, " ")
}

// Permissive reports whether both capabilities are on. Together they leave
// the surface with little isolation, so callers should warn about it.
func (p Policy) Permissive() bool {
	return p.AllowScripts && p.AllowSameOrigin
}
