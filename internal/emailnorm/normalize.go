// Package emailnorm canonicalizes email addresses for storage and lookup.
// Normalization is total: malformed input still maps to a deterministic
// string. Whether the address is syntactically valid is a validation concern,
// not a normalization one.
package emailnorm

import "strings"

// ProviderRule captures provider-specific equivalences applied to the local
// part after case folding. The table is deliberately small and swappable.
type ProviderRule struct {
	// StripDots removes '.' from the local part (gmail treats a.b == ab).
	StripDots bool
	// StripSubaddress drops everything from the first '+' onward.
	StripSubaddress bool
	// CanonicalDomain rewrites the domain to its canonical form.
	CanonicalDomain string
}

var providerRules = map[string]ProviderRule{
	"gmail.com":      {StripDots: true, StripSubaddress: true},
	"googlemail.com": {StripDots: true, StripSubaddress: true, CanonicalDomain: "gmail.com"},
}

// Normalize returns the canonical form of raw: trimmed, case-folded local and
// domain parts, provider rules applied. Idempotent for all inputs.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return strings.ToLower(s)
	}

	local := strings.ToLower(s[:at])
	dom := strings.ToLower(s[at+1:])

	if rule, ok := providerRules[dom]; ok {
		if rule.CanonicalDomain != "" {
			dom = rule.CanonicalDomain
		}
		if rule.StripSubaddress {
			if i := strings.IndexByte(local, '+'); i >= 0 {
				local = local[:i]
			}
		}
		if rule.StripDots {
			local = strings.ReplaceAll(local, ".", "")
		}
	}

	return local + "@" + dom
}
