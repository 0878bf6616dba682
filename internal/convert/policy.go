package convert

import (
	"strings"

	"github.com/hlop3z/tzconv/internal/alerr"
)

// Policy decides how a naive timestamp that maps to several instants in the
// source zone is bound. Timestamps that map to no instant are always rejected.
type Policy string

const (
	// PolicyReject fails on ambiguous local times. This is the default.
	PolicyReject Policy = "reject"
	// PolicyEarlier binds an ambiguous local time to its first occurrence.
	PolicyEarlier Policy = "earlier"
	// PolicyLater binds an ambiguous local time to its second occurrence.
	PolicyLater Policy = "later"
)

// Policies lists the accepted policy names.
var Policies = []Policy{PolicyReject, PolicyEarlier, PolicyLater}

// ParsePolicy reads a policy name, case-insensitively. The empty string is
// PolicyReject.
func ParsePolicy(s string) (Policy, error) {
	if s == "" {
		return PolicyReject, nil
	}
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Policies {
		if p == known {
			return p, nil
		}
	}

	names := make([]string, len(Policies))
	for i, known := range Policies {
		names[i] = string(known)
	}
	return "", alerr.New(alerr.ErrInvalidPolicy, "invalid local time policy").
		WithInput(s).
		WithHelp("expected one of: " + strings.Join(names, ", ")).
		WithHelp(alerr.SuggestSimilar(s, names))
}

// String implements pflag.Value.
func (p *Policy) String() string {
	if *p == "" {
		return string(PolicyReject)
	}
	return string(*p)
}

// Set implements pflag.Value.
func (p *Policy) Set(s string) error {
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value.
func (p *Policy) Type() string {
	return "policy"
}
