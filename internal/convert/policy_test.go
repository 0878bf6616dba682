package convert

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/hlop3z/tzconv/internal/alerr"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input string
		want  Policy
		ok    bool
	}{
		{"", PolicyReject, true},
		{"reject", PolicyReject, true},
		{"Earlier", PolicyEarlier, true},
		{" later ", PolicyLater, true},
		{"latest", "", false},
		{"first", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if tt.ok != (err == nil) {
				t.Fatalf("ParsePolicy(%q) error = %v, want ok=%v", tt.input, err, tt.ok)
			}
			if !tt.ok {
				if !alerr.Is(err, alerr.ErrInvalidPolicy) {
					t.Errorf("code = %v, want %v", alerr.GetErrorCode(err), alerr.ErrInvalidPolicy)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPolicyFlag(t *testing.T) {
	var p Policy
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&p, "ambiguous", "policy")

	if got := fs.Lookup("ambiguous").DefValue; got != "reject" {
		t.Errorf("DefValue = %q, want reject", got)
	}

	if err := fs.Parse([]string{"--ambiguous", "later"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p != PolicyLater {
		t.Errorf("policy = %q, want later", p)
	}

	if err := fs.Parse([]string{"--ambiguous", "sometimes"}); err == nil {
		t.Error("expected error for invalid policy")
	}
	if p.Type() != "policy" {
		t.Errorf("Type() = %q", p.Type())
	}
}
