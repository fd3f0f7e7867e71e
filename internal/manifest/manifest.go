// Package manifest parses and validates pip-style requirements manifests.
//
// A manifest is a line-oriented text file: lines beginning with '#' are
// comments, blank lines are ignored, and every other line names a package
// optionally followed by extras in brackets and a comma-separated list of
// version specifiers, e.g.
//
//	streamlit>=1.32
//	geopy[timezone]==2.4.1
//	folium>=0.15,<1.0   # pinned below 1.0
package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Operator is a version comparison operator in a specifier.
type Operator string

// Specifier operators, longest first so the parser can match greedily.
const (
	OpArbitraryEq Operator = "==="
	OpEq          Operator = "=="
	OpNe          Operator = "!="
	OpGe          Operator = ">="
	OpLe          Operator = "<="
	OpCompatible  Operator = "~="
	OpGt          Operator = ">"
	OpLt          Operator = "<"
)

// operators in match order. Two-character operators must precede their
// one-character prefixes.
var operators = []Operator{OpArbitraryEq, OpEq, OpNe, OpGe, OpLe, OpCompatible, OpGt, OpLt}

// Specifier is a single version constraint, e.g. ">=1.32".
type Specifier struct {
	Op      Operator `json:"op"`
	Version string   `json:"version"`
}

// String returns the canonical text form of the specifier.
func (s Specifier) String() string {
	return string(s.Op) + s.Version
}

// Requirement is one parsed manifest line.
type Requirement struct {
	// Name is the package name as written.
	Name string `json:"name"`
	// Extras lists the optional feature names from the bracket suffix.
	Extras []string `json:"extras,omitempty"`
	// Specifiers holds the version constraints, in file order.
	Specifiers []Specifier `json:"specifiers,omitempty"`
	// Line is the 1-based line number in the source file.
	Line int `json:"line"`
	// Raw is the original line text, unmodified.
	Raw string `json:"raw"`
}

// File is a parsed manifest.
type File struct {
	// Path is the source path, or empty when parsed from a reader.
	Path string
	// Requirements holds the parsed requirement lines, in file order.
	Requirements []Requirement
}

// namePattern matches a valid package name: it must start and end with an
// alphanumeric character, with dots, hyphens, and underscores allowed inside.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// ValidName reports whether name is a well-formed package name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// separatorRuns collapses for Normalize.
var separatorRuns = regexp.MustCompile(`[-_.]+`)

// Normalize returns the canonical comparison form of a package name:
// lowercased with runs of '-', '_', and '.' collapsed to a single hyphen.
func Normalize(name string) string {
	return strings.ToLower(separatorRuns.ReplaceAllString(name, "-"))
}

// String returns the canonical text form of the requirement.
func (r Requirement) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	if len(r.Extras) > 0 {
		sb.WriteString("[")
		sb.WriteString(strings.Join(r.Extras, ","))
		sb.WriteString("]")
	}
	for i, s := range r.Specifiers {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Matches reports whether the concrete version satisfies every specifier.
// Versions are coerced leniently, so two-segment versions like "1.32" work.
func (r Requirement) Matches(version string) (bool, error) {
	for _, s := range r.Specifiers {
		ok, err := s.matches(version)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// matches checks a single specifier against a concrete version.
func (s Specifier) matches(version string) (bool, error) {
	if s.Op == OpArbitraryEq {
		// "===" is arbitrary string equality, no version semantics at all.
		return strings.TrimSpace(version) == s.Version, nil
	}

	if s.Op == OpEq && !strings.HasSuffix(s.Version, ".*") {
		// A plain "==" pins exactly. Coercion still applies, so "==1.32"
		// matches "1.32.0" but never "1.32.5".
		want, err := semver.NewVersion(s.Version)
		if err != nil {
			return false, fmt.Errorf("specifier %q: %w", s.String(), err)
		}
		got, err := semver.NewVersion(version)
		if err != nil {
			return false, fmt.Errorf("version %q: %w", version, err)
		}
		return want.Equal(got), nil
	}

	expr, err := s.constraintExpr()
	if err != nil {
		return false, err
	}
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return false, fmt.Errorf("specifier %q: %w", s.String(), err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("version %q: %w", version, err)
	}
	return c.Check(v), nil
}

// constraintExpr translates the specifier into a semver constraint string.
func (s Specifier) constraintExpr() (string, error) {
	switch s.Op {
	case OpEq:
		// Only wildcard pins like "==1.2.*" reach here; they are range
		// constraints. Exact pins are handled in matches.
		return strings.TrimSuffix(s.Version, ".*") + ".x", nil
	case OpNe, OpGe, OpLe, OpGt, OpLt:
		return string(s.Op) + s.Version, nil
	case OpCompatible:
		return compatibleRange(s.Version)
	default:
		return "", fmt.Errorf("unsupported operator %q", s.Op)
	}
}

// compatibleRange expands "~=" to its equivalent pair of constraints:
// ~=2.4.1 means >=2.4.1 <2.5.0, and ~=1.4 means >=1.4 <2.0.
func compatibleRange(version string) (string, error) {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("~= requires at least two version segments, got %q", version)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return "", fmt.Errorf("~=%s: %w", version, err)
	}
	var upper string
	if len(parts) == 2 {
		upper = fmt.Sprintf("%d.0.0", v.Major()+1)
	} else {
		upper = fmt.Sprintf("%d.%d.0", v.Major(), v.Minor()+1)
	}
	return fmt.Sprintf(">=%s, <%s", version, upper), nil
}
