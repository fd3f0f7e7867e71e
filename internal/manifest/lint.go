package manifest

import (
	"fmt"
)

// Finding is a single lint result for a manifest.
type Finding struct {
	// Line is the 1-based line number the finding refers to.
	Line int
	// Requirement is the canonical form of the offending requirement.
	Requirement string
	// Message describes the problem.
	Message string
}

// String formats the finding as "line N: <req>: <message>".
func (f Finding) String() string {
	return fmt.Sprintf("line %d: %s: %s", f.Line, f.Requirement, f.Message)
}

// Lint checks a parsed manifest for problems the parser alone cannot reject:
// duplicate package names and requirements whose own pins conflict.
// It returns every finding rather than stopping at the first.
func Lint(file *File) []Finding {
	var findings []Finding

	seen := make(map[string]int) // normalized name -> first line
	for _, req := range file.Requirements {
		norm := Normalize(req.Name)
		if first, ok := seen[norm]; ok {
			findings = append(findings, Finding{
				Line:        req.Line,
				Requirement: req.String(),
				Message:     fmt.Sprintf("duplicate of %q on line %d", req.Name, first),
			})
		} else {
			seen[norm] = req.Line
		}

		findings = append(findings, lintSpecifiers(req)...)
	}

	return findings
}

// lintSpecifiers flags contradictory pins within one requirement.
func lintSpecifiers(req Requirement) []Finding {
	var pins []string
	for _, s := range req.Specifiers {
		if s.Op == OpEq || s.Op == OpArbitraryEq {
			pins = append(pins, s.Version)
		}
	}
	if len(pins) < 2 {
		return nil
	}

	for _, pin := range pins[1:] {
		if pin != pins[0] {
			return []Finding{{
				Line:        req.Line,
				Requirement: req.String(),
				Message:     fmt.Sprintf("conflicting pins %q and %q", pins[0], pin),
			}}
		}
	}
	return nil
}
