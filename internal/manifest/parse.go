package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/noshapp/nosh/internal/errors"
)

// ParseFile reads and parses the manifest at path.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ManifestNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrManifest, fmt.Sprintf("failed to open manifest: %s", path))
	}
	defer f.Close()

	return parse(f, path)
}

// Parse reads a manifest from r. The returned File preserves requirement
// order; comment-only and blank input yields a valid, empty File.
func Parse(r io.Reader) (*File, error) {
	return parse(r, "")
}

func parse(r io.Reader, path string) (*File, error) {
	file := &File{Path: path}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSuffix(scanner.Text(), "\r")

		line := stripComment(raw)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		req, err := parseRequirement(line, lineNo)
		if err != nil {
			return nil, errors.ManifestSyntaxError(pathForError(file), lineNo, err.Error())
		}
		req.Raw = raw
		file.Requirements = append(file.Requirements, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifest, "failed to read manifest")
	}

	return file, nil
}

func pathForError(f *File) string {
	if f.Path != "" {
		return f.Path
	}
	return "manifest"
}

// stripComment removes a trailing comment. A '#' starts a comment when it is
// the first character or preceded by whitespace; "pkg#name" is not a comment.
func stripComment(line string) string {
	for i, ch := range line {
		if ch != '#' {
			continue
		}
		if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
			return line[:i]
		}
	}
	return line
}

// parseRequirement parses a single non-blank, non-comment manifest line.
func parseRequirement(line string, lineNo int) (Requirement, error) {
	req := Requirement{Line: lineNo}

	// Package name runs up to the first character that cannot be part of one.
	nameEnd := len(line)
	for i, ch := range line {
		if isNameChar(ch) {
			continue
		}
		nameEnd = i
		break
	}
	req.Name = line[:nameEnd]
	if req.Name == "" {
		return req, fmt.Errorf("missing package name")
	}
	if !ValidName(req.Name) {
		return req, fmt.Errorf("invalid package name %q", req.Name)
	}

	rest := strings.TrimSpace(line[nameEnd:])

	// Optional extras: comma-separated names in brackets.
	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return req, fmt.Errorf("unterminated extras bracket")
		}
		for _, extra := range strings.Split(rest[1:end], ",") {
			extra = strings.TrimSpace(extra)
			if extra == "" || !ValidName(extra) {
				return req, fmt.Errorf("invalid extra name %q", extra)
			}
			req.Extras = append(req.Extras, extra)
		}
		rest = strings.TrimSpace(rest[end+1:])
	}

	if rest == "" {
		return req, nil
	}

	specs, err := parseSpecifiers(rest)
	if err != nil {
		return req, err
	}
	req.Specifiers = specs
	return req, nil
}

func isNameChar(ch rune) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	case ch == '.' || ch == '-' || ch == '_':
		return true
	}
	return false
}

// parseSpecifiers parses a comma-separated specifier list like ">=0.15,<1.0".
func parseSpecifiers(s string) ([]Specifier, error) {
	var specs []Specifier
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty specifier in list %q", s)
		}

		spec, err := parseSpecifier(part)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseSpecifier(s string) (Specifier, error) {
	for _, op := range operators {
		if !strings.HasPrefix(s, string(op)) {
			continue
		}
		version := strings.TrimSpace(s[len(op):])
		if version == "" {
			return Specifier{}, fmt.Errorf("operator %q without a version", op)
		}
		if strings.ContainsAny(version, " \t") {
			return Specifier{}, fmt.Errorf("invalid version %q", version)
		}
		return Specifier{Op: op, Version: version}, nil
	}
	return Specifier{}, fmt.Errorf("expected a version specifier, got %q", s)
}
