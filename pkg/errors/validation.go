package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// identifierRegex matches OpenSCAD identifiers, including special variables ($fn).
var identifierRegex = regexp.MustCompile(`^\$?[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateIdentifier validates a name used on the left of an assignment.
func ValidateIdentifier(name string) error {
	if name == "" {
		return New(ErrCodeInvalidIdentifier, "identifier cannot be empty")
	}
	if !identifierRegex.MatchString(name) {
		return New(ErrCodeInvalidIdentifier, "invalid identifier: %q", name)
	}
	return nil
}

// ValidateOutputName validates the base name of a generated .scad file.
// It ensures the name is a simple basename without path components.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 255 characters
//   - No control characters
//   - No path separators or traversal sequences
//   - No hidden files
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "output name cannot be empty")
	}

	if len(name) > 255 {
		return New(ErrCodeInvalidPath, "output name too long (max 255 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "output name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "output name cannot contain path traversal sequences (..)")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "output name cannot be a hidden file")
	}

	return nil
}
