package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateName validates a single nameplate entry.
// Roster lines are free-form text, so the rules are intentionally minimal:
//   - No empty names (blank lines are filtered before this point)
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	// Length is measured in runes, not bytes, so multibyte names are not
	// penalized for their encoding.
	if utf8.RuneCountInString(name) > 256 {
		return New(ErrCodeInvalidName, "name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates the output document path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 bytes (filesystems limit paths by bytes)
//   - No null bytes or control characters
//   - Must carry a .pdf extension
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidOutput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidOutput, "output path too long (max %d bytes)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidOutput, "output path contains invalid characters")
		}
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return New(ErrCodeInvalidOutput, "output path must end in .pdf: %q", path)
	}

	return nil
}
