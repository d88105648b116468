package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateChartType checks that kind names one of the supported charts.
func ValidateChartType(kind string) error {
	switch strings.ToLower(kind) {
	case "pie", "bar", "line":
		return nil
	case "":
		return New(ErrCodeInvalidChartType, "chart type cannot be empty")
	}
	return New(ErrCodeInvalidChartType, "invalid chart type: %q (must be pie, bar or line)", kind)
}

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{"svg": true, "json": true, "png": true, "pdf": true}

// ValidateFormat checks that a single artifact format is supported.
// Formats are case-sensitive.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks every format in formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// datasetNameRegex matches dataset names such as "orders-by-vendor" or "revenue_2024".
var datasetNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateDatasetName validates the name of a dataset inside a dashboard file.
func ValidateDatasetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDataset, "dataset name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidDataset, "dataset name too long (max 128 characters)")
	}
	if !datasetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidDataset, "invalid dataset name: %q", name)
	}
	return nil
}

// ValidatePath validates an output path written by the CLI.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// hexColorRegex matches #rgb, #rrggbb and #rrggbbaa colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// ValidateColor accepts hex colors and plain CSS color keywords.
func ValidateColor(c string) error {
	if hexColorRegex.MatchString(c) {
		return nil
	}
	if c != "" && strings.IndexFunc(c, func(r rune) bool { return !unicode.IsLetter(r) }) < 0 {
		return nil
	}
	return New(ErrCodeInvalidInput, "invalid color: %q", c)
}
