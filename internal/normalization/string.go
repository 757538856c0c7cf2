package normalization

import "strings"

func Trim(input string) string {
	return strings.TrimSpace(input)
}

// TrimPtr trims the pointee and collapses a blank optional field to absent.
func TrimPtr(input *string) *string {
	if input == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*input)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
