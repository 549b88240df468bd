package errors

import (
	"regexp"
	"strings"
)

// maxTagLength bounds wire tags; real tags are short identifiers.
const maxTagLength = 256

// prefixRegex matches a tag prefix such as "g" or "janusgraph".
var prefixRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.-]*$`)

// typeNameRegex matches the name half of a tag such as "Vertex" or "SubgraphStrategy".
var typeNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.$-]*$`)

// ValidatePrefix validates the prefix half of a wire tag.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidTag, "tag prefix cannot be empty")
	}
	if !prefixRegex.MatchString(prefix) {
		return New(ErrCodeInvalidTag, "invalid tag prefix: %q", prefix)
	}
	return nil
}

// ValidateTypeName validates the name half of a wire tag.
func ValidateTypeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTag, "type name cannot be empty")
	}
	if !typeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidTag, "invalid type name: %q", name)
	}
	return nil
}

// ValidateTag validates a full wire tag of the form "<prefix>:<Name>".
//
// Validation rules:
//   - Tag cannot be empty or longer than 256 bytes
//   - Exactly one colon separates prefix and name
//   - Both halves follow [ValidatePrefix] and [ValidateTypeName]
func ValidateTag(tag string) error {
	if tag == "" {
		return New(ErrCodeInvalidTag, "tag cannot be empty")
	}
	if len(tag) > maxTagLength {
		return New(ErrCodeInvalidTag, "tag too long (max %d characters)", maxTagLength)
	}

	prefix, name, ok := strings.Cut(tag, ":")
	if !ok {
		return New(ErrCodeInvalidTag, "tag %q has no prefix separator", tag)
	}
	if strings.Contains(name, ":") {
		return New(ErrCodeInvalidTag, "tag %q has more than one separator", tag)
	}
	if err := ValidatePrefix(prefix); err != nil {
		return err
	}
	return ValidateTypeName(name)
}
