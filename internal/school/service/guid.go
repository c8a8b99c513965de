package service

import "regexp"

// guidPattern is the canonical UUID textual layout: 8-4-4-4-12 hex groups,
// hyphen separated, either letter case.
var guidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidGUID reports whether s has the canonical UUID textual shape. It is a
// lexical check only; it does not normalize case or accept the alternate
// forms (braced, urn-prefixed, unhyphenated) that uuid parsers tolerate.
func IsValidGUID(s string) bool {
	return guidPattern.MatchString(s)
}
