package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// GUIDSuite tests the lexical identifier check.
type GUIDSuite struct {
	suite.Suite
}

func TestGUIDSuite(t *testing.T) {
	suite.Run(t, new(GUIDSuite))
}

func (s *GUIDSuite) TestAcceptsCanonicalShapes() {
	valid := []string{
		"05024756-765e-41a9-89d7-1407436d9a58",
		"00000000-0000-0000-0000-000000000000",
		"FFFFFFFF-FFFF-FFFF-FFFF-FFFFFFFFFFFF",
		"AbCdEf01-2345-6789-abcd-Ef0123456789",
	}
	for _, v := range valid {
		s.True(IsValidGUID(v), "expected %q to be accepted", v)
	}
}

func (s *GUIDSuite) TestRejectsEverythingElse() {
	invalid := []string{
		"",
		"invalid-guid",
		"05024756765e41a989d71407436d9a58",              // no hyphens
		"05024756-765e-41a9-89d7-1407436d9a5",           // 35 chars
		"05024756-765e-41a9-89d7-1407436d9a589",         // 37 chars
		"g5024756-765e-41a9-89d7-1407436d9a58",          // non-hex digit
		"05024756_765e_41a9_89d7_1407436d9a58",          // wrong separator
		"0502475-6765e-41a9-89d7-1407436d9a58",          // wrong grouping
		"{05024756-765e-41a9-89d7-1407436d9a58}",        // braced form
		"urn:uuid:05024756-765e-41a9-89d7-1407436d9a58", // urn form
		" 05024756-765e-41a9-89d7-1407436d9a58",         // leading space
		"05024756-765e-41a9-89d7-1407436d9a58\n",        // trailing newline
		strings.Repeat("0", 36),                         // right length, no hyphens
	}
	for _, v := range invalid {
		s.False(IsValidGUID(v), "expected %q to be rejected", v)
	}
}
