package debian

import (
	"cmp"
	"fmt"
	"strings"

	"pault.ag/go/debian/version"
)

// NewVersion wraps s as a Version. It never fails: strings that dpkg would
// reject are kept and ordered before every valid version.
func NewVersion(s string) Version {
	v := Version{raw: s}
	if pv, err := version.Parse(s); err == nil {
		v.parsed = &pv
	}
	return v
}

// ParseVersion is the strict form of NewVersion and returns an error if s
// is not a valid Debian version.
func ParseVersion(s string) (Version, error) {
	pv, err := version.Parse(s)
	if err != nil {
		return Version{}, fmt.Errorf("parsing version '%s': %w", s, err)
	}
	return Version{raw: s, parsed: &pv}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	return v.raw
}

// IsValid reports whether the version follows the dpkg version syntax.
func (v Version) IsValid() bool {
	return v.parsed != nil
}

func (v Version) IsZero() bool {
	return v.raw == "" && v.parsed == nil
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal
// to or after other.
func (v Version) Compare(other Version) int {
	switch {
	case v.parsed != nil && other.parsed != nil:
		return version.Compare(*v.parsed, *other.parsed)
	case v.parsed == nil && other.parsed == nil:
		return cmp.Compare(v.raw, other.raw)
	case v.parsed == nil:
		return -1
	default:
		return 1
	}
}

func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.raw), nil
}

func (v *Version) UnmarshalText(data []byte) error {
	*v = NewVersion(string(data))
	return nil
}

// ParseReleaseName converts a single distribution token.
func ParseReleaseName(s string) ReleaseName {
	return ReleaseName(strings.TrimSpace(s))
}

// ParseReleaseNames splits a whitespace separated list of distributions,
// keeping their order.
func ParseReleaseNames(s string) []ReleaseName {
	fields := strings.Fields(s)
	out := make([]ReleaseName, len(fields))
	for i := range fields {
		out[i] = ReleaseName(fields[i])
	}
	return out
}

func (r ReleaseName) String() string {
	return string(r)
}

func (r ReleaseName) Compare(other ReleaseName) int {
	return cmp.Compare(r, other)
}
