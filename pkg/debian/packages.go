package debian

import (
	"errors"
	"regexp"
	"strings"

	version "github.com/knqyf263/go-deb-version"
)

var regexpParseVersion = regexp.MustCompile(`\((?P<constraint>\W{1,2})?(?P<version>.*)\)`)
var regexpName = regexp.MustCompile(`^[^([]+`)

// ParseRelation parses a relationship as used in the "Depends" section,
// e.g. "foo | bar (>= 1.0)".
//
// https://www.debian.org/doc/debian-policy/ch-relationships.html
func ParseRelation(s string) (*Relation, error) {
	matches := regexpName.FindStringSubmatch(s)
	if len(matches) == 0 || strings.TrimSpace(matches[0]) == "" {
		return nil, errors.New("unable to extract package names")
	}
	// extract the possible names
	names := strings.Split(matches[0], "|")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	// extract the version and constraint if they're present
	matches = regexpParseVersion.FindStringSubmatch(strings.TrimPrefix(s, matches[0]))
	var v string
	var constraint string
	if len(matches) >= 2 {
		v = strings.TrimSpace(matches[regexpParseVersion.SubexpIndex("version")])
		constraint = strings.TrimSpace(matches[regexpParseVersion.SubexpIndex("constraint")])
	}
	return &Relation{
		Names:      names,
		Version:    v,
		Constraint: constraint,
	}, nil
}

// Satisfies reports whether a package with the given name and version
// fulfils the relation.
func (r *Relation) Satisfies(name, v string) bool {
	for _, n := range r.Names {
		if n == name {
			return r.Matches(v)
		}
	}
	return false
}

// Matches checks the version constraint of the relation against s1.
func (r *Relation) Matches(s1 string) bool {
	// if there's a version missing, match
	// anything
	if s1 == "" || r.Version == "" {
		return true
	}
	v1, err := version.NewVersion(s1)
	if err != nil {
		return false
	}
	v2, err := version.NewVersion(r.Version)
	if err != nil {
		return false
	}
	switch r.Constraint {
	case ">>", ">":
		return v1.GreaterThan(v2)
	case "<<", "<":
		return v1.LessThan(v2)
	case "=":
		return v1.Equal(v2)
	case ">=":
		return v1.GreaterThan(v2) || v1.Equal(v2)
	case "<=":
		return v1.LessThan(v2) || v1.Equal(v2)
	default:
		return true
	}
}
