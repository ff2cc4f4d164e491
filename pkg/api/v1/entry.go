package v1

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/djcass44/debian-changes/pkg/airutil"
	"github.com/djcass44/debian-changes/pkg/changelog"
	"github.com/djcass44/debian-changes/pkg/debian"
	"k8s.io/apimachinery/pkg/util/yaml"
)

const (
	DefaultDistribution = "UNRELEASED"
	DefaultUrgency      = "medium"
)

var (
	ErrMissingPackage = errors.New("spec.package must be set")
	ErrMissingVersion = errors.New("spec.version must be set")
	ErrMissingChanges = errors.New("spec.changes must contain at least one change")
)

// Read decodes a YAML or JSON manifest.
func Read(r io.Reader) (*ChangelogEntry, error) {
	var e ChangelogEntry
	if err := yaml.NewYAMLOrJSONDecoder(r, 4).Decode(&e); err != nil {
		return nil, err
	}
	if e.Kind != "" && e.Kind != Kind {
		return nil, fmt.Errorf("unexpected kind: %s", e.Kind)
	}
	return &e, nil
}

// ReadFile decodes the manifest at path.
func ReadFile(path string) (*ChangelogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// ToEntry expands environment variables in the manifest and converts it
// into a changelog entry. The time is used when no date is given.
func (e *ChangelogEntry) ToEntry(now time.Time) (changelog.Entry, error) {
	spec := e.Spec
	pkg := strings.TrimSpace(airutil.ExpandEnv(spec.Package))
	if pkg == "" {
		return changelog.Entry{}, ErrMissingPackage
	}
	ver := strings.TrimSpace(airutil.ExpandEnv(spec.Version))
	if ver == "" {
		return changelog.Entry{}, ErrMissingVersion
	}
	v, err := debian.ParseVersion(ver)
	if err != nil {
		return changelog.Entry{}, fmt.Errorf("spec.version: %w", err)
	}
	if len(spec.Changes) == 0 {
		return changelog.Entry{}, ErrMissingChanges
	}

	var dists []debian.ReleaseName
	for _, d := range spec.Distributions {
		dists = append(dists, debian.ParseReleaseNames(airutil.ExpandEnv(d))...)
	}
	if len(dists) == 0 {
		dists = []debian.ReleaseName{DefaultDistribution}
	}

	urgency := airutil.ExpandEnv(spec.Urgency)
	if urgency == "" {
		urgency = DefaultUrgency
	}

	changes := make([]string, len(spec.Changes))
	for i, c := range spec.Changes {
		changes[i] = airutil.ExpandEnv(c)
	}

	who := airutil.ExpandEnv(spec.Maintainer)
	if who == "" {
		who = airutil.Maintainer()
	}

	date := airutil.ExpandEnv(spec.Date)
	if date == "" {
		date = now.Format(time.RFC1123Z)
	}

	return changelog.Entry{
		Package:       pkg,
		Version:       v,
		Distributions: dists,
		Urgency:       urgency,
		Details:       changelog.FormatDetails(changes),
		Who:           who,
		Date:          date,
	}, nil
}
