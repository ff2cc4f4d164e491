package airutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("DCL_TEST_VERSION", "1.2-3")

	assert.EqualValues(t, "hello (1.2-3)", ExpandEnv("hello (${DCL_TEST_VERSION})"))
	assert.EqualValues(t, "1.0", ExpandEnv("${DCL_TEST_MISSING:-1.0}"))
	assert.EqualValues(t, "no variables", ExpandEnv("no variables"))
}

func TestMaintainer(t *testing.T) {
	var cases = []struct {
		name  string
		email string
		out   string
	}{
		{"Jane Doe", "jane@example.org", "Jane Doe <jane@example.org>"},
		{"", "jane@example.org", "<jane@example.org>"},
		{"Jane Doe", "", "Jane Doe"},
		{"", "", ""},
	}
	for _, tt := range cases {
		t.Run(tt.out, func(t *testing.T) {
			t.Setenv(EnvFullName, tt.name)
			t.Setenv(EnvEmail, tt.email)
			assert.EqualValues(t, tt.out, Maintainer())
		})
	}
}
