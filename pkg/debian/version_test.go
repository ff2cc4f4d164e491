package debian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_Compare(t *testing.T) {
	var cases = []struct {
		a, b string
		out  int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.1", -1},
		{"1.0-1", "1.0~rc1-1", 1},
		{"1:0.1", "2.0", 1},
		{"0.92-3+seereason1~jaunty4", "0.92-3+seereason1~jaunty3", 1},
		{"not a version", "0.1", -1},
		{"0.1", "not a version", 1},
		{"abc", "abd", -1},
	}

	for _, tt := range cases {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.EqualValues(t, tt.out, NewVersion(tt.a).Compare(NewVersion(tt.b)))
		})
	}
}

func TestNewVersion(t *testing.T) {
	t.Run("raw text is kept", func(t *testing.T) {
		v := NewVersion("0:1.0-1")
		assert.True(t, v.IsValid())
		assert.EqualValues(t, "0:1.0-1", v.String())
		assert.True(t, v.Equal(NewVersion("1.0-1")))
	})
	t.Run("invalid versions are kept", func(t *testing.T) {
		v := NewVersion("not a version")
		assert.False(t, v.IsValid())
		assert.False(t, v.IsZero())
		assert.EqualValues(t, "not a version", v.String())
	})
	t.Run("zero value", func(t *testing.T) {
		assert.True(t, Version{}.IsZero())
	})
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("0.92-3+seereason1~jaunty4")
	require.NoError(t, err)
	assert.EqualValues(t, "0.92-3+seereason1~jaunty4", v.String())

	_, err = ParseVersion("")
	assert.Error(t, err)
}

func TestVersion_Text(t *testing.T) {
	v := NewVersion("1.2-3")
	data, err := v.MarshalText()
	require.NoError(t, err)
	assert.EqualValues(t, "1.2-3", string(data))

	var out Version
	require.NoError(t, out.UnmarshalText(data))
	assert.True(t, v.Equal(out))
}

func TestParseReleaseNames(t *testing.T) {
	assert.EqualValues(t, []ReleaseName{"unstable", "experimental"}, ParseReleaseNames(" unstable\texperimental "))
	assert.Empty(t, ParseReleaseNames("   "))
	assert.EqualValues(t, -1, ReleaseName("jaunty").Compare("karmic"))
}
