package changelog

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/djcass44/debian-changes/pkg/debian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/haskell-regex-compat
var regexCompat string

func TestParseLog(t *testing.T) {
	t.Run("all entries are parsed in order", func(t *testing.T) {
		entries, err := Entries(regexCompat)
		require.NoError(t, err)
		require.Len(t, entries, 6)

		first := entries[0]
		assert.EqualValues(t, "haskell-regex-compat", first.Package)
		assert.EqualValues(t, "0.92-3+seereason1~jaunty4", first.Version.String())
		assert.EqualValues(t, []debian.ReleaseName{"jaunty-seereason"}, first.Distributions)
		assert.EqualValues(t, "low", first.Urgency)
		assert.EqualValues(t, "SeeReason Autobuilder <autobuilder@seereason.org>", first.Who)
		assert.EqualValues(t, "Fri, 25 Dec 2009 01:55:37 -0800", first.Date)

		versions := make([]string, len(entries))
		for i := range entries {
			versions[i] = entries[i].Version.String()
		}
		assert.EqualValues(t, []string{
			"0.92-3+seereason1~jaunty4",
			"0.92-3+seereason1~jaunty3",
			"0.92-3",
			"0.92-2",
			"0.92-1",
			"0.91-1",
		}, versions)

		assert.EqualValues(t, "  * Built from sid apt pool.\n\n\n  * Rebuilt with ghc 6.10.4.\n\n", entries[1].Details)
		assert.Contains(t, entries[2].Details, "Marco Túlio Gontijo e Silva")
		assert.EqualValues(t, "  * Rebuild against GHC 6.10.\n  - drop the obsolete patch\n --enable-profiling is passed to configure\n\n", entries[3].Details)
		assert.EqualValues(t, "Ian Lynagh (wibble) <igloo@debian.org>", entries[5].Who)
	})
	t.Run("entry count equals signature count", func(t *testing.T) {
		var signatures int
		for _, line := range strings.Split(regexCompat, "\n") {
			if strings.HasPrefix(line, " -- ") {
				signatures++
			}
		}
		entries, err := Entries(regexCompat)
		require.NoError(t, err)
		assert.Len(t, entries, signatures)
	})
	t.Run("empty string yields nothing", func(t *testing.T) {
		var count int
		for range ParseLog("") {
			count++
		}
		assert.Zero(t, count)

		entries, err := Entries("\n  \n")
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})
	t.Run("sequence stops at the first failure", func(t *testing.T) {
		text := "foo (2.0) unstable; urgency=low\n\n  * b\n\n -- A <a@b.c>  today\n\n" +
			"foo (1.5) unstable; urgency=low\n\n  * no signature here\n\n" +
			"foo (1.0) unstable; urgency=low\n\n  * a\n"

		var results []Result
		for r := range ParseLog(text) {
			results = append(results, r)
		}
		require.Len(t, results, 2)
		assert.Nil(t, results[0].Err)
		assert.EqualValues(t, "2.0", results[0].Entry.Version.String())

		require.NotNil(t, results[1].Err)
		assert.ErrorIs(t, results[1].Err, ErrMalformedEntry)
		assert.EqualValues(t, 7, results[1].Err.Line)
		assert.True(t, strings.HasPrefix(results[1].Err.Text, "foo (1.5)"))
		assert.NotEmpty(t, results[1].Err.Messages())
	})
	t.Run("errors are localised to the whole log", func(t *testing.T) {
		text := "foo (2.0) unstable; urgency=low\n -- A  today\n\nnot a header\n"
		_, err := Entries(text)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.EqualValues(t, 4, perr.Line)
	})
	t.Run("nothing is yielded after a failure", func(t *testing.T) {
		text := "foo (1.5) unstable urgency=low\n\n  * broken header\n\n -- A <a@b.c>  today\n\n" + regexCompat
		var results []Result
		for r := range ParseLog(text) {
			results = append(results, r)
		}
		require.Len(t, results, 1)
		assert.ErrorIs(t, results[0].Err, ErrMalformedEntry)
		assert.EqualValues(t, 1, results[0].Err.Line)
	})
	t.Run("an entry without a signature stops the sequence", func(t *testing.T) {
		text := "foo (1.5) unstable; urgency=low\n\n  * no signature here\n\n" + regexCompat
		var results []Result
		for r := range ParseLog(text) {
			results = append(results, r)
		}
		require.Len(t, results, 1)
		assert.ErrorIs(t, results[0].Err, ErrMalformedEntry)
		assert.EqualValues(t, 1, results[0].Err.Line)
		assert.True(t, strings.HasPrefix(results[0].Err.Text, "foo (1.5)"))

		entries, err := Entries(text)
		assert.ErrorIs(t, err, ErrMalformedEntry)
		assert.Empty(t, entries)
	})
	t.Run("the sequence can be ranged again", func(t *testing.T) {
		seq := ParseLog(regexCompat)
		a, err := Collect(seq)
		require.NoError(t, err)
		b, err := Collect(seq)
		require.NoError(t, err)
		assert.EqualValues(t, a, b)
	})
	t.Run("stopping early", func(t *testing.T) {
		var count int
		for range ParseLog(regexCompat) {
			count++
			break
		}
		assert.EqualValues(t, 1, count)
	})
}

func TestLatest(t *testing.T) {
	entry, err := Latest(regexCompat)
	require.NoError(t, err)
	assert.EqualValues(t, "0.92-3+seereason1~jaunty4", entry.Version.String())

	_, err = Latest("  \n")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Latest("garbage\n")
	assert.ErrorIs(t, err, ErrMalformedEntry)
}
