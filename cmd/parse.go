package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/djcass44/debian-changes/cmd/cache"
	"github.com/djcass44/debian-changes/pkg/changelog"
	"github.com/djcass44/debian-changes/pkg/debian"
	"github.com/djcass44/debian-changes/pkg/source"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "parse a changelog and print its entries",
	RunE:  parse,
}

const (
	flagFile   = "file"
	flagSince  = "since"
	flagUntil  = "until"
	flagCount  = "count"
	flagOffset = "offset"
	flagMatch  = "match"
	flagDist   = "dist"
	flagOutput = "output"
)

const (
	outputText = "text"
	outputJSON = "json"
)

func init() {
	parseCmd.Flags().StringP(flagFile, "f", "debian/changelog", "path or url of a changelog, compressed changelog or .deb package")
	parseCmd.Flags().String(flagSince, "", "only include entries newer than this version")
	parseCmd.Flags().String(flagUntil, "", "only include entries older than this version")
	parseCmd.Flags().IntP(flagCount, "n", 0, "number of entries to include (0 for all)")
	parseCmd.Flags().Int(flagOffset, 0, "number of entries to skip")
	parseCmd.Flags().String(flagMatch, "", "only include entries satisfying a relation, e.g. 'hello (>= 2.10)'")
	parseCmd.Flags().String(flagDist, "", "only include entries targeting this distribution")
	parseCmd.Flags().StringP(flagOutput, "o", outputText, "output format (text or json)")
	parseCmd.Flags().String(cache.FlagCacheDir, "", "cache directory (defaults to user cache dir)")

	_ = parseCmd.MarkFlagDirname(cache.FlagCacheDir)
}

func parse(cmd *cobra.Command, _ []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	uri, _ := cmd.Flags().GetString(flagFile)
	output, _ := cmd.Flags().GetString(flagOutput)
	cacheDir, _ := cmd.Flags().GetString(cache.FlagCacheDir)

	opts, err := selectOptions(cmd)
	if err != nil {
		return err
	}

	opener, err := source.NewOpener(cache.Dir(cacheDir))
	if err != nil {
		return err
	}
	text, err := opener.Open(cmd.Context(), uri)
	if err != nil {
		return fmt.Errorf("reading changelog: %w", err)
	}

	entries, err := changelog.Collect(changelog.Select(changelog.ParseLog(text), opts))
	if err != nil {
		log.Error(err, "failed to parse changelog", "uri", uri)
		var perr *changelog.ParseError
		if errors.As(err, &perr) {
			for _, msg := range perr.Messages() {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
		}
		return err
	}
	log.V(1).Info("parsed changelog", "uri", uri, "entries", len(entries))

	return writeEntries(cmd.OutOrStdout(), entries, output)
}

func selectOptions(cmd *cobra.Command) (changelog.Options, error) {
	since, _ := cmd.Flags().GetString(flagSince)
	until, _ := cmd.Flags().GetString(flagUntil)
	count, _ := cmd.Flags().GetInt(flagCount)
	offset, _ := cmd.Flags().GetInt(flagOffset)
	match, _ := cmd.Flags().GetString(flagMatch)
	dist, _ := cmd.Flags().GetString(flagDist)

	opts := changelog.Options{
		Distribution: debian.ParseReleaseName(dist),
		Offset:       offset,
		Count:        count,
	}
	if since != "" {
		opts.Since = debian.NewVersion(since)
	}
	if until != "" {
		opts.Until = debian.NewVersion(until)
	}
	if match != "" {
		rel, err := debian.ParseRelation(match)
		if err != nil {
			return opts, fmt.Errorf("parsing --%s: %w", flagMatch, err)
		}
		opts.Match = rel
	}
	return opts, nil
}

func writeEntries(w io.Writer, entries []changelog.Entry, output string) error {
	switch output {
	case outputJSON:
		if entries == nil {
			entries = []changelog.Entry{}
		}
		return writeJSON(w, entries)
	case outputText:
		items := make([]changelog.ChangeLogEntry, len(entries))
		for i := range entries {
			items[i] = entries[i]
		}
		return changelog.RenderLog(w, items)
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
