package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	dclv1 "github.com/djcass44/debian-changes/pkg/api/v1"
	"github.com/djcass44/debian-changes/pkg/changelog"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "add an entry to the top of a changelog",
	RunE:  newEntry,
}

const (
	flagConfig    = "config"
	flagChangelog = "changelog"
	flagForce     = "force"
)

// stdio selects stdout instead of a changelog file.
const stdio = "-"

var ErrNotNewer = errors.New("new entry must have a higher version than the latest entry")

func init() {
	newCmd.Flags().StringP(flagConfig, "c", "", "path to a changelog entry manifest")
	newCmd.Flags().String(flagChangelog, "debian/changelog", "changelog to update, or '-' to print the entry")
	newCmd.Flags().Bool(flagForce, false, "add the entry even if its version is not newer than the latest entry")

	_ = newCmd.MarkFlagRequired(flagConfig)
	_ = newCmd.MarkFlagFilename(flagConfig, ".yaml", ".yml", ".json")
}

func newEntry(cmd *cobra.Command, _ []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	configPath, _ := cmd.Flags().GetString(flagConfig)
	changelogPath, _ := cmd.Flags().GetString(flagChangelog)
	force, _ := cmd.Flags().GetBool(flagForce)

	manifest, err := dclv1.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}
	entry, err := manifest.ToEntry(time.Now())
	if err != nil {
		return err
	}
	log.V(1).Info("rendered entry", "package", entry.Package, "version", entry.Version.String())

	if changelogPath == stdio {
		_, err := io.WriteString(cmd.OutOrStdout(), entry.String())
		return err
	}
	if err := prependEntry(changelogPath, entry, force); err != nil {
		return err
	}
	log.Info("updated changelog", "path", changelogPath, "version", entry.Version.String())
	return nil
}

// prependEntry writes entry to the top of the changelog at path, creating
// it if it does not exist.
func prependEntry(path string, entry changelog.Entry, force bool) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	// keep the permissions of an existing changelog
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	latest, err := changelog.Latest(string(existing))
	switch {
	case errors.Is(err, changelog.ErrEmpty):
	case err != nil:
		return fmt.Errorf("reading latest entry of %s: %w", path, err)
	case !force && entry.Version.Compare(latest.Version) <= 0:
		return fmt.Errorf("%w: %s <= %s", ErrNotNewer, entry.Version.String(), latest.Version.String())
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	// write next to the original so the rename stays on one filesystem
	tmp, err := os.CreateTemp(filepath.Dir(path), ".changelog-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.WriteString(tmp, entry.String()); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write(existing); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
