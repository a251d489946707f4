package cmd

import (
	"context"
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const releaseRepository = "s0up4200/datacite"

var forceUpdate bool

// updateCmd represents the self-update command
var updateCmd = &cobra.Command{
	Use:               "update",
	Short:             "Update datacite to the latest release",
	Long:              `Check GitHub releases for a newer version of datacite and replace the running binary with it.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInit,
	RunE:              runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&forceUpdate, "force", false, "update even when running a development build")
}

// needsUpdate reports whether latest is newer than current. Development
// builds have no comparable version and only update when forced.
func needsUpdate(current, latest string, force bool) (bool, error) {
	latestVersion, err := semver.ParseTolerant(latest)
	if err != nil {
		return false, fmt.Errorf("invalid release version %q: %w", latest, err)
	}

	currentVersion, err := semver.ParseTolerant(current)
	if err != nil {
		if force {
			return true, nil
		}
		return false, fmt.Errorf("cannot compare development build %q with %s, use --force to update anyway", current, latestVersion)
	}

	return latestVersion.GT(currentVersion), nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseRepository))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", releaseRepository)
	}

	update, err := needsUpdate(version, latest.Version(), forceUpdate)
	if err != nil {
		return err
	}
	if !update {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Already running the latest version (%s)\n", version)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	logger.Info().
		Str("current", version).
		Str("latest", latest.Version()).
		Msg("Updating")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated to %s\n", latest.Version())
	return nil
}
