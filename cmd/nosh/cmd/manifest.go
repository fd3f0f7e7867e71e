package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noshapp/nosh/internal/manifest"
	"github.com/noshapp/nosh/internal/registry"
)

// manifestCmd groups the requirements manifest subcommands.
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Check and resolve requirements manifests",
	Long: `Work with pip-style requirements manifests, one requirement per
line: a package name, optional extras in brackets, and optional
version specifiers.

  streamlit>=1.28
  requests[socks]>=2.31,<3
  folium==0.15.*  # pinned minor`,
}

// manifestCheckCmd validates a manifest file.
var manifestCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a manifest and report problems",
	Long: `Parse a requirements manifest and report syntax errors, duplicate
entries, and conflicting pins.

Examples:
  nosh manifest check requirements.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runManifestCheck,
}

// manifestResolveCmd resolves each requirement against the package index.
var manifestResolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Resolve each requirement against the package index",
	Long: `Parse a requirements manifest and resolve each requirement to the
highest released version satisfying its specifiers.

Examples:
  nosh manifest resolve requirements.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runManifestResolve,
}

func init() {
	rootCmd.AddCommand(manifestCmd)
	manifestCmd.AddCommand(manifestCheckCmd)
	manifestCmd.AddCommand(manifestResolveCmd)
}

// runManifestCheck handles the manifest check command.
func runManifestCheck(cmd *cobra.Command, args []string) error {
	file, err := manifest.ParseFile(args[0])
	if err != nil {
		return err
	}

	findings := manifest.Lint(file)
	for _, f := range findings {
		cmd.Println(f.String())
	}
	if len(findings) > 0 {
		return fmt.Errorf("%d problem(s) in %s", len(findings), args[0])
	}

	cmd.Println(fmt.Sprintf("%s: %d requirement(s), no problems", args[0], len(file.Requirements)))
	return nil
}

// runManifestResolve handles the manifest resolve command.
func runManifestResolve(cmd *cobra.Command, args []string) error {
	file, err := manifest.ParseFile(args[0])
	if err != nil {
		return err
	}

	client := registry.NewClient(fmt.Sprintf("nosh/%s", Version))
	failed := 0
	for _, req := range file.Requirements {
		version, err := client.Resolve(cmd.Context(), req)
		if err != nil {
			failed++
			cmd.Println(fmt.Sprintf("%-30s ERROR: %v", req.String(), err))
			continue
		}
		cmd.Println(fmt.Sprintf("%-30s -> %s", req.String(), version))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d requirement(s) failed to resolve", failed, len(file.Requirements))
	}
	return nil
}
