package main

import (
	"github.com/spf13/cobra"

	"fex/internal/config"
)

var (
	flagSource     string
	flagDest       string
	flagExtensions string
	flagOverwrite  bool
	flagPreserve   bool
	flagDryRun     bool
	flagVerbose    bool
	flagPlain      bool
)

// rootCmd is the base command for the fex CLI.
var rootCmd = &cobra.Command{
	Use:   "fex",
	Short: "Copy files by extension from one directory tree to another",
	Long: `fex walks a source directory, collects every file whose extension matches
a requested set, and copies the matches into a destination directory. The
destination can mirror the source layout or flatten everything into a single
folder; existing files are skipped unless overwriting is requested.

Settings missing from flags and FEX_* environment variables are collected
interactively when fex runs in a terminal.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := config.Options{
			Source:       flagSource,
			Dest:         flagDest,
			Extensions:   flagExtensions,
			Overwrite:    flagOverwrite,
			OverwriteSet: cmd.Flags().Changed("overwrite"),
			Preserve:     flagPreserve,
			PreserveSet:  cmd.Flags().Changed("preserve"),
			DryRun:       flagDryRun,
			Verbose:      flagVerbose,
			Plain:        flagPlain,
		}
		opts.ApplyEnv()

		return run(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagSource, "source", "s", "", "source directory to scan")
	rootCmd.Flags().StringVarP(&flagDest, "dest", "d", "", "destination directory for the copies")
	rootCmd.Flags().StringVarP(&flagExtensions, "extensions", "e", "", "comma-separated file extensions, e.g. .pdf,.jpg")
	rootCmd.Flags().BoolVarP(&flagOverwrite, "overwrite", "o", false, "overwrite files that already exist in the destination")
	rootCmd.Flags().BoolVarP(&flagPreserve, "preserve", "p", false, "preserve the source folder structure in the destination")
	rootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "list what would be copied without copying anything")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose diagnostics")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "disable the interactive interface")
}
