// Package main provides the CLI entry point for xlsx2md.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/XieGR365/xlsx2md/internal/config"
	"github.com/XieGR365/xlsx2md/internal/logging"
	"github.com/XieGR365/xlsx2md/pkg/xlsx2md"
)

// version is set at build time via ldflags.
var version = "dev"

const usage = "Usage: xlsx2md <excel-file> <markdown-file>"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "xlsx2md <excel-file> <markdown-file>",
		Short: "Convert an Excel workbook to Markdown",
		Long: `xlsx2md writes every worksheet of a workbook as a Markdown section:
a "# <sheet>" heading followed by a pipe table whose first row is the header.
Sheets are separated by a horizontal rule.`,
		Version:      version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfgFile, args)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./xlsx2md.yaml or ~/.config/xlsx2md/xlsx2md.yaml)")

	return rootCmd
}

func run(stdout, stderr io.Writer, cfgFile string, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(stdout, usage)
		return nil
	}
	inputPath, outputPath := args[0], args[1]

	// A missing input is reported, not failed.
	if !xlsx2md.Exists(inputPath) {
		fmt.Fprintf(stdout, "File not found: %s\n", inputPath)
		return nil
	}

	cfg, used, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	if used != "" {
		logger.Debug("using config file", "path", used)
	}
	if dump, err := cfg.Dump(); err == nil {
		logger.Debug("effective configuration", "config", dump)
	}

	opts := xlsx2md.Options{
		EmptyMarker: cfg.EmptyMarker,
		Charset:     cfg.XLSCharset,
		Logger:      logger,
	}
	if err := xlsx2md.Convert(inputPath, outputPath, opts); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Fprintf(stdout, "Converted: %s -> %s\n", inputPath, outputPath)
	return nil
}
