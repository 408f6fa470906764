package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubsync/internal/snapshot"
)

var cslCmd = &cobra.Command{
	Use:   "csl [snapshot]",
	Short: "Convert a publications snapshot to CSL-YAML",
	Long: `csl reads a snapshot written by pubsync (default: the --out path) and
prints it as a CSL-YAML bibliography for Pandoc or a reference manager.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCSL,
}

func init() {
	cslCmd.Flags().String("dest", "", "write CSL-YAML to this file instead of stdout")

	rootCmd.AddCommand(cslCmd)
}

func runCSL(cmd *cobra.Command, args []string) (err error) {
	path := viper.GetString("out")
	if len(args) == 1 {
		path = args[0]
	}
	snap, err := snapshot.Read(path)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	dest, _ := cmd.Flags().GetString("dest")
	if dest != "" {
		f, createErr := os.Create(dest)
		if createErr != nil {
			return fmt.Errorf("creating %s: %w", dest, createErr)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("closing %s: %w", dest, cerr)
			}
		}()
		w = f
	}
	return snapshot.FormatCSL(snap, w)
}
