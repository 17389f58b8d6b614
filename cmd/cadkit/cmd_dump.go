package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/cadkit/dxfreader"
	"github.com/dhamidi/cadkit/format"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Read a DXF file and print the reconstructed document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := dumpFormat
			if name == "" {
				name = cfg.Output.Format
			}
			enc, err := format.New(name, os.Stdout)
			if err != nil {
				return err
			}

			doc, err := dxfreader.ParseFile(args[0])
			if err != nil {
				return err
			}

			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("failed to encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "", "output format ("+strings.Join(format.Names(), ", ")+")")

	return cmd
}
