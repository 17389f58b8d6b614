package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxfreader"
	"github.com/spf13/cobra"
)

func newTablesCmd() *cobra.Command {
	var tableName string

	cmd := &cobra.Command{
		Use:   "tables <file>",
		Short: "List the table entries of a DXF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := dxfreader.ParseFile(args[0])
			if err != nil {
				return err
			}
			return listTables(cmd.OutOrStdout(), doc, tableName)
		},
	}

	cmd.Flags().StringVarP(&tableName, "table", "t", "", "only list this table (e.g. LAYER)")

	return cmd
}

func listTables(w io.Writer, doc *cad.Document, only string) error {
	tables := doc.Tables()
	if only != "" {
		t, ok := doc.Table(strings.ToUpper(only))
		if !ok {
			return fmt.Errorf("no table named %q", only)
		}
		tables = []cad.AnyTable{t}
	}

	for _, t := range tables {
		fmt.Fprintf(w, "%s (%d)\n", t.Name(), t.Len())
		for _, e := range t.Items() {
			fmt.Fprintf(w, "  %s\t%s\n", e.Handle(), e.Name())
		}
	}
	return nil
}
