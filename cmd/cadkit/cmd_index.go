package main

import (
	"fmt"
	"path/filepath"

	"github.com/dhamidi/cadkit/dxfreader"
	"github.com/dhamidi/cadkit/store"
	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "index <file>...",
		Short: "Store the objects of DXF files in an SQLite index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			for _, arg := range args {
				path, err := filepath.Abs(arg)
				if err != nil {
					return err
				}
				doc, err := dxfreader.ParseFile(path)
				if err != nil {
					return err
				}
				if _, err := st.SaveDocument(cmd.Context(), path, doc); err != nil {
					return fmt.Errorf("failed to index %s: %w", arg, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d objects\n", arg, len(doc.Objects()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "index database (default from config)")

	return cmd
}

func openStore(dbPath string) (*store.Store, error) {
	if dbPath == "" {
		dbPath = cfg.Index.Path
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	return st, nil
}
