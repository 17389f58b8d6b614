package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dhamidi/cadkit/store"
	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	var (
		dbPath string
		q      store.Query
		docs   bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "List indexed objects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			w := cmd.OutOrStdout()
			if docs {
				list, err := st.Documents(cmd.Context())
				if err != nil {
					return err
				}
				for _, d := range list {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", d.Path, d.Version, d.Objects, d.IndexedAt.Format("2006-01-02 15:04:05"))
				}
				return nil
			}

			if q.Path != "" {
				if q.Path, err = filepath.Abs(q.Path); err != nil {
					return err
				}
			}
			objs, err := st.ListObjects(cmd.Context(), q)
			if err != nil {
				return err
			}
			printObjects(w, objs)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "index database (default from config)")
	cmd.Flags().StringVar(&q.Kind, "kind", "", "object kind, e.g. LAYER or INSERT")
	cmd.Flags().StringVar(&q.Path, "file", "", "only objects of this file")
	cmd.Flags().StringVar(&q.Name, "name", "", "entry or block name")
	cmd.Flags().IntVar(&q.Limit, "limit", 0, "maximum number of objects")
	cmd.Flags().BoolVar(&docs, "docs", false, "list indexed documents instead of objects")

	return cmd
}

func printObjects(w io.Writer, objs []store.Object) {
	for _, o := range objs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.Path, o.Handle, o.Kind, o.Name, o.Layer)
	}
}
