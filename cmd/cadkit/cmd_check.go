package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/cadkit/dxfreader"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Report problems found while reading a DXF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failOnWarning := cfg.Check.FailOnWarning
			if cmd.Flags().Changed("strict") {
				failOnWarning = strict
			}
			return check(cmd.OutOrStdout(), args[0], failOnWarning)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any warning is reported")

	return cmd
}

func check(w io.Writer, path string, failOnWarning bool) error {
	warnings := 0
	_, err := dxfreader.ParseFile(path, dxfreader.OnNotification(func(n dxfreader.Notification) {
		if n.Type == dxfreader.NotificationWarning {
			warnings++
		}
		fmt.Fprintf(w, "%s: %s\n", path, n)
	}))
	if err != nil {
		fmt.Fprintln(w, err)
		return fmt.Errorf("%s: cannot be read", path)
	}
	if failOnWarning && warnings > 0 {
		return fmt.Errorf("%s: %d warning(s)", path, warnings)
	}
	fmt.Fprintf(w, "%s: ok\n", path)
	return nil
}
