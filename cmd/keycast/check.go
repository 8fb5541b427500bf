package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"keycast/internal/keymap"
	"keycast/internal/logger"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <table.yaml>",
		Short: "Check a stored translation table for drift",
		Long: `Compare a table exported by "keycast table -o" with the current
translation. Removed keys and changed codes or identifiers are errors and
make the command fail; added keys are warnings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := keymap.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := keymap.Check(want)
			logger.Logger.Debugw("check finished",
				"errors", len(diags.Errors),
				"warnings", len(diags.Warnings),
				"infos", len(diags.Infos))

			err = render(cmd.OutOrStdout(), a.format(), diags, func(w io.Writer) error {
				all := diags.All()
				if len(all) == 0 {
					_, err := fmt.Fprintf(w, "%s: %d keys, no drift\n", args[0], len(want.Keys))
					return err
				}
				for _, d := range all {
					if _, err := fmt.Fprintf(w, "%s: %s\n", d.Severity, d); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			if diags.HasErrors() {
				return errors.WithHintf(diags.Error(),
					"if the change is intended, re-export with: keycast table -o %s", args[0])
			}

			return nil
		},
	}
}
