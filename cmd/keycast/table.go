package main

import (
	"io"

	"github.com/spf13/cobra"

	"keycast/internal/keymap"
	"keycast/internal/logger"
)

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Export the translation table",
		Long: `Export every LWJGL 2 constant with its group, GLFW keycode and control
event identifier. With -o the table is written as YAML for a later
"keycast check".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := keymap.Build()

			if path := a.v.GetString(keyTableOutput); path != "" {
				if err := keymap.WriteFile(tbl, path); err != nil {
					return err
				}
				logger.Logger.Infow("table written", "path", path, "keys", len(tbl.Keys))
				return nil
			}

			return render(cmd.OutOrStdout(), a.format(), tbl, func(w io.Writer) error {
				rows := [][]any{{"NAME", "CODE", "GROUP", "GLFW", "CONTROL"}}
				for _, k := range tbl.Keys {
					name := k.Name
					if k.Deprecated {
						name += " (deprecated)"
					}
					rows = append(rows, []any{name, k.Code, k.Group, k.Glfw, k.Control})
				}
				return table(w, rows)
			})
		},
	}

	cmd.Flags().StringP("output", "o", "", "write the table as YAML to this file")
	_ = a.v.BindPFlag(keyTableOutput, cmd.Flags().Lookup("output"))

	return cmd
}
