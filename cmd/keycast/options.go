package main

import (
	"io"

	"github.com/spf13/cobra"

	"keycast/binding"
	"keycast/internal/logger"
)

// resolvedBinding is one resolved options.txt key binding.
type resolvedBinding struct {
	Action  string `json:"action" yaml:"action"`
	Value   string `json:"value" yaml:"value"`
	Kind    string `json:"kind" yaml:"kind"`
	Legacy  bool   `json:"legacy" yaml:"legacy"`
	Keycode int    `json:"keycode" yaml:"keycode"`
	Control string `json:"control" yaml:"control"`
}

func newOptionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options <options.txt>",
		Short: "Resolve the key bindings of a game options file",
		Long: `Read the key_* lines of a game options.txt and resolve each binding,
whether stored as a legacy LWJGL 2 integer or as a key.keyboard.* or
key.mouse.* name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := binding.LoadOptions(args[0])
			if err != nil {
				return err
			}

			resolved := opts.Resolve()
			out := make([]resolvedBinding, 0, len(resolved))
			for _, r := range resolved {
				code, _ := r.Binding.Keycode()
				out = append(out, resolvedBinding{
					Action:  r.Action,
					Value:   r.Value,
					Kind:    r.Binding.Kind.String(),
					Legacy:  r.Binding.Legacy,
					Keycode: code,
					Control: string(r.Binding.ControlEvent()),
				})
				if r.Binding.Kind == binding.KindUnknown {
					logger.Logger.Warnw("unresolved binding", "action", r.Action, "value", r.Value)
				}
			}

			return render(cmd.OutOrStdout(), a.format(), out, func(w io.Writer) error {
				rows := [][]any{{"ACTION", "VALUE", "KIND", "KEYCODE", "CONTROL"}}
				for _, b := range out {
					rows = append(rows, []any{b.Action, b.Value, b.Kind, b.Keycode, b.Control})
				}
				return table(w, rows)
			})
		},
	}
}
