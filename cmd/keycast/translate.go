package main

import (
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"keycast/internal/logger"
	"keycast/internal/match"
	"keycast/keycode"
)

// translation is one translated input.
type translation struct {
	Input   string `json:"input" yaml:"input"`
	Name    string `json:"name" yaml:"name"`
	Code    int    `json:"code" yaml:"code"`
	Group   string `json:"group" yaml:"group"`
	Glfw    int    `json:"glfw" yaml:"glfw"`
	Control string `json:"control" yaml:"control"`
}

func newTranslateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "translate <code|name>...",
		Short: "Translate LWJGL 2 codes or key names",
		Long: `Translate LWJGL 2 keycodes to GLFW keycodes and control event identifiers.

Arguments are decimal or 0x-prefixed codes, or key names in any case with
or without the KEY_ prefix (KEY_PRIOR, prior, lmeta, KEY_LWIN). Codes
without a GLFW equivalent translate to -1 and GLFW_KEY_UNKNOWN.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := translateAll(match.NewResolver(), args)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.format(), out, func(w io.Writer) error {
				rows := [][]any{{"INPUT", "NAME", "CODE", "GLFW", "CONTROL"}}
				for _, t := range out {
					rows = append(rows, []any{t.Input, t.Name, t.Code, t.Glfw, t.Control})
				}
				return table(w, rows)
			})
		},
	}
}

// translateAll resolves every input before translating any, so a bad
// name fails the command without partial output.
func translateAll(r *match.Resolver, inputs []string) ([]translation, error) {
	out := make([]translation, 0, len(inputs))

	for _, in := range inputs {
		code, err := r.Lookup(in)
		if err != nil {
			return nil, err
		}

		t := translation{
			Input:   in,
			Name:    code.String(),
			Code:    int(code),
			Group:   code.Group().String(),
			Glfw:    int(keycode.ToGlfw(int(code))),
			Control: string(keycode.ToControlEvent(int(code))),
		}
		logger.Logger.Debugf("translated %s", spew.Sdump(t))

		out = append(out, t)
	}

	return out, nil
}
