package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automoto/screenmenu/localize"
	"github.com/automoto/screenmenu/menu"
	"github.com/automoto/screenmenu/preview"
	"github.com/automoto/screenmenu/server/core"
)

func newPreviewCmd() *cobra.Command {
	var (
		lang   string
		mode   string
		script string
		which  string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Step a demo menu on the headless host and print every frame",
		Example: `  screenmenu preview --script "1, 2"
  screenmenu preview --mode Scrollable --script "S, S, E, Tab"
  screenmenu preview --menu vote --script "1, 1, third"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			env, err := menu.EnvFromConfig(cfg)
			if err != nil {
				return err
			}
			env.RequireCalibration = false

			inputMode := env.Settings.InputMode
			if mode != "" {
				inputMode = menu.ParseInputMode(mode)
			}

			demo := core.NewDemo(env)
			var m *menu.Menu
			switch which {
			case "menu", "guns":
				m = demo.WeaponsMenu("preview", inputMode)
			case "submenu":
				m = demo.NestedMenu(1, 3, inputMode)
			case "vote":
				m = demo.VoteMenu(inputMode)
			default:
				return fmt.Errorf("unknown menu %q, want one of %v", which, demo.Commands())
			}

			r := preview.New(env, menu.WithLocalizer(localize.New(cfg.Lang).For(lang)))
			r.Open(m)
			return r.Run(cmd.OutOrStdout(), preview.ParseScript(script))
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "player language tag")
	cmd.Flags().StringVar(&mode, "mode", "", "KeyPress, Scrollable or Both (default from config)")
	cmd.Flags().StringVar(&script, "script", "", "comma separated steps: digits, tick, first, third or button names")
	cmd.Flags().StringVar(&which, "menu", "menu", "demo menu to open: menu, submenu or vote")
	return cmd
}
