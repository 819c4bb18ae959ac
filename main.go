package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/automoto/screenmenu/config"
	"github.com/automoto/screenmenu/fonts"
	"github.com/automoto/screenmenu/network"
	"github.com/automoto/screenmenu/pkg/logging"
	"github.com/automoto/screenmenu/scenes"
	"github.com/automoto/screenmenu/shared/messages"
	"github.com/automoto/screenmenu/shared/protocol"
	"github.com/automoto/screenmenu/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return systems.ScreenWidth, systems.ScreenHeight
}

type viewerOptions struct {
	address    string
	configPath string
	join       messages.JoinRequest
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := viewerOptions{}

	cmd := &cobra.Command{
		Use:          "screenmenu-viewer",
		Short:        "Connect to a screenmenu server and draw your menus",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVar(&opts.address, "addr", "localhost:7373", "server address")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file for controls and sounds (default is <user config dir>/screenmenu/screenmenu.yaml)")
	cmd.Flags().StringVar(&opts.join.PlayerID, "id", "player-1", "player id; entities tagged with it are drawn")
	cmd.Flags().StringVar(&opts.join.PlayerName, "name", "Player", "display name")
	cmd.Flags().StringVar(&opts.join.Language, "lang", "en", "language tag for menu labels")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	return cmd
}

func run(opts viewerOptions) error {
	logging.Init(logging.ParseLevel(opts.logLevel), os.Stderr)

	path := opts.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		logging.Warn("viewer", "using default config: %v", err)
	}

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		return err
	}
	if err := fonts.LoadGoFonts(); err != nil {
		return err
	}
	bindings, err := systems.BindingsFromConfig(cfg.Controls)
	if err != nil {
		return err
	}
	systems.SetCueVolume(cfg.Sounds.Volume)

	client := network.NewClient()
	client.Connect(opts.address, opts.join)
	defer client.Disconnect()

	ebiten.SetWindowSize(systems.ScreenWidth, systems.ScreenHeight)
	ebiten.SetWindowTitle("screenmenu - " + opts.join.PlayerID)

	return ebiten.RunGame(&Game{scene: scenes.NewViewerScene(client, opts.join.PlayerID, bindings)})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
