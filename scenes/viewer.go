package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/screenmenu/archetypes"
	"github.com/automoto/screenmenu/components"
	"github.com/automoto/screenmenu/network"
	"github.com/automoto/screenmenu/pkg/logging"
	"github.com/automoto/screenmenu/shared/netcomponents"
	"github.com/automoto/screenmenu/systems"
	"github.com/automoto/screenmenu/ui"
)

// ViewerScene mirrors the local player's menu entities and draws them.
type ViewerScene struct {
	ecsWorld  *ecs.ECS
	netClient *network.Client
	mirror    *network.Mirror
	overlay   *ui.Overlay
	bindings  systems.Bindings
	playerID  string
	once      sync.Once
}

func NewViewerScene(client *network.Client, playerID string, bindings systems.Bindings) *ViewerScene {
	return &ViewerScene{
		netClient: client,
		playerID:  playerID,
		bindings:  bindings,
	}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)

	state := vs.netClient.State()
	viewer := vs.viewer()
	viewer.Status = state.String()
	if state == network.StateError {
		if err := vs.netClient.LastError(); err != nil {
			viewer.Status = err.Error()
		}
	}

	if snap := vs.netClient.LatestSnapshot(); snap != nil {
		vs.mirror.Apply(*snap)
	}

	vs.ecsWorld.Update()

	if vs.overlay != nil {
		overlay := ""
		if hud, ok := netcomponents.NetHUD.First(vs.ecsWorld.World); ok {
			overlay = netcomponents.NetHUD.Get(hud).Overlay
		}
		vs.overlay.SetMarkup(overlay)
		vs.overlay.Update()
	}
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if vs.ecsWorld == nil {
		return
	}

	vs.ecsWorld.Draw(screen)
	if vs.overlay != nil {
		vs.overlay.Draw(screen)
	}
}

func (vs *ViewerScene) configure() {
	vs.ecsWorld = ecs.NewECS(donburi.NewWorld())
	vs.mirror = network.NewMirror(vs.ecsWorld.World, vs.playerID)

	entry := archetypes.Viewer.Spawn(vs.ecsWorld)
	components.Viewer.SetValue(entry, components.ViewerData{PlayerID: vs.playerID})

	overlay, err := ui.NewOverlay()
	if err != nil {
		logging.Error("viewer", err, "overlay disabled")
	} else {
		vs.overlay = overlay
	}

	sendFn := func(msg any) error {
		if vs.netClient.State() != network.StateJoined {
			return nil
		}
		return vs.netClient.SendMessage(msg)
	}
	vs.ecsWorld.AddSystem(systems.NewMenuInputSystem(sendFn, vs.bindings))
	vs.ecsWorld.AddSystem(systems.UpdateSlide)
	vs.ecsWorld.AddSystem(systems.UpdateCues)
	vs.ecsWorld.AddRenderer(archetypes.Default, systems.DrawMenuText)
	vs.ecsWorld.AddRenderer(archetypes.Default, systems.DrawStatus)
}

func (vs *ViewerScene) viewer() *components.ViewerData {
	entry, _ := components.Viewer.First(vs.ecsWorld.World)
	return components.Viewer.Get(entry)
}
