package protocol

import (
	"github.com/leap-fish/necs/esync"

	"github.com/automoto/screenmenu/shared/netcomponents"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetText uint = 10
	SyncIDNetHUD  uint = 11
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	// Text and HUD change in discrete steps; the viewer animates moves itself.
	if err := esync.RegisterComponent(
		SyncIDNetText,
		netcomponents.NetTextData{},
		netcomponents.NetText,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetHUD,
		netcomponents.NetHUDData{},
		netcomponents.NetHUD,
	); err != nil {
		return err
	}

	return nil
}
