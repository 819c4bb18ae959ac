package network

import (
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"

	"github.com/automoto/screenmenu/shared/netcomponents"
)

// Mirror copies one player's entities out of server snapshots into a local world.
// Text and HUD entities of other players are skipped.
type Mirror struct {
	world   donburi.World
	owner   string
	present map[esync.NetworkId]bool
}

func NewMirror(world donburi.World, owner string) *Mirror {
	return &Mirror{
		world:   world,
		owner:   owner,
		present: make(map[esync.NetworkId]bool),
	}
}

type entityState struct {
	id    esync.NetworkId
	comps []any
}

// Apply decodes snapshot and replaces the mirrored entities with its contents.
func (m *Mirror) Apply(snapshot esync.WorldSnapshot) {
	states := make([]entityState, 0, len(snapshot))
	for _, ent := range snapshot {
		var comps []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			comps = append(comps, instance)
		}
		states = append(states, entityState{id: ent.Id, comps: comps})
	}
	m.apply(states)
}

func (m *Mirror) apply(states []entityState) {
	clear(m.present)

	for _, st := range states {
		if ownerOf(st.comps) != m.owner {
			continue
		}
		m.present[st.id] = true

		entity := esync.FindByNetworkId(m.world, st.id)
		if !m.world.Valid(entity) {
			entity = m.world.Create(componentTypesFromInstances(st.comps)...)
			entry := m.world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, st.id)
		}

		entry := m.world.Entry(entity)
		for _, data := range st.comps {
			applyComponentToEntry(entry, data)
		}
	}

	var gone []*donburi.Entry
	esync.NetworkEntityQuery.Each(m.world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !m.present[*id] {
			gone = append(gone, entry)
		}
	})
	for _, entry := range gone {
		entry.Remove()
	}
}

func ownerOf(comps []any) string {
	for _, data := range comps {
		switch v := data.(type) {
		case netcomponents.NetTextData:
			return v.Owner
		case netcomponents.NetHUDData:
			return v.Owner
		}
	}
	return ""
}

func componentTypesFromInstances(comps []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range comps {
		switch data.(type) {
		case netcomponents.NetTextData:
			ctypes = append(ctypes, netcomponents.NetText)
		case netcomponents.NetHUDData:
			ctypes = append(ctypes, netcomponents.NetHUD)
		}
	}
	return ctypes
}

func applyComponentToEntry(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetTextData:
		if !entry.HasComponent(netcomponents.NetText) {
			entry.AddComponent(netcomponents.NetText)
		}
		netcomponents.NetText.SetValue(entry, v)
	case netcomponents.NetHUDData:
		if !entry.HasComponent(netcomponents.NetHUD) {
			entry.AddComponent(netcomponents.NetHUD)
		}
		netcomponents.NetHUD.SetValue(entry, v)
	}
}
