package core

import (
	"fmt"
	"strings"

	"github.com/automoto/screenmenu/menu"
	"github.com/automoto/screenmenu/pkg/logging"
)

type weapon struct {
	id       string
	name     string
	disabled bool
}

type weaponCategory struct {
	label   string
	title   string
	weapons []weapon
}

var demoCategories = []weaponCategory{
	{"Select Pistol", "Pistols", []weapon{
		{"weapon_deagle", "Desert Eagle", false},
		{"weapon_elite", "Dual Berettas", false},
		{"weapon_fiveseven", "Five-SeveN", false},
		{"weapon_glock", "Glock-18", false},
		{"weapon_hkp2000", "P2000", false},
		{"weapon_p250", "P250", false},
		{"weapon_usp_silencer", "USP-S", false},
		{"weapon_cz75a", "CZ75-Auto", false},
		{"weapon_revolver", "R8 Revolver", false},
		{"weapon_tec9", "TEC-9", true},
	}},
	{"Select Rifle", "Rifles", []weapon{
		{"weapon_ak47", "AK-47", false},
		{"weapon_aug", "AUG", false},
		{"weapon_awp", "AWP", false},
		{"weapon_famas", "FAMAS", false},
		{"weapon_g3sg1", "G3SG1", false},
		{"weapon_galilar", "Galil AR", false},
		{"weapon_m4a1", "M4A1", false},
		{"weapon_scar20", "SCAR-20", true},
		{"weapon_sg556", "SG 553", false},
		{"weapon_ssg08", "SSG 08", false},
		{"weapon_m4a1_silencer", "M4A1-S", false},
	}},
	{"Select SMG", "SMGs", []weapon{
		{"weapon_mac10", "MAC-10", false},
		{"weapon_p90", "P90", false},
		{"weapon_mp5sd", "MP5-SD", false},
		{"weapon_ump45", "UMP-45", false},
		{"weapon_bizon", "PP-Bizon", false},
		{"weapon_mp7", "MP7", false},
		{"weapon_mp9", "MP9", false},
	}},
	{"Select Heavy", "Heavy Weapons", []weapon{
		{"weapon_m249", "M249", false},
		{"weapon_xm1014", "XM1014", false},
		{"weapon_mag7", "MAG-7", false},
		{"weapon_negev", "Negev", true},
		{"weapon_sawedoff", "Sawed-Off", false},
		{"weapon_nova", "Nova", false},
		{"weapon_taser", "Zeus x27", false},
	}},
}

// Demo builds the sample menus the reference server opens on chat commands.
type Demo struct {
	env   *menu.Env
	votes int
	// loadouts is the last weapon id each player picked.
	loadouts map[string]string
}

func NewDemo(env *menu.Env) *Demo {
	return &Demo{env: env, loadouts: make(map[string]string)}
}

// Commands lists the chat commands Handle understands.
func (d *Demo) Commands() []string {
	return []string{"menu", "submenu", "vote"}
}

// Handle opens the menu for cmd in s. It reports false for unknown commands.
func (d *Demo) Handle(s *menu.Session, cmd string, mode menu.InputMode) bool {
	var m *menu.Menu
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case "menu", "guns":
		m = d.WeaponsMenu(s.ID(), mode)
	case "submenu":
		m = d.NestedMenu(1, 3, mode)
	case "vote":
		m = d.VoteMenu(mode)
	default:
		return false
	}
	s.Open(m)
	return true
}

// Loadout returns the last weapon id player picked.
func (d *Demo) Loadout(player string) (string, bool) {
	w, ok := d.loadouts[player]
	return w, ok
}

func (d *Demo) newMenu(title string, mode menu.InputMode) *menu.Menu {
	m := d.env.NewMenu(title)
	m.InputMode = mode
	return m
}

// WeaponsMenu has one submenu per weapon category, a spacer and the vote test.
func (d *Demo) WeaponsMenu(player string, mode menu.InputMode) *menu.Menu {
	root := d.newMenu("Weapons Menu", mode)
	root.ShowDisabledNumbering = true
	for _, cat := range demoCategories {
		root.AddSubMenu(cat.label, d.categoryMenu(player, cat, mode))
	}
	root.AddSpacer()
	root.AddSubMenu("Refresh Test", d.VoteMenu(mode))
	return root
}

func (d *Demo) categoryMenu(player string, cat weaponCategory, mode menu.InputMode) *menu.Menu {
	m := d.newMenu(cat.title, mode)
	m.ShowDisabledNumbering = true
	for _, w := range cat.weapons {
		if w.disabled {
			m.AddDisabledItem(w.name)
			continue
		}
		m.AddItem(w.name, func(*menu.Menu, *menu.Option) {
			d.loadouts[player] = w.id
			logging.Info("demo", "%s got %s", player, w.name)
		})
	}
	return m
}

// VoteMenu relabels its title on every vote and stays open.
func (d *Demo) VoteMenu(mode menu.InputMode) *menu.Menu {
	m := d.newMenu(d.voteTitle(), mode)
	m.PostSelect = menu.PostSelectNothing
	m.AddItem("Vote", func(m *menu.Menu, _ *menu.Option) {
		d.votes++
		m.Title = d.voteTitle()
		m.Refresh()
	})
	return m
}

func (d *Demo) voteTitle() string {
	return fmt.Sprintf("Vote Test | %d", d.votes)
}

// NestedMenu is a chain of submenus from level to depth.
func (d *Demo) NestedMenu(level, depth int, mode menu.InputMode) *menu.Menu {
	m := d.newMenu(fmt.Sprintf("Level %d", level), mode)
	if level < depth {
		m.AddSubMenu("Go deeper", d.NestedMenu(level+1, depth, mode))
	}
	m.AddItem(fmt.Sprintf("Leaf %d", level), func(*menu.Menu, *menu.Option) {
		logging.Debug("demo", "leaf %d picked", level)
	})
	m.AddDisabledItem("Locked")
	return m
}
