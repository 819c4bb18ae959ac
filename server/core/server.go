package core

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"

	"github.com/automoto/screenmenu/calibration"
	"github.com/automoto/screenmenu/config"
	"github.com/automoto/screenmenu/localize"
	"github.com/automoto/screenmenu/menu"
	"github.com/automoto/screenmenu/pkg/logging"
	"github.com/automoto/screenmenu/shared/messages"
)

type player struct {
	connID string
	id     string
	name   string
	host   *PlayerHost
	mode   menu.InputMode
}

// Server is the reference menu host. Network callbacks only queue commands;
// the world and every menu session are touched from the game loop alone.
type Server struct {
	cfg       config.Config
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport
	sync      syncFunc

	menus   *menu.Manager
	catalog *localize.Catalog
	demo    *Demo
	rounds  *roundTimer

	mu      sync.Mutex
	pending []func()

	players map[string]*player // by connection id
	byID    map[string]*player
}

// NewServer creates a networked server. Positions are kept in store.
func NewServer(cfg config.Config, store menu.PositionStore) (*Server, error) {
	s, err := newServer(cfg, store)
	if err != nil {
		return nil, err
	}
	s.sync = func(w donburi.World, e *donburi.Entity, c donburi.IComponentType) error {
		return srvsync.NetworkSync(w, e, c)
	}

	// Set up the world for esync
	srvsync.UseEsync(s.world)
	s.setupRouterCallbacks()
	return s, nil
}

func newServer(cfg config.Config, store menu.PositionStore) (*Server, error) {
	env, err := menu.EnvFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("menu environment: %w", err)
	}
	calib, err := calibration.SettingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	env.Positions = store
	env.Calibrator = calibration.New(calib)

	s := &Server{
		cfg:     cfg,
		world:   donburi.NewWorld(),
		menus:   menu.NewManager(env),
		catalog: localize.New(cfg.Lang),
		demo:    NewDemo(env),
		rounds:  newRoundTimer(cfg.Server.RoundSeconds, cfg.Server.TickRate),
		players: make(map[string]*player),
		byID:    make(map[string]*player),
	}
	s.loop = NewGameLoop(s, cfg.Server.TickRate)
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		logging.Info("server", "client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			logging.Info("server", "client %s disconnected with error: %v", client.Id(), err)
		} else {
			logging.Info("server", "client %s disconnected", client.Id())
		}
		id := client.Id()
		s.enqueue(func() { s.leave(id) })
	})

	router.On(func(client *router.NetworkClient, msg messages.JoinRequest) {
		id := client.Id()
		s.enqueue(func() { s.join(id, msg) })
	})

	router.On(func(client *router.NetworkClient, msg messages.MenuInput) {
		id := client.Id()
		s.enqueue(func() { s.input(id, msg) })
	})

	router.On(func(client *router.NetworkClient, msg messages.DigitCommand) {
		id := client.Id()
		s.enqueue(func() { s.digit(id, msg.Key) })
	})

	router.On(func(client *router.NetworkClient, msg messages.ChatCommand) {
		id := client.Id()
		s.enqueue(func() { s.chat(id, msg.Text) })
	})

	router.On(func(client *router.NetworkClient, msg messages.ViewChange) {
		id := client.Id()
		s.enqueue(func() { s.view(id, msg) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		logging.Error("server", err, "client %s", client.Id())
	})
}

func (s *Server) enqueue(cmd func()) {
	s.mu.Lock()
	s.pending = append(s.pending, cmd)
	s.mu.Unlock()
}

// ProcessCommands runs the commands queued by network callbacks since the last tick.
func (s *Server) ProcessCommands() {
	s.mu.Lock()
	cmds := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, cmd := range cmds {
		cmd()
	}
}

// Update is one server tick before sync.
func (s *Server) Update() {
	s.ProcessCommands()
	s.menus.Tick()
	if s.rounds.tick() {
		s.restartRound()
	}
}

func (s *Server) restartRound() {
	s.menus.Broadcast(menu.EventRoundEnd)
	n := wipeTexts(s.world)
	for _, p := range s.players {
		p.host.setRound(s.rounds.round)
	}
	s.menus.Broadcast(menu.EventRoundStart)
	logging.Info("server", "round %d started, %d text entities wiped", s.rounds.round, n)
}

func (s *Server) join(connID string, msg messages.JoinRequest) {
	if _, ok := s.players[connID]; ok {
		return
	}
	id := msg.PlayerID
	if id == "" {
		id = connID
	}
	if _, taken := s.byID[id]; taken {
		logging.Warn("server", "rejecting %s: player id %q already connected", connID, id)
		return
	}

	host, err := newPlayerHost(s.world, id, s.sync, s.cfg.Server.MaxEntities)
	if err != nil {
		logging.Error("server", err, "could not create host for %s", id)
		return
	}
	host.setRound(s.rounds.round)

	p := &player{
		connID: connID,
		id:     id,
		name:   msg.PlayerName,
		host:   host,
		mode:   s.menus.Env().Settings.InputMode,
	}
	s.players[connID] = p
	s.byID[id] = p
	s.menus.Attach(id, host, menu.WithLocalizer(s.catalog.For(msg.Language)), menu.WithCues(host))
	logging.Info("server", "%s joined as %s (lang %q)", msg.PlayerName, id, msg.Language)
}

func (s *Server) leave(connID string) {
	p, ok := s.players[connID]
	if !ok {
		return
	}
	s.menus.HandleEvent(p.id, menu.EventDisconnect)
	p.host.close()
	delete(s.players, connID)
	delete(s.byID, p.id)
}

func (s *Server) input(connID string, msg messages.MenuInput) {
	if p, ok := s.players[connID]; ok {
		p.host.setButtons(menu.Button(msg.Buttons))
	}
}

func (s *Server) digit(connID string, key int) {
	if p, ok := s.players[connID]; ok {
		p.host.pressDigit(key)
	}
}

func (s *Server) view(connID string, msg messages.ViewChange) {
	p, ok := s.players[connID]
	if !ok {
		return
	}
	p.host.setView(menu.ObserverMode(msg.Mode), msg.Target)
	s.menus.HandleEvent(p.id, menu.EventViewInvalidate)
}

// chat handles "!N" digit binds, "mode <name>" and the demo menu commands.
func (s *Server) chat(connID, text string) {
	p, ok := s.players[connID]
	if !ok {
		return
	}
	text = strings.TrimSpace(text)

	if key, ok := digitBind(text); ok {
		p.host.pressDigit(key)
		return
	}
	if rest, ok := strings.CutPrefix(text, "mode "); ok {
		p.mode = menu.ParseInputMode(strings.TrimSpace(rest))
		logging.Debug("server", "%s switched to %s", p.id, p.mode)
		return
	}

	sess, ok := s.menus.Session(p.id)
	if !ok {
		return
	}
	if text == "close" {
		sess.Close()
		return
	}
	if !s.demo.Handle(sess, text, p.mode) {
		logging.Debug("server", "unknown command %q from %s", text, p.id)
	}
}

// digitBind parses "!3" or "/3".
func digitBind(text string) (int, bool) {
	if len(text) != 2 || (text[0] != '!' && text[0] != '/') {
		return 0, false
	}
	key, err := strconv.Atoi(text[1:])
	if err != nil {
		return 0, false
	}
	return key, true
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of joined players
func (s *Server) PlayerCount() int {
	return len(s.players)
}
