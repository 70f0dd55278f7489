package main

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

const maxSessions = 100

var playerColor = Color{R: 0.2, G: 0.6, B: 1.0}

// PlayerInput is the player's control signal for one frame
type PlayerInput struct {
	Dir  Vec2
	Dash bool
}

// GameSession is one complete simulation: the world, the holes, their bot
// controllers, the clock and the derived leaderboard. It has no notion of
// transport; the Game loop drives it and ships its state out.
type GameSession struct {
	World       *World
	Spatial     *SpatialGrid
	Holes       []*Hole
	Bots        []*BotController
	PlayerIdx   int
	Clock       *GameClock
	Leaderboard *Leaderboard
	Rules       ModeRules
	Vfx         *VfxQueue

	GameOver bool
	Victory  VictoryResult

	// Ids of objects that finished falling this frame, for the broadcast
	ConsumedIDs []uint32

	killerName string
	rng        *rand.Rand
	holeIDs    IDAllocator
}

// NewGameSession generates the world and populates it with the player and
// the mode's bots. The same seed reproduces the same session start.
func NewGameSession(mode GameMode, playerName string, seed int64, cfg GameConfig) *GameSession {
	rules := NewModeRules(mode)
	if cfg.BotCount > 0 && mode.HasBots() {
		rules.BotCount = cfg.BotCount
	}

	rng := rand.New(rand.NewSource(seed))
	world := GenerateWorld(seed)

	s := &GameSession{
		World:       world,
		Spatial:     NewSpatialGrid(),
		Rules:       rules,
		Leaderboard: NewLeaderboard(),
		Vfx:         &VfxQueue{},
		rng:         rng,
	}

	pos := world.SpawnPosition(rng)
	player := NewHole(s.holeIDs.Next(), pos.X, pos.Y, playerName, playerColor, true)
	GetSkin(0).Apply(player)
	s.Holes = append(s.Holes, player)
	s.Bots = append(s.Bots, &BotController{}) // placeholder for the player slot

	for i := 0; i < rules.BotCount; i++ {
		pos := world.SpawnPosition(rng)
		name := BotNames[i%len(BotNames)]
		bot := NewHole(s.holeIDs.Next(), pos.X, pos.Y, name, BotColor(i), false)
		GetSkin(RandomSkin(rng)).Apply(bot)
		s.Holes = append(s.Holes, bot)
		s.Bots = append(s.Bots, &BotController{})
	}

	s.Spatial.Build(world.Objects)

	duration := mode.RoundDuration()
	if cfg.RoundDuration > 0 {
		duration = cfg.RoundDuration
	}
	// The clock runs in every mode; HasTimer only controls whether the
	// HUD shows the countdown. Battle uses it as a hidden round cap.
	s.Clock = NewGameClock(duration)
	s.Clock.Start()

	return s
}

// Update advances the simulation one frame. The pass order is load-bearing:
// swallow checks assume positions are integrated and the grid rebuilt.
func (s *GameSession) Update(dt float64, input PlayerInput, cfg GameConfig) {
	if s.GameOver {
		return
	}

	timeUp := s.Clock.Update(dt)

	// Player input, consumed once per frame
	player := s.Holes[s.PlayerIdx]
	if player.Alive {
		player.SetVelocity(input.Dir)
		if input.Dash {
			player.TryDash(cfg.DashCooldown, cfg.DashDuration)
		}
	}

	// Bot steering: gather over per-bot snapshots first, then apply, so no
	// bot sees another bot's same-frame direction change
	dirs := make([]Vec2, len(s.Holes))
	for i := 1; i < len(s.Holes); i++ {
		if !s.Holes[i].Alive {
			continue
		}
		snapshot := *s.Holes[i]
		dirs[i] = s.Bots[i].Update(&snapshot, s.Holes, s.World.Objects, s.Spatial, dt, s.rng)
	}
	for i := 1; i < len(s.Holes); i++ {
		if s.Holes[i].Alive {
			s.Holes[i].SetVelocity(dirs[i])
		}
	}

	for _, h := range s.Holes {
		h.Update(dt, s.World.Width, s.World.Height, cfg.MoveSpeed)
	}

	s.Spatial.Build(s.World.Objects)

	for _, h := range s.Holes {
		ProcessSwallow(h, s.World.Objects, s.Spatial, s.Vfx)
	}

	// Consumed ids accumulate across frames; the broadcaster drains them
	for _, h := range s.Holes {
		s.ConsumedIDs = append(s.ConsumedIDs, UpdateFallingObjects(h, s.World.Objects, dt)...)
	}

	winnerIdx, playerLost := ProcessHoleCombat(s.Holes, s.PlayerIdx, s.Vfx,
		s.Rules.Mode.AllowsRespawn(), s.Rules.RespawnTime)
	if playerLost {
		s.killerName = s.Holes[winnerIdx].Name
	}

	// Respawn sweep: relocate holes whose countdown just expired
	if s.Rules.Mode.AllowsRespawn() {
		for _, h := range s.Holes {
			if !h.Alive && h.RespawnT <= 0 {
				pos := s.World.SpawnPosition(s.rng)
				h.Respawn(pos.X, pos.Y)
			}
		}
	}

	s.Leaderboard.Update(s.Holes)

	s.checkVictory(timeUp)
}

// DrainConsumed returns the ids of objects consumed since the last drain
// and resets the accumulator, so a slower broadcast cadence misses nothing
func (s *GameSession) DrainConsumed() []uint32 {
	ids := s.ConsumedIDs
	s.ConsumedIDs = nil
	return ids
}

func (s *GameSession) checkVictory(timeUp bool) {
	player := s.Holes[s.PlayerIdx]
	aliveCount := s.Leaderboard.AliveCount()
	pct := s.World.ConsumptionPercentage()

	playerIsWinner := false
	if w := s.Leaderboard.Winner(); w != nil && w.IsPlayer {
		playerIsWinner = true
	}

	remaining := s.Clock.Remaining
	if timeUp {
		remaining = 0
	}
	res := CheckVictory(s.Rules, remaining, player.Alive, aliveCount, pct, playerIsWinner)
	if res.Kind == VictoryNone {
		return
	}

	if w := s.Leaderboard.Winner(); w != nil {
		res.WinnerName = w.Name
	}
	res.PlayerRank = s.Leaderboard.PlayerRank()
	res.KillerName = s.killerName
	if res.Kind != VictoryCityConsumed {
		res.Percentage = pct
	}

	s.GameOver = true
	s.Victory = res
}

// Session is one joinable game instance
type Session struct {
	ID   string
	Name string
	Game *Game
}

// SessionManager handles creation and lookup of sessions
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	cfg      GameConfig
	log      *zap.Logger
	metrics  *Metrics
}

// NewSessionManager creates a new SessionManager
func NewSessionManager(cfg GameConfig, log *zap.Logger, metrics *Metrics) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		log:      log,
		metrics:  metrics,
	}
}

// Create starts a new session and its game loop. Returns nil when the
// session limit is reached.
func (sm *SessionManager) Create(playerName string, mode GameMode) *Session {
	return sm.CreateWithSeed(playerName, mode, 0)
}

// CreateWithSeed starts a session with an explicit world seed. A zero seed
// falls back to the configured seed, then to the clock.
func (sm *SessionManager) CreateWithSeed(playerName string, mode GameMode, seed int64) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.sessions) >= maxSessions {
		return nil
	}

	if seed == 0 {
		seed = sm.cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	id := GenerateID(8)
	game := NewGame(mode, playerName, seed, sm.cfg, sm.log.With(zap.String("session", id)))
	game.metrics = sm.metrics
	game.sessionID = id
	sess := &Session{ID: id, Name: playerName, Game: game}
	sm.sessions[id] = sess

	sm.log.Info("session created",
		zap.String("session", id),
		zap.String("mode", mode.Name()),
		zap.Int64("seed", seed))

	if sm.metrics != nil {
		sm.metrics.Track(EvtSessionStart, id, 1)
		sm.metrics.SetActiveSessions(len(sm.sessions))
	}

	go game.Run()
	return sess
}

// Get returns a session by id, or nil
func (sm *SessionManager) Get(id string) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.sessions[id]
}

// Remove stops a session's game loop and forgets it
func (sm *SessionManager) Remove(id string) {
	sm.mu.Lock()
	sess, ok := sm.sessions[id]
	delete(sm.sessions, id)
	remaining := len(sm.sessions)
	sm.mu.Unlock()
	if ok {
		sess.Game.Stop()
		if sm.metrics != nil {
			sm.metrics.Track(EvtSessionEnd, id, 1)
			sm.metrics.SetActiveSessions(remaining)
		}
		sm.log.Info("session removed", zap.String("session", id))
	}
}

// Count returns the number of active sessions
func (sm *SessionManager) Count() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return len(sm.sessions)
}
