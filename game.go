package main

import (
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

const (
	TickRate       = 60 // physics ticks per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate
)

// Broadcaster interface for sending messages to the client
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game drives one session's simulation loop and ships its state to the
// connected client
type Game struct {
	mu      sync.RWMutex
	session *GameSession
	cfg     GameConfig
	client  Broadcaster
	log     *zap.Logger

	// latest input, dash latched until the next tick consumes it
	inputDir  Vec2
	inputDash bool

	tick         uint64
	running      bool
	stop         chan struct{}
	sentGameOver bool

	metrics   *Metrics
	sessionID string
}

// NewGame creates a game with a fresh session
func NewGame(mode GameMode, playerName string, seed int64, cfg GameConfig, log *zap.Logger) *Game {
	return &Game{
		session: NewGameSession(mode, playerName, seed, cfg),
		cfg:     cfg,
		log:     log,
		stop:    make(chan struct{}),
	}
}

// Run starts the game loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// SetClient attaches the broadcaster that receives state frames
func (g *Game) SetClient(client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.client = client
}

// HandleInput stores the latest client input. Dash stays latched until a
// tick consumes it so a press between ticks is never lost.
func (g *Game) HandleInput(input ClientInput) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inputDir = Vec2{X: input.DX, Y: input.DY}
	if input.Dash {
		g.inputDash = true
	}
}

// Pause freezes the round clock
func (g *Game) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.session.Clock.Pause()
}

// Resume continues a paused round clock
func (g *Game) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.session.Clock.Finished() {
		g.session.Clock.Resume()
	}
}

// Session exposes the underlying simulation for the welcome message
func (g *Game) Session() *GameSession {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session
}

// update runs one game tick
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	dt := 1.0 / float64(TickRate)
	g.tick++

	input := PlayerInput{Dir: g.inputDir, Dash: g.inputDash}
	g.inputDash = false

	g.session.Update(dt, input, g.cfg)

	if g.tick%BroadcastEvery == 0 {
		g.broadcastState()
	}

	if g.session.GameOver && !g.sentGameOver {
		g.sentGameOver = true
		g.sendGameOver()
	}
}

// broadcastState sends the current game state to the client as msgpack
func (g *Game) broadcastState() {
	if g.client == nil {
		return
	}
	s := g.session

	state := GameState{
		Tick: g.tick,
		Clock: ClockState{
			Remaining: s.Clock.Remaining,
			Formatted: s.Clock.Formatted(),
			Running:   s.Clock.Running,
		},
		Holes:       make([]HoleState, 0, len(s.Holes)),
		Consumption: s.World.ConsumptionPercentage(),
	}

	for _, h := range s.Holes {
		state.Holes = append(state.Holes, h.ToState())
	}
	for i := range s.World.Objects {
		if s.World.Objects[i].State == StateFalling {
			state.Falling = append(state.Falling, s.World.Objects[i].ToUpdate())
		}
	}
	state.Consumed = s.DrainConsumed()
	state.Particles, state.Ripples = s.Vfx.Drain()
	state.Board = s.Leaderboard.Top(10)

	data, err := msgpack.Marshal(&state)
	if err != nil {
		g.log.Error("state encode failed", zap.Error(err))
		return
	}
	g.client.SendBinary(data)
}

// sendGameOver ships the final results to the client
func (g *Game) sendGameOver() {
	s := g.session
	res := s.Victory
	player := s.Holes[s.PlayerIdx]

	xp := CalculateXP(s.Clock.Elapsed, player.Score, player.Eliminations,
		res.PlayerRank, len(s.Holes))

	stats := RoundStats{
		ObjectsConsumed: player.Score,
		Eliminations:    player.Eliminations,
		Deaths:          player.Deaths,
		FinalRank:       res.PlayerRank,
		TimeAlive:       s.Clock.Elapsed,
		Percentage:      res.Percentage,
		Won:             res.Kind == VictoryPlayerWon || res.Kind == VictoryCityConsumed,
		RoundComplete:   res.Kind == VictoryTimeUp || res.Kind == VictoryPlayerWon,
	}
	var accolades []string
	for _, a := range CheckAccolades(stats) {
		accolades = append(accolades, a.Name)
	}

	// Medals grade city consumption, a Solo concept
	medal := ""
	if s.Rules.Mode == ModeSolo {
		medal = MedalForPercentage(res.Percentage)
	}

	msg := GameOverMsg{
		Kind:       int(res.Kind),
		KindName:   res.Kind.String(),
		WinnerName: res.WinnerName,
		KillerName: res.KillerName,
		PlayerRank: res.PlayerRank,
		FinalSize:  round1(player.Radius),
		Percentage: res.Percentage,
		XP:         xp,
		Medal:      medal,
		Accolades:  accolades,
	}

	g.log.Info("game over",
		zap.String("kind", res.Kind.String()),
		zap.Int("rank", res.PlayerRank),
		zap.Int("xp", xp))

	if g.metrics != nil {
		g.metrics.Track(EvtGameOver, g.sessionID, 1)
		g.metrics.Track(EvtElimination, g.sessionID, player.Eliminations)
	}

	if g.client != nil {
		g.client.SendJSON(Envelope{T: MsgGameOver, Data: msg})
	}
}

// welcomeFor builds the one-time welcome payload for a session
func welcomeFor(sess *Session) Envelope {
	s := sess.Game.Session()
	return Envelope{T: MsgWelcome, Data: WelcomeMsg{
		SessionID: sess.ID,
		HoleID:    s.Holes[s.PlayerIdx].ID,
		Mode:      int(s.Rules.Mode),
		ModeName:  s.Rules.Mode.Name(),
		Duration:  s.Clock.Duration,
		ShowTimer: s.Rules.Mode.HasTimer(),
		World:     buildWorldMsg(s.World),
	}}
}
