package main

import (
	"math"
	"testing"
)

func testGameConfig() GameConfig {
	return GameConfig{MoveSpeed: 200, DashCooldown: 3.0, DashDuration: 0.3}
}

func TestNewGameSessionClassic(t *testing.T) {
	s := NewGameSession(ModeClassic, "Me", 42, testGameConfig())

	if len(s.Holes) != 6 {
		t.Fatalf("expected player + 5 bots, got %d holes", len(s.Holes))
	}
	if !s.Holes[s.PlayerIdx].IsPlayer {
		t.Error("player slot should hold the player")
	}
	if s.Holes[s.PlayerIdx].Name != "Me" {
		t.Errorf("wrong player name: %s", s.Holes[s.PlayerIdx].Name)
	}
	for i := 1; i < len(s.Holes); i++ {
		if s.Holes[i].IsPlayer {
			t.Errorf("bot slot %d flagged as player", i)
		}
	}
	if len(s.Bots) != len(s.Holes) {
		t.Error("one controller per hole slot")
	}
	if !s.Clock.Running {
		t.Error("classic clock should start running")
	}
	if s.Clock.Duration != 120 {
		t.Errorf("expected 120s round, got %v", s.Clock.Duration)
	}
}

func TestNewGameSessionSolo(t *testing.T) {
	s := NewGameSession(ModeSolo, "Me", 42, testGameConfig())
	if len(s.Holes) != 1 {
		t.Fatalf("solo should have no bots, got %d holes", len(s.Holes))
	}
}

func TestNewGameSessionSeedDeterminism(t *testing.T) {
	a := NewGameSession(ModeClassic, "Me", 42, testGameConfig())
	b := NewGameSession(ModeClassic, "Me", 42, testGameConfig())

	if len(a.World.Objects) != len(b.World.Objects) {
		t.Fatal("same seed should regenerate the same world")
	}
	for i := range a.Holes {
		if a.Holes[i].X != b.Holes[i].X || a.Holes[i].Y != b.Holes[i].Y {
			t.Fatalf("hole %d spawned differently for identical seeds", i)
		}
	}
}

func TestSessionConfigOverrides(t *testing.T) {
	cfg := testGameConfig()
	cfg.BotCount = 2
	cfg.RoundDuration = 60

	s := NewGameSession(ModeClassic, "Me", 42, cfg)
	if len(s.Holes) != 3 {
		t.Errorf("expected player + 2 bots, got %d", len(s.Holes))
	}
	if s.Clock.Duration != 60 {
		t.Errorf("expected 60s round, got %v", s.Clock.Duration)
	}

	// Solo ignores the bot override
	solo := NewGameSession(ModeSolo, "Me", 42, cfg)
	if len(solo.Holes) != 1 {
		t.Error("solo should stay botless")
	}
}

func TestSessionPlayerMovement(t *testing.T) {
	cfg := testGameConfig()
	s := NewGameSession(ModeClassic, "Me", 42, cfg)
	player := s.Holes[s.PlayerIdx]
	player.X, player.Y = 1000, 1000
	x0, y0 := player.X, player.Y

	for i := 0; i < 30; i++ {
		s.Update(1.0/60.0, PlayerInput{Dir: vec2(1, 0)}, cfg)
	}
	if player.X <= x0 {
		t.Errorf("player should move right, was %v now %v", x0, player.X)
	}
	if math.Abs(player.Y-y0) > 1e-9 {
		t.Error("player should not drift vertically")
	}

	// Stop input stops the hole
	x1 := player.X
	s.Update(1.0/60.0, PlayerInput{}, cfg)
	if player.X != x1 {
		t.Error("player should stop without input")
	}
}

func TestSessionDashConsumedOnce(t *testing.T) {
	cfg := testGameConfig()
	s := NewGameSession(ModeClassic, "Me", 42, cfg)
	player := s.Holes[s.PlayerIdx]

	s.Update(1.0/60.0, PlayerInput{Dir: vec2(1, 0), Dash: true}, cfg)
	if player.DashActive <= 0 {
		t.Fatal("dash should activate")
	}
	cd := player.DashCooldown
	if cd <= 0 {
		t.Fatal("dash should start its cooldown")
	}

	// Dashing again during cooldown does nothing
	s.Update(1.0/60.0, PlayerInput{Dir: vec2(1, 0), Dash: true}, cfg)
	if player.DashCooldown > cd {
		t.Error("cooldown should not restart mid-cooldown")
	}
}

func TestSessionClockAdvances(t *testing.T) {
	cfg := testGameConfig()
	s := NewGameSession(ModeClassic, "Me", 42, cfg)
	r0 := s.Clock.Remaining

	for i := 0; i < 60; i++ {
		s.Update(1.0/60.0, PlayerInput{}, cfg)
	}
	if s.Clock.Remaining >= r0 {
		t.Error("clock should count down during updates")
	}
	if s.Leaderboard.AliveCount() == 0 {
		t.Error("leaderboard should rank the live holes")
	}
}

func TestSessionBotsMove(t *testing.T) {
	cfg := testGameConfig()
	s := NewGameSession(ModeClassic, "Me", 42, cfg)

	positions := make([]Vec2, len(s.Holes))
	for i, h := range s.Holes {
		positions[i] = h.Position()
	}

	for i := 0; i < 120; i++ {
		s.Update(1.0/60.0, PlayerInput{}, cfg)
	}

	moved := 0
	for i := 1; i < len(s.Holes); i++ {
		if s.Holes[i].Position().Sub(positions[i]).Length() > 1.0 {
			moved++
		}
	}
	if moved == 0 {
		t.Error("bots should go somewhere within two seconds")
	}
}

func TestSessionTimeUpEndsClassic(t *testing.T) {
	cfg := testGameConfig()
	cfg.RoundDuration = 0.05
	s := NewGameSession(ModeClassic, "Me", 42, cfg)

	for i := 0; i < 10 && !s.GameOver; i++ {
		s.Update(1.0/60.0, PlayerInput{}, cfg)
	}
	if !s.GameOver {
		t.Fatal("round should end when the clock runs out")
	}
	if s.Victory.Kind != VictoryTimeUp {
		t.Errorf("expected time_up, got %s", s.Victory.Kind)
	}
	if s.Victory.PlayerRank == 0 {
		t.Error("result should report the player's rank")
	}
	if s.Victory.WinnerName == "" {
		t.Error("result should name the winner")
	}

	// Updates after game over are inert
	x := s.Holes[s.PlayerIdx].X
	s.Update(1.0/60.0, PlayerInput{Dir: vec2(1, 0)}, cfg)
	if s.Holes[s.PlayerIdx].X != x {
		t.Error("a finished session should freeze")
	}
}

func TestSessionBattleEliminationEndsGame(t *testing.T) {
	cfg := testGameConfig()
	s := NewGameSession(ModeBattle, "Me", 42, cfg)

	// Park a giant bot on top of the player
	player := s.Holes[s.PlayerIdx]
	bot := s.Holes[1]
	bot.Radius = 150
	bot.Area = math.Pi * 150 * 150
	bot.X, bot.Y = player.X, player.Y

	for i := 0; i < 10 && !s.GameOver; i++ {
		s.Update(1.0/60.0, PlayerInput{}, cfg)
	}
	if !s.GameOver {
		t.Fatal("battle should end when the player is eliminated")
	}
	if s.Victory.Kind != VictoryPlayerEliminated {
		t.Errorf("expected player_eliminated, got %s", s.Victory.Kind)
	}
	if s.Victory.KillerName != bot.Name {
		t.Errorf("expected killer %q, got %q", bot.Name, s.Victory.KillerName)
	}
}

func TestSessionBattleTimeCapEndsRound(t *testing.T) {
	cfg := testGameConfig()
	cfg.RoundDuration = 0.05
	s := NewGameSession(ModeBattle, "Me", 42, cfg)

	if !s.Clock.Running {
		t.Fatal("the battle cap clock should tick even without a HUD countdown")
	}

	for i := 0; i < 10 && !s.GameOver; i++ {
		s.Update(1.0/60.0, PlayerInput{}, cfg)
	}
	if !s.GameOver {
		t.Fatal("battle should end when the time cap expires")
	}
	if s.Victory.Kind != VictoryTimeUp {
		t.Errorf("expected time_up, got %s", s.Victory.Kind)
	}
}

func TestSessionClassicRespawn(t *testing.T) {
	cfg := testGameConfig()
	s := NewGameSession(ModeClassic, "Me", 42, cfg)
	player := s.Holes[s.PlayerIdx]

	player.Die(0.05)
	for i := 0; i < 30 && !player.Alive; i++ {
		s.Update(1.0/60.0, PlayerInput{}, cfg)
	}
	if !player.Alive {
		t.Fatal("classic should respawn the player")
	}
	if player.Invincible <= 0 {
		t.Error("respawn should come with invincibility")
	}
	if s.GameOver {
		t.Error("classic death should not end the round")
	}
}

func TestSessionSwallowGrowsPlayer(t *testing.T) {
	cfg := testGameConfig()
	s := NewGameSession(ModeSolo, "Me", 42, cfg)
	player := s.Holes[s.PlayerIdx]

	// Drop a guaranteed snack right under the player
	s.World.Objects[0].X = player.X
	s.World.Objects[0].Y = player.Y
	s.World.Objects[0].Size = 5
	s.World.Objects[0].Width = 5
	s.World.Objects[0].Height = 5

	for i := 0; i < 60 && player.Score == 0; i++ {
		s.Update(1.0/60.0, PlayerInput{}, cfg)
	}
	if player.Score != 1 {
		t.Fatalf("player should swallow the object, score %d", player.Score)
	}
	if len(s.ConsumedIDs) == 0 {
		t.Fatal("the consumed id should be queued for broadcast")
	}

	// Ids stay queued across frames until the broadcaster drains them
	s.Update(1.0/60.0, PlayerInput{}, cfg)
	if len(s.ConsumedIDs) == 0 {
		t.Error("consumed ids should survive ticks between broadcasts")
	}
	drained := s.DrainConsumed()
	if len(drained) == 0 {
		t.Error("drain should hand over the queued ids")
	}
	if len(s.ConsumedIDs) != 0 {
		t.Error("drain should reset the queue")
	}

	if s.World.ConsumptionPercentage() <= 0 {
		t.Error("consumption percentage should rise")
	}
}

func TestSessionManagerLimits(t *testing.T) {
	sm := NewSessionManager(testGameConfig(), testLogger(), nil)

	sess := sm.Create("Me", ModeSolo)
	if sess == nil {
		t.Fatal("create failed")
	}
	defer sm.Remove(sess.ID)

	if sm.Get(sess.ID) != sess {
		t.Error("lookup should find the session")
	}
	if sm.Count() != 1 {
		t.Errorf("expected 1 session, got %d", sm.Count())
	}

	sm.Remove(sess.ID)
	if sm.Get(sess.ID) != nil {
		t.Error("removed session should be gone")
	}
}
