package main

// GameMode selects the rule set for a session
type GameMode int

const (
	ModeClassic GameMode = 0 // timed, biggest hole wins
	ModeBattle  GameMode = 1 // last hole standing
	ModeSolo    GameMode = 2 // consume the whole city
)

// Name returns the display name
func (m GameMode) Name() string {
	switch m {
	case ModeBattle:
		return "Battle"
	case ModeSolo:
		return "Solo"
	default:
		return "Classic"
	}
}

// Description returns the one-line mode blurb
func (m GameMode) Description() string {
	switch m {
	case ModeBattle:
		return "Last hole standing wins!"
	case ModeSolo:
		return "Consume 100% of the city!"
	default:
		return "Be the biggest hole when time runs out!"
	}
}

// HasTimer reports whether the HUD shows a countdown
func (m GameMode) HasTimer() bool {
	return m != ModeBattle
}

// HasBots reports whether the session spawns bot holes
func (m GameMode) HasBots() bool {
	return m != ModeSolo
}

// AllowsRespawn reports whether eliminated holes come back
func (m GameMode) AllowsRespawn() bool {
	return m == ModeClassic
}

// RoundDuration returns the round length in seconds; Battle uses it as a cap
func (m GameMode) RoundDuration() float64 {
	if m == ModeBattle {
		return 300
	}
	return 120
}

// ModeRules is the per-mode parameterization of a session
type ModeRules struct {
	Mode        GameMode
	BotCount    int
	RespawnTime float64
}

// NewModeRules returns the rules for the given mode
func NewModeRules(mode GameMode) ModeRules {
	switch mode {
	case ModeBattle:
		return ModeRules{Mode: mode, BotCount: 5}
	case ModeSolo:
		return ModeRules{Mode: mode}
	default:
		return ModeRules{Mode: mode, BotCount: 5, RespawnTime: 3.0}
	}
}

// VictoryKind tags the way a session ended
type VictoryKind int

const (
	VictoryNone VictoryKind = iota
	VictoryTimeUp
	VictoryPlayerWon
	VictoryPlayerEliminated
	VictoryCityConsumed
)

func (k VictoryKind) String() string {
	switch k {
	case VictoryTimeUp:
		return "time_up"
	case VictoryPlayerWon:
		return "player_won"
	case VictoryPlayerEliminated:
		return "player_eliminated"
	case VictoryCityConsumed:
		return "city_consumed"
	}
	return "none"
}

// VictoryResult holds the outcome; the session fills names and ranks from
// the leaderboard
type VictoryResult struct {
	Kind       VictoryKind
	WinnerName string
	PlayerRank int
	KillerName string
	Percentage float64
}

// CheckVictory evaluates the win condition for the current mode
func CheckVictory(rules ModeRules, timeRemaining float64, playerAlive bool, aliveHoles int, cityConsumedPct float64, playerIsWinner bool) VictoryResult {
	switch rules.Mode {
	case ModeBattle:
		if !playerAlive {
			return VictoryResult{Kind: VictoryPlayerEliminated}
		}
		if aliveHoles == 1 && playerIsWinner {
			return VictoryResult{Kind: VictoryPlayerWon}
		}
		if timeRemaining <= 0 {
			return VictoryResult{Kind: VictoryTimeUp}
		}
	case ModeSolo:
		if cityConsumedPct >= 100 {
			return VictoryResult{Kind: VictoryCityConsumed, Percentage: 100}
		}
		if timeRemaining <= 0 {
			return VictoryResult{Kind: VictoryCityConsumed, Percentage: cityConsumedPct}
		}
	default: // Classic
		if timeRemaining <= 0 {
			return VictoryResult{Kind: VictoryTimeUp}
		}
	}
	return VictoryResult{Kind: VictoryNone}
}
