package main

import "sort"

// LeaderboardEntry is one ranked row, derived from a live hole
type LeaderboardEntry struct {
	ID           uint32  `json:"id" msgpack:"id"`
	Name         string  `json:"n" msgpack:"n"`
	Size         float64 `json:"s" msgpack:"s"`
	Score        int     `json:"sc" msgpack:"sc"`
	Eliminations int     `json:"e" msgpack:"e"`
	IsPlayer     bool    `json:"p" msgpack:"p"`
	RankChange   int     `json:"rc" msgpack:"rc"` // +1 moved up, -1 moved down
}

// Leaderboard ranks the live holes by size. It keeps the previous update's
// rank-by-id mapping to derive rank-change deltas.
type Leaderboard struct {
	entries       []LeaderboardEntry
	previousRanks map[uint32]int
}

// NewLeaderboard creates an empty leaderboard
func NewLeaderboard() *Leaderboard {
	return &Leaderboard{previousRanks: make(map[uint32]int)}
}

// Update rebuilds the ranking from the live hole set. An entry that moved up
// reports +1, down -1; a first appearance reports 0.
func (l *Leaderboard) Update(holes []*Hole) {
	for i, entry := range l.entries {
		l.previousRanks[entry.ID] = i
	}

	l.entries = l.entries[:0]
	for _, h := range holes {
		if !h.Alive {
			continue
		}
		l.entries = append(l.entries, LeaderboardEntry{
			ID:           h.ID,
			Name:         h.Name,
			Size:         h.Radius,
			Score:        h.Score,
			Eliminations: h.Eliminations,
			IsPlayer:     h.IsPlayer,
		})
	}

	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Size > l.entries[j].Size
	})

	for newRank := range l.entries {
		entry := &l.entries[newRank]
		if oldRank, ok := l.previousRanks[entry.ID]; ok {
			if newRank < oldRank {
				entry.RankChange = 1
			} else if newRank > oldRank {
				entry.RankChange = -1
			}
		}
	}
}

// Top returns the first n entries
func (l *Leaderboard) Top(n int) []LeaderboardEntry {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return l.entries[:n]
}

// PlayerRank returns the player's 1-indexed rank, or 0 when the player is
// not on the board
func (l *Leaderboard) PlayerRank() int {
	for i, e := range l.entries {
		if e.IsPlayer {
			return i + 1
		}
	}
	return 0
}

// PlayerEntry returns the player's entry, or nil
func (l *Leaderboard) PlayerEntry() *LeaderboardEntry {
	for i := range l.entries {
		if l.entries[i].IsPlayer {
			return &l.entries[i]
		}
	}
	return nil
}

// Winner returns the top entry, or nil on an empty board
func (l *Leaderboard) Winner() *LeaderboardEntry {
	if len(l.entries) == 0 {
		return nil
	}
	return &l.entries[0]
}

// AliveCount returns the number of ranked (living) holes
func (l *Leaderboard) AliveCount() int {
	return len(l.entries)
}

// CalculateXP scores a finished game: survival time, consumption,
// eliminations and a rank bonus
func CalculateXP(timeAlive float64, objectsConsumed, eliminations, finalRank, totalPlayers int) int {
	timeXP := int(timeAlive / 10)
	objectXP := objectsConsumed * 2
	eliminationXP := eliminations * 50

	rankXP := 10
	if finalRank == 1 {
		rankXP = 100
	} else if finalRank <= 3 {
		rankXP = 50
	}

	return timeXP + objectXP + eliminationXP + rankXP
}

// MedalForPercentage returns the Solo-mode medal for a consumption result
func MedalForPercentage(percentage float64) string {
	switch {
	case percentage >= 100:
		return "🏆 Perfect!"
	case percentage >= 90:
		return "🥇 Gold"
	case percentage >= 75:
		return "🥈 Silver"
	case percentage >= 50:
		return "🥉 Bronze"
	}
	return "Keep trying!"
}
