package main

// AccoladeDef is one end-of-round accolade
type AccoladeDef struct {
	ID          string
	Name        string
	Description string
}

// RoundStats is the per-player summary an accolade check runs against
type RoundStats struct {
	ObjectsConsumed int
	Eliminations    int
	Deaths          int
	FinalRank       int
	TimeAlive       float64
	Percentage      float64
	Won             bool
	RoundComplete   bool // the clock ran out rather than an early elimination
}

var Accolades = []AccoladeDef{
	{"first_bite", "First Bite", "Swallow your first object"},
	{"demolisher", "Demolisher", "Swallow 50 objects in one round"},
	{"city_eater", "City Eater", "Swallow 150 objects in one round"},
	{"predator", "Predator", "Eliminate another hole"},
	{"apex", "Apex Predator", "Eliminate 3 holes in one round"},
	{"untouchable", "Untouchable", "Finish a round without being swallowed"},
	{"champion", "Champion", "Finish in first place"},
	{"landslide", "Landslide", "Consume over half the city"},
	{"survivor", "Survivor", "Stay alive for the full round"},
}

// CheckAccolades returns the accolades earned this round, in table order
func CheckAccolades(stats RoundStats) []AccoladeDef {
	var earned []AccoladeDef
	for _, a := range Accolades {
		if accoladeEarned(a.ID, stats) {
			earned = append(earned, a)
		}
	}
	return earned
}

func accoladeEarned(id string, s RoundStats) bool {
	switch id {
	case "first_bite":
		return s.ObjectsConsumed >= 1
	case "demolisher":
		return s.ObjectsConsumed >= 50
	case "city_eater":
		return s.ObjectsConsumed >= 150
	case "predator":
		return s.Eliminations >= 1
	case "apex":
		return s.Eliminations >= 3
	case "untouchable":
		return s.Deaths == 0 && s.RoundComplete
	case "champion":
		return s.Won || s.FinalRank == 1
	case "landslide":
		return s.Percentage > 50
	case "survivor":
		return s.RoundComplete
	}
	return false
}
