package main

import "encoding/json"

// Client -> Server message types
const (
	MsgJoin   = "join"
	MsgLeave  = "leave"
	MsgInput  = "input"
	MsgPause  = "pause"
	MsgResume = "resume"
)

// Server -> Client message types
const (
	MsgWelcome  = "welcome"
	MsgState    = "state" // binary frames only, never wrapped in JSON
	MsgGameOver = "gameover"
	MsgError    = "error"
)

// Envelope wraps all outgoing JSON messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages; json.RawMessage defers payload decoding
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// JoinMsg starts a new session for the connecting player
type JoinMsg struct {
	Name string `json:"name"`
	Mode int    `json:"mode"`
	Seed int64  `json:"seed,omitempty"` // 0 picks a random seed
}

// ClientInput is sent by the client each input frame
type ClientInput struct {
	DX   float64 `json:"dx"` // movement direction, client-normalized
	DY   float64 `json:"dy"`
	Dash bool    `json:"dash"`
}

// StreetState describes one street of the generated city
type StreetState struct {
	Rect     Rect `json:"r"`
	IsAvenue bool `json:"av,omitempty"`
}

// ObjectInit is the static part of a world object, sent once on welcome
type ObjectInit struct {
	ID    uint32  `json:"id" msgpack:"id"`
	Type  int     `json:"t" msgpack:"t"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	W     float64 `json:"w" msgpack:"w"`
	H     float64 `json:"h" msgpack:"h"`
	Size  float64 `json:"s" msgpack:"s"`
	Color Color   `json:"c" msgpack:"c"`
}

// BlockState describes one city block
type BlockState struct {
	Rect   Rect `json:"r"`
	IsPark bool `json:"pk,omitempty"`
}

// WorldMsg carries the full generated city, sent once per session
type WorldMsg struct {
	Width   float64       `json:"w"`
	Height  float64       `json:"h"`
	Streets []StreetState `json:"st"`
	Blocks  []BlockState  `json:"b"`
	Objects []ObjectInit  `json:"o"`
}

// WelcomeMsg is sent to the player when their session starts
type WelcomeMsg struct {
	SessionID string   `json:"sid"`
	HoleID    uint32   `json:"hid"`
	Mode      int      `json:"mode"`
	ModeName  string   `json:"mn"`
	Duration  float64  `json:"dur"`
	ShowTimer bool     `json:"timer"`
	World     WorldMsg `json:"world"`
}

// HoleState is broadcast per hole each state frame
type HoleState struct {
	ID       uint32  `json:"id" msgpack:"id"`
	Name     string  `json:"n" msgpack:"n"`
	X        float64 `json:"x" msgpack:"x"`
	Y        float64 `json:"y" msgpack:"y"`
	Radius   float64 `json:"r" msgpack:"r"`
	Color    Color   `json:"c" msgpack:"c"`
	IsPlayer bool    `json:"pl,omitempty" msgpack:"pl"`
	Alive    bool    `json:"a" msgpack:"a"`
	Dash     bool    `json:"d,omitempty" msgpack:"d"`
	DashCD   float64 `json:"dcd" msgpack:"dcd"`
	Invinc   bool    `json:"inv,omitempty" msgpack:"inv"`
	Skin     int     `json:"sk,omitempty" msgpack:"sk"`
	Border   int     `json:"bs,omitempty" msgpack:"bs"`
	Pulse    float64 `json:"pu" msgpack:"pu"`
}

// ObjectUpdate is broadcast per falling object each state frame
type ObjectUpdate struct {
	ID       uint32  `json:"id" msgpack:"id"`
	X        float64 `json:"x" msgpack:"x"`
	Y        float64 `json:"y" msgpack:"y"`
	Scale    float64 `json:"s" msgpack:"s"`
	Alpha    float64 `json:"al" msgpack:"al"`
	Rotation float64 `json:"rot" msgpack:"rot"`
}

// ClockState is the timer portion of the broadcast
type ClockState struct {
	Remaining float64 `json:"rem" msgpack:"rem"`
	Formatted string  `json:"fmt" msgpack:"fmt"`
	Running   bool    `json:"run" msgpack:"run"`
}

// GameState is the full state broadcast, encoded as msgpack binary
type GameState struct {
	Tick        uint64             `msgpack:"tick"`
	Clock       ClockState         `msgpack:"clk"`
	Holes       []HoleState        `msgpack:"h"`
	Falling     []ObjectUpdate     `msgpack:"f"`
	Consumed    []uint32           `msgpack:"con"`
	Particles   []ParticleEvent    `msgpack:"pt"`
	Ripples     []RippleEvent      `msgpack:"rp"`
	Board       []LeaderboardEntry `msgpack:"lb"`
	Consumption float64            `msgpack:"pct"`
}

// GameOverMsg ends the session from the client's point of view
type GameOverMsg struct {
	Kind       int      `json:"kind"`
	KindName   string   `json:"kn"`
	WinnerName string   `json:"wn,omitempty"`
	KillerName string   `json:"killer,omitempty"`
	PlayerRank int      `json:"rank"`
	FinalSize  float64  `json:"size"`
	Percentage float64  `json:"pct"`
	XP         int      `json:"xp"`
	Medal      string   `json:"medal"`
	Accolades  []string `json:"acc,omitempty"`
}

// ErrorMsg sends error to client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// ToState converts a hole for broadcast
func (h *Hole) ToState() HoleState {
	return HoleState{
		ID:       h.ID,
		Name:     h.Name,
		X:        round1(h.X),
		Y:        round1(h.Y),
		Radius:   round1(h.Radius),
		Color:    h.Color,
		IsPlayer: h.IsPlayer,
		Alive:    h.Alive,
		Dash:     h.DashActive > 0,
		DashCD:   round1(h.DashCooldown),
		Invinc:   h.Invincible > 0,
		Skin:     int(h.SkinPattern),
		Border:   int(h.BorderStyle),
		Pulse:    round1(h.PulseT),
	}
}

// ToInit converts a world object for the one-time world dump
func (o *WorldObject) ToInit() ObjectInit {
	return ObjectInit{
		ID:    o.ID,
		Type:  int(o.Type),
		X:     round1(o.X),
		Y:     round1(o.Y),
		W:     round1(o.Width),
		H:     round1(o.Height),
		Size:  round1(o.Size),
		Color: o.Color,
	}
}

// ToUpdate converts a falling object for broadcast
func (o *WorldObject) ToUpdate() ObjectUpdate {
	return ObjectUpdate{
		ID:       o.ID,
		X:        round1(o.X),
		Y:        round1(o.Y),
		Scale:    o.VisualScale(),
		Alpha:    o.VisualAlpha(),
		Rotation: o.Fall.Rotation,
	}
}

// buildWorldMsg flattens the generated city for the welcome message
func buildWorldMsg(w *World) WorldMsg {
	msg := WorldMsg{
		Width:   w.Width,
		Height:  w.Height,
		Streets: make([]StreetState, 0, len(w.Streets)),
		Objects: make([]ObjectInit, 0, len(w.Objects)),
	}
	for _, st := range w.Streets {
		msg.Streets = append(msg.Streets, StreetState{Rect: st.Rect, IsAvenue: st.IsAvenue})
	}
	for _, b := range w.Blocks {
		msg.Blocks = append(msg.Blocks, BlockState{Rect: b.Rect, IsPark: b.IsPark})
	}
	for i := range w.Objects {
		msg.Objects = append(msg.Objects, w.Objects[i].ToInit())
	}
	return msg
}
