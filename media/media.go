// Package media models the media-player exercise: a player is stopped,
// playing a track or paused on a track.
package media

import "fmt"

// State is the player mode.
type State string

const (
	Stopped State = "stopped"
	Playing State = "playing"
	Paused  State = "paused"
)

func (s State) String() string {
	return string(s)
}

// Player couples the mode with the track it applies to. Track is ignored
// while Stopped.
type Player struct {
	State State  `json:"state" yaml:"state"`
	Track string `json:"track,omitempty" yaml:"track,omitempty"`
}

// Describe maps a player to its status line.
func Describe(p Player) string {
	switch p.State {
	case Playing:
		return fmt.Sprintf("Playing %s", p.Track)
	case Paused:
		return fmt.Sprintf("Paused %s", p.Track)
	default:
		return "Nothing to play"
	}
}

func (p Player) String() string {
	return Describe(p)
}
