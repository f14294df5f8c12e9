// Package sound plays short audio cues for game events.
package sound

// Cue names a sound; files in the sound directory are matched by base
// name, e.g. win.mp3 or reject.wav.
type Cue string

const (
	CueSubmit Cue = "submit"
	CueReject Cue = "reject"
	CueWin    Cue = "win"
	CueLose   Cue = "lose"
)

// Known reports whether c is one of the cues the game plays.
func (c Cue) Known() bool {
	switch c {
	case CueSubmit, CueReject, CueWin, CueLose:
		return true
	}
	return false
}

// Player is what the UI needs from a sound backend.
type Player interface {
	Play(Cue)
}
