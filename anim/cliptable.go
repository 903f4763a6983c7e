package anim

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingClip is returned when a lookup finds no entry for a key. Callers
// fall back to the idle-down clip or surface a configuration error.
var ErrMissingClip = errors.New("anim: clip not mapped")

// Clip locates one action+direction animation inside a spritesheet.
type Clip struct {
	Row        int // sheet row holding the clip's frames
	StartFrame int // column of the first frame within the row
	FrameCount int // number of frames in the clip
	FrameRate  int // playback rate in frames per second
}

// ClipTable maps typed clip keys to sheet locations. It is built once at
// startup (or edited in the mapping editor) and read-only afterwards; all
// entities sharing a sheet layout share one table.
type ClipTable struct {
	FrameWidth  int
	FrameHeight int
	Clips       map[ClipKey]Clip
}

// DefaultTable returns the table matching the generator's fixed sheet layout:
// twelve rows ordered idle(down,left,right,up), walk(...), run(...).
func DefaultTable(frameWidth, frameHeight int) *ClipTable {
	t := &ClipTable{
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Clips:       make(map[ClipKey]Clip, PlayableActionCount*int(DirectionCount)),
	}
	rates := map[Action]int{ActionIdle: 6, ActionWalk: 10, ActionRun: 14}
	row := 0
	for a := ActionIdle; a <= ActionRun; a++ {
		for d := DirDown; d < DirectionCount; d++ {
			t.Clips[ClipKey{Action: a, Direction: d}] = Clip{
				Row:        row,
				StartFrame: 0,
				FrameCount: FrameCount(a),
				FrameRate:  rates[a],
			}
			row++
		}
	}
	return t
}

// Lookup resolves a clip for the key, or ErrMissingClip.
func (t *ClipTable) Lookup(key ClipKey) (Clip, error) {
	c, ok := t.Clips[key]
	if !ok {
		return Clip{}, fmt.Errorf("%w: %s", ErrMissingClip, key.Name())
	}
	return c, nil
}

// LookupOrDefault resolves a clip, falling back to idle-down when the key is
// unmapped. The bool reports whether the requested key itself was found.
func (t *ClipTable) LookupOrDefault(key ClipKey) (Clip, bool) {
	if c, err := t.Lookup(key); err == nil {
		return c, true
	}
	c, _ := t.Lookup(ClipKey{Action: ActionIdle, Direction: DirDown})
	return c, false
}

// Set stores a clip entry. Used by the mapping editor.
func (t *ClipTable) Set(key ClipKey, c Clip) {
	t.Clips[key] = c
}

// Validate checks the table invariants: positive frame geometry, positive
// frame counts and rates, non-negative rows and start frames, and no two
// clips sharing a row.
func (t *ClipTable) Validate() error {
	if t.FrameWidth <= 0 || t.FrameHeight <= 0 {
		return fmt.Errorf("anim: invalid frame size %dx%d", t.FrameWidth, t.FrameHeight)
	}
	rows := make(map[int]ClipKey, len(t.Clips))
	for key, c := range t.Clips {
		if c.Row < 0 || c.StartFrame < 0 {
			return fmt.Errorf("anim: clip %s has negative placement", key.Name())
		}
		if c.FrameCount <= 0 {
			return fmt.Errorf("anim: clip %s has frame count %d", key.Name(), c.FrameCount)
		}
		if c.FrameRate <= 0 {
			return fmt.Errorf("anim: clip %s has frame rate %d", key.Name(), c.FrameRate)
		}
		if other, taken := rows[c.Row]; taken {
			return fmt.Errorf("anim: clips %s and %s share row %d", other.Name(), key.Name(), c.Row)
		}
		rows[c.Row] = key
	}
	return nil
}

// clipJSON is the wire form of one table entry.
type clipJSON struct {
	Action     string `json:"action"`
	Direction  string `json:"direction"`
	Row        int    `json:"row"`
	StartFrame int    `json:"startFrame"`
	FrameCount int    `json:"frameCount"`
	FrameRate  int    `json:"frameRate"`
}

type tableJSON struct {
	FrameWidth  int        `json:"frameWidth"`
	FrameHeight int        `json:"frameHeight"`
	Animations  []clipJSON `json:"animations"`
}

// MarshalJSON encodes the table in its persisted form. Entries are emitted in
// row order so saved files diff cleanly.
func (t *ClipTable) MarshalJSON() ([]byte, error) {
	out := tableJSON{
		FrameWidth:  t.FrameWidth,
		FrameHeight: t.FrameHeight,
		Animations:  make([]clipJSON, 0, len(t.Clips)),
	}
	for key, c := range t.Clips {
		out.Animations = append(out.Animations, clipJSON{
			Action:     key.Action.String(),
			Direction:  key.Direction.String(),
			Row:        c.Row,
			StartFrame: c.StartFrame,
			FrameCount: c.FrameCount,
			FrameRate:  c.FrameRate,
		})
	}
	for i := 1; i < len(out.Animations); i++ {
		for j := i; j > 0 && out.Animations[j].Row < out.Animations[j-1].Row; j-- {
			out.Animations[j], out.Animations[j-1] = out.Animations[j-1], out.Animations[j]
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes and validates a persisted table.
func (t *ClipTable) UnmarshalJSON(data []byte) error {
	var in tableJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	decoded := ClipTable{
		FrameWidth:  in.FrameWidth,
		FrameHeight: in.FrameHeight,
		Clips:       make(map[ClipKey]Clip, len(in.Animations)),
	}
	for _, e := range in.Animations {
		a, ok := ParseAction(e.Action)
		if !ok {
			return fmt.Errorf("anim: unknown action %q", e.Action)
		}
		d, ok := ParseDirection(e.Direction)
		if !ok {
			return fmt.Errorf("anim: unknown direction %q", e.Direction)
		}
		key := ClipKey{Action: a, Direction: d}
		if _, dup := decoded.Clips[key]; dup {
			return fmt.Errorf("anim: duplicate clip %s", key.Name())
		}
		decoded.Clips[key] = Clip{
			Row:        e.Row,
			StartFrame: e.StartFrame,
			FrameCount: e.FrameCount,
			FrameRate:  e.FrameRate,
		}
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*t = decoded
	return nil
}
