package anim

// TickRate is the nominal update rate of the game loop, in ticks per second.
const TickRate = 60

// Playback advances through one clip's frames at the clip's frame rate,
// driven by the fixed game tick.
type Playback struct {
	clip          Clip
	ticksPerFrame float32 // how many ticks before the next frame
	frameCounter  float32
	frame         int
	Looped        bool // set once the playback has wrapped at least once
}

// NewPlayback starts a playback at the clip's first frame.
func NewPlayback(clip Clip) *Playback {
	tpf := float32(TickRate) / float32(clip.FrameRate)
	return &Playback{
		clip:          clip,
		ticksPerFrame: tpf,
		frameCounter:  tpf,
		frame:         clip.StartFrame,
	}
}

// Update advances the playback by one tick.
func (p *Playback) Update() {
	p.frameCounter -= 1.0
	if p.frameCounter < 0.0 {
		p.frameCounter = p.ticksPerFrame
		p.frame++
		if p.frame >= p.clip.StartFrame+p.clip.FrameCount {
			// loop back to the beginning
			p.Looped = true
			p.frame = p.clip.StartFrame
		}
	}
}

// Frame returns the current sheet column.
func (p *Playback) Frame() int {
	return p.frame
}

// Clip returns the clip this playback runs.
func (p *Playback) Clip() Clip {
	return p.clip
}

// Restart rewinds to the first frame and resets the frame timer.
func (p *Playback) Restart() {
	p.frame = p.clip.StartFrame
	p.frameCounter = p.ticksPerFrame
	p.Looped = false
}
