package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/fancy-go/internal/board"
)

const sampleRate = beep.SampleRate(44100)

// Player plays placement clicks through the default audio device. A Player
// whose device failed to open stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer opens the audio device. Errors are returned so the caller can
// log them, but the returned Player is always usable.
func NewPlayer(volume float64) (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}, volume: volume}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return p, err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// PlayPlacement queues the click for a stone of color c.
func (p *Player) PlayPlacement(c board.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(Click(c, sampleRate, p.volume))
	speaker.Unlock()
	logrus.WithField("color", c).Trace("placement click queued")
}

// Close silences any queued sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
