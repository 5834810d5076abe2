// Package audio synthesises the short click played when a stone lands.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/Garsondee/fancy-go/internal/board"
)

const (
	clickDuration = 90 * time.Millisecond
	clickAttack   = 4 * time.Millisecond
	clickRelease  = 70 * time.Millisecond
)

// tone is a sine oscillator of fixed length.
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{freq: freq, duration: rate.N(d), rate: rate}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// clickPitch gives each color its own fundamental.
func clickPitch(c board.Color) float64 {
	if c == board.White {
		return 660
	}
	return 440
}

// Click returns the placement sound for a stone of color c: a fundamental
// plus a quieter octave, both enveloped. The stream ends after clickDuration.
func Click(c board.Color, rate beep.SampleRate, volume float64) beep.Streamer {
	f := clickPitch(c)
	fund := newEnvelope(newTone(f, clickDuration, rate), clickDuration, clickAttack, clickRelease, rate)
	over := newEnvelope(newTone(2*f, clickDuration, rate), clickDuration, clickAttack, clickRelease/2, rate)
	mixed := beep.Mix(withVolume(fund, 0.7), withVolume(over, 0.3))
	return beep.Take(rate.N(clickDuration), withVolume(mixed, volume))
}

// withVolume scales linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
