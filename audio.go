package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"subnautic/game"
)

const sampleRate = beep.SampleRate(44100)

// tone is one synthesized note of a sound effect
type tone struct {
	freq     float64
	duration time.Duration
	square   bool
}

// effectTones are placeholder sounds, one short melody per key
var effectTones = map[game.SoundKey][]tone{
	game.SoundTorpedoLaunch: {{freq: 220, duration: 60 * time.Millisecond}, {freq: 330, duration: 90 * time.Millisecond}},
	game.SoundTorpedoHit:    {{freq: 90, duration: 180 * time.Millisecond, square: true}},
	game.SoundSonarPing:     {{freq: 1320, duration: 350 * time.Millisecond}},
	game.SoundDamage:        {{freq: 140, duration: 120 * time.Millisecond, square: true}},
	game.SoundLowHealth:     {{freq: 880, duration: 100 * time.Millisecond}, {freq: 660, duration: 100 * time.Millisecond}},
	game.SoundTeleport:      {{freq: 440, duration: 70 * time.Millisecond}, {freq: 660, duration: 70 * time.Millisecond}, {freq: 990, duration: 90 * time.Millisecond}},
	game.SoundRespawn:       {{freq: 523, duration: 120 * time.Millisecond}, {freq: 784, duration: 200 * time.Millisecond}},
}

// beepAudio plays synthesized effects through the speaker mixer
type beepAudio struct {
	mixer  *beep.Mixer
	volume float64
	log    *logrus.Entry
}

// newAudio initialises the speaker. On failure the game runs silent.
func newAudio(volume float64, log *logrus.Entry) game.Audio {
	log = log.WithField("component", "audio")
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.WithError(err).Warn("audio unavailable, running silent")
		return game.NopAudio{}
	}

	a := &beepAudio{mixer: &beep.Mixer{}, volume: volume, log: log}
	speaker.Play(a.mixer)
	return a
}

// Play queues the effect for key; unknown keys are ignored
func (a *beepAudio) Play(key game.SoundKey) {
	tones, ok := effectTones[key]
	if !ok {
		a.log.WithField("sound", key).Debug("unknown sound")
		return
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, envelope(newOscillator(t, sampleRate), t.duration))
	}
	s := withVolume(beep.Seq(parts...), a.volume)

	speaker.Lock()
	a.mixer.Add(s)
	speaker.Unlock()
}

// oscillator generates a sine or square wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	square   bool
	position int
	samples  int
	rate     beep.SampleRate
}

func newOscillator(t tone, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: t.freq, square: t.square, samples: rate.N(t.duration), rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.samples {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		if o.square {
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades the streamer in and out to avoid clicks
func envelope(s beep.Streamer, d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	ramp := max(1, total/8)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			vol := 1.0
			switch {
			case pos < ramp:
				vol = float64(pos) / float64(ramp)
			case total-pos < ramp:
				vol = float64(max(0, total-pos)) / float64(ramp)
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
			pos++
		}
		return n, ok
	})
}

// withVolume scales the stream; volume 1 is unchanged and 0 is silent
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
