package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

// ToneKind selects a short feedback cue played during digit entry.
type ToneKind int

const (
	ToneTick    ToneKind = iota // correct digit entered
	ToneError                   // fresh mismatch
	ToneSuccess                 // alarm dismissed
)

const audioSampleRate = beep.SampleRate(44100)

// AudioSession drives the speaker. Construction failure leaves the session
// in a silent state where every method is a no-op, so a headless host (or a
// busy audio device) never takes the clock down with it.
type AudioSession struct {
	mu    sync.Mutex
	ready bool
}

// NewAudioSession initializes the speaker. The returned session is always
// usable; the error only reports why audio is unavailable.
func NewAudioSession(enabled bool) (*AudioSession, error) {
	s := &AudioSession{}
	if !enabled {
		return s, nil
	}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/20)); err != nil {
		return s, fmt.Errorf("init speaker: %w", err)
	}
	s.ready = true
	return s, nil
}

// Ready reports whether a speaker is attached.
func (s *AudioSession) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// PlayFeedbackTone plays a short cue on top of whatever alarm pattern is
// running; the speaker mixes concurrent streams.
func (s *AudioSession) PlayFeedbackTone(kind ToneKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}

	var st beep.Streamer
	switch kind {
	case ToneError:
		st = s.tone(220, 180*time.Millisecond, -1.0)
	case ToneSuccess:
		st = beep.Seq(
			s.tone(660, 120*time.Millisecond, -0.5),
			s.tone(880, 200*time.Millisecond, -0.5),
		)
	default:
		st = s.tone(880, 60*time.Millisecond, -1.5)
	}
	speaker.Play(st)
}

// PlayAlarmPattern replaces the current pattern with the one for the given
// escalation level: higher levels beep faster, higher and louder, and the
// aggressive tier switches to a two-tone warble.
func (s *AudioSession) PlayAlarmPattern(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	if level < 1 {
		level = 1
	}

	p := patternFor(level)

	speaker.Clear()
	speaker.Play(beep.Iterate(func() beep.Streamer {
		cycle := []beep.Streamer{s.tone(p.freq, p.beep, p.gain)}
		if p.warbleFreq > 0 {
			cycle = append(cycle, s.tone(p.warbleFreq, p.beep, p.gain))
		}
		cycle = append(cycle, beep.Silence(audioSampleRate.N(p.gap)))
		return beep.Seq(cycle...)
	}))
}

// StopAll silences the speaker immediately.
func (s *AudioSession) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	speaker.Clear()
}

// tone builds a fixed-length sine burst at the given gain (Volume base 2,
// so -1.0 is half amplitude).
func (s *AudioSession) tone(freq float64, d time.Duration, gain float64) beep.Streamer {
	sine, err := generators.SinTone(audioSampleRate, int(freq))
	if err != nil {
		return beep.Silence(audioSampleRate.N(d))
	}
	return &effects.Volume{
		Streamer: beep.Take(audioSampleRate.N(d), sine),
		Base:     2,
		Volume:   gain,
	}
}

type alarmPattern struct {
	freq       float64
	warbleFreq float64 // 0 disables the warble
	beep       time.Duration
	gap        time.Duration
	gain       float64
}

// patternFor maps an escalation level to its ring cadence.
func patternFor(level int) alarmPattern {
	switch {
	case level >= AggressiveLevel:
		return alarmPattern{freq: 1320, warbleFreq: 990, beep: 150 * time.Millisecond, gap: 80 * time.Millisecond, gain: 0.5}
	case level == 3:
		return alarmPattern{freq: 1100, beep: 200 * time.Millisecond, gap: 200 * time.Millisecond, gain: 0}
	case level == 2:
		return alarmPattern{freq: 950, beep: 250 * time.Millisecond, gap: 350 * time.Millisecond, gain: -0.5}
	default:
		return alarmPattern{freq: 880, beep: 300 * time.Millisecond, gap: 500 * time.Millisecond, gain: -1.0}
	}
}
