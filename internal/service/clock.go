package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"pi_alarm_clock"
	"pi_alarm_clock/internal/repository"

	"github.com/google/uuid"
)

// minuteKeyLayout identifies a wall-clock minute for fire-once deduplication.
const minuteKeyLayout = "2006-01-02 15:04"

var (
	errInvalidHour   = errors.New("invalid hour: must be in 0..23")
	errInvalidMinute = errors.New("invalid minute: must be in 0..59")

	// ErrAlarmRinging is returned by SetAlarm while the alarm is ringing;
	// handlers map it to a conflict response.
	ErrAlarmRinging = errors.New("alarm is ringing: dismiss or clear it before re-arming")
)

// ClockService owns the alarm state machine (IDLE -> ARMED -> TRIGGERED),
// the single AlarmConfig, the input buffer and the escalation timer. All
// mutation goes through its mutex; the escalation callback deliberately
// avoids that mutex and touches only the event log, the audio session and an
// atomic level cell.
type ClockService struct {
	eventRepo  repository.EventRepo
	audio      Audio
	verifier   *Verifier
	escalation *EscalationTimer

	mu              sync.Mutex
	state           pi_alarm_clock.AlarmState
	alarm           *pi_alarm_clock.AlarmConfig
	rawInput        string
	lastScore       pi_alarm_clock.ScoreResult
	triggeredAt     time.Time
	lastFiredMinute string
	updatedAt       time.Time

	level atomic.Int32 // escalation level visible to snapshots
}

// NewClockService builds the controller. audio may be nil (silent operation).
func NewClockService(eventRepo repository.EventRepo, audio Audio, escalation *EscalationTimer) *ClockService {
	if audio == nil {
		audio = noopAudio{}
	}
	if escalation == nil {
		escalation = NewEscalationTimer(0, 0)
	}

	return &ClockService{
		eventRepo:  eventRepo,
		audio:      audio,
		verifier:   NewVerifier(),
		escalation: escalation,
		state:      pi_alarm_clock.StateIdle,
		updatedAt:  time.Now().UTC(),
	}
}

// SetAlarm validates and stores the wake-up time, arming the clock.
// Rejected while ringing: dismissal or an explicit clear must come first.
func (s *ClockService) SetAlarm(ctx context.Context, p AlarmParams) error {
	if p.Hour < 0 || p.Hour > 23 {
		return fmt.Errorf("%w (got %d)", errInvalidHour, p.Hour)
	}
	if p.Minute < 0 || p.Minute > 59 {
		return fmt.Errorf("%w (got %d)", errInvalidMinute, p.Minute)
	}

	now := time.Now().UTC()

	s.mu.Lock()
	if s.state == pi_alarm_clock.StateTriggered {
		s.mu.Unlock()
		return ErrAlarmRinging
	}

	cfg := pi_alarm_clock.AlarmConfig{Hour: p.Hour, Minute: p.Minute}
	s.alarm = &cfg
	s.state = pi_alarm_clock.StateArmed
	s.rawInput = ""
	s.lastScore = pi_alarm_clock.ScoreResult{}
	s.lastFiredMinute = ""
	s.updatedAt = now
	s.mu.Unlock()

	return s.appendEvent(ctx, pi_alarm_clock.EventArmed,
		fmt.Sprintf("Alarm armed for %02d:%02d", cfg.Hour, cfg.Minute),
		map[string]any{
			"hour":            cfg.Hour,
			"minute":          cfg.Minute,
			"required_digits": cfg.RequiredDigits(),
		})
}

// ClearAlarm drops the configuration from any state. Leaving TRIGGERED this
// way cancels the escalation timer and silences audio synchronously, so no
// ghost alarm survives the reset.
func (s *ClockService) ClearAlarm(ctx context.Context) error {
	now := time.Now().UTC()

	s.mu.Lock()
	wasRinging := s.state == pi_alarm_clock.StateTriggered
	s.teardownLocked(now)
	s.mu.Unlock()

	return s.appendEvent(ctx, pi_alarm_clock.EventCleared, "Alarm cleared",
		map[string]any{"was_ringing": wasRinging})
}

// SubmitInput scores the raw text field content against the pi sequence.
// While ringing, a completed prefix dismisses the alarm before this method
// returns; a fresh mismatch plays the error cue, forward progress the tick cue.
func (s *ClockService) SubmitInput(ctx context.Context, text string) (pi_alarm_clock.ScoreResult, error) {
	now := time.Now().UTC()

	s.mu.Lock()
	required := 0
	if s.alarm != nil {
		required = s.alarm.RequiredDigits()
	}

	res := s.verifier.Score(required, text)

	prev := s.lastScore
	s.rawInput = text
	s.lastScore = res
	s.updatedAt = now

	ringing := s.state == pi_alarm_clock.StateTriggered
	dismissed := ringing && res.IsComplete
	var ringingFor time.Duration
	if dismissed {
		ringingFor = now.Sub(s.triggeredAt)
		s.teardownLocked(now)
	}
	s.mu.Unlock()

	if ringing {
		switch {
		case dismissed:
			s.audio.PlayFeedbackTone(ToneSuccess)
		case res.HasMismatch && !prev.HasMismatch:
			s.audio.PlayFeedbackTone(ToneError)
		case res.CorrectPrefixLength > prev.CorrectPrefixLength:
			s.audio.PlayFeedbackTone(ToneTick)
		}
	}

	if dismissed {
		if err := s.appendEvent(ctx, pi_alarm_clock.EventDismissed,
			fmt.Sprintf("Alarm dismissed after %d correct digits", res.CorrectPrefixLength),
			map[string]any{
				"required_digits": required,
				"ringing_seconds": int(ringingFor.Seconds()),
			}); err != nil {
			return res, err
		}
	}

	return res, nil
}

// Poll samples the wall clock. Called by the scheduler at sub-minute
// granularity; fires the alarm when the armed HHMM matches at second zero,
// at most once per matching minute.
func (s *ClockService) Poll(ctx context.Context, now time.Time) {
	s.mu.Lock()
	if s.state != pi_alarm_clock.StateArmed || s.alarm == nil {
		s.mu.Unlock()
		return
	}
	if now.Hour() != s.alarm.Hour || now.Minute() != s.alarm.Minute || now.Second() != 0 {
		s.mu.Unlock()
		return
	}

	key := now.Format(minuteKeyLayout)
	if key == s.lastFiredMinute {
		s.mu.Unlock()
		return
	}
	s.lastFiredMinute = key

	s.state = pi_alarm_clock.StateTriggered
	s.triggeredAt = now
	s.rawInput = ""
	s.lastScore = pi_alarm_clock.ScoreResult{}
	s.updatedAt = now
	s.level.Store(1)

	// Start under the mutex so a racing dismissal cannot observe TRIGGERED
	// with the timer not yet running. Lock order is always mu -> escalation.
	s.escalation.Start(s.onEscalation)
	required := s.alarm.RequiredDigits()
	s.mu.Unlock()

	s.audio.PlayAlarmPattern(1)

	_ = s.appendEvent(ctx, pi_alarm_clock.EventTriggered,
		fmt.Sprintf("Alarm triggered, %d digits required", required),
		map[string]any{"required_digits": required})
}

// Snapshot returns the observable state for displays.
func (s *ClockService) Snapshot(_ context.Context) pi_alarm_clock.ClockSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := pi_alarm_clock.ClockSnapshot{
		State:               s.state,
		CorrectPrefixLength: s.lastScore.CorrectPrefixLength,
		EnteredDigits:       s.lastScore.EnteredDigits,
		HasMismatch:         s.lastScore.HasMismatch,
		EscalationLevel:     int(s.level.Load()),
		UpdatedAt:           s.updatedAt,
	}
	if s.alarm != nil {
		cfg := *s.alarm
		snap.Alarm = &cfg
		snap.RequiredDigits = cfg.RequiredDigits()
	}
	if !s.triggeredAt.IsZero() && s.state == pi_alarm_clock.StateTriggered {
		at := s.triggeredAt
		snap.TriggeredAt = &at
	}
	return snap
}

// teardownLocked is the single exit path from TRIGGERED (and from any state
// on clear): it cancels the escalation timer, silences audio and drops the
// configuration. Caller holds s.mu.
func (s *ClockService) teardownLocked(now time.Time) {
	s.escalation.Stop()
	s.audio.StopAll()
	s.state = pi_alarm_clock.StateIdle
	s.alarm = nil
	s.triggeredAt = time.Time{}
	s.level.Store(0)
	s.updatedAt = now
}

// onEscalation runs on the escalation timer goroutine, under the timer's own
// lock. It must not touch s.mu (lock order is mu -> escalation) and must not
// call Stop.
func (s *ClockService) onEscalation(level int) {
	s.level.Store(int32(level))
	s.audio.PlayAlarmPattern(level)

	_ = s.appendEvent(context.Background(), pi_alarm_clock.EventEscalation,
		fmt.Sprintf("Escalation level %d", level),
		map[string]any{
			"level":      level,
			"aggressive": level >= AggressiveLevel,
		})
}

func (s *ClockService) appendEvent(ctx context.Context, typ, description string, meta map[string]any) error {
	if s.eventRepo == nil {
		return nil
	}
	return s.eventRepo.Append(ctx, pi_alarm_clock.ClockEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
}

// noopAudio keeps the clock fully functional with no audio backend.
type noopAudio struct{}

func (noopAudio) PlayFeedbackTone(ToneKind) {}
func (noopAudio) PlayAlarmPattern(int)      {}
func (noopAudio) StopAll()                  {}
