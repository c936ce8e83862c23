package service

import (
	"context"
	"time"

	"pi_alarm_clock"
	"pi_alarm_clock/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// AlarmClock exposes the control surface of the clock: arming, clearing,
// digit entry and the observable snapshot.
type AlarmClock interface {
	SetAlarm(ctx context.Context, p AlarmParams) error
	ClearAlarm(ctx context.Context) error
	SubmitInput(ctx context.Context, text string) (pi_alarm_clock.ScoreResult, error)
	Snapshot(ctx context.Context) pi_alarm_clock.ClockSnapshot
}

// Scheduler runs the background loop that polls wall-clock time and fires
// the alarm. Stop via context cancellation in main() for graceful shutdown.
type Scheduler interface {
	Run(ctx context.Context, tick time.Duration)
}

// EventLog exposes append-only history with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]pi_alarm_clock.ClockEvent, error)
}

// Audio is the output collaborator the clock drives. A silent implementation
// is valid: audio failures never block verification or scheduling.
type Audio interface {
	PlayFeedbackTone(kind ToneKind)
	PlayAlarmPattern(level int)
	StopAll()
}

// AlarmParams carries a requested wake-up time.
type AlarmParams struct {
	Hour   int // 0–23
	Minute int // 0–59
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "ARMED", "CLEARED", "TRIGGERED", "ESCALATION", "DISMISSED"
}

// Options tunes the composed services. Zero values pick defaults.
type Options struct {
	Audio          Audio         // nil degrades to silent operation
	EscalationTick time.Duration // internal escalation tick (default 1s)
	EscalationStep time.Duration // seconds of ringing per level (default 10s)
	AuthSigningKey string        // HMAC key for JWT signing
	AuthTokenTTL   time.Duration // token lifetime (default 1h)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	AlarmClock
	Scheduler
	EventLog
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	clock := NewClockService(repos.EventRepo, opts.Audio,
		NewEscalationTimer(opts.EscalationTick, opts.EscalationStep))

	return &Service{
		AlarmClock: clock,
		Scheduler:  NewSchedulerService(clock),
		EventLog:   NewEventLogService(repos.EventRepo),
		Authorization: NewAuthService(repos.Auth, AuthConfig{
			SigningKey: opts.AuthSigningKey,
			TokenTTL:   opts.AuthTokenTTL,
		}),
	}
}
