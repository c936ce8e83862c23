package pi_alarm_clock

import "time"

// AlarmState is the lifecycle phase of the clock.
type AlarmState string

const (
	StateIdle      AlarmState = "IDLE"      // no alarm configured
	StateArmed     AlarmState = "ARMED"     // waiting for the wake-up time
	StateTriggered AlarmState = "TRIGGERED" // ringing, awaiting digit entry
)

// Event types recorded in the clock history.
const (
	EventArmed      = "ARMED"
	EventCleared    = "CLEARED"
	EventTriggered  = "TRIGGERED"
	EventEscalation = "ESCALATION"
	EventDismissed  = "DISMISSED"
)

// AlarmConfig is the user-selected wake-up time. It lives only in memory
// for the session; there is no persisted alarm.
type AlarmConfig struct {
	Hour   int `json:"hour"`   // 0–23
	Minute int `json:"minute"` // 0–59
}

// RequiredDigits is the number of pi digits that unlocks dismissal:
// the numeric value of the zero-padded HHMM (07:15 -> 715). Always in [0, 2359].
func (c AlarmConfig) RequiredDigits() int {
	return c.Hour*100 + c.Minute
}

// ScoreResult describes how a candidate input compares against the pi digit
// sequence. The prefix is strictly contiguous from position zero; a mismatch
// caps it but never resets it.
type ScoreResult struct {
	CorrectPrefixLength int  `json:"correct_prefix_length"`
	EnteredDigits       int  `json:"entered_digits"`
	HasMismatch         bool `json:"has_mismatch"`
	IsComplete          bool `json:"is_complete"`
}

// ClockSnapshot is the read-only view of the clock exposed to displays.
type ClockSnapshot struct {
	State               AlarmState   `json:"state"`
	Alarm               *AlarmConfig `json:"alarm,omitempty"`
	RequiredDigits      int          `json:"required_digits"`
	CorrectPrefixLength int          `json:"correct_prefix_length"`
	EnteredDigits       int          `json:"entered_digits"`
	HasMismatch         bool         `json:"has_mismatch"`
	EscalationLevel     int          `json:"escalation_level"` // 0 unless TRIGGERED
	TriggeredAt         *time.Time   `json:"triggered_at,omitempty"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// ClockEvent is a single history entry.
type ClockEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // ARMED | CLEARED | TRIGGERED | ESCALATION | DISMISSED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
}
