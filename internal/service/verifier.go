package service

import (
	"strings"

	"pi_alarm_clock"
)

// Verifier scores user input against a fixed digit sequence.
// Matching is strictly positional: the longest contiguous prefix from index 0
// counts, and a wrong digit mid-stream caps progress until the user corrects
// it. The buffer is never truncated on error.
type Verifier struct {
	digits string
}

// NewVerifier returns a verifier over the built-in pi digit sequence.
func NewVerifier() *Verifier {
	return &Verifier{digits: piDigits}
}

// NewVerifierWithDigits returns a verifier over a custom sequence.
func NewVerifierWithDigits(digits string) *Verifier {
	return &Verifier{digits: digits}
}

// SequenceLength reports how many target digits are available.
func (v *Verifier) SequenceLength() int {
	return len(v.digits)
}

// Normalize strips a single optional leading "3", then an optional ".",
// then every remaining non-digit character, preserving order.
// "3.14a15" and "31415" both normalize to "1415".
func (v *Verifier) Normalize(text string) string {
	rest := text
	if strings.HasPrefix(rest, "3") {
		rest = strings.TrimPrefix(rest[1:], ".")
	}

	var b strings.Builder
	for _, r := range rest {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Score compares the candidate text against the digit sequence.
// requiredDigits is the completion target (HHMM of the alarm time).
func (v *Verifier) Score(requiredDigits int, candidate string) pi_alarm_clock.ScoreResult {
	entered := v.Normalize(candidate)

	prefix := 0
	for prefix < len(entered) && prefix < len(v.digits) && entered[prefix] == v.digits[prefix] {
		prefix++
	}

	return pi_alarm_clock.ScoreResult{
		CorrectPrefixLength: prefix,
		EnteredDigits:       len(entered),
		HasMismatch:         len(entered) > 0 && prefix < len(entered),
		IsComplete:          prefix >= requiredDigits,
	}
}
