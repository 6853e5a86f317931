package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventKind string

const (
	EventStatus   EventKind = "status"
	EventLink     EventKind = "link"
	EventDuration EventKind = "duration"
	EventVerdict  EventKind = "verdict"
)

type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

type Phase string

const (
	PhaseValidating    Phase = "validating"
	PhaseAttempting    Phase = "attempting"
	PhaseWaitingOnLock Phase = "waiting_on_lock"
	PhaseSucceeded     Phase = "succeeded"
	PhaseFailed        Phase = "failed"
)

type StatusUpdate struct {
	Phase  Phase         `json:"phase"`
	Tone   Tone          `json:"tone"`
	Text   string        `json:"text"`
	Reason FailureReason `json:"reason,omitempty"`
	// Locked and Waiting are set in PhaseWaitingOnLock.
	Locked  string `json:"locked,omitempty"`
	Waiting string `json:"waiting,omitempty"`
}

type TransferLink struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

type DurationSample struct {
	Duration time.Duration `json:"duration"`
}

// Seconds rounds to hundredths, the resolution the efficiency chart shows.
func (d DurationSample) Seconds() float64 {
	return float64(d.Duration.Round(10*time.Millisecond)) / float64(time.Second)
}

// Event is what the core hands to presentation adapters. Exactly one of the
// payload fields is set, matching Kind.
type Event struct {
	Kind       EventKind       `json:"kind"`
	Scenario   string          `json:"scenario,omitempty"`
	BatchId    string          `json:"batch_id,omitempty"`
	TransferId string          `json:"transfer_id,omitempty"`
	Timestamp  int64           `json:"timestamp"`
	Status     *StatusUpdate   `json:"status,omitempty"`
	Link       *TransferLink   `json:"link,omitempty"`
	Duration   *DurationSample `json:"duration,omitempty"`
	Verdict    *Verdict        `json:"verdict,omitempty"`
}

type EventPublisher interface {
	Publish(event Event) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(Event) error { return nil }
