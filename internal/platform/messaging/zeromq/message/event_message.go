package message

import (
	"time"

	"TxVisualizer/internal/domain"
)

type EventMessage struct {
	Kind       string           `json:"kind"`
	Scenario   string           `json:"scenario,omitempty"`
	BatchId    string           `json:"batch_id,omitempty"`
	TransferId string           `json:"transfer_id,omitempty"`
	Timestamp  int64            `json:"timestamp"`
	Status     *StatusMessage   `json:"status,omitempty"`
	Link       *LinkMessage     `json:"link,omitempty"`
	Duration   *DurationMessage `json:"duration,omitempty"`
	Verdict    *VerdictMessage  `json:"verdict,omitempty"`
}

type StatusMessage struct {
	Phase  string `json:"phase"`
	Tone   string `json:"tone"`
	Text   string `json:"text"`
	Reason string `json:"reason,omitempty"`
}

type LinkMessage struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type DurationMessage struct {
	Seconds float64 `json:"seconds"`
}

type VerdictMessage struct {
	AllSucceeded bool   `json:"all_succeeded"`
	FailedCount  int    `json:"failed_count"`
	Total        int    `json:"total"`
	Message      string `json:"message"`
}

func EventMessageFrom(e domain.Event) EventMessage {
	m := EventMessage{
		Kind:       string(e.Kind),
		Scenario:   e.Scenario,
		BatchId:    e.BatchId,
		TransferId: e.TransferId,
		Timestamp:  e.Timestamp,
	}
	if e.Status != nil {
		m.Status = &StatusMessage{
			Phase:  string(e.Status.Phase),
			Tone:   string(e.Status.Tone),
			Text:   e.Status.Text,
			Reason: string(e.Status.Reason),
		}
	}
	if e.Link != nil {
		m.Link = &LinkMessage{From: e.Link.From, To: e.Link.To, Amount: e.Link.Amount.String()}
	}
	if e.Duration != nil {
		m.Duration = &DurationMessage{Seconds: e.Duration.Seconds()}
	}
	if e.Verdict != nil {
		m.Verdict = &VerdictMessage{
			AllSucceeded: e.Verdict.AllSucceeded,
			FailedCount:  e.Verdict.FailedCount,
			Total:        e.Verdict.Total,
			Message:      e.Verdict.Message(),
		}
	}
	return m
}

func (m EventMessage) Time() time.Time {
	return time.Unix(0, m.Timestamp)
}
