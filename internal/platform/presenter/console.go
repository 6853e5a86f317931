package presenter

import (
	"fmt"
	"io"
	"strings"

	"TxVisualizer/internal/domain"
	"TxVisualizer/internal/syncutil"
)

const chartWidth = 40

// Console renders the event stream as text: one line per status change, a
// line per transfer arrow, and the efficiency chart after each verdict. It
// owns all display state; the engine only ever sends it events.
type Console struct {
	out       io.Writer
	mu        syncutil.Mutex
	durations map[string][]float64
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out, durations: make(map[string][]float64)}
}

// Consume renders events until the channel is closed, then closes done.
func (c *Console) Consume(events <-chan domain.Event, done chan<- struct{}) {
	for e := range events {
		c.Render(e)
	}
	if done != nil {
		close(done)
	}
}

func (c *Console) Render(e domain.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch e.Kind {
	case domain.EventStatus:
		fmt.Fprintf(c.out, "%s %s\n", toneMarker(e.Status.Tone), e.Status.Text)
	case domain.EventLink:
		fmt.Fprintf(c.out, "      %s ──$%s──▶ %s\n", e.Link.From, e.Link.Amount, e.Link.To)
	case domain.EventDuration:
		c.durations[e.Scenario] = append(c.durations[e.Scenario], e.Duration.Seconds())
	case domain.EventVerdict:
		marker := toneMarker(domain.ToneSuccess)
		if !e.Verdict.AllSucceeded {
			marker = toneMarker(domain.ToneError)
		}
		fmt.Fprintf(c.out, "%s %s\n", marker, e.Verdict.Message())
		c.chart(e.Scenario)
	}
}

// Durations returns the efficiency samples recorded so far for a scenario.
func (c *Console) Durations(scenario string) []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]float64, len(c.durations[scenario]))
	copy(out, c.durations[scenario])
	return out
}

func (c *Console) chart(scenario string) {
	samples := c.durations[scenario]
	if len(samples) == 0 {
		return
	}
	max := 0.0
	for _, s := range samples {
		if s > max {
			max = s
		}
	}
	fmt.Fprintf(c.out, "Transaction Time Efficiency (%s)\n", scenario)
	for i, s := range samples {
		width := 1
		if max > 0 {
			width = int(s / max * chartWidth)
		}
		if width < 1 {
			width = 1
		}
		fmt.Fprintf(c.out, "  #%-3d %s %.2fs\n", i+1, strings.Repeat("█", width), s)
	}
}

func toneMarker(t domain.Tone) string {
	switch t {
	case domain.ToneSuccess:
		return "[ ok ]"
	case domain.ToneError:
		return "[fail]"
	default:
		return "[ .. ]"
	}
}
