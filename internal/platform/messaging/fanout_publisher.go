package messaging

import (
	"TxVisualizer/internal/domain"

	"github.com/cockroachdb/errors"
)

// FanOutPublisher hands every event to each publisher in turn. A failing
// publisher does not stop the others; their errors are combined.
type FanOutPublisher struct {
	publishers []domain.EventPublisher
}

func NewFanOutPublisher(publishers ...domain.EventPublisher) *FanOutPublisher {
	var ps []domain.EventPublisher
	for _, p := range publishers {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return &FanOutPublisher{publishers: ps}
}

func (f *FanOutPublisher) Publish(event domain.Event) error {
	var combined error
	for _, p := range f.publishers {
		if err := p.Publish(event); err != nil {
			combined = errors.CombineErrors(combined, err)
		}
	}
	return combined
}
