package publisher

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"TxVisualizer/internal/domain"
	"TxVisualizer/internal/platform/messaging/zeromq/message"

	"github.com/go-zeromq/zmq4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestTopicFor(t *testing.T) {
	assert.Equal(t, STATUS_TOPIC, TopicFor(domain.EventStatus))
	assert.Equal(t, LINK_TOPIC, TopicFor(domain.EventLink))
	assert.Equal(t, DURATION_TOPIC, TopicFor(domain.EventDuration))
	assert.Equal(t, VERDICT_TOPIC, TopicFor(domain.EventVerdict))
}

func TestZeroMQEventPublisher_SubscriberReceivesLinkEvents(t *testing.T) {
	port := freePort(t)
	pub := NewZeroMQEventPublisher(zap.NewNop())
	require.NoError(t, pub.Listen(port))
	defer pub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	sub := zmq4.NewSub(ctx)
	defer sub.Close()
	require.NoError(t, sub.SetOption(zmq4.OptionSubscribe, LINK_TOPIC))
	require.NoError(t, sub.Dial(fmt.Sprintf("tcp://127.0.0.1:%d", port)))

	event := domain.Event{
		Kind:       domain.EventLink,
		TransferId: "t-1",
		Link:       &domain.TransferLink{From: "Account A", To: "Account B", Amount: decimal.NewFromInt(100)},
	}

	// PUB drops messages until the subscription has propagated.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_ = pub.Publish(domain.Event{Kind: domain.EventStatus, Status: &domain.StatusUpdate{Text: "ignored"}})
				_ = pub.Publish(event)
			}
		}
	}()

	msg, err := sub.Recv()
	require.NoError(t, err)
	require.Len(t, msg.Frames, 2)
	assert.Equal(t, LINK_TOPIC, string(msg.Frames[0]))

	got, err := UnmarshalEventMessage(msg.Frames[1])
	require.NoError(t, err)
	assert.Equal(t, "t-1", got.TransferId)
	require.NotNil(t, got.Link)
	assert.Equal(t, "Account A", got.Link.From)
	assert.Equal(t, "100", got.Link.Amount)
}

func TestMarshalEventMessage_Verdict(t *testing.T) {
	verdict := domain.Verdict{BatchId: "b-1", FailedCount: 2, Total: 4}
	payload, err := MarshalEventMessage(message.EventMessageFrom(domain.Event{Kind: domain.EventVerdict, Verdict: &verdict}))
	require.NoError(t, err)

	got, err := UnmarshalEventMessage(payload)
	require.NoError(t, err)
	require.NotNil(t, got.Verdict)
	assert.Equal(t, 2, got.Verdict.FailedCount)
	assert.Equal(t, "2 transaction(s) failed due to deadlock!", got.Verdict.Message)
	assert.Nil(t, got.Status)
}

func TestUnmarshalEventMessage_Given_Garbage_then_WrappedError(t *testing.T) {
	_, err := UnmarshalEventMessage([]byte("{not json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshalling event message")
}
