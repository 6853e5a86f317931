package publisher

import (
	"context"
	"fmt"
	"time"

	"TxVisualizer/internal/domain"
	"TxVisualizer/internal/platform/messaging/zeromq/message"
	"TxVisualizer/internal/syncutil"

	"github.com/cockroachdb/errors"
	"github.com/go-zeromq/zmq4"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	STATUS_TOPIC   = "status"
	LINK_TOPIC     = "link"
	DURATION_TOPIC = "duration"
	VERDICT_TOPIC  = "verdict"
)

// ZeroMQEventPublisher exposes the engine's event stream on a PUB socket so
// renderers in other processes can subscribe by topic.
type ZeroMQEventPublisher struct {
	pub    zmq4.Socket
	mu     syncutil.Mutex
	logger *zap.Logger
}

func NewZeroMQEventPublisher(logger *zap.Logger) *ZeroMQEventPublisher {
	reconnectOpt := zmq4.WithAutomaticReconnect(true)
	retryOpt := zmq4.WithDialerRetry(time.Second * 5)
	socket := zmq4.NewPub(context.Background(), reconnectOpt, retryOpt)
	return &ZeroMQEventPublisher{pub: socket, logger: logger}
}

func (z *ZeroMQEventPublisher) Listen(port int) error {
	address := fmt.Sprintf("tcp://*:%d", port)
	if err := z.pub.Listen(address); err != nil {
		z.logger.Error("starting event publisher", zap.String("address", address), zap.Error(err))
		return err
	}
	z.logger.Info("started event publisher", zap.String("address", address))
	return nil
}

func (z *ZeroMQEventPublisher) Publish(event domain.Event) error {
	payload, err := MarshalEventMessage(message.EventMessageFrom(event))
	if err != nil {
		return err
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.pub.Send(zmqMessage(TopicFor(event.Kind), payload))
}

func (z *ZeroMQEventPublisher) Close() error {
	return z.pub.Close()
}

func TopicFor(kind domain.EventKind) string {
	switch kind {
	case domain.EventLink:
		return LINK_TOPIC
	case domain.EventDuration:
		return DURATION_TOPIC
	case domain.EventVerdict:
		return VERDICT_TOPIC
	default:
		return STATUS_TOPIC
	}
}

func zmqMessage(topic string, payload []byte) zmq4.Msg {
	msg := zmq4.NewMsgFrom(
		[][]byte{
			[]byte(topic),
			payload,
		}...,
	)
	return msg
}

func MarshalEventMessage(msg message.EventMessage) ([]byte, error) {
	return json.Marshal(msg)
}

func UnmarshalEventMessage(data []byte) (message.EventMessage, error) {
	var msg message.EventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return message.EventMessage{}, errors.Wrap(err, "unmarshalling event message")
	}
	return msg, nil
}
