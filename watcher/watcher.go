package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"TxVisualizer/internal/platform/messaging/zeromq/publisher"

	"github.com/cockroachdb/errors"
	"github.com/go-zeromq/zmq4"
)

// Watcher subscribes to a simulator's event stream and prints it, so the
// transfer animation can be followed from another terminal or host.
type Watcher struct {
	sub    zmq4.Socket
	addr   string
	topics []string
}

func NewWatcher(addr string, topics []string) *Watcher {
	return &Watcher{
		sub:    zmq4.NewSub(context.Background(), zmq4.WithAutomaticReconnect(true)),
		addr:   addr,
		topics: topics,
	}
}

func (w *Watcher) Listen() error {
	if err := w.sub.Dial(w.addr); err != nil {
		return errors.Wrapf(err, "dialing %s", w.addr)
	}
	for _, topic := range w.topics {
		if err := w.sub.SetOption(zmq4.OptionSubscribe, topic); err != nil {
			return errors.Wrapf(err, "subscribing to %s", topic)
		}
	}
	log.Printf("Watching %s for %s\n", w.addr, strings.Join(w.topics, ","))

	for {
		msg, err := w.sub.Recv()
		if err != nil {
			if errors.Is(err, zmq4.ErrClosedConn) {
				log.Println("Socket closed, exiting watcher")
				return nil
			}
			log.Println("Error receiving message:", err)
			continue
		}
		if len(msg.Frames) < 2 {
			continue
		}
		event, err := publisher.UnmarshalEventMessage(msg.Frames[1])
		if err != nil {
			log.Println(err)
			continue
		}
		ts := event.Time().Format("15:04:05.000")
		switch {
		case event.Status != nil:
			fmt.Printf("%s [%s] %s\n", ts, event.Status.Tone, event.Status.Text)
		case event.Link != nil:
			fmt.Printf("%s %s ──$%s──▶ %s\n", ts, event.Link.From, event.Link.Amount, event.Link.To)
		case event.Duration != nil:
			fmt.Printf("%s %s took %.2fs\n", ts, event.TransferId, event.Duration.Seconds)
		case event.Verdict != nil:
			fmt.Printf("%s %s: %s\n", ts, event.Scenario, event.Verdict.Message)
		}
	}
}

func main() {
	addr := flag.String("addr", "tcp://localhost:7100", "simulator event publisher address")
	topics := flag.String("topics", strings.Join([]string{
		publisher.STATUS_TOPIC,
		publisher.LINK_TOPIC,
		publisher.DURATION_TOPIC,
		publisher.VERDICT_TOPIC,
	}, ","), "comma separated topics to subscribe to")
	flag.Parse()

	if *topics == "" {
		log.Println("At least one topic is required")
		os.Exit(1)
	}

	if err := NewWatcher(*addr, strings.Split(*topics, ",")).Listen(); err != nil {
		log.Fatal(err)
	}
}
