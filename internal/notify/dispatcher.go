package notify

import (
	"context"
	"log"
	"time"
)

type Message struct {
	BookingID *uint
	Phone     string
	Body      string
}

// Dispatcher delivers messages off the request path. Sends that fail
// land in the dead-letter log; a full queue drops the message rather
// than block the API.
type Dispatcher struct {
	sender     Sender
	deadLetter *DeadLetterLog
	queue      chan Message
	done       chan struct{}
}

func NewDispatcher(sender Sender, deadLetter *DeadLetterLog) *Dispatcher {
	d := &Dispatcher{
		sender:     sender,
		deadLetter: deadLetter,
		queue:      make(chan Message, 100),
		done:       make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err := d.sender.Send(ctx, msg.Phone, msg.Body)
		cancel()

		if err == nil {
			continue
		}

		if d.deadLetter != nil {
			if dlErr := d.deadLetter.Record(msg.BookingID, msg.Phone, msg.Body, err); dlErr != nil {
				log.Println("notify dead-letter error:", dlErr)
			}
		} else {
			log.Println("notify send error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	if msg.Phone == "" {
		return
	}

	select {
	case d.queue <- msg:
	default:
		log.Println("notify queue full, dropping message")
	}
}

// Close drains the queue and stops the worker. Used on shutdown and in
// tests that need delivery to have finished.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
