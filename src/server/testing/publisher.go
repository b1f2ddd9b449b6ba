package testing

import (
	"github.com/medkit-app/medkit-be/src/shared/lib/rabbitmq"
	"github.com/rabbitmq/amqp091-go"
)

var _ rabbitmq.Publisher = &RecordingPublisher{}

// RecordingPublisher keeps published messages in memory so tests can
// assert on what would have been queued.
type RecordingPublisher struct {
	Unavailable bool
	Messages    []amqp091.Publishing
}

func (r *RecordingPublisher) Publish(msg amqp091.Publishing) error {
	if r.Unavailable {
		return NetworkFailure
	}

	r.Messages = append(r.Messages, msg)
	return nil
}

func (r *RecordingPublisher) Unload() []amqp091.Publishing {
	messages := r.Messages
	r.Messages = nil
	return messages
}
