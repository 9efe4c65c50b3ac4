// Package push delivers notification payloads to user devices. The
// dispatcher makes one attempt per device token and never retries; a
// failed token is logged and skipped.
package push

import "context"

// Message is the payload sent to a single device.
type Message struct {
	Title string
	Body  string
	Image string
}

// Sender delivers one message to one device token.
type Sender interface {
	Send(ctx context.Context, token string, msg Message) error
}
