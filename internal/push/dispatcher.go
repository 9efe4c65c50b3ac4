package push

import (
	"context"
	"time"

	"cityinbox_backend/internal/logger"
)

// Result reports the per-token outcome of one dispatch.
type Result struct {
	Sent    int
	Failed  int
	Skipped int
}

// Dispatcher fans a message out to a set of device tokens. It is not
// responsible for deciding who receives the notification; callers pass
// the token list they already resolved.
type Dispatcher struct {
	sender  Sender
	timeout time.Duration
}

func NewDispatcher(sender Sender, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{sender: sender, timeout: timeout}
}

// Dispatch sends the message to every non-empty token, one attempt each.
// Empty tokens are skipped. Send failures are logged per token and do not
// stop the rest of the batch.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string, msg Message) Result {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var res Result
	for _, token := range tokens {
		if token == "" {
			res.Skipped++
			continue
		}
		if err := d.sender.Send(ctx, token, msg); err != nil {
			res.Failed++
			logger.Warn("push delivery failed",
				"token", truncateToken(token),
				"error", err.Error(),
			)
			continue
		}
		res.Sent++
	}
	return res
}

// DispatchAsync runs Dispatch on its own goroutine with a detached
// context, so a slow push round never holds up the caller's response.
func (d *Dispatcher) DispatchAsync(tokens []string, msg Message) {
	go func() {
		res := d.Dispatch(context.Background(), tokens, msg)
		logger.Info("push dispatch finished",
			"sent", res.Sent,
			"failed", res.Failed,
			"skipped", res.Skipped,
		)
	}()
}
