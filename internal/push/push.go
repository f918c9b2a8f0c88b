package push

import (
	"context"
)

// Sender delivers a push notification to a single device token.
// Delivery is best-effort: callers are expected to log failures, not
// propagate them.
type Sender interface {
	Send(ctx context.Context, token, title, body string) error
}
