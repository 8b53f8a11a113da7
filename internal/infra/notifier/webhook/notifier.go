// Package webhook implements paywatch.Notifier by POSTing each snapshot as
// JSON to a fixed URL.
package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/gabapcia/paywatch/internal/paywatch"
)

// ErrUnexpectedStatus is returned when the endpoint answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected webhook response status")

type notifier struct {
	endpoint   string
	httpClient *http.Client
}

var _ paywatch.Notifier = (*notifier)(nil)

// Notify sends snap in a single attempt. Transport failures and non-2xx
// responses are returned as errors.
func (n *notifier) Notify(ctx context.Context, snap paywatch.Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	return nil
}

// NewNotifier returns a notifier posting to endpoint with httpClient. The
// client should not retry on its own: a snapshot is delivered at most once.
func NewNotifier(httpClient *http.Client, endpoint string) *notifier {
	return &notifier{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}
