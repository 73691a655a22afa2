package notify

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
)

// Notifier forwards finished analysis results to the configured webhook.
// Delivery is best effort: failures are logged and never propagated, so
// the primary response to the caller is unaffected.
type Notifier struct {
	client *resty.Client
	url    string
}

// NewNotifier builds a webhook notifier. An empty URL disables delivery.
func NewNotifier(url string, timeout time.Duration) *Notifier {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Notifier{client: client, url: url}
}

// Send posts the payload to the webhook, tagged with the analysis id for
// correlation.
func (n *Notifier) Send(ctx context.Context, analysisID string, payload any) {
	if n == nil || n.url == "" {
		return
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("X-Analysis-ID", analysisID).
		SetBody(payload).
		Post(n.url)
	if err != nil {
		log.Warnf("webhook delivery failed for analysis %s: %v", analysisID, err)
		return
	}
	if resp.IsError() {
		log.Warnf("webhook returned status %d for analysis %s: %s", resp.StatusCode(), analysisID, resp.String())
		return
	}
	log.Infof("webhook delivered for analysis %s: status %d", analysisID, resp.StatusCode())
}
