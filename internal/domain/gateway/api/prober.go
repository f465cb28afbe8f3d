package api

import (
	"context"
	"errors"

	"beltempo/pkg/http"
)

// Prober is implemented by gateways whose upstream reachability is reported on /health.
type Prober interface {
	Name() string
	Probe(ctx context.Context) error
}

// probe issues a HEAD against the client's base URL. Any HTTP answer, even an error
// status, counts as reachable; only transport failures are reported.
func probe(ctx context.Context, client *http.Client) error {
	_, _, _, err := client.Request().
		WithContext(ctx).
		WithMethod(http.HEAD).
		WithPath("/").
		Execute()

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return nil
	}
	return err
}
