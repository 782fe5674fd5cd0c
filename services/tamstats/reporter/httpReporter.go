package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/iulianpascalau/dashing-jobs/services/tamstats/common"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const widgetsPath = "/widgets/"

var log = logger.GetOrCreate("reporter")

// ArgsHTTPReporter defines the arguments needed to create a new Dashing reporter
type ArgsHTTPReporter struct {
	Host      string
	Port      string
	Widget    string
	AuthToken string
	Timeout   time.Duration
}

type httpReporter struct {
	endpoint  string
	authToken string
	client    *http.Client
}

// NewHTTPReporter creates a new reporter that pushes points to a Dashing widget
func NewHTTPReporter(args ArgsHTTPReporter) (*httpReporter, error) {
	if len(args.Host) == 0 {
		return nil, errors.New("empty Dashing host")
	}
	if len(args.Widget) == 0 {
		return nil, errors.New("empty widget name")
	}

	endpoint := url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(args.Host, args.Port),
		Path:   widgetsPath + args.Widget,
	}

	return &httpReporter{
		endpoint:  endpoint.String(),
		authToken: args.AuthToken,
		client: &http.Client{
			Timeout: args.Timeout,
		},
	}, nil
}

// Report posts the auth token and the points to the widget endpoint. There is no retry
func (r *httpReporter) Report(ctx context.Context, points common.PointSeries) error {
	body, err := r.buildPayload(points)
	if err != nil {
		return err
	}

	log.Info("transmitting to Dashing", "url", r.endpoint, "data points", points.NumPoints)
	log.Info("Dashing payload", "data", points.Raw)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("network error sending report: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read report response: %w", err)
	}

	log.Info("Dashing response", "status", resp.StatusCode, "body", string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("server rejected report with status code: %d", resp.StatusCode)
	}

	return nil
}

// buildPayload writes {"auth_token": <token>, "points": <points>}. The points are already serialized and
// are embedded as they are
func (r *httpReporter) buildPayload(points common.PointSeries) ([]byte, error) {
	token, err := json.Marshal(r.authToken)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal auth token: %w", err)
	}

	buff := bytes.Buffer{}
	buff.WriteString(`{"auth_token":`)
	buff.Write(token)
	buff.WriteString(`,"points":`)
	buff.WriteString(points.Raw)
	buff.WriteByte('}')

	return buff.Bytes(), nil
}

// Endpoint returns the widget URL the reporter posts to
func (r *httpReporter) Endpoint() string {
	return r.endpoint
}

// IsInterfaceNil returns true if the value under the interface is nil
func (r *httpReporter) IsInterfaceNil() bool {
	return r == nil
}
