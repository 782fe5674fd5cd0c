package poller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const loginKeyParameter = "loginKey"

var log = logger.GetOrCreate("poller")

// ArgsHTTPPoller defines the arguments needed to create a new HTTP poller
type ArgsHTTPPoller struct {
	Endpoint  string
	LoginKey  string
	Timeout   time.Duration
	Extractor Extractor
}

type httpPoller struct {
	requestURL string
	extractor  Extractor
	client     *http.Client
}

// NewHTTPPoller creates a new HTTP-based poller for the metric endpoint
func NewHTTPPoller(args ArgsHTTPPoller) (*httpPoller, error) {
	if check.IfNil(args.Extractor) {
		return nil, errors.New("nil extractor")
	}

	requestURL, err := buildRequestURL(args.Endpoint, args.LoginKey)
	if err != nil {
		return nil, err
	}

	return &httpPoller{
		requestURL: requestURL,
		extractor:  args.Extractor,
		client: &http.Client{
			Timeout: args.Timeout,
		},
	}, nil
}

func buildRequestURL(endpoint string, loginKey string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return "", fmt.Errorf("invalid HTTP endpoint '%s': %w", endpoint, err)
	}
	if len(u.Scheme) == 0 || len(u.Host) == 0 {
		return "", fmt.Errorf("invalid HTTP endpoint '%s': missing scheme or host", endpoint)
	}

	query := u.Query()
	query.Set(loginKeyParameter, loginKey)
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// Fetch performs one HTTP GET against the metric endpoint and extracts the metric value from the response
func (p *httpPoller) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.requestURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errStatusNotOK(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	value, err := p.extractor.Extract(body)
	if err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return "", errEmptyValue{}
	}
	if strings.IndexFunc(value, isForbiddenInValue) >= 0 {
		return "", errInvalidValue(value)
	}

	log.Debug("fetched metric value", "value", value, "response size", len(body))

	return value, nil
}

// isForbiddenInValue matches the runes that would break a "timestamp, value" history line
func isForbiddenInValue(r rune) bool {
	return unicode.IsSpace(r) || r == ','
}

// IsInterfaceNil returns true if the value under the interface is nil
func (p *httpPoller) IsInterfaceNil() bool {
	return p == nil
}
