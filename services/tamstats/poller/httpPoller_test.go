package poller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createArgs(endpoint string) ArgsHTTPPoller {
	return ArgsHTTPPoller{
		Endpoint:  endpoint,
		LoginKey:  "key123",
		Timeout:   time.Second,
		Extractor: NewFieldExtractor(TamUsageFieldIndex),
	}
}

func TestNewHTTPPoller(t *testing.T) {
	t.Parallel()

	t.Run("nil extractor should error", func(t *testing.T) {
		t.Parallel()

		args := createArgs("http://127.0.0.1/stats")
		args.Extractor = nil
		p, err := NewHTTPPoller(args)
		assert.Nil(t, p)
		assert.True(t, p.IsInterfaceNil())
		assert.Contains(t, err.Error(), "nil extractor")
	})
	t.Run("invalid endpoint should error", func(t *testing.T) {
		t.Parallel()

		p, err := NewHTTPPoller(createArgs("stats.local/report"))
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "invalid HTTP endpoint")
	})
	t.Run("should append the login key", func(t *testing.T) {
		t.Parallel()

		p, err := NewHTTPPoller(createArgs("http://stats.local/report?format=text"))
		require.Nil(t, err)
		assert.False(t, p.IsInterfaceNil())
		assert.Equal(t, "http://stats.local/report?format=text&loginKey=key123", p.requestURL)
	})
}

func TestHTTPPoller_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("should extract the value", func(t *testing.T) {
		t.Parallel()

		var receivedKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedKey = r.URL.Query().Get("loginKey")
			_, _ = w.Write([]byte(generateReport(70, TamUsageFieldIndex, "42")))
		}))
		defer server.Close()

		p, err := NewHTTPPoller(createArgs(server.URL))
		require.Nil(t, err)

		value, err := p.Fetch(context.Background())
		require.Nil(t, err)
		assert.Equal(t, "42", value)
		assert.Equal(t, "key123", receivedKey)
	})
	t.Run("short response should error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("login failed"))
		}))
		defer server.Close()

		p, _ := NewHTTPPoller(createArgs(server.URL))
		value, err := p.Fetch(context.Background())
		assert.Empty(t, value)
		assert.IsType(t, errFieldOutOfRange{}, err)
	})
	t.Run("non-2xx status should error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		p, _ := NewHTTPPoller(createArgs(server.URL))
		_, err := p.Fetch(context.Background())
		assert.Equal(t, errStatusNotOK(http.StatusForbidden), err)
	})
	t.Run("empty json value should error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"usage": "  "}`))
		}))
		defer server.Close()

		args := createArgs(server.URL)
		args.Extractor = NewJSONPathExtractor("usage")
		p, _ := NewHTTPPoller(args)
		_, err := p.Fetch(context.Background())
		assert.Equal(t, errEmptyValue{}, err)
	})
	t.Run("multi-line json value should error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tam":{"usage":"12\n34"}}`))
		}))
		defer server.Close()

		args := createArgs(server.URL)
		args.Extractor = NewJSONPathExtractor("tam.usage")
		p, _ := NewHTTPPoller(args)
		value, err := p.Fetch(context.Background())
		assert.Empty(t, value)
		assert.Equal(t, errInvalidValue("12\n34"), err)
	})
	t.Run("json value holding separators should error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tam":{"usage":[1,2]}}`))
		}))
		defer server.Close()

		args := createArgs(server.URL)
		args.Extractor = NewJSONPathExtractor("tam.usage")
		p, _ := NewHTTPPoller(args)
		_, err := p.Fetch(context.Background())
		assert.Equal(t, errInvalidValue("[1,2]"), err)
	})
	t.Run("timeout should error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(2 * time.Second)
		}))
		defer server.Close()

		p, _ := NewHTTPPoller(createArgs(server.URL))
		_, err := p.Fetch(context.Background())
		assert.Error(t, err)
	})
	t.Run("connection refused should error", func(t *testing.T) {
		t.Parallel()

		p, _ := NewHTTPPoller(createArgs("http://localhost:59999"))
		_, err := p.Fetch(context.Background())
		assert.Error(t, err)
	})
}
