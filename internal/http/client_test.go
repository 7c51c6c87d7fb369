package http_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/hrobot-io/hrobot/internal/auth"
	robothttp "github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) append(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.append("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.append("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.append("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.append("error", msg, fields) }

func basicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/server", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, basicAuth("#ws+user", "secret"), request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			_, _ = writer.Write([]byte(`[{"server": {"server_number": 321}}]`))
		}))
		defer server.Close()

		client := robothttp.NewClient(server.URL, auth.New("#ws+user", "secret"))

		resp, err := client.Do(context.Background(), &robothttp.Request{
			Method: "GET",
			Path:   "/server",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `[{"server": {"server_number": 321}}]`, string(resp.Body))
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/rdns", request.URL.Path)
			assert.Equal(t, "server_number=321", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := robothttp.NewClient(server.URL, auth.Credentials{})

		resp, err := client.Do(context.Background(), &robothttp.Request{
			Method: "GET",
			Path:   "/rdns",
			Query:  url.Values{"server_number": []string{"321"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with form body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))

			body, _ := io.ReadAll(request.Body)
			assert.Equal(t, "server_name=my+server", string(body))

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := robothttp.NewClient(server.URL, auth.Credentials{})

		resp, err := client.Do(context.Background(), &robothttp.Request{
			Method: "POST",
			Path:   "/server/321",
			Body:   "server_name=my+server",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("structured error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{
				"error": {
					"status": 400,
					"code": "INVALID_INPUT",
					"message": "invalid input",
					"missing": ["minute", "hour"],
					"invalid": null
				}
			}`))
		}))
		defer server.Close()

		client := robothttp.NewClient(server.URL, auth.Credentials{})

		resp, err := client.Do(context.Background(), &robothttp.Request{Method: "GET", Path: "/server"})
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		apiErr := &hrobot.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, 400, apiErr.Status)
		assert.Equal(t, hrobot.ErrorCodeInvalidInput, apiErr.Code)
		assert.Equal(t, "invalid input", apiErr.Message)
		assert.Equal(t, []string{"minute", "hour"}, apiErr.Missing)
		assert.Nil(t, apiErr.Invalid)
		assert.True(t, hrobot.IsInvalidInput(err))
	})

	t.Run("unparseable error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("<html>Bad Gateway</html>"))
		}))
		defer server.Close()

		client := robothttp.NewClient(server.URL, auth.Credentials{})

		resp, err := client.Do(context.Background(), &robothttp.Request{Method: "GET", Path: "/server"})
		require.Error(t, err)
		assert.Equal(t, 502, resp.StatusCode)

		rawErr := &hrobot.RawError{}
		ok := errors.As(err, &rawErr)
		require.True(t, ok)
		assert.Equal(t, 502, rawErr.StatusCode)
		assert.Contains(t, string(rawErr.Body), "Bad Gateway")
	})

	t.Run("unreachable host", func(t *testing.T) {
		t.Parallel()

		client := robothttp.NewClient("http://127.0.0.1:1", auth.Credentials{})

		resp, err := client.Do(context.Background(), &robothttp.Request{Method: "GET", Path: "/server"})
		require.Error(t, err)
		assert.Nil(t, resp)

		transportErr := &hrobot.TransportError{}
		ok := errors.As(err, &transportErr)
		require.True(t, ok)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := robothttp.NewClient(server.URL, auth.Credentials{})

		resp, err := client.Do(context.Background(), &robothttp.Request{
			Method: "GET",
			Path:   "/server",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{"wol": {"server_number": 321}}`))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := robothttp.NewClient(server.URL, auth.New("#ws+user", "secret"),
			robothttp.WithLogger(logger), robothttp.WithDebug(true))

		_, err := client.Do(context.Background(), &robothttp.Request{Method: "GET", Path: "/wol/321"})
		require.NoError(t, err)

		// Should have logged request and response, without credentials
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

		for _, entry := range logger.logs {
			assert.NotContains(t, fmt.Sprint(entry), "secret")
		}
	})

	t.Run("concurrent requests", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = fmt.Fprintf(writer, `{"path": %q}`, request.URL.Path)
		}))
		defer server.Close()

		client := robothttp.NewClient(server.URL, auth.Credentials{})

		var wg sync.WaitGroup

		for i := 0; i < 16; i++ {
			wg.Add(1)

			go func(n int) {
				defer wg.Done()

				path := fmt.Sprintf("/server/%d", n)

				resp, err := client.Do(context.Background(), &robothttp.Request{Method: "GET", Path: path})
				assert.NoError(t, err)
				assert.Equal(t, fmt.Sprintf(`{"path": %q}`, path), string(resp.Body))
			}(i)
		}

		wg.Wait()
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*robothttp.Client, context.Context) (*robothttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *robothttp.Client, ctx context.Context) (*robothttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *robothttp.Client, ctx context.Context) (*robothttp.Response, error) {
				return c.Post(ctx, "/test", "key=value")
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *robothttp.Client, ctx context.Context) (*robothttp.Response, error) {
				return c.Put(ctx, "/test", "key=value")
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *robothttp.Client, ctx context.Context) (*robothttp.Response, error) {
				return c.Delete(ctx, "/test", "")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := robothttp.NewClient(server.URL, auth.Credentials{})
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("does not retry by default", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := robothttp.NewClient(server.URL, auth.Credentials{})

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, 1, attempts)
	})

	t.Run("opt-in retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := robothttp.NewClient(server.URL, auth.Credentials{},
			robothttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry client errors even when opted in", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error": {"status": 404, "code": "SERVER_NOT_FOUND", "message": "server not found"}}`))
		}))
		defer server.Close()

		client := robothttp.NewClient(server.URL, auth.Credentials{},
			robothttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, 1, attempts)
		assert.True(t, hrobot.IsNotFound(err))
	})
}
