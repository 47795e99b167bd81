package fetch

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"cinewatch/internal/config"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0 Safari/537.36"

const acceptLanguage = "fr-FR,fr;q=0.9,en;q=0.8"

// NewClient builds a retrying HTTP client from the fetch configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.Fetch.RetryMax
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 60 * time.Second
	rc.HTTPClient.Timeout = time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	rc.HTTPClient.Transport = &headerTransport{base: http.DefaultTransport}
	if logger != nil {
		rc.Logger = leveledLogger{logger}
	} else {
		rc.Logger = nil
	}
	return rc.StandardClient()
}

// headerTransport injects the shared request headers on every attempt.
type headerTransport struct {
	base http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", userAgent)
	}
	if clone.Header.Get("Accept-Language") == "" {
		clone.Header.Set("Accept-Language", acceptLanguage)
	}
	return t.base.RoundTrip(clone)
}

// leveledLogger adapts slog to the retry client's logging interface.
type leveledLogger struct {
	logger *slog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}
