package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/folioadmin/internal/client/form"
	"github.com/iudanet/folioadmin/internal/client/notify"
	"github.com/iudanet/folioadmin/internal/clock"
)

const (
	// LoginTarget is the surface the operator is sent to when the session is gone.
	LoginTarget = "login"

	// SessionExpiredMessage показывается один раз при первом ответе 401
	SessionExpiredMessage = "Your session has expired. Redirecting to login…"

	DefaultTimeout       = 30 * time.Second
	DefaultRedirectDelay = 1200 * time.Millisecond
)

//go:generate moq -out api_mock.go . Notifier Navigator

// Notifier принимает пользовательские уведомления
type Notifier interface {
	Notify(message string, kind notify.Kind)
}

// Navigator переводит оператора на другую поверхность (страницу входа)
type Navigator interface {
	Redirect(target string)
}

// RequestOptions are the standard request options of a gateway call.
type RequestOptions struct {
	Header      http.Header
	Method      string
	ContentType string
	Body        []byte
	// SkipExpiry отключает обработку 401 для поверхности входа: там 401 означает неверный пароль
	SkipExpiry bool
}

// Response is the raw result of a gateway call. It is returned for every HTTP status,
// 401 included; only transport failures surface as errors.
type Response struct {
	Header     http.Header
	Body       []byte
	StatusCode int
}

// Client представляет шлюз ко всем вызовам REST API
type Client struct {
	httpClient    *http.Client
	notifier      Notifier
	navigator     Navigator
	scheduler     clock.Scheduler
	logger        *slog.Logger
	redirected    chan struct{}
	baseURL       string
	redirectDelay time.Duration
	mu            sync.Mutex
	expired       bool
}

// Option настраивает Client
type Option func(*Client)

// WithNotifier задает получателя уведомления об истекшей сессии
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithNavigator задает обработчик перенаправления на страницу входа
func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.navigator = n }
}

// WithScheduler задает планировщик отложенного перенаправления
func WithScheduler(s clock.Scheduler) Option {
	return func(c *Client) { c.scheduler = s }
}

// WithRedirectDelay задает паузу перед перенаправлением, чтобы уведомление успели прочитать
func WithRedirectDelay(d time.Duration) Option {
	return func(c *Client) { c.redirectDelay = d }
}

// WithLogger задает логгер шлюза
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithCookieJar attaches the jar that carries session credentials on every call.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) { c.httpClient.Jar = jar }
}

// WithTimeout задает таймаут HTTP клиента
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		scheduler:     clock.Real{},
		redirectDelay: DefaultRedirectDelay,
		logger:        slog.Default(),
		redirected:    make(chan struct{}),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Ограничиваем количество редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL resolves an API path against the configured base URL.
func (c *Client) URL(path string) string {
	if c.baseURL == "" {
		return path
	}
	return c.baseURL + path
}

// BaseURL возвращает базовый адрес API
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request issues one call. Credentials are always attached through the cookie jar.
// A 401 triggers the session expiry flow once and the raw response is still returned.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	if opts.Body != nil {
		bodyReader = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, vals := range opts.Header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	if opts.ContentType != "" {
		req.Header.Set("Content-Type", opts.ContentType)
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID)

	if resp.StatusCode == http.StatusUnauthorized && !opts.SkipExpiry {
		c.expireSession()
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// Get выполняет GET запрос
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodGet})
}

// Delete выполняет DELETE запрос
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodDelete})
}

// Send issues a call with an already encoded body (JSON or multipart).
func (c *Client) Send(ctx context.Context, method, path string, body *form.Encoded) (*Response, error) {
	opts := RequestOptions{Method: method}
	if body != nil {
		opts.Body = body.Body
		opts.ContentType = body.ContentType
	}
	return c.Request(ctx, path, opts)
}

// SendJSON marshals v and issues the call with a JSON body.
func (c *Client) SendJSON(ctx context.Context, method, path string, v any) (*Response, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.Send(ctx, method, path, &form.Encoded{Body: data, ContentType: "application/json"})
}

// Expired reports whether a 401 has been observed since the last ResetSession.
func (c *Client) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

// Redirected is closed once the post-expiry redirect has run.
func (c *Client) Redirected() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.redirected
}

// ResetSession rearms the expiry flow after a fresh login.
func (c *Client) ResetSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.expired {
		return
	}
	c.expired = false
	c.redirected = make(chan struct{})
}

// expireSession уведомляет и планирует перенаправление ровно один раз,
// сколько бы параллельных запросов ни получили 401
func (c *Client) expireSession() {
	c.mu.Lock()
	if c.expired {
		c.mu.Unlock()
		return
	}
	c.expired = true
	done := c.redirected
	c.mu.Unlock()

	c.logger.Warn("session expired, redirecting to login", "delay", c.redirectDelay)

	if c.notifier != nil {
		c.notifier.Notify(SessionExpiredMessage, notify.KindError)
	}
	c.scheduler.AfterFunc(c.redirectDelay, func() {
		if c.navigator != nil {
			c.navigator.Redirect(LoginTarget)
		}
		close(done)
	})
}
