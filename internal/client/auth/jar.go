package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/iudanet/folioadmin/internal/client/storage"
)

// ErrOtherBackend означает, что сохраненная сессия выдана другим API
var ErrOtherBackend = errors.New("stored session belongs to another backend")

// Jar is an http.CookieJar that can persist the backend's session cookies between
// CLI invocations. Cookie values are stored and replayed as-is, never parsed.
type Jar struct {
	inner    *cookiejar.Jar
	sessions storage.SessionStorage
	base     *url.URL
	tracked  map[string]*http.Cookie
	now      func() time.Time
	mu       sync.Mutex
}

// Compile-time check that Jar implements http.CookieJar
var _ http.CookieJar = (*Jar)(nil)

// NewJar creates a jar bound to the API base URL.
func NewJar(baseURL string, sessions storage.SessionStorage) (*Jar, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Jar{
		inner:    inner,
		sessions: sessions,
		base:     base,
		tracked:  make(map[string]*http.Cookie),
		now:      time.Now,
	}, nil
}

// SetCookies implements http.CookieJar. Cookies from the API host are tracked so
// they can be persisted later.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.inner.SetCookies(u, cookies)
	if u.Host != j.base.Host {
		return
	}
	for _, c := range cookies {
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(j.now())) {
			delete(j.tracked, c.Name)
			continue
		}
		cp := *c
		j.tracked[c.Name] = &cp
	}
}

// Cookies implements http.CookieJar.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inner.Cookies(u)
}

// Restore loads the stored session into the jar and returns it.
// Returns storage.ErrSessionNotFound when nothing is stored.
func (j *Jar) Restore(ctx context.Context) (*storage.SessionData, error) {
	session, err := j.sessions.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session.BaseURL != j.base.String() {
		return nil, fmt.Errorf("%w: %s", ErrOtherBackend, session.BaseURL)
	}

	cookies := make([]*http.Cookie, 0, len(session.Cookies))
	for _, c := range session.Cookies {
		hc := &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		}
		if c.Expires > 0 {
			hc.Expires = time.Unix(c.Expires, 0)
			// просроченные cookie не восстанавливаем
			if hc.Expires.Before(j.now()) {
				continue
			}
		}
		cookies = append(cookies, hc)
	}
	j.SetCookies(j.base, cookies)
	return session, nil
}

// Persist saves the tracked cookies for username.
func (j *Jar) Persist(ctx context.Context, username string) error {
	j.mu.Lock()
	session := &storage.SessionData{
		Username: username,
		BaseURL:  j.base.String(),
		Cookies:  make([]storage.Cookie, 0, len(j.tracked)),
		SavedAt:  j.now().Unix(),
	}
	for _, c := range j.tracked {
		sc := storage.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		}
		if !c.Expires.IsZero() {
			sc.Expires = c.Expires.Unix()
		}
		session.Cookies = append(session.Cookies, sc)
	}
	j.mu.Unlock()

	if err := j.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear drops every cookie from memory and from storage.
func (j *Jar) Clear(ctx context.Context) error {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("failed to create cookie jar: %w", err)
	}

	j.mu.Lock()
	j.inner = inner
	j.tracked = make(map[string]*http.Cookie)
	j.mu.Unlock()

	if err := j.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Len returns the number of tracked API cookies.
func (j *Jar) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.tracked)
}
