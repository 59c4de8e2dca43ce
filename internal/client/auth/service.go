package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/folioadmin/internal/client/api"
	"github.com/iudanet/folioadmin/internal/client/storage"
	"github.com/iudanet/folioadmin/internal/validation"
	pkgapi "github.com/iudanet/folioadmin/pkg/api"
)

const (
	// LoginFailedMessage is the fallback when the backend gives no reason.
	LoginFailedMessage = "Login failed. Please check your credentials."
)

// ErrLoginRejected оборачивает отказ бэкенда во входе
var ErrLoginRejected = errors.New("login rejected")

// Service manages the operator session on this machine: login, resuming a stored
// session and forgetting it on logout. Session validity is decided by the backend only.
type Service struct {
	client   *api.Client
	jar      *Jar
	meta     storage.MetadataStorage
	logger   *slog.Logger
	username string
	mu       sync.Mutex
}

// NewService создает новый сервис авторизации
func NewService(client *api.Client, jar *Jar, meta storage.MetadataStorage) *Service {
	return &Service{
		client: client,
		jar:    jar,
		meta:   meta,
		logger: slog.Default(),
	}
}

// Login posts credentials to the login surface and persists the session cookies the
// backend sets. A 401 here is a wrong password, not an expired session.
func (s *Service) Login(ctx context.Context, username, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	// 1. Сбрасываем старые cookie, чтобы не смешивать сессии
	if err := s.jar.Clear(ctx); err != nil {
		return err
	}

	// 2. Отправляем запрос на логин
	body, err := json.Marshal(pkgapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("failed to marshal login request: %w", err)
	}
	resp, err := s.client.Request(ctx, "/api/auth/login", api.RequestOptions{
		Method:      http.MethodPost,
		ContentType: "application/json",
		Body:        body,
		SkipExpiry:  true,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	var env pkgapi.Envelope
	if !api.DecodeJSONSafe(resp, &env) || !env.Success {
		msg := env.Error
		if strings.TrimSpace(msg) == "" {
			msg = api.ErrorMessage(resp, nil, LoginFailedMessage)
		}
		return fmt.Errorf("%w: %s", ErrLoginRejected, msg)
	}

	// 3. Сохраняем сессию и перевзводим обработку 401
	s.client.ResetSession()
	s.setUsername(username)

	if err := s.jar.Persist(ctx, username); err != nil {
		return err
	}

	if s.meta != nil {
		login := storage.LastLogin{Username: username, BaseURL: s.client.BaseURL(), At: time.Now().Unix()}
		if err := s.meta.SaveLastLogin(ctx, login); err != nil {
			// не критично: влияет только на подсказку при следующем входе
			s.logger.Warn("failed to save last login", "error", err)
		}
	}

	s.logger.Info("logged in", "username", username, "cookies", s.jar.Len())
	return nil
}

// Resume loads the stored session. It returns storage.ErrSessionNotFound when the
// operator never logged in on this machine.
func (s *Service) Resume(ctx context.Context) (string, error) {
	session, err := s.jar.Restore(ctx)
	if err != nil {
		return "", err
	}
	s.setUsername(session.Username)
	return session.Username, nil
}

// Persist saves cookies the backend may have rotated during the last calls.
func (s *Service) Persist(ctx context.Context) error {
	return s.jar.Persist(ctx, s.Username())
}

// Forget removes the local session. Used after logout and after the backend
// reported the session as gone.
func (s *Service) Forget(ctx context.Context) error {
	s.setUsername("")
	return s.jar.Clear(ctx)
}

// Username возвращает имя оператора текущей сессии
func (s *Service) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

// LastUsername returns the last successful login name, or "" if unknown.
func (s *Service) LastUsername(ctx context.Context) string {
	if s.meta == nil {
		return ""
	}
	login, err := s.meta.GetLastLogin(ctx)
	if err != nil {
		s.logger.Debug("failed to read last login", "error", err)
		return ""
	}
	return login.Username
}

func (s *Service) setUsername(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
}
