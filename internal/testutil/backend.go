package testutil

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	pkgapi "github.com/iudanet/folioadmin/pkg/api"
)

// Request is one call the fake backend received.
type Request struct {
	Header      http.Header
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

// JSON decodes a JSON request body.
func (r Request) JSON() map[string]any {
	var v map[string]any
	_ = json.Unmarshal(r.Body, &v)
	return v
}

// Backend is an in-memory portfolio API: collections under /api/<kind>, the
// profile singleton, uploads and the auth endpoints. Individual routes can be
// overridden to simulate failures.
type Backend struct {
	server         *httptest.Server
	collections    map[string][]map[string]any
	profile        map[string]any
	overrides      map[string]http.HandlerFunc
	requests       []Request
	username       string
	password       string
	token          string
	nextID         int
	sessions       int
	mu             sync.Mutex
	authenticated  bool
	requireSession bool // все маршруты, кроме входа, требуют cookie сессии
}

// SessionCookie is the name of the session cookie the fake backend issues.
const SessionCookie = "connect.sid"

// NewBackend starts the fake API. It is closed when the test ends.
func NewBackend(t testing.TB) *Backend {
	t.Helper()
	b := &Backend{
		collections:   make(map[string][]map[string]any),
		profile:       make(map[string]any),
		overrides:     make(map[string]http.HandlerFunc),
		authenticated: true,
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.serveHTTP))
	t.Cleanup(b.server.Close)
	return b
}

// URL returns the base URL of the fake API.
func (b *Backend) URL() string {
	return b.server.URL
}

// Seed appends records to a collection.
func (b *Backend) Seed(kind string, records ...map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.collections[kind] = append(b.collections[kind], records...)
}

// Collection returns a copy of the stored collection.
func (b *Backend) Collection(kind string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]map[string]any, len(b.collections[kind]))
	copy(out, b.collections[kind])
	return out
}

// SetProfile replaces the profile singleton.
func (b *Backend) SetProfile(p map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profile = p
}

// Profile returns the stored profile.
func (b *Backend) Profile() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.profile
}

// SetAuthenticated controls the answer of GET /api/auth/check.
func (b *Backend) SetAuthenticated(ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.authenticated = ok
}

// RequireSession makes every route except login answer 401 without the session
// cookie issued by POST /api/auth/login. username and password are the only accepted
// credentials.
func (b *Backend) RequireSession(username, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requireSession = true
	b.username = username
	b.password = password
}

// ExpireSession invalidates the issued session cookie.
func (b *Backend) ExpireSession() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = ""
}

// Override replaces a route. key is "METHOD /path" or just "/path" for any method.
func (b *Backend) Override(key string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.overrides[key] = h
}

// Requests returns every request received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Request, len(b.requests))
	copy(out, b.requests)
	return out
}

// RequestsFor returns the requests matching method and path.
func (b *Backend) RequestsFor(method, path string) []Request {
	var out []Request
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// ResetRequests clears the request log.
func (b *Backend) ResetRequests() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = nil
}

// Status replies with a fixed status and raw body.
func Status(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
	}
}

// Hijack closes the connection without a response, which clients see as a
// transport failure.
func Hijack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		conn, _, err := hj.Hijack()
		if err == nil {
			_ = conn.Close()
		}
	}
}

func (b *Backend) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	_ = r.Body.Close()

	b.mu.Lock()
	b.requests = append(b.requests, Request{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		Header:      r.Header.Clone(),
		Body:        body,
	})
	h := b.overrides[r.Method+" "+r.URL.Path]
	if h == nil {
		h = b.overrides[r.URL.Path]
	}
	b.mu.Unlock()

	r.Body = io.NopCloser(strings.NewReader(string(body)))
	if h != nil {
		h(w, r)
		return
	}
	if r.URL.Path == "/api/auth/login" && r.Method == http.MethodPost {
		b.handleLogin(w, body)
		return
	}
	if !b.sessionValid(r) {
		if r.URL.Path == "/api/auth/check" {
			writeJSON(w, http.StatusOK, map[string]any{"isAuthenticated": false})
			return
		}
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
		return
	}
	b.route(w, r, body)
}

func (b *Backend) sessionValid(r *http.Request) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.requireSession {
		return true
	}
	c, err := r.Cookie(SessionCookie)
	return err == nil && b.token != "" && c.Value == b.token
}

func (b *Backend) handleLogin(w http.ResponseWriter, body []byte) {
	var creds pkgapi.LoginRequest
	if err := json.Unmarshal(body, &creds); err != nil {
		writeJSON(w, http.StatusBadRequest, pkgapi.Envelope{Error: "Invalid JSON"})
		return
	}

	b.mu.Lock()
	if b.requireSession && (creds.Username != b.username || creds.Password != b.password) {
		b.mu.Unlock()
		writeJSON(w, http.StatusUnauthorized, pkgapi.Envelope{Error: "Invalid credentials"})
		return
	}
	b.sessions++
	b.token = "sess-" + strconv.Itoa(b.sessions)
	token := b.token
	b.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: token, Path: "/", HttpOnly: true})
	writeJSON(w, http.StatusOK, pkgapi.Envelope{Success: true})
}

func (b *Backend) route(w http.ResponseWriter, r *http.Request, body []byte) {
	path := strings.TrimPrefix(r.URL.Path, "/api/")
	parts := strings.Split(path, "/")

	switch {
	case path == "auth/check":
		b.mu.Lock()
		ok := b.authenticated
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"isAuthenticated": ok})
	case path == "auth/logout" && r.Method == http.MethodPost:
		b.mu.Lock()
		b.token = ""
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	case path == "profile":
		b.handleProfile(w, r, body)
	case path == "profile/image" || path == "profile/resume":
		b.handleUpload(w, r, parts[1])
	case len(parts) == 1:
		b.handleCollection(w, r, parts[0], body)
	case len(parts) == 2:
		b.handleItem(w, r, parts[0], parts[1], body)
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "Not found"})
	}
}

func (b *Backend) handleProfile(w http.ResponseWriter, r *http.Request, body []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, b.profile)
	case http.MethodPut:
		var patch map[string]any
		if err := json.Unmarshal(body, &patch); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON"})
			return
		}
		for k, v := range patch {
			b.profile[k] = v
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (b *Backend) handleUpload(w http.ResponseWriter, r *http.Request, field string) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid upload"})
		return
	}
	_, header, err := r.FormFile(field)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "No file uploaded"})
		return
	}
	path := "/uploads/" + header.Filename

	b.mu.Lock()
	b.profile[field] = path
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"success": true, field + "Path": path})
}

func (b *Backend) handleCollection(w http.ResponseWriter, r *http.Request, kind string, body []byte) {
	switch r.Method {
	case http.MethodGet:
		b.mu.Lock()
		items := b.collections[kind]
		if items == nil {
			items = []map[string]any{}
		}
		writeJSON(w, http.StatusOK, items)
		b.mu.Unlock()
	case http.MethodPost:
		record, err := decodeRecord(r, body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}
		b.mu.Lock()
		b.nextID++
		id := kind + "-" + strconv.Itoa(b.nextID)
		record["id"] = id
		b.collections[kind] = append(b.collections[kind], record)
		b.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": id})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (b *Backend) handleItem(w http.ResponseWriter, r *http.Request, kind, id string, body []byte) {
	b.mu.Lock()
	idx := -1
	for i, rec := range b.collections[kind] {
		if rec["id"] == id {
			idx = i
			break
		}
	}
	b.mu.Unlock()

	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "Not found"})
		return
	}

	switch r.Method {
	case http.MethodPut:
		patch, err := decodeRecord(r, body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}
		b.mu.Lock()
		updated := make(map[string]any, len(b.collections[kind][idx]))
		for k, v := range b.collections[kind][idx] {
			updated[k] = v
		}
		for k, v := range patch {
			updated[k] = v
		}
		updated["id"] = id
		b.collections[kind][idx] = updated
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	case http.MethodDelete:
		b.mu.Lock()
		items := b.collections[kind]
		b.collections[kind] = append(items[:idx:idx], items[idx+1:]...)
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// decodeRecord reads a JSON or multipart body into a flat record. Uploaded files
// are stored as /uploads/<filename>.
func decodeRecord(r *http.Request, body []byte) (map[string]any, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		record := make(map[string]any)
		if err := json.Unmarshal(body, &record); err != nil {
			return nil, err
		}
		return record, nil
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil, err
	}
	record := make(map[string]any)
	for k, v := range r.MultipartForm.Value {
		if len(v) == 0 {
			continue
		}
		// списки приходят строкой с JSON массивом
		var list []any
		if strings.HasPrefix(v[0], "[") && json.Unmarshal([]byte(v[0]), &list) == nil {
			record[k] = list
			continue
		}
		record[k] = v[0]
	}
	for k, files := range r.MultipartForm.File {
		if len(files) > 0 {
			record[k] = "/uploads/" + files[0].Filename
		}
	}
	return record, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
