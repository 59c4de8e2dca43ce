package api

// LoginRequest представляет запрос на вход оператора
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthCheckResponse представляет ответ GET /api/auth/check
type AuthCheckResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// Envelope is the {success, error?} shape every mutating endpoint returns.
type Envelope struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	ID      string `json:"id,omitempty"`      // id созданной записи (POST)
	Success bool   `json:"success"`           // явный флаг успеха
}
