package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid username",
			username: "admin",
			wantErr:  false,
		},
		{
			name:     "valid username - email",
			username: "owner@example.com",
			wantErr:  false,
		},
		{
			name:     "valid username - max length",
			username: strings.Repeat("a", MaxUsernameLen),
			wantErr:  false,
		},
		{
			name:     "invalid - empty username",
			username: "",
			wantErr:  true,
			errMsg:   "username cannot be empty",
		},
		{
			name:     "invalid - only spaces",
			username: "   ",
			wantErr:  true,
			errMsg:   "username cannot be empty",
		},
		{
			name:     "invalid - too long",
			username: strings.Repeat("a", MaxUsernameLen+1),
			wantErr:  true,
			errMsg:   "must not exceed",
		},
		{
			name:     "invalid - surrounding spaces",
			username: " admin",
			wantErr:  true,
			errMsg:   "must not start or end with spaces",
		},
		{
			name:     "invalid - control character",
			username: "ad\x07min",
			wantErr:  true,
			errMsg:   "control characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.NoError(t, ValidatePassword("x"))
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "http", raw: "http://127.0.0.1:3000", wantErr: false},
		{name: "https with path", raw: "https://api.example.com/v1", wantErr: false},
		{name: "empty", raw: "", wantErr: true},
		{name: "no scheme", raw: "api.example.com", wantErr: true},
		{name: "ftp", raw: "ftp://example.com", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
