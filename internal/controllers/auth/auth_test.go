package authController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "longenough"},
		},
		{
			name:    "missing name",
			request: RegisterRequest{Email: "dana@example.com", Password: "longenough"},
			wantErr: true,
		},
		{
			name:    "whitespace name",
			request: RegisterRequest{Name: "   ", Email: "dana@example.com", Password: "longenough"},
			wantErr: true,
		},
		{
			name:    "invalid email",
			request: RegisterRequest{Name: "Dana", Email: "not-an-email", Password: "longenough"},
			wantErr: true,
		},
		{
			name:    "short password",
			request: RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "short"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRegisterRequest(&tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "dana@example.com", normalizeEmail("  Dana@Example.COM "))
	assert.Equal(t, "dana@example.com", normalizeEmail("dana@example.com"))
}
