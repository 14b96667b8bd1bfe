package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/alumni-connect/internal/recommend"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "email", Message: "required"}, http.StatusBadRequest},
		{"unauthenticated recommendation", &recommend.ErrUnauthenticated{}, http.StatusUnauthorized},
		{"profile not found", &recommend.ErrProfileNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"wrapped unauthenticated", fmt.Errorf("recommend: %w", &recommend.ErrUnauthenticated{}), http.StatusUnauthorized},
		{"wrapped profile not found", fmt.Errorf("recommend: %w", &recommend.ErrProfileNotFound{}), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.New()
	assert.Contains(t, (&ErrEmailAlreadyExists{Email: "x@y.z"}).Error(), "x@y.z")
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())
	assert.Contains(t, (&ErrUserNotFound{UserID: id}).Error(), id.String())
	assert.Equal(t, "current password is incorrect", (&ErrPasswordMismatch{}).Error())
}
