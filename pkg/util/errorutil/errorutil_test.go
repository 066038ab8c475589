package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

func TestToDomainError_PassThrough(t *testing.T) {
	t.Parallel()

	orig := NewValidationError("ya existe un usuario con el email: a@b.com", map[string]any{"email": "a@b.com"})
	got := ToDomainError(orig)

	if got.Code != "VALIDATION_FAILED" {
		t.Errorf("Code = %s, want VALIDATION_FAILED", got.Code)
	}
	if got.HTTPStatus != http.StatusBadRequest {
		t.Errorf("HTTPStatus = %d, want %d", got.HTTPStatus, http.StatusBadRequest)
	}
	if got.Details["email"] != "a@b.com" {
		t.Errorf("Details[email] = %v, want a@b.com", got.Details["email"])
	}
}

func TestToDomainError_WrappedDomainError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("service call: %w", NewUnauthorized("credenciales inválidas"))
	got := ToDomainError(wrapped)

	if got.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("HTTPStatus = %d, want %d", got.HTTPStatus, http.StatusUnauthorized)
	}
}

func TestToDomainError_NoRows(t *testing.T) {
	t.Parallel()

	got := ToDomainError(pgx.ErrNoRows)
	if got.Code != "NOT_FOUND" {
		t.Errorf("Code = %s, want NOT_FOUND", got.Code)
	}
	if got.HTTPStatus != http.StatusNotFound {
		t.Errorf("HTTPStatus = %d, want %d", got.HTTPStatus, http.StatusNotFound)
	}
}

func TestToDomainError_FiberError(t *testing.T) {
	t.Parallel()

	got := ToDomainError(fiber.ErrNotFound)
	if got.HTTPStatus != http.StatusNotFound {
		t.Errorf("HTTPStatus = %d, want %d", got.HTTPStatus, http.StatusNotFound)
	}
	if got.Code != "NOT_FOUND" {
		t.Errorf("Code = %s, want NOT_FOUND", got.Code)
	}

	got = ToDomainError(fiber.ErrMethodNotAllowed)
	if got.HTTPStatus != http.StatusMethodNotAllowed {
		t.Errorf("HTTPStatus = %d, want %d", got.HTTPStatus, http.StatusMethodNotAllowed)
	}
	if got.Code != "REQUEST_REJECTED" {
		t.Errorf("Code = %s, want REQUEST_REJECTED", got.Code)
	}
}

func TestToDomainError_Unknown(t *testing.T) {
	t.Parallel()

	got := ToDomainError(errors.New("boom"))
	if got.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("HTTPStatus = %d, want %d", got.HTTPStatus, http.StatusInternalServerError)
	}
	if got.Message != "internal server error" {
		t.Errorf("Message = %q, want generic message", got.Message)
	}
}

func TestToDomainError_Nil(t *testing.T) {
	t.Parallel()

	if got := ToDomainError(nil); got != nil {
		t.Errorf("ToDomainError(nil) = %v, want nil", got)
	}
}
