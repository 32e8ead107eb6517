package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsMapStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound("Province not found"), http.StatusNotFound},
		{"conflict", Conflict("Username already taken", "username"), http.StatusConflict},
		{"invalid input", InvalidInput("Start date cannot be after end date"), http.StatusBadRequest},
		{"validation", Validation("password: is required"), http.StatusUnprocessableEntity},
		{"unauthorized", Unauthorized("nope"), http.StatusUnauthorized},
		{"invalid token", InvalidToken("Could not validate credentials"), http.StatusUnauthorized},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
		{"database", DatabaseError(errors.New("down")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.want {
				t.Errorf("status = %d, want %d", tt.err.HTTPStatus, tt.want)
			}
		})
	}
}

func TestToResponseDetailOnly(t *testing.T) {
	resp := NotFound("Travel not found or not authorized").ToResponse()

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"detail":"Travel not found or not authorized"}`
	if string(data) != want {
		t.Errorf("body = %s, want %s", data, want)
	}
}

func TestToResponseValidationFields(t *testing.T) {
	appErr := Validation("password: is required")
	appErr.Details = map[string]any{"fields": []string{"password"}}

	resp := appErr.ToResponse()
	if resp.Fields == nil {
		t.Error("validation response should carry fields")
	}
}

func TestToResponseHidesInternalCause(t *testing.T) {
	resp := Internal(errors.New("pq: connection refused")).ToResponse()
	if resp.Detail != "Internal server error" {
		t.Errorf("detail = %q, leaks internals", resp.Detail)
	}
}

func TestAsAppErrorUnwrapsChain(t *testing.T) {
	inner := Conflict("Email already registered", "email")
	wrapped := fmt.Errorf("registering: %w", inner)

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("AsAppError() = false, want true")
	}
	if appErr.Message != "Email already registered" {
		t.Errorf("message = %q", appErr.Message)
	}
	if !IsAppError(wrapped) {
		t.Error("IsAppError() = false")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("IsAppError(plain) = true")
	}
}
