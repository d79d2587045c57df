package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	body := appErr.ToHTTPError()
	if body["code"] != "INTERNAL_ERROR" || body["error"] != "An internal error occurred" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, leaked := body["cause"]; leaked {
		t.Fatalf("cause must not be rendered")
	}

	simple := NewDomainErrorSimple("MISSION_NOT_FOUND", "Mission not found", http.StatusNotFound)
	if simple.Error() != "MISSION_NOT_FOUND: Mission not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
}
