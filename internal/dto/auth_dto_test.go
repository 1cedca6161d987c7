package dto

import (
	"strings"
	"testing"
)

func TestRegisterValidate_DefaultsRoleToUser(t *testing.T) {
	req := RegisterUserRequest{Email: "alice@example.com", Password: "password123", Name: "Alice"}

	if err := req.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if req.Role != "user" {
		t.Errorf("expected default role user, got %q", req.Role)
	}
}

func TestRegisterValidate_RejectsUnknownRole(t *testing.T) {
	req := RegisterUserRequest{Email: "alice@example.com", Password: "password123", Name: "Alice", Role: "superuser"}

	if err := req.Validate(); err == nil {
		t.Fatal("unknown role should fail validation")
	}
}

func TestRegisterValidate_CollectsAllFieldErrors(t *testing.T) {
	req := RegisterUserRequest{Email: "not-an-email", Password: "short", Name: ""}

	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	msg := err.Error()
	for _, want := range []string{"email", "password", "name"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in error, got: %v", want, msg)
		}
	}
}

func TestReviewValidate_RejectsPending(t *testing.T) {
	req := ReviewCarbonDataRequest{Status: "pending"}

	if err := req.Validate(); err == nil {
		t.Fatal("a review cannot set status back to pending")
	}
}

func TestReviewValidate_AcceptsActions(t *testing.T) {
	for _, status := range []string{"approved", "rejected", "request_changes"} {
		req := ReviewCarbonDataRequest{Status: status}
		if err := req.Validate(); err != nil {
			t.Errorf("status %q should validate: %v", status, err)
		}
	}
}
