package dto

import (
	"strings"
	"testing"
	"time"
)

func validCreateRequest() CreateCarbonDataRequest {
	return CreateCarbonDataRequest{
		Title:        "Commute",
		CarbonAmount: 12.5,
		Category:     "transport",
		Date:         time.Now().Format(time.RFC3339),
	}
}

func TestCreateValidate_DefaultsUnitToKg(t *testing.T) {
	req := validCreateRequest()

	if err := req.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if req.Unit != "kg" {
		t.Errorf("expected default unit kg, got %q", req.Unit)
	}
}

func TestCreateValidate_KeepsExplicitUnit(t *testing.T) {
	req := validCreateRequest()
	req.Unit = "t"

	if err := req.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if req.Unit != "t" {
		t.Errorf("explicit unit should be kept, got %q", req.Unit)
	}
}

func TestCreateValidate_RejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -1, -12.5} {
		req := validCreateRequest()
		req.CarbonAmount = amount

		err := req.Validate()
		if err == nil {
			t.Fatalf("amount %v should fail validation", amount)
		}
		if !strings.Contains(err.Error(), "carbon amount must be positive") {
			t.Errorf("unexpected error for amount %v: %v", amount, err)
		}
	}
}

func TestCreateValidate_RejectsBadCategoryAndDate(t *testing.T) {
	req := validCreateRequest()
	req.Category = "aviation"
	req.Date = "yesterday"

	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if !strings.Contains(err.Error(), "category") || !strings.Contains(err.Error(), "date") {
		t.Errorf("both field errors should be reported together: %v", err)
	}
}

func TestCreateValidate_RequiresTitle(t *testing.T) {
	req := validCreateRequest()
	req.Title = "   "

	if err := req.Validate(); err == nil {
		t.Fatal("blank title should fail validation")
	}
}

func TestUpdateValidate_EmptyPatchIsValid(t *testing.T) {
	req := UpdateCarbonDataRequest{}
	if err := req.Validate(); err != nil {
		t.Fatalf("empty patch should validate: %v", err)
	}
	if req.ParsedDate() != nil {
		t.Error("omitted date should parse to nil")
	}
}

func TestUpdateValidate_RevalidatesAmount(t *testing.T) {
	zero := 0.0
	req := UpdateCarbonDataRequest{CarbonAmount: &zero}

	if err := req.Validate(); err == nil {
		t.Fatal("zero amount should fail validation on update too")
	}
}

func TestUpdateValidate_RejectsEmptyTitle(t *testing.T) {
	empty := ""
	req := UpdateCarbonDataRequest{Title: &empty}

	if err := req.Validate(); err == nil {
		t.Fatal("empty title patch should fail validation")
	}
}
