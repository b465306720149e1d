// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

// ===================================================================================================
// Request Body Tests
// ===================================================================================================

func TestReviewRequest(t *testing.T) {
	tests := []struct {
		name      string
		input     ReviewRequest
		wantField string
		wantTag   string
	}{
		{name: "valid", input: ReviewRequest{Text: "Great film", Rating: 8}},
		{name: "bounds", input: ReviewRequest{Text: strings.Repeat("a", 1000), Rating: 10}},
		{name: "missing text", input: ReviewRequest{Rating: 5}, wantField: "review_text", wantTag: "required"},
		{name: "blank text", input: ReviewRequest{Text: "   \t", Rating: 5}, wantField: "review_text", wantTag: "notblank"},
		{name: "text too long", input: ReviewRequest{Text: strings.Repeat("a", 1001), Rating: 5}, wantField: "review_text", wantTag: "max"},
		{name: "rating zero", input: ReviewRequest{Text: "ok"}, wantField: "rating", wantTag: "min"},
		{name: "rating eleven", input: ReviewRequest{Text: "ok", Rating: 11}, wantField: "rating", wantTag: "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, &tt.input, tt.wantField, tt.wantTag)
		})
	}
}

func TestRegisterRequest(t *testing.T) {
	tests := []struct {
		name      string
		input     RegisterRequest
		wantField string
		wantTag   string
	}{
		{name: "valid", input: RegisterRequest{Username: "pmccartney", Password: "abcd1A23"}},
		{name: "underscore", input: RegisterRequest{Username: "paul_mc", Password: "abcd1A23"}},
		{name: "short username", input: RegisterRequest{Username: "pm", Password: "abcd1A23"}, wantField: "username", wantTag: "min"},
		{name: "username with space", input: RegisterRequest{Username: "paul mc", Password: "abcd1A23"}, wantField: "username", wantTag: "username"},
		{name: "username with dash", input: RegisterRequest{Username: "paul-mc", Password: "abcd1A23"}, wantField: "username", wantTag: "username"},
		{name: "non-ascii username", input: RegisterRequest{Username: "amélie", Password: "abcd1A23"}, wantField: "username", wantTag: "username"},
		{name: "short password", input: RegisterRequest{Username: "pmccartney", Password: "abc"}, wantField: "password", wantTag: "min"},
		{name: "missing password", input: RegisterRequest{Username: "pmccartney"}, wantField: "password", wantTag: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, &tt.input, tt.wantField, tt.wantTag)
		})
	}
}

func TestLoginAndWatchListRequests(t *testing.T) {
	assertValidation(t, &LoginRequest{Username: "thorke", Password: "x"}, "", "")
	assertValidation(t, &LoginRequest{Password: "x"}, "username", "required")
	assertValidation(t, &WatchListRequest{Rank: 1}, "", "")
	assertValidation(t, &WatchListRequest{Rank: 0}, "rank", "min")
}

// ===================================================================================================
// Query Parameter Tests
// ===================================================================================================

func TestQueryParams(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
	}{
		{name: "limit valid", input: &MovieListQuery{Limit: 10}},
		{name: "limit zero", input: &MovieListQuery{}, wantField: "limit", wantTag: "min"},
		{name: "limit too high", input: &MovieListQuery{Limit: 1001}, wantField: "limit", wantTag: "max"},
		{name: "batch valid", input: &BatchQuery{Ranks: []int{1, 2, 3}}},
		{name: "batch empty", input: &BatchQuery{}, wantField: "ranks", wantTag: "required"},
		{name: "batch negative rank", input: &BatchQuery{Ranks: []int{1, -2}}, wantField: "ranks[1]", wantTag: "min"},
		{name: "facet valid", input: &FacetQuery{Key: "Sci-Fi"}},
		{name: "facet blank", input: &FacetQuery{Key: " "}, wantField: "key", wantTag: "notblank"},
		{name: "search valid", input: &SearchQuery{Q: "Tom Hanks"}},
		{name: "search missing", input: &SearchQuery{}, wantField: "q", wantTag: "required"},
		{name: "suggest valid", input: &SuggestQuery{Prefix: "gua"}},
		{name: "suggest limit too high", input: &SuggestQuery{Prefix: "gua", Limit: 51}, wantField: "limit", wantTag: "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.input, tt.wantField, tt.wantTag)
		})
	}
}

// ===================================================================================================
// ToAPIError Tests
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	verr := ValidateStruct(&ReviewRequest{Text: "ok", Rating: 0})
	if verr == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %s, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "rating must be at least 1" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "rating" || apiErr.Details["tag"] != "min" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	verr := ValidateStruct(&RegisterRequest{Username: "a b", Password: ""})
	if verr == nil {
		t.Fatal("Expected validation error")
	}
	if n := len(verr.Errors()); n != 2 {
		t.Fatalf("got %d errors, want 2: %v", n, verr)
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %v", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "username:") || !strings.Contains(apiErr.Message, "password:") {
		t.Errorf("Message should list each field: %q", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
}

// ===================================================================================================
// Error Message Translation Tests
// ===================================================================================================

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"required", &SearchQuery{}, "q is required"},
		{"notblank", &SearchQuery{Q: "  "}, "q must not be blank"},
		{"username", &RegisterRequest{Username: "a-b-c", Password: "abcd1A23"}, "username may only contain letters, digits and underscores"},
		{"string min", &RegisterRequest{Username: "ab", Password: "abcd1A23"}, "username must be at least 3 characters"},
		{"string max", &ReviewRequest{Text: strings.Repeat("x", 1001), Rating: 1}, "review_text must be at most 1000 characters"},
		{"numeric max", &ReviewRequest{Text: "x", Rating: 11}, "rating must be at most 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if verr == nil {
				t.Fatal("Expected validation error")
			}
			if got := verr.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// assertValidation validates input and checks that it fails on wantField
// with wantTag, or passes when wantField is empty.
func assertValidation(t *testing.T, input interface{}, wantField, wantTag string) {
	t.Helper()
	verr := ValidateStruct(input)
	if wantField == "" {
		if verr != nil {
			t.Errorf("ValidateStruct() returned unexpected error: %v", verr)
		}
		return
	}
	if verr == nil {
		t.Fatalf("ValidateStruct() should fail on %s/%s", wantField, wantTag)
	}
	for _, e := range verr.Errors() {
		if e.Field() == wantField && e.Tag() == wantTag {
			return
		}
	}
	t.Errorf("Expected error on field %s with tag %s, got: %v", wantField, wantTag, verr.Errors())
}
