package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindPermission, "permission denied"},
		{KindIO, "I/O error"},
		{KindNetwork, "network error"},
		{KindConfig, "configuration error"},
		{KindTimeout, "timeout"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE_ContextBecomesErrorWithoutUnderlying(t *testing.T) {
	err := E(Op("test.Op"), KindInvalid, "just a message")
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("E() returned %T, want *Error", err)
	}
	if e.Context != "" {
		t.Errorf("Context = %q, want empty", e.Context)
	}
	if e.Err == nil || e.Err.Error() != "just a message" {
		t.Errorf("Err = %v, want 'just a message'", e.Err)
	}
	if err.Error() != "test.Op: just a message" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIsAndGetKind(t *testing.T) {
	err := LocatorForbidden("notes/a.html")
	if !Is(err, KindPermission) {
		t.Error("LocatorForbidden should be KindPermission")
	}
	if Is(err, KindIO) {
		t.Error("LocatorForbidden should not be KindIO")
	}

	wrapped := fmt.Errorf("loading: %w", err)
	if GetKind(wrapped) != KindPermission {
		t.Errorf("GetKind(wrapped) = %v, want permission", GetKind(wrapped))
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Error("plain errors should report KindUnknown")
	}
}

func TestConstructors(t *testing.T) {
	underlying := errors.New("boom")
	tests := []struct {
		name     string
		err      error
		kind     Kind
		contains string
	}{
		{"EmptyCollection", EmptyCollection(), KindConfig, "empty"},
		{"DuplicateDocument", DuplicateDocument("page1"), KindConfig, `"page1"`},
		{"MissingDocumentID", MissingDocumentID(2), KindConfig, "position 2"},
		{"ConfigLoadFailed", ConfigLoadFailed("/x.yaml", underlying), KindConfig, "/x.yaml"},
		{"ConfigSaveFailed", ConfigSaveFailed("/x.yaml", underlying), KindConfig, "save"},
		{"ConfigInvalid", ConfigInvalid("bad"), KindInvalid, "bad"},
		{"UnknownSandboxToken", UnknownSandboxToken("allow-popups"), KindInvalid, "allow-popups"},
		{"LocatorForbidden", LocatorForbidden("a.html"), KindPermission, "allow-same-origin"},
		{"DocumentLoadFailed", DocumentLoadFailed("a.html", underlying), KindIO, "a.html"},
		{"DocumentFetchFailed", DocumentFetchFailed("http://x", underlying), KindNetwork, "http://x"},
		{"DocumentLoadTimeout", DocumentLoadTimeout("http://x"), KindTimeout, "timed out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if GetKind(tt.err) != tt.kind {
				t.Errorf("kind = %v, want %v", GetKind(tt.err), tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("%q should contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	underlying := errors.New("connection refused")
	err := DocumentFetchFailed("http://example.test/doc", underlying)

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find the underlying error")
	}
}
