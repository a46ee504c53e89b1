package errors

import "testing"

func TestExitErrorMessage(t *testing.T) {
	err := NewExitError(New("something failed"), ExitSystem)
	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystem)
	}
}

func TestExitErrorNilUnderlying(t *testing.T) {
	err := NewExitError(nil, ExitUser)
	if err.Error() != "exit code 1" {
		t.Errorf("Error() = %q, want %q", err.Error(), "exit code 1")
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	sentinel := New("sentinel")
	wrapped := NewUserError(Wrap(sentinel, "context"), "try again")

	if !Is(wrapped, sentinel) {
		t.Error("Is() did not find sentinel through ExitError")
	}

	var exitErr *ExitError
	if !As(wrapped, &exitErr) {
		t.Fatal("As() did not find ExitError")
	}
	if exitErr.Suggestion != "try again" {
		t.Errorf("Suggestion = %q, want %q", exitErr.Suggestion, "try again")
	}
}

func TestNewUserError(t *testing.T) {
	err := NewUserError(New("bad input"), "check the kind name")
	if err.Code != ExitUser {
		t.Errorf("Code = %d, want %d", err.Code, ExitUser)
	}
	if err.Suggestion != "check the kind name" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}
