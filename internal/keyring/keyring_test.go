package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetSessionToken(t *testing.T) {
	gokeyring.MockInit()

	token := "abc123-session-token"

	if err := SetSessionToken(token); err != nil {
		t.Fatalf("SetSessionToken() failed: %v", err)
	}

	retrieved, err := GetSessionToken()
	if err != nil {
		t.Fatalf("GetSessionToken() failed: %v", err)
	}
	if retrieved != token {
		t.Errorf("GetSessionToken() = %q, want %q", retrieved, token)
	}
}

func TestSetSessionTokenEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetSessionToken(""); err == nil {
		t.Error("SetSessionToken(\"\") should return an error")
	}
}

func TestGetSessionTokenNotFound(t *testing.T) {
	gokeyring.MockInit()

	_ = DeleteSessionToken()

	if _, err := GetSessionToken(); err != ErrNotFound {
		t.Errorf("GetSessionToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteSessionToken(t *testing.T) {
	gokeyring.MockInit()

	if err := SetSessionToken("to-delete"); err != nil {
		t.Fatal(err)
	}
	if err := DeleteSessionToken(); err != nil {
		t.Fatalf("DeleteSessionToken() failed: %v", err)
	}
	if err := DeleteSessionToken(); err != ErrNotFound {
		t.Errorf("second delete error = %v, want %v", err, ErrNotFound)
	}
}
