package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"weeklog/internal/constants"
)

var (
	// ErrNotFound is returned when no session token is stored in the keyring
	ErrNotFound = errors.New("session token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetSessionToken retrieves the remote API session token from the OS keyring.
// Returns ErrNotFound if no token is stored.
func GetSessionToken() (string, error) {
	token, err := keyring.Get(constants.AppName, constants.KeyringSessionUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetSessionToken stores the remote API session token in the OS keyring.
func SetSessionToken(token string) error {
	if token == "" {
		return errors.New("session token cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringSessionUser, token); err != nil {
		return fmt.Errorf("failed to store session token in keyring: %w", err)
	}
	return nil
}

// DeleteSessionToken removes the session token from the OS keyring.
func DeleteSessionToken() error {
	err := keyring.Delete(constants.AppName, constants.KeyringSessionUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session token from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is usable on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
