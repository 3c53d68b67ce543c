package auth

import (
	"fmt"
	"time"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/api"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/credentials"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
)

// SessionRecovery validates a stored session against the backend,
// retrying transient failures. The backend issues long-lived tokens
// without a refresh endpoint, so an invalid token means logging in
// again.
type SessionRecovery struct {
	maxRetries int
	retryDelay time.Duration
}

// NewSessionRecovery creates a new session recovery handler
func NewSessionRecovery() *SessionRecovery {
	return &SessionRecovery{
		maxRetries: 3,
		retryDelay: 2 * time.Second,
	}
}

// ValidateSession checks the stored token by fetching the account.
// A rejected token clears the stored credentials.
func (sr *SessionRecovery) ValidateSession() error {
	logger.Debug("Validating stored session")

	creds, err := credentials.Load()
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	if creds == nil || !creds.IsValid() {
		return fmt.Errorf("no stored session - please log in")
	}

	var lastErr error
	for attempt := 1; attempt <= sr.maxRetries; attempt++ {
		logger.Debug("Checking session", "attempt", attempt)

		_, err := api.GetCurrentUser()
		if err == nil {
			return nil
		}
		lastErr = err

		if api.IsUnauthorized(err) {
			// Token is dead; retrying will not help
			if delErr := credentials.Delete(); delErr != nil {
				logger.Error("Failed to clear stale credentials", "error", delErr)
			}
			return fmt.Errorf("session expired - please log in again")
		}

		if attempt < sr.maxRetries {
			time.Sleep(sr.retryDelay)
		}
	}

	return fmt.Errorf("could not validate session after %d attempts: %w", sr.maxRetries, lastErr)
}

// HandleSessionError revalidates the session when an API call failed
// with a session problem; other errors pass through unchanged
func (sr *SessionRecovery) HandleSessionError(err error) error {
	if err == nil {
		return nil
	}

	if !IsSessionError(err) {
		return err
	}

	logger.Debug("Session error detected", "error", err)
	if recErr := sr.ValidateSession(); recErr != nil {
		return recErr
	}
	return err
}

// IsSessionError reports whether an error indicates a dead session
func IsSessionError(err error) bool {
	if err == nil {
		return false
	}

	switch err.Error() {
	case "401", "unauthorized", "session expired", "token expired":
		return true
	}
	return api.IsUnauthorized(err)
}
