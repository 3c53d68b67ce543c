package auth

import (
	"errors"
	"testing"
	"time"
)

// TestNewSessionRecovery validates session recovery initialization
func TestNewSessionRecovery(t *testing.T) {
	sr := NewSessionRecovery()

	if sr == nil {
		t.Fatal("NewSessionRecovery returned nil")
	}

	if sr.maxRetries != 3 {
		t.Errorf("Expected maxRetries 3, got %d", sr.maxRetries)
	}

	if sr.retryDelay != 2*time.Second {
		t.Errorf("Expected retryDelay 2s, got %v", sr.retryDelay)
	}
}

// TestIsSessionError_NilError handles nil error
func TestIsSessionError_NilError(t *testing.T) {
	if IsSessionError(nil) {
		t.Error("Expected false for nil error")
	}
}

// TestIsSessionError_Unauthorized detects session errors
func TestIsSessionError_Unauthorized(t *testing.T) {
	testCases := []struct {
		errMsg string
		name   string
	}{
		{"401", "401 code"},
		{"unauthorized", "unauthorized message"},
		{"session expired", "session expired message"},
		{"token expired", "token expired message"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := errors.New(tc.errMsg)
			if !IsSessionError(err) {
				t.Errorf("Expected IsSessionError to return true for '%s'", tc.errMsg)
			}
		})
	}
}

// TestIsSessionError_NonSessionError detects non-session errors
func TestIsSessionError_NonSessionError(t *testing.T) {
	testCases := []struct {
		errMsg string
		name   string
	}{
		{"network timeout", "network error"},
		{"file not found", "file error"},
		{"invalid format", "format error"},
		{"", "empty message"},
		{"500", "server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := errors.New(tc.errMsg)
			if IsSessionError(err) {
				t.Errorf("Expected IsSessionError to return false for '%s'", tc.errMsg)
			}
		})
	}
}

// TestHandleSessionError_NonSessionError passes through non-session errors
func TestHandleSessionError_NonSessionError(t *testing.T) {
	sr := NewSessionRecovery()
	originalErr := errors.New("network timeout")

	result := sr.HandleSessionError(originalErr)

	if result != originalErr {
		t.Error("Expected non-session error to pass through unchanged")
	}
}

// TestHandleSessionError_NilError handles nil error
func TestHandleSessionError_NilError(t *testing.T) {
	sr := NewSessionRecovery()
	result := sr.HandleSessionError(nil)

	if result != nil {
		t.Errorf("Expected nil for nil error, got %v", result)
	}
}

// TestSessionRecoveryRetryParameters validates retry configuration
func TestSessionRecoveryRetryParameters(t *testing.T) {
	sr := NewSessionRecovery()

	if sr.maxRetries < 1 {
		t.Error("maxRetries should be at least 1")
	}

	if sr.retryDelay < 1*time.Millisecond {
		t.Error("retryDelay should be positive")
	}
}
