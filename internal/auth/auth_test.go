package auth

import (
	"testing"
)

func TestVerifier_ValidKey(t *testing.T) {
	v := NewVerifier([]string{"test-key-123", "another-key"})

	if !v.Verify("test-key-123") {
		t.Error("expected first key to be accepted")
	}
	if !v.Verify("another-key") {
		t.Error("expected second key to be accepted")
	}
}

func TestVerifier_InvalidKey(t *testing.T) {
	v := NewVerifier([]string{"test-key-123"})

	if v.Verify("wrong-key") {
		t.Error("expected unknown key to be rejected")
	}
}

func TestVerifier_MissingKey(t *testing.T) {
	v := NewVerifier([]string{"test-key-123"})

	if v.Verify("") {
		t.Error("expected empty key to be rejected")
	}
}

func TestVerifier_EmptyAllowList(t *testing.T) {
	v := NewVerifier(nil)

	if v.Verify("test-key-123") {
		t.Error("expected rejection when no keys are configured")
	}
	if v.Verify("") {
		t.Error("expected rejection of empty key when no keys are configured")
	}
}

func TestVerifier_PrefixIsNotEnough(t *testing.T) {
	v := NewVerifier([]string{"test-key-123"})

	if v.Verify("test-key") {
		t.Error("expected prefix of a valid key to be rejected")
	}
	if v.Verify("test-key-1234") {
		t.Error("expected extension of a valid key to be rejected")
	}
}
