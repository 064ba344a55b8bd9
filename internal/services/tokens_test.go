package services

import (
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	tokens := TokenService{Secret: []byte("test-secret"), TokenTTL: 7 * 24 * time.Hour}
	userID := "user-123"

	tok, err := tokens.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gotUserID, err := tokens.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tokens := TokenService{Secret: []byte("test-secret"), TokenTTL: -1 * time.Second}
	tok, err := tokens.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := tokens.Verify(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := TokenService{Secret: []byte("right-secret"), TokenTTL: time.Hour}
	tok, err := issuer.Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	verifier := TokenService{Secret: []byte("wrong-secret"), TokenTTL: time.Hour}
	if _, err := verifier.Verify(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tokens := TokenService{Secret: []byte("k"), TokenTTL: time.Hour}
	if _, err := tokens.Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	tokens := TokenService{}
	hash, err := tokens.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash equals plaintext")
	}
	if !tokens.VerifyPassword("s3cret-pass", hash) {
		t.Fatalf("correct password rejected")
	}
	if tokens.VerifyPassword("wrong-pass", hash) {
		t.Fatalf("wrong password accepted")
	}
}
