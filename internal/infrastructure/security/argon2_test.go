package security

import (
	"strings"
	"testing"
)

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher(DefaultArgon2Params())
	encoded, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected hash format: %q", encoded)
	}
	if !h.Verify("correct horse battery staple", encoded) {
		t.Fatal("Verify failed for correct password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher(DefaultArgon2Params())
	encoded, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h.Verify("pw2", encoded) {
		t.Fatal("Verify succeeded for wrong password")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher(DefaultArgon2Params())
	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=3,p=2$short",
		"$bcrypt$v=19$m=65536,t=3,p=2$AAAA$BBBB",
	} {
		if h.Verify("anything", encoded) {
			t.Errorf("Verify succeeded for malformed hash %q", encoded)
		}
	}
}

func TestHash_Salted(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher(DefaultArgon2Params())
	a, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password are identical; salt not applied")
	}
}
