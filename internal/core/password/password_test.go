package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("pw123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "pw123" {
		t.Fatalf("hash must not equal the secret")
	}
	if !Verify("pw123", hash) {
		t.Fatalf("expected secret to verify against its own hash")
	}
	if Verify("pw124", hash) {
		t.Fatalf("expected different secret to fail verification")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same-secret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := Hash("same-secret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same secret must differ")
	}
	if !Verify("same-secret", h1) || !Verify("same-secret", h2) {
		t.Fatalf("both hashes must verify the original secret")
	}
}

func TestIsHashed(t *testing.T) {
	hash, err := Hash("anything")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !IsHashed(hash) {
		t.Fatalf("bcrypt output must carry the format tag")
	}

	for _, legacy := range []string{"", "plaintext", "12345", "$1$old"} {
		if IsHashed(legacy) {
			t.Fatalf("%q should not be detected as hashed", legacy)
		}
	}
}
