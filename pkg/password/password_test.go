package password

import (
	"strings"
	"testing"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("pw1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "pw1" {
		t.Fatal("hash equals plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("not a bcrypt hash: %q", hash)
	}

	if err := Compare(hash, "pw1"); err != nil {
		t.Fatalf("Compare with correct password: %v", err)
	}
	if err := Compare(hash, "wrong"); err == nil {
		t.Fatal("Compare with wrong password succeeded")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := Hash("same")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password are identical")
	}
}
