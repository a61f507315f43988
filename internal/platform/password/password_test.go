package password

import (
	"errors"
	"strings"
	"testing"
)

// params livianos para que los tests no tarden
var testParams = Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestHash_PHCFormat(t *testing.T) {
	h, err := Hash("pw")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	parts := strings.Split(h, "$")
	if len(parts) != 6 {
		t.Fatalf("expected 6 parts, got %d: %q", len(parts), h)
	}
	if parts[1] != "argon2id" || parts[2] != "v=19" || parts[3] != "m=65536,t=3,p=2" {
		t.Fatalf("unexpected header: %q", h)
	}
	if strings.Contains(h, "pw$") {
		t.Fatalf("hash leaks plaintext: %q", h)
	}
}

func TestVerify_CorrectAndWrong(t *testing.T) {
	h, err := HashWithParams("secreto", testParams)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := Verify("secreto", h)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = Verify("otro", h)
	if err != nil || ok {
		t.Fatalf("expected mismatch, got ok=%v err=%v", ok, err)
	}
}

func TestHash_SaltDiffers(t *testing.T) {
	a, _ := HashWithParams("igual", testParams)
	b, _ := HashWithParams("igual", testParams)
	if a == b {
		t.Fatalf("expected different hashes for same password")
	}
}

func TestVerify_InvalidHash(t *testing.T) {
	for _, bad := range []string{"", "pw", "$argon2i$v=19$m=1,t=1,p=1$c2FsdA$a2V5", "$argon2id$v=19$m=1,t=1,p=1$!!$a2V5"} {
		if _, err := Verify("pw", bad); !errors.Is(err, ErrInvalidHash) {
			t.Fatalf("Verify(%q): expected ErrInvalidHash, got %v", bad, err)
		}
	}

	if _, err := Verify("pw", "$argon2id$v=18$m=1,t=1,p=1$c2FsdA$a2V5"); !errors.Is(err, ErrIncompatibleVersion) {
		t.Fatalf("expected ErrIncompatibleVersion, got %v", err)
	}
}
