package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestArgon2Hasher_HashAndCompare(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("expected argon2id encoded hash, got %s", hash)
	}

	if err := hasher.Compare(hash, "password123"); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}
}

func TestArgon2Hasher_WrongPassword(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err = hasher.Compare(hash, "password124")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestArgon2Hasher_RandomSalt(t *testing.T) {
	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first == second {
		t.Error("expected distinct hashes for the same password")
	}

	if err := hasher.Compare(second, "password123"); err != nil {
		t.Errorf("expected second hash to verify, got %v", err)
	}
}

func TestArgon2Hasher_MalformedHash(t *testing.T) {
	hasher := NewArgon2Hasher()

	cases := []struct {
		name string
		hash string
		want error
	}{
		{"empty", "", ErrMalformedHash},
		{"not phc", "plaintext", ErrMalformedHash},
		{"too few parts", "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA", ErrMalformedHash},
		{"wrong scheme", "$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$a2V5", ErrUnsupportedScheme},
		{"bad version", "$argon2id$v=9$m=65536,t=3,p=4$c2FsdA$a2V5", ErrIncompatibleHash},
		{"bad params", "$argon2id$v=19$nonsense$c2FsdA$a2V5", ErrMalformedHash},
		{"bad salt", "$argon2id$v=19$m=65536,t=3,p=4$!!!$a2V5", ErrMalformedHash},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := hasher.Compare(tc.hash, "password123")
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestArgon2Hasher_CompareIgnoresCurrentConfig(t *testing.T) {
	hash, err := NewArgon2Hasher().Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// A hasher with different parameters still verifies: the hash carries
	// the parameters it was produced with.
	other := &Argon2Hasher{time: 1, memory: 8 * 1024, threads: 1, saltLen: 8, keyLen: 16}
	if err := other.Compare(hash, "password123"); err != nil {
		t.Errorf("expected cross-config verify to pass, got %v", err)
	}
}
