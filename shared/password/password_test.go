package password_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gakiokevin/myhotel/shared/password"
)

func TestHash(t *testing.T) {
	t.Run("hashes a password", func(t *testing.T) {
		hash, err := password.Hash("s3cret-passw0rd")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if hash == "s3cret-passw0rd" {
			t.Error("expected hash to differ from the plain password")
		}

		if !strings.HasPrefix(hash, "$2") {
			t.Errorf("expected a bcrypt hash, got %s", hash)
		}
	})

	t.Run("rejects an empty password", func(t *testing.T) {
		if _, err := password.Hash(""); err == nil {
			t.Error("expected an error for an empty password")
		}
	})

	t.Run("same password yields distinct hashes", func(t *testing.T) {
		first, _ := password.Hash("s3cret-passw0rd")
		second, _ := password.Hash("s3cret-passw0rd")

		if first == second {
			t.Error("expected salted hashes to differ")
		}
	})
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-passw0rd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("accepts the right password", func(t *testing.T) {
		if err := password.Verify("s3cret-passw0rd", hash); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejects the wrong password", func(t *testing.T) {
		err := password.Verify("wrong-password", hash)
		if !errors.Is(err, password.ErrInvalidPassword) {
			t.Errorf("expected ErrInvalidPassword, got %v", err)
		}
	})

	t.Run("rejects empty inputs", func(t *testing.T) {
		if !errors.Is(password.Verify("", hash), password.ErrInvalidPassword) {
			t.Error("expected ErrInvalidPassword for an empty password")
		}

		if !errors.Is(password.Verify("s3cret-passw0rd", ""), password.ErrInvalidPassword) {
			t.Error("expected ErrInvalidPassword for an empty hash")
		}
	})
}
