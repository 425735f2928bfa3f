package utils

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("injera123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "injera123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPasswordHash("injera123", hash) {
		t.Error("correct password should verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password should not verify")
	}
	if CheckPasswordHash("injera123", "not-a-hash") {
		t.Error("garbage hash should not verify")
	}
}
