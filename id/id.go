package id

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	size     = 21
)

func Generate() string {
	return gonanoid.MustGenerate(alphabet, size)
}

func Valid(s string) bool {
	if len(s) != size {
		return false
	}
	for _, r := range s {
		if !isAlphanumeric(r) {
			return false
		}
	}
	return true
}

func isAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
