package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hako/branca"
	"github.com/nicolasparada/go-errs"
)

var (
	ErrInvalidToken = errs.UnauthenticatedError("invalid token")
	ErrExpiredToken = errs.UnauthenticatedError("expired token")
)

// TokenCodec issues and reads branca tokens whose payload is a user ID.
// Sessions are created elsewhere; gigchat only needs to read them.
type TokenCodec struct {
	key string
	ttl time.Duration
}

func NewTokenCodec(key string, ttl time.Duration) (*TokenCodec, error) {
	if len(key) != 32 {
		return nil, errors.New("token key must be 32 bytes long")
	}

	return &TokenCodec{key: key, ttl: ttl}, nil
}

func (c *TokenCodec) Encode(userID string) (string, error) {
	token, err := c.branca().EncodeToString(userID)
	if err != nil {
		return "", fmt.Errorf("branca encode token: %w", err)
	}

	return token, nil
}

func (c *TokenCodec) Decode(token string) (string, error) {
	userID, err := c.branca().DecodeToString(token)
	if err != nil {
		if errors.Is(err, branca.ErrInvalidToken) || errors.Is(err, branca.ErrInvalidTokenVersion) {
			return "", ErrInvalidToken
		}

		if _, ok := err.(*branca.ErrExpiredToken); ok {
			return "", ErrExpiredToken
		}

		// chacha20poly1305 does not export its authentication error.
		if strings.HasSuffix(err.Error(), "authentication failed") {
			return "", ErrInvalidToken
		}

		return "", fmt.Errorf("branca decode token: %w", err)
	}

	if strings.TrimSpace(userID) == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}

func (c *TokenCodec) branca() *branca.Branca {
	b := branca.NewBranca(c.key)
	b.SetTTL(uint32(c.ttl.Seconds()))
	return b
}
