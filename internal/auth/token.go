package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenCodec issues and verifies the opaque credential handed to clients
// at login. The credential embeds the user id and the issue time, signed
// with a server-held secret; it is stateless and carries no other claims.
type TokenCodec struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewTokenCodec builds a codec around secret. maxAge of zero disables
// expiry checking.
func NewTokenCodec(secret string, maxAge time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Issue signs a credential for userID.
func (c *TokenCodec) Issue(userID int64) string {
	payload := strconv.FormatInt(userID, 10) + "." + strconv.FormatInt(c.now().Unix(), 10)
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + c.sign(payload)
}

// Verify checks the credential signature and age and recovers the user id.
// All failure modes wrap ErrInvalidToken.
func (c *TokenCodec) Verify(credential string) (int64, error) {
	dot := strings.LastIndexByte(credential, '.')
	if dot <= 0 || dot == len(credential)-1 {
		return 0, fmt.Errorf("%w: malformed credential", ErrInvalidToken)
	}

	raw, err := base64.RawURLEncoding.DecodeString(credential[:dot])
	if err != nil {
		return 0, fmt.Errorf("%w: payload encoding", ErrInvalidToken)
	}
	payload := string(raw)

	expected := c.sign(payload)
	if !hmac.Equal([]byte(credential[dot+1:]), []byte(expected)) {
		return 0, fmt.Errorf("%w: signature mismatch", ErrInvalidToken)
	}

	parts := strings.Split(payload, ".")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: malformed payload", ErrInvalidToken)
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid user id", ErrInvalidToken)
	}
	issuedAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid issue time", ErrInvalidToken)
	}
	if c.maxAge > 0 && c.now().Sub(time.Unix(issuedAt, 0)) > c.maxAge {
		return 0, fmt.Errorf("%w: credential expired", ErrInvalidToken)
	}

	return id, nil
}

func (c *TokenCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	_, _ = mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
