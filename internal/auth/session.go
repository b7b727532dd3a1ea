package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

// CookieName is the session cookie. Its value is the raw token:
// subject.issuedAtMillis.hexSignature.
const CookieName = "st_session"

// ErrInvalidSession is the single failure outcome for session verification.
// Corrupt, tampered, expired and malformed tokens are deliberately not
// distinguished: any of them simply means "no session".
var ErrInvalidSession = errors.New("invalid session")

// SessionCodec issues and decodes the stateless session token. The token is
// a self-contained signed capability: there is no server-side session table,
// so the only revocation lever is the per-request active-flag re-check done
// by the access gate after decoding.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionCodec builds a codec around the process-wide signing secret.
func NewSessionCodec(secret string, ttl time.Duration) *SessionCodec {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &SessionCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue builds a signed token for the subject.
func (c *SessionCodec) Issue(subject string) string {
	payload := subject + "." + strconv.FormatInt(c.now().UnixMilli(), 10)
	return payload + "." + c.sign(payload)
}

// Decode validates a token and returns its subject. The signature is checked
// before the timestamp is even parsed, and the comparison is constant-time.
func (c *SessionCodec) Decode(token string) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", ErrInvalidSession
	}

	subject, issuedAt, sig := parts[0], parts[1], parts[2]
	if subject == "" {
		return "", ErrInvalidSession
	}

	expected := c.sign(subject + "." + issuedAt)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(sig)) != 1 {
		return "", ErrInvalidSession
	}

	millis, err := strconv.ParseInt(issuedAt, 10, 64)
	if err != nil {
		return "", ErrInvalidSession
	}
	if c.now().Sub(time.UnixMilli(millis)) > c.ttl {
		return "", ErrInvalidSession
	}

	return subject, nil
}

func (c *SessionCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
