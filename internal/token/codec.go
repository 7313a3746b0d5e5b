package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrDecode covers every way a token can fail verification: bad signature,
// malformed compact form, or an expired exp when expiry checking is on.
var ErrDecode = errors.New("invalid or expired access token")

// Claims is the identity payload carried by an access token.
type Claims struct {
	Sub      string // login identifier (email)
	UserID   int64
	KennelID int64
}

// Codec mints and verifies signed access tokens with a single shared secret.
// The secret and algorithm are fixed at construction; rotating the secret
// invalidates everything minted before.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
	now    func() time.Time
}

func NewCodec(secret string, algorithm string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("signing secret is required")
	}

	var method jwt.SigningMethod
	switch algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &Codec{
		secret: []byte(secret),
		method: method,
		now:    time.Now,
	}, nil
}

// WithNow replaces the codec's clock. Tests backdate or advance time with it.
func (c *Codec) WithNow(now func() time.Time) *Codec {
	c.now = now
	return c
}

// Mint signs claims with an absolute expiry ttl from now and returns the
// compact token alongside the ttl in whole seconds.
func (c *Codec) Mint(claims Claims, ttl time.Duration) (string, int, error) {
	expire := c.now().Add(ttl)

	t := jwt.NewWithClaims(c.method, jwt.MapClaims{
		"sub":       claims.Sub,
		"user_id":   claims.UserID,
		"kennel_id": claims.KennelID,
		"exp":       expire.Unix(),
	})

	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", 0, err
	}

	return signed, int(ttl.Seconds()), nil
}

// Decode verifies the signature and, when verifyExpiry is set, the expiry.
// The signature check is unconditional: the refresh path decodes expired
// tokens but a resigned or tampered token still fails here.
func (c *Codec) Decode(tokenString string, verifyExpiry bool) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithTimeFunc(c.now),
	}
	if !verifyExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return Claims{}, ErrDecode
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrDecode
	}

	var claims Claims
	claims.Sub, _ = mc["sub"].(string)
	claims.UserID = asInt64(mc["user_id"])
	claims.KennelID = asInt64(mc["kennel_id"])
	return claims, nil
}

// JSON numbers decode as float64; tokens minted elsewhere may carry int64.
func asInt64(v interface{}) int64 {
	switch t := v.(type) {
	case float64:
		return int64(t)
	case int64:
		return t
	case int:
		return int64(t)
	default:
		return 0
	}
}
