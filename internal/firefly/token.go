package firefly

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenExpiry reads the exp claim of a personal access token. Firefly III
// issues JWTs; the signature is not checked because only the server can
// verify it. ok is false when the token has no expiry.
func TokenExpiry(token string) (exp time.Time, ok bool, err error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "parsing token")
	}
	date, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "reading exp claim")
	}
	if date == nil {
		return time.Time{}, false, nil
	}
	return date.Time, true, nil
}
