package registration

import (
	"encoding/base64"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TokenTTL bounds the age of a timestamped token. A token exactly TokenTTL
// old is still accepted; one older by any amount is rejected.
const TokenTTL = 24 * time.Hour

// The token scheme is deliberately weak: base64 of "email" or of
// "email|issuedAtMillis", with no signature. Anyone who can compute
// base64(validEmail) can mint an accepted token. This mirrors the contract
// the confirmation pages have always shipped with; an HMAC-signed token
// would change externally observable behavior, so the upgrade is a
// documented future decision, not something done here. See DESIGN.md.

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// academicDomains widens acceptance beyond the general pattern for
// institutional addresses the fest expects.
var academicDomains = []string{
	"du.ac.in",
	"ipu.ac.in",
	"shivaji.du.ac.in",
}

// MintToken issues a timestamped token for a successful submission.
func MintToken(email string, issuedAt time.Time) string {
	payload := email + "|" + strconv.FormatInt(issuedAt.UnixMilli(), 10)
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

// MintBareToken issues a token with no expiry. Kept for parity with links
// minted before timestamps were added.
func MintBareToken(email string) string {
	return base64.StdEncoding.EncodeToString([]byte(email))
}

// VerifyToken decodes and validates a token, returning the embedded email.
// Every failure mode is uniform: the caller treats the token as invalid and
// redirects, with no partial trust.
func VerifyToken(token string, now time.Time) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", NewInvalidTokenError("Token is not valid base64", err)
	}

	emailPart, tsPart, hasTimestamp := strings.Cut(string(raw), "|")

	if !validEmailShape(emailPart) {
		return "", NewInvalidTokenError("Token does not decode to an email address", nil)
	}

	if hasTimestamp {
		ts, err := strconv.ParseInt(tsPart, 10, 64)
		if err != nil {
			return "", NewInvalidTokenError("Token timestamp is not an integer", err)
		}
		if now.Sub(time.UnixMilli(ts)) > TokenTTL {
			return "", NewExpiredTokenError("Token is older than 24 hours")
		}
	}

	return emailPart, nil
}

func validEmailShape(s string) bool {
	if emailPattern.MatchString(s) {
		return true
	}

	at := strings.LastIndex(s, "@")
	if at < 1 || at == len(s)-1 {
		return false
	}
	domain := strings.ToLower(s[at+1:])
	for _, d := range academicDomains {
		if domain == d || strings.HasSuffix(domain, "."+d) {
			return true
		}
	}
	return false
}
