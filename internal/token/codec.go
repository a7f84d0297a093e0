package token

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a bearer token.
//
// The codec reads the payload segment only. Signatures are NOT verified here;
// decoded claims drive routing and display convenience, never authorization.
// The services behind the gateway enforce the real boundary on every call.
type Claims struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture"`
	OrgID          string `json:"org_id,omitempty"`
}

// Decode extracts the claims payload from a three-segment bearer token.
//
// Returns nil on any malformed input: wrong segment count, invalid base64url,
// invalid JSON. Callers cannot distinguish a malformed token from an absent
// one, which is intentional.
func Decode(raw string) *Claims {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil
	}

	payload, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(parts[1])
	if err != nil {
		return nil
	}

	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil
	}

	return &Claims{
		ID:             stringField(fields, "id"),
		Username:       stringField(fields, "username"),
		Role:           stringField(fields, "role"),
		Email:          stringField(fields, "email"),
		ProfilePicture: stringField(fields, "profile_picture"),
		OrgID:          stringField(fields, "org_id"),
	}
}

// stringField normalizes claim values: issuers encode ids as JSON numbers or
// strings depending on their stack.
func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
