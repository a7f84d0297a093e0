package session

import (
	"strings"

	"resource-portal/internal/token"
)

// fallbackAvatar is shown when no display name is known.
const fallbackAvatar = "GU"

// Identity is the resolved portal user shown in navigation chrome and used
// for route decisions. Role is "" (never absent) when no valid token exists.
type Identity struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Avatar         string `json:"avatar"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}

// GuestIdentity is the default identity before login and after invalidation.
func GuestIdentity() Identity {
	return Identity{
		Name:   "Guest",
		Role:   "",
		Avatar: fallbackAvatar,
	}
}

// avatarFor derives the avatar glyph: upper-cased first rune of the name,
// or the fixed fallback pair when no name is known.
func avatarFor(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallbackAvatar
	}
	return strings.ToUpper(string([]rune(name)[0]))
}

// identityFromClaims replaces the identity wholesale from decoded claims.
func identityFromClaims(c *token.Claims) Identity {
	return Identity{
		Name:           c.Username,
		Role:           c.Role,
		Avatar:         avatarFor(c.Username),
		Email:          c.Email,
		ProfilePicture: c.ProfilePicture,
	}
}
