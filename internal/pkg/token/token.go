package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"consigne-admin/internal/core/domain"
)

// ErrMalformed is returned when a stored blob cannot be decoded. Callers
// treat it as a silent logout, not a user-facing failure.
var ErrMalformed = errors.New("malformed identity token")

// Identity is the decoded session identity. It mirrors the loginAdmin
// response and is a display/role convenience, not a security mechanism.
type Identity struct {
	ID       uint        `json:"id"`
	Mail     string      `json:"mail"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// Encode serializes an identity to its opaque base64 JSON form
func Encode(id Identity) (string, error) {
	raw, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode parses an opaque blob back into an identity
func Decode(blob string) (Identity, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return Identity{}, ErrMalformed
	}

	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return Identity{}, ErrMalformed
	}
	return id, nil
}
