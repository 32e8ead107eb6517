// Package auth implements the authentication core: credential hashing,
// token issuance and decoding, identifier resolution, and the
// register/login/authorize flows built on top of them.
package auth

import (
	"context"

	"github.com/kbukum/travelpay/internal/model"
)

// Attribute names an identifying attribute a user can present at login.
// Which attributes a deployment supports is configuration, not code.
type Attribute string

const (
	AttrUsername    Attribute = "username"
	AttrEmail       Attribute = "email"
	AttrPhoneNumber Attribute = "phone_number"
	AttrCitizenID   Attribute = "citizen_id"
)

// attrLabels are the human-readable names used in the login failure detail.
var attrLabels = map[Attribute]string{
	AttrUsername:    "username",
	AttrEmail:       "email",
	AttrPhoneNumber: "phone number",
	AttrCitizenID:   "citizen id",
}

// conflictMessages are the registration conflict details, one per attribute.
var conflictMessages = map[Attribute]string{
	AttrUsername:    "Username already taken",
	AttrEmail:       "Email already registered",
	AttrPhoneNumber: "Phone number already registered",
	AttrCitizenID:   "Citizen id already registered",
}

// Attributes converts configured attribute names into Attribute values,
// preserving order. Unknown names are dropped (config validation rejects
// them before this point).
func Attributes(names []string) []Attribute {
	attrs := make([]Attribute, 0, len(names))
	for _, name := range names {
		attr := Attribute(name)
		if _, ok := attrLabels[attr]; ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// UserStore is the persistence collaborator the auth core depends on.
// Lookups return (nil, nil) when no user matches.
type UserStore interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
	ByUsername(ctx context.Context, username string) (*model.User, error)
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByPhoneNumber(ctx context.Context, phone string) (*model.User, error)
	ByCitizenID(ctx context.Context, citizenID string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}
