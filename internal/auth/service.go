package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/kbukum/travelpay/internal/apperrors"
	"github.com/kbukum/travelpay/internal/logger"
	"github.com/kbukum/travelpay/internal/model"
	"github.com/kbukum/travelpay/internal/store"
)

// Registration carries the normalized input of a registration request.
// Identifying attributes are optional; the handler guarantees at least one
// is present.
type Registration struct {
	Username    string
	Email       string
	PhoneNumber string
	CitizenID   string
	Password    string
	FirstName   string
	LastName    string
}

func (r *Registration) value(attr Attribute) string {
	switch attr {
	case AttrUsername:
		return r.Username
	case AttrEmail:
		return r.Email
	case AttrPhoneNumber:
		return r.PhoneNumber
	case AttrCitizenID:
		return r.CitizenID
	}
	return ""
}

// Service implements registration, login, and request authorization.
type Service struct {
	users    UserStore
	hasher   *Hasher
	tokens   *TokenCodec
	resolver *Resolver
	attrs    []Attribute
	log      *logger.Logger

	// loginDetail is the single generic message for every login failure.
	loginDetail string
	// dummyHash is verified when the identifier resolves to nobody, so an
	// unknown identifier costs the same as a wrong password.
	dummyHash string
}

// NewService wires the auth core. The attribute order is the declared
// deployment order; conflict checks follow it.
func NewService(users UserStore, hasher *Hasher, tokens *TokenCodec, attrs []Attribute, log *logger.Logger) *Service {
	dummyHash, err := hasher.Hash("travelpay-timing-pad")
	if err != nil {
		dummyHash = ""
	}
	return &Service{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		resolver:    NewResolver(users, attrs),
		attrs:       attrs,
		log:         log.WithComponent("auth"),
		loginDetail: loginFailureDetail(attrs),
		dummyHash:   dummyHash,
	}
}

// loginFailureDetail builds the generic 401 detail from the enabled
// attributes, e.g. "Incorrect username, email, phone number, or password".
func loginFailureDetail(attrs []Attribute) string {
	labels := make([]string, 0, len(attrs)+1)
	for _, attr := range attrs {
		labels = append(labels, attrLabels[attr])
	}
	labels = append(labels, "or password")
	return "Incorrect " + strings.Join(labels, ", ")
}

// Register creates a new account. Identifying attributes are checked for
// conflicts in declared order before the insert; a duplicate surfacing
// from the insert itself (a concurrent registration) is translated back
// into the same per-attribute conflict.
func (s *Service) Register(ctx context.Context, reg Registration) (*model.User, error) {
	reg.Username = strings.ToLower(strings.TrimSpace(reg.Username))
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	reg.PhoneNumber = strings.TrimSpace(reg.PhoneNumber)
	reg.CitizenID = strings.TrimSpace(reg.CitizenID)

	if conflict, err := s.findConflict(ctx, &reg); err != nil {
		return nil, apperrors.DatabaseError(err)
	} else if conflict != nil {
		return nil, conflict
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &model.User{
		Username:     optional(reg.Username),
		Email:        optional(reg.Email),
		PhoneNumber:  optional(reg.PhoneNumber),
		CitizenID:    optional(reg.CitizenID),
		PasswordHash: hash,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			// Lost a race with a concurrent registration. Re-scan to name
			// the colliding attribute.
			if conflict, scanErr := s.findConflict(ctx, &reg); scanErr == nil && conflict != nil {
				return nil, conflict
			}
			return nil, apperrors.Conflict("Registration conflicts with an existing account", "")
		}
		return nil, apperrors.DatabaseError(err)
	}

	created, err := s.users.ByID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if created == nil {
		s.log.Error("registered user missing on re-read", logger.Fields("user_id", user.ID))
		return nil, apperrors.Internal(errors.New("registered user not found"))
	}
	return created, nil
}

// findConflict scans the identifying attributes in declared order and
// returns the conflict for the first one already on file.
func (s *Service) findConflict(ctx context.Context, reg *Registration) (*apperrors.AppError, error) {
	for _, attr := range s.attrs {
		value := reg.value(attr)
		if value == "" {
			continue
		}
		existing, err := s.lookup(ctx, attr, value)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return apperrors.Conflict(conflictMessages[attr], string(attr)), nil
		}
	}
	return nil, nil
}

func (s *Service) lookup(ctx context.Context, attr Attribute, value string) (*model.User, error) {
	switch attr {
	case AttrUsername:
		return s.users.ByUsername(ctx, value)
	case AttrEmail:
		return s.users.ByEmail(ctx, value)
	case AttrPhoneNumber:
		return s.users.ByPhoneNumber(ctx, value)
	case AttrCitizenID:
		return s.users.ByCitizenID(ctx, value)
	}
	return nil, nil
}

// Login resolves the identifier, verifies the password, and issues an
// access token. Every failure mode returns the same generic message; a
// resolver miss still burns one hash verification so response timing does
// not reveal whether the account exists.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, error) {
	user, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return "", apperrors.DatabaseError(err)
	}
	if user == nil {
		s.hasher.Verify(password, s.dummyHash)
		return "", apperrors.Unauthorized(s.loginDetail)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperrors.Unauthorized(s.loginDetail)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return token, nil
}

// Authorize decodes a bearer token and loads its subject. Every token
// problem collapses to the same 401; account state beyond existence is
// not consulted here.
func (s *Service) Authorize(ctx context.Context, token string) (*model.User, error) {
	id, err := s.tokens.Decode(token)
	if err != nil {
		return nil, apperrors.InvalidToken("Could not validate credentials")
	}
	user, err := s.users.ByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if user == nil {
		return nil, apperrors.InvalidToken("Could not validate credentials")
	}
	return user, nil
}

// optional maps the empty string to a NULL column.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
