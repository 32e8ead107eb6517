package auth

import (
	"context"
	"regexp"
	"strings"

	"github.com/kbukum/travelpay/internal/model"
)

// emailPattern is a shape check, not RFC validation: something before an
// @, something after, and a dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const citizenIDLength = 13

// resolveRule pairs a shape predicate with the lookup it selects. The
// first rule whose predicate matches claims the identifier; later rules
// never see it.
type resolveRule struct {
	attr   Attribute
	match  func(s string) bool
	lookup func(ctx context.Context, value string) (*model.User, error)
}

// Resolver classifies a raw login identifier by shape and looks the user
// up under the matching attribute. Classification is ordered: email shape
// first, then 13-digit citizen id, then all-digit phone number, with
// username as the catch-all. Only the attributes enabled for the
// deployment take part.
type Resolver struct {
	rules []resolveRule
}

// NewResolver builds a resolver over the enabled attributes.
func NewResolver(users UserStore, enabled []Attribute) *Resolver {
	active := make(map[Attribute]bool, len(enabled))
	for _, attr := range enabled {
		active[attr] = true
	}

	all := []resolveRule{
		{
			attr:   AttrEmail,
			match:  emailPattern.MatchString,
			lookup: users.ByEmail,
		},
		{
			attr:   AttrCitizenID,
			match:  func(s string) bool { return len(s) == citizenIDLength && allDigits(s) },
			lookup: users.ByCitizenID,
		},
		{
			attr:   AttrPhoneNumber,
			match:  allDigits,
			lookup: users.ByPhoneNumber,
		},
		{
			attr:   AttrUsername,
			match:  func(s string) bool { return true },
			lookup: users.ByUsername,
		},
	}

	r := &Resolver{}
	for _, rule := range all {
		if active[rule.attr] {
			r.rules = append(r.rules, rule)
		}
	}
	return r
}

// Resolve normalizes the identifier and returns the user it denotes, or
// (nil, nil) when no user matches. A shape match is final: a 13-digit
// string with no citizen id on file does not fall through to phone number.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (*model.User, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" {
		return nil, nil
	}
	for _, rule := range r.rules {
		if rule.match(identifier) {
			return rule.lookup(ctx, identifier)
		}
	}
	return nil, nil
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
