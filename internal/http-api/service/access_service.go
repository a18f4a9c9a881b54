package service

import (
	"strings"

	"cursohub/internal/http-api/models"
)

// Decision is the access gate verdict for one page load.
type Decision string

const (
	DecisionAllow             Decision = "allow"
	DecisionRedirectToLogin   Decision = "redirect_to_login"
	DecisionRedirectToPayment Decision = "redirect_to_payment"
)

// Frontend route prefixes behind the paywall.
var protectedPrefixes = []string{"/curso", "/descargas", "/dashboard"}

// AccessService decides whether the current principal may view protected
// content. Stateless: every call re-reads the user record it is given, so a
// payment landing between two navigations takes effect immediately.
type AccessService interface {
	Evaluate(user *models.User, path string) Decision
	EvaluateUser(user *models.User) Decision
}

type accessService struct{}

func NewAccessService() AccessService {
	return &accessService{}
}

// Evaluate gates a frontend path. Unprotected paths are always allowed,
// even anonymously (the landing and payment pages must stay reachable).
func (s *accessService) Evaluate(user *models.User, path string) Decision {
	if !isProtected(path) {
		return DecisionAllow
	}
	return s.EvaluateUser(user)
}

// EvaluateUser gates protected content on the user record alone. A nil user
// stands for "no valid session", which covers expired tokens and failed
// user lookups alike.
func (s *accessService) EvaluateUser(user *models.User) Decision {
	if user == nil {
		return DecisionRedirectToLogin
	}
	if user.Role == models.RoleAdmin {
		return DecisionAllow
	}
	if user.IsPaid || user.Status == models.StatusActive {
		return DecisionAllow
	}
	return DecisionRedirectToPayment
}

func isProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
