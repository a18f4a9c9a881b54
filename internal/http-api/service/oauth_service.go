package service

import (
	"context"
	"encoding/json"
	"errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gorm.io/gorm"

	"cursohub/internal/config"
	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/repository"
)

var ErrOAuthNotConfigured = errors.New("google oauth is not configured")

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleOAuthService runs the server side of the Google login flow and
// hands back a first-party access token for the SPA.
type GoogleOAuthService interface {
	Enabled() bool
	AuthCodeURL(state string) string
	HandleCallback(ctx context.Context, code string) (accessToken string, err error)
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type googleOAuthService struct {
	oauthConfig *oauth2.Config
	userRepo    repository.UserRepository
	authService AuthService
}

func NewGoogleOAuthService(cfg *config.Config, userRepo repository.UserRepository, authService AuthService) GoogleOAuthService {
	var oauthConfig *oauth2.Config
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		oauthConfig = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
	}
	return &googleOAuthService{
		oauthConfig: oauthConfig,
		userRepo:    userRepo,
		authService: authService,
	}
}

func (s *googleOAuthService) Enabled() bool {
	return s.oauthConfig != nil
}

func (s *googleOAuthService) AuthCodeURL(state string) string {
	if s.oauthConfig == nil {
		return ""
	}
	return s.oauthConfig.AuthCodeURL(state)
}

// HandleCallback exchanges the authorization code, reads the Google profile
// and upserts the matching user. Google accounts share payment state with
// local accounts through the email column.
func (s *googleOAuthService) HandleCallback(ctx context.Context, code string) (string, error) {
	if s.oauthConfig == nil {
		return "", ErrOAuthNotConfigured
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return "", err
	}

	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}

	user, err := s.upsertUser(&info)
	if err != nil {
		return "", err
	}

	accessToken, _, err := s.authService.IssueTokens(user)
	if err != nil {
		return "", err
	}
	return accessToken, nil
}

// upsertUser finds a user by Google ID, then by email, and creates one when
// neither matches. Profile fields are refreshed on every login; role and
// payment state are never touched here, those belong to admins and webhooks.
func (s *googleOAuthService) upsertUser(info *googleUserInfo) (*models.User, error) {
	if user, err := s.userRepo.FindByGoogleID(info.ID); err == nil {
		user.FullName = info.Name
		user.Picture = info.Picture
		if err := s.userRepo.Update(user); err != nil {
			return nil, err
		}
		return user, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// A local account with the same email gets the Google identity linked.
	if user, err := s.userRepo.FindByEmail(info.Email); err == nil {
		user.GoogleID = info.ID
		user.Picture = info.Picture
		if err := s.userRepo.Update(user); err != nil {
			return nil, err
		}
		return user, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		FullName: info.Name,
		Email:    info.Email,
		Role:     models.RoleStudent,
		Status:   models.StatusPendingPayment,
		Provider: models.ProviderGoogle,
		GoogleID: info.ID,
		Picture:  info.Picture,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
