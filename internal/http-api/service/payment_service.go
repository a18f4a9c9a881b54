package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"cursohub/internal/config"
	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/repository"
)

var (
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	ErrSessionNotFound     = errors.New("checkout session not found")
)

// PaymentService creates checkout sessions against the external provider
// and applies the paid state back onto the user account.
type PaymentService interface {
	CreateCheckout(ctx context.Context, user *models.User) (*models.CheckoutSession, error)
	Status(ctx context.Context, reference string) (string, error)
	HandleWebhook(ctx context.Context, reference, status string) error
}

// providerCheckoutRequest is the contract sent to the provider's
// session-creation endpoint.
type providerCheckoutRequest struct {
	Reference     string `json:"reference"`
	AmountCents   int64  `json:"amount_cents"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
}

type providerCheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

type paymentService struct {
	checkoutRepo repository.CheckoutRepository
	userRepo     repository.UserRepository
	httpClient   *http.Client
	providerURL  string
	secretKey    string
	priceCents   int64
	currency     string
	frontendURL  string
}

func NewPaymentService(checkoutRepo repository.CheckoutRepository, userRepo repository.UserRepository, cfg *config.Config) PaymentService {
	return &paymentService{
		checkoutRepo: checkoutRepo,
		userRepo:     userRepo,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		providerURL: cfg.PaymentProviderURL,
		secretKey:   cfg.PaymentSecretKey,
		priceCents:  cfg.CoursePriceCents,
		currency:    cfg.CourseCurrency,
		frontendURL: cfg.FrontendURL,
	}
}

// CreateCheckout opens a session at the provider and stores it as pending.
// The caller is redirected to the provider URL; the webhook or a status
// poll closes the loop.
func (s *paymentService) CreateCheckout(ctx context.Context, user *models.User) (*models.CheckoutSession, error) {
	session := &models.CheckoutSession{
		ID:          uuid.New().String(),
		UserEmail:   user.Email,
		AmountCents: s.priceCents,
		Currency:    s.currency,
		Status:      models.CheckoutPending,
	}

	checkoutURL, err := s.createProviderSession(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ProviderURL = checkoutURL

	if err := s.checkoutRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *paymentService) createProviderSession(ctx context.Context, session *models.CheckoutSession) (string, error) {
	if s.providerURL == "" {
		return "", ErrProviderUnavailable
	}

	payload := providerCheckoutRequest{
		Reference:     session.ID,
		AmountCents:   session.AmountCents,
		Currency:      session.Currency,
		CustomerEmail: session.UserEmail,
		SuccessURL:    s.frontendURL + "/pago-exitoso?payment_id=" + session.ID,
		CancelURL:     s.frontendURL + "/pago",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.providerURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: provider returned %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var parsed providerCheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if parsed.CheckoutURL == "" {
		return "", fmt.Errorf("%w: empty checkout url", ErrProviderUnavailable)
	}
	return parsed.CheckoutURL, nil
}

func (s *paymentService) Status(ctx context.Context, reference string) (string, error) {
	session, err := s.checkoutRepo.FindByID(ctx, reference)
	if err != nil {
		return "", ErrSessionNotFound
	}
	return session.Status, nil
}

// HandleWebhook applies the provider's verdict. A paid session activates the
// account: is_paid and status flip together so the gate never sees half of it.
func (s *paymentService) HandleWebhook(ctx context.Context, reference, status string) error {
	session, err := s.checkoutRepo.FindByID(ctx, reference)
	if err != nil {
		return ErrSessionNotFound
	}

	if status != models.CheckoutPaid {
		return s.checkoutRepo.UpdateStatus(ctx, session.ID, models.CheckoutFailed)
	}

	if err := s.checkoutRepo.UpdateStatus(ctx, session.ID, models.CheckoutPaid); err != nil {
		return err
	}
	return s.userRepo.MarkPaid(session.UserEmail)
}
