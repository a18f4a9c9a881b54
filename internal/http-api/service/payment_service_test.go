package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"cursohub/internal/config"
	"cursohub/internal/http-api/models"
)

// MockCheckoutRepository mocks the CheckoutRepository interface
type MockCheckoutRepository struct {
	mock.Mock
}

func (m *MockCheckoutRepository) Create(ctx context.Context, session *models.CheckoutSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockCheckoutRepository) FindByID(ctx context.Context, id string) (*models.CheckoutSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutSession), args.Error(1)
}

func (m *MockCheckoutRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func paymentConfig(providerURL string) *config.Config {
	return &config.Config{
		PaymentProviderURL: providerURL,
		PaymentSecretKey:   "sk_test_123",
		CoursePriceCents:   1799,
		CourseCurrency:     "eur",
		FrontendURL:        "http://localhost:5173",
	}
}

func TestCreateCheckout_Success(t *testing.T) {
	var received providerCheckoutRequest
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"checkout_url": "https://pay.example.com/s/abc"})
	}))
	defer provider.Close()

	mockCheckoutRepo := new(MockCheckoutRepository)
	mockUserRepo := new(MockUserRepository)
	paymentService := NewPaymentService(mockCheckoutRepo, mockUserRepo, paymentConfig(provider.URL))

	mockCheckoutRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.CheckoutSession")).Return(nil)

	user := &models.User{Email: "ana@example.com"}
	session, err := paymentService.CreateCheckout(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/s/abc", session.ProviderURL)
	assert.Equal(t, models.CheckoutPending, session.Status)
	assert.Equal(t, int64(1799), session.AmountCents)

	assert.Equal(t, "ana@example.com", received.CustomerEmail)
	assert.Equal(t, "eur", received.Currency)
	assert.Contains(t, received.SuccessURL, "/pago-exitoso?payment_id="+session.ID)
	assert.Equal(t, "http://localhost:5173/pago", received.CancelURL)
	mockCheckoutRepo.AssertExpectations(t)
}

func TestCreateCheckout_ProviderDown(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer provider.Close()

	mockCheckoutRepo := new(MockCheckoutRepository)
	mockUserRepo := new(MockUserRepository)
	paymentService := NewPaymentService(mockCheckoutRepo, mockUserRepo, paymentConfig(provider.URL))

	_, err := paymentService.CreateCheckout(context.Background(), &models.User{Email: "ana@example.com"})

	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestCreateCheckout_NotConfigured(t *testing.T) {
	mockCheckoutRepo := new(MockCheckoutRepository)
	mockUserRepo := new(MockUserRepository)
	paymentService := NewPaymentService(mockCheckoutRepo, mockUserRepo, paymentConfig(""))

	_, err := paymentService.CreateCheckout(context.Background(), &models.User{Email: "ana@example.com"})

	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestStatus_Success(t *testing.T) {
	mockCheckoutRepo := new(MockCheckoutRepository)
	mockUserRepo := new(MockUserRepository)
	paymentService := NewPaymentService(mockCheckoutRepo, mockUserRepo, paymentConfig(""))

	session := &models.CheckoutSession{ID: "ref-1", Status: models.CheckoutPending}
	mockCheckoutRepo.On("FindByID", mock.Anything, "ref-1").Return(session, nil)

	status, err := paymentService.Status(context.Background(), "ref-1")

	assert.NoError(t, err)
	assert.Equal(t, models.CheckoutPending, status)
}

func TestStatus_NotFound(t *testing.T) {
	mockCheckoutRepo := new(MockCheckoutRepository)
	mockUserRepo := new(MockUserRepository)
	paymentService := NewPaymentService(mockCheckoutRepo, mockUserRepo, paymentConfig(""))

	mockCheckoutRepo.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := paymentService.Status(context.Background(), "missing")

	assert.Equal(t, ErrSessionNotFound, err)
}

func TestHandleWebhook_PaidActivatesUser(t *testing.T) {
	mockCheckoutRepo := new(MockCheckoutRepository)
	mockUserRepo := new(MockUserRepository)
	paymentService := NewPaymentService(mockCheckoutRepo, mockUserRepo, paymentConfig(""))

	session := &models.CheckoutSession{ID: "ref-1", UserEmail: "ana@example.com", Status: models.CheckoutPending}
	mockCheckoutRepo.On("FindByID", mock.Anything, "ref-1").Return(session, nil)
	mockCheckoutRepo.On("UpdateStatus", mock.Anything, "ref-1", models.CheckoutPaid).Return(nil)
	mockUserRepo.On("MarkPaid", "ana@example.com").Return(nil)

	err := paymentService.HandleWebhook(context.Background(), "ref-1", models.CheckoutPaid)

	assert.NoError(t, err)
	mockCheckoutRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestHandleWebhook_FailureDoesNotActivate(t *testing.T) {
	mockCheckoutRepo := new(MockCheckoutRepository)
	mockUserRepo := new(MockUserRepository)
	paymentService := NewPaymentService(mockCheckoutRepo, mockUserRepo, paymentConfig(""))

	session := &models.CheckoutSession{ID: "ref-1", UserEmail: "ana@example.com", Status: models.CheckoutPending}
	mockCheckoutRepo.On("FindByID", mock.Anything, "ref-1").Return(session, nil)
	mockCheckoutRepo.On("UpdateStatus", mock.Anything, "ref-1", models.CheckoutFailed).Return(nil)

	err := paymentService.HandleWebhook(context.Background(), "ref-1", "failed")

	assert.NoError(t, err)
	mockUserRepo.AssertNotCalled(t, "MarkPaid", mock.Anything)
	mockCheckoutRepo.AssertExpectations(t)
}
