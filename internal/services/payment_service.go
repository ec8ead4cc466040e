package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/arscholarpoint/scholarpoint-server/internal/config"
	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidAmount = errors.New("price must be greater than zero")

type PaymentService struct {
	db       *gorm.DB
	gateway  *PaymentGateway
	currency string
}

func NewPaymentService(db *gorm.DB, gateway *PaymentGateway, cfg *config.Config) *PaymentService {
	return &PaymentService{db: db, gateway: gateway, currency: cfg.PaymentCurrency}
}

// CreateIntent converts the major-unit price to minor units (50 -> 5000) and
// asks the processor for a charge intent. Single synchronous call: the
// request context is the only timeout/cancellation in play.
func (s *PaymentService) CreateIntent(ctx context.Context, req *dto.PaymentIntentRequest) (*ChargeIntent, error) {
	if req.Price <= 0 {
		return nil, ErrInvalidAmount
	}
	amountMinor := int64(math.Round(req.Price * 100))
	return s.gateway.CreateIntent(ctx, amountMinor, s.currency)
}

// Record stores a completed charge for the verified caller. The owning email
// always comes from the session, never from the payload.
func (s *PaymentService) Record(email string, req *dto.PaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	currency := req.Currency
	if currency == "" {
		currency = s.currency
	}

	payment := models.Payment{
		ID:       uuid.New(),
		Email:    email,
		Amount:   req.Amount,
		Currency: currency,
		IntentID: req.IntentID,
	}
	if req.ScholarshipID != "" {
		if id, err := uuid.Parse(req.ScholarshipID); err == nil {
			payment.ScholarshipID = id
		}
	}

	if err := s.db.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return &payment, nil
}

func (s *PaymentService) ListByEmail(email string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Where("email = ?", email).Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
