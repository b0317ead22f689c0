package service

import (
	"time"

	"github.com/contest-hub/backend/internal/journal"
	"github.com/contest-hub/backend/internal/models"
	"github.com/contest-hub/backend/internal/payments"
	"github.com/contest-hub/backend/internal/repository"
	"github.com/contest-hub/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	contestRepo *repository.ContestRepository
	gateway     payments.Gateway
	journal     *journal.Journal
}

// NewPaymentService builds the payment service. journal may be nil; the
// audit trail is then skipped.
func NewPaymentService(
	paymentRepo *repository.PaymentRepository,
	contestRepo *repository.ContestRepository,
	gateway payments.Gateway,
	paymentJournal *journal.Journal,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		contestRepo: contestRepo,
		gateway:     gateway,
		journal:     paymentJournal,
	}
}

// Record appends a payment. The database row is the source of truth; the
// file journal is an audit supplement, so a journal write failure is
// logged but does not fail the request. When the payment references a
// contest, its participation counter is bumped.
func (s *PaymentService) Record(payment *models.Payment) (*models.Payment, error) {
	payment.ID = uuid.New()

	if err := s.paymentRepo.CreatePayment(payment); err != nil {
		logger.Log.Error("Failed to record payment",
			zap.String("email", payment.Email),
			zap.Error(err),
		)
		return nil, err
	}

	if s.journal != nil {
		entry := journal.Entry{
			PaymentID:     payment.ID.String(),
			Email:         payment.Email,
			Amount:        payment.Amount,
			Currency:      payment.Currency,
			ContestID:     payment.ContestID,
			TransactionID: payment.TransactionID,
			Timestamp:     time.Now(),
		}
		if err := s.journal.Append(entry); err != nil {
			logger.Log.Warn("Payment journal append failed",
				zap.String("payment_id", payment.ID.String()),
				zap.Error(err),
			)
		}
	}

	if contestID, err := uuid.Parse(payment.ContestID); err == nil {
		if err := s.contestRepo.IncrementParticipants(contestID); err != nil {
			logger.Log.Warn("Failed to bump participant count",
				zap.String("contest_id", payment.ContestID),
				zap.Error(err),
			)
		}
	}

	logger.Log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("email", payment.Email),
		zap.Float64("amount", payment.Amount),
	)

	return payment, nil
}

func (s *PaymentService) ListAll() ([]models.Payment, error) {
	return s.paymentRepo.GetAllPayments()
}

func (s *PaymentService) ListByEmail(email string) ([]models.Payment, error) {
	return s.paymentRepo.GetPaymentsByEmail(email)
}

// CreateIntent asks the payment gateway for a payment intent and returns
// its client secret verbatim.
func (s *PaymentService) CreateIntent(amount float64, currency string) (string, error) {
	secret, err := s.gateway.CreateIntent(amount, currency)
	if err != nil {
		logger.Log.Error("Payment intent creation failed",
			zap.Float64("amount", amount),
			zap.String("currency", currency),
			zap.Error(err),
		)
		return "", err
	}
	return secret, nil
}
