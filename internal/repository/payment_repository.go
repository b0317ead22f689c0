package repository

import (
	"github.com/contest-hub/backend/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) CreatePayment(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepository) GetAllPayments() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) GetPaymentsByEmail(email string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("email = ?", email).Order("created_at DESC").Find(&payments).Error
	return payments, err
}
