package repository

import (
	"time"

	"gorm.io/gorm"

	"adyenbridge/internal/models"
	"adyenbridge/internal/pay"
)

// PaymentRepository handles payment database operations.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create stores a new payment.
func (r *PaymentRepository) Create(payment *pay.Payment) error {
	var model models.Payment
	if err := model.FromDomain(payment); err != nil {
		return err
	}
	return r.db.Create(&model).Error
}

// FindByID returns a payment by its ID.
func (r *PaymentRepository) FindByID(id string) (*pay.Payment, error) {
	var model models.Payment
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain()
}

// Save persists the mutable fields of a payment after gateway processing.
func (r *PaymentRepository) Save(payment *pay.Payment) error {
	var model models.Payment
	if err := model.FromDomain(payment); err != nil {
		return err
	}

	return r.db.Model(&models.Payment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"transaction_id": model.TransactionID,
			"action_url":     model.ActionURL,
			"status":         model.Status,
			"metadata":       model.Metadata,
		}).Error
}

// FindOpenBefore returns non-terminal payments created before the cutoff,
// used by the scheduled expiry job.
func (r *PaymentRepository) FindOpenBefore(cutoff time.Time, limit int) ([]*pay.Payment, error) {
	var records []models.Payment

	err := r.db.
		Where("status IN ? AND created_at < ?", []string{string(pay.StatusOpen), ""}, cutoff).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*pay.Payment, 0, len(records))
	for i := range records {
		payment, err := records[i].ToDomain()
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}
