package storage

import (
	"context"

	"eats-backend/internal/app/payments"
)

type PaymentRepository struct {
	db *DB
}

func (d *DB) Payments() *PaymentRepository { return &PaymentRepository{db: d} }

func (r *PaymentRepository) Create(ctx context.Context, p *payments.Payment) error {
	m := &paymentModel{
		TransactionID: p.TransactionID,
		UserID:        p.UserID,
		RestaurantID:  p.RestaurantID,
	}
	if err := r.db.gorm.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	return nil
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID int64) ([]*payments.Payment, error) {
	var models []paymentModel
	err := r.db.gorm.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	list := make([]*payments.Payment, 0, len(models))
	for i := range models {
		list = append(list, models[i].toDomain())
	}
	return list, nil
}
