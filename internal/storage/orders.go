package storage

import (
	"context"

	"eats-backend/internal/app/orders"
)

type OrderRepository struct {
	db *DB
}

func (d *DB) Orders() *OrderRepository { return &OrderRepository{db: d} }

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*orders.Order, error) {
	var m orderModel
	if err := r.db.gorm.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return m.toDomain()
}

func (r *OrderRepository) Create(ctx context.Context, o *orders.Order) error {
	m, err := orderFromDomain(o)
	if err != nil {
		return err
	}
	if err := r.db.gorm.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	o.ID = m.ID
	o.CreatedAt = m.CreatedAt
	return nil
}

func (r *OrderRepository) Save(ctx context.Context, o *orders.Order) error {
	m, err := orderFromDomain(o)
	if err != nil {
		return err
	}
	return r.db.gorm.WithContext(ctx).Save(m).Error
}

func (r *OrderRepository) list(ctx context.Context, status *orders.Status, where string, arg any) ([]*orders.Order, error) {
	q := r.db.gorm.WithContext(ctx).Where(where, arg)
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	var models []orderModel
	if err := q.Order("id DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*orders.Order, 0, len(models))
	for i := range models {
		o, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64, status *orders.Status) ([]*orders.Order, error) {
	return r.list(ctx, status, "customer_id = ?", customerID)
}

func (r *OrderRepository) ListByDriver(ctx context.Context, driverID int64, status *orders.Status) ([]*orders.Order, error) {
	return r.list(ctx, status, "driver_id = ?", driverID)
}

func (r *OrderRepository) ListByRestaurantOwner(ctx context.Context, ownerID int64, status *orders.Status) ([]*orders.Order, error) {
	return r.list(ctx, status, "restaurant_owner_id = ?", ownerID)
}
