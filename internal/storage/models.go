package storage

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"eats-backend/internal/app/orders"
	"eats-backend/internal/app/payments"
	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
)

type userModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(16);not null"`
	Verified     bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

func (m *userModel) toDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         auth.Role(m.Role),
		Verified:     m.Verified,
		CreatedAt:    m.CreatedAt,
	}
}

func userFromDomain(u *users.User) *userModel {
	return &userModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Verified:     u.Verified,
	}
}

type verificationModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Code      string `gorm:"uniqueIndex;not null"`
	UserID    int64  `gorm:"index;not null"`
	CreatedAt time.Time
}

func (verificationModel) TableName() string { return "verifications" }

type categoryModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"uniqueIndex;not null"`
	Slug       string `gorm:"uniqueIndex;not null"`
	CoverImage string
}

func (categoryModel) TableName() string { return "categories" }

func (m *categoryModel) toDomain() *restaurants.Category {
	return &restaurants.Category{
		ID:         m.ID,
		Name:       m.Name,
		Slug:       m.Slug,
		CoverImage: m.CoverImage,
	}
}

type restaurantModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID       int64  `gorm:"index;not null"`
	Name          string `gorm:"index;not null"`
	CoverImage    string
	Address       string
	CategoryID    int64 `gorm:"index;not null"`
	IsPromoted    bool  `gorm:"index;not null;default:false"`
	PromotedUntil *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (restaurantModel) TableName() string { return "restaurants" }

func (m *restaurantModel) toDomain() *restaurants.Restaurant {
	return &restaurants.Restaurant{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Name:          m.Name,
		CoverImage:    m.CoverImage,
		Address:       m.Address,
		CategoryID:    m.CategoryID,
		IsPromoted:    m.IsPromoted,
		PromotedUntil: m.PromotedUntil,
		CreatedAt:     m.CreatedAt,
	}
}

func restaurantFromDomain(r *restaurants.Restaurant) *restaurantModel {
	return &restaurantModel{
		ID:            r.ID,
		OwnerID:       r.OwnerID,
		Name:          r.Name,
		CoverImage:    r.CoverImage,
		Address:       r.Address,
		CategoryID:    r.CategoryID,
		IsPromoted:    r.IsPromoted,
		PromotedUntil: r.PromotedUntil,
	}
}

type dishModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64  `gorm:"index;not null"`
	Name         string `gorm:"not null"`
	Price        float64
	Photo        string
	Description  string
	Options      datatypes.JSON
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (dishModel) TableName() string { return "dishes" }

func (m *dishModel) toDomain() (*restaurants.Dish, error) {
	var options []restaurants.DishOption
	if len(m.Options) > 0 {
		if err := json.Unmarshal(m.Options, &options); err != nil {
			return nil, err
		}
	}
	return &restaurants.Dish{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Price:        m.Price,
		Photo:        m.Photo,
		Description:  m.Description,
		Options:      options,
	}, nil
}

func dishFromDomain(d *restaurants.Dish) (*dishModel, error) {
	options, err := json.Marshal(d.Options)
	if err != nil {
		return nil, err
	}
	return &dishModel{
		ID:           d.ID,
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		Price:        d.Price,
		Photo:        d.Photo,
		Description:  d.Description,
		Options:      options,
	}, nil
}

type orderModel struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID        int64  `gorm:"index;not null"`
	RestaurantID      int64  `gorm:"index;not null"`
	RestaurantOwnerID int64  `gorm:"index;not null"`
	DriverID          *int64 `gorm:"index"`
	Status            string `gorm:"type:varchar(16);index;not null"`
	Total             float64
	Items             datatypes.JSON
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (orderModel) TableName() string { return "orders" }

func (m *orderModel) toDomain() (*orders.Order, error) {
	var items []orders.Item
	if len(m.Items) > 0 {
		if err := json.Unmarshal(m.Items, &items); err != nil {
			return nil, err
		}
	}
	return &orders.Order{
		ID:                m.ID,
		CustomerID:        m.CustomerID,
		RestaurantID:      m.RestaurantID,
		RestaurantOwnerID: m.RestaurantOwnerID,
		DriverID:          m.DriverID,
		Status:            orders.Status(m.Status),
		Total:             m.Total,
		Items:             items,
		CreatedAt:         m.CreatedAt,
	}, nil
}

func orderFromDomain(o *orders.Order) (*orderModel, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}
	return &orderModel{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		RestaurantID:      o.RestaurantID,
		RestaurantOwnerID: o.RestaurantOwnerID,
		DriverID:          o.DriverID,
		Status:            string(o.Status),
		Total:             o.Total,
		Items:             items,
	}, nil
}

type paymentModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	TransactionID string `gorm:"not null"`
	UserID        int64  `gorm:"index;not null"`
	RestaurantID  int64  `gorm:"index;not null"`
	CreatedAt     time.Time
}

func (paymentModel) TableName() string { return "payments" }

func (m *paymentModel) toDomain() *payments.Payment {
	return &payments.Payment{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		RestaurantID:  m.RestaurantID,
		CreatedAt:     m.CreatedAt,
	}
}
