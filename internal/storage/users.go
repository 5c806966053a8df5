package storage

import (
	"context"

	"eats-backend/internal/app/users"
)

type UserRepository struct {
	db *DB
}

func (d *DB) Users() *UserRepository { return &UserRepository{db: d} }

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*users.User, error) {
	var m userModel
	if err := r.db.gorm.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	var m userModel
	if err := r.db.gorm.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) Create(ctx context.Context, u *users.User) error {
	m := userFromDomain(u)
	if err := r.db.gorm.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	u.ID = m.ID
	u.CreatedAt = m.CreatedAt
	return nil
}

func (r *UserRepository) Save(ctx context.Context, u *users.User) error {
	return r.db.gorm.WithContext(ctx).Save(userFromDomain(u)).Error
}

type VerificationRepository struct {
	db *DB
}

func (d *DB) Verifications() *VerificationRepository { return &VerificationRepository{db: d} }

func (r *VerificationRepository) Create(ctx context.Context, v *users.Verification) error {
	m := &verificationModel{Code: v.Code, UserID: v.UserID}
	if err := r.db.gorm.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	v.ID = m.ID
	return nil
}

func (r *VerificationRepository) FindByCode(ctx context.Context, code string) (*users.Verification, error) {
	var m verificationModel
	if err := r.db.gorm.WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &users.Verification{ID: m.ID, Code: m.Code, UserID: m.UserID}, nil
}

func (r *VerificationRepository) DeleteByUser(ctx context.Context, userID int64) error {
	return r.db.gorm.WithContext(ctx).Where("user_id = ?", userID).Delete(&verificationModel{}).Error
}

func (r *VerificationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.gorm.WithContext(ctx).Delete(&verificationModel{}, id).Error
}
