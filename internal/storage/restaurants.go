package storage

import (
	"context"
	"strings"
	"time"

	"eats-backend/internal/app/restaurants"
)

const restaurantPageSize = 15

type RestaurantRepository struct {
	db *DB
}

func (d *DB) Restaurants() *RestaurantRepository { return &RestaurantRepository{db: d} }

func (r *RestaurantRepository) FindByID(ctx context.Context, id int64) (*restaurants.Restaurant, error) {
	var m restaurantModel
	if err := r.db.gorm.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return m.toDomain(), nil
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *restaurants.Restaurant) error {
	m := restaurantFromDomain(restaurant)
	if err := r.db.gorm.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	restaurant.ID = m.ID
	restaurant.CreatedAt = m.CreatedAt
	return nil
}

func (r *RestaurantRepository) Save(ctx context.Context, restaurant *restaurants.Restaurant) error {
	return r.db.gorm.WithContext(ctx).Save(restaurantFromDomain(restaurant)).Error
}

func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	return r.db.gorm.WithContext(ctx).Delete(&restaurantModel{}, id).Error
}

// promoted restaurants sort first on every listing surface.
func (r *RestaurantRepository) page(ctx context.Context, page int, where string, args ...any) ([]*restaurants.Restaurant, int64, error) {
	q := r.db.gorm.WithContext(ctx).Model(&restaurantModel{})
	if where != "" {
		q = q.Where(where, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []restaurantModel
	err := q.Order("is_promoted DESC, id DESC").
		Offset((page - 1) * restaurantPageSize).
		Limit(restaurantPageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	list := make([]*restaurants.Restaurant, 0, len(models))
	for i := range models {
		list = append(list, models[i].toDomain())
	}
	return list, total, nil
}

func (r *RestaurantRepository) List(ctx context.Context, page int) ([]*restaurants.Restaurant, int64, error) {
	return r.page(ctx, page, "")
}

func (r *RestaurantRepository) ListByCategory(ctx context.Context, categoryID int64, page int) ([]*restaurants.Restaurant, int64, error) {
	return r.page(ctx, page, "category_id = ?", categoryID)
}

func (r *RestaurantRepository) Search(ctx context.Context, query string, page int) ([]*restaurants.Restaurant, int64, error) {
	return r.page(ctx, page, "name ILIKE ?", "%"+query+"%")
}

func (r *RestaurantRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*restaurants.Restaurant, error) {
	var models []restaurantModel
	err := r.db.gorm.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	list := make([]*restaurants.Restaurant, 0, len(models))
	for i := range models {
		list = append(list, models[i].toDomain())
	}
	return list, nil
}

func (r *RestaurantRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := r.db.gorm.WithContext(ctx).
		Model(&restaurantModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (r *RestaurantRepository) ListPromotedExpiredBefore(ctx context.Context, cutoff time.Time) ([]*restaurants.Restaurant, error) {
	var models []restaurantModel
	err := r.db.gorm.WithContext(ctx).
		Where("is_promoted = ? AND promoted_until < ?", true, cutoff).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	list := make([]*restaurants.Restaurant, 0, len(models))
	for i := range models {
		list = append(list, models[i].toDomain())
	}
	return list, nil
}

type CategoryRepository struct {
	db *DB
}

func (d *DB) Categories() *CategoryRepository { return &CategoryRepository{db: d} }

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func (r *CategoryRepository) GetOrCreate(ctx context.Context, name string) (*restaurants.Category, error) {
	slug := slugify(name)
	var m categoryModel
	err := r.db.gorm.WithContext(ctx).Where("slug = ?", slug).First(&m).Error
	if err == nil {
		return m.toDomain(), nil
	}
	if err := notFoundToNil(err); err != nil {
		return nil, err
	}
	m = categoryModel{Name: strings.TrimSpace(name), Slug: slug}
	if err := r.db.gorm.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *CategoryRepository) All(ctx context.Context) ([]*restaurants.Category, error) {
	var models []categoryModel
	if err := r.db.gorm.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*restaurants.Category, 0, len(models))
	for i := range models {
		list = append(list, models[i].toDomain())
	}
	return list, nil
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*restaurants.Category, error) {
	var m categoryModel
	if err := r.db.gorm.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return m.toDomain(), nil
}

type DishRepository struct {
	db *DB
}

func (d *DB) Dishes() *DishRepository { return &DishRepository{db: d} }

func (r *DishRepository) FindByID(ctx context.Context, id int64) (*restaurants.Dish, error) {
	var m dishModel
	if err := r.db.gorm.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return m.toDomain()
}

func (r *DishRepository) Create(ctx context.Context, d *restaurants.Dish) error {
	m, err := dishFromDomain(d)
	if err != nil {
		return err
	}
	if err := r.db.gorm.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	d.ID = m.ID
	return nil
}

func (r *DishRepository) Save(ctx context.Context, d *restaurants.Dish) error {
	m, err := dishFromDomain(d)
	if err != nil {
		return err
	}
	return r.db.gorm.WithContext(ctx).Save(m).Error
}

func (r *DishRepository) Delete(ctx context.Context, id int64) error {
	return r.db.gorm.WithContext(ctx).Delete(&dishModel{}, id).Error
}

// ListByRestaurant returns a restaurant's menu for the Restaurant.menu
// field resolver.
func (r *DishRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]*restaurants.Dish, error) {
	var models []dishModel
	err := r.db.gorm.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	list := make([]*restaurants.Dish, 0, len(models))
	for i := range models {
		dish, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		list = append(list, dish)
	}
	return list, nil
}
