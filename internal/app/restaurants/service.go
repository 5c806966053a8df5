// Package restaurants implements restaurant, category and dish management
// for the marketplace.
package restaurants

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"eats-backend/internal/auth"
)

const pageSize = 15

// ---------------------------------------------------------------------------
// Domain types (passed to/from resolvers)
// ---------------------------------------------------------------------------

type Restaurant struct {
	ID            int64
	OwnerID       int64
	Name          string
	CoverImage    string
	Address       string
	CategoryID    int64
	IsPromoted    bool
	PromotedUntil *time.Time
	CreatedAt     time.Time
}

type Category struct {
	ID         int64
	Name       string
	Slug       string
	CoverImage string
}

type OptionChoice struct {
	Name       string
	ExtraPrice *float64
}

type DishOption struct {
	Name       string
	ExtraPrice *float64
	Choices    []OptionChoice
}

type Dish struct {
	ID           int64
	RestaurantID int64
	Name         string
	Price        float64
	Photo        string
	Description  string
	Options      []DishOption
}

// ---------------------------------------------------------------------------
// Repository collaborators
// ---------------------------------------------------------------------------

// RestaurantRepository is the persistence boundary for restaurants.
// Lookups return (nil, nil) when the row is absent.
type RestaurantRepository interface {
	FindByID(ctx context.Context, id int64) (*Restaurant, error)
	Create(ctx context.Context, r *Restaurant) error
	Save(ctx context.Context, r *Restaurant) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page int) ([]*Restaurant, int64, error)
	ListByCategory(ctx context.Context, categoryID int64, page int) ([]*Restaurant, int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*Restaurant, error)
	Search(ctx context.Context, query string, page int) ([]*Restaurant, int64, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

type CategoryRepository interface {
	GetOrCreate(ctx context.Context, name string) (*Category, error)
	All(ctx context.Context) ([]*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
}

// DishRepository is the persistence boundary for dishes.
// Lookups return (nil, nil) when the row is absent.
type DishRepository interface {
	FindByID(ctx context.Context, id int64) (*Dish, error)
	Create(ctx context.Context, d *Dish) error
	Save(ctx context.Context, d *Dish) error
	Delete(ctx context.Context, id int64) error
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]*Dish, error)
}

// ---------------------------------------------------------------------------
// Inputs / outputs
// ---------------------------------------------------------------------------

type CreateRestaurantInput struct {
	Name         string
	CoverImage   string
	Address      string
	CategoryName string
}

type EditRestaurantInput struct {
	RestaurantID int64
	Name         *string
	CoverImage   *string
	Address      *string
	CategoryName *string
}

type CreateDishInput struct {
	RestaurantID int64
	Name         string
	Price        float64
	Photo        string
	Description  string
	Options      []DishOption
}

type EditDishInput struct {
	DishID      int64
	Name        *string
	Price       *float64
	Photo       *string
	Description *string
	Options     []DishOption
}

// Output is the uniform business-level result shape. Error is empty on
// success; repository failures never escape as raw errors.
type Output struct {
	Ok    bool
	Error string
}

type CreateRestaurantOutput struct {
	Output
	RestaurantID int64
}

type RestaurantsOutput struct {
	Output
	Restaurants []*Restaurant
	TotalPages  int
	TotalItems  int64
}

type RestaurantOutput struct {
	Output
	Restaurant *Restaurant
}

type MyRestaurantsOutput struct {
	Output
	Restaurants []*Restaurant
}

type AllCategoriesOutput struct {
	Output
	Categories []*Category
}

type CategoryOutput struct {
	Output
	Category    *Category
	Restaurants []*Restaurant
	TotalPages  int
	TotalItems  int64
}

type DishOutput struct {
	Output
	Dish *Dish
}

func ok() Output                 { return Output{Ok: true} }
func fail(msg string) Output     { return Output{Error: msg} }
func totalPages(items int64) int { return int(math.Ceil(float64(items) / float64(pageSize))) }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service struct {
	restaurants RestaurantRepository
	categories  CategoryRepository
	dishes      DishRepository
}

func NewService(restaurants RestaurantRepository, categories CategoryRepository, dishes DishRepository) *Service {
	return &Service{
		restaurants: restaurants,
		categories:  categories,
		dishes:      dishes,
	}
}

func (s *Service) CreateRestaurant(ctx context.Context, owner auth.Principal, in CreateRestaurantInput) CreateRestaurantOutput {
	category, err := s.categories.GetOrCreate(ctx, in.CategoryName)
	if err != nil {
		log.Error().Err(err).Msg("create restaurant: category lookup")
		return CreateRestaurantOutput{Output: fail("Could not create restaurant.")}
	}
	restaurant := &Restaurant{
		OwnerID:    owner.ID,
		Name:       in.Name,
		CoverImage: in.CoverImage,
		Address:    in.Address,
		CategoryID: category.ID,
	}
	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		log.Error().Err(err).Msg("create restaurant: save")
		return CreateRestaurantOutput{Output: fail("Could not create restaurant.")}
	}
	return CreateRestaurantOutput{Output: ok(), RestaurantID: restaurant.ID}
}

func (s *Service) EditRestaurant(ctx context.Context, owner auth.Principal, in EditRestaurantInput) Output {
	restaurant, err := s.restaurants.FindByID(ctx, in.RestaurantID)
	if err != nil {
		log.Error().Err(err).Msg("edit restaurant: lookup")
		return fail("Could not edit restaurant.")
	}
	if restaurant == nil {
		return fail("Restaurant not found.")
	}
	if restaurant.OwnerID != owner.ID {
		return fail("You cannot edit a restaurant that is not yours.")
	}

	if in.Name != nil {
		restaurant.Name = *in.Name
	}
	if in.CoverImage != nil {
		restaurant.CoverImage = *in.CoverImage
	}
	if in.Address != nil {
		restaurant.Address = *in.Address
	}
	if in.CategoryName != nil {
		category, err := s.categories.GetOrCreate(ctx, *in.CategoryName)
		if err != nil {
			log.Error().Err(err).Msg("edit restaurant: category lookup")
			return fail("Could not edit restaurant.")
		}
		restaurant.CategoryID = category.ID
	}

	if err := s.restaurants.Save(ctx, restaurant); err != nil {
		log.Error().Err(err).Msg("edit restaurant: save")
		return fail("Could not edit restaurant.")
	}
	return ok()
}

func (s *Service) DeleteRestaurant(ctx context.Context, owner auth.Principal, restaurantID int64) Output {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		log.Error().Err(err).Msg("delete restaurant: lookup")
		return fail("Could not delete restaurant.")
	}
	if restaurant == nil {
		return fail("Restaurant not found.")
	}
	if restaurant.OwnerID != owner.ID {
		return fail("You cannot delete a restaurant that is not yours.")
	}
	if err := s.restaurants.Delete(ctx, restaurantID); err != nil {
		log.Error().Err(err).Msg("delete restaurant: delete")
		return fail("Could not delete restaurant.")
	}
	return ok()
}

func (s *Service) AllRestaurants(ctx context.Context, page int) RestaurantsOutput {
	if page < 1 {
		page = 1
	}
	items, total, err := s.restaurants.List(ctx, page)
	if err != nil {
		log.Error().Err(err).Msg("list restaurants")
		return RestaurantsOutput{Output: fail("Could not load restaurants.")}
	}
	return RestaurantsOutput{
		Output:      ok(),
		Restaurants: items,
		TotalPages:  totalPages(total),
		TotalItems:  total,
	}
}

func (s *Service) FindRestaurantByID(ctx context.Context, restaurantID int64) RestaurantOutput {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		log.Error().Err(err).Msg("find restaurant")
		return RestaurantOutput{Output: fail("Could not find restaurant.")}
	}
	if restaurant == nil {
		return RestaurantOutput{Output: fail("Restaurant not found.")}
	}
	return RestaurantOutput{Output: ok(), Restaurant: restaurant}
}

func (s *Service) SearchRestaurant(ctx context.Context, query string, page int) RestaurantsOutput {
	if page < 1 {
		page = 1
	}
	items, total, err := s.restaurants.Search(ctx, query, page)
	if err != nil {
		log.Error().Err(err).Msg("search restaurants")
		return RestaurantsOutput{Output: fail("Could not search for restaurants.")}
	}
	return RestaurantsOutput{
		Output:      ok(),
		Restaurants: items,
		TotalPages:  totalPages(total),
		TotalItems:  total,
	}
}

func (s *Service) MyRestaurants(ctx context.Context, owner auth.Principal) MyRestaurantsOutput {
	items, err := s.restaurants.ListByOwner(ctx, owner.ID)
	if err != nil {
		log.Error().Err(err).Msg("list own restaurants")
		return MyRestaurantsOutput{Output: fail("Could not load restaurants.")}
	}
	return MyRestaurantsOutput{Output: ok(), Restaurants: items}
}

func (s *Service) MyRestaurant(ctx context.Context, owner auth.Principal, restaurantID int64) RestaurantOutput {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		log.Error().Err(err).Msg("find own restaurant")
		return RestaurantOutput{Output: fail("Could not find restaurant.")}
	}
	if restaurant == nil || restaurant.OwnerID != owner.ID {
		return RestaurantOutput{Output: fail("Restaurant not found.")}
	}
	return RestaurantOutput{Output: ok(), Restaurant: restaurant}
}

func (s *Service) AllCategories(ctx context.Context) AllCategoriesOutput {
	categories, err := s.categories.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list categories")
		return AllCategoriesOutput{Output: fail("Could not load categories.")}
	}
	return AllCategoriesOutput{Output: ok(), Categories: categories}
}

func (s *Service) FindCategoryBySlug(ctx context.Context, slug string, page int) CategoryOutput {
	if page < 1 {
		page = 1
	}
	category, err := s.categories.FindBySlug(ctx, slug)
	if err != nil {
		log.Error().Err(err).Msg("find category")
		return CategoryOutput{Output: fail("Could not load category.")}
	}
	if category == nil {
		return CategoryOutput{Output: fail("No category with that slug.")}
	}
	items, total, err := s.restaurants.ListByCategory(ctx, category.ID, page)
	if err != nil {
		log.Error().Err(err).Msg("find category: list restaurants")
		return CategoryOutput{Output: fail("Could not load category.")}
	}
	return CategoryOutput{
		Output:      ok(),
		Category:    category,
		Restaurants: items,
		TotalPages:  totalPages(total),
		TotalItems:  total,
	}
}

// Menu returns a restaurant's dishes. Exposed for the Restaurant.menu
// field resolver.
func (s *Service) Menu(ctx context.Context, restaurantID int64) []*Dish {
	dishes, err := s.dishes.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		log.Error().Err(err).Msg("load menu")
		return nil
	}
	return dishes
}

// CountRestaurants reports how many restaurants belong to a category.
// Exposed for the Category.restaurantCount field resolver.
func (s *Service) CountRestaurants(ctx context.Context, categoryID int64) int64 {
	count, err := s.restaurants.CountByCategory(ctx, categoryID)
	if err != nil {
		log.Error().Err(err).Msg("count restaurants")
		return 0
	}
	return count
}

func (s *Service) CreateDish(ctx context.Context, owner auth.Principal, in CreateDishInput) Output {
	restaurant, err := s.restaurants.FindByID(ctx, in.RestaurantID)
	if err != nil {
		log.Error().Err(err).Msg("create dish: restaurant lookup")
		return fail("Could not create dish.")
	}
	if restaurant == nil {
		return fail("Restaurant not found.")
	}
	if restaurant.OwnerID != owner.ID {
		return fail("You cannot add a dish to a restaurant that is not yours.")
	}
	dish := &Dish{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Price:        in.Price,
		Photo:        in.Photo,
		Description:  in.Description,
		Options:      in.Options,
	}
	if err := s.dishes.Create(ctx, dish); err != nil {
		log.Error().Err(err).Msg("create dish: save")
		return fail("Could not create dish.")
	}
	return ok()
}

func (s *Service) EditDish(ctx context.Context, owner auth.Principal, in EditDishInput) Output {
	dish, _, out := s.dishWithOwnerCheck(ctx, owner, in.DishID, "edit")
	if !out.Ok {
		return out
	}

	if in.Name != nil {
		dish.Name = *in.Name
	}
	if in.Price != nil {
		dish.Price = *in.Price
	}
	if in.Photo != nil {
		dish.Photo = *in.Photo
	}
	if in.Description != nil {
		dish.Description = *in.Description
	}
	if in.Options != nil {
		dish.Options = in.Options
	}

	if err := s.dishes.Save(ctx, dish); err != nil {
		log.Error().Err(err).Msg("edit dish: save")
		return fail("Could not edit dish.")
	}
	return ok()
}

func (s *Service) DeleteDish(ctx context.Context, owner auth.Principal, dishID int64) Output {
	_, _, out := s.dishWithOwnerCheck(ctx, owner, dishID, "delete")
	if !out.Ok {
		return out
	}
	if err := s.dishes.Delete(ctx, dishID); err != nil {
		log.Error().Err(err).Msg("delete dish: delete")
		return fail("Could not delete dish.")
	}
	return ok()
}

// dishWithOwnerCheck loads a dish and verifies the caller owns the
// restaurant it belongs to. The dish → restaurant → owner chain is the
// ownership rule for every dish mutation.
func (s *Service) dishWithOwnerCheck(ctx context.Context, owner auth.Principal, dishID int64, action string) (*Dish, *Restaurant, Output) {
	dish, err := s.dishes.FindByID(ctx, dishID)
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("dish lookup")
		return nil, nil, fail("Could not " + action + " dish.")
	}
	if dish == nil {
		return nil, nil, fail("Dish not found.")
	}
	restaurant, err := s.restaurants.FindByID(ctx, dish.RestaurantID)
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("dish restaurant lookup")
		return nil, nil, fail("Could not " + action + " dish.")
	}
	if restaurant == nil || restaurant.OwnerID != owner.ID {
		return nil, nil, fail("You cannot " + action + " a dish that is not yours.")
	}
	return dish, restaurant, ok()
}
