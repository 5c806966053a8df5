package graph

// This file will not be regenerated automatically.
//
// It serves as dependency injection for your app, add any dependencies you require here.

import (
	"context"
	"errors"

	"eats-backend/internal/app/orders"
	"eats-backend/internal/app/payments"
	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
)

// Service interfaces the resolvers depend on. The concrete services
// implement them structurally; tests inject lightweight mocks.

type UsersService interface {
	CreateAccount(ctx context.Context, in users.CreateAccountInput) users.Output
	Login(ctx context.Context, email, password string) users.LoginOutput
	FindByID(ctx context.Context, id int64) users.UserOutput
	EditProfile(ctx context.Context, p auth.Principal, in users.EditProfileInput) users.Output
	VerifyEmail(ctx context.Context, code string) users.Output
}

type RestaurantsService interface {
	CreateRestaurant(ctx context.Context, owner auth.Principal, in restaurants.CreateRestaurantInput) restaurants.CreateRestaurantOutput
	EditRestaurant(ctx context.Context, owner auth.Principal, in restaurants.EditRestaurantInput) restaurants.Output
	DeleteRestaurant(ctx context.Context, owner auth.Principal, restaurantID int64) restaurants.Output
	AllRestaurants(ctx context.Context, page int) restaurants.RestaurantsOutput
	FindRestaurantByID(ctx context.Context, restaurantID int64) restaurants.RestaurantOutput
	SearchRestaurant(ctx context.Context, query string, page int) restaurants.RestaurantsOutput
	MyRestaurants(ctx context.Context, owner auth.Principal) restaurants.MyRestaurantsOutput
	MyRestaurant(ctx context.Context, owner auth.Principal, restaurantID int64) restaurants.RestaurantOutput
	AllCategories(ctx context.Context) restaurants.AllCategoriesOutput
	FindCategoryBySlug(ctx context.Context, slug string, page int) restaurants.CategoryOutput
	CountRestaurants(ctx context.Context, categoryID int64) int64
	Menu(ctx context.Context, restaurantID int64) []*restaurants.Dish
	CreateDish(ctx context.Context, owner auth.Principal, in restaurants.CreateDishInput) restaurants.Output
	EditDish(ctx context.Context, owner auth.Principal, in restaurants.EditDishInput) restaurants.Output
	DeleteDish(ctx context.Context, owner auth.Principal, dishID int64) restaurants.Output
}

type OrdersService interface {
	CreateOrder(ctx context.Context, customer auth.Principal, in orders.CreateOrderInput) orders.CreateOrderOutput
	GetOrders(ctx context.Context, p auth.Principal, status *orders.Status) orders.GetOrdersOutput
	GetOrder(ctx context.Context, p auth.Principal, orderID int64) orders.GetOrderOutput
	EditOrder(ctx context.Context, p auth.Principal, orderID int64, status orders.Status) orders.Output
	TakeOrder(ctx context.Context, driver auth.Principal, orderID int64) orders.Output
	SubscribePendingOrders(ctx context.Context, owner auth.Principal) <-chan *orders.Order
	SubscribeCookedOrders(ctx context.Context) <-chan *orders.Order
	SubscribeOrderUpdates(ctx context.Context, p auth.Principal, orderID int64) <-chan *orders.Order
}

type PaymentsService interface {
	CreatePayment(ctx context.Context, owner auth.Principal, transactionID string, restaurantID int64) payments.Output
	GetPayments(ctx context.Context, owner auth.Principal) payments.GetPaymentsOutput
}

// Resolver is the root dependency-injection struct wired in cmd/api.
type Resolver struct {
	Users       UsersService
	Restaurants RestaurantsService
	Orders      OrdersService
	Payments    PaymentsService
}

// ErrUnauthenticated is returned by resolvers that need a principal when
// none is attached to the request context. The access gate normally
// rejects such requests before the resolver runs; this is the backstop.
var ErrUnauthenticated = errors.New("unauthenticated")

// principal reads the caller the auth middleware attached to ctx.
func principal(ctx context.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return auth.Principal{}, ErrUnauthenticated
	}
	return p, nil
}
