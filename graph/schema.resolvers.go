package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.87

import (
	"context"

	"eats-backend/graph/model"
	"eats-backend/internal/app/orders"
	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
)

// CreateAccount is the resolver for the createAccount field.
func (r *mutationResolver) CreateAccount(ctx context.Context, input model.CreateAccountInput) (*model.CoreOutput, error) {
	out := r.Users.CreateAccount(ctx, users.CreateAccountInput{
		Email:    input.Email,
		Password: input.Password,
		Role:     auth.Role(input.Role),
	})
	return &model.CoreOutput{Ok: out.Ok, Error: errPtr(out.Error)}, nil
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, input model.LoginInput) (*model.LoginOutput, error) {
	out := r.Users.Login(ctx, input.Email, input.Password)
	return &model.LoginOutput{Ok: out.Ok, Error: errPtr(out.Error), Token: strPtrOrNil(out.Token)}, nil
}

// EditProfile is the resolver for the editProfile field.
func (r *mutationResolver) EditProfile(ctx context.Context, input model.EditProfileInput) (*model.CoreOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Users.EditProfile(ctx, p, users.EditProfileInput{
		Email:    input.Email,
		Password: input.Password,
	})
	return &model.CoreOutput{Ok: out.Ok, Error: errPtr(out.Error)}, nil
}

// VerifyEmail is the resolver for the verifyEmail field.
func (r *mutationResolver) VerifyEmail(ctx context.Context, input model.VerifyEmailInput) (*model.CoreOutput, error) {
	out := r.Users.VerifyEmail(ctx, input.Code)
	return &model.CoreOutput{Ok: out.Ok, Error: errPtr(out.Error)}, nil
}

// CreateRestaurant is the resolver for the createRestaurant field.
func (r *mutationResolver) CreateRestaurant(ctx context.Context, input model.CreateRestaurantInput) (*model.CreateRestaurantOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	in := restaurants.CreateRestaurantInput{
		Name:         input.Name,
		Address:      input.Address,
		CategoryName: input.CategoryName,
	}
	if input.CoverImage != nil {
		in.CoverImage = *input.CoverImage
	}
	out := r.Restaurants.CreateRestaurant(ctx, p, in)
	result := &model.CreateRestaurantOutput{Ok: out.Ok, Error: errPtr(out.Error)}
	if out.Ok {
		result.RestaurantID = &out.RestaurantID
	}
	return result, nil
}

// EditRestaurant is the resolver for the editRestaurant field.
func (r *mutationResolver) EditRestaurant(ctx context.Context, input model.EditRestaurantInput) (*model.CoreOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Restaurants.EditRestaurant(ctx, p, restaurants.EditRestaurantInput{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		CoverImage:   input.CoverImage,
		Address:      input.Address,
		CategoryName: input.CategoryName,
	})
	return &model.CoreOutput{Ok: out.Ok, Error: errPtr(out.Error)}, nil
}

// DeleteRestaurant is the resolver for the deleteRestaurant field.
func (r *mutationResolver) DeleteRestaurant(ctx context.Context, restaurantID int64) (*model.CoreOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Restaurants.DeleteRestaurant(ctx, p, restaurantID)
	return &model.CoreOutput{Ok: out.Ok, Error: errPtr(out.Error)}, nil
}

// CreateDish is the resolver for the createDish field.
func (r *mutationResolver) CreateDish(ctx context.Context, input model.CreateDishInput) (*model.CoreOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	in := restaurants.CreateDishInput{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Price:        input.Price,
		Description:  input.Description,
		Options:      fromDishOptionInputs(input.Options),
	}
	if input.Photo != nil {
		in.Photo = *input.Photo
	}
	out := r.Restaurants.CreateDish(ctx, p, in)
	return &model.CoreOutput{Ok: out.Ok, Error: errPtr(out.Error)}, nil
}

// EditDish is the resolver for the editDish field.
func (r *mutationResolver) EditDish(ctx context.Context, input model.EditDishInput) (*model.CoreOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Restaurants.EditDish(ctx, p, restaurants.EditDishInput{
		DishID:      input.DishID,
		Name:        input.Name,
		Price:       input.Price,
		Photo:       input.Photo,
		Description: input.Description,
		Options:     fromDishOptionInputs(input.Options),
	})
	return &model.CoreOutput{Ok: out.Ok, Error: errPtr(out.Error)}, nil
}

// DeleteDish is the resolver for the deleteDish field.
func (r *mutationResolver) DeleteDish(ctx context.Context, dishID int64) (*model.CoreOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Restaurants.DeleteDish(ctx, p, dishID)
	return &model.CoreOutput{Ok: out.Ok, Error: errPtr(out.Error)}, nil
}

// CreateOrder is the resolver for the createOrder field.
func (r *mutationResolver) CreateOrder(ctx context.Context, input model.CreateOrderInput) (*model.CreateOrderOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]orders.CreateOrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		options := make([]orders.ItemOption, 0, len(item.Options))
		for _, opt := range item.Options {
			option := orders.ItemOption{Name: opt.Name}
			if opt.Choice != nil {
				option.Choice = *opt.Choice
			}
			options = append(options, option)
		}
		items = append(items, orders.CreateOrderItem{DishID: item.DishID, Options: options})
	}
	out := r.Orders.CreateOrder(ctx, p, orders.CreateOrderInput{
		RestaurantID: input.RestaurantID,
		Items:        items,
	})
	result := &model.CreateOrderOutput{Ok: out.Ok, Error: errPtr(out.Error)}
	if out.Ok {
		result.OrderID = &out.OrderID
	}
	return result, nil
}

// EditOrder is the resolver for the editOrder field.
func (r *mutationResolver) EditOrder(ctx context.Context, input model.EditOrderInput) (*model.CoreOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Orders.EditOrder(ctx, p, input.ID, orders.Status(input.Status))
	return &model.CoreOutput{Ok: out.Ok, Error: errPtr(out.Error)}, nil
}

// TakeOrder is the resolver for the takeOrder field.
func (r *mutationResolver) TakeOrder(ctx context.Context, id int64) (*model.CoreOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Orders.TakeOrder(ctx, p, id)
	return &model.CoreOutput{Ok: out.Ok, Error: errPtr(out.Error)}, nil
}

// CreatePayment is the resolver for the createPayment field.
func (r *mutationResolver) CreatePayment(ctx context.Context, input model.CreatePaymentInput) (*model.CoreOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Payments.CreatePayment(ctx, p, input.TransactionID, input.RestaurantID)
	return &model.CoreOutput{Ok: out.Ok, Error: errPtr(out.Error)}, nil
}

// Me is the resolver for the me field.
func (r *queryResolver) Me(ctx context.Context) (*model.User, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Users.FindByID(ctx, p.ID)
	if !out.Ok {
		return nil, ErrUnauthenticated
	}
	return toModelUser(out.User), nil
}

// UserProfile is the resolver for the userProfile field.
func (r *queryResolver) UserProfile(ctx context.Context, userID int64) (*model.UserProfileOutput, error) {
	out := r.Users.FindByID(ctx, userID)
	return &model.UserProfileOutput{
		Ok:    out.Ok,
		Error: errPtr(out.Error),
		User:  toModelUser(out.User),
	}, nil
}

// Restaurants is the resolver for the restaurants field.
func (r *queryResolver) Restaurants(ctx context.Context, page *int) (*model.RestaurantsOutput, error) {
	out := r.Resolver.Restaurants.AllRestaurants(ctx, pageOrFirst(page))
	return toModelRestaurantsOutput(out), nil
}

// Restaurant is the resolver for the restaurant field.
func (r *queryResolver) Restaurant(ctx context.Context, restaurantID int64) (*model.RestaurantOutput, error) {
	out := r.Resolver.Restaurants.FindRestaurantByID(ctx, restaurantID)
	return &model.RestaurantOutput{
		Ok:         out.Ok,
		Error:      errPtr(out.Error),
		Restaurant: toModelRestaurant(out.Restaurant),
	}, nil
}

// SearchRestaurant is the resolver for the searchRestaurant field.
func (r *queryResolver) SearchRestaurant(ctx context.Context, query string, page *int) (*model.RestaurantsOutput, error) {
	out := r.Resolver.Restaurants.SearchRestaurant(ctx, query, pageOrFirst(page))
	return toModelRestaurantsOutput(out), nil
}

// AllCategories is the resolver for the allCategories field.
func (r *queryResolver) AllCategories(ctx context.Context) (*model.AllCategoriesOutput, error) {
	out := r.Resolver.Restaurants.AllCategories(ctx)
	categories := make([]*model.Category, 0, len(out.Categories))
	for _, c := range out.Categories {
		categories = append(categories, toModelCategory(c))
	}
	return &model.AllCategoriesOutput{
		Ok:         out.Ok,
		Error:      errPtr(out.Error),
		Categories: categories,
	}, nil
}

// Category is the resolver for the category field.
func (r *queryResolver) Category(ctx context.Context, slug string, page *int) (*model.CategoryOutput, error) {
	out := r.Resolver.Restaurants.FindCategoryBySlug(ctx, slug, pageOrFirst(page))
	result := &model.CategoryOutput{
		Ok:       out.Ok,
		Error:    errPtr(out.Error),
		Category: toModelCategory(out.Category),
	}
	if out.Ok {
		result.Restaurants = toModelRestaurants(out.Restaurants)
		result.TotalPages = intPtr(out.TotalPages)
		result.TotalItems = intPtr(int(out.TotalItems))
	}
	return result, nil
}

// MyRestaurants is the resolver for the myRestaurants field.
func (r *queryResolver) MyRestaurants(ctx context.Context) (*model.MyRestaurantsOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Resolver.Restaurants.MyRestaurants(ctx, p)
	return &model.MyRestaurantsOutput{
		Ok:          out.Ok,
		Error:       errPtr(out.Error),
		Restaurants: toModelRestaurants(out.Restaurants),
	}, nil
}

// MyRestaurant is the resolver for the myRestaurant field.
func (r *queryResolver) MyRestaurant(ctx context.Context, restaurantID int64) (*model.RestaurantOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Resolver.Restaurants.MyRestaurant(ctx, p, restaurantID)
	return &model.RestaurantOutput{
		Ok:         out.Ok,
		Error:      errPtr(out.Error),
		Restaurant: toModelRestaurant(out.Restaurant),
	}, nil
}

// GetOrders is the resolver for the getOrders field.
func (r *queryResolver) GetOrders(ctx context.Context, input model.GetOrdersInput) (*model.GetOrdersOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	var status *orders.Status
	if input.Status != nil {
		s := orders.Status(*input.Status)
		status = &s
	}
	out := r.Orders.GetOrders(ctx, p, status)
	return &model.GetOrdersOutput{
		Ok:     out.Ok,
		Error:  errPtr(out.Error),
		Orders: toModelOrders(out.Orders),
	}, nil
}

// GetOrder is the resolver for the getOrder field.
func (r *queryResolver) GetOrder(ctx context.Context, id int64) (*model.GetOrderOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Orders.GetOrder(ctx, p, id)
	return &model.GetOrderOutput{
		Ok:    out.Ok,
		Error: errPtr(out.Error),
		Order: toModelOrder(out.Order),
	}, nil
}

// GetPayments is the resolver for the getPayments field.
func (r *queryResolver) GetPayments(ctx context.Context) (*model.GetPaymentsOutput, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Payments.GetPayments(ctx, p)
	return &model.GetPaymentsOutput{
		Ok:       out.Ok,
		Error:    errPtr(out.Error),
		Payments: toModelPayments(out.Payments),
	}, nil
}

// PendingOrders is the resolver for the pendingOrders field.
func (r *subscriptionResolver) PendingOrders(ctx context.Context) (<-chan *model.Order, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	return pipeOrders(ctx, r.Orders.SubscribePendingOrders(ctx, p)), nil
}

// CookedOrders is the resolver for the cookedOrders field.
func (r *subscriptionResolver) CookedOrders(ctx context.Context) (<-chan *model.Order, error) {
	if _, err := principal(ctx); err != nil {
		return nil, err
	}
	return pipeOrders(ctx, r.Orders.SubscribeCookedOrders(ctx)), nil
}

// OrderUpdates is the resolver for the orderUpdates field.
func (r *subscriptionResolver) OrderUpdates(ctx context.Context, input model.OrderUpdatesInput) (<-chan *model.Order, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	return pipeOrders(ctx, r.Orders.SubscribeOrderUpdates(ctx, p, input.ID)), nil
}

// pipeOrders bridges a domain order stream onto a GraphQL model stream.
// The output channel closes when the source closes, which happens when
// the subscriber disconnects and the bus drops its slot.
func pipeOrders(ctx context.Context, src <-chan *orders.Order) <-chan *model.Order {
	out := make(chan *model.Order, 1)
	go func() {
		defer close(out)
		for o := range src {
			select {
			case out <- toModelOrder(o):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// RestaurantCount is the resolver for the restaurantCount field.
func (r *categoryResolver) RestaurantCount(ctx context.Context, obj *model.Category) (int, error) {
	return int(r.Restaurants.CountRestaurants(ctx, obj.ID)), nil
}

// Menu is the resolver for the menu field.
func (r *restaurantResolver) Menu(ctx context.Context, obj *model.Restaurant) ([]*model.Dish, error) {
	dishes := r.Restaurants.Menu(ctx, obj.ID)
	out := make([]*model.Dish, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, toModelDish(d))
	}
	return out, nil
}

func toModelRestaurantsOutput(out restaurants.RestaurantsOutput) *model.RestaurantsOutput {
	result := &model.RestaurantsOutput{Ok: out.Ok, Error: errPtr(out.Error)}
	if out.Ok {
		result.Restaurants = toModelRestaurants(out.Restaurants)
		result.TotalPages = intPtr(out.TotalPages)
		result.TotalItems = intPtr(int(out.TotalItems))
	}
	return result
}

// Category returns CategoryResolver implementation.
func (r *Resolver) Category() CategoryResolver { return &categoryResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// Restaurant returns RestaurantResolver implementation.
func (r *Resolver) Restaurant() RestaurantResolver { return &restaurantResolver{r} }

// Subscription returns SubscriptionResolver implementation.
func (r *Resolver) Subscription() SubscriptionResolver { return &subscriptionResolver{r} }

type categoryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type restaurantResolver struct{ *Resolver }
type subscriptionResolver struct{ *Resolver }
