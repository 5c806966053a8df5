package graph

import (
	"eats-backend/graph/model"
	"eats-backend/internal/app/orders"
	"eats-backend/internal/app/payments"
	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
)

// Mapping between domain types and GraphQL models. Empty strings become
// nil so nullable fields stay null on the wire.

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func errPtr(e string) *string {
	return strPtrOrNil(e)
}

func toModelUser(u *users.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		ID:       u.ID,
		Email:    u.Email,
		Role:     model.UserRole(u.Role),
		Verified: u.Verified,
	}
}

func toModelRestaurant(r *restaurants.Restaurant) *model.Restaurant {
	if r == nil {
		return nil
	}
	return &model.Restaurant{
		ID:         r.ID,
		Name:       r.Name,
		CoverImage: strPtrOrNil(r.CoverImage),
		Address:    r.Address,
		IsPromoted: r.IsPromoted,
	}
}

func toModelRestaurants(list []*restaurants.Restaurant) []*model.Restaurant {
	out := make([]*model.Restaurant, 0, len(list))
	for _, r := range list {
		out = append(out, toModelRestaurant(r))
	}
	return out
}

func toModelCategory(c *restaurants.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		ID:         c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
		CoverImage: strPtrOrNil(c.CoverImage),
	}
}

func toModelDish(d *restaurants.Dish) *model.Dish {
	if d == nil {
		return nil
	}
	options := make([]*model.DishOption, 0, len(d.Options))
	for _, o := range d.Options {
		choices := make([]*model.OptionChoice, 0, len(o.Choices))
		for _, c := range o.Choices {
			choices = append(choices, &model.OptionChoice{Name: c.Name, ExtraPrice: c.ExtraPrice})
		}
		options = append(options, &model.DishOption{
			Name:       o.Name,
			ExtraPrice: o.ExtraPrice,
			Choices:    choices,
		})
	}
	return &model.Dish{
		ID:          d.ID,
		Name:        d.Name,
		Price:       d.Price,
		Photo:       strPtrOrNil(d.Photo),
		Description: d.Description,
		Options:     options,
	}
}

func fromDishOptionInputs(in []*model.DishOptionInput) []restaurants.DishOption {
	if in == nil {
		return nil
	}
	options := make([]restaurants.DishOption, 0, len(in))
	for _, o := range in {
		choices := make([]restaurants.OptionChoice, 0, len(o.Choices))
		for _, c := range o.Choices {
			choices = append(choices, restaurants.OptionChoice{Name: c.Name, ExtraPrice: c.ExtraPrice})
		}
		options = append(options, restaurants.DishOption{
			Name:       o.Name,
			ExtraPrice: o.ExtraPrice,
			Choices:    choices,
		})
	}
	return options
}

func toModelOrder(o *orders.Order) *model.Order {
	if o == nil {
		return nil
	}
	items := make([]*model.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		options := make([]*model.OrderItemOption, 0, len(item.Options))
		for _, opt := range item.Options {
			options = append(options, &model.OrderItemOption{
				Name:   opt.Name,
				Choice: strPtrOrNil(opt.Choice),
			})
		}
		items = append(items, &model.OrderItem{
			DishID:   item.DishID,
			DishName: item.DishName,
			Options:  options,
		})
	}
	return &model.Order{
		ID:           o.ID,
		Status:       model.OrderStatus(o.Status),
		Total:        o.Total,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		DriverID:     o.DriverID,
		Items:        items,
	}
}

func toModelOrders(list []*orders.Order) []*model.Order {
	out := make([]*model.Order, 0, len(list))
	for _, o := range list {
		out = append(out, toModelOrder(o))
	}
	return out
}

func toModelPayments(list []*payments.Payment) []*model.Payment {
	out := make([]*model.Payment, 0, len(list))
	for _, p := range list {
		out = append(out, &model.Payment{
			ID:            p.ID,
			TransactionID: p.TransactionID,
			RestaurantID:  p.RestaurantID,
		})
	}
	return out
}

func pageOrFirst(page *int) int {
	if page == nil || *page < 1 {
		return 1
	}
	return *page
}

func intPtr(v int) *int { return &v }
