package orders

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/auth"
	"eats-backend/internal/metrics"
	"eats-backend/internal/pubsub"
)

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

// Repository is the persistence boundary for orders. Lookups return
// (nil, nil) when the row is absent.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Order, error)
	Create(ctx context.Context, o *Order) error
	Save(ctx context.Context, o *Order) error
	ListByCustomer(ctx context.Context, customerID int64, status *Status) ([]*Order, error)
	ListByDriver(ctx context.Context, driverID int64, status *Status) ([]*Order, error)
	ListByRestaurantOwner(ctx context.Context, ownerID int64, status *Status) ([]*Order, error)
}

// RestaurantDirectory resolves the restaurant and dish data an order
// references; it is the read-only slice of the restaurants repositories
// this service needs.
type RestaurantDirectory interface {
	FindByID(ctx context.Context, id int64) (*restaurants.Restaurant, error)
}

type DishDirectory interface {
	FindByID(ctx context.Context, id int64) (*restaurants.Dish, error)
}

// ---------------------------------------------------------------------------
// Inputs / outputs
// ---------------------------------------------------------------------------

type CreateOrderItem struct {
	DishID  int64
	Options []ItemOption
}

type CreateOrderInput struct {
	RestaurantID int64
	Items        []CreateOrderItem
}

type Output struct {
	Ok    bool
	Error string
}

type CreateOrderOutput struct {
	Output
	OrderID int64
}

type GetOrdersOutput struct {
	Output
	Orders []*Order
}

type GetOrderOutput struct {
	Output
	Order *Order
}

func ok() Output             { return Output{Ok: true} }
func fail(msg string) Output { return Output{Error: msg} }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service struct {
	orders      Repository
	restaurants RestaurantDirectory
	dishes      DishDirectory
	events      *pubsub.Bus[*Order]
}

func NewService(orders Repository, restaurants RestaurantDirectory, dishes DishDirectory, events *pubsub.Bus[*Order]) *Service {
	return &Service{
		orders:      orders,
		restaurants: restaurants,
		dishes:      dishes,
		events:      events,
	}
}

// CreateOrder places an order for customer. The total is computed
// server-side from current dish prices plus any chosen option extras;
// client-supplied prices are never trusted. On success the order is
// announced on the pendingOrders topic so the restaurant's owner sees it.
func (s *Service) CreateOrder(ctx context.Context, customer auth.Principal, in CreateOrderInput) CreateOrderOutput {
	restaurant, err := s.restaurants.FindByID(ctx, in.RestaurantID)
	if err != nil {
		log.Error().Err(err).Msg("create order: restaurant lookup")
		return CreateOrderOutput{Output: fail("Could not create order.")}
	}
	if restaurant == nil {
		return CreateOrderOutput{Output: fail("Restaurant not found.")}
	}
	if len(in.Items) == 0 {
		return CreateOrderOutput{Output: fail("Order has no items.")}
	}

	var total float64
	items := make([]Item, 0, len(in.Items))
	for _, item := range in.Items {
		dish, err := s.dishes.FindByID(ctx, item.DishID)
		if err != nil {
			log.Error().Err(err).Msg("create order: dish lookup")
			return CreateOrderOutput{Output: fail("Could not create order.")}
		}
		if dish == nil {
			return CreateOrderOutput{Output: fail("Dish not found.")}
		}
		if dish.RestaurantID != restaurant.ID {
			return CreateOrderOutput{Output: fail("Dish is not from that restaurant.")}
		}
		total += dishPrice(dish, item.Options)
		items = append(items, Item{
			DishID:   dish.ID,
			DishName: dish.Name,
			Options:  item.Options,
		})
	}

	order := &Order{
		CustomerID:        customer.ID,
		RestaurantID:      restaurant.ID,
		RestaurantOwnerID: restaurant.OwnerID,
		Status:            StatusPending,
		Total:             total,
		Items:             items,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		log.Error().Err(err).Msg("create order: save")
		return CreateOrderOutput{Output: fail("Could not create order.")}
	}

	metrics.OrdersCreatedTotal.Inc()
	s.events.Publish(TopicPendingOrders, order)

	return CreateOrderOutput{Output: ok(), OrderID: order.ID}
}

// dishPrice resolves the final price of one ordered dish: base price plus
// the extra price of each chosen option, or of the chosen choice when the
// option itself carries no extra.
func dishPrice(dish *restaurants.Dish, chosen []ItemOption) float64 {
	price := dish.Price
	for _, itemOption := range chosen {
		for _, dishOption := range dish.Options {
			if dishOption.Name != itemOption.Name {
				continue
			}
			if dishOption.ExtraPrice != nil {
				price += *dishOption.ExtraPrice
				break
			}
			for _, choice := range dishOption.Choices {
				if choice.Name == itemOption.Choice && choice.ExtraPrice != nil {
					price += *choice.ExtraPrice
					break
				}
			}
			break
		}
	}
	return price
}

// GetOrders lists the caller's orders as seen from their role: a Client
// sees orders they placed, a Delivery driver orders they carry, an Owner
// orders of their restaurants.
func (s *Service) GetOrders(ctx context.Context, p auth.Principal, status *Status) GetOrdersOutput {
	var (
		list []*Order
		err  error
	)
	switch p.Role {
	case auth.RoleClient:
		list, err = s.orders.ListByCustomer(ctx, p.ID, status)
	case auth.RoleDelivery:
		list, err = s.orders.ListByDriver(ctx, p.ID, status)
	case auth.RoleOwner:
		list, err = s.orders.ListByRestaurantOwner(ctx, p.ID, status)
	default:
		return GetOrdersOutput{Output: fail("Permission denied.")}
	}
	if err != nil {
		log.Error().Err(err).Msg("get orders")
		return GetOrdersOutput{Output: fail("Could not get orders.")}
	}
	return GetOrdersOutput{Output: ok(), Orders: list}
}

func (s *Service) GetOrder(ctx context.Context, p auth.Principal, orderID int64) GetOrderOutput {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		log.Error().Err(err).Msg("get order")
		return GetOrderOutput{Output: fail("Could not load order.")}
	}
	if order == nil {
		return GetOrderOutput{Output: fail("No order with that ID.")}
	}
	if !order.IsParticipant(p) {
		return GetOrderOutput{Output: fail("Permission denied.")}
	}
	return GetOrderOutput{Output: ok(), Order: order}
}

// EditOrder requests a status transition. The transition rules live in
// ValidateTransition; on acceptance the new status is persisted and the
// resulting events are published.
func (s *Service) EditOrder(ctx context.Context, p auth.Principal, orderID int64, status Status) Output {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		log.Error().Err(err).Msg("edit order: lookup")
		return fail("Could not change status.")
	}
	if order == nil {
		return fail("Order not found.")
	}

	if err := ValidateTransition(order, status, p); err != nil {
		if errors.Is(err, ErrForbiddenTransition) {
			return fail("You cannot set that status.")
		}
		return fail("Permission denied.")
	}

	order.Status = status
	if err := s.orders.Save(ctx, order); err != nil {
		log.Error().Err(err).Msg("edit order: save")
		return fail("Could not change status.")
	}

	metrics.OrderStatusChangesTotal.WithLabelValues(string(status)).Inc()
	for _, topic := range TopicsFor(status) {
		s.events.Publish(topic, order)
	}
	return ok()
}

// TakeOrder assigns the calling driver to an order. Participants get an
// order update so they can see who is delivering.
func (s *Service) TakeOrder(ctx context.Context, driver auth.Principal, orderID int64) Output {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		log.Error().Err(err).Msg("take order: lookup")
		return fail("Could not take order.")
	}
	if order == nil {
		return fail("Order not found.")
	}
	if order.DriverID != nil {
		return fail("This order already has a driver.")
	}

	driverID := driver.ID
	order.DriverID = &driverID
	if err := s.orders.Save(ctx, order); err != nil {
		log.Error().Err(err).Msg("take order: save")
		return fail("Could not take order.")
	}

	s.events.Publish(TopicOrderUpdates, order)
	return ok()
}

// ---------------------------------------------------------------------------
// Subscriptions
// ---------------------------------------------------------------------------

// SubscribePendingOrders streams newly placed orders to the restaurant
// owner. The filter pins the stream to the subscriber's own restaurants;
// other owners' orders never cross tenants.
func (s *Service) SubscribePendingOrders(ctx context.Context, owner auth.Principal) <-chan *Order {
	ch, _ := s.events.Subscribe(ctx, TopicPendingOrders, func(o *Order) bool {
		return o.RestaurantOwnerID == owner.ID
	})
	return ch
}

// SubscribeCookedOrders streams every order that reaches Cooked. The
// stream is deliberately unfiltered: any driver may pick up any cooked
// order, marketplace-wide.
func (s *Service) SubscribeCookedOrders(ctx context.Context) <-chan *Order {
	ch, _ := s.events.Subscribe(ctx, TopicCookedOrders, nil)
	return ch
}

// SubscribeOrderUpdates streams updates for one specific order to its
// participants. The subscriber must both be a participant of the updated
// order and have asked about exactly that order.
func (s *Service) SubscribeOrderUpdates(ctx context.Context, p auth.Principal, orderID int64) <-chan *Order {
	ch, _ := s.events.Subscribe(ctx, TopicOrderUpdates, func(o *Order) bool {
		// A principal holds exactly one role, so the role-matched check
		// equals plain id membership in {customer, owner, driver}.
		return o.ID == orderID && o.IsParticipant(p)
	})
	return ch
}
