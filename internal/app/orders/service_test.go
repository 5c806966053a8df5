package orders

import (
	"context"
	"testing"
	"time"

	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/auth"
	"eats-backend/internal/pubsub"
)

// ---------------------------------------------------------------------------
// Function-field mocks
// ---------------------------------------------------------------------------

type mockOrderRepo struct {
	findByID              func(ctx context.Context, id int64) (*Order, error)
	create                func(ctx context.Context, o *Order) error
	save                  func(ctx context.Context, o *Order) error
	listByCustomer        func(ctx context.Context, customerID int64, status *Status) ([]*Order, error)
	listByDriver          func(ctx context.Context, driverID int64, status *Status) ([]*Order, error)
	listByRestaurantOwner func(ctx context.Context, ownerID int64, status *Status) ([]*Order, error)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id int64) (*Order, error) {
	return m.findByID(ctx, id)
}
func (m *mockOrderRepo) Create(ctx context.Context, o *Order) error { return m.create(ctx, o) }
func (m *mockOrderRepo) Save(ctx context.Context, o *Order) error   { return m.save(ctx, o) }
func (m *mockOrderRepo) ListByCustomer(ctx context.Context, customerID int64, status *Status) ([]*Order, error) {
	return m.listByCustomer(ctx, customerID, status)
}
func (m *mockOrderRepo) ListByDriver(ctx context.Context, driverID int64, status *Status) ([]*Order, error) {
	return m.listByDriver(ctx, driverID, status)
}
func (m *mockOrderRepo) ListByRestaurantOwner(ctx context.Context, ownerID int64, status *Status) ([]*Order, error) {
	return m.listByRestaurantOwner(ctx, ownerID, status)
}

type mockRestaurantDir struct {
	findByID func(ctx context.Context, id int64) (*restaurants.Restaurant, error)
}

func (m *mockRestaurantDir) FindByID(ctx context.Context, id int64) (*restaurants.Restaurant, error) {
	return m.findByID(ctx, id)
}

type mockDishDir struct {
	findByID func(ctx context.Context, id int64) (*restaurants.Dish, error)
}

func (m *mockDishDir) FindByID(ctx context.Context, id int64) (*restaurants.Dish, error) {
	return m.findByID(ctx, id)
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var (
	customer = auth.Principal{ID: 10, Role: auth.RoleClient}
	owner    = auth.Principal{ID: 20, Role: auth.RoleOwner}
	driver   = auth.Principal{ID: 30, Role: auth.RoleDelivery}
)

func fixedRestaurant() *restaurants.Restaurant {
	return &restaurants.Restaurant{ID: 5, OwnerID: owner.ID, Name: "Pizza Palace"}
}

func priceOf(v float64) *float64 { return &v }

func fixedDish() *restaurants.Dish {
	return &restaurants.Dish{
		ID:           100,
		RestaurantID: 5,
		Name:         "Margherita",
		Price:        10,
		Options: []restaurants.DishOption{
			{Name: "Extra cheese", ExtraPrice: priceOf(2)},
			{Name: "Size", Choices: []restaurants.OptionChoice{
				{Name: "L", ExtraPrice: priceOf(3)},
				{Name: "M"},
			}},
		},
	}
}

// newTestService wires a Service around the given mocks with a fresh bus.
// Nil mocks get panicking defaults so a test touching an unexpected
// collaborator fails loudly.
func newTestService(repo *mockOrderRepo, rdir *mockRestaurantDir, ddir *mockDishDir) (*Service, *pubsub.Bus[*Order]) {
	if repo == nil {
		repo = &mockOrderRepo{}
	}
	if rdir == nil {
		rdir = &mockRestaurantDir{findByID: func(context.Context, int64) (*restaurants.Restaurant, error) {
			return fixedRestaurant(), nil
		}}
	}
	if ddir == nil {
		ddir = &mockDishDir{findByID: func(context.Context, int64) (*restaurants.Dish, error) {
			return fixedDish(), nil
		}}
	}
	bus := pubsub.New[*Order]()
	return NewService(repo, rdir, ddir, bus), bus
}

func recvOrder(t *testing.T, ch <-chan *Order) *Order {
	t.Helper()
	select {
	case o := <-ch:
		return o
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for order event")
		return nil
	}
}

func assertNoOrder(t *testing.T, ch <-chan *Order) {
	t.Helper()
	select {
	case o := <-ch:
		t.Errorf("expected no event, got order %d", o.ID)
	default:
	}
}

// ---------------------------------------------------------------------------
// CreateOrder
// ---------------------------------------------------------------------------

func TestCreateOrder_ComputesTotalServerSide(t *testing.T) {
	var created *Order
	repo := &mockOrderRepo{create: func(_ context.Context, o *Order) error {
		o.ID = 1
		created = o
		return nil
	}}
	svc, _ := newTestService(repo, nil, nil)

	out := svc.CreateOrder(context.Background(), customer, CreateOrderInput{
		RestaurantID: 5,
		Items: []CreateOrderItem{
			{DishID: 100, Options: []ItemOption{
				{Name: "Extra cheese"},
				{Name: "Size", Choice: "L"},
			}},
			{DishID: 100},
		},
	})
	if !out.Ok {
		t.Fatalf("expected ok, got error %q", out.Error)
	}
	if out.OrderID != 1 {
		t.Errorf("expected order id 1, got %d", out.OrderID)
	}
	// 10 + 2 (option extra) + 3 (choice extra) for the first dish, 10 for
	// the second.
	if created.Total != 25 {
		t.Errorf("expected total 25, got %v", created.Total)
	}
	if created.Status != StatusPending {
		t.Errorf("expected Pending, got %s", created.Status)
	}
	if created.CustomerID != customer.ID {
		t.Errorf("expected customer %d, got %d", customer.ID, created.CustomerID)
	}
	if created.RestaurantOwnerID != owner.ID {
		t.Errorf("expected restaurant owner %d on the order, got %d", owner.ID, created.RestaurantOwnerID)
	}
	if created.Items[0].DishName != "Margherita" {
		t.Errorf("expected dish name snapshot, got %q", created.Items[0].DishName)
	}
}

func TestCreateOrder_ChoiceWithoutExtraIsFree(t *testing.T) {
	var created *Order
	repo := &mockOrderRepo{create: func(_ context.Context, o *Order) error {
		created = o
		return nil
	}}
	svc, _ := newTestService(repo, nil, nil)

	out := svc.CreateOrder(context.Background(), customer, CreateOrderInput{
		RestaurantID: 5,
		Items: []CreateOrderItem{
			{DishID: 100, Options: []ItemOption{{Name: "Size", Choice: "M"}}},
		},
	})
	if !out.Ok {
		t.Fatalf("expected ok, got error %q", out.Error)
	}
	if created.Total != 10 {
		t.Errorf("expected base price 10, got %v", created.Total)
	}
}

func TestCreateOrder_PublishesPendingOrder(t *testing.T) {
	repo := &mockOrderRepo{create: func(_ context.Context, o *Order) error {
		o.ID = 9
		return nil
	}}
	svc, _ := newTestService(repo, nil, nil)

	ownerCh := svc.SubscribePendingOrders(context.Background(), owner)
	otherOwnerCh := svc.SubscribePendingOrders(context.Background(), auth.Principal{ID: 99, Role: auth.RoleOwner})

	out := svc.CreateOrder(context.Background(), customer, CreateOrderInput{
		RestaurantID: 5,
		Items:        []CreateOrderItem{{DishID: 100}},
	})
	if !out.Ok {
		t.Fatalf("expected ok, got error %q", out.Error)
	}

	if got := recvOrder(t, ownerCh); got.ID != 9 {
		t.Errorf("restaurant owner: expected order 9, got %d", got.ID)
	}
	assertNoOrder(t, otherOwnerCh)
}

func TestCreateOrder_RestaurantNotFound(t *testing.T) {
	rdir := &mockRestaurantDir{findByID: func(context.Context, int64) (*restaurants.Restaurant, error) {
		return nil, nil
	}}
	svc, _ := newTestService(nil, rdir, nil)

	out := svc.CreateOrder(context.Background(), customer, CreateOrderInput{
		RestaurantID: 404,
		Items:        []CreateOrderItem{{DishID: 100}},
	})
	if out.Ok || out.Error != "Restaurant not found." {
		t.Errorf("expected restaurant-not-found failure, got %+v", out)
	}
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	svc, _ := newTestService(nil, nil, nil)

	out := svc.CreateOrder(context.Background(), customer, CreateOrderInput{RestaurantID: 5})
	if out.Ok || out.Error != "Order has no items." {
		t.Errorf("expected empty-items failure, got %+v", out)
	}
}

func TestCreateOrder_DishFromAnotherRestaurant(t *testing.T) {
	ddir := &mockDishDir{findByID: func(context.Context, int64) (*restaurants.Dish, error) {
		dish := fixedDish()
		dish.RestaurantID = 6
		return dish, nil
	}}
	svc, _ := newTestService(nil, nil, ddir)

	out := svc.CreateOrder(context.Background(), customer, CreateOrderInput{
		RestaurantID: 5,
		Items:        []CreateOrderItem{{DishID: 100}},
	})
	if out.Ok || out.Error != "Dish is not from that restaurant." {
		t.Errorf("expected cross-restaurant dish failure, got %+v", out)
	}
}

// ---------------------------------------------------------------------------
// GetOrders / GetOrder
// ---------------------------------------------------------------------------

func TestGetOrders_RoleScoping(t *testing.T) {
	var calledWith string
	repo := &mockOrderRepo{
		listByCustomer: func(_ context.Context, id int64, _ *Status) ([]*Order, error) {
			calledWith = "customer"
			return []*Order{{ID: 1, CustomerID: id}}, nil
		},
		listByDriver: func(_ context.Context, id int64, _ *Status) ([]*Order, error) {
			calledWith = "driver"
			return nil, nil
		},
		listByRestaurantOwner: func(_ context.Context, id int64, _ *Status) ([]*Order, error) {
			calledWith = "owner"
			return nil, nil
		},
	}
	svc, _ := newTestService(repo, nil, nil)

	out := svc.GetOrders(context.Background(), customer, nil)
	if !out.Ok || calledWith != "customer" || len(out.Orders) != 1 {
		t.Errorf("client listing: expected customer scope with 1 order, got scope=%q %+v", calledWith, out)
	}
	svc.GetOrders(context.Background(), driver, nil)
	if calledWith != "driver" {
		t.Errorf("driver listing: expected driver scope, got %q", calledWith)
	}
	svc.GetOrders(context.Background(), owner, nil)
	if calledWith != "owner" {
		t.Errorf("owner listing: expected owner scope, got %q", calledWith)
	}
}

func TestGetOrder_ParticipantsOnly(t *testing.T) {
	repo := &mockOrderRepo{findByID: func(context.Context, int64) (*Order, error) {
		return &Order{ID: 1, CustomerID: customer.ID, RestaurantOwnerID: owner.ID}, nil
	}}
	svc, _ := newTestService(repo, nil, nil)

	if out := svc.GetOrder(context.Background(), customer, 1); !out.Ok {
		t.Errorf("customer: expected ok, got %q", out.Error)
	}
	if out := svc.GetOrder(context.Background(), owner, 1); !out.Ok {
		t.Errorf("owner: expected ok, got %q", out.Error)
	}
	// The order has no driver yet, so no delivery principal may read it.
	if out := svc.GetOrder(context.Background(), driver, 1); out.Ok || out.Error != "Permission denied." {
		t.Errorf("unassigned driver: expected permission denied, got %+v", out)
	}
	stranger := auth.Principal{ID: 77, Role: auth.RoleClient}
	if out := svc.GetOrder(context.Background(), stranger, 1); out.Ok || out.Error != "Permission denied." {
		t.Errorf("stranger: expected permission denied, got %+v", out)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	repo := &mockOrderRepo{findByID: func(context.Context, int64) (*Order, error) {
		return nil, nil
	}}
	svc, _ := newTestService(repo, nil, nil)

	if out := svc.GetOrder(context.Background(), customer, 404); out.Ok || out.Error != "No order with that ID." {
		t.Errorf("expected not-found failure, got %+v", out)
	}
}

// ---------------------------------------------------------------------------
// EditOrder
// ---------------------------------------------------------------------------

func storedOrder(status Status) (*mockOrderRepo, *Order) {
	order := &Order{ID: 1, CustomerID: customer.ID, RestaurantOwnerID: owner.ID, Status: status}
	repo := &mockOrderRepo{
		findByID: func(context.Context, int64) (*Order, error) { return order, nil },
		save:     func(context.Context, *Order) error { return nil },
	}
	return repo, order
}

func TestEditOrder_OwnerCooksOrder(t *testing.T) {
	repo, order := storedOrder(StatusPending)
	svc, _ := newTestService(repo, nil, nil)

	out := svc.EditOrder(context.Background(), owner, 1, StatusCooking)
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if order.Status != StatusCooking {
		t.Errorf("expected persisted status Cooking, got %s", order.Status)
	}
}

func TestEditOrder_ClientDenied(t *testing.T) {
	repo, _ := storedOrder(StatusPending)
	svc, _ := newTestService(repo, nil, nil)

	out := svc.EditOrder(context.Background(), customer, 1, StatusDelivered)
	if out.Ok || out.Error != "Permission denied." {
		t.Errorf("expected permission denied, got %+v", out)
	}
}

func TestEditOrder_OwnerCannotDeliver(t *testing.T) {
	repo, _ := storedOrder(StatusCooked)
	svc, _ := newTestService(repo, nil, nil)

	out := svc.EditOrder(context.Background(), owner, 1, StatusDelivered)
	if out.Ok || out.Error != "You cannot set that status." {
		t.Errorf("expected transition failure, got %+v", out)
	}
}

func TestEditOrder_CookedFansOutToDrivers(t *testing.T) {
	repo, _ := storedOrder(StatusCooking)
	svc, _ := newTestService(repo, nil, nil)

	cookedCh := svc.SubscribeCookedOrders(context.Background())
	updatesCh := svc.SubscribeOrderUpdates(context.Background(), owner, 1)

	out := svc.EditOrder(context.Background(), owner, 1, StatusCooked)
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}

	if got := recvOrder(t, cookedCh); got.Status != StatusCooked {
		t.Errorf("cookedOrders: expected Cooked order, got %s", got.Status)
	}
	if got := recvOrder(t, updatesCh); got.ID != 1 {
		t.Errorf("orderUpdates: expected order 1, got %d", got.ID)
	}
}

func TestEditOrder_NonCookedStatusSkipsDrivers(t *testing.T) {
	repo, _ := storedOrder(StatusPending)
	svc, _ := newTestService(repo, nil, nil)

	cookedCh := svc.SubscribeCookedOrders(context.Background())
	updatesCh := svc.SubscribeOrderUpdates(context.Background(), owner, 1)

	if out := svc.EditOrder(context.Background(), owner, 1, StatusCooking); !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}

	if got := recvOrder(t, updatesCh); got.Status != StatusCooking {
		t.Errorf("orderUpdates: expected Cooking order, got %s", got.Status)
	}
	assertNoOrder(t, cookedCh)
}

func TestEditOrder_RejectedTransitionPublishesNothing(t *testing.T) {
	repo, order := storedOrder(StatusPending)
	svc, _ := newTestService(repo, nil, nil)

	updatesCh := svc.SubscribeOrderUpdates(context.Background(), owner, 1)

	if out := svc.EditOrder(context.Background(), owner, 1, StatusDelivered); out.Ok {
		t.Fatal("expected rejection")
	}
	if order.Status != StatusPending {
		t.Errorf("expected status unchanged, got %s", order.Status)
	}
	assertNoOrder(t, updatesCh)
}

// ---------------------------------------------------------------------------
// TakeOrder
// ---------------------------------------------------------------------------

func TestTakeOrder_AssignsDriver(t *testing.T) {
	repo, order := storedOrder(StatusCooked)
	svc, _ := newTestService(repo, nil, nil)

	updatesCh := svc.SubscribeOrderUpdates(context.Background(), customer, 1)

	out := svc.TakeOrder(context.Background(), driver, 1)
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if order.DriverID == nil || *order.DriverID != driver.ID {
		t.Errorf("expected driver %d assigned, got %v", driver.ID, order.DriverID)
	}
	if got := recvOrder(t, updatesCh); got.ID != 1 {
		t.Errorf("expected participants notified of order 1, got %d", got.ID)
	}
}

func TestTakeOrder_AlreadyAssigned(t *testing.T) {
	repo, order := storedOrder(StatusCooked)
	other := int64(31)
	order.DriverID = &other
	svc, _ := newTestService(repo, nil, nil)

	out := svc.TakeOrder(context.Background(), driver, 1)
	if out.Ok || out.Error != "This order already has a driver." {
		t.Errorf("expected already-assigned failure, got %+v", out)
	}
	if *order.DriverID != other {
		t.Errorf("expected driver unchanged, got %d", *order.DriverID)
	}
}

// ---------------------------------------------------------------------------
// Subscription filters
// ---------------------------------------------------------------------------

func TestSubscribeOrderUpdates_DisjointStreams(t *testing.T) {
	orderOne := &Order{ID: 1, CustomerID: customer.ID, RestaurantOwnerID: owner.ID, Status: StatusPending}
	orderTwo := &Order{ID: 2, CustomerID: customer.ID, RestaurantOwnerID: owner.ID, Status: StatusPending}
	repo := &mockOrderRepo{
		findByID: func(_ context.Context, id int64) (*Order, error) {
			if id == 1 {
				return orderOne, nil
			}
			return orderTwo, nil
		},
		save: func(context.Context, *Order) error { return nil },
	}
	svc, _ := newTestService(repo, nil, nil)

	streamOne := svc.SubscribeOrderUpdates(context.Background(), customer, 1)
	streamTwo := svc.SubscribeOrderUpdates(context.Background(), customer, 2)

	if out := svc.EditOrder(context.Background(), owner, 2, StatusCooking); !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}

	if got := recvOrder(t, streamTwo); got.ID != 2 {
		t.Errorf("stream for order 2: expected order 2, got %d", got.ID)
	}
	assertNoOrder(t, streamOne)
}

func TestSubscribeOrderUpdates_NonParticipantSeesNothing(t *testing.T) {
	repo, _ := storedOrder(StatusPending)
	svc, _ := newTestService(repo, nil, nil)

	stranger := auth.Principal{ID: 77, Role: auth.RoleClient}
	strangerCh := svc.SubscribeOrderUpdates(context.Background(), stranger, 1)

	if out := svc.EditOrder(context.Background(), owner, 1, StatusCooking); !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	assertNoOrder(t, strangerCh)
}

func TestSubscribePendingOrders_TenantIsolation(t *testing.T) {
	svc, bus := newTestService(nil, nil, nil)

	mine := svc.SubscribePendingOrders(context.Background(), owner)
	theirs := svc.SubscribePendingOrders(context.Background(), auth.Principal{ID: 99, Role: auth.RoleOwner})

	bus.Publish(TopicPendingOrders, &Order{ID: 3, RestaurantOwnerID: owner.ID})

	if got := recvOrder(t, mine); got.ID != 3 {
		t.Errorf("expected order 3 on owner's stream, got %d", got.ID)
	}
	assertNoOrder(t, theirs)
}
