package graph_test

import (
	"context"
	"testing"
	"time"

	"eats-backend/graph"
	"eats-backend/graph/model"
	"eats-backend/internal/app/orders"
	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
)

// ---------------------------------------------------------------------------
// Mock services
// ---------------------------------------------------------------------------

// Each method field can be overridden per test; the zero value returns an
// empty result.

type mockUsers struct {
	createAccountFn func(ctx context.Context, in users.CreateAccountInput) users.Output
	loginFn         func(ctx context.Context, email, password string) users.LoginOutput
	findByIDFn      func(ctx context.Context, id int64) users.UserOutput
	editProfileFn   func(ctx context.Context, p auth.Principal, in users.EditProfileInput) users.Output
	verifyEmailFn   func(ctx context.Context, code string) users.Output
}

func (m *mockUsers) CreateAccount(ctx context.Context, in users.CreateAccountInput) users.Output {
	if m.createAccountFn != nil {
		return m.createAccountFn(ctx, in)
	}
	return users.Output{}
}

func (m *mockUsers) Login(ctx context.Context, email, password string) users.LoginOutput {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return users.LoginOutput{}
}

func (m *mockUsers) FindByID(ctx context.Context, id int64) users.UserOutput {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return users.UserOutput{}
}

func (m *mockUsers) EditProfile(ctx context.Context, p auth.Principal, in users.EditProfileInput) users.Output {
	if m.editProfileFn != nil {
		return m.editProfileFn(ctx, p, in)
	}
	return users.Output{}
}

func (m *mockUsers) VerifyEmail(ctx context.Context, code string) users.Output {
	if m.verifyEmailFn != nil {
		return m.verifyEmailFn(ctx, code)
	}
	return users.Output{}
}

type mockRestaurants struct {
	graph.RestaurantsService

	allRestaurantsFn func(ctx context.Context, page int) restaurants.RestaurantsOutput
	createFn         func(ctx context.Context, owner auth.Principal, in restaurants.CreateRestaurantInput) restaurants.CreateRestaurantOutput
	menuFn           func(ctx context.Context, restaurantID int64) []*restaurants.Dish
}

func (m *mockRestaurants) AllRestaurants(ctx context.Context, page int) restaurants.RestaurantsOutput {
	if m.allRestaurantsFn != nil {
		return m.allRestaurantsFn(ctx, page)
	}
	return restaurants.RestaurantsOutput{}
}

func (m *mockRestaurants) CreateRestaurant(ctx context.Context, owner auth.Principal, in restaurants.CreateRestaurantInput) restaurants.CreateRestaurantOutput {
	if m.createFn != nil {
		return m.createFn(ctx, owner, in)
	}
	return restaurants.CreateRestaurantOutput{}
}

func (m *mockRestaurants) Menu(ctx context.Context, restaurantID int64) []*restaurants.Dish {
	if m.menuFn != nil {
		return m.menuFn(ctx, restaurantID)
	}
	return nil
}

type mockOrders struct {
	graph.OrdersService

	createOrderFn  func(ctx context.Context, customer auth.Principal, in orders.CreateOrderInput) orders.CreateOrderOutput
	editOrderFn    func(ctx context.Context, p auth.Principal, orderID int64, status orders.Status) orders.Output
	subscribeAllFn func(ctx context.Context) <-chan *orders.Order
}

func (m *mockOrders) CreateOrder(ctx context.Context, customer auth.Principal, in orders.CreateOrderInput) orders.CreateOrderOutput {
	if m.createOrderFn != nil {
		return m.createOrderFn(ctx, customer, in)
	}
	return orders.CreateOrderOutput{}
}

func (m *mockOrders) EditOrder(ctx context.Context, p auth.Principal, orderID int64, status orders.Status) orders.Output {
	if m.editOrderFn != nil {
		return m.editOrderFn(ctx, p, orderID, status)
	}
	return orders.Output{}
}

func (m *mockOrders) SubscribeCookedOrders(ctx context.Context) <-chan *orders.Order {
	if m.subscribeAllFn != nil {
		return m.subscribeAllFn(ctx)
	}
	ch := make(chan *orders.Order)
	close(ch)
	return ch
}

type mockPayments struct {
	graph.PaymentsService
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

func clientCtx() context.Context {
	return auth.WithPrincipal(context.Background(), auth.Principal{ID: 10, Role: auth.RoleClient})
}

func anonymousCtx() context.Context {
	return context.Background()
}

func newResolver(u *mockUsers, r *mockRestaurants, o *mockOrders) *graph.Resolver {
	if u == nil {
		u = &mockUsers{}
	}
	if r == nil {
		r = &mockRestaurants{}
	}
	if o == nil {
		o = &mockOrders{}
	}
	return &graph.Resolver{Users: u, Restaurants: r, Orders: o, Payments: &mockPayments{}}
}

// ---------------------------------------------------------------------------
// Principal-requiring resolvers reject anonymous contexts
// ---------------------------------------------------------------------------

func TestMeResolver_Unauthenticated(t *testing.T) {
	r := newResolver(nil, nil, nil)
	if _, err := r.Query().Me(anonymousCtx()); err == nil {
		t.Fatal("expected unauthenticated error, got nil")
	}
}

func TestCreateOrderResolver_Unauthenticated(t *testing.T) {
	r := newResolver(nil, nil, nil)
	_, err := r.Mutation().CreateOrder(anonymousCtx(), model.CreateOrderInput{RestaurantID: 5})
	if err == nil {
		t.Fatal("expected unauthenticated error, got nil")
	}
}

func TestPendingOrdersResolver_Unauthenticated(t *testing.T) {
	r := newResolver(nil, nil, nil)
	if _, err := r.Subscription().PendingOrders(anonymousCtx()); err == nil {
		t.Fatal("expected unauthenticated error, got nil")
	}
}

// ---------------------------------------------------------------------------
// Input/output mapping
// ---------------------------------------------------------------------------

func TestCreateAccountResolver_MapsRole(t *testing.T) {
	var got users.CreateAccountInput
	u := &mockUsers{createAccountFn: func(_ context.Context, in users.CreateAccountInput) users.Output {
		got = in
		return users.Output{Ok: true}
	}}
	r := newResolver(u, nil, nil)

	out, err := r.Mutation().CreateAccount(anonymousCtx(), model.CreateAccountInput{
		Email:    "client@example.com",
		Password: "pa55word",
		Role:     model.UserRoleDelivery,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !out.Ok || out.Error != nil {
		t.Errorf("expected ok output, got %+v", out)
	}
	if got.Role != auth.RoleDelivery || got.Email != "client@example.com" {
		t.Errorf("unexpected service input: %+v", got)
	}
}

func TestLoginResolver_MapsToken(t *testing.T) {
	u := &mockUsers{loginFn: func(context.Context, string, string) users.LoginOutput {
		return users.LoginOutput{Output: users.Output{Ok: true}, Token: "signed-token"}
	}}
	r := newResolver(u, nil, nil)

	out, err := r.Mutation().Login(anonymousCtx(), model.LoginInput{Email: "x", Password: "y"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out.Token == nil || *out.Token != "signed-token" {
		t.Errorf("expected token passed through, got %v", out.Token)
	}
}

func TestLoginResolver_FailureHasNilToken(t *testing.T) {
	u := &mockUsers{loginFn: func(context.Context, string, string) users.LoginOutput {
		return users.LoginOutput{Output: users.Output{Error: "Invalid credentials."}}
	}}
	r := newResolver(u, nil, nil)

	out, err := r.Mutation().Login(anonymousCtx(), model.LoginInput{Email: "x", Password: "y"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out.Ok || out.Token != nil {
		t.Errorf("expected failed login without token, got %+v", out)
	}
	if out.Error == nil || *out.Error != "Invalid credentials." {
		t.Errorf("expected error message, got %v", out.Error)
	}
}

func TestCreateOrderResolver_MapsItems(t *testing.T) {
	var got orders.CreateOrderInput
	o := &mockOrders{createOrderFn: func(_ context.Context, customer auth.Principal, in orders.CreateOrderInput) orders.CreateOrderOutput {
		if customer.ID != 10 {
			t.Errorf("expected principal 10, got %d", customer.ID)
		}
		got = in
		return orders.CreateOrderOutput{Output: orders.Output{Ok: true}, OrderID: 9}
	}}
	r := newResolver(nil, nil, o)

	choice := "L"
	out, err := r.Mutation().CreateOrder(clientCtx(), model.CreateOrderInput{
		RestaurantID: 5,
		Items: []*model.CreateOrderItemInput{
			{DishID: 100, Options: []*model.OrderItemOptionInput{{Name: "Size", Choice: &choice}}},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out.OrderID == nil || *out.OrderID != 9 {
		t.Errorf("expected order id 9, got %v", out.OrderID)
	}
	if len(got.Items) != 1 || got.Items[0].DishID != 100 {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
	if len(got.Items[0].Options) != 1 || got.Items[0].Options[0].Choice != "L" {
		t.Errorf("unexpected options: %+v", got.Items[0].Options)
	}
}

func TestEditOrderResolver_MapsStatus(t *testing.T) {
	var gotStatus orders.Status
	o := &mockOrders{editOrderFn: func(_ context.Context, _ auth.Principal, _ int64, status orders.Status) orders.Output {
		gotStatus = status
		return orders.Output{Ok: true}
	}}
	r := newResolver(nil, nil, o)

	_, err := r.Mutation().EditOrder(clientCtx(), model.EditOrderInput{ID: 1, Status: model.OrderStatusPickedUp})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotStatus != orders.StatusPickedUp {
		t.Errorf("expected PickedUp, got %s", gotStatus)
	}
}

func TestRestaurantsResolver_DefaultsPage(t *testing.T) {
	var gotPage int
	rs := &mockRestaurants{allRestaurantsFn: func(_ context.Context, page int) restaurants.RestaurantsOutput {
		gotPage = page
		return restaurants.RestaurantsOutput{
			Output:      restaurants.Output{Ok: true},
			Restaurants: []*restaurants.Restaurant{{ID: 1, Name: "Pizza Palace"}},
			TotalPages:  1,
			TotalItems:  1,
		}
	}}
	r := newResolver(nil, rs, nil)

	out, err := r.Query().Restaurants(anonymousCtx(), nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotPage != 1 {
		t.Errorf("expected nil page to default to 1, got %d", gotPage)
	}
	if len(out.Restaurants) != 1 || out.Restaurants[0].Name != "Pizza Palace" {
		t.Errorf("unexpected restaurants: %+v", out.Restaurants)
	}
	if out.TotalPages == nil || *out.TotalPages != 1 {
		t.Errorf("expected totalPages 1, got %v", out.TotalPages)
	}
}

func TestMenuFieldResolver(t *testing.T) {
	rs := &mockRestaurants{menuFn: func(_ context.Context, restaurantID int64) []*restaurants.Dish {
		if restaurantID != 5 {
			t.Errorf("expected menu for restaurant 5, got %d", restaurantID)
		}
		return []*restaurants.Dish{{ID: 100, Name: "Margherita", Price: 10}}
	}}
	r := newResolver(nil, rs, nil)

	dishes, err := r.Restaurant().Menu(anonymousCtx(), &model.Restaurant{ID: 5})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(dishes) != 1 || dishes[0].Name != "Margherita" {
		t.Errorf("unexpected menu: %+v", dishes)
	}
}

// ---------------------------------------------------------------------------
// Subscriptions
// ---------------------------------------------------------------------------

func TestCookedOrdersResolver_ConvertsStream(t *testing.T) {
	src := make(chan *orders.Order, 1)
	o := &mockOrders{subscribeAllFn: func(context.Context) <-chan *orders.Order { return src }}
	r := newResolver(nil, nil, o)

	ctx := auth.WithPrincipal(context.Background(), auth.Principal{ID: 30, Role: auth.RoleDelivery})
	stream, err := r.Subscription().CookedOrders(ctx)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	src <- &orders.Order{ID: 9, Status: orders.StatusCooked, Total: 25}
	select {
	case got := <-stream:
		if got.ID != 9 || got.Status != model.OrderStatusCooked {
			t.Errorf("unexpected model order: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for converted order")
	}

	close(src)
	select {
	case _, ok := <-stream:
		if ok {
			t.Error("expected stream closed after source close")
		}
	case <-time.After(time.Second):
		t.Fatal("stream not closed after source close")
	}
}

// ---------------------------------------------------------------------------
// Policy table
// ---------------------------------------------------------------------------

func TestPolicies_RoleAssignments(t *testing.T) {
	policies := graph.Policies()

	cases := []struct {
		operation string
		roles     []auth.Role
	}{
		{"me", []auth.Role{auth.RoleAny}},
		{"getOrder", []auth.Role{auth.RoleAny}},
		{"editOrder", []auth.Role{auth.RoleAny}},
		{"orderUpdates", []auth.Role{auth.RoleAny}},
		{"createOrder", []auth.Role{auth.RoleClient}},
		{"createRestaurant", []auth.Role{auth.RoleOwner}},
		{"createDish", []auth.Role{auth.RoleOwner}},
		{"pendingOrders", []auth.Role{auth.RoleOwner}},
		{"createPayment", []auth.Role{auth.RoleOwner}},
		{"takeOrder", []auth.Role{auth.RoleDelivery}},
		{"cookedOrders", []auth.Role{auth.RoleDelivery}},
	}
	for _, tc := range cases {
		roles, ok := policies.PolicyFor(tc.operation)
		if !ok {
			t.Errorf("%s: expected a policy entry", tc.operation)
			continue
		}
		if len(roles) != len(tc.roles) {
			t.Errorf("%s: expected roles %v, got %v", tc.operation, tc.roles, roles)
			continue
		}
		for i := range roles {
			if roles[i] != tc.roles[i] {
				t.Errorf("%s: expected roles %v, got %v", tc.operation, tc.roles, roles)
			}
		}
	}

	// Signup, login and browsing stay public.
	for _, operation := range []string{"createAccount", "login", "restaurants", "searchRestaurant", "allCategories", "category", "restaurant", "verifyEmail"} {
		if _, ok := policies.PolicyFor(operation); ok {
			t.Errorf("%s: expected public (no policy entry)", operation)
		}
	}
}
