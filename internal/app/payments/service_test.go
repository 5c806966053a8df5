package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/auth"
)

// ---------------------------------------------------------------------------
// Function-field mocks
// ---------------------------------------------------------------------------

type mockPaymentRepo struct {
	create     func(ctx context.Context, p *Payment) error
	listByUser func(ctx context.Context, userID int64) ([]*Payment, error)
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *Payment) error { return m.create(ctx, p) }
func (m *mockPaymentRepo) ListByUser(ctx context.Context, userID int64) ([]*Payment, error) {
	return m.listByUser(ctx, userID)
}

type mockRestaurantStore struct {
	findByID                  func(ctx context.Context, id int64) (*restaurants.Restaurant, error)
	save                      func(ctx context.Context, r *restaurants.Restaurant) error
	listPromotedExpiredBefore func(ctx context.Context, cutoff time.Time) ([]*restaurants.Restaurant, error)
}

func (m *mockRestaurantStore) FindByID(ctx context.Context, id int64) (*restaurants.Restaurant, error) {
	return m.findByID(ctx, id)
}
func (m *mockRestaurantStore) Save(ctx context.Context, r *restaurants.Restaurant) error {
	return m.save(ctx, r)
}
func (m *mockRestaurantStore) ListPromotedExpiredBefore(ctx context.Context, cutoff time.Time) ([]*restaurants.Restaurant, error) {
	return m.listPromotedExpiredBefore(ctx, cutoff)
}

var owner = auth.Principal{ID: 20, Role: auth.RoleOwner}

// ---------------------------------------------------------------------------
// CreatePayment
// ---------------------------------------------------------------------------

func TestCreatePayment_PromotesRestaurant(t *testing.T) {
	restaurant := &restaurants.Restaurant{ID: 5, OwnerID: owner.ID}
	store := &mockRestaurantStore{
		findByID: func(context.Context, int64) (*restaurants.Restaurant, error) { return restaurant, nil },
		save:     func(context.Context, *restaurants.Restaurant) error { return nil },
	}
	var recorded *Payment
	payments := &mockPaymentRepo{create: func(_ context.Context, p *Payment) error {
		recorded = p
		return nil
	}}
	svc := NewService(payments, store)
	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return paidAt }

	out := svc.CreatePayment(context.Background(), owner, "tx-123", 5)
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if recorded.TransactionID != "tx-123" || recorded.UserID != owner.ID || recorded.RestaurantID != 5 {
		t.Errorf("unexpected payment recorded: %+v", recorded)
	}
	if !restaurant.IsPromoted {
		t.Error("expected restaurant promoted")
	}
	want := paidAt.Add(7 * 24 * time.Hour)
	if restaurant.PromotedUntil == nil || !restaurant.PromotedUntil.Equal(want) {
		t.Errorf("expected promotion until %v, got %v", want, restaurant.PromotedUntil)
	}
}

func TestCreatePayment_NotYourRestaurant(t *testing.T) {
	store := &mockRestaurantStore{
		findByID: func(context.Context, int64) (*restaurants.Restaurant, error) {
			return &restaurants.Restaurant{ID: 5, OwnerID: 99}, nil
		},
	}
	created := false
	payments := &mockPaymentRepo{create: func(context.Context, *Payment) error {
		created = true
		return nil
	}}
	svc := NewService(payments, store)

	out := svc.CreatePayment(context.Background(), owner, "tx-123", 5)
	if out.Ok || out.Error != "You are not allowed to do this." {
		t.Errorf("expected ownership failure, got %+v", out)
	}
	if created {
		t.Error("no payment may be recorded for someone else's restaurant")
	}
}

func TestCreatePayment_RestaurantNotFound(t *testing.T) {
	store := &mockRestaurantStore{
		findByID: func(context.Context, int64) (*restaurants.Restaurant, error) { return nil, nil },
	}
	svc := NewService(&mockPaymentRepo{}, store)

	out := svc.CreatePayment(context.Background(), owner, "tx-123", 404)
	if out.Ok || out.Error != "Restaurant not found." {
		t.Errorf("expected not-found failure, got %+v", out)
	}
}

// ---------------------------------------------------------------------------
// GetPayments
// ---------------------------------------------------------------------------

func TestGetPayments_ScopedToCaller(t *testing.T) {
	payments := &mockPaymentRepo{listByUser: func(_ context.Context, userID int64) ([]*Payment, error) {
		if userID != owner.ID {
			t.Errorf("expected listing for user %d, got %d", owner.ID, userID)
		}
		return []*Payment{{ID: 1, UserID: userID}}, nil
	}}
	svc := NewService(payments, &mockRestaurantStore{})

	out := svc.GetPayments(context.Background(), owner)
	if !out.Ok || len(out.Payments) != 1 {
		t.Errorf("expected 1 payment, got %+v", out)
	}
}

// ---------------------------------------------------------------------------
// Promotion expiry
// ---------------------------------------------------------------------------

func TestExpirePromotions(t *testing.T) {
	until := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	expired := &restaurants.Restaurant{ID: 5, IsPromoted: true, PromotedUntil: &until}
	var saved []*restaurants.Restaurant
	store := &mockRestaurantStore{
		listPromotedExpiredBefore: func(context.Context, time.Time) ([]*restaurants.Restaurant, error) {
			return []*restaurants.Restaurant{expired}, nil
		},
		save: func(_ context.Context, r *restaurants.Restaurant) error {
			saved = append(saved, r)
			return nil
		},
	}
	svc := NewService(&mockPaymentRepo{}, store)

	if err := svc.ExpirePromotions(context.Background()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected 1 restaurant saved, got %d", len(saved))
	}
	if expired.IsPromoted || expired.PromotedUntil != nil {
		t.Errorf("expected promotion cleared, got %+v", expired)
	}
}

func TestExpirePromotions_SaveFailureContinues(t *testing.T) {
	a := &restaurants.Restaurant{ID: 1, IsPromoted: true}
	b := &restaurants.Restaurant{ID: 2, IsPromoted: true}
	store := &mockRestaurantStore{
		listPromotedExpiredBefore: func(context.Context, time.Time) ([]*restaurants.Restaurant, error) {
			return []*restaurants.Restaurant{a, b}, nil
		},
		save: func(_ context.Context, r *restaurants.Restaurant) error {
			if r.ID == 1 {
				return errors.New("write failed")
			}
			return nil
		},
	}
	svc := NewService(&mockPaymentRepo{}, store)

	if err := svc.ExpirePromotions(context.Background()); err != nil {
		t.Fatalf("expected sweep to absorb save failures, got: %v", err)
	}
	if b.IsPromoted {
		t.Error("expected second restaurant still processed")
	}
}

func TestRunPromotionSweep_StopsOnCancel(t *testing.T) {
	store := &mockRestaurantStore{
		listPromotedExpiredBefore: func(context.Context, time.Time) ([]*restaurants.Restaurant, error) {
			return nil, nil
		},
	}
	svc := NewService(&mockPaymentRepo{}, store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.RunPromotionSweep(ctx, time.Millisecond) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("sweep loop did not stop on cancel")
	}
}
