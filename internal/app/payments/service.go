// Package payments implements promotional payments by restaurant owners
// and the expiry of the promotions they buy.
package payments

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/auth"
)

// promotionPeriod is how long a restaurant stays promoted per payment.
const promotionPeriod = 7 * 24 * time.Hour

type Payment struct {
	ID            int64
	TransactionID string
	UserID        int64
	RestaurantID  int64
	CreatedAt     time.Time
}

// Repository is the persistence boundary for payments.
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByUser(ctx context.Context, userID int64) ([]*Payment, error)
}

// RestaurantStore is the slice of the restaurants repository this
// service needs: ownership lookup, promotion flag updates, and the
// expiry sweep query.
type RestaurantStore interface {
	FindByID(ctx context.Context, id int64) (*restaurants.Restaurant, error)
	Save(ctx context.Context, r *restaurants.Restaurant) error
	ListPromotedExpiredBefore(ctx context.Context, cutoff time.Time) ([]*restaurants.Restaurant, error)
}

type Output struct {
	Ok    bool
	Error string
}

type GetPaymentsOutput struct {
	Output
	Payments []*Payment
}

func ok() Output             { return Output{Ok: true} }
func fail(msg string) Output { return Output{Error: msg} }

type Service struct {
	payments    Repository
	restaurants RestaurantStore
	now         func() time.Time
}

func NewService(payments Repository, restaurantStore RestaurantStore) *Service {
	return &Service{
		payments:    payments,
		restaurants: restaurantStore,
		now:         time.Now,
	}
}

// CreatePayment records a promotion payment by the owner of restaurantID
// and promotes the restaurant for the next seven days.
func (s *Service) CreatePayment(ctx context.Context, owner auth.Principal, transactionID string, restaurantID int64) Output {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		log.Error().Err(err).Msg("create payment: restaurant lookup")
		return fail("Could not create payment.")
	}
	if restaurant == nil {
		return fail("Restaurant not found.")
	}
	if restaurant.OwnerID != owner.ID {
		return fail("You are not allowed to do this.")
	}

	payment := &Payment{
		TransactionID: transactionID,
		UserID:        owner.ID,
		RestaurantID:  restaurantID,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		log.Error().Err(err).Msg("create payment: save")
		return fail("Could not create payment.")
	}

	until := s.now().Add(promotionPeriod)
	restaurant.IsPromoted = true
	restaurant.PromotedUntil = &until
	if err := s.restaurants.Save(ctx, restaurant); err != nil {
		log.Error().Err(err).Msg("create payment: promote restaurant")
		return fail("Could not create payment.")
	}
	return ok()
}

func (s *Service) GetPayments(ctx context.Context, owner auth.Principal) GetPaymentsOutput {
	list, err := s.payments.ListByUser(ctx, owner.ID)
	if err != nil {
		log.Error().Err(err).Msg("get payments")
		return GetPaymentsOutput{Output: fail("Could not get payments.")}
	}
	return GetPaymentsOutput{Output: ok(), Payments: list}
}

// ExpirePromotions un-promotes every restaurant whose paid promotion has
// lapsed. Called periodically from the server's sweep loop.
func (s *Service) ExpirePromotions(ctx context.Context) error {
	expired, err := s.restaurants.ListPromotedExpiredBefore(ctx, s.now())
	if err != nil {
		return err
	}
	for _, restaurant := range expired {
		restaurant.IsPromoted = false
		restaurant.PromotedUntil = nil
		if err := s.restaurants.Save(ctx, restaurant); err != nil {
			log.Error().Err(err).Int64("restaurantID", restaurant.ID).Msg("expire promotion")
			continue
		}
		log.Info().Int64("restaurantID", restaurant.ID).Msg("promotion expired")
	}
	return nil
}

// RunPromotionSweep runs ExpirePromotions on every tick until ctx is
// cancelled.
func (s *Service) RunPromotionSweep(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.ExpirePromotions(ctx); err != nil {
				log.Error().Err(err).Msg("promotion sweep")
			}
		}
	}
}
