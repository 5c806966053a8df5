package restaurants

import (
	"context"
	"testing"

	"eats-backend/internal/auth"
)

// ---------------------------------------------------------------------------
// Function-field mocks
// ---------------------------------------------------------------------------

type mockRestaurantRepo struct {
	findByID        func(ctx context.Context, id int64) (*Restaurant, error)
	create          func(ctx context.Context, r *Restaurant) error
	save            func(ctx context.Context, r *Restaurant) error
	delete          func(ctx context.Context, id int64) error
	list            func(ctx context.Context, page int) ([]*Restaurant, int64, error)
	listByCategory  func(ctx context.Context, categoryID int64, page int) ([]*Restaurant, int64, error)
	listByOwner     func(ctx context.Context, ownerID int64) ([]*Restaurant, error)
	search          func(ctx context.Context, query string, page int) ([]*Restaurant, int64, error)
	countByCategory func(ctx context.Context, categoryID int64) (int64, error)
}

func (m *mockRestaurantRepo) FindByID(ctx context.Context, id int64) (*Restaurant, error) {
	return m.findByID(ctx, id)
}
func (m *mockRestaurantRepo) Create(ctx context.Context, r *Restaurant) error {
	return m.create(ctx, r)
}
func (m *mockRestaurantRepo) Save(ctx context.Context, r *Restaurant) error { return m.save(ctx, r) }
func (m *mockRestaurantRepo) Delete(ctx context.Context, id int64) error    { return m.delete(ctx, id) }
func (m *mockRestaurantRepo) List(ctx context.Context, page int) ([]*Restaurant, int64, error) {
	return m.list(ctx, page)
}
func (m *mockRestaurantRepo) ListByCategory(ctx context.Context, categoryID int64, page int) ([]*Restaurant, int64, error) {
	return m.listByCategory(ctx, categoryID, page)
}
func (m *mockRestaurantRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*Restaurant, error) {
	return m.listByOwner(ctx, ownerID)
}
func (m *mockRestaurantRepo) Search(ctx context.Context, query string, page int) ([]*Restaurant, int64, error) {
	return m.search(ctx, query, page)
}
func (m *mockRestaurantRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return m.countByCategory(ctx, categoryID)
}

type mockCategoryRepo struct {
	getOrCreate func(ctx context.Context, name string) (*Category, error)
	all         func(ctx context.Context) ([]*Category, error)
	findBySlug  func(ctx context.Context, slug string) (*Category, error)
}

func (m *mockCategoryRepo) GetOrCreate(ctx context.Context, name string) (*Category, error) {
	return m.getOrCreate(ctx, name)
}
func (m *mockCategoryRepo) All(ctx context.Context) ([]*Category, error) { return m.all(ctx) }
func (m *mockCategoryRepo) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	return m.findBySlug(ctx, slug)
}

type mockDishRepo struct {
	findByID         func(ctx context.Context, id int64) (*Dish, error)
	create           func(ctx context.Context, d *Dish) error
	save             func(ctx context.Context, d *Dish) error
	delete           func(ctx context.Context, id int64) error
	listByRestaurant func(ctx context.Context, restaurantID int64) ([]*Dish, error)
}

func (m *mockDishRepo) FindByID(ctx context.Context, id int64) (*Dish, error) {
	return m.findByID(ctx, id)
}
func (m *mockDishRepo) Create(ctx context.Context, d *Dish) error { return m.create(ctx, d) }
func (m *mockDishRepo) Save(ctx context.Context, d *Dish) error   { return m.save(ctx, d) }
func (m *mockDishRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockDishRepo) ListByRestaurant(ctx context.Context, restaurantID int64) ([]*Dish, error) {
	return m.listByRestaurant(ctx, restaurantID)
}

var (
	owner      = auth.Principal{ID: 20, Role: auth.RoleOwner}
	otherOwner = auth.Principal{ID: 21, Role: auth.RoleOwner}
)

// ---------------------------------------------------------------------------
// Restaurants
// ---------------------------------------------------------------------------

func TestCreateRestaurant(t *testing.T) {
	var created *Restaurant
	repo := &mockRestaurantRepo{create: func(_ context.Context, r *Restaurant) error {
		r.ID = 5
		created = r
		return nil
	}}
	categories := &mockCategoryRepo{getOrCreate: func(_ context.Context, name string) (*Category, error) {
		if name != "Pizza" {
			t.Errorf("expected category lookup for %q, got %q", "Pizza", name)
		}
		return &Category{ID: 3, Name: name, Slug: "pizza"}, nil
	}}
	svc := NewService(repo, categories, &mockDishRepo{})

	out := svc.CreateRestaurant(context.Background(), owner, CreateRestaurantInput{
		Name:         "Pizza Palace",
		Address:      "1 Main St",
		CategoryName: "Pizza",
	})
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if out.RestaurantID != 5 {
		t.Errorf("expected restaurant id 5, got %d", out.RestaurantID)
	}
	if created.OwnerID != owner.ID {
		t.Errorf("expected owner %d, got %d", owner.ID, created.OwnerID)
	}
	if created.CategoryID != 3 {
		t.Errorf("expected category 3, got %d", created.CategoryID)
	}
}

func TestEditRestaurant_OwnershipEnforced(t *testing.T) {
	repo := &mockRestaurantRepo{
		findByID: func(context.Context, int64) (*Restaurant, error) {
			return &Restaurant{ID: 5, OwnerID: owner.ID}, nil
		},
	}
	svc := NewService(repo, &mockCategoryRepo{}, &mockDishRepo{})

	name := "New Name"
	out := svc.EditRestaurant(context.Background(), otherOwner, EditRestaurantInput{RestaurantID: 5, Name: &name})
	if out.Ok || out.Error != "You cannot edit a restaurant that is not yours." {
		t.Errorf("expected ownership failure, got %+v", out)
	}
}

func TestEditRestaurant_PartialUpdate(t *testing.T) {
	restaurant := &Restaurant{ID: 5, OwnerID: owner.ID, Name: "Old", Address: "1 Main St", CategoryID: 3}
	repo := &mockRestaurantRepo{
		findByID: func(context.Context, int64) (*Restaurant, error) { return restaurant, nil },
		save:     func(context.Context, *Restaurant) error { return nil },
	}
	svc := NewService(repo, &mockCategoryRepo{}, &mockDishRepo{})

	name := "New Name"
	out := svc.EditRestaurant(context.Background(), owner, EditRestaurantInput{RestaurantID: 5, Name: &name})
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if restaurant.Name != "New Name" {
		t.Errorf("expected name updated, got %q", restaurant.Name)
	}
	if restaurant.Address != "1 Main St" || restaurant.CategoryID != 3 {
		t.Error("omitted fields must stay untouched")
	}
}

func TestDeleteRestaurant_OwnershipEnforced(t *testing.T) {
	deleted := false
	repo := &mockRestaurantRepo{
		findByID: func(context.Context, int64) (*Restaurant, error) {
			return &Restaurant{ID: 5, OwnerID: owner.ID}, nil
		},
		delete: func(context.Context, int64) error { deleted = true; return nil },
	}
	svc := NewService(repo, &mockCategoryRepo{}, &mockDishRepo{})

	if out := svc.DeleteRestaurant(context.Background(), otherOwner, 5); out.Ok {
		t.Error("expected deletion by non-owner rejected")
	}
	if deleted {
		t.Fatal("repository delete must not run for a non-owner")
	}
	if out := svc.DeleteRestaurant(context.Background(), owner, 5); !out.Ok {
		t.Errorf("expected owner deletion ok, got %q", out.Error)
	}
	if !deleted {
		t.Error("expected repository delete to run")
	}
}

func TestAllRestaurants_Pagination(t *testing.T) {
	var requestedPage int
	repo := &mockRestaurantRepo{
		list: func(_ context.Context, page int) ([]*Restaurant, int64, error) {
			requestedPage = page
			return []*Restaurant{{ID: 1}}, 31, nil
		},
	}
	svc := NewService(repo, &mockCategoryRepo{}, &mockDishRepo{})

	out := svc.AllRestaurants(context.Background(), 2)
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if requestedPage != 2 {
		t.Errorf("expected page 2 requested, got %d", requestedPage)
	}
	// 31 items at 15 per page is 3 pages.
	if out.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", out.TotalPages)
	}
	if out.TotalItems != 31 {
		t.Errorf("expected 31 total items, got %d", out.TotalItems)
	}
}

func TestAllRestaurants_PageFloor(t *testing.T) {
	var requestedPage int
	repo := &mockRestaurantRepo{
		list: func(_ context.Context, page int) ([]*Restaurant, int64, error) {
			requestedPage = page
			return nil, 0, nil
		},
	}
	svc := NewService(repo, &mockCategoryRepo{}, &mockDishRepo{})

	svc.AllRestaurants(context.Background(), 0)
	if requestedPage != 1 {
		t.Errorf("expected page floored to 1, got %d", requestedPage)
	}
}

func TestMyRestaurant_OtherOwnersHidden(t *testing.T) {
	repo := &mockRestaurantRepo{
		findByID: func(context.Context, int64) (*Restaurant, error) {
			return &Restaurant{ID: 5, OwnerID: owner.ID}, nil
		},
	}
	svc := NewService(repo, &mockCategoryRepo{}, &mockDishRepo{})

	if out := svc.MyRestaurant(context.Background(), owner, 5); !out.Ok {
		t.Errorf("owner: expected ok, got %q", out.Error)
	}
	// Another owner gets the same answer as for a missing restaurant.
	out := svc.MyRestaurant(context.Background(), otherOwner, 5)
	if out.Ok || out.Error != "Restaurant not found." {
		t.Errorf("other owner: expected not-found, got %+v", out)
	}
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

func TestFindCategoryBySlug(t *testing.T) {
	categories := &mockCategoryRepo{
		findBySlug: func(_ context.Context, slug string) (*Category, error) {
			if slug != "fast-food" {
				return nil, nil
			}
			return &Category{ID: 3, Name: "Fast Food", Slug: slug}, nil
		},
	}
	repo := &mockRestaurantRepo{
		listByCategory: func(_ context.Context, categoryID int64, page int) ([]*Restaurant, int64, error) {
			if categoryID != 3 {
				t.Errorf("expected listing for category 3, got %d", categoryID)
			}
			return []*Restaurant{{ID: 1}, {ID: 2}}, 2, nil
		},
	}
	svc := NewService(repo, categories, &mockDishRepo{})

	out := svc.FindCategoryBySlug(context.Background(), "fast-food", 1)
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if len(out.Restaurants) != 2 || out.TotalPages != 1 {
		t.Errorf("expected 2 restaurants on 1 page, got %d on %d", len(out.Restaurants), out.TotalPages)
	}

	missing := svc.FindCategoryBySlug(context.Background(), "nope", 1)
	if missing.Ok || missing.Error != "No category with that slug." {
		t.Errorf("expected slug miss, got %+v", missing)
	}
}

// ---------------------------------------------------------------------------
// Dishes
// ---------------------------------------------------------------------------

func dishFixtures() (*mockRestaurantRepo, *mockDishRepo, *Dish) {
	dish := &Dish{ID: 100, RestaurantID: 5, Name: "Margherita", Price: 10}
	restaurantRepo := &mockRestaurantRepo{
		findByID: func(context.Context, int64) (*Restaurant, error) {
			return &Restaurant{ID: 5, OwnerID: owner.ID}, nil
		},
	}
	dishRepo := &mockDishRepo{
		findByID: func(context.Context, int64) (*Dish, error) { return dish, nil },
		save:     func(context.Context, *Dish) error { return nil },
		delete:   func(context.Context, int64) error { return nil },
	}
	return restaurantRepo, dishRepo, dish
}

func TestCreateDish(t *testing.T) {
	restaurantRepo, dishRepo, _ := dishFixtures()
	var created *Dish
	dishRepo.create = func(_ context.Context, d *Dish) error {
		created = d
		return nil
	}
	svc := NewService(restaurantRepo, &mockCategoryRepo{}, dishRepo)

	extra := 2.0
	out := svc.CreateDish(context.Background(), owner, CreateDishInput{
		RestaurantID: 5,
		Name:         "Calzone",
		Price:        12,
		Options:      []DishOption{{Name: "Extra cheese", ExtraPrice: &extra}},
	})
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if created.RestaurantID != 5 || created.Name != "Calzone" {
		t.Errorf("unexpected dish persisted: %+v", created)
	}
	if len(created.Options) != 1 {
		t.Errorf("expected options persisted, got %d", len(created.Options))
	}
}

func TestCreateDish_NotYourRestaurant(t *testing.T) {
	restaurantRepo, dishRepo, _ := dishFixtures()
	svc := NewService(restaurantRepo, &mockCategoryRepo{}, dishRepo)

	out := svc.CreateDish(context.Background(), otherOwner, CreateDishInput{RestaurantID: 5, Name: "X", Price: 1})
	if out.Ok || out.Error != "You cannot add a dish to a restaurant that is not yours." {
		t.Errorf("expected ownership failure, got %+v", out)
	}
}

func TestEditDish_OwnershipViaRestaurantChain(t *testing.T) {
	restaurantRepo, dishRepo, dish := dishFixtures()
	svc := NewService(restaurantRepo, &mockCategoryRepo{}, dishRepo)

	price := 14.0
	if out := svc.EditDish(context.Background(), otherOwner, EditDishInput{DishID: 100, Price: &price}); out.Ok {
		t.Error("expected edit by non-owner rejected")
	}
	if dish.Price != 10 {
		t.Errorf("expected price unchanged, got %v", dish.Price)
	}

	if out := svc.EditDish(context.Background(), owner, EditDishInput{DishID: 100, Price: &price}); !out.Ok {
		t.Errorf("expected owner edit ok, got %q", out.Error)
	}
	if dish.Price != 14 {
		t.Errorf("expected price updated, got %v", dish.Price)
	}
}

func TestDeleteDish(t *testing.T) {
	restaurantRepo, dishRepo, _ := dishFixtures()
	deleted := false
	dishRepo.delete = func(context.Context, int64) error { deleted = true; return nil }
	svc := NewService(restaurantRepo, &mockCategoryRepo{}, dishRepo)

	if out := svc.DeleteDish(context.Background(), owner, 100); !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if !deleted {
		t.Error("expected dish removed")
	}
}

func TestMenuAndCount(t *testing.T) {
	repo := &mockRestaurantRepo{
		countByCategory: func(context.Context, int64) (int64, error) { return 4, nil },
	}
	dishes := &mockDishRepo{
		listByRestaurant: func(context.Context, int64) ([]*Dish, error) {
			return []*Dish{{ID: 100}, {ID: 101}}, nil
		},
	}
	svc := NewService(repo, &mockCategoryRepo{}, dishes)

	if menu := svc.Menu(context.Background(), 5); len(menu) != 2 {
		t.Errorf("expected 2 dishes, got %d", len(menu))
	}
	if n := svc.CountRestaurants(context.Background(), 3); n != 4 {
		t.Errorf("expected count 4, got %d", n)
	}
}
