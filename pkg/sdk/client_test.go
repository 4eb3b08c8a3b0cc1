package sdk

import (
	"context"
	"errors"
	"testing"

	domcat "github.com/gearstack/catsearch/internal/domain/catalog"
	"github.com/gearstack/catsearch/internal/domain/search/outcome"
	"github.com/gearstack/catsearch/internal/domain/search/query"
	catalogrepo "github.com/gearstack/catsearch/internal/repository/catalog"
	healthuc "github.com/gearstack/catsearch/internal/usecase/health"
)

type healthMock struct {
	CheckFn func(ctx context.Context) healthuc.Report
}

func (m *healthMock) Check(ctx context.Context) healthuc.Report {
	return m.CheckFn(ctx)
}

type resolverMock struct {
	ResolveFn func(ctx context.Context, params query.Params) (outcome.Outcome, error)
}

func (m *resolverMock) Resolve(ctx context.Context, params query.Params) (outcome.Outcome, error) {
	return m.ResolveFn(ctx, params)
}

func TestNew_RequiresStore(t *testing.T) {
	if _, err := New(context.Background()); err == nil {
		t.Error("expected error without a store option")
	}
}

func TestSmartSearch_EmptyQuery(t *testing.T) {
	c := &Client{search: &resolverMock{
		ResolveFn: func(context.Context, query.Params) (outcome.Outcome, error) {
			t.Fatal("resolver must not be called for a blank query")
			return outcome.Outcome{}, nil
		},
	}}

	if _, err := c.SmartSearch(context.Background(), "   "); !errors.Is(err, ErrQueryRequired) {
		t.Errorf("error = %v, want ErrQueryRequired", err)
	}
}

func TestSmartSearch_PassesOptions(t *testing.T) {
	var got query.Params
	c := &Client{search: &resolverMock{
		ResolveFn: func(_ context.Context, params query.Params) (outcome.Outcome, error) {
			got = params
			return outcome.BrandSuggestion(nil), nil
		},
	}}

	_, err := c.SmartSearch(context.Background(), "apache tank",
		WithType("bike"),
		WithSort(SortPriceDesc),
		WithPriceRange(100, 5000),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Query() != "apache tank" {
		t.Errorf("query = %q", got.Query())
	}
	if got.TypeTag() != "bike" {
		t.Errorf("type tag = %q, want bike", got.TypeTag())
	}
	if got.SortMode() != query.SortPriceDesc {
		t.Errorf("sort = %q, want H-L", got.SortMode())
	}
	if got.MinPrice() == nil || *got.MinPrice() != 100 {
		t.Errorf("min price = %v, want 100", got.MinPrice())
	}
	if got.MaxPrice() == nil || *got.MaxPrice() != 5000 {
		t.Errorf("max price = %v, want 5000", got.MaxPrice())
	}
}

func TestSmartSearch_ResolverError(t *testing.T) {
	boom := errors.New("store down")
	c := &Client{search: &resolverMock{
		ResolveFn: func(context.Context, query.Params) (outcome.Outcome, error) {
			return outcome.Outcome{}, boom
		},
	}}

	if _, err := c.SmartSearch(context.Background(), "honda"); !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped resolver error", err)
	}
}

func TestResultFromOutcome(t *testing.T) {
	brand := domcat.ReconstructBrand("b1", "Honda", domcat.StatusActive, "car", 1)
	model := domcat.ReconstructModel("m1", "City", "b1", 2)
	variant := domcat.ReconstructVariant("v1", "VDI", "m1", 3)
	product := domcat.ReconstructProduct("p1", "Brake Pad", "b1", "m1", []string{"v1"}, 1200, []string{"brake"}, 4)

	t.Run("brand level", func(t *testing.T) {
		r := resultFromOutcome(outcome.BrandSuggestion([]domcat.Brand{brand}))
		if r.Level != LevelBrand || len(r.Brands) != 1 || r.Brands[0].Name != "Honda" {
			t.Errorf("result = %+v", r)
		}
	})

	t.Run("model level", func(t *testing.T) {
		r := resultFromOutcome(outcome.ModelSuggestion(brand, []domcat.Model{model}))
		if r.Level != LevelModel || r.Brand.ID != "b1" || len(r.Models) != 1 {
			t.Errorf("result = %+v", r)
		}
	})

	t.Run("variant level", func(t *testing.T) {
		r := resultFromOutcome(outcome.VariantSuggestion(brand, model, []domcat.Variant{variant}))
		if r.Level != LevelVariant || r.Model.ID != "m1" || len(r.Variants) != 1 {
			t.Errorf("result = %+v", r)
		}
	})

	t.Run("product level", func(t *testing.T) {
		r := resultFromOutcome(outcome.ProductResult(brand, model, variant, []domcat.Product{product}))
		if r.Level != LevelProduct || r.Variant.ID != "v1" {
			t.Errorf("result = %+v", r)
		}
		if len(r.Products) != 1 || r.Products[0].SellingPrice != 1200 {
			t.Errorf("products = %+v", r.Products)
		}
	})
}

func TestClient_Health(t *testing.T) {
	c := &Client{health: &healthMock{
		CheckFn: func(context.Context) healthuc.Report {
			return healthuc.Report{
				Status: healthuc.Unhealthy,
				Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckError},
			}
		},
	}}

	status := c.Health(context.Background())
	if status.Status != "error" {
		t.Errorf("status = %q, want error", status.Status)
	}
	if status.Checks["database"] != "error" {
		t.Errorf("database check = %q, want error", status.Checks["database"])
	}
}

// End-to-end over an in-memory Badger store: seed through the repository,
// search through the public client surface.
func TestClient_SmartSearchEndToEnd(t *testing.T) {
	ctx := context.Background()

	client, err := New(ctx, WithInMemoryBadger(), WithKeyPrefix("sdktest:"))
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	defer client.Close()

	repo := catalogrepo.New(client.store).WithKeyPrefix("sdktest:")
	brand := domcat.ReconstructBrand("b1", "Honda", domcat.StatusActive, "car", 1)
	model := domcat.ReconstructModel("m1", "City", "b1", 1)
	variant := domcat.ReconstructVariant("v1", "VDI", "m1", 1)
	product := domcat.ReconstructProduct("p1", "City VDI Brake Pad", "b1", "m1",
		[]string{"v1"}, 1200, []string{"brake"}, 1)

	if err := repo.SaveBrand(ctx, brand); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveModel(ctx, model); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveVariant(ctx, variant); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveProduct(ctx, product); err != nil {
		t.Fatal(err)
	}

	if err := client.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if hs := client.Health(ctx); hs.Status != "ok" {
		t.Fatalf("health = %+v, want ok", hs)
	}

	result, err := client.SmartSearch(ctx, "honda city vdi")
	if err != nil {
		t.Fatalf("smart search: %v", err)
	}
	if result.Level != LevelProduct {
		t.Fatalf("level = %q, want %q", result.Level, LevelProduct)
	}
	if len(result.Products) != 1 || result.Products[0].ID != "p1" {
		t.Errorf("products = %+v, want p1", result.Products)
	}

	result, err = client.SmartSearch(ctx, "honda")
	if err != nil {
		t.Fatalf("smart search: %v", err)
	}
	if result.Level != LevelModel || result.Brand.Name != "Honda" {
		t.Errorf("level = %q brand = %q, want model-level under Honda", result.Level, result.Brand.Name)
	}
}
