// Package catalog reads candidate pools from the storage facade. The
// resolver only reads; the write methods exist for the seeder and any
// upstream catalog management tooling.
package catalog

import (
	"context"
	"fmt"

	"github.com/gearstack/catsearch/internal/db"
	domcat "github.com/gearstack/catsearch/internal/domain/catalog"
)

// store is the consumer interface for the catalog repository (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	ListPush(ctx context.Context, key string, values ...string) error
	ListRange(ctx context.Context, key string) ([]string, error)
}

// Compile-time check against the full facade.
var _ store = (db.Store)(nil)

// DefaultKeyPrefix namespaces all catalog keys.
const DefaultKeyPrefix = "catsearch:"

// Repo implements the catalog pool reads behind usecase/search.CatalogReader.
type Repo struct {
	store  store
	prefix string
}

// New creates a catalog repository.
func New(s store) *Repo {
	return &Repo{store: s, prefix: DefaultKeyPrefix}
}

// WithKeyPrefix overrides the key namespace.
func (r *Repo) WithKeyPrefix(prefix string) *Repo {
	if prefix != "" {
		r.prefix = prefix
	}
	return r
}

// ActiveBrands returns all active brands in creation order, optionally
// filtered by type tag equality.
func (r *Repo) ActiveBrands(ctx context.Context, typeTag string) ([]domcat.Brand, error) {
	ids, err := r.store.ListRange(ctx, r.brandsKey())
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}

	hashes, err := r.hashesFor(ctx, ids, r.brandKey)
	if err != nil {
		return nil, fmt.Errorf("fetch brands: %w", err)
	}

	brands := make([]domcat.Brand, 0, len(hashes))
	for _, h := range hashes {
		if len(h) == 0 {
			continue
		}
		b, err := brandFromHash(h)
		if err != nil {
			return nil, err
		}
		if !b.IsActive() {
			continue
		}
		if typeTag != "" && b.TypeTag() != typeTag {
			continue
		}
		brands = append(brands, b)
	}
	return brands, nil
}

// ModelsOf returns the models of a brand in creation order.
func (r *Repo) ModelsOf(ctx context.Context, brandID string) ([]domcat.Model, error) {
	ids, err := r.store.ListRange(ctx, r.brandModelsKey(brandID))
	if err != nil {
		return nil, fmt.Errorf("list models of brand %s: %w", brandID, err)
	}

	hashes, err := r.hashesFor(ctx, ids, r.modelKey)
	if err != nil {
		return nil, fmt.Errorf("fetch models: %w", err)
	}

	models := make([]domcat.Model, 0, len(hashes))
	for _, h := range hashes {
		if len(h) == 0 {
			continue
		}
		m, err := modelFromHash(h)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

// VariantsOf returns the variants of a model in creation order.
func (r *Repo) VariantsOf(ctx context.Context, modelID string) ([]domcat.Variant, error) {
	ids, err := r.store.ListRange(ctx, r.modelVariantsKey(modelID))
	if err != nil {
		return nil, fmt.Errorf("list variants of model %s: %w", modelID, err)
	}

	hashes, err := r.hashesFor(ctx, ids, r.variantKey)
	if err != nil {
		return nil, fmt.Errorf("fetch variants: %w", err)
	}

	variants := make([]domcat.Variant, 0, len(hashes))
	for _, h := range hashes {
		if len(h) == 0 {
			continue
		}
		v, err := variantFromHash(h)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// ProductsOf returns the products of a variant in creation order, checked
// against the resolved brand and model. Referential integrity is managed
// upstream; the check only drops records whose references drifted.
func (r *Repo) ProductsOf(ctx context.Context, brandID, modelID, variantID string) ([]domcat.Product, error) {
	ids, err := r.store.ListRange(ctx, r.variantProductsKey(variantID))
	if err != nil {
		return nil, fmt.Errorf("list products of variant %s: %w", variantID, err)
	}

	hashes, err := r.hashesFor(ctx, ids, r.productKey)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	products := make([]domcat.Product, 0, len(hashes))
	for _, h := range hashes {
		if len(h) == 0 {
			continue
		}
		p, err := productFromHash(h)
		if err != nil {
			return nil, err
		}
		if p.BrandID() != brandID || p.ModelID() != modelID || !p.HasVariant(variantID) {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// SaveBrand stores a brand and registers it in the pool list.
func (r *Repo) SaveBrand(ctx context.Context, b domcat.Brand) error {
	if err := r.store.HSet(ctx, r.brandKey(b.ID()), brandToHash(b)); err != nil {
		return fmt.Errorf("save brand %s: %w", b.ID(), err)
	}
	if err := r.store.ListPush(ctx, r.brandsKey(), b.ID()); err != nil {
		return fmt.Errorf("register brand %s: %w", b.ID(), err)
	}
	return nil
}

// SaveModel stores a model and registers it under its brand.
func (r *Repo) SaveModel(ctx context.Context, m domcat.Model) error {
	if err := r.store.HSet(ctx, r.modelKey(m.ID()), modelToHash(m)); err != nil {
		return fmt.Errorf("save model %s: %w", m.ID(), err)
	}
	if err := r.store.ListPush(ctx, r.brandModelsKey(m.BrandID()), m.ID()); err != nil {
		return fmt.Errorf("register model %s: %w", m.ID(), err)
	}
	return nil
}

// SaveVariant stores a variant and registers it under its model.
func (r *Repo) SaveVariant(ctx context.Context, v domcat.Variant) error {
	if err := r.store.HSet(ctx, r.variantKey(v.ID()), variantToHash(v)); err != nil {
		return fmt.Errorf("save variant %s: %w", v.ID(), err)
	}
	if err := r.store.ListPush(ctx, r.modelVariantsKey(v.ModelID()), v.ID()); err != nil {
		return fmt.Errorf("register variant %s: %w", v.ID(), err)
	}
	return nil
}

// SaveProduct stores a product and registers it under each of its variants.
func (r *Repo) SaveProduct(ctx context.Context, p domcat.Product) error {
	h, err := productToHash(p)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, r.productKey(p.ID()), h); err != nil {
		return fmt.Errorf("save product %s: %w", p.ID(), err)
	}
	for _, variantID := range p.VariantIDs() {
		if err := r.store.ListPush(ctx, r.variantProductsKey(variantID), p.ID()); err != nil {
			return fmt.Errorf("register product %s: %w", p.ID(), err)
		}
	}
	return nil
}

func (r *Repo) hashesFor(
	ctx context.Context, ids []string, key func(string) string,
) ([]map[string]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = key(id)
	}
	return r.store.HGetAllMulti(ctx, keys)
}
