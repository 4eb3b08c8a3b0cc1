package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"

	domcat "github.com/gearstack/catsearch/internal/domain/catalog"
)

func brandToHash(b domcat.Brand) map[string]string {
	return map[string]string{
		"id":         b.ID(),
		"name":       b.Name(),
		"status":     string(b.Status()),
		"type":       b.TypeTag(),
		"created_at": strconv.FormatInt(b.CreatedAt(), 10),
	}
}

func brandFromHash(m map[string]string) (domcat.Brand, error) {
	createdAt, err := parseCreatedAt(m)
	if err != nil {
		return domcat.Brand{}, fmt.Errorf("brand %s: %w", m["id"], err)
	}
	return domcat.ReconstructBrand(
		m["id"], m["name"], domcat.Status(m["status"]), m["type"], createdAt,
	), nil
}

func modelToHash(m domcat.Model) map[string]string {
	return map[string]string{
		"id":         m.ID(),
		"name":       m.Name(),
		"brand_id":   m.BrandID(),
		"created_at": strconv.FormatInt(m.CreatedAt(), 10),
	}
}

func modelFromHash(m map[string]string) (domcat.Model, error) {
	createdAt, err := parseCreatedAt(m)
	if err != nil {
		return domcat.Model{}, fmt.Errorf("model %s: %w", m["id"], err)
	}
	return domcat.ReconstructModel(m["id"], m["name"], m["brand_id"], createdAt), nil
}

func variantToHash(v domcat.Variant) map[string]string {
	return map[string]string{
		"id":         v.ID(),
		"name":       v.Name(),
		"model_id":   v.ModelID(),
		"created_at": strconv.FormatInt(v.CreatedAt(), 10),
	}
}

func variantFromHash(m map[string]string) (domcat.Variant, error) {
	createdAt, err := parseCreatedAt(m)
	if err != nil {
		return domcat.Variant{}, fmt.Errorf("variant %s: %w", m["id"], err)
	}
	return domcat.ReconstructVariant(m["id"], m["name"], m["model_id"], createdAt), nil
}

func productToHash(p domcat.Product) (map[string]string, error) {
	variantsJSON, err := json.Marshal(p.VariantIDs())
	if err != nil {
		return nil, fmt.Errorf("marshal variants: %w", err)
	}
	tagsJSON, err := json.Marshal(p.SearchTags())
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return map[string]string{
		"id":            p.ID(),
		"name":          p.Name(),
		"brand_id":      p.BrandID(),
		"model_id":      p.ModelID(),
		"variants_json": string(variantsJSON),
		"selling_price": strconv.FormatFloat(p.SellingPrice(), 'f', -1, 64),
		"tags_json":     string(tagsJSON),
		"created_at":    strconv.FormatInt(p.CreatedAt(), 10),
	}, nil
}

func productFromHash(m map[string]string) (domcat.Product, error) {
	createdAt, err := parseCreatedAt(m)
	if err != nil {
		return domcat.Product{}, fmt.Errorf("product %s: %w", m["id"], err)
	}

	price, err := strconv.ParseFloat(m["selling_price"], 64)
	if err != nil {
		return domcat.Product{}, fmt.Errorf("product %s: invalid selling_price: %w", m["id"], err)
	}

	var variantIDs []string
	if m["variants_json"] != "" {
		if err := json.Unmarshal([]byte(m["variants_json"]), &variantIDs); err != nil {
			return domcat.Product{}, fmt.Errorf("product %s: unmarshal variants: %w", m["id"], err)
		}
	}

	var tags []string
	if m["tags_json"] != "" {
		if err := json.Unmarshal([]byte(m["tags_json"]), &tags); err != nil {
			return domcat.Product{}, fmt.Errorf("product %s: unmarshal tags: %w", m["id"], err)
		}
	}

	return domcat.ReconstructProduct(
		m["id"], m["name"], m["brand_id"], m["model_id"],
		variantIDs, price, tags, createdAt,
	), nil
}

func parseCreatedAt(m map[string]string) (int64, error) {
	v, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid created_at: %w", err)
	}
	return v, nil
}
