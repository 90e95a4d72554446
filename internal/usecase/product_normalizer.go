package usecase

import (
	"math"
	"strconv"

	"podartshop/internal/domain/entity"
)

const maxProductImages = 8

// NormalizeProduct maps a raw provider record into the canonical StoreProduct
// shape. Field names vary across provider API versions, so every field is
// resolved through a fallback chain. Records without a resolvable id are
// skipped (ok is false); that is not an error and sync continues.
func NormalizeProduct(raw map[string]interface{}) (*entity.StoreProduct, bool) {
	id := stringValue(raw["id"])
	if id == "" {
		id = stringValue(raw["_id"])
	}
	if id == "" {
		return nil, false
	}

	title := stringValue(raw["title"])
	if title == "" {
		title = stringValue(raw["name"])
	}
	if title == "" {
		title = "Untitled"
	}

	variants := collectVariants(raw)
	defaultVariantID, price := resolvePricing(variants)

	available := true
	if visible, ok := raw["visible"].(bool); ok {
		available = visible
	}

	return &entity.StoreProduct{
		ID:               id,
		Title:            title,
		Description:      stringValue(raw["description"]),
		Images:           collectImages(raw),
		Tags:             stringSlice(raw["tags"]),
		Categories:       stringSlice(raw["categories"]),
		Variants:         variants,
		DefaultVariantID: defaultVariantID,
		Price:            price,
		Currency:         "USD",
		Available:        available,
	}, true
}

func collectImages(raw map[string]interface{}) []string {
	entries, _ := raw["images"].([]interface{})
	if len(entries) == 0 {
		entries, _ = raw["files"].([]interface{})
	}

	images := []string{}
	for _, e := range entries {
		m, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		url := stringValue(m["src"])
		if url == "" {
			url = stringValue(m["preview_url"])
		}
		if url == "" {
			url = stringValue(m["url"])
		}
		if url == "" {
			continue
		}
		images = append(images, url)
		if len(images) == maxProductImages {
			break
		}
	}

	return images
}

func collectVariants(raw map[string]interface{}) []map[string]interface{} {
	entries, _ := raw["variants"].([]interface{})

	variants := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		if m, ok := e.(map[string]interface{}); ok {
			variants = append(variants, m)
		}
	}

	return variants
}

// resolvePricing derives the displayed price and the default variant id.
// Prices above 10 are assumed to be minor units and divided by 100; this
// threshold is a documented heuristic, kept as-is.
func resolvePricing(variants []map[string]interface{}) (int64, float64) {
	var defaultVariantID int64
	var candidates []map[string]interface{}

	for _, v := range variants {
		if !isTruthy(v["is_default"]) {
			continue
		}
		candidates = append(candidates, v)
		if defaultVariantID == 0 {
			defaultVariantID = intValue(v["id"])
			if defaultVariantID == 0 {
				defaultVariantID = intValue(v["variant_id"])
			}
		}
	}
	if len(candidates) == 0 {
		candidates = variants
	}

	price := 0.0
	for _, v := range candidates {
		p, ok := numericValue(v["price"])
		if !ok {
			continue
		}
		if p > 10 {
			p = p / 100
		}
		if p > price {
			price = p
		}
	}

	return defaultVariantID, math.Round(price*100) / 100
}

func stringValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return ""
}

func stringSlice(v interface{}) []string {
	entries, _ := v.([]interface{})

	result := make([]string, 0, len(entries))
	for _, e := range entries {
		if s, ok := e.(string); ok {
			result = append(result, s)
		}
	}

	return result
}

func numericValue(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	}
	return 0, false
}

func intValue(v interface{}) int64 {
	switch val := v.(type) {
	case float64:
		return int64(val)
	case int:
		return int64(val)
	case int64:
		return val
	}
	return 0
}

func isTruthy(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	}
	return false
}
