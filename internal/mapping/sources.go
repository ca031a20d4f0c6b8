package mapping

import "github.com/bazarstat/bazarstat/internal/model"

// The tables below mirror each collector's documented native field names.
// One designated raw field per canonical column; no fallback chains.

func f(raw string) FieldMap {
	return FieldMap{Raw: raw, Transform: TrimSpace}
}

func price(raw string) FieldMap {
	return FieldMap{Raw: raw, Transform: CleanPrice}
}

func boolean(raw string) FieldMap {
	return FieldMap{Raw: raw, Transform: CanonBool}
}

func irshadMapping() SourceMapping {
	return SourceMapping{
		Source: model.SourceIrshad,
		Fields: map[string]FieldMap{
			"name":            f("name"),
			"sku":             f("code"),
			"price_current":   price("price_current"),
			"price_old":       price("price_old"),
			"discount_pct":    f("discount_pct"),
			"discount_amount": f("discount_amount"),
			"status":          f("availability"),
			"installment_6m":  price("installment_6m"),
			"installment_12m": price("installment_12m"),
			"installment_18m": price("installment_18m"),
			"category":        f("product_type"),
			"url":             f("url"),
			"image_url":       f("image_url"),
			"page":            f("page"),
		},
	}
}

func solitonMapping() SourceMapping {
	return SourceMapping{
		Source: model.SourceSoliton,
		Fields: map[string]FieldMap{
			"name":            f("name"),
			"product_id":      f("product_id"),
			"brand":           f("brand_id"),
			"price_current":   price("price_current"),
			"price_old":       price("price_old"),
			"discount_pct":    f("discount_pct"),
			"discount_amount": f("discount_amount"),
			"installment_6m":  price("installment_6m"),
			"installment_12m": price("installment_12m"),
			"installment_18m": price("installment_18m"),
			"in_stock":        boolean("in_stock"),
			"special_offer":   f("special_offer"),
			"category":        f("category"),
			"url":             f("url"),
			"image_url":       f("image_url"),
			// Soliton pages by AJAX batch offset, not page number.
			"page": f("offset"),
		},
	}
}

func mgstoreMapping() SourceMapping {
	return SourceMapping{
		Source: model.SourceMGStore,
		Fields: map[string]FieldMap{
			"name":            f("name"),
			"product_id":      f("product_id"),
			"sku":             f("sku"),
			"brand":           f("brand"),
			"price_current":   price("price_current"),
			"price_old":       price("price_old"),
			"discount_amount": f("discount_amount"),
			"installment":     f("installment"),
			"category":        f("category"),
			"url":             f("url"),
			"image_url":       f("image_url"),
			"page":            f("page"),
		},
	}
}

func bakuElectronicsMapping() SourceMapping {
	return SourceMapping{
		Source: model.SourceBakuElectronics,
		Fields: map[string]FieldMap{
			"name":          f("title"),
			"sku":           f("sku"),
			"price_current": price("price"),
			"price_old":     price("old_price"),
			"discount_pct":  f("discount"),
			"installment":   f("credit"),
			"in_stock":      boolean("stock"),
			"url":           f("url"),
			"image_url":     f("image"),
			"page":          f("page"),
		},
	}
}

func bytelecomMapping() SourceMapping {
	return SourceMapping{
		Source: model.SourceBytelecom,
		Fields: map[string]FieldMap{
			"name":                f("name"),
			"sku":                 f("product_code"),
			"price_current":       price("price"),
			"price_old":           price("old_price"),
			"installment_monthly": price("monthly"),
			"url":                 f("url"),
			"image_url":           f("image"),
			"page":                f("page"),
		},
	}
}

func kontaktMapping() SourceMapping {
	return SourceMapping{
		Source: model.SourceKontakt,
		Fields: map[string]FieldMap{
			"name":                f("name"),
			"product_id":          f("id"),
			"sku":                 f("sku"),
			"brand":               f("brand"),
			"category":            f("category"),
			"price_current":       price("price"),
			"price_old":           price("old_price"),
			"discount_pct":        f("discount"),
			"installment_monthly": price("credit_monthly"),
			"rating":              f("rating"),
			"review_count":        f("review_count"),
			"in_stock":            boolean("availability"),
			"url":                 f("url"),
			"image_url":           f("image"),
			"page":                f("page"),
		},
	}
}

func smartElectronicsMapping() SourceMapping {
	return SourceMapping{
		Source: model.SourceSmartElectronics,
		Fields: map[string]FieldMap{
			"name":          f("name"),
			"sku":           f("sku"),
			"brand":         f("brand"),
			"price_current": price("price"),
			"price_old":     price("old_price"),
			"discount_pct":  f("discount"),
			"installment":   f("installment"),
			"in_stock":      boolean("stock"),
			"url":           f("url"),
			"image_url":     f("image"),
			"page":          f("page"),
		},
	}
}

func texnohomeMapping() SourceMapping {
	return SourceMapping{
		Source: model.SourceTexnohome,
		Fields: map[string]FieldMap{
			"name":          f("name"),
			"price_current": price("price"),
			"price_old":     price("old_price"),
			"is_online":     boolean("online_only"),
			"installment":   f("installment"),
			"url":           f("url"),
			"image_url":     f("image"),
			"page":          f("page"),
		},
	}
}

func wtMapping() SourceMapping {
	return SourceMapping{
		Source: model.SourceWT,
		Fields: map[string]FieldMap{
			"name":          f("name"),
			"sku":           f("code"),
			"price_current": price("price"),
			"price_old":     price("old_price"),
			"quantity":      f("qty"),
			"url":           f("url"),
			"image_url":     f("image"),
			"page":          f("page"),
		},
	}
}

func birmarketMapping() SourceMapping {
	return SourceMapping{
		Source: model.SourceBirmarket,
		Fields: map[string]FieldMap{
			"name":                     f("name"),
			"product_id":               f("product_id"),
			"price_current":            price("price"),
			"price_old":                price("old_price"),
			"discount_pct":             f("discount"),
			"installment_term":         f("installment_term"),
			"installment_monthly":      price("monthly_payment"),
			"installment_active_term":  f("active_term"),
			"installment_active_price": price("active_price"),
			"status":                   f("status"),
			"kinds":                    f("kinds"),
			"url":                      f("url"),
			"image_url":                f("image"),
			"page":                     f("page"),
		},
	}
}

func tapMapping() SourceMapping {
	return SourceMapping{
		Source: model.SourceTap,
		Fields: map[string]FieldMap{
			// Resale listings carry a free-text title, not a product name.
			"name":          f("title"),
			"price_current": price("price"),
			"region":        f("region"),
			"updated_at":    f("updated"),
			"shop_id":       f("shop_id"),
			"is_new":        boolean("new"),
			"kinds":         f("kinds"),
			"url":           f("url"),
			"image_url":     f("photo"),
			"page":          f("page"),
		},
	}
}
