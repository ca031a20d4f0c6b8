package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RawRecord is one listing exactly as a source collector emitted it:
// string keys in the source's native vocabulary, string values. Collectors
// own its shape; the normalizer only reads it.
type RawRecord map[string]string

// Columns is the canonical column set, in output order. Every Record holds
// exactly these 33 fields, each populated or empty, never absent.
var Columns = []string{
	"source",
	"name",
	"product_id",
	"sku",
	"brand",
	"category",
	"price_current",
	"price_old",
	"discount_pct",
	"discount_amount",
	"installment_6m",
	"installment_12m",
	"installment_18m",
	"installment_monthly",
	"installment_term",
	"installment",
	"installment_active_term",
	"installment_active_price",
	"in_stock",
	"is_new",
	"is_online",
	"quantity",
	"review_count",
	"rating",
	"special_offer",
	"region",
	"updated_at",
	"status",
	"kinds",
	"shop_id",
	"url",
	"image_url",
	"page",
}

// FinancingColumns are the installment-bearing fields. A listing with at
// least one of these non-empty advertises a payment plan. Term descriptors
// (installment_term, installment_active_term) are deliberately not part of
// this set: they name a duration, not an offer.
var FinancingColumns = []string{
	"installment_6m",
	"installment_12m",
	"installment_18m",
	"installment_monthly",
	"installment",
	"installment_active_price",
}

// Record is the canonical listing shape all eleven sources normalize into.
// All fields are strings: the source data is untyped, and keeping prices as
// decimal strings avoids binary floating-point loss. Numeric interpretation
// happens in derived views (ValidPrice, discount extraction), never here.
type Record struct {
	Source                 string
	Name                   string
	ProductID              string
	SKU                    string
	Brand                  string
	Category               string
	PriceCurrent           string
	PriceOld               string
	DiscountPct            string
	DiscountAmount         string
	Installment6M          string
	Installment12M         string
	Installment18M         string
	InstallmentMonthly     string
	InstallmentTerm        string
	Installment            string
	InstallmentActiveTerm  string
	InstallmentActivePrice string
	InStock                string
	IsNew                  string
	IsOnline               string
	Quantity               string
	ReviewCount            string
	Rating                 string
	SpecialOffer           string
	Region                 string
	UpdatedAt              string
	Status                 string
	Kinds                  string
	ShopID                 string
	URL                    string
	ImageURL               string
	Page                   string
}

// fieldRef maps a canonical column name to the backing struct field.
func (r *Record) fieldRef(column string) *string {
	switch column {
	case "source":
		return &r.Source
	case "name":
		return &r.Name
	case "product_id":
		return &r.ProductID
	case "sku":
		return &r.SKU
	case "brand":
		return &r.Brand
	case "category":
		return &r.Category
	case "price_current":
		return &r.PriceCurrent
	case "price_old":
		return &r.PriceOld
	case "discount_pct":
		return &r.DiscountPct
	case "discount_amount":
		return &r.DiscountAmount
	case "installment_6m":
		return &r.Installment6M
	case "installment_12m":
		return &r.Installment12M
	case "installment_18m":
		return &r.Installment18M
	case "installment_monthly":
		return &r.InstallmentMonthly
	case "installment_term":
		return &r.InstallmentTerm
	case "installment":
		return &r.Installment
	case "installment_active_term":
		return &r.InstallmentActiveTerm
	case "installment_active_price":
		return &r.InstallmentActivePrice
	case "in_stock":
		return &r.InStock
	case "is_new":
		return &r.IsNew
	case "is_online":
		return &r.IsOnline
	case "quantity":
		return &r.Quantity
	case "review_count":
		return &r.ReviewCount
	case "rating":
		return &r.Rating
	case "special_offer":
		return &r.SpecialOffer
	case "region":
		return &r.Region
	case "updated_at":
		return &r.UpdatedAt
	case "status":
		return &r.Status
	case "kinds":
		return &r.Kinds
	case "shop_id":
		return &r.ShopID
	case "url":
		return &r.URL
	case "image_url":
		return &r.ImageURL
	case "page":
		return &r.Page
	default:
		return nil
	}
}

// Set assigns the canonical field named column. It returns false for a
// column outside the canonical set.
func (r *Record) Set(column, value string) bool {
	ref := r.fieldRef(column)
	if ref == nil {
		return false
	}
	*ref = value
	return true
}

// Get returns the value of the canonical field named column, or "" for a
// column outside the canonical set.
func (r *Record) Get(column string) string {
	ref := r.fieldRef(column)
	if ref == nil {
		return ""
	}
	return *ref
}

// Fields returns the record's values in Columns order, ready for CSV.
func (r *Record) Fields() []string {
	out := make([]string, len(Columns))
	for i, col := range Columns {
		out[i] = r.Get(col)
	}
	return out
}

// priceFloor is the validity threshold: published prices at or below one
// manat are sentinels ("0.00" for no price, "0.01" placeholders), not
// usable prices.
var priceFloor = decimal.New(1, 0)

// ValidPrice parses price_current as an exact decimal. ok is false when
// the value is empty, unparseable, or not strictly above 1.00 AZN. Parse
// failure is "no usable price", never an error.
func (r *Record) ValidPrice() (decimal.Decimal, bool) {
	s := strings.TrimSpace(r.PriceCurrent)
	if s == "" {
		return decimal.Decimal{}, false
	}
	p, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if p.Cmp(priceFloor) <= 0 {
		return decimal.Decimal{}, false
	}
	return p, true
}

// HasFinancing reports whether the listing advertises at least one
// installment offer.
func (r *Record) HasFinancing() bool {
	for _, col := range FinancingColumns {
		if strings.TrimSpace(r.Get(col)) != "" {
			return true
		}
	}
	return false
}
