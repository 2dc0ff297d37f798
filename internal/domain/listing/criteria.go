package listing

import (
	"fmt"
	"math"

	"github.com/jsamuelsen11/listing-search-service/internal/domain"
)

// DefaultTop is the row limit applied when Criteria.Top is zero.
const DefaultTop = 50

// Criteria holds optional filter criteria for a listing search.
// Zero-value fields mean "no constraint" for that dimension.
//
// PriceMin > PriceMax is accepted; upstream returns an empty set.
type Criteria struct {
	City            string
	StateOrProvince string
	PriceMin        *float64
	PriceMax        *float64
	Bedrooms        *int
	PropertyType    PropertyType
	Status          Status

	// Top is the row limit. Zero means DefaultTop.
	Top int
}

// Limit returns the effective row limit.
func (c *Criteria) Limit() int {
	if c.Top <= 0 {
		return DefaultTop
	}
	return c.Top
}

// IsEmpty reports whether no filter field is set. Top is not a filter.
func (c *Criteria) IsEmpty() bool {
	return c.City == "" &&
		c.StateOrProvince == "" &&
		c.PriceMin == nil &&
		c.PriceMax == nil &&
		c.Bedrooms == nil &&
		c.PropertyType == "" &&
		c.Status == ""
}

// Validate checks that numeric fields are well formed. maxTop bounds Top when
// positive; zero disables the upper bound.
// Returns a *domain.ValidationError, or nil if all rules pass.
func (c *Criteria) Validate(maxTop int) error {
	fields := make(map[string]string)

	if c.PriceMin != nil && !validPrice(*c.PriceMin) {
		fields["priceMin"] = domain.MsgNonNegative
	}
	if c.PriceMax != nil && !validPrice(*c.PriceMax) {
		fields["priceMax"] = domain.MsgNonNegative
	}
	if c.Bedrooms != nil && *c.Bedrooms < 0 {
		fields["bedrooms"] = fmt.Sprintf("must be >= 0, got %d", *c.Bedrooms)
	}
	if c.Top < 0 {
		fields["top"] = fmt.Sprintf("must be positive, got %d", c.Top)
	}
	if maxTop > 0 && c.Top > maxTop {
		fields["top"] = fmt.Sprintf("must be between 1 and %d, got %d", maxTop, c.Top)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
