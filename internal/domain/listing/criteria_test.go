package listing

import (
	"errors"
	"math"
	"testing"

	"github.com/jsamuelsen11/listing-search-service/internal/domain"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }

func TestCriteria_Limit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		top  int
		want int
	}{
		{name: "zero uses default", top: 0, want: DefaultTop},
		{name: "negative uses default", top: -3, want: DefaultTop},
		{name: "explicit value kept", top: 200, want: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Criteria{Top: tt.top}
			if got := c.Limit(); got != tt.want {
				t.Errorf("Limit() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCriteria_IsEmpty(t *testing.T) {
	t.Parallel()

	if c := (Criteria{Top: 10}); !c.IsEmpty() {
		t.Error("IsEmpty() = false for criteria with only Top set, want true")
	}
	if c := (Criteria{Bedrooms: intPtr(0)}); c.IsEmpty() {
		t.Error("IsEmpty() = true with Bedrooms=0, want false")
	}
}

func TestCriteria_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		criteria  Criteria
		maxTop    int
		wantField string
	}{
		{
			name:     "empty criteria passes",
			criteria: Criteria{},
			maxTop:   1000,
		},
		{
			name: "inverted price range passes",
			criteria: Criteria{
				PriceMin: float64Ptr(500000),
				PriceMax: float64Ptr(100000),
			},
			maxTop: 1000,
		},
		{
			name:      "negative price min",
			criteria:  Criteria{PriceMin: float64Ptr(-1)},
			maxTop:    1000,
			wantField: "priceMin",
		},
		{
			name:      "NaN price max",
			criteria:  Criteria{PriceMax: float64Ptr(math.NaN())},
			maxTop:    1000,
			wantField: "priceMax",
		},
		{
			name:      "infinite price max",
			criteria:  Criteria{PriceMax: float64Ptr(math.Inf(1))},
			maxTop:    1000,
			wantField: "priceMax",
		},
		{
			name:      "negative bedrooms",
			criteria:  Criteria{Bedrooms: intPtr(-2)},
			maxTop:    1000,
			wantField: "bedrooms",
		},
		{
			name:      "top above max",
			criteria:  Criteria{Top: 1001},
			maxTop:    1000,
			wantField: "top",
		},
		{
			name:     "top unbounded when max is zero",
			criteria: Criteria{Top: 50000},
			maxTop:   0,
		},
		{
			name:      "negative top",
			criteria:  Criteria{Top: -1},
			maxTop:    1000,
			wantField: "top",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.criteria.Validate(tt.maxTop)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Validate() = %v, want ErrValidation", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields missing %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestEnumerations_IsKnown(t *testing.T) {
	t.Parallel()

	for _, pt := range PropertyTypes() {
		if !pt.IsKnown() {
			t.Errorf("PropertyType(%q).IsKnown() = false", pt)
		}
	}
	for _, s := range Statuses() {
		if !s.IsKnown() {
			t.Errorf("Status(%q).IsKnown() = false", s)
		}
	}
	if PropertyType("Castle").IsKnown() {
		t.Error(`PropertyType("Castle").IsKnown() = true, want false`)
	}
	if Status("new").IsKnown() {
		t.Error(`Status("new").IsKnown() = true, want false (case-sensitive)`)
	}
	if !ProvinceON.IsKnown() || Province("ZZ").IsKnown() {
		t.Error("Province.IsKnown() mismatch")
	}
}
