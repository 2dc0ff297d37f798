package listing

// PropertyType is the upstream PropertyType vocabulary.
type PropertyType string

const (
	PropertyTypeCondo       PropertyType = "Residential Condo & Other"
	PropertyTypeResidential PropertyType = "Residential"
	PropertyTypeCommercial  PropertyType = "Commercial"
	PropertyTypeFarm        PropertyType = "Farm"
	PropertyTypeLand        PropertyType = "Land"
)

// PropertyTypes lists the known property types in display order.
func PropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyTypeCondo,
		PropertyTypeResidential,
		PropertyTypeCommercial,
		PropertyTypeFarm,
		PropertyTypeLand,
	}
}

// IsKnown reports whether t is one of the defined constants. Unknown values
// are still forwarded upstream; the vocabulary is owned by the listing service.
func (t PropertyType) IsKnown() bool {
	switch t {
	case PropertyTypeCondo, PropertyTypeResidential, PropertyTypeCommercial,
		PropertyTypeFarm, PropertyTypeLand:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t PropertyType) String() string {
	return string(t)
}
