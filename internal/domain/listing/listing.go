package listing

import (
	"encoding/json"
	"time"
)

// Listing is one Property record from the upstream service. Only the fields
// common to every consumer are typed; everything else is kept in Extra with
// its original JSON encoding.
type Listing struct {
	ListingKey string `json:"ListingKey"`

	City            string  `json:"City"`
	StateOrProvince string  `json:"StateOrProvince"`
	PostalCode      string  `json:"PostalCode"`
	StreetNumber    string  `json:"StreetNumber"`
	StreetName      string  `json:"StreetName"`
	StreetSuffix    string  `json:"StreetSuffix"`
	UnitNumber      *string `json:"UnitNumber"`
	UnparsedAddress string  `json:"UnparsedAddress"`

	ListPrice         float64  `json:"ListPrice"`
	ClosePrice        *float64 `json:"ClosePrice"`
	OriginalListPrice float64  `json:"OriginalListPrice"`

	PropertyType          PropertyType `json:"PropertyType"`
	PropertySubType       string       `json:"PropertySubType"`
	BedroomsTotal         int          `json:"BedroomsTotal"`
	BathroomsTotalInteger int          `json:"BathroomsTotalInteger"`

	MlsStatus      Status `json:"MlsStatus"`
	StandardStatus string `json:"StandardStatus"`
	DaysOnMarket   int    `json:"DaysOnMarket"`

	ModificationTimestamp string `json:"ModificationTimestamp"`

	// Extra holds every upstream field not named above.
	Extra map[string]json.RawMessage `json:"-"`

	seen presence
}

var listingKnownFields = fieldSet(
	"ListingKey",
	"City", "StateOrProvince", "PostalCode", "StreetNumber", "StreetName",
	"StreetSuffix", "UnitNumber", "UnparsedAddress",
	"ListPrice", "ClosePrice", "OriginalListPrice",
	"PropertyType", "PropertySubType", "BedroomsTotal", "BathroomsTotalInteger",
	"MlsStatus", "StandardStatus", "DaysOnMarket",
	"ModificationTimestamp",
)

// listingFields has Listing's layout without its methods.
type listingFields Listing

// UnmarshalJSON decodes the typed fields and collects the rest into Extra.
func (l *Listing) UnmarshalJSON(data []byte) error {
	var f listingFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	extra, seen, err := splitObject(data, listingKnownFields)
	if err != nil {
		return err
	}
	f.Extra, f.seen = extra, seen
	*l = Listing(f)
	return nil
}

// MarshalJSON encodes the typed fields together with Extra. A decoded
// Listing encodes back to the members it was decoded from.
func (l Listing) MarshalJSON() ([]byte, error) {
	return mergeObject(listingFields(l), listingFields{}, l.seen, l.Extra)
}

// ModifiedAt parses ModificationTimestamp as RFC 3339.
func (l *Listing) ModifiedAt() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, l.ModificationTimestamp)
}
