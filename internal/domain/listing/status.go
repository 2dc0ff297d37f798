package listing

// Status is the upstream MlsStatus vocabulary.
type Status string

const (
	StatusSold      Status = "Sold"
	StatusActive    Status = "Active"
	StatusPending   Status = "Pending"
	StatusExpired   Status = "Expired"
	StatusWithdrawn Status = "Withdrawn"
	StatusCancelled Status = "Cancelled"
	StatusHold      Status = "Hold"
	StatusNew       Status = "New"
)

// Statuses lists the known statuses in display order.
func Statuses() []Status {
	return []Status{
		StatusSold, StatusActive, StatusPending, StatusExpired,
		StatusWithdrawn, StatusCancelled, StatusHold, StatusNew,
	}
}

// IsKnown reports whether s is one of the defined constants.
func (s Status) IsKnown() bool {
	switch s {
	case StatusSold, StatusActive, StatusPending, StatusExpired,
		StatusWithdrawn, StatusCancelled, StatusHold, StatusNew:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
