package booking

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave s.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// HoldsSlot reports whether a booking in status s blocks its time slot.
func (s Status) HoldsSlot() bool {
	return s != StatusCancelled
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "Unpaid"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

type party uint8

const (
	partyCustomer party = 1 << iota
	partyBusiness
)

const anyParty = partyCustomer | partyBusiness

// transitions lists, per source status, the reachable targets and the parties allowed to move there.
var transitions = map[Status]map[Status]party{
	StatusPending: {
		StatusConfirmed: partyBusiness,
		StatusCancelled: anyParty,
	},
	StatusConfirmed: {
		StatusCompleted: partyBusiness,
		StatusCancelled: anyParty,
	},
}

// CanTransition reports whether from -> to exists in the lifecycle, regardless of who asks.
func CanTransition(from, to Status) bool {
	_, ok := transitions[from][to]
	return ok
}
