package booking

import (
	"regexp"
	"slices"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// EventDate is a calendar day in YYYY-MM-DD form. Slots never cross midnight.
type EventDate struct {
	value string
}

func NewEventDate(s string) (EventDate, error) {
	if s == "" {
		return EventDate{}, ErrMissingField
	}
	if !datePattern.MatchString(s) {
		return EventDate{}, ErrMalformedField
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return EventDate{}, ErrMalformedField
	}
	return EventDate{value: s}, nil
}

func (d EventDate) String() string { return d.value }

// ClockTime is a zero-padded 24h HH:mm wall-clock time. Its fixed width makes string order equal time order.
type ClockTime struct {
	value string
}

func NewClockTime(s string) (ClockTime, error) {
	if s == "" {
		return ClockTime{}, ErrMissingField
	}
	if !clockPattern.MatchString(s) {
		return ClockTime{}, ErrMalformedField
	}
	return ClockTime{value: s}, nil
}

func (t ClockTime) String() string { return t.value }

func (t ClockTime) Before(other ClockTime) bool {
	return t.value < other.value
}

// Interval is the half-open range [start, end) within one day.
type Interval struct {
	start ClockTime
	end   ClockTime
}

func NewInterval(start, end ClockTime) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidRange
	}
	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() ClockTime { return i.start }
func (i Interval) End() ClockTime   { return i.end }

// Overlaps is symmetric; intervals that only touch at a boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i, other)
}

func Overlaps(a, b Interval) bool {
	return !(a.end.value <= b.start.value || a.start.value >= b.end.value)
}

// Selections holds the decor, catering and menu items attached to a booking.
// The set is only ever replaced as a whole.
type Selections struct {
	decorIDs    []uuid.UUID
	cateringIDs []uuid.UUID
	menuIDs     []uuid.UUID
}

func NewSelections(decorIDs, cateringIDs, menuIDs []uuid.UUID) Selections {
	return Selections{
		decorIDs:    dedupe(decorIDs),
		cateringIDs: dedupe(cateringIDs),
		menuIDs:     dedupe(menuIDs),
	}
}

func (s Selections) DecorIDs() []uuid.UUID    { return slices.Clone(s.decorIDs) }
func (s Selections) CateringIDs() []uuid.UUID { return slices.Clone(s.cateringIDs) }
func (s Selections) MenuIDs() []uuid.UUID     { return slices.Clone(s.menuIDs) }

func (s Selections) All() []uuid.UUID {
	all := make([]uuid.UUID, 0, len(s.decorIDs)+len(s.cateringIDs)+len(s.menuIDs))
	all = append(all, s.decorIDs...)
	all = append(all, s.cateringIDs...)
	return append(all, s.menuIDs...)
}

func (s Selections) IsEmpty() bool {
	return len(s.decorIDs) == 0 && len(s.cateringIDs) == 0 && len(s.menuIDs) == 0
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
