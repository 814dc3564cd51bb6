package catalog

type Kind string

const (
	KindVenue    Kind = "venue"
	KindDecor    Kind = "decor"
	KindCatering Kind = "catering"
	KindMenu     Kind = "menu"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	_, ok := kindRequirements[k]
	return ok
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// requirements is the per-kind set of mandatory attributes beyond the title.
type requirements struct {
	description bool
	venue       bool
	occasions   bool
}

var kindRequirements = map[Kind]requirements{
	KindVenue:    {description: true, occasions: true},
	KindDecor:    {description: true, venue: true},
	KindCatering: {description: true, venue: true},
	KindMenu:     {venue: true},
}
