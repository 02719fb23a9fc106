package contact

import (
	"github.com/katalvlaran/contactnet/core"
	"github.com/shopspring/decimal"
)

// Participant is one side of a contact event.
type Participant struct {
	// ID is the opaque participant identifier (see ParticipantID).
	ID string

	// Household, Age and Sex are optional metadata; zero values mean unknown.
	Household string
	Age       *int
	Sex       string
}

// Attributes converts the participant metadata into the graph's attribute record.
func (p Participant) Attributes() core.Attributes {
	return core.Attributes{Household: p.Household, Age: p.Age, Sex: p.Sex}
}

// Event is one observed proximity contact between two participants.
// Events are immutable once loaded.
type Event struct {
	A, B Participant

	// Duration of the contact in seconds (≥ 0).
	Duration decimal.Decimal

	// Day and Hour locate the observation window.
	Day  int
	Hour int
}

// Pair returns the canonical pair key of e.
func (e Event) Pair() CanonicalPair { return Canonicalize(e.A.ID, e.B.ID) }

// ParticipantID builds a participant identifier from a household id and a
// member id: ParticipantID("H3", "2") == "H3_2".
func ParticipantID(household, member string) string {
	return household + "_" + member
}
