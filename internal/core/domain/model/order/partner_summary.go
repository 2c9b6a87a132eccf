package order

// claimantPlaceholder is shown when a claiming partner has neither a full
// name nor an email on record. Nothing beyond the display label is ever
// revealed about another partner.
const claimantPlaceholder = "Partner"

// PartnerSummary is the reduced view of the partner who claimed an order.
// The upstream includes it on assigned orders so other partners can see who
// holds the claim without exposing the full identity record.
type PartnerSummary struct {
	fullName string
	email    string
}

// NewPartnerSummary creates a claimant summary. Both fields are optional;
// the zero summary simply labels the claimant with a generic placeholder.
func NewPartnerSummary(fullName, email string) PartnerSummary {
	return PartnerSummary{fullName: fullName, email: email}
}

// FullName returns the claimant's full name, empty when unknown.
func (s PartnerSummary) FullName() string { return s.fullName }

// Email returns the claimant's email, empty when unknown.
func (s PartnerSummary) Email() string { return s.email }

// Label returns the display label for the claimant: full name, else email,
// else a generic placeholder.
func (s PartnerSummary) Label() string {
	if s.fullName != "" {
		return s.fullName
	}
	if s.email != "" {
		return s.email
	}
	return claimantPlaceholder
}
