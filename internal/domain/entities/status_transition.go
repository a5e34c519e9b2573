package entities

import "strings"

// TransitionPolicy decides whether an admin may move a record between statuses.
//
// The permissive policy accepts any known status as target, which is how the
// back office always behaved. The strict policy applies the tables below.
type TransitionPolicy string

const (
	TransitionPolicyPermissive TransitionPolicy = "permissive"
	TransitionPolicyStrict     TransitionPolicy = "strict"
)

// ParseTransitionPolicy falls back to permissive for empty or unknown values.
func ParseTransitionPolicy(v string) TransitionPolicy {
	if strings.EqualFold(strings.TrimSpace(v), string(TransitionPolicyStrict)) {
		return TransitionPolicyStrict
	}
	return TransitionPolicyPermissive
}

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusNovo:        {QuoteStatusEmAndamento, QuoteStatusAprovado},
	QuoteStatusEmAndamento: {QuoteStatusNovo, QuoteStatusAprovado, QuoteStatusConcluido},
	QuoteStatusAprovado:    {QuoteStatusEmAndamento, QuoteStatusConcluido},
	QuoteStatusConcluido:   {QuoteStatusEmAndamento, QuoteStatusEntregue},
	QuoteStatusEntregue:    {},
}

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectStatusProgress:  {ProjectStatusCompleted, ProjectStatusCancelled},
	ProjectStatusCompleted: {ProjectStatusProgress},
	ProjectStatusCancelled: {ProjectStatusProgress},
}

// AllowsQuote reports whether a quote request may go from -> to.
// The target must always be a known status. A record without status is
// treated as new; a legacy free-form status may move anywhere.
func (p TransitionPolicy) AllowsQuote(from, to QuoteStatus) bool {
	if !to.IsValid() {
		return false
	}
	if from == "" {
		from = QuoteStatusNovo
	}
	if from == to || p != TransitionPolicyStrict || !from.IsValid() {
		return true
	}
	for _, next := range quoteTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowsProject reports whether a project may go from -> to. Creation is
// modelled as from == "".
func (p TransitionPolicy) AllowsProject(from, to ProjectStatus) bool {
	if !to.IsValid() {
		return false
	}
	if from == "" || from == to || p != TransitionPolicyStrict || !from.IsValid() {
		return true
	}
	for _, next := range projectTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextQuoteStatuses lists the statuses an admin can pick for a quote in the
// given state, in workflow order.
func (p TransitionPolicy) NextQuoteStatuses(from QuoteStatus) []QuoteStatus {
	out := make([]QuoteStatus, 0, len(QuoteStatuses))
	for _, s := range QuoteStatuses {
		if p.AllowsQuote(from, s) {
			out = append(out, s)
		}
	}
	return out
}
