package entities

import "testing"

func TestParseTransitionPolicy(t *testing.T) {
	if got := ParseTransitionPolicy(" Strict "); got != TransitionPolicyStrict {
		t.Fatalf("expected strict, got %s", got)
	}
	for _, v := range []string{"", "permissive", "whatever"} {
		if got := ParseTransitionPolicy(v); got != TransitionPolicyPermissive {
			t.Fatalf("expected permissive for %q, got %s", v, got)
		}
	}
}

func TestTransitionPolicy_AllowsQuote(t *testing.T) {
	cases := []struct {
		name   string
		policy TransitionPolicy
		from   QuoteStatus
		to     QuoteStatus
		want   bool
	}{
		{"permissive any known", TransitionPolicyPermissive, QuoteStatusEntregue, QuoteStatusNovo, true},
		{"permissive rejects unknown target", TransitionPolicyPermissive, QuoteStatusNovo, "Aprovdo", false},
		{"strict allowed", TransitionPolicyStrict, QuoteStatusNovo, QuoteStatusAprovado, true},
		{"strict blocked", TransitionPolicyStrict, QuoteStatusNovo, QuoteStatusEntregue, false},
		{"strict delivered is final", TransitionPolicyStrict, QuoteStatusEntregue, QuoteStatusEmAndamento, false},
		{"strict same status", TransitionPolicyStrict, QuoteStatusEntregue, QuoteStatusEntregue, true},
		{"strict empty is new", TransitionPolicyStrict, "", QuoteStatusEmAndamento, true},
		{"strict empty is new blocked", TransitionPolicyStrict, "", QuoteStatusEntregue, false},
		{"strict legacy value moves anywhere", TransitionPolicyStrict, "Em análise", QuoteStatusEntregue, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.policy.AllowsQuote(tc.from, tc.to); got != tc.want {
				t.Fatalf("AllowsQuote(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestTransitionPolicy_AllowsProject(t *testing.T) {
	if !TransitionPolicyPermissive.AllowsProject(ProjectStatusCancelled, ProjectStatusCompleted) {
		t.Fatalf("permissive policy should allow cancelled -> completed")
	}
	if TransitionPolicyStrict.AllowsProject(ProjectStatusCancelled, ProjectStatusCompleted) {
		t.Fatalf("strict policy should block cancelled -> completed")
	}
	if !TransitionPolicyStrict.AllowsProject("", ProjectStatusCompleted) {
		t.Fatalf("creation should accept any known status")
	}
	if TransitionPolicyPermissive.AllowsProject(ProjectStatusProgress, "done") {
		t.Fatalf("unknown target must be rejected")
	}
}

func TestTransitionPolicy_NextQuoteStatuses(t *testing.T) {
	got := TransitionPolicyStrict.NextQuoteStatuses(QuoteStatusNovo)
	want := []QuoteStatus{QuoteStatusNovo, QuoteStatusEmAndamento, QuoteStatusAprovado}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if all := TransitionPolicyPermissive.NextQuoteStatuses(QuoteStatusEntregue); len(all) != len(QuoteStatuses) {
		t.Fatalf("permissive policy should offer every status, got %v", all)
	}
}

func TestStatusDisplayText(t *testing.T) {
	if QuoteStatus("").DisplayText() != "Novo" {
		t.Fatalf("empty quote status should display as Novo")
	}
	if QuoteStatus("Em análise").DisplayText() != "Em análise" {
		t.Fatalf("unknown quote status should pass through")
	}
	if ProjectStatusCancelled.DisplayText() != "Cancelado" {
		t.Fatalf("unexpected project label")
	}
	if ProjectStatus("paused").DisplayText() != "paused" {
		t.Fatalf("unknown project status should pass through")
	}
}
