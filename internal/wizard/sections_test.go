package wizard

import (
	"strings"
	"testing"

	"claimguide/internal/model"
)

func TestResidenceSections(t *testing.T) {
	cases := []struct {
		residence   model.ResidenceType
		home        bool
		institution bool
		receipts    bool
	}{
		{model.ResidenceUnset, false, false, false},
		{model.ResidenceHome, true, false, false},
		{model.ResidenceAssisted, false, true, false},
		{model.ResidenceNursing, false, true, true},
	}
	for _, c := range cases {
		f := model.ClaimForm{Residence: c.residence}
		if got := ShowHomeAddress(f); got != c.home {
			t.Errorf("%q: ShowHomeAddress = %v, want %v", c.residence, got, c.home)
		}
		if got := ShowInstitution(f); got != c.institution {
			t.Errorf("%q: ShowInstitution = %v, want %v", c.residence, got, c.institution)
		}
		if got := ShowMonthlyReceiptsNotice(f); got != c.receipts {
			t.Errorf("%q: ShowMonthlyReceiptsNotice = %v, want %v", c.residence, got, c.receipts)
		}
		if got := ShowHomeCareProof(f); got != c.home {
			t.Errorf("%q: ShowHomeCareProof = %v, want %v", c.residence, got, c.home)
		}
	}
	// Home address and institution are mutually exclusive for every value.
	for _, r := range []model.ResidenceType{model.ResidenceUnset, model.ResidenceHome, model.ResidenceAssisted, model.ResidenceNursing} {
		f := model.ClaimForm{Residence: r}
		if ShowHomeAddress(f) && ShowInstitution(f) {
			t.Errorf("%q: home address and institution both visible", r)
		}
	}
}

func TestClaimSections(t *testing.T) {
	cases := []struct {
		claim      model.ClaimType
		cognitive  bool
		functional bool
	}{
		{model.ClaimUnset, false, false},
		{model.ClaimFunctional, false, true},
		{model.ClaimCognitive, true, false},
		{model.ClaimBoth, true, true},
	}
	for _, c := range cases {
		f := model.ClaimForm{Claim: c.claim}
		if got := ShowCognitiveExplainer(f); got != c.cognitive {
			t.Errorf("%q: ShowCognitiveExplainer = %v, want %v", c.claim, got, c.cognitive)
		}
		if got := ShowMemoryClinics(f); got != c.cognitive {
			t.Errorf("%q: ShowMemoryClinics = %v, want %v", c.claim, got, c.cognitive)
		}
		if got := ShowFunctionalExplainer(f); got != c.functional {
			t.Errorf("%q: ShowFunctionalExplainer = %v, want %v", c.claim, got, c.functional)
		}
	}
}

func TestPlaceholdersFollowClaimType(t *testing.T) {
	plain := model.ClaimForm{Claim: model.ClaimFunctional}
	cog := model.ClaimForm{Claim: model.ClaimCognitive}

	if MedicalHistoryPlaceholder(plain) == MedicalHistoryPlaceholder(cog) {
		t.Fatalf("expected a distinct history placeholder for cognitive claims")
	}
	if !strings.Contains(SpecialistFieldPlaceholder(cog), "geriatrician") {
		t.Fatalf("cognitive specialist placeholder should suggest a geriatrician: %q", SpecialistFieldPlaceholder(cog))
	}
	// A claim of "both" uses the cognitive variants.
	both := model.ClaimForm{Claim: model.ClaimBoth}
	if MedicalHistoryPlaceholder(both) != MedicalHistoryPlaceholder(cog) {
		t.Fatalf("'both' should use the cognitive history placeholder")
	}
}
