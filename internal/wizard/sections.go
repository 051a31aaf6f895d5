package wizard

import "claimguide/internal/model"

// Conditional section resolution. Everything here is stateless: visibility is
// recomputed from the current form on every render, so changing an upstream
// selector immediately hides dependent sections. Hidden sections keep their
// underlying field values (see model.ClaimForm).

// ShowHomeAddress: home street/number/city/zip fields on the residence step.
func ShowHomeAddress(f model.ClaimForm) bool {
	switch f.Residence {
	case model.ResidenceHome:
		return true
	case model.ResidenceAssisted, model.ResidenceNursing, model.ResidenceUnset:
		return false
	}
	return false
}

// ShowInstitution: institution name/department/entry-date fields.
func ShowInstitution(f model.ClaimForm) bool {
	switch f.Residence {
	case model.ResidenceAssisted, model.ResidenceNursing:
		return true
	case model.ResidenceHome, model.ResidenceUnset:
		return false
	}
	return false
}

// ShowMonthlyReceiptsNotice: the nursing-facility receipts card.
func ShowMonthlyReceiptsNotice(f model.ClaimForm) bool {
	return f.Residence == model.ResidenceNursing
}

// ShowCognitiveExplainer: the mental-frailty explainer on the medical step.
func ShowCognitiveExplainer(f model.ClaimForm) bool { return f.Claim.Cognitive() }

// ShowFunctionalExplainer: the six-ADL explainer on the medical step.
func ShowFunctionalExplainer(f model.ClaimForm) bool { return f.Claim.Functional() }

// ShowMemoryClinics: the up-to-three memory clinic inputs.
func ShowMemoryClinics(f model.ClaimForm) bool { return f.Claim.Cognitive() }

// ShowHomeCareProof: the home-care proof card on the attachments step.
func ShowHomeCareProof(f model.ClaimForm) bool {
	return f.Residence == model.ResidenceHome
}

// MedicalHistoryPlaceholder varies the free-text hint with the claim type.
func MedicalHistoryPlaceholder(f model.ClaimForm) string {
	if f.Claim.Cognitive() {
		return "E.g.: Dad was diagnosed with Alzheimer's-type dementia in 2021 at the memory clinic. Since then there has been a marked decline - he no longer recognizes family members, gets confused about time and place, and needs close supervision..."
	}
	return "E.g.: Mom was diagnosed with Alzheimer's in 2022. Her condition deteriorated gradually. In August 2024 she was hospitalized after a fall..."
}

// SpecialistFieldPlaceholder varies the specialist-field hint with the claim
// type.
func SpecialistFieldPlaceholder(f model.ClaimForm) string {
	if f.Claim.Cognitive() {
		return "geriatrician, neurologist, psychogeriatrician..."
	}
	return "neurologist, orthopedist..."
}

// ADLCategories are the six activities of daily living checked for a
// functional claim.
var ADLCategories = []string{
	"Getting up and lying down",
	"Dressing and undressing",
	"Bathing",
	"Eating and drinking",
	"Continence",
	"Mobility",
}

// CognitiveSpecialties are the specialties qualified to diagnose mental
// frailty.
var CognitiveSpecialties = []string{
	"Geriatrician", "Psychiatrist", "Psychogeriatrician", "Neurologist",
}
