package report

import "claimguide/internal/model"

// CatalogEntry maps a checklist key to its human label and group.
type CatalogEntry struct {
	Key   model.DocKey   `json:"key"`
	Group model.DocGroup `json:"group"`
	Label string         `json:"label"`
}

// Catalog is the fixed document catalog: 3 basic, 5 medical, 3 other.
// Partition order in the report preserves this order.
var Catalog = []CatalogEntry{
	{Key: model.DocIDCopy, Group: model.DocGroupBasic, Label: "Insured's ID card (including the appendix)"},
	{Key: model.DocVoidedCheque, Group: model.DocGroupBasic, Label: "Copy of a voided cheque or account-ownership confirmation"},
	{Key: model.DocPolicyNumber, Group: model.DocGroupBasic, Label: "Insurance policy number"},
	{Key: model.DocDischarge, Group: model.DocGroupMedical, Label: "Hospital discharge letters"},
	{Key: model.DocSpecialistOps, Group: model.DocGroupMedical, Label: "Specialist doctors' opinions"},
	{Key: model.DocTestResults, Group: model.DocGroupMedical, Label: "Relevant test results"},
	{Key: model.DocCognitiveDiag, Group: model.DocGroupMedical, Label: "Cognitive assessments"},
	{Key: model.DocContinenceOp, Group: model.DocGroupMedical, Label: "Urologist/gastro opinion (incontinence)"},
	{Key: model.DocWaiver, Group: model.DocGroupOther, Label: "Medical-information waiver (signature + trustworthy witness)"},
	{Key: model.DocCaregiverProof, Group: model.DocGroupOther, Label: "Care-worker confirmation / caregiving family member affidavit"},
	{Key: model.DocDependencyEval, Group: model.DocGroupOther, Label: "National-insurance dependency assessment confirmation"},
}

// Requirement is one entry in the always-required attachment list.
type Requirement struct {
	Text string `json:"text"`
	Tip  string `json:"tip,omitempty"`
}

// baseRequirements are attached to every submission regardless of form state.
var baseRequirements = []Requirement{
	{
		Text: "Signed claim form (the insurer's original form)",
		Tip:  "Fill it in from the details you entered here, print and sign",
	},
	{
		Text: "Signed medical-information waiver with a trustworthy witness",
		Tip:  "Trustworthy witness: a doctor, nurse, lawyer, social worker or insurance agent",
	},
	{
		Text: "Copy of the ID card including the appendix",
	},
	{
		Text: "Copy of a voided cheque / account-ownership confirmation",
		Tip:  "In the insured's name",
	},
}

// SubmissionChannel is one way to deliver the completed paperwork. Static
// content appended verbatim to the report.
type SubmissionChannel struct {
	Label string
	Value string
}

var submissionChannels = []SubmissionChannel{
	{Label: "Email", Value: "tvsiud@harel-ins.co.il"},
	{Label: "Fax", Value: "03-7348597"},
	{Label: "SMS", Value: "052-3240345"},
	{Label: "Post", Value: "Harel Insurance, Long-Term-Care Claims Dept., 3 Abba Hillel Rd., P.O. Box 10952, Ramat Gan 5252202"},
	{Label: "Receipt check", Value: "1-700-702-870 (24 hours after sending)"},
}
