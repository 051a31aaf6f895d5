package report

import (
	"strings"
	"time"

	"claimguide/internal/model"
	"claimguide/internal/wizard"
)

// Item is one labeled report row. Value is nil when the backing field(s)
// are empty or whitespace-only.
type Item struct {
	Label string  `json:"label"`
	Value *string `json:"value"`
}

// Section is a derived group of report items.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Complete reports whether the section has at least one filled item and no
// missing items. A section with zero items is never complete.
func (s Section) Complete() bool {
	if len(s.Items) == 0 {
		return false
	}
	for _, it := range s.Items {
		if it.Value == nil {
			return false
		}
	}
	return true
}

// FilledCount returns how many items carry a value.
func (s Section) FilledCount() int {
	n := 0
	for _, it := range s.Items {
		if it.Value != nil {
			n++
		}
	}
	return n
}

// Report is the point-in-time completeness summary, a pure function of the
// form and checklist. It is consumed by the renderers only.
type Report struct {
	InsuredName    string        `json:"insuredName"`
	GeneratedAt    string        `json:"generatedAt"`
	FormSections   []Section     `json:"formSections"`
	DocsReady      []string      `json:"docsReady"`
	DocsMissing    []string      `json:"docsMissing"`
	AlwaysRequired []Requirement `json:"alwaysRequired"`
}

// NameFallback is shown when the insured's name is incomplete.
const NameFallback = "not specified"

// Generate derives the readiness report from the current session state. It is
// total over arbitrary (possibly empty) input and never fails; absent fields
// simply come out as missing items.
func Generate(f model.ClaimForm, c model.Checklist, now time.Time) Report {
	insured := f.FullName()
	if insured == "" {
		insured = NameFallback
	}

	r := Report{
		InsuredName: insured,
		// Day-first, as the original claim form uses.
		GeneratedAt: now.Format("02/01/2006"),
		FormSections: []Section{
			personalSection(f),
			contactSection(f),
			residenceSection(f),
			medicalSection(f),
			bankSection(f),
		},
	}

	for _, e := range Catalog {
		if c.Have(e.Key) {
			r.DocsReady = append(r.DocsReady, e.Label)
		} else {
			r.DocsMissing = append(r.DocsMissing, e.Label)
		}
	}

	r.AlwaysRequired = RequiredAttachments(f)

	return r
}

// RequiredAttachments lists what must accompany the claim. Conditional
// entries append in a fixed order regardless of which conditions fire:
// home-care proof, monthly receipts, cognitive diagnosis.
func RequiredAttachments(f model.ClaimForm) []Requirement {
	reqs := append([]Requirement(nil), baseRequirements...)
	if f.Residence == model.ResidenceHome {
		reqs = append(reqs, Requirement{
			Text: "Confirmation of care for most hours of the day",
			Tip:  "From a care worker (plus an employment permit) or a family member's affidavit verified by a lawyer",
		})
	}
	if f.Residence == model.ResidenceNursing {
		reqs = append(reqs, Requirement{
			Text: "Monthly receipts from the nursing facility",
			Tip:  "Must be forwarded month by month",
		})
	}
	if f.Claim.Cognitive() {
		reqs = append(reqs, Requirement{
			Text: "Cognitive assessment / specialist opinion in the field",
			Tip:  "From a geriatrician, psychiatrist, psychogeriatrician or neurologist; attach a memory-clinic assessment if one exists",
		})
	}
	return reqs
}

// value wraps a field as a report value, nil when empty.
func value(s string) *string {
	if !model.Filled(s) {
		return nil
	}
	s = strings.TrimSpace(s)
	return &s
}

// composite yields a value only when every part is filled.
func composite(join string, parts ...string) *string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if !model.Filled(p) {
			return nil
		}
		out = append(out, strings.TrimSpace(p))
	}
	s := strings.Join(out, join)
	return &s
}

func personalSection(f model.ClaimForm) Section {
	return Section{
		Title: "Insured's personal details",
		Items: []Item{
			{Label: "Full name", Value: composite(" ", f.FirstName, f.LastName)},
			{Label: "ID number", Value: value(f.IDNumber)},
			{Label: "Date of birth", Value: value(f.BirthDate)},
			{Label: "Mobile phone", Value: value(f.Mobile)},
			{Label: "Home phone", Value: value(f.HomePhone)},
			{Label: "Email", Value: value(f.Email)},
		},
	}
}

func contactSection(f model.ClaimForm) Section {
	return Section{
		Title: "Contact person for the claim",
		Items: []Item{
			{Label: "Full name", Value: composite(" ", f.ContactFirstName, f.ContactLastName)},
			{Label: "ID number", Value: value(f.ContactID)},
			{Label: "Relation", Value: value(f.ContactRelation)},
			{Label: "Mobile phone", Value: value(f.ContactMobile)},
			{Label: "Email", Value: value(f.ContactEmail)},
		},
	}
}

func residenceLabel(r model.ResidenceType) *string {
	var s string
	switch r {
	case model.ResidenceHome:
		s = "At home"
	case model.ResidenceAssisted:
		s = "Assisted living / retirement home"
	case model.ResidenceNursing:
		s = "Nursing facility"
	case model.ResidenceUnset:
		return nil
	default:
		return nil
	}
	return &s
}

func residenceSection(f model.ClaimForm) Section {
	s := Section{
		Title: "Place of residence",
		Items: []Item{
			{Label: "Residence type", Value: residenceLabel(f.Residence)},
		},
	}
	// Conditional items mirror the live section resolver, so values entered
	// under a since-changed residence type do not leak into the report.
	if wizard.ShowHomeAddress(f) {
		var addr *string
		if model.Filled(f.HomeStreet) {
			a := strings.TrimSpace(strings.TrimSpace(f.HomeStreet+" "+f.HomeHouseNum) + ", " + f.HomeCity)
			a = strings.TrimSuffix(a, ",")
			addr = &a
		}
		s.Items = append(s.Items, Item{Label: "Address", Value: addr})
	}
	if wizard.ShowInstitution(f) {
		s.Items = append(s.Items,
			Item{Label: "Institution name", Value: value(f.InstitutionName)},
			Item{Label: "Entry date", Value: value(f.InstitutionEntry)},
		)
	}
	return s
}

func claimLabel(c model.ClaimType) *string {
	var s string
	switch c {
	case model.ClaimFunctional:
		s = "Functional limitation"
	case model.ClaimCognitive:
		s = "Mental frailty"
	case model.ClaimBoth:
		s = "Functional limitation + mental frailty"
	case model.ClaimUnset:
		return nil
	default:
		return nil
	}
	return &s
}

func triLabel(t model.TriState) *string {
	var s string
	switch t {
	case model.TriYes:
		s = "Yes"
	case model.TriNo:
		s = "No"
	case model.TriUnknown:
		s = "Not known"
	case model.TriUnset:
		return nil
	default:
		return nil
	}
	return &s
}

func medicalSection(f model.ClaimForm) Section {
	var history *string
	if model.Filled(f.MedicalHistory) {
		h := "provided"
		history = &h
	}
	s := Section{
		Title: "Medical information",
		Items: []Item{
			{Label: "Claim type", Value: claimLabel(f.Claim)},
			{Label: "Condition description", Value: history},
			{Label: "National-insurance assessment", Value: triLabel(f.DependencyAssessed)},
			{Label: "Family doctor", Value: value(f.FamilyDoctor)},
			{Label: "Health fund", Value: value(f.HealthFund)},
		},
	}
	// Memory clinics only appear for cognitive claims, and only the non-empty
	// entries are kept.
	if wizard.ShowMemoryClinics(f) {
		labels := []string{"Memory clinic 1", "Memory clinic 2", "Memory clinic 3"}
		for i, clinic := range f.MemoryClinics {
			if v := value(clinic); v != nil {
				s.Items = append(s.Items, Item{Label: labels[i], Value: v})
			}
		}
	}
	return s
}

func bankSection(f model.ClaimForm) Section {
	var branch *string
	if model.Filled(f.BranchNumber) {
		b := strings.TrimSpace(f.BranchName)
		if b != "" {
			b += " "
		}
		b += "(" + strings.TrimSpace(f.BranchNumber) + ")"
		branch = &b
	}
	return Section{
		Title: "Bank details",
		Items: []Item{
			{Label: "Bank", Value: value(f.BankName)},
			{Label: "Branch", Value: branch},
			{Label: "Account number", Value: value(f.AccountNumber)},
		},
	}
}
