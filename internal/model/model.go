package model

import "strings"

// ResidenceType says where the insured currently lives. It gates which
// address fields are collected and which proof-of-care documents are
// required.
type ResidenceType string

const (
	ResidenceUnset    ResidenceType = ""
	ResidenceHome     ResidenceType = "home"
	ResidenceAssisted ResidenceType = "assisted"
	ResidenceNursing  ResidenceType = "nursing"
)

// ClaimType is the declared category of the underlying care claim.
type ClaimType string

const (
	ClaimUnset      ClaimType = ""
	ClaimFunctional ClaimType = "functional"
	ClaimCognitive  ClaimType = "cognitive"
	ClaimBoth       ClaimType = "both"
)

// Cognitive reports whether the claim includes a cognitive component.
func (c ClaimType) Cognitive() bool { return c == ClaimCognitive || c == ClaimBoth }

// Functional reports whether the claim includes a functional component.
func (c ClaimType) Functional() bool { return c == ClaimFunctional || c == ClaimBoth }

type NotifyMethod string

const (
	NotifyUnset NotifyMethod = ""
	NotifySMS   NotifyMethod = "sms"
	NotifyEmail NotifyMethod = "email"
	NotifyMail  NotifyMethod = "mail"
)

// TriState is a yes/no/don't-know answer.
type TriState string

const (
	TriUnset   TriState = ""
	TriYes     TriState = "yes"
	TriNo      TriState = "no"
	TriUnknown TriState = "unknown"
)

type Specialist struct {
	Name   string `json:"name,omitempty"`
	Field  string `json:"field,omitempty"`
	Clinic string `json:"clinic,omitempty"`
}

type Hospitalization struct {
	Hospital string `json:"hospital,omitempty"`
	Dept     string `json:"dept,omitempty"`
	Dates    string `json:"dates,omitempty"`
}

// ClaimForm holds everything the user enters across the wizard, one named
// field per input. All fields are optional drafts; nothing here is validated
// or persisted. Fields for sections the user has since hidden (e.g. home
// address after switching residence type) keep their values so no data is
// lost if the user switches back; consumers re-derive visibility from the
// current selector values.
type ClaimForm struct {
	// Insured person.
	FirstName string       `json:"firstName,omitempty"`
	LastName  string       `json:"lastName,omitempty"`
	IDNumber  string       `json:"idNumber,omitempty"`
	BirthDate string       `json:"birthDate,omitempty"`
	Mobile    string       `json:"mobile,omitempty"`
	HomePhone string       `json:"homePhone,omitempty"`
	Email     string       `json:"email,omitempty"`
	Notify    NotifyMethod `json:"notify,omitempty"`

	// Contact person accompanying the claim.
	ContactFirstName    string `json:"contactFirstName,omitempty"`
	ContactLastName     string `json:"contactLastName,omitempty"`
	ContactID           string `json:"contactId,omitempty"`
	ContactRelation     string `json:"contactRelation,omitempty"`
	ContactMobile       string `json:"contactMobile,omitempty"`
	ContactHomePhone    string `json:"contactHomePhone,omitempty"`
	ContactEmail        string `json:"contactEmail,omitempty"`
	ContactStreet       string `json:"contactStreet,omitempty"`
	ContactHouseNum     string `json:"contactHouseNum,omitempty"`
	ContactCity         string `json:"contactCity,omitempty"`
	ContactNeighborhood string `json:"contactNeighborhood,omitempty"`
	ContactZip          string `json:"contactZip,omitempty"`

	// Residence.
	Residence        ResidenceType `json:"residence,omitempty"`
	HomeStreet       string        `json:"homeStreet,omitempty"`
	HomeHouseNum     string        `json:"homeHouseNum,omitempty"`
	HomeCity         string        `json:"homeCity,omitempty"`
	HomeZip          string        `json:"homeZip,omitempty"`
	InstitutionName  string        `json:"institutionName,omitempty"`
	InstitutionDept  string        `json:"institutionDept,omitempty"`
	InstitutionEntry string        `json:"institutionEntry,omitempty"`

	// Medical.
	Claim              ClaimType          `json:"claim,omitempty"`
	MedicalHistory     string             `json:"medicalHistory,omitempty"`
	DependencyAssessed TriState           `json:"dependencyAssessed,omitempty"`
	MemoryClinics      [3]string          `json:"memoryClinics,omitempty"`
	FamilyDoctor       string             `json:"familyDoctor,omitempty"`
	DoctorBranch       string             `json:"doctorBranch,omitempty"`
	HealthFund         string             `json:"healthFund,omitempty"`
	Specialists        [2]Specialist      `json:"specialists,omitempty"`
	Hospitalizations   [2]Hospitalization `json:"hospitalizations,omitempty"`

	// Bank.
	BankName      string `json:"bankName,omitempty"`
	BranchName    string `json:"branchName,omitempty"`
	BranchNumber  string `json:"branchNumber,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AgentName     string `json:"agentName,omitempty"`
}

// Filled reports whether a field value counts as provided: non-empty after
// trimming whitespace. This is the single definition of "filled" used by the
// wizard and the report generator.
func Filled(s string) bool { return strings.TrimSpace(s) != "" }

// FullName returns "First Last" when both parts are filled, else "".
func (f ClaimForm) FullName() string {
	return composeName(f.FirstName, f.LastName)
}

// ContactFullName returns the contact's composite name, or "" unless both
// parts are filled.
func (f ClaimForm) ContactFullName() string {
	return composeName(f.ContactFirstName, f.ContactLastName)
}

func composeName(first, last string) string {
	if !Filled(first) || !Filled(last) {
		return ""
	}
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
}

// DocKey identifies one entry in the fixed document catalog.
type DocKey string

// DocGroup is the catalog grouping a document key belongs to.
type DocGroup string

const (
	DocGroupBasic   DocGroup = "basic"
	DocGroupMedical DocGroup = "medical"
	DocGroupOther   DocGroup = "other"
)

const (
	DocIDCopy         DocKey = "basic-id"
	DocVoidedCheque   DocKey = "basic-cheque"
	DocPolicyNumber   DocKey = "basic-policy"
	DocDischarge      DocKey = "med-discharge"
	DocSpecialistOps  DocKey = "med-specialist-opinions"
	DocTestResults    DocKey = "med-tests"
	DocCognitiveDiag  DocKey = "med-cognitive"
	DocContinenceOp   DocKey = "med-continence"
	DocWaiver         DocKey = "other-waiver"
	DocCaregiverProof DocKey = "other-caregiver"
	DocDependencyEval DocKey = "other-dependency"
)

// Checklist tracks which catalog documents the user already has in hand.
// A missing key means "not marked yet".
type Checklist map[DocKey]bool

// Have reports whether the document was marked as in hand. Safe on nil.
func (c Checklist) Have(k DocKey) bool { return c != nil && c[k] }

// Toggle flips one document flag. Unlike Have, it writes through the map and
// therefore requires an initialized Checklist.
func (c Checklist) Toggle(k DocKey) { c[k] = !c[k] }
