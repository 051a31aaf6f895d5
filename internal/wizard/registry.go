package wizard

// StepKind distinguishes screens that only inform from screens that collect
// fields.
type StepKind int

const (
	StepInfo StepKind = iota
	StepForm
)

// StepID identifies a step in the guided sequence.
type StepID string

const (
	StepWelcome     StepID = "welcome"
	StepChecklist   StepID = "checklist"
	StepPersonal    StepID = "personal"
	StepContact     StepID = "contact"
	StepResidence   StepID = "residence"
	StepMedical     StepID = "medical"
	StepBank        StepID = "bank"
	StepAttachments StepID = "attachments"
	StepSummary     StepID = "summary"
)

type Step struct {
	ID       StepID   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Kind     StepKind `json:"-"`
}

// KindName is the wire name of the step kind for CLI output.
func (s Step) KindName() string {
	if s.Kind == StepForm {
		return "form"
	}
	return "info"
}

// Steps is the fixed guided sequence. Order is significant: it defines
// navigation order and the progress math.
var Steps = []Step{
	{ID: StepWelcome, Title: "Welcome", Subtitle: "A guide to filing a long-term-care claim", Kind: StepInfo},
	{ID: StepChecklist, Title: "What to prepare", Subtitle: "Documents and details worth having at hand", Kind: StepInfo},
	{ID: StepPersonal, Title: "Personal details", Subtitle: "About the insured person", Kind: StepForm},
	{ID: StepContact, Title: "Contact person", Subtitle: "Who will accompany the claim", Kind: StepForm},
	{ID: StepResidence, Title: "Place of residence", Subtitle: "Where the insured lives today", Kind: StepForm},
	{ID: StepMedical, Title: "Medical information", Subtitle: "The condition and the treating doctors", Kind: StepForm},
	{ID: StepBank, Title: "Bank details", Subtitle: "For transferring benefits", Kind: StepForm},
	{ID: StepAttachments, Title: "Required attachments", Subtitle: "Forms that others need to fill in", Kind: StepInfo},
	{ID: StepSummary, Title: "Summary", Subtitle: "A final check before submitting", Kind: StepInfo},
}

// IndexOf returns the position of a step id, or -1.
func IndexOf(id StepID) int {
	for i, s := range Steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}
