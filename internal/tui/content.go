package tui

import (
	"bytes"
	"fmt"
	"time"

	"claimguide/internal/model"
	"claimguide/internal/report"
	"claimguide/internal/wizard"
)

const welcomeMarkdown = `Hello! This guide walks you through preparing a long-term care claim,
step by step and in plain language.

**What happens here?**

- You answer simple questions about the insured person's situation.
- The guide tells you exactly which documents to collect.
- At the end you get an organized summary report you can print and
  submit together with the official claim forms.

**Good to know**

- Nothing is sent anywhere. Everything stays on this machine.
- You can move back and forth between steps at any time.
- Fields you skip simply show up as missing in the final report.

Press ` + "`ctrl+n`" + ` to begin.`

const checklistIntroMarkdown = `Before filling in details, check which documents you already have at
hand. Mark each document you hold; everything left unmarked appears in
the report as a to-do list.

Don't worry if most boxes stay empty. The point of this step is to
know what to chase, not to have it all today.`

// medicalExplainerMarkdown explains what the selected claim type means.
// Empty until a claim type is chosen.
func medicalExplainerMarkdown(f model.ClaimForm) string {
	var b bytes.Buffer
	if wizard.ShowFunctionalExplainer(f) {
		b.WriteString("**Functional limitation** covers difficulty with the activities of daily living:\n\n")
		for _, a := range wizard.ADLCategories {
			fmt.Fprintf(&b, "- %s\n", a)
		}
		b.WriteString("\nA claim is usually recognized when several of these are substantially impaired.\n")
	}
	if wizard.ShowCognitiveExplainer(f) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("**Mental frailty** needs a diagnosis from one of:\n\n")
		for _, s := range wizard.CognitiveSpecialties {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\nIf the insured attended a memory clinic, list it below; its assessment carries real weight.\n")
	}
	return b.String()
}

// attachmentsMarkdown lists what must accompany the claim. The list depends
// on residence and claim type, mirroring the final report.
func attachmentsMarkdown(f model.ClaimForm) string {
	var b bytes.Buffer
	b.WriteString("These must be attached to the claim. The printed report repeats\n")
	b.WriteString("this list so you can tick items off while assembling the envelope.\n\n")

	reqs := report.RequiredAttachments(f)
	for i, r := range reqs {
		fmt.Fprintf(&b, "%d. **%s**", i+1, r.Text)
		if r.Tip != "" {
			fmt.Fprintf(&b, "\n   %s", r.Tip)
		}
		b.WriteString("\n")
	}

	if wizard.ShowHomeCareProof(f) {
		b.WriteString("\n> The home-care confirmation is the item families most often\n")
		b.WriteString("> miss. Arrange it early: either the care worker's employer\n")
		b.WriteString("> confirmation or a lawyer-verified affidavit takes time.\n")
	}
	if wizard.ShowMonthlyReceiptsNotice(f) {
		b.WriteString("\n> Since the insured lives in a nursing facility, keep every\n")
		b.WriteString("> monthly payment receipt. Reimbursement claims are ongoing and\n")
		b.WriteString("> each month needs its own receipt.\n")
	}
	return b.String()
}

// summaryMarkdown reports per-section completion and document progress.
func summaryMarkdown(f model.ClaimForm, c model.Checklist) string {
	r := report.Generate(f, c, time.Now())

	var b bytes.Buffer
	b.WriteString("Here is where things stand.\n\n**Form sections**\n\n")
	for _, s := range r.FormSections {
		mark := glyphUnchecked()
		if s.Complete() {
			mark = glyphChecked()
		}
		fmt.Fprintf(&b, "- %s %s (%d of %d filled)\n", mark, s.Title, s.FilledCount(), len(s.Items))
	}

	fmt.Fprintf(&b, "\n**Documents**\n\nMarked as in hand: %d of %d.\n",
		len(r.DocsReady), len(r.DocsReady)+len(r.DocsMissing))
	if len(r.DocsMissing) > 0 {
		b.WriteString("Still missing:\n\n")
		for _, label := range r.DocsMissing {
			fmt.Fprintf(&b, "- %s\n", label)
		}
	} else {
		b.WriteString("Every document is accounted for.\n")
	}

	b.WriteString("\nPress `g` to generate the printable report, or `r` to start over.\n")
	return b.String()
}
