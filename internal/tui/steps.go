package tui

import (
	"claimguide/internal/model"
	"claimguide/internal/report"
	"claimguide/internal/wizard"
)

// buildControls returns the interactive controls for a step, resolved
// against the current form. Conditional sections are decided here, so a
// rebuild after a selector change immediately shows/hides dependent fields
// while their values stay in the form.
func buildControls(step wizard.Step, f *model.ClaimForm) []control {
	var cs []control
	switch step.ID {
	case wizard.StepChecklist:
		for _, e := range report.Catalog {
			cs = append(cs, newCheckControl(e.Key, e.Label))
		}
	case wizard.StepPersonal:
		cs = personalControls()
	case wizard.StepContact:
		cs = contactControls()
	case wizard.StepResidence:
		cs = residenceControls(f)
	case wizard.StepMedical:
		cs = medicalControls(f)
	case wizard.StepBank:
		cs = bankControls()
	}
	for i := range cs {
		cs[i].seed(f)
	}
	return cs
}

func personalControls() []control {
	cs := []control{
		newTextControl("Last name", true, "Cohen",
			func(f *model.ClaimForm) string { return f.LastName },
			func(f *model.ClaimForm, v string) { f.LastName = v }),
		newTextControl("First name", true, "Sara",
			func(f *model.ClaimForm) string { return f.FirstName },
			func(f *model.ClaimForm, v string) { f.FirstName = v }),
		newTextControl("ID number", true, "000000000",
			func(f *model.ClaimForm) string { return f.IDNumber },
			func(f *model.ClaimForm, v string) { f.IDNumber = v }),
		newTextControl("Date of birth", true, "YYYY-MM-DD",
			func(f *model.ClaimForm) string { return f.BirthDate },
			func(f *model.ClaimForm, v string) { f.BirthDate = v }),
		newTextControl("Mobile phone", true, "050-0000000",
			func(f *model.ClaimForm) string { return f.Mobile },
			func(f *model.ClaimForm, v string) { f.Mobile = v }),
		newTextControl("Home phone", false, "03-0000000",
			func(f *model.ClaimForm) string { return f.HomePhone },
			func(f *model.ClaimForm, v string) { f.HomePhone = v }),
		newTextControl("Email", false, "email@example.com",
			func(f *model.ClaimForm) string { return f.Email },
			func(f *model.ClaimForm, v string) { f.Email = v }),
		newChoiceControl("How would you like to receive updates?", false,
			[]choiceOption{
				{value: string(model.NotifySMS), label: "SMS to mobile"},
				{value: string(model.NotifyEmail), label: "Email"},
				{value: string(model.NotifyMail), label: "Postal mail"},
			},
			func(f *model.ClaimForm) string { return string(f.Notify) },
			func(f *model.ClaimForm, v string) { f.Notify = model.NotifyMethod(v) }),
	}
	cs[0].hint = "The family name as it appears on the ID card"
	cs[4].hint = "Used for updates on the claim's progress"
	return cs
}

func contactControls() []control {
	cs := []control{
		newTextControl("Last name", true, "",
			func(f *model.ClaimForm) string { return f.ContactLastName },
			func(f *model.ClaimForm, v string) { f.ContactLastName = v }),
		newTextControl("First name", true, "",
			func(f *model.ClaimForm) string { return f.ContactFirstName },
			func(f *model.ClaimForm, v string) { f.ContactFirstName = v }),
		newTextControl("ID number", true, "",
			func(f *model.ClaimForm) string { return f.ContactID },
			func(f *model.ClaimForm, v string) { f.ContactID = v }),
		newTextControl("Relation to the insured", true, "daughter",
			func(f *model.ClaimForm) string { return f.ContactRelation },
			func(f *model.ClaimForm, v string) { f.ContactRelation = v }),
		newTextControl("Mobile phone", true, "",
			func(f *model.ClaimForm) string { return f.ContactMobile },
			func(f *model.ClaimForm, v string) { f.ContactMobile = v }),
		newTextControl("Home phone", false, "",
			func(f *model.ClaimForm) string { return f.ContactHomePhone },
			func(f *model.ClaimForm, v string) { f.ContactHomePhone = v }),
		newTextControl("Email", false, "",
			func(f *model.ClaimForm) string { return f.ContactEmail },
			func(f *model.ClaimForm, v string) { f.ContactEmail = v }),
		newTextControl("Street", false, "",
			func(f *model.ClaimForm) string { return f.ContactStreet },
			func(f *model.ClaimForm, v string) { f.ContactStreet = v }),
		newTextControl("House number", false, "",
			func(f *model.ClaimForm) string { return f.ContactHouseNum },
			func(f *model.ClaimForm, v string) { f.ContactHouseNum = v }),
		newTextControl("City", false, "",
			func(f *model.ClaimForm) string { return f.ContactCity },
			func(f *model.ClaimForm, v string) { f.ContactCity = v }),
		newTextControl("Neighborhood", false, "",
			func(f *model.ClaimForm) string { return f.ContactNeighborhood },
			func(f *model.ClaimForm, v string) { f.ContactNeighborhood = v }),
		newTextControl("Postal code", false, "",
			func(f *model.ClaimForm) string { return f.ContactZip },
			func(f *model.ClaimForm, v string) { f.ContactZip = v }),
	}
	cs[3].hint = "E.g.: son, daughter, grandchild, sibling"
	return cs
}

func residenceControls(f *model.ClaimForm) []control {
	sel := newChoiceControl("Where does the insured live today?", true,
		[]choiceOption{
			{value: string(model.ResidenceHome), label: "At home"},
			{value: string(model.ResidenceAssisted), label: "Assisted living / retirement home"},
			{value: string(model.ResidenceNursing), label: "Nursing / geriatric facility"},
		},
		func(f *model.ClaimForm) string { return string(f.Residence) },
		func(f *model.ClaimForm, v string) { f.Residence = model.ResidenceType(v) })
	sel.reshapes = true
	cs := []control{sel}

	if wizard.ShowHomeAddress(*f) {
		cs = append(cs,
			newTextControl("Street", false, "",
				func(f *model.ClaimForm) string { return f.HomeStreet },
				func(f *model.ClaimForm, v string) { f.HomeStreet = v }),
			newTextControl("House number", false, "",
				func(f *model.ClaimForm) string { return f.HomeHouseNum },
				func(f *model.ClaimForm, v string) { f.HomeHouseNum = v }),
			newTextControl("City", false, "",
				func(f *model.ClaimForm) string { return f.HomeCity },
				func(f *model.ClaimForm, v string) { f.HomeCity = v }),
			newTextControl("Postal code", false, "",
				func(f *model.ClaimForm) string { return f.HomeZip },
				func(f *model.ClaimForm, v string) { f.HomeZip = v }),
		)
	}
	if wizard.ShowInstitution(*f) {
		cs = append(cs,
			newTextControl("Institution / retirement home name", true, "",
				func(f *model.ClaimForm) string { return f.InstitutionName },
				func(f *model.ClaimForm, v string) { f.InstitutionName = v }),
			newTextControl("Department", false, "",
				func(f *model.ClaimForm) string { return f.InstitutionDept },
				func(f *model.ClaimForm, v string) { f.InstitutionDept = v }),
			newTextControl("Entry date", false, "YYYY-MM-DD",
				func(f *model.ClaimForm) string { return f.InstitutionEntry },
				func(f *model.ClaimForm, v string) { f.InstitutionEntry = v }),
		)
	}
	return cs
}

func medicalControls(f *model.ClaimForm) []control {
	sel := newChoiceControl("What is the main reason for the claim?", true,
		[]choiceOption{
			{value: string(model.ClaimFunctional), label: "Functional limitation",
				desc: "Difficulty with daily activities: getting up, dressing, bathing, eating, continence, mobility"},
			{value: string(model.ClaimCognitive), label: "Mental frailty",
				desc: "Cognitive decline: Alzheimer's, dementia, confusion, need for supervision"},
			{value: string(model.ClaimBoth), label: "Both",
				desc: "Both functional limitation and cognitive decline"},
		},
		func(f *model.ClaimForm) string { return string(f.Claim) },
		func(f *model.ClaimForm, v string) { f.Claim = model.ClaimType(v) })
	sel.reshapes = true
	sel.hint = "Both can apply, e.g. someone with dementia who also struggles with dressing and bathing"
	cs := []control{sel}

	history := newAreaControl("Describe the medical course of events", true,
		wizard.MedicalHistoryPlaceholder(*f),
		func(f *model.ClaimForm) string { return f.MedicalHistory },
		func(f *model.ClaimForm, v string) { f.MedicalHistory = v })
	history.hint = "What illness or event? When did it start? Which treatments or hospitalizations? Use your own words."
	cs = append(cs, history)

	cs = append(cs, newChoiceControl("Did national insurance perform a dependency assessment?", false,
		[]choiceOption{
			{value: string(model.TriYes), label: "Yes"},
			{value: string(model.TriNo), label: "No"},
			{value: string(model.TriUnknown), label: "Don't know"},
		},
		func(f *model.ClaimForm) string { return string(f.DependencyAssessed) },
		func(f *model.ClaimForm, v string) { f.DependencyAssessed = model.TriState(v) }))

	if wizard.ShowMemoryClinics(*f) {
		placeholders := []string{
			"e.g.: memory clinic, central hospital",
			"e.g.: neurology clinic",
			"another institution (if any)",
		}
		for i := 0; i < len(f.MemoryClinics); i++ {
			i := i
			cs = append(cs, newTextControl("Memory clinic / cognitive institution", false, placeholders[i],
				func(f *model.ClaimForm) string { return f.MemoryClinics[i] },
				func(f *model.ClaimForm, v string) { f.MemoryClinics[i] = v }))
		}
	}

	cs = append(cs,
		newTextControl("Family doctor", false, "",
			func(f *model.ClaimForm) string { return f.FamilyDoctor },
			func(f *model.ClaimForm, v string) { f.FamilyDoctor = v }),
		newTextControl("Clinic branch", false, "",
			func(f *model.ClaimForm) string { return f.DoctorBranch },
			func(f *model.ClaimForm, v string) { f.DoctorBranch = v }),
		newTextControl("Health fund", false, "",
			func(f *model.ClaimForm) string { return f.HealthFund },
			func(f *model.ClaimForm, v string) { f.HealthFund = v }),
	)

	for i := 0; i < len(f.Specialists); i++ {
		i := i
		cs = append(cs,
			newTextControl("Specialist name", false, "",
				func(f *model.ClaimForm) string { return f.Specialists[i].Name },
				func(f *model.ClaimForm, v string) { f.Specialists[i].Name = v }),
			newTextControl("Specialty", false, wizard.SpecialistFieldPlaceholder(*f),
				func(f *model.ClaimForm) string { return f.Specialists[i].Field },
				func(f *model.ClaimForm, v string) { f.Specialists[i].Field = v }),
			newTextControl("Clinic name", false, "",
				func(f *model.ClaimForm) string { return f.Specialists[i].Clinic },
				func(f *model.ClaimForm, v string) { f.Specialists[i].Clinic = v }),
		)
	}

	for i := 0; i < len(f.Hospitalizations); i++ {
		i := i
		cs = append(cs,
			newTextControl("Hospital", false, "",
				func(f *model.ClaimForm) string { return f.Hospitalizations[i].Hospital },
				func(f *model.ClaimForm, v string) { f.Hospitalizations[i].Hospital = v }),
			newTextControl("Department / clinic", false, "",
				func(f *model.ClaimForm) string { return f.Hospitalizations[i].Dept },
				func(f *model.ClaimForm, v string) { f.Hospitalizations[i].Dept = v }),
			newTextControl("Hospitalization dates", false, "from... to...",
				func(f *model.ClaimForm) string { return f.Hospitalizations[i].Dates },
				func(f *model.ClaimForm, v string) { f.Hospitalizations[i].Dates = v }),
		)
	}

	return cs
}

func bankControls() []control {
	cs := []control{
		newTextControl("Bank name", true, "",
			func(f *model.ClaimForm) string { return f.BankName },
			func(f *model.ClaimForm, v string) { f.BankName = v }),
		newTextControl("Branch name", false, "",
			func(f *model.ClaimForm) string { return f.BranchName },
			func(f *model.ClaimForm, v string) { f.BranchName = v }),
		newTextControl("Branch number", true, "",
			func(f *model.ClaimForm) string { return f.BranchNumber },
			func(f *model.ClaimForm, v string) { f.BranchNumber = v }),
		newTextControl("Account number", true, "",
			func(f *model.ClaimForm) string { return f.AccountNumber },
			func(f *model.ClaimForm, v string) { f.AccountNumber = v }),
		newTextControl("Insurance agent name (if relevant)", false, "",
			func(f *model.ClaimForm) string { return f.AgentName },
			func(f *model.ClaimForm, v string) { f.AgentName = v }),
	}
	return cs
}
