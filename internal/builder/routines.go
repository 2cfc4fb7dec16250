package builder

import "github.com/caseflow/go-intake/internal/model"

// categoryRoutines maps each taxonomy category to its specialized routine.
// Keys must match the taxonomy names exactly.
var categoryRoutines = map[string]routine{
	"Family Law":                       (*Builder).familyLaw,
	"Employment Law":                   (*Builder).employmentLaw,
	"Criminal Law":                     (*Builder).criminalLaw,
	"Real Estate Law":                  (*Builder).realEstateLaw,
	"Business/Corporate Law":           (*Builder).businessCorporateLaw,
	"Immigration Law":                  (*Builder).immigrationLaw,
	"Personal Injury Law":              (*Builder).personalInjuryLaw,
	"Wills, Trusts, & Estates Law":     (*Builder).willsTrustsEstatesLaw,
	"Bankruptcy, Finances, & Tax Law":  (*Builder).bankruptcyFinancesTaxLaw,
	"Government & Administrative Law":  (*Builder).governmentAdministrativeLaw,
	"Product & Services Liability Law": (*Builder).productServicesLiabilityLaw,
	"Intellectual Property Law":        (*Builder).intellectualPropertyLaw,
	"Landlord/Tenant Law":              (*Builder).landlordTenantLaw,
}

// familyLaw is the only routine that varies its fields by subcategory: the
// marriage and separation dates apply to Divorce intakes alone.
func (b *Builder) familyLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	family := model.NewSection("Family Details", "Additional information needed for family law cases")
	if subcategory == "Divorce" {
		family.AddField(model.MustField("marriage_date", "Date of Marriage", model.FieldTypeDate,
			model.Required()))
		family.AddField(model.MustField("separation_date", "Date of Separation", model.FieldTypeDate))
	}

	form.AddSection(family)
	return form
}

func (b *Builder) employmentLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	employment := model.NewSection("Employment Details", "Information about your employment")
	employment.AddField(model.MustField("employer", "Employer Name", model.FieldTypeText,
		model.Required()))
	employment.AddField(model.MustField("employment_date", "Employment Start Date", model.FieldTypeDate,
		model.Required()))

	form.AddSection(employment)
	return form
}

func (b *Builder) criminalLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	criminal := model.NewSection("Criminal Case Details", "Information about the criminal matter")
	criminal.AddField(model.MustField("incident_date", "Date of Incident", model.FieldTypeDate,
		model.Required()))
	criminal.AddField(model.MustField("arrest_status", "Current Status", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions("Under Investigation", "Arrested", "Charged", "On Bail", "Not Applicable")))
	criminal.AddField(model.MustField("court_date", "Next Court Date (if applicable)", model.FieldTypeDate))

	form.AddSection(criminal)
	return form
}

func (b *Builder) realEstateLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	property := model.NewSection("Property Information", "Details about the property involved")
	property.AddField(model.MustField("property_address", "Property Address", model.FieldTypeText,
		model.Required()))
	property.AddField(model.MustField("property_type", "Property Type", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions("Residential", "Commercial", "Industrial", "Land")))
	property.AddField(model.MustField("estimated_value", "Estimated Property Value", model.FieldTypeNumber,
		model.Required()))

	form.AddSection(property)
	return form
}

func (b *Builder) businessCorporateLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	business := model.NewSection("Business Information", "Details about the business entity")
	business.AddField(model.MustField("business_name", "Business Name", model.FieldTypeText,
		model.Required()))
	business.AddField(model.MustField("business_type", "Business Type", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions("Corporation", "LLC", "Partnership", "Sole Proprietorship")))
	business.AddField(model.MustField("annual_revenue", "Annual Revenue", model.FieldTypeNumber,
		model.Required()))

	form.AddSection(business)
	return form
}

func (b *Builder) immigrationLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	immigration := model.NewSection("Immigration Details", "Information about immigration status")
	immigration.AddField(model.MustField("citizenship", "Current Citizenship", model.FieldTypeText,
		model.Required()))
	immigration.AddField(model.MustField("visa_status", "Current Visa Status", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions("None", "Tourist", "Student", "Work", "Permanent Resident")))
	immigration.AddField(model.MustField("entry_date", "Date of Entry to US", model.FieldTypeDate,
		model.Required()))

	form.AddSection(immigration)
	return form
}

func (b *Builder) personalInjuryLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	injury := model.NewSection("Injury Information", "Details about the injury")
	injury.AddField(model.MustField("injury_date", "Date of Injury", model.FieldTypeDate,
		model.Required()))
	injury.AddField(model.MustField("injury_type", "Type of Injury", model.FieldTypeText,
		model.Required()))
	injury.AddField(model.MustField("medical_treatment", "Medical Treatment Received", model.FieldTypeTextarea,
		model.Required()))

	form.AddSection(injury)
	return form
}

func (b *Builder) willsTrustsEstatesLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	estate := model.NewSection("Estate Information", "Details about the estate or trust")
	estate.AddField(model.MustField("estate_type", "Type of Estate Matter", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions("Will Creation", "Trust Formation", "Probate", "Estate Administration")))
	estate.AddField(model.MustField("estate_value", "Estimated Estate Value", model.FieldTypeNumber,
		model.Required()))
	estate.AddField(model.MustField("beneficiaries", "Number of Beneficiaries", model.FieldTypeNumber,
		model.Required()))

	form.AddSection(estate)
	return form
}

func (b *Builder) bankruptcyFinancesTaxLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	financial := model.NewSection("Financial Information", "Details about financial situation")
	financial.AddField(model.MustField("bankruptcy_type", "Type of Bankruptcy", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions("Chapter 7", "Chapter 11", "Chapter 13")))
	financial.AddField(model.MustField("total_debt", "Total Debt Amount", model.FieldTypeNumber,
		model.Required()))
	financial.AddField(model.MustField("asset_value", "Total Asset Value", model.FieldTypeNumber,
		model.Required()))

	form.AddSection(financial)
	return form
}

func (b *Builder) governmentAdministrativeLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	admin := model.NewSection("Administrative Details", "Information about the administrative matter")
	admin.AddField(model.MustField("agency", "Government Agency Involved", model.FieldTypeText,
		model.Required()))
	admin.AddField(model.MustField("case_number", "Agency Case Number", model.FieldTypeText))
	admin.AddField(model.MustField("hearing_date", "Next Hearing Date", model.FieldTypeDate))

	form.AddSection(admin)
	return form
}

func (b *Builder) productServicesLiabilityLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	liability := model.NewSection("Product/Service Information", "Details about the product or service")
	liability.AddField(model.MustField("product_name", "Product/Service Name", model.FieldTypeText,
		model.Required()))
	liability.AddField(model.MustField("purchase_date", "Date of Purchase", model.FieldTypeDate,
		model.Required()))
	liability.AddField(model.MustField("incident_date", "Date of Incident", model.FieldTypeDate,
		model.Required()))
	liability.AddField(model.MustField("damages", "Description of Damages/Injuries", model.FieldTypeTextarea,
		model.Required()))

	form.AddSection(liability)
	return form
}

func (b *Builder) intellectualPropertyLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	ip := model.NewSection("Intellectual Property Information", "Details about the intellectual property")
	ip.AddField(model.MustField("ip_type", "Type of Intellectual Property", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions("Patent", "Trademark", "Copyright", "Trade Secret")))
	ip.AddField(model.MustField("registration_status", "Registration Status", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions("Not Registered", "Pending", "Registered", "Expired")))
	ip.AddField(model.MustField("registration_number", "Registration Number (if applicable)", model.FieldTypeText))
	ip.AddField(model.MustField("creation_date", "Date of Creation/First Use", model.FieldTypeDate,
		model.Required()))

	form.AddSection(ip)
	return form
}

func (b *Builder) landlordTenantLaw(category, subcategory string) *model.Form {
	form := b.defaultForm(category, subcategory)

	property := model.NewSection("Rental Property Information", "Details about the rental property")
	property.AddField(model.MustField("property_address", "Property Address", model.FieldTypeText,
		model.Required()))
	property.AddField(model.MustField("lease_type", "Type of Lease", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions("Month-to-Month", "Fixed Term", "Sublease", "Commercial")))
	property.AddField(model.MustField("lease_start", "Lease Start Date", model.FieldTypeDate,
		model.Required()))
	property.AddField(model.MustField("monthly_rent", "Monthly Rent Amount", model.FieldTypeNumber,
		model.Required()))
	property.AddField(model.MustField("security_deposit", "Security Deposit Amount", model.FieldTypeNumber,
		model.Required()))
	property.AddField(model.MustField("party_type", "Are you the Landlord or Tenant?", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions("Landlord", "Tenant", "Property Manager")))

	issue := model.NewSection("Issue Information", "Details about the current issue")
	issue.AddField(model.MustField("issue_type", "Type of Issue", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions(
			"Non-payment of Rent",
			"Lease Violation",
			"Property Damage",
			"Maintenance Issue",
			"Eviction",
			"Security Deposit Dispute",
			"Other",
		)))
	issue.AddField(model.MustField("issue_date", "Date Issue Began", model.FieldTypeDate,
		model.Required()))
	issue.AddField(model.MustField("issue_description", "Detailed Description of Issue", model.FieldTypeTextarea,
		model.Required(),
		model.WithRules(model.Rules{model.RuleMinLength: 50, model.RuleMaxLength: 2000})))
	issue.AddField(model.MustField("prior_notice", "Has Written Notice Been Given?", model.FieldTypeSelect,
		model.Required(),
		model.WithOptions("Yes", "No")))
	issue.AddField(model.MustField("notice_date", "Date Notice Given (if applicable)", model.FieldTypeDate))

	form.AddSection(property)
	form.AddSection(issue)
	return form
}
