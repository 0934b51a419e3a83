package entity

// Builtin returns a registry preloaded with the standard dashboard entity
// set. A project's entities.yaml can extend it with further types; these
// definitions themselves never change at runtime.
func Builtin() *Registry {
	r := NewRegistry()
	for _, def := range builtinDefinitions {
		// Definitions below are statically well-formed.
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	return r
}

func fptr(f float64) *float64 { return &f }

var builtinDefinitions = []Definition{
	{
		Name: "rfis",
		Schema: Schema{
			IDPrefix: "RFI",
			Fields: []Field{
				{Name: "title", FieldSpec: FieldSpec{Type: TypeString, Required: true}},
				{Name: "question", FieldSpec: FieldSpec{Type: TypeTextarea, Required: true}},
				{Name: "discipline", FieldSpec: FieldSpec{Type: TypeSelect, Options: []string{"Architectural", "Structural", "Mechanical", "Electrical", "Plumbing", "Civil"}}},
				{Name: "priority", FieldSpec: FieldSpec{Type: TypeSelect, Options: []string{"Low", "Medium", "High", "Critical"}}},
				{Name: "status", FieldSpec: FieldSpec{Type: TypeSelect, Options: []string{"Open", "In Review", "Answered", "Closed"}}},
				{Name: "submitted_by", FieldSpec: FieldSpec{Type: TypeString}},
				{Name: "assigned_to", FieldSpec: FieldSpec{Type: TypeString}},
				{Name: "due_date", FieldSpec: FieldSpec{Type: TypeDate}},
				{Name: "cost_impact", FieldSpec: FieldSpec{Type: TypeBoolean}},
			},
		},
		Display: DisplayConfig{
			Title:           "RFI Management",
			ItemName:        "RFI",
			TitleField:      "title",
			KeyFields:       []string{"id", "status", "priority"},
			DetailFields:    []string{"discipline", "assigned_to", "due_date"},
			SearchFields:    []string{"id", "title", "question"},
			PrimaryFilter:   &FilterRef{Field: "status", Label: "Status"},
			SecondaryFilter: &FilterRef{Field: "priority", Label: "Priority"},
		},
	},
	{
		Name: "submittals",
		Schema: Schema{
			IDPrefix: "SUB",
			Fields: []Field{
				{Name: "title", FieldSpec: FieldSpec{Type: TypeString, Required: true}},
				{Name: "spec_section", FieldSpec: FieldSpec{Type: TypeString, Required: true}},
				{Name: "contractor", FieldSpec: FieldSpec{Type: TypeString}},
				{Name: "status", FieldSpec: FieldSpec{Type: TypeSelect, Options: []string{"Pending", "In Review", "Approved", "Revise and Resubmit", "Rejected"}}},
				{Name: "type", FieldSpec: FieldSpec{Type: TypeSelect, Options: []string{"Product Data", "Shop Drawings", "Samples", "Mock-ups"}}},
				{Name: "date_required", FieldSpec: FieldSpec{Type: TypeDate}},
				{Name: "notes", FieldSpec: FieldSpec{Type: TypeTextarea}},
			},
		},
		Display: DisplayConfig{
			Title:           "Submittals",
			ItemName:        "Submittal",
			TitleField:      "title",
			KeyFields:       []string{"id", "status", "spec_section"},
			DetailFields:    []string{"contractor", "type", "date_required"},
			SearchFields:    []string{"id", "title", "spec_section"},
			PrimaryFilter:   &FilterRef{Field: "status", Label: "Status"},
			SecondaryFilter: &FilterRef{Field: "type", Label: "Type"},
		},
	},
	{
		Name: "contracts",
		Schema: Schema{
			IDPrefix: "PC",
			Fields: []Field{
				{Name: "vendor", FieldSpec: FieldSpec{Type: TypeString, Required: true}},
				{Name: "description", FieldSpec: FieldSpec{Type: TypeTextarea, Required: true}},
				{Name: "contract_amount", FieldSpec: FieldSpec{Type: TypeCurrency, Min: fptr(0)}},
				{Name: "status", FieldSpec: FieldSpec{Type: TypeSelect, Options: []string{"Draft", "Active", "Completed", "Terminated"}}},
				{Name: "execution_date", FieldSpec: FieldSpec{Type: TypeDate}},
				{Name: "completion_date", FieldSpec: FieldSpec{Type: TypeDate}},
				{Name: "contact_email", FieldSpec: FieldSpec{Type: TypeEmail}},
			},
		},
		Display: DisplayConfig{
			Title:         "Prime Contracts",
			ItemName:      "Contract",
			TitleField:    "vendor",
			KeyFields:     []string{"id", "status", "contract_amount"},
			DetailFields:  []string{"execution_date", "completion_date", "contact_email"},
			SearchFields:  []string{"id", "vendor", "description"},
			PrimaryFilter: &FilterRef{Field: "status", Label: "Status"},
		},
	},
	{
		Name: "daily_reports",
		Schema: Schema{
			IDPrefix: "DR",
			Fields: []Field{
				{Name: "report_date", FieldSpec: FieldSpec{Type: TypeDate, Required: true}},
				{Name: "work_performed", FieldSpec: FieldSpec{Type: TypeTextarea, Required: true}},
				{Name: "weather", FieldSpec: FieldSpec{Type: TypeString}},
				{Name: "workers_present", FieldSpec: FieldSpec{Type: TypeNumber, Min: fptr(0), Step: fptr(1)}},
				{Name: "trades", FieldSpec: FieldSpec{Type: TypeMultiSelect, Options: []string{"Concrete", "Steel", "Electrical", "Plumbing", "HVAC", "Drywall", "Sitework"}}},
				{Name: "delays", FieldSpec: FieldSpec{Type: TypeTextarea}},
				{Name: "safety_incidents", FieldSpec: FieldSpec{Type: TypeTextarea}},
			},
		},
		Display: DisplayConfig{
			Title:        "Daily Reports",
			ItemName:     "Daily Report",
			TitleField:   "report_date",
			KeyFields:    []string{"id", "report_date", "workers_present"},
			DetailFields: []string{"weather", "delays"},
			SearchFields: []string{"id", "work_performed", "weather"},
		},
	},
	{
		Name: "observations",
		Schema: Schema{
			IDPrefix: "OBS",
			Fields: []Field{
				{Name: "description", FieldSpec: FieldSpec{Type: TypeTextarea, Required: true}},
				{Name: "location", FieldSpec: FieldSpec{Type: TypeString, Required: true}},
				{Name: "type", FieldSpec: FieldSpec{Type: TypeSelect, Options: []string{"Safety Concern", "Quality Issue", "Good Practice"}}},
				{Name: "severity", FieldSpec: FieldSpec{Type: TypeSelect, Options: []string{"Low", "Medium", "High"}}},
				{Name: "status", FieldSpec: FieldSpec{Type: TypeSelect, Options: []string{"Open", "In Progress", "Addressed", "Closed"}}},
				{Name: "reported_by", FieldSpec: FieldSpec{Type: TypeString}},
				{Name: "observed_date", FieldSpec: FieldSpec{Type: TypeDate}},
			},
		},
		Display: DisplayConfig{
			Title:           "Safety Observations",
			ItemName:        "Observation",
			TitleField:      "description",
			KeyFields:       []string{"id", "status", "severity"},
			DetailFields:    []string{"location", "reported_by", "observed_date"},
			SearchFields:    []string{"id", "description", "location"},
			PrimaryFilter:   &FilterRef{Field: "status", Label: "Status"},
			SecondaryFilter: &FilterRef{Field: "severity", Label: "Severity"},
		},
	},
	{
		Name: "budgets",
		Schema: Schema{
			IDPrefix: "BUD",
			Fields: []Field{
				{Name: "category", FieldSpec: FieldSpec{Type: TypeString, Required: true}},
				{Name: "description", FieldSpec: FieldSpec{Type: TypeTextarea}},
				{Name: "original_budget", FieldSpec: FieldSpec{Type: TypeCurrency, Min: fptr(0)}},
				{Name: "current_budget", FieldSpec: FieldSpec{Type: TypeCurrency, Min: fptr(0)}},
				{Name: "committed_costs", FieldSpec: FieldSpec{Type: TypeCurrency, Min: fptr(0)}},
				{Name: "actual_costs", FieldSpec: FieldSpec{Type: TypeCurrency, Min: fptr(0)}},
			},
		},
		Display: DisplayConfig{
			Title:        "Budget Lines",
			ItemName:     "Budget Line",
			TitleField:   "category",
			KeyFields:    []string{"id", "category", "current_budget"},
			DetailFields: []string{"committed_costs", "actual_costs"},
			SearchFields: []string{"id", "category", "description"},
		},
	},
}
