// Package seed loads sample records for demonstration and local development.
// Records go through the normal create path so they are validated, id
// numbered, and timestamped like user data.
package seed

import (
	"fmt"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

// StoreOpener hands out the store for one entity definition.
type StoreOpener func(def entity.Definition) entity.Store

// Apply creates the sample records for every entity in the registry that has
// seed data. Entities already holding records are skipped so a re-run does
// not duplicate them.
func Apply(reg *entity.Registry, open StoreOpener) error {
	for _, name := range reg.Names() {
		data, ok := samples[name]
		if !ok {
			continue
		}
		def, err := reg.Get(name)
		if err != nil {
			return err
		}
		store := open(def)
		count, err := store.Count()
		if err != nil {
			return fmt.Errorf("seeding %s: %w", name, err)
		}
		if count > 0 {
			continue
		}
		for _, rec := range data {
			if _, err := store.Create(rec.Clone()); err != nil {
				return fmt.Errorf("seeding %s: %w", name, err)
			}
		}
	}
	return nil
}

var samples = map[string][]entity.Record{
	"rfis": {
		{
			"title":        "Clarify steel connection detail at grid C-5",
			"question":     "Drawing S-301 shows a moment connection but the schedule calls for a shear tab. Which governs?",
			"discipline":   "Structural",
			"priority":     "High",
			"status":       "Open",
			"submitted_by": "John Smith",
			"assigned_to":  "Design Team",
			"due_date":     "2026-09-15",
			"cost_impact":  true,
		},
		{
			"title":        "Paint color for lobby accent wall",
			"question":     "Finish schedule lists two different colors for the lobby accent wall. Please confirm.",
			"discipline":   "Architectural",
			"priority":     "Low",
			"status":       "Answered",
			"submitted_by": "Maria Rodriguez",
			"cost_impact":  false,
		},
		{
			"title":        "Duct routing conflict above corridor 2B",
			"question":     "Supply duct clashes with sprinkler main above corridor 2B. Propose rerouting per attached sketch.",
			"discipline":   "Mechanical",
			"priority":     "Medium",
			"status":       "In Review",
			"submitted_by": "John Smith",
			"assigned_to":  "MEP Engineer",
			"due_date":     "2026-09-20",
			"cost_impact":  false,
		},
	},
	"submittals": {
		{
			"title":         "Structural steel shop drawings",
			"spec_section":  "05 12 00",
			"contractor":    "Steel Experts Inc",
			"status":        "In Review",
			"type":          "Shop Drawings",
			"date_required": "2026-09-10",
		},
		{
			"title":        "Curtain wall product data",
			"spec_section": "08 44 13",
			"contractor":   "Glass Facade Co",
			"status":       "Pending",
			"type":         "Product Data",
		},
	},
	"contracts": {
		{
			"vendor":          "ABC Excavation",
			"description":     "Site preparation and excavation work",
			"contract_amount": 485000.0,
			"status":          "Active",
			"execution_date":  "2026-02-01",
			"contact_email":   "john@abcexcavation.com",
		},
		{
			"vendor":          "Steel Experts Inc",
			"description":     "Structural steel supply and installation",
			"contract_amount": 1250000.0,
			"status":          "Active",
			"execution_date":  "2026-02-10",
			"contact_email":   "maria@steelexperts.com",
		},
	},
	"daily_reports": {
		{
			"report_date":      "2026-08-24",
			"work_performed":   "Site clearing and initial excavation",
			"weather":          "Sunny, 72F",
			"workers_present":  12.0,
			"trades":           []string{"Sitework"},
			"delays":           "None",
			"safety_incidents": "None",
		},
		{
			"report_date":     "2026-08-25",
			"work_performed":  "Continued excavation, started foundation forms",
			"weather":         "Partly cloudy, 68F",
			"workers_present": 15.0,
			"trades":          []string{"Sitework", "Concrete"},
			"delays":          "Concrete delivery delayed 2 hours",
		},
	},
	"observations": {
		{
			"description":   "Missing guardrail at floor opening, level 3",
			"location":      "Level 3, grid B-4",
			"type":          "Safety Concern",
			"severity":      "High",
			"status":        "Open",
			"reported_by":   "Site Safety Officer",
			"observed_date": "2026-08-26",
		},
		{
			"description": "Well organized laydown area for steel deliveries",
			"location":    "North yard",
			"type":        "Good Practice",
			"severity":    "Low",
			"status":      "Closed",
			"reported_by": "Superintendent",
		},
	},
	"budgets": {
		{
			"category":        "Sitework",
			"description":     "Excavation, grading, and utilities",
			"original_budget": 520000.0,
			"current_budget":  540000.0,
			"committed_costs": 485000.0,
			"actual_costs":    310000.0,
		},
		{
			"category":        "Structure",
			"description":     "Concrete and structural steel",
			"original_budget": 2100000.0,
			"current_budget":  2100000.0,
			"committed_costs": 1250000.0,
			"actual_costs":    0.0,
		},
	},
}
