package query

import (
	"testing"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

func sample() []entity.Record {
	return []entity.Record{
		{"id": "RFI-001", "title": "Roof leak at north wing", "status": "Open", "priority": "High"},
		{"id": "RFI-002", "title": "Conduit routing", "status": "Closed", "priority": "Low"},
		{"id": "RFI-003", "title": "Foundation depth", "status": "Open", "priority": "Medium"},
	}
}

func ids(records []entity.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID()
	}
	return out
}

func TestSearchEmptyTermReturnsInput(t *testing.T) {
	records := sample()
	got := Search(records, "", []string{"title"})
	if len(got) != len(records) {
		t.Fatalf("Search with empty term = %d records, want %d", len(got), len(records))
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   []string
	}{
		{"substring in title", "leak", []string{"title"}, []string{"RFI-001"}},
		{"case insensitive", "ROOF", []string{"title"}, []string{"RFI-001"}},
		{"matches id field", "rfi-002", []string{"id", "title"}, []string{"RFI-002"}},
		{"any configured field", "foundation", []string{"id", "title"}, []string{"RFI-003"}},
		{"no match", "elevator", []string{"title"}, nil},
		{"unknown field", "leak", []string{"nonexistent"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Search(sample(), tt.term, tt.fields))
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %v, want %v", tt.term, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Search(%q) = %v, want %v", tt.term, got, tt.want)
				}
			}
		})
	}
}

func TestFilterAllSentinel(t *testing.T) {
	records := sample()
	got := Filter(records, "status", FilterAll)
	if len(got) != len(records) {
		t.Fatalf("Filter(All) = %d records, want unchanged %d", len(got), len(records))
	}
}

func TestFilterEquality(t *testing.T) {
	got := ids(Filter(sample(), "status", "Open"))
	if len(got) != 2 || got[0] != "RFI-001" || got[1] != "RFI-003" {
		t.Fatalf("Filter(status=Open) = %v", got)
	}

	if got := Filter(sample(), "status", "Answered"); len(got) != 0 {
		t.Errorf("Filter(status=Answered) = %v, want none", ids(got))
	}
}

func TestFilterComposesWithSearch(t *testing.T) {
	records := sample()
	narrowed := Search(records, "o", []string{"title"}) // all three titles contain "o"
	narrowed = Filter(narrowed, "status", "Open")
	narrowed = Filter(narrowed, "priority", "High")
	got := ids(narrowed)
	if len(got) != 1 || got[0] != "RFI-001" {
		t.Fatalf("composed query = %v, want [RFI-001]", got)
	}
}

func TestFilterStringifiesValues(t *testing.T) {
	records := []entity.Record{
		{"id": "A-001", "workers": float64(12)},
		{"id": "A-002", "workers": float64(15)},
	}
	got := ids(Filter(records, "workers", "12"))
	if len(got) != 1 || got[0] != "A-001" {
		t.Fatalf("Filter(workers=12) = %v", got)
	}
}

func TestOptions(t *testing.T) {
	got := Options(sample(), "status")
	want := []string{"All", "Closed", "Open"}
	if len(got) != len(want) {
		t.Fatalf("Options = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Options = %v, want %v", got, want)
		}
	}
}

func TestOptionsSkipsEmptyAndAbsent(t *testing.T) {
	records := []entity.Record{
		{"id": "A-001", "status": "Open"},
		{"id": "A-002", "status": ""},
		{"id": "A-003"},
	}
	got := Options(records, "status")
	if len(got) != 2 || got[0] != "All" || got[1] != "Open" {
		t.Fatalf("Options = %v, want [All Open]", got)
	}
}
