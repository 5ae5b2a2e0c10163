package record

import "testing"

func TestExclude(t *testing.T) {
	records := []Record{
		{ID: 1, Name: "tmp_build", Value: 1},
		{ID: 2, Name: "tmp_cache", Value: 2},
		{ID: 3, Name: "report_tmp", Value: 3},
		{ID: 4, Name: "weekly_report", Value: 4},
		{ID: 5, Name: "inventory", Value: 5},
		{ID: 6, Name: "tmp", Value: 6},
	}

	tests := []struct {
		name      string
		patterns  []string
		wantNames []string
	}{
		{
			name:      "exact match",
			patterns:  []string{"tmp"},
			wantNames: []string{"tmp_build", "tmp_cache", "report_tmp", "weekly_report", "inventory"},
		},
		{
			name:      "prefix wildcard",
			patterns:  []string{"tmp*"},
			wantNames: []string{"report_tmp", "weekly_report", "inventory"},
		},
		{
			name:      "suffix wildcard",
			patterns:  []string{"*tmp"},
			wantNames: []string{"tmp_build", "tmp_cache", "weekly_report", "inventory"},
		},
		{
			name:      "contains wildcard",
			patterns:  []string{"*tmp*"},
			wantNames: []string{"weekly_report", "inventory"},
		},
		{
			name:      "multiple patterns",
			patterns:  []string{"tmp*", "*report"},
			wantNames: []string{"report_tmp", "inventory"},
		},
		{
			name:      "no patterns",
			patterns:  []string{},
			wantNames: []string{"tmp_build", "tmp_cache", "report_tmp", "weekly_report", "inventory", "tmp"},
		},
		{
			name:      "non-matching pattern",
			patterns:  []string{"nonexistent*"},
			wantNames: []string{"tmp_build", "tmp_cache", "report_tmp", "weekly_report", "inventory", "tmp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Exclude(records, tt.patterns)

			if len(result) != len(tt.wantNames) {
				t.Errorf("Exclude() returned %d records, want %d", len(result), len(tt.wantNames))
			}

			for i, want := range tt.wantNames {
				if i >= len(result) {
					break
				}
				if result[i].Name != want {
					t.Errorf("Exclude()[%d].Name = %q, want %q", i, result[i].Name, want)
				}
			}
		})
	}
}

func TestExclude_PreservesOrder(t *testing.T) {
	records := []Record{
		{ID: 3, Name: "c", Value: 3},
		{ID: 1, Name: "a", Value: 1},
		{ID: 2, Name: "b", Value: 2},
	}

	result := Exclude(records, []string{"b"})
	if len(result) != 2 {
		t.Fatalf("Exclude() returned %d records, want 2", len(result))
	}
	if result[0].ID != 3 || result[1].ID != 1 {
		t.Errorf("Exclude() reordered records: %+v", result)
	}
}
