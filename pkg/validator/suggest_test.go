package validator

import "testing"

func TestClosestKey(t *testing.T) {
	tests := []struct {
		name  string
		obj   map[string]any
		field string
		want  string
	}{
		{
			name:  "near miss",
			obj:   map[string]any{"nmae": "x"},
			field: "name",
			want:  "nmae",
		},
		{
			name:  "too far",
			obj:   map[string]any{"description": "x"},
			field: "name",
			want:  "",
		},
		{
			name:  "required field names never suggested",
			obj:   map[string]any{"id": 1, "value": 2},
			field: "name",
			want:  "",
		},
		{
			name:  "nearest of several",
			obj:   map[string]any{"vale": 1, "val": 2},
			field: "value",
			want:  "vale",
		},
		{
			name:  "deterministic on ties",
			obj:   map[string]any{"idx": 1, "ids": 2},
			field: "id",
			want:  "ids",
		},
		{
			name:  "empty object",
			obj:   map[string]any{},
			field: "id",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := closestKey(tt.obj, tt.field); got != tt.want {
				t.Errorf("closestKey(%v, %q) = %q, want %q", tt.obj, tt.field, got, tt.want)
			}
		})
	}
}
