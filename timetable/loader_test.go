package timetable

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestReadRecords(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []Record
		wantErr  bool
	}{
		{
			name:    "plain file",
			content: "departure,arrival\n07:00,07:12\n07:08,07:20\n",
			expected: []Record{
				{Departure: "07:00", Arrival: "07:12"},
				{Departure: "07:08", Arrival: "07:20"},
			},
		},
		{
			name:    "leading BOM is stripped",
			content: "\uFEFFdeparture,arrival\n07:00,07:12\n",
			expected: []Record{
				{Departure: "07:00", Arrival: "07:12"},
			},
		},
		{
			name:    "swapped column order",
			content: "arrival,departure\n07:12,07:00\n",
			expected: []Record{
				{Departure: "07:00", Arrival: "07:12"},
			},
		},
		{
			name:    "headers matched case-insensitively",
			content: "Departure,ARRIVAL\n07:00,07:12\n",
			expected: []Record{
				{Departure: "07:00", Arrival: "07:12"},
			},
		},
		{
			name:     "header only yields no records",
			content:  "departure,arrival\n",
			expected: []Record{},
		},
		{
			name:    "missing arrival column",
			content: "departure,line\n07:00,fast\n",
			wantErr: true,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, "leg.csv", tt.content)
			got, err := ReadRecords(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d records, got %d", len(tt.expected), len(got))
			}
			for i, rec := range got {
				if rec != tt.expected[i] {
					t.Errorf("record %d: expected %v, got %v", i, tt.expected[i], rec)
				}
			}
		})
	}
}

func TestReadRecords_MissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Error("reading a missing file should return an error")
	}
}

func TestParseTrains(t *testing.T) {
	recs := []Record{
		{Departure: "07:00", Arrival: "07:12"},
		{Departure: "23:50", Arrival: "00:40"},
	}
	trains, err := ParseTrains(recs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []Train{
		{Departure: 420, Arrival: 432},
		{Departure: 1430, Arrival: 40},
	}
	for i, tr := range trains {
		if tr != expected[i] {
			t.Errorf("train %d: expected %v, got %v", i, expected[i], tr)
		}
	}
}

func TestParseTrains_MalformedClock(t *testing.T) {
	tests := []struct {
		name string
		recs []Record
	}{
		{
			name: "bad departure",
			recs: []Record{{Departure: "7am", Arrival: "07:12"}},
		},
		{
			name: "bad arrival",
			recs: []Record{{Departure: "07:00", Arrival: "712"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTrains(tt.recs); err == nil {
				t.Error("expected error for malformed clock text")
			}
		})
	}
}
