package cli

import "testing"

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name                  string
		version, commit, date string
	}{
		{"release build", "0.3.1", "9f2c41a", "2026-08-30"},
		{"dev build with empty fields", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version, tt.commit, tt.date)

			if version != tt.version {
				t.Errorf("version = %q, want %q", version, tt.version)
			}
			if commit != tt.commit {
				t.Errorf("commit = %q, want %q", commit, tt.commit)
			}
			if date != tt.date {
				t.Errorf("date = %q, want %q", date, tt.date)
			}
		})
	}
}
