package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	defer func(v, c string) { Version, GitCommit = v, c }(Version, GitCommit)

	tests := []struct {
		version  string
		commit   string
		expected string
	}{
		{"dev", "unknown", "dev"},
		{"dev", "0123456789abcdef", "dev"},
		{"1.2.0", "unknown", "1.2.0"},
		{"1.2.0", "0123456789abcdef", "1.2.0+0123456"},
		{"1.2.0", "abc", "1.2.0+abc"},
	}

	for _, tt := range tests {
		Version, GitCommit = tt.version, tt.commit
		if got := GetFullVersion(); got != tt.expected {
			t.Errorf("GetFullVersion failed: expected %q, got %q", tt.expected, got)
		}
	}
}
