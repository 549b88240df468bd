package errors

import (
	"strings"
	"testing"
)

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"builtin", "g:Vertex", false},
		{"strategy", "g:SubgraphStrategy", false},
		{"custom prefix", "janusgraph:RelationIdentifier", false},
		{"dotted prefix", "x.y:Future", false},

		{"empty", "", true},
		{"no separator", "Vertex", true},
		{"empty prefix", ":Vertex", true},
		{"empty name", "g:", true},
		{"two separators", "g:a:b", true},
		{"space", "g:Ver tex", true},
		{"too long", "g:" + strings.Repeat("a", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTag(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTag(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTag) {
				t.Errorf("ValidateTag(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidTag)
			}
		})
	}
}

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"g", "g", false},
		{"vendor", "tinker", false},

		{"empty", "", true},
		{"leading digit", "1g", true},
		{"colon", "g:", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrefix(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
