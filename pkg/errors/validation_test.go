package errors

import (
	"strings"
	"testing"
)

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid lowercase", "fore", false},
		{"valid uppercase", "FORE", false},
		{"valid mixed case", "Fore", false},
		{"valid unicode letters", "über", false},
		{"single letter", "a", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"digit", "f0re", true},
		{"hyphen", "re-do", true},
		{"space", "fo re", true},
		{"null byte", "fo\x00e", true},
		{"newline", "fore\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWord(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWord(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidWord) {
				t.Errorf("error code = %v, want INVALID_WORD", GetCode(err))
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "result.txt", false},
		{"relative path", "out/result.json", false},
		{"absolute path", "/tmp/result.txt", false},

		{"empty", "", true},
		{"path traversal", "../result.txt", true},
		{"embedded traversal", "out/../etc/passwd", true},
		{"null byte", "result\x00.txt", true},
		{"control char", "result\x01.txt", true},
		{"newline", "result\n.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("error code = %v, want INVALID_PATH", GetCode(err))
			}
		})
	}
}
