package utils

import "testing"

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		input       string
		expected    bool
		description string
	}{
		{"hello", true, "plain word"},
		{"word2vec", true, "digits mixed in"},
		{"", false, "empty string"},
		{"12345", false, "only numbers"},
		{"foo!bar", false, "special characters"},
		{"user@host", false, "at sign"},
		{"aaaa", false, "repetitive mashing"},
		{"aa", true, "two repeats allowed"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := IsValidInput(tc.input); got != tc.expected {
				t.Errorf("IsValidInput(%q): expected %v, got %v", tc.input, tc.expected, got)
			}
		})
	}
}

func TestIsRepetitive(t *testing.T) {
	if IsRepetitive("ab") || IsRepetitive("abc") {
		t.Error("non-repetitive strings flagged")
	}
	if !IsRepetitive("www") {
		t.Error("'www' should be repetitive")
	}
}
