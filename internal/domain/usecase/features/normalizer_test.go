package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input       string
		expected    string
		description string
	}{
		{"PAYROLL JAN", "payroll jan", "Upper case folds"},
		{"Bet365 *Deposit!!", "bet deposit", "Digits and punctuation become spaces"},
		{"", "", "Empty input"},
		{"   ", "", "Whitespace only"},
		{"NETFLIX.COM", "netflix com", "Domain separator splits words"},
		{"amazon   prime", "amazon prime", "Runs of whitespace collapse"},
		{"\trent\n due ", "rent due", "Tabs and newlines collapse"},
		{"£1,200.00", "", "No letters at all"},
		{"Café", "caf", "Non-ASCII letters are stripped"},
		{"a", "a", "Single letter"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"PAYROLL JAN", "Bet365 *Deposit!!", "amazon   prime video"}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}
