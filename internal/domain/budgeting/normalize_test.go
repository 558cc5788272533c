package budgeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lower case passes through", input: "food", expected: "food"},
		{name: "mixed case is lowered", input: "Food", expected: "food"},
		{name: "surrounding space is trimmed", input: "  Travel ", expected: "travel"},
		{name: "empty maps to sentinel", input: "", expected: SentinelCategory},
		{name: "blank maps to sentinel", input: "   ", expected: SentinelCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Food", DisplayName("food"))
	assert.Equal(t, "Food", DisplayName(" FOOD "))
	assert.Equal(t, "Other", DisplayName(""))
	assert.Equal(t, "Éducation", DisplayName("éducation"))
}

func TestSameCategory(t *testing.T) {
	assert.True(t, SameCategory("Food", "food "))
	assert.True(t, SameCategory("", "Other"))
	assert.False(t, SameCategory("food", "rent"))
}
