package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTodoStatus(t *testing.T) {
	s, err := ParseTodoStatus(" Done ")
	require.NoError(t, err)
	assert.Equal(t, TodoStatusDone, s)

	_, err = ParseTodoStatus("closed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"low", PriorityLow},
		{"MED", PriorityMed},
		{"medium", PriorityMed},
		{"high", PriorityHigh},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestPriority_Rank(t *testing.T) {
	assert.Less(t, PriorityHigh.Rank(), PriorityMed.Rank())
	assert.Less(t, PriorityMed.Rank(), PriorityLow.Rank())
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories() {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("rant")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestParseIgnorePolicy(t *testing.T) {
	for _, p := range AllIgnorePolicies() {
		got, err := ParseIgnorePolicy(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.NotEmpty(t, p.Describe())
	}

	_, err := ParseIgnorePolicy("everywhere")
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestDefaults_EffectiveIgnorePolicy(t *testing.T) {
	var nilDefaults *Defaults
	assert.Equal(t, IgnorePolicyNone, nilDefaults.EffectiveIgnorePolicy())
	assert.Equal(t, IgnorePolicyNone, (&Defaults{Preferences: Preferences{IgnorePolicy: "bogus"}}).EffectiveIgnorePolicy())
	assert.Equal(t, IgnorePolicyLocal, (&Defaults{Preferences: Preferences{IgnorePolicy: IgnorePolicyLocal}}).EffectiveIgnorePolicy())
}

func TestDefaults_AuthorName(t *testing.T) {
	assert.Equal(t, "ana", (&Defaults{User: UserDefaults{Name: "ana"}}).AuthorName("bob"))
	assert.Equal(t, "bob", (&Defaults{}).AuthorName("bob"))
	assert.Equal(t, "dev", (&Defaults{}).AuthorName(""))
}

func TestIsUsageError(t *testing.T) {
	assert.True(t, IsUsageError(ErrTaskNotFound))
	assert.False(t, IsUsageError(assert.AnError))
}
