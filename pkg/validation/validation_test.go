package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", " user.name+tag@sub.example.org ", "a_b@x.io"}
	invalid := []string{"", "user", "user@", "@example.com", "user@example", "user example@x.com"}

	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidPeriodHours(t *testing.T) {
	for _, h := range []int{1, 3, 6, 12} {
		assert.True(t, IsValidPeriodHours(h))
	}
	for _, h := range []int{0, -1, 2, 24} {
		assert.False(t, IsValidPeriodHours(h))
	}
}

func TestTrimAndValidate(t *testing.T) {
	s, ok := TrimAndValidate("  Kyiv ")
	assert.True(t, ok)
	assert.Equal(t, "Kyiv", s)

	_, ok = TrimAndValidate("   ")
	assert.False(t, ok)
	assert.False(t, IsNotEmpty("\t"))
}
