package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdate_Apply(t *testing.T) {
	p := &Profile{Nickname: strPtr("old"), Gender: strPtr("male"), Positions: []int{1}}

	level := 3
	positions := []int{2, 4}
	ProfileUpdate{Nickname: strPtr("Al"), Level: &level, Positions: &positions}.Apply(p)

	assert.Equal(t, "Al", *p.Nickname)
	assert.Equal(t, "male", *p.Gender, "unset fields are untouched")
	assert.Equal(t, 3, *p.Level)
	assert.Equal(t, []int{2, 4}, p.Positions)

	positions[0] = 9
	assert.Equal(t, []int{2, 4}, p.Positions, "positions are copied")
}

func TestProfileUpdate_IsEmpty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.IsEmpty())
	assert.False(t, ProfileUpdate{Foot: strPtr("left")}.IsEmpty())
}

func TestVerificationCode_ExpiredAt(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := VerificationCode{CreatedAt: issued}

	assert.False(t, c.ExpiredAt(issued.Add(3*time.Minute), 3*time.Minute))
	assert.True(t, c.ExpiredAt(issued.Add(3*time.Minute+time.Second), 3*time.Minute))
}
