package domain

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderedPair(t *testing.T) {
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	tests := []struct {
		name string
		a, b uuid.UUID
	}{
		{name: "already ordered", a: low, b: high},
		{name: "reversed", a: high, b: low},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u1, u2 := OrderedPair(tt.a, tt.b)
			assert.Equal(t, low, u1)
			assert.Equal(t, high, u2)
		})
	}
}

func TestOrderedPairIsSymmetric(t *testing.T) {
	for i := 0; i < 50; i++ {
		a, b := uuid.New(), uuid.New()
		a1, b1 := OrderedPair(a, b)
		a2, b2 := OrderedPair(b, a)
		assert.Equal(t, a1, a2)
		assert.Equal(t, b1, b2)
		assert.True(t, bytes.Compare(a1[:], b1[:]) < 0)
		assert.Equal(t, PairKey(a, b), PairKey(b, a))
	}
}

func TestMatchParticipants(t *testing.T) {
	u1, u2, stranger := uuid.New(), uuid.New(), uuid.New()
	m := &Match{User1ID: u1, User2ID: u2}

	assert.True(t, m.HasUser(u1))
	assert.True(t, m.HasUser(u2))
	assert.False(t, m.HasUser(stranger))

	other, ok := m.GetOtherUserID(u1)
	assert.True(t, ok)
	assert.Equal(t, u2, other)

	other, ok = m.GetOtherUserID(u2)
	assert.True(t, ok)
	assert.Equal(t, u1, other)

	_, ok = m.GetOtherUserID(stranger)
	assert.False(t, ok)
}
