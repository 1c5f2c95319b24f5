package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightFor(t *testing.T) {
	w := DefaultVoteWeights

	got, ok := w.WeightFor(VoteIppon)
	assert.True(t, ok)
	assert.Equal(t, 3, got)

	got, ok = w.WeightFor(VoteWazaAri)
	assert.True(t, ok)
	assert.Equal(t, 2, got)

	got, ok = w.WeightFor(VoteYuko)
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	// No implicit fourth tier.
	_, ok = w.WeightFor(VoteType("koka"))
	assert.False(t, ok)
}

func TestValidVoteType(t *testing.T) {
	assert.True(t, ValidVoteType(VoteIppon))
	assert.True(t, ValidVoteType(VoteWazaAri))
	assert.True(t, ValidVoteType(VoteYuko))
	assert.False(t, ValidVoteType(""))
	assert.False(t, ValidVoteType("IPPON"))
}

func TestDomainErrorWrapping(t *testing.T) {
	err := NewSelfVoteError("joke-1")
	assert.True(t, IsSelfVote(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "joke-1")

	verr := NewInvalidVoteTypeError("koka")
	assert.True(t, IsValidationError(verr))
	assert.Equal(t, "type", verr.Field)
}
