package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStateBalanceWithinBounds(t *testing.T) {
	for range 50 {
		s := NewState(DefaultBalanceMinCents, DefaultBalanceMaxCents, DefaultLimitCents)
		assert.GreaterOrEqual(t, s.BalanceCents(), DefaultBalanceMinCents)
		assert.LessOrEqual(t, s.BalanceCents(), DefaultBalanceMaxCents)
		assert.Zero(t, s.BalanceCents()%100, "opening balance lands on a whole euro")
		assert.Equal(t, DefaultLimitCents, s.LimitCents())
	}
}

func TestDebit(t *testing.T) {
	s := NewStateWithBalance(1000000, 500000)

	s.Debit(400000)

	assert.Equal(t, int64(600000), s.BalanceCents())
	assert.Equal(t, int64(100000), s.LimitCents())
}

func TestDebitCanDropLimitBelowZero(t *testing.T) {
	// The limit is not clamped; validation is responsible for refusing
	// amounts above it before Debit is ever called.
	s := NewStateWithBalance(1000000, 100000)

	s.Debit(300000)

	assert.Equal(t, int64(700000), s.BalanceCents())
	assert.Equal(t, int64(-200000), s.LimitCents())
}
