package account

import (
	"math/rand"

	"github.com/larahenke/giro/internal/constants"
)

// Defaults mirror the simulated account: a random opening balance between
// 5.000 and 100.000 EUR and a 5.000 EUR single-transaction limit.
const (
	DefaultLimitCents      int64 = 500000
	DefaultBalanceMinCents int64 = 500000
	DefaultBalanceMaxCents int64 = 10000000
)

// State is the session account: total balance plus the remaining
// single-transaction limit ("available balance"). It lives for one process
// run and is never persisted. The limit is not kept below the balance;
// validation checks both independently.
type State struct {
	balanceCents int64
	limitCents   int64
}

// NewState opens a session account with a random balance in
// [balanceMin, balanceMax] and the given limit. The balance lands on a whole
// euro, like the original page's opening draw.
func NewState(balanceMinCents, balanceMaxCents, limitCents int64) *State {
	if balanceMaxCents < balanceMinCents {
		balanceMaxCents = balanceMinCents
	}
	minEur := balanceMinCents / constants.CentsPerUnit
	maxEur := balanceMaxCents / constants.CentsPerUnit
	balance := (minEur + rand.Int63n(maxEur-minEur+1)) * constants.CentsPerUnit
	return &State{
		balanceCents: balance,
		limitCents:   limitCents,
	}
}

// NewStateWithBalance opens a session account with a fixed balance,
// bypassing the random draw. Used by tests and demo configurations.
func NewStateWithBalance(balanceCents, limitCents int64) *State {
	return &State{
		balanceCents: balanceCents,
		limitCents:   limitCents,
	}
}

func (s *State) BalanceCents() int64 { return s.balanceCents }

func (s *State) LimitCents() int64 { return s.limitCents }

// Debit settles an approved transfer: both the balance and the remaining
// limit shrink by the amount. This is the only mutation on State.
func (s *State) Debit(amountCents int64) {
	s.balanceCents -= amountCents
	s.limitCents -= amountCents
}
