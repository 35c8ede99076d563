package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larahenke/giro/internal/account"
	"github.com/larahenke/giro/internal/model"
	"github.com/larahenke/giro/internal/reference"
	"github.com/larahenke/giro/internal/store"
	"github.com/larahenke/giro/internal/validation"
)

type fakeRepo struct {
	journal    []store.JournalEntry
	refs       []store.ReferenceRow
	failRecord bool
}

func (f *fakeRepo) RecordDecision(entry store.JournalEntry) (int64, error) {
	if f.failRecord {
		return 0, fmt.Errorf("journal unavailable")
	}
	f.journal = append(f.journal, entry)
	return int64(len(f.journal)), nil
}

func (f *fakeRepo) ListJournal(limit int) ([]*store.JournalEntry, error) {
	var out []*store.JournalEntry
	for i := len(f.journal) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		e := f.journal[i]
		out = append(out, &e)
	}
	return out, nil
}

func (f *fakeRepo) SeedReferenceEntries(rows []store.ReferenceRow) error {
	f.refs = rows
	return nil
}

func (f *fakeRepo) ListReferenceEntries() ([]*store.ReferenceRow, error) {
	out := make([]*store.ReferenceRow, len(f.refs))
	for i := range f.refs {
		out[i] = &f.refs[i]
	}
	return out, nil
}

func (f *fakeRepo) Close() error { return nil }

var fixedNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, balanceCents, limitCents int64, entries []reference.Entry) (*PaymentService, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{}
	state := account.NewStateWithBalance(balanceCents, limitCents)
	ps := NewPaymentService(repo, state, entries)
	ps.clock = func() time.Time { return fixedNow }
	return ps, repo
}

func validTransfer() model.Submission {
	return model.Submission{
		Kind:      model.KindTransfer,
		Recipient: "Max Mustermann",
		IBAN:      "DE89 3704 0044 0532 0130 00",
		Amount:    "4000",
		Realtime:  true,
	}
}

func TestSubmitApprovedTransferSettles(t *testing.T) {
	ps, repo := newTestService(t, 1000000, 500000, nil)

	decision, err := ps.Submit(validTransfer())
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, decision.Status)
	assert.Equal(t, reference.OutcomeUnverified, decision.ReferenceOutcome)
	assert.Equal(t, int64(600000), decision.NewBalanceCents)
	assert.Equal(t, int64(100000), decision.NewLimitCents)
	assert.Equal(t, int64(600000), ps.BalanceCents())
	assert.Equal(t, int64(100000), ps.LimitCents())

	require.Len(t, repo.journal, 1)
	assert.Equal(t, "approved", repo.journal[0].Outcome)
	assert.Equal(t, "DE89370400440532013000", repo.journal[0].IBAN)
	assert.Equal(t, int64(400000), repo.journal[0].AmountCents)
}

func TestSubmitLimitBeforeFunds(t *testing.T) {
	// balance 10.000, limit 5.000, amount 6.000: the limit failure is
	// reported, not insufficient funds.
	ps, _ := newTestService(t, 1000000, 500000, nil)

	sub := validTransfer()
	sub.Amount = "6000"

	decision, err := ps.Submit(sub)
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, decision.Status)
	require.Contains(t, decision.FieldErrors, FieldAmount)
	assert.Equal(t, validation.CodeLimitExceeded, decision.FieldErrors[FieldAmount].Code)

	// No mutation on rejection.
	assert.Equal(t, int64(1000000), ps.BalanceCents())
	assert.Equal(t, int64(500000), ps.LimitCents())
}

func TestSubmitCollectsAllFieldErrors(t *testing.T) {
	ps, _ := newTestService(t, 1000000, 500000, nil)

	decision, err := ps.Submit(model.Submission{
		Kind:          model.KindTransfer,
		Recipient:     "  ",
		IBAN:          "FR123",
		Amount:        "abc",
		ExecutionDate: "",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, decision.Status)
	assert.Len(t, decision.FieldErrors, 4)
	assert.Equal(t, validation.CodeEmptyField, decision.FieldErrors[FieldRecipient].Code)
	assert.Equal(t, validation.CodeFormatError, decision.FieldErrors[FieldIBAN].Code)
	assert.Equal(t, validation.CodeNotANumber, decision.FieldErrors[FieldAmount].Code)
	assert.Equal(t, validation.CodeMissingDate, decision.FieldErrors[FieldDate].Code)
}

func TestSubmitScheduledTransferDate(t *testing.T) {
	ps, _ := newTestService(t, 1000000, 500000, nil)

	sub := validTransfer()
	sub.Realtime = false
	sub.ExecutionDate = "2025-01-09"

	decision, err := ps.Submit(sub)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, decision.Status)
	assert.Equal(t, validation.CodePastDate, decision.FieldErrors[FieldDate].Code)

	sub.ExecutionDate = "2025-01-10"
	decision, err = ps.Submit(sub)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, decision.Status)
}

func TestSubmitVerifiedAgainstReference(t *testing.T) {
	entries := []reference.Entry{
		{Name: "Max Mustermann", IBAN: "DE89370400440532013000", AmountCents: 120000},
	}
	ps, _ := newTestService(t, 1000000, 500000, entries)

	sub := validTransfer()
	sub.Amount = "1200"

	decision, err := ps.Submit(sub)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, decision.Status)
	assert.Equal(t, reference.OutcomeVerified, decision.ReferenceOutcome)
}

func TestSubmitBlockedOnReferenceMismatch(t *testing.T) {
	entries := []reference.Entry{
		{Name: "Max Mustermann", IBAN: "DE89370400440532013000", AmountCents: 120000},
	}
	ps, repo := newTestService(t, 1000000, 500000, entries)

	sub := validTransfer()
	sub.Amount = "1199"

	decision, err := ps.Submit(sub)
	require.NoError(t, err)

	assert.Equal(t, StatusBlocked, decision.Status)
	assert.Empty(t, decision.FieldErrors)
	assert.Equal(t, validation.CodeReferenceMismatch, decision.Reason.Code)

	// Blocked submissions never settle.
	assert.Equal(t, int64(1000000), ps.BalanceCents())
	assert.Equal(t, int64(500000), ps.LimitCents())

	require.Len(t, repo.journal, 1)
	assert.Equal(t, "blocked", repo.journal[0].Outcome)
}

func TestSubmitStandingOrderSkipsFundsAndReference(t *testing.T) {
	// A mismatching reference entry must not matter for standing orders,
	// and neither must the limit or balance.
	entries := []reference.Entry{
		{Name: "Max Mustermann", IBAN: "DE89370400440532013000", AmountCents: 120000},
	}
	ps, _ := newTestService(t, 1000000, 500000, entries)

	decision, err := ps.Submit(model.Submission{
		Kind:          model.KindStandingOrder,
		Recipient:     "Max Mustermann",
		IBAN:          "DE89370400440532013000",
		Amount:        "99999",
		ExecutionDate: "2025-02-01",
		Unlimited:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, decision.Status)
	// Standing orders are scheduled, not settled.
	assert.Equal(t, int64(1000000), ps.BalanceCents())
	assert.Equal(t, int64(500000), ps.LimitCents())
}

func TestSubmitStandingOrderEndDateOnStartDay(t *testing.T) {
	ps, _ := newTestService(t, 1000000, 500000, nil)

	decision, err := ps.Submit(model.Submission{
		Kind:          model.KindStandingOrder,
		Recipient:     "Max Mustermann",
		IBAN:          "DE89370400440532013000",
		Amount:        "50",
		ExecutionDate: "2025-01-10",
		EndDate:       "2025-01-10",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, decision.Status)
	assert.Equal(t, validation.CodeEndDateNotAfterStart, decision.FieldErrors[FieldEndDate].Code)
}

func TestSubmitDecisionIsStateless(t *testing.T) {
	// The same request against the same account figures decides the same
	// way every time; only the account carries state between submissions.
	for range 3 {
		ps, _ := newTestService(t, 1000000, 500000, nil)
		decision, err := ps.Submit(validTransfer())
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, decision.Status)
		assert.Equal(t, int64(600000), decision.NewBalanceCents)
	}
}

func TestSubmitJournalFailureStillDecides(t *testing.T) {
	ps, repo := newTestService(t, 1000000, 500000, nil)
	repo.failRecord = true

	decision, err := ps.Submit(validTransfer())
	require.Error(t, err)
	assert.Equal(t, StatusApproved, decision.Status)
}

func TestSubmitRejectedJournalDetail(t *testing.T) {
	ps, repo := newTestService(t, 1000000, 500000, nil)

	sub := validTransfer()
	sub.Recipient = ""

	_, err := ps.Submit(sub)
	require.NoError(t, err)

	require.Len(t, repo.journal, 1)
	assert.Equal(t, "rejected", repo.journal[0].Outcome)
	assert.Contains(t, repo.journal[0].Detail, "recipient: Empfänger darf nicht leer sein.")
}

func TestHistoryAndPayees(t *testing.T) {
	ps, repo := newTestService(t, 1000000, 500000, nil)
	require.NoError(t, repo.SeedReferenceEntries([]store.ReferenceRow{
		{Name: "Max Mustermann", IBAN: "DE89370400440532013000", AmountCents: 120000},
	}))

	_, err := ps.Submit(validTransfer())
	require.NoError(t, err)

	history, err := ps.History(10)
	require.NoError(t, err)
	require.Len(t, history, 1)

	payees, err := ps.Payees()
	require.NoError(t, err)
	require.Len(t, payees, 1)
	assert.Equal(t, "Max Mustermann", payees[0].Name)
}
