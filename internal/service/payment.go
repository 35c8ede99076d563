package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/larahenke/giro/internal/account"
	"github.com/larahenke/giro/internal/model"
	"github.com/larahenke/giro/internal/reference"
	"github.com/larahenke/giro/internal/store"
	"github.com/larahenke/giro/internal/utils"
	"github.com/larahenke/giro/internal/validation"
)

// PaymentService decides submissions. Field validation, the reference check
// and the journal write all happen synchronously inside Submit; the only
// state it mutates is the session account, and only on an approved transfer.
type PaymentService struct {
	repo    store.Repository
	state   *account.State
	entries []reference.Entry
	clock   func() time.Time
}

func NewPaymentService(repo store.Repository, state *account.State, entries []reference.Entry) *PaymentService {
	return &PaymentService{
		repo:    repo,
		state:   state,
		entries: entries,
		clock:   time.Now,
	}
}

// Submit runs the full decision pass for one submission. The returned error
// concerns only the journal write; the Decision is always usable.
func (ps *PaymentService) Submit(sub model.Submission) (Decision, error) {
	decision := ps.decide(sub)

	if err := ps.journal(sub, decision); err != nil {
		return decision, fmt.Errorf("failed to record decision: %w", err)
	}
	return decision, nil
}

func (ps *PaymentService) decide(sub model.Submission) Decision {
	fieldErrors := map[string]validation.Result{}
	collect := func(field string, res validation.Result) {
		if !res.Valid {
			fieldErrors[field] = res
		}
	}

	// Every applicable field reports independently; no short-circuiting.
	collect(FieldRecipient, validation.ValidateRecipient(sub.Recipient))
	collect(FieldIBAN, validation.ValidateIBAN(sub.IBAN))

	amountCents, amountRes := validation.ValidateAmount(sub.Amount, validation.AmountContext{
		Kind:         sub.Kind,
		LimitCents:   ps.state.LimitCents(),
		BalanceCents: ps.state.BalanceCents(),
	})
	collect(FieldAmount, amountRes)

	collect(FieldDate, validation.ValidateExecutionDate(sub.ExecutionDate, sub.Realtime, ps.clock()))

	if sub.Kind == model.KindStandingOrder {
		collect(FieldEndDate, validation.ValidateEndDate(sub.EndDate, sub.ExecutionDate, sub.Unlimited))
	}

	if len(fieldErrors) > 0 {
		return Decision{
			Status:          StatusRejected,
			FieldErrors:     fieldErrors,
			NewBalanceCents: ps.state.BalanceCents(),
			NewLimitCents:   ps.state.LimitCents(),
		}
	}

	// Standing orders are scheduled, not settled: no reference check and no
	// account mutation.
	if sub.Kind == model.KindStandingOrder {
		return Decision{
			Status:          StatusApproved,
			NewBalanceCents: ps.state.BalanceCents(),
			NewLimitCents:   ps.state.LimitCents(),
		}
	}

	outcome := reference.Match(
		strings.TrimSpace(sub.Recipient),
		validation.NormalizeIBAN(sub.IBAN),
		amountCents,
		ps.entries,
	)
	if outcome == reference.OutcomeRejected {
		return Decision{
			Status:           StatusBlocked,
			ReferenceOutcome: outcome,
			Reason: validation.Result{
				Code:    validation.CodeReferenceMismatch,
				Message: "Die Angaben stimmen nicht mit den hinterlegten Daten dieses Empfängers überein.",
			},
			NewBalanceCents: ps.state.BalanceCents(),
			NewLimitCents:   ps.state.LimitCents(),
		}
	}

	ps.state.Debit(amountCents)
	return Decision{
		Status:           StatusApproved,
		ReferenceOutcome: outcome,
		NewBalanceCents:  ps.state.BalanceCents(),
		NewLimitCents:    ps.state.LimitCents(),
	}
}

func (ps *PaymentService) journal(sub model.Submission, decision Decision) error {
	amountCents, err := utils.ParseToCents(sub.Amount)
	if err != nil {
		amountCents = 0
	}

	_, err = ps.repo.RecordDecision(store.JournalEntry{
		Timestamp:   ps.clock().Unix(),
		Kind:        string(sub.Kind),
		Recipient:   strings.TrimSpace(sub.Recipient),
		IBAN:        validation.NormalizeIBAN(sub.IBAN),
		AmountCents: amountCents,
		Outcome:     string(decision.Status),
		Detail:      decisionDetail(decision),
	})
	return err
}

func decisionDetail(decision Decision) string {
	switch decision.Status {
	case StatusBlocked:
		return decision.Reason.Message
	case StatusRejected:
		fields := make([]string, 0, len(decision.FieldErrors))
		for field := range decision.FieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			parts = append(parts, fmt.Sprintf("%s: %s", field, decision.FieldErrors[field].Message))
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}

// History returns the newest journal entries of this session.
func (ps *PaymentService) History(limit int) ([]*store.JournalEntry, error) {
	return ps.repo.ListJournal(limit)
}

// Payees returns the stored reference dataset.
func (ps *PaymentService) Payees() ([]*store.ReferenceRow, error) {
	return ps.repo.ListReferenceEntries()
}

// BalanceCents and LimitCents expose the session account for display.
func (ps *PaymentService) BalanceCents() int64 { return ps.state.BalanceCents() }

func (ps *PaymentService) LimitCents() int64 { return ps.state.LimitCents() }
