package service

import (
	"github.com/larahenke/giro/internal/account"
	"github.com/larahenke/giro/internal/reference"
	"github.com/larahenke/giro/internal/store"
)

type Service struct {
	Payment *PaymentService
}

func NewService(repo store.Repository, state *account.State, entries []reference.Entry) *Service {
	return &Service{
		Payment: NewPaymentService(repo, state, entries),
	}
}
