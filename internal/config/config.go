package config

import (
	"github.com/larahenke/giro/internal/account"
	"github.com/larahenke/giro/internal/constants"
)

type Config struct {
	Reference  ReferenceConfig `mapstructure:"reference"`
	Account    AccountConfig   `mapstructure:"account"`
	ConfigPath string          `mapstructure:"-"`
}

type ReferenceConfig struct {
	// Path to the expected-transactions dataset (JSON). Best-effort: a
	// missing or broken file leaves the session without reference checks.
	Path string `mapstructure:"path"`
}

type AccountConfig struct {
	// Amounts in EUR; converted to cents when the session account opens.
	InitialLimit float64 `mapstructure:"initial_limit"`
	BalanceMin   float64 `mapstructure:"balance_min"`
	BalanceMax   float64 `mapstructure:"balance_max"`
}

func NewDefault() *Config {
	return &Config{
		Reference: ReferenceConfig{Path: ""},
		Account: AccountConfig{
			InitialLimit: float64(account.DefaultLimitCents) / constants.CentsPerUnit,
			BalanceMin:   float64(account.DefaultBalanceMinCents) / constants.CentsPerUnit,
			BalanceMax:   float64(account.DefaultBalanceMaxCents) / constants.CentsPerUnit,
		},
	}
}

// LimitCents converts the configured limit to cents.
func (c *AccountConfig) LimitCents() int64 {
	return toCents(c.InitialLimit)
}

// BalanceBoundsCents converts the configured balance range to cents,
// swapping the bounds if they were given in the wrong order.
func (c *AccountConfig) BalanceBoundsCents() (int64, int64) {
	lo, hi := toCents(c.BalanceMin), toCents(c.BalanceMax)
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi
}

func toCents(eur float64) int64 {
	return int64(eur*constants.CentsPerUnit + 0.5)
}
