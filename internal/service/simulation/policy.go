package simulation

import (
	"fmt"
	"slices"

	"baccarat_sim/internal/model"
	"baccarat_sim/internal/service"
)

// Пределы полей, как в форме настроек оператора
const (
	minBankroll    = 1.0
	minBet         = 0.01
	maxIncPct      = 200.0
	maxDecPct      = 99.0
	maxStreakStart = 20
	maxRebatePct   = 10.0
)

// checkPolicy применяет ограничения сервиса поверх проверок движка
func (s *serv) checkPolicy(p model.RunParams, rebatePct float64) error {
	switch {
	case p.Hands < s.limits.MinHands() || p.Hands > s.limits.MaxHands():
		return violation("hands must be between %d and %d", s.limits.MinHands(), s.limits.MaxHands())
	case !slices.Contains(s.limits.AllowedDecks(), p.Decks):
		return violation("decks must be one of %v", s.limits.AllowedDecks())
	case p.Bankroll < minBankroll:
		return violation("bankroll must be at least %.2f", minBankroll)
	case p.Bet < minBet:
		return violation("bet must be at least %.2f", minBet)
	case p.Penetration < 1:
		return violation("penetration must be at least 1")
	case outside(p.LossPct, maxIncPct) || outside(p.WinIncPct, maxIncPct):
		return violation("increase percentages must be between 0 and %.0f", maxIncPct)
	case outside(p.LossDecPct, maxDecPct) || outside(p.WinDecPct, maxDecPct):
		return violation("decrease percentages must be between 0 and %.0f", maxDecPct)
	case p.LossStart < 1 || p.LossStart > maxStreakStart || p.WinStart < 1 || p.WinStart > maxStreakStart:
		return violation("progression start must be between 1 and %d", maxStreakStart)
	case outside(rebatePct, maxRebatePct):
		return violation("rebate must be between 0 and %.0f percent", maxRebatePct)
	}
	return nil
}

func outside(v, hi float64) bool {
	return v < 0 || v > hi
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", service.ErrPolicyViolation, fmt.Sprintf(format, args...))
}
