package model

// Side сторона ставки. Пустая строка означает, что ставки нет (наблюдение)
type Side string

const (
	SideNone   Side = ""
	SidePlayer Side = "player"
	SideBanker Side = "banker"
)

// Opposite returns the other betting side. SideNone has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case SidePlayer:
		return SideBanker
	case SideBanker:
		return SidePlayer
	}
	return SideNone
}

// Outcome итог раздачи
type Outcome string

const (
	OutcomePlayer Outcome = "player"
	OutcomeBanker Outcome = "banker"
	OutcomeTie    Outcome = "tie"
)

// Outcomes lists every outcome in reporting order.
var Outcomes = []Outcome{OutcomePlayer, OutcomeBanker, OutcomeTie}

// Wins reports whether a bet on side is paid for this outcome.
func (o Outcome) Wins(side Side) bool {
	return side != SideNone && string(side) == string(o)
}
