package strategy

import "baccarat_sim/internal/model"

// flipOppositeWait bets against the last winner, sits out while a streak of
// two or more is running, and takes one opposite bet right after such a streak breaks.
type flipOppositeWait struct {
	lastWinner   model.Side
	streak       int
	waiting      bool
	justSwitched bool
}

func (f *flipOppositeWait) Decide() model.Side {
	if f.lastWinner == model.SideNone {
		return model.SideNone
	}
	if f.justSwitched {
		f.justSwitched = false
		return f.lastWinner.Opposite()
	}
	if f.waiting {
		return model.SideNone
	}
	if f.streak <= 1 {
		return f.lastWinner.Opposite()
	}
	return model.SideNone
}

func (f *flipOppositeWait) Observe(outcome model.Outcome) {
	if outcome == model.OutcomeTie {
		return
	}
	winner := model.Side(outcome)

	if f.lastWinner == model.SideNone {
		f.lastWinner = winner
		f.streak = 1
		f.waiting = false
		f.justSwitched = false
		return
	}

	if winner == f.lastWinner {
		f.streak++
		if f.streak >= 2 {
			f.waiting = true
		}
		return
	}

	f.lastWinner = winner
	f.streak = 1
	if f.waiting {
		f.justSwitched = true
	}
	f.waiting = false
}
