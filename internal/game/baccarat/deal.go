package baccarat

import (
	"fmt"

	"baccarat_sim/internal/model"
)

// CardSource is anything cards can be dealt from.
type CardSource interface {
	Draw() (Rank, error)
}

// Result is one resolved hand.
type Result struct {
	PlayerCards []Rank
	BankerCards []Rank
	PlayerTotal int
	BankerTotal int
	Outcome     model.Outcome
	CardsDealt  int
}

// Deal resolves exactly one hand from src following the Punto Banco tableau.
func Deal(src CardSource) (Result, error) {
	draw := func(who string) (Rank, error) {
		c, err := src.Draw()
		if err != nil {
			return "", fmt.Errorf("deal %s card: %w", who, err)
		}
		return c, nil
	}

	// player 1, player 2, banker 1, banker 2
	player := make([]Rank, 0, 3)
	banker := make([]Rank, 0, 3)
	for i := 0; i < 2; i++ {
		c, err := draw("player")
		if err != nil {
			return Result{}, err
		}
		player = append(player, c)
	}
	for i := 0; i < 2; i++ {
		c, err := draw("banker")
		if err != nil {
			return Result{}, err
		}
		banker = append(banker, c)
	}

	playerTotal := HandTotal(player)
	bankerTotal := HandTotal(banker)

	if !IsNatural(playerTotal) && !IsNatural(bankerTotal) {
		playerThird := PlayerStood
		if PlayerDraws(playerTotal) {
			c, err := draw("player")
			if err != nil {
				return Result{}, err
			}
			player = append(player, c)
			playerThird = c.Point()
			playerTotal = HandTotal(player)
		}

		if BankerDraws(bankerTotal, playerThird) {
			c, err := draw("banker")
			if err != nil {
				return Result{}, err
			}
			banker = append(banker, c)
			bankerTotal = HandTotal(banker)
		}
	}

	return Result{
		PlayerCards: player,
		BankerCards: banker,
		PlayerTotal: playerTotal,
		BankerTotal: bankerTotal,
		Outcome:     compareTotals(playerTotal, bankerTotal),
		CardsDealt:  len(player) + len(banker),
	}, nil
}

func compareTotals(player, banker int) model.Outcome {
	switch {
	case player > banker:
		return model.OutcomePlayer
	case banker > player:
		return model.OutcomeBanker
	default:
		return model.OutcomeTie
	}
}
