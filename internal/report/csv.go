// Package report turns a finished run into exportable artifacts: the
// per-hand CSV table, the JSON summary document and derived analytics.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"baccarat_sim/internal/model"
)

// EventColumns - фиксированный набор колонок таблицы раздач
var EventColumns = []string{
	"timestamp",
	"hand_no",
	"bet_side",
	"bet_amount",
	"player_cards",
	"banker_cards",
	"player_total",
	"banker_total",
	"outcome",
	"win_amount",
	"bankroll_after",
	"shoe_cards_left",
	"commission_paid",
	"cumulative_win",
}

// ParamColumns are appended, constant on every row, when run params are given.
var ParamColumns = []string{
	"strategy",
	"bet_size",
	"decks",
	"penetration",
	"seed",
	"loss_progression_pct",
	"loss_progression_dec_pct",
	"loss_progression_start",
	"loss_progression_win_mode",
	"win_progression_inc_pct",
	"win_progression_dec_pct",
	"win_progression_start",
	"win_progression_loss_mode",
}

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// WriteEvents writes one row per hand. Card lists are JSON arrays of rank
// labels. params may be nil.
func WriteEvents(w io.Writer, events []model.HandEvent, params *model.RunParams) error {
	cw := csv.NewWriter(w)

	header := EventColumns
	var constant []string
	if params != nil {
		header = append(append([]string{}, EventColumns...), ParamColumns...)
		constant = paramValues(*params)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, ev := range events {
		row, err := eventRow(ev)
		if err != nil {
			return fmt.Errorf("hand %d: %w", ev.HandNo, err)
		}
		if err = cw.Write(append(row, constant...)); err != nil {
			return fmt.Errorf("write hand %d: %w", ev.HandNo, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func eventRow(ev model.HandEvent) ([]string, error) {
	player, err := json.Marshal(ev.PlayerCards)
	if err != nil {
		return nil, err
	}
	banker, err := json.Marshal(ev.BankerCards)
	if err != nil {
		return nil, err
	}

	return []string{
		ev.Timestamp.Format(timestampLayout),
		strconv.Itoa(ev.HandNo),
		string(ev.BetSide),
		formatMoney(ev.BetAmount),
		string(player),
		string(banker),
		strconv.Itoa(ev.PlayerTotal),
		strconv.Itoa(ev.BankerTotal),
		string(ev.Outcome),
		formatMoney(ev.WinAmount),
		formatMoney(ev.BankrollAfter),
		strconv.Itoa(ev.ShoeCardsLeft),
		formatMoney(ev.CommissionPaid),
		formatMoney(ev.CumulativeWin),
	}, nil
}

func paramValues(p model.RunParams) []string {
	seed := ""
	if p.Seed != nil {
		seed = strconv.FormatInt(*p.Seed, 10)
	}
	return []string{
		p.Strategy,
		formatFloat(p.Bet),
		strconv.Itoa(p.Decks),
		strconv.Itoa(p.Penetration),
		seed,
		formatFloat(p.LossPct),
		formatFloat(p.LossDecPct),
		strconv.Itoa(p.LossStart),
		string(p.LossWinMode),
		formatFloat(p.WinIncPct),
		formatFloat(p.WinDecPct),
		strconv.Itoa(p.WinStart),
		string(p.WinLossMode),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseTimestamp reads back a timestamp written by WriteEvents.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}
