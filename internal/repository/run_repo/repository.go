package run_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"baccarat_sim/internal/model"
	"baccarat_sim/internal/repository"
)

const (
	runsTable    = "simulation_runs"
	runID        = "id"
	createdAt    = "created_at"
	strategy     = "strategy"
	hands        = "hands"
	totalProfit  = "total_profit"
	totalWagered = "total_wagered"
	summary      = "summary"

	eventsTable    = "hand_events"
	eventRunID     = "run_id"
	handNo         = "hand_no"
	playedAt       = "played_at"
	betSide        = "bet_side"
	betAmount      = "bet_amount"
	playerCards    = "player_cards"
	bankerCards    = "banker_cards"
	playerTotal    = "player_total"
	bankerTotal    = "banker_total"
	outcome        = "outcome"
	winAmount      = "win_amount"
	bankrollAfter  = "bankroll_after"
	shoeCardsLeft  = "shoe_cards_left"
	commissionPaid = "commission_paid"
	cumulativeWin  = "cumulative_win"

	// eventsBatchSize держит число параметров запроса ниже лимита postgres
	eventsBatchSize = 1000
)

var eventColumns = []string{
	eventRunID, handNo, playedAt, betSide, betAmount, playerCards, bankerCards,
	playerTotal, bankerTotal, outcome, winAmount, bankrollAfter, shoeCardsLeft,
	commissionPaid, cumulativeWin,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

// NewRunRepository - репозиторий прогонов в PostgreSQL. Запросы идут через
// транзакцию из контекста, если она открыта менеджером транзакций
func NewRunRepository(dbc *pgxpool.Pool) repository.RunRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// SaveRun - сохранение итога прогона
func (r *repo) SaveRun(ctx context.Context, rec *model.RunRecord) error {
	doc, err := json.Marshal(rec.Summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	query := sq.Insert(runsTable).
		Columns(runID, createdAt, strategy, hands, totalProfit, totalWagered, summary).
		Values(rec.ID, rec.CreatedAt, rec.Summary.Params.Strategy, rec.Summary.Params.Hands,
			rec.Summary.TotalProfit, rec.Summary.TotalWagered, doc).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// SaveEvents - вставка раздач пачками
func (r *repo) SaveEvents(ctx context.Context, id string, events []model.HandEvent) error {
	for start := 0; start < len(events); start += eventsBatchSize {
		end := min(start+eventsBatchSize, len(events))

		query := sq.Insert(eventsTable).
			Columns(eventColumns...).
			PlaceholderFormat(sq.Dollar)
		for _, ev := range events[start:end] {
			query = query.Values(
				id, ev.HandNo, ev.Timestamp, string(ev.BetSide), ev.BetAmount,
				ev.PlayerCards, ev.BankerCards, ev.PlayerTotal, ev.BankerTotal,
				string(ev.Outcome), ev.WinAmount, ev.BankrollAfter, ev.ShoeCardsLeft,
				ev.CommissionPaid, ev.CumulativeWin,
			)
		}

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}
		if _, err = r.conn(ctx).Exec(ctx, sqlStr, args...); err != nil {
			return fmt.Errorf("insert hands %d-%d: %w", start+1, end, err)
		}
	}
	return nil
}

// GetRun - итог прогона по id, без раздач
func (r *repo) GetRun(ctx context.Context, id string) (*model.RunRecord, error) {
	query := sq.Select(runID, createdAt, summary).
		From(runsTable).
		Where(sq.Eq{runID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rec, err := scanRun(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// ListRuns - последние прогоны, новые первыми
func (r *repo) ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	query := sq.Select(runID, createdAt, summary).
		From(runsTable).
		OrderBy(createdAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// GetEvents - раздачи прогона по порядку. Пустой результат для неизвестного
// прогона не отличается от прогона без сохраненных раздач
func (r *repo) GetEvents(ctx context.Context, id string) ([]model.HandEvent, error) {
	query := sq.Select(eventColumns[1:]...).
		From(eventsTable).
		Where(sq.Eq{eventRunID: id}).
		OrderBy(handNo).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.HandEvent
	for rows.Next() {
		var (
			ev   model.HandEvent
			side string
			res  string
		)
		err = rows.Scan(
			&ev.HandNo, &ev.Timestamp, &side, &ev.BetAmount,
			&ev.PlayerCards, &ev.BankerCards, &ev.PlayerTotal, &ev.BankerTotal,
			&res, &ev.WinAmount, &ev.BankrollAfter, &ev.ShoeCardsLeft,
			&ev.CommissionPaid, &ev.CumulativeWin,
		)
		if err != nil {
			return nil, err
		}
		ev.BetSide = model.Side(side)
		ev.Outcome = model.Outcome(res)
		out = append(out, ev)
	}
	return out, rows.Err()
}

func scanRun(row pgx.Row) (*model.RunRecord, error) {
	var (
		rec model.RunRecord
		doc []byte
	)
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &doc); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(doc, &rec.Summary); err != nil {
		return nil, fmt.Errorf("decode summary of run %s: %w", rec.ID, err)
	}
	return &rec, nil
}
