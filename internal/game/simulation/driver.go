// Package simulation drives a sequence of baccarat hands: reshuffle policy,
// strategy decisions, wager sizing, settlement and the final summary.
//
// A Driver is single-threaded. Incremental callers use Step (or Events) and
// may stop at any point; Run consumes the same Driver to completion, so both
// paths produce identical events for the same seed and parameters.
package simulation

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"baccarat_sim/internal/game/baccarat"
	"baccarat_sim/internal/game/progression"
	"baccarat_sim/internal/game/strategy"
	"baccarat_sim/internal/model"
	"baccarat_sim/pkg/money"
)

var (
	ErrInvalidParams  = errors.New("invalid run parameters")
	ErrRunFinished    = errors.New("run already finished")
	ErrRunNotFinished = errors.New("run not finished")
)

const (
	// commissionRate is taken from banker wins
	commissionRate = 0.05
	// minCardsPerHand is the most cards a single hand can use
	minCardsPerHand = 6
	handInterval    = time.Second
)

type options struct {
	rng   *rand.Rand
	start time.Time
	log   zerolog.Logger
}

// Option customises a Driver.
type Option func(*options)

// WithRand injects the run's random source. It takes precedence over RunParams.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithStartTime fixes the timestamp of the first hand.
func WithStartTime(t time.Time) Option {
	return func(o *options) { o.start = t }
}

// WithLogger sets the logger used for reshuffle diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Driver runs one simulation hand by hand.
type Driver struct {
	params model.RunParams
	log    zerolog.Logger

	shoe  *baccarat.Shoe
	strat strategy.Strategy
	prog  *progression.Controller

	start      time.Time
	handNo     int
	bankroll   float64
	cumulative float64
	totals     totals
	err        error

	summary *model.RunSummary
}

// totals are the running counters behind the summary.
type totals struct {
	betHands     int
	observeHands int
	pushHands    int
	wins         int
	losses       int
	wagered      float64
	commission   float64
	cardsDealt   int
	outcomes     map[model.Outcome]int
}

// NewDriver validates params and prepares a run. Configuration problems are
// reported here, before any hand is dealt.
func NewDriver(params model.RunParams, opts ...Option) (*Driver, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		seed := time.Now().UnixNano()
		if params.Seed != nil {
			seed = *params.Seed
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
	if o.start.IsZero() {
		o.start = time.Now()
	}

	kind, err := strategy.ParseKind(params.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	params.Strategy = string(kind)

	prog, err := progression.New(params.Progression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	params.Progression = prog.Config()

	// the shoe shuffles first, then the strategy shares the same stream
	shoe := baccarat.NewShoe(params.Decks, o.rng)
	strat, err := strategy.New(params.Strategy, o.rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	return &Driver{
		params:   params,
		log:      o.log,
		shoe:     shoe,
		strat:    strat,
		prog:     prog,
		start:    o.start,
		bankroll: params.Bankroll,
		totals:   totals{outcomes: make(map[model.Outcome]int, len(model.Outcomes))},
	}, nil
}

func validate(p model.RunParams) error {
	switch {
	case p.Bankroll <= 0:
		return fmt.Errorf("%w: bankroll must be positive", ErrInvalidParams)
	case p.Bet <= 0:
		return fmt.Errorf("%w: bet must be positive", ErrInvalidParams)
	case p.Hands <= 0:
		return fmt.Errorf("%w: hands must be positive", ErrInvalidParams)
	case p.Decks <= 0:
		return fmt.Errorf("%w: decks must be positive", ErrInvalidParams)
	case p.Penetration < 0:
		return fmt.Errorf("%w: penetration must not be negative", ErrInvalidParams)
	}
	return nil
}

// Params returns the normalised parameters of the run.
func (d *Driver) Params() model.RunParams {
	return d.params
}

// HandsDone is the number of hands already emitted.
func (d *Driver) HandsDone() int {
	return d.handNo
}

// Done reports whether every hand has been played.
func (d *Driver) Done() bool {
	return d.handNo >= d.params.Hands
}

// Err returns the error that aborted the run, if any.
func (d *Driver) Err() error {
	return d.err
}

// Step plays the next hand and returns its event. After the last hand it
// returns ErrRunFinished. A dealing failure aborts the run for good.
func (d *Driver) Step() (model.HandEvent, error) {
	if d.err != nil {
		return model.HandEvent{}, d.err
	}
	if d.Done() {
		return model.HandEvent{}, ErrRunFinished
	}
	d.handNo++

	if left := d.shoe.CardsLeft(); left < minCardsPerHand || left <= d.params.Penetration {
		d.shoe.Reset()
		d.log.Debug().
			Int("hand_no", d.handNo).
			Int("cards_left", left).
			Int("shuffles", d.shoe.Shuffles()).
			Msg("shoe reshuffled")
	}

	side := d.strat.Decide()
	var bet float64
	if side != model.SideNone {
		bet = d.prog.Wager(d.params.Bet)
		// not enough money: watch this hand instead
		if d.bankroll < bet {
			side, bet = model.SideNone, 0
		}
	}
	if side != model.SideNone {
		d.totals.betHands++
		d.totals.wagered += bet
	} else {
		d.totals.observeHands++
	}

	res, err := baccarat.Deal(d.shoe)
	if err != nil {
		d.err = fmt.Errorf("hand %d: %w", d.handNo, err)
		return model.HandEvent{}, d.err
	}
	d.totals.cardsDealt += res.CardsDealt
	d.totals.outcomes[res.Outcome]++

	win, commission := d.settle(side, bet, res.Outcome)
	d.bankroll += win
	d.cumulative += win

	ev := model.HandEvent{
		Timestamp:      d.start.Add(time.Duration(d.handNo-1) * handInterval),
		HandNo:         d.handNo,
		BetSide:        side,
		BetAmount:      money.Round2(bet),
		PlayerCards:    baccarat.Labels(res.PlayerCards),
		BankerCards:    baccarat.Labels(res.BankerCards),
		PlayerTotal:    res.PlayerTotal,
		BankerTotal:    res.BankerTotal,
		Outcome:        res.Outcome,
		WinAmount:      money.Round2(win),
		BankrollAfter:  money.Round2(d.bankroll),
		ShoeCardsLeft:  d.shoe.CardsLeft(),
		CommissionPaid: money.Round2(commission),
		CumulativeWin:  money.Round2(d.cumulative),
	}

	d.strat.Observe(res.Outcome)
	return ev, nil
}

// settle pays a placed bet and feeds the result to the progression controller.
// Observed hands change nothing.
func (d *Driver) settle(side model.Side, bet float64, outcome model.Outcome) (win, commission float64) {
	if side == model.SideNone {
		return 0, 0
	}
	switch {
	case outcome == model.OutcomeTie:
		d.totals.pushHands++
		d.prog.Settle(progression.Push)
	case outcome.Wins(side):
		win = bet
		if side == model.SideBanker {
			commission = bet * commissionRate
			win = bet - commission
			d.totals.commission += commission
		}
		d.totals.wins++
		d.prog.Settle(progression.Win)
	default:
		win = -bet
		d.totals.losses++
		d.prog.Settle(progression.Loss)
	}
	return win, commission
}

// Events yields the remaining hands one at a time. Breaking out of the loop
// leaves the driver where it stopped; a later call resumes from there.
func (d *Driver) Events() iter.Seq2[model.HandEvent, error] {
	return func(yield func(model.HandEvent, error) bool) {
		for !d.Done() {
			ev, err := d.Step()
			if !yield(ev, err) || err != nil {
				return
			}
		}
	}
}

// Run plays params to completion and returns every event and the summary.
func Run(params model.RunParams, opts ...Option) ([]model.HandEvent, model.RunSummary, error) {
	d, err := NewDriver(params, opts...)
	if err != nil {
		return nil, model.RunSummary{}, err
	}
	events := make([]model.HandEvent, 0, params.Hands)
	for ev, err := range d.Events() {
		if err != nil {
			return events, model.RunSummary{}, err
		}
		events = append(events, ev)
	}
	summary, err := d.Summary()
	if err != nil {
		return events, model.RunSummary{}, err
	}
	return events, summary, nil
}
