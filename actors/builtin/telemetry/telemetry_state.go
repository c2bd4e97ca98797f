package telemetry

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/ipfs/go-cid"
	xerrors "golang.org/x/xerrors"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
	"github.com/FeineCapital/PLSXSSS/actors/util/adt"
)

// Event keys under which notifications are tallied.
const (
	EventStake       = "stake"
	EventWithdraw    = "withdraw"
	EventClaim       = "claim"
	EventFeeSplit    = "fee-split"
	EventDurationFee = "duration-fee"
	EventRateChange  = "rate-change"
	EventTargetSet   = "target-update"
)

type State struct {
	// Running totals per event kind.
	Tallies cid.Cid // Map, HAMT[event]EventTally

	// Last reward rate reported by the staking actor.
	LastRewardRate abi.TokenAmount

	// Last sustainability target reported, in days.
	TargetSustainabilityDays uint64
}

type EventTally struct {
	Count  uint64
	Amount abi.TokenAmount
}

func ConstructState(store adt.Store) (*State, error) {
	emptyMapCid, err := adt.StoreEmptyMap(store, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}

	return &State{
		Tallies:        emptyMapCid,
		LastRewardRate: big.Zero(),
	}, nil
}

// recordEvent bumps the tally for event and accumulates amount into its
// running total.
func (st *State) recordEvent(tallies *adt.Map, event string, amount abi.TokenAmount) error {
	tally := EventTally{Amount: big.Zero()}
	_, err := tallies.Get(adt.StringKey(event), &tally)
	if err != nil {
		return xerrors.Errorf("failed to get tally for %s: %w", event, err)
	}

	tally.Count++
	tally.Amount = big.Add(tally.Amount, amount)

	if err := tallies.Put(adt.StringKey(event), &tally); err != nil {
		return xerrors.Errorf("failed to put tally for %s: %w", event, err)
	}
	return nil
}

// Tally returns the recorded tally for event, zero-valued if absent.
func (st *State) Tally(store adt.Store, event string) (EventTally, error) {
	tallies, err := adt.AsMap(store, st.Tallies, builtin.DefaultHamtBitwidth)
	if err != nil {
		return EventTally{}, xerrors.Errorf("failed to load tallies: %w", err)
	}

	tally := EventTally{Amount: big.Zero()}
	_, err = tallies.Get(adt.StringKey(event), &tally)
	if err != nil {
		return EventTally{}, xerrors.Errorf("failed to get tally for %s: %w", event, err)
	}
	return tally, nil
}
