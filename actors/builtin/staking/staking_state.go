package staking

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
	xerrors "golang.org/x/xerrors"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
	"github.com/FeineCapital/PLSXSSS/actors/util"
	"github.com/FeineCapital/PLSXSSS/actors/util/adt"
)

// State of the staking pool.
type State struct {
	// Per-staker accounts, created lazily on first stake and removed when
	// emptied. A zero-balance account is equivalent to absence.
	Stakers cid.Cid // Map, HAMT[address]StakerInfo

	// Sum of all staker balances. Always equal to the arithmetic sum of
	// every StakerInfo.StakedAmount.
	TotalStaked abi.TokenAmount

	// Reward emission in attotokens per epoch.
	RewardRate abi.TokenAmount

	// The controller never commits a rate below this floor.
	MinRewardRate abi.TokenAmount

	// Cumulative reward per staked attotoken since inception, scaled by
	// RewardAccumulatorScale. Monotonically non-decreasing.
	RewardPerUnitStored abi.TokenAmount

	// Epoch of the last accrual settlement.
	LastUpdateEpoch abi.ChainEpoch

	// Rate controller cadence.
	LastRateAdjustmentEpoch abi.ChainEpoch
	RateAdjustmentPeriod    abi.ChainEpoch

	// Policy bounds, governed.
	MaxAPRBasisPoints        uint64
	TargetSustainabilityDays uint64
	MinimumStake             abi.TokenAmount

	// Receives the non-pool share of every fee.
	FeeRecipient addr.Address

	// Informational counters, monotonically increasing.
	TotalFeesCollected      abi.TokenAmount
	TotalRewardsDistributed abi.TokenAmount

	// Committed rate changes, oldest first.
	Adjustments cid.Cid // Array, AMT[]RateAdjustment
}

// StakerInfo is the per-account ledger record.
type StakerInfo struct {
	// Staked balance net of entry fees.
	StakedAmount abi.TokenAmount

	// Snapshot of RewardPerUnitStored at this account's last settlement.
	RewardPerUnitPaid abi.TokenAmount

	// Reward earned but not yet claimed.
	PendingReward abi.TokenAmount

	// Balance-weighted average of stake-entry epochs, the account's
	// effective stake age for fee tiering.
	WeightedStakeEpoch abi.ChainEpoch
}

// RateAdjustment records one committed rate change.
type RateAdjustment struct {
	Epoch   abi.ChainEpoch
	OldRate abi.TokenAmount
	NewRate abi.TokenAmount
	Reason  AdjustmentReason
}

func ConstructState(store adt.Store, feeRecipient addr.Address, rewardRate abi.TokenAmount, currEpoch abi.ChainEpoch) (*State, error) {
	emptyStakersMapCid, err := adt.StoreEmptyMap(store, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty stakers map: %w", err)
	}

	emptyAdjustmentsArrayCid, err := adt.StoreEmptyArray(store, builtin.DefaultAmtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty adjustments array: %w", err)
	}

	return &State{
		Stakers:     emptyStakersMapCid,
		Adjustments: emptyAdjustmentsArrayCid,

		TotalStaked:         big.Zero(),
		RewardRate:          rewardRate,
		MinRewardRate:       DefaultMinRewardRate,
		RewardPerUnitStored: big.Zero(),
		LastUpdateEpoch:     currEpoch,

		LastRateAdjustmentEpoch: currEpoch,
		RateAdjustmentPeriod:    DefaultRateAdjustmentPeriod,

		MaxAPRBasisPoints:        DefaultMaxAPRBasisPoints,
		TargetSustainabilityDays: DefaultTargetSustainabilityDays,
		MinimumStake:             DefaultMinimumStake,

		FeeRecipient: feeRecipient,

		TotalFeesCollected:      big.Zero(),
		TotalRewardsDistributed: big.Zero(),
	}, nil
}

//
// Reward accrual
//

// RewardPerUnit returns the accumulator as of now. Pure and idempotent:
// calling twice with the same epoch yields the same value. With nothing
// staked no accrual is possible and the stored value is returned unchanged.
func (st *State) RewardPerUnit(now abi.ChainEpoch) abi.TokenAmount {
	if st.TotalStaked.IsZero() || now <= st.LastUpdateEpoch {
		return st.RewardPerUnitStored
	}
	elapsed := big.NewInt(int64(now - st.LastUpdateEpoch))
	accrued := big.Div(big.Mul(big.Mul(elapsed, st.RewardRate), RewardAccumulatorScale), st.TotalStaked)
	return big.Add(st.RewardPerUnitStored, accrued)
}

// Earned returns the account's total unclaimed reward as of now.
func (st *State) Earned(info *StakerInfo, now abi.ChainEpoch) abi.TokenAmount {
	delta := big.Sub(st.RewardPerUnit(now), info.RewardPerUnitPaid)
	util.AssertMsg(delta.GreaterThanEqual(big.Zero()), "accumulator moved backwards")
	return big.Add(big.Div(big.Mul(info.StakedAmount, delta), RewardAccumulatorScale), info.PendingReward)
}

// SettleGlobal advances the accumulator to now. Must run before any mutation
// of TotalStaked or RewardRate; skipping it corrupts every subsequent
// accrual computation.
func (st *State) SettleGlobal(now abi.ChainEpoch) {
	st.RewardPerUnitStored = st.RewardPerUnit(now)
	st.LastUpdateEpoch = now
}

// SettleStaker advances the accumulator and snapshots the account against
// it. The mandatory first step of every operation touching the account.
func (st *State) SettleStaker(info *StakerInfo, now abi.ChainEpoch) {
	st.SettleGlobal(now)
	info.PendingReward = st.Earned(info, now)
	info.RewardPerUnitPaid = st.RewardPerUnitStored
}

//
// Staker accounts
//

// GetStaker returns the account record, or a fresh zero-valued record if
// absent.
func (st *State) GetStaker(stakers *adt.Map, staker addr.Address) (*StakerInfo, bool, error) {
	info := StakerInfo{
		StakedAmount:      big.Zero(),
		RewardPerUnitPaid: big.Zero(),
		PendingReward:     big.Zero(),
	}
	found, err := stakers.Get(abi.AddrKey(staker), &info)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get staker %s: %w", staker, err)
	}
	return &info, found, nil
}

// PutStaker stores the account record, deleting it instead when it is
// completely empty.
func (st *State) PutStaker(stakers *adt.Map, staker addr.Address, info *StakerInfo) error {
	if info.StakedAmount.IsZero() && info.PendingReward.IsZero() {
		if _, err := stakers.TryDelete(abi.AddrKey(staker)); err != nil {
			return xerrors.Errorf("failed to delete staker %s: %w", staker, err)
		}
		return nil
	}
	if err := stakers.Put(abi.AddrKey(staker), info); err != nil {
		return xerrors.Errorf("failed to put staker %s: %w", staker, err)
	}
	return nil
}

// Deposit credits a settled account with a net stake amount, blending the
// weighted stake epoch toward now in proportion to the new deposit's share
// of the resulting balance.
func (st *State) Deposit(info *StakerInfo, net abi.TokenAmount, now abi.ChainEpoch) {
	util.AssertMsg(net.GreaterThan(big.Zero()), "deposit of non-positive amount")

	if info.StakedAmount.IsZero() {
		info.WeightedStakeEpoch = now
	} else {
		oldWeight := big.Mul(big.NewInt(int64(info.WeightedStakeEpoch)), info.StakedAmount)
		newWeight := big.Mul(big.NewInt(int64(now)), net)
		total := big.Add(info.StakedAmount, net)
		blended := big.Div(big.Add(oldWeight, newWeight), total)
		info.WeightedStakeEpoch = abi.ChainEpoch(blended.Int64())
	}

	info.StakedAmount = big.Add(info.StakedAmount, net)
	st.TotalStaked = big.Add(st.TotalStaked, net)
}

// Debit removes a gross withdrawal amount from a settled account. The
// weighted stake epoch is deliberately left untouched on partial
// withdrawal, so the remaining balance keeps its original stake age.
func (st *State) Debit(info *StakerInfo, gross abi.TokenAmount) error {
	if gross.GreaterThan(info.StakedAmount) {
		return xerrors.Errorf("debit %s exceeds staked balance %s", gross, info.StakedAmount)
	}
	info.StakedAmount = big.Sub(info.StakedAmount, gross)
	st.TotalStaked = big.Sub(st.TotalStaked, gross)
	util.AssertMsg(st.TotalStaked.GreaterThanEqual(big.Zero()), "total staked went negative")
	return nil
}

//
// Fees
//

// DepositFee returns the flat entry fee for a deposit amount.
func DepositFee(amount abi.TokenAmount) abi.TokenAmount {
	return big.Div(big.Mul(amount, big.NewInt(DepositFeeBasisPoints)), big.NewInt(builtin.BasisPointsTotal))
}

// ExitFee returns the duration-tiered fee on a gross withdrawal amount.
func ExitFee(amount abi.TokenAmount, duration abi.ChainEpoch) abi.TokenAmount {
	bps := ExitFeeBasisPoints(duration)
	return big.Div(big.Mul(amount, big.NewInt(int64(bps))), big.NewInt(builtin.BasisPointsTotal))
}

// SplitFee divides a fee into the share retained by the pool and the share
// pushed to the fee recipient. Both are floored, so they may sum to less
// than the fee; the residual stays in custody as pool reward.
func SplitFee(fee abi.TokenAmount) (pool abi.TokenAmount, recipient abi.TokenAmount) {
	pool = big.Div(big.Mul(fee, big.NewInt(PoolFeeShareNumerator)), big.NewInt(FeeShareDenominator))
	recipient = big.Div(big.Mul(fee, big.NewInt(FeeShareDenominator-PoolFeeShareNumerator)), big.NewInt(FeeShareDenominator))
	return pool, recipient
}

//
// Rate controller
//

// AvailableRewards returns the custody balance in excess of staked
// principal, floored at zero.
func (st *State) AvailableRewards(balance abi.TokenAmount) abi.TokenAmount {
	avail := big.Sub(balance, st.TotalStaked)
	if avail.LessThan(big.Zero()) {
		return big.Zero()
	}
	return avail
}

// SustainabilityDays estimates how many days the available reward pool can
// sustain the current emission rate.
func (st *State) SustainabilityDays(balance abi.TokenAmount) uint64 {
	avail := st.AvailableRewards(balance)
	if st.RewardRate.IsZero() || avail.IsZero() {
		return 0
	}
	perDay := big.Mul(st.RewardRate, big.NewInt(builtin.EpochsInDay))
	return big.Div(avail, perDay).Uint64()
}

// maxRateForAPR returns the emission rate at which yearly emission equals
// MaxAPRBasisPoints of the staked principal.
func (st *State) maxRateForAPR() abi.TokenAmount {
	yearly := big.Div(big.Mul(st.TotalStaked, big.NewInt(int64(st.MaxAPRBasisPoints))), big.NewInt(builtin.BasisPointsTotal))
	return big.Div(yearly, big.NewInt(builtin.EpochsInYear))
}

// APRBasisPoints estimates the current yearly emission relative to staked
// principal, in basis points. Zero when nothing is staked.
func (st *State) APRBasisPoints() uint64 {
	if st.TotalStaked.IsZero() {
		return 0
	}
	yearly := big.Mul(st.RewardRate, big.NewInt(builtin.EpochsInYear))
	return big.Div(big.Mul(yearly, big.NewInt(builtin.BasisPointsTotal)), st.TotalStaked).Uint64()
}

// CheckAdjustment proposes a new emission rate from pool solvency. It
// no-ops until a full adjustment period has elapsed since the last
// committed change. Outside that, a depleted or empty pool proposes the
// floor; otherwise sustainability is compared against the dead band around
// the target (both bounds exclusive) and the rate stepped by 10%, upward
// steps capped so emission never implies an APR above MaxAPRBasisPoints.
// The cap is recomputed directly, so at small stake the committed rate can
// move more than one step.
func (st *State) CheckAdjustment(now abi.ChainEpoch, balance abi.TokenAmount) (bool, abi.TokenAmount, AdjustmentReason) {
	if now-st.LastRateAdjustmentEpoch < st.RateAdjustmentPeriod {
		return false, st.RewardRate, ReasonManual
	}

	avail := st.AvailableRewards(balance)
	if avail.IsZero() || st.TotalStaked.IsZero() {
		return true, st.MinRewardRate, ReasonFloorForced
	}

	days := st.SustainabilityDays(balance)
	target := st.TargetSustainabilityDays

	if days*SustainabilityBandDenominator < target*LowSustainabilityBandNumerator {
		proposed := big.Div(big.Mul(st.RewardRate, big.NewInt(builtin.BasisPointsTotal-RateStepBasisPoints)), big.NewInt(builtin.BasisPointsTotal))
		if proposed.LessThan(st.MinRewardRate) {
			proposed = st.MinRewardRate
		}
		return true, proposed, ReasonDecreasedLowSustainability
	}

	if days*SustainabilityBandDenominator > target*HighSustainabilityBandNumerator {
		proposed := big.Div(big.Mul(st.RewardRate, big.NewInt(builtin.BasisPointsTotal+RateStepBasisPoints)), big.NewInt(builtin.BasisPointsTotal))
		if maxRate := st.maxRateForAPR(); proposed.GreaterThan(maxRate) {
			proposed = maxRate
		}
		return true, proposed, ReasonIncreasedHighSustainability
	}

	return false, st.RewardRate, ReasonManual
}

// CommitRateChange records a settled rate change and appends it to the
// adjustment log. Callers must have run SettleGlobal first.
func (st *State) CommitRateChange(store adt.Store, now abi.ChainEpoch, newRate abi.TokenAmount, reason AdjustmentReason) (RateAdjustment, error) {
	adjustment := RateAdjustment{
		Epoch:   now,
		OldRate: st.RewardRate,
		NewRate: newRate,
		Reason:  reason,
	}

	adjustments, err := adt.AsArray(store, st.Adjustments, builtin.DefaultAmtBitwidth)
	if err != nil {
		return RateAdjustment{}, xerrors.Errorf("failed to load adjustments: %w", err)
	}
	if err := adjustments.AppendContinuous(&adjustment); err != nil {
		return RateAdjustment{}, xerrors.Errorf("failed to append adjustment: %w", err)
	}
	if st.Adjustments, err = adjustments.Root(); err != nil {
		return RateAdjustment{}, xerrors.Errorf("failed to flush adjustments: %w", err)
	}

	st.RewardRate = newRate
	st.LastRateAdjustmentEpoch = now
	return adjustment, nil
}
