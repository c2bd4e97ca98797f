package staking

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
	"github.com/FeineCapital/PLSXSSS/actors/util/adt"
)

// StateSummary is a summary of the pool state computed by
// CheckStateInvariants.
type StateSummary struct {
	StakerCount     int
	TotalStaked     abi.TokenAmount
	PendingRewards  abi.TokenAmount
	AdjustmentCount uint64
}

// CheckStateInvariants checks every structural invariant of the pool state,
// accumulating messages rather than failing fast.
func CheckStateInvariants(st *State, store adt.Store, balance abi.TokenAmount) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}

	acc.Require(st.RewardRate.GreaterThanEqual(big.Zero()), "negative reward rate %v", st.RewardRate)
	acc.Require(st.MinRewardRate.GreaterThanEqual(big.Zero()), "negative reward rate floor %v", st.MinRewardRate)
	acc.Require(st.RewardPerUnitStored.GreaterThanEqual(big.Zero()), "negative accumulator %v", st.RewardPerUnitStored)
	acc.Require(st.RateAdjustmentPeriod > 0, "non-positive adjustment period %d", st.RateAdjustmentPeriod)
	acc.Require(st.MinimumStake.GreaterThan(big.Zero()), "non-positive minimum stake %v", st.MinimumStake)
	acc.Require(st.TotalFeesCollected.GreaterThanEqual(big.Zero()), "negative fees collected %v", st.TotalFeesCollected)
	acc.Require(st.TotalRewardsDistributed.GreaterThanEqual(big.Zero()), "negative rewards distributed %v", st.TotalRewardsDistributed)

	sumStaked := big.Zero()
	sumPending := big.Zero()
	stakerCount := 0

	stakers, err := adt.AsMap(store, st.Stakers, builtin.DefaultHamtBitwidth)
	acc.RequireNoError(err, "failed to load stakers")
	if err == nil {
		var info StakerInfo
		err = stakers.ForEach(&info, func(key string) error {
			stakerAcc := acc.WithPrefix("staker %v: ", []byte(key))

			_, err := addr.NewFromBytes([]byte(key))
			stakerAcc.RequireNoError(err, "invalid staker key")

			stakerAcc.Require(info.StakedAmount.GreaterThanEqual(big.Zero()), "negative staked amount %v", info.StakedAmount)
			stakerAcc.Require(info.PendingReward.GreaterThanEqual(big.Zero()), "negative pending reward %v", info.PendingReward)
			stakerAcc.Require(info.RewardPerUnitPaid.LessThanEqual(st.RewardPerUnitStored),
				"snapshot %v ahead of accumulator %v", info.RewardPerUnitPaid, st.RewardPerUnitStored)
			stakerAcc.Require(!info.StakedAmount.IsZero() || !info.PendingReward.IsZero(), "empty staker record retained")

			sumStaked = big.Add(sumStaked, info.StakedAmount)
			sumPending = big.Add(sumPending, info.PendingReward)
			stakerCount++
			return nil
		})
		acc.RequireNoError(err, "error iterating stakers")
	}

	acc.Require(st.TotalStaked.Equals(sumStaked), "total staked %v does not equal sum of balances %v", st.TotalStaked, sumStaked)

	var adjustmentCount uint64
	adjustments, err := adt.AsArray(store, st.Adjustments, builtin.DefaultAmtBitwidth)
	acc.RequireNoError(err, "failed to load adjustments")
	if err == nil {
		adjustmentCount = adjustments.Length()
		prevEpoch := abi.ChainEpoch(-1)
		var adjustment RateAdjustment
		err = adjustments.ForEach(&adjustment, func(i int64) error {
			entryAcc := acc.WithPrefix("adjustment %d: ", i)
			entryAcc.Require(adjustment.Epoch >= prevEpoch, "log out of order at epoch %d", adjustment.Epoch)
			entryAcc.Require(adjustment.NewRate.GreaterThanEqual(big.Zero()), "negative committed rate %v", adjustment.NewRate)
			prevEpoch = adjustment.Epoch
			return nil
		})
		acc.RequireNoError(err, "error iterating adjustments")
	}

	return &StateSummary{
		StakerCount:     stakerCount,
		TotalStaked:     sumStaked,
		PendingRewards:  sumPending,
		AdjustmentCount: adjustmentCount,
	}, acc
}
