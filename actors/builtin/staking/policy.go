package staking

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
)

// The accrual accumulator carries 18 decimal places of precision per staked
// attotoken.
var RewardAccumulatorScale = builtin.TokenPrecision

// Entry fee charged on every deposit, independent of duration.
const DepositFeeBasisPoints = 100

// Share of every fee that stays in custody as pool reward; the remainder is
// pushed to the fee recipient. Floor division may leave a residual, which
// also stays in the pool.
const (
	PoolFeeShareNumerator = 70
	FeeShareDenominator   = 100
)

// FeeTier maps a minimum holding duration to the exit fee charged at or
// above it. Tiers are ordered by ascending duration; intervals are
// half-open, so holding for exactly MinDuration pays that tier's fee.
type FeeTier struct {
	MinDuration abi.ChainEpoch
	BasisPoints uint64
}

// Fixed by design rather than configurable.
var ExitFeeTiers = []FeeTier{
	{MinDuration: 0, BasisPoints: 500},
	{MinDuration: 7 * builtin.EpochsInDay, BasisPoints: 350},
	{MinDuration: 14 * builtin.EpochsInDay, BasisPoints: 200},
	{MinDuration: 30 * builtin.EpochsInDay, BasisPoints: 100},
}

// ExitFeeBasisPoints returns the exit fee tier for a holding duration.
func ExitFeeBasisPoints(duration abi.ChainEpoch) uint64 {
	bps := ExitFeeTiers[0].BasisPoints
	for _, tier := range ExitFeeTiers {
		if duration < tier.MinDuration {
			break
		}
		bps = tier.BasisPoints
	}
	return bps
}

// Rate controller policy. The controller moves the emission rate by a fixed
// 10% step only when sustainability leaves the 90%-150% dead band around the
// target, both bounds exclusive.
const (
	RateStepBasisPoints = 1000

	LowSustainabilityBandNumerator  = 9
	HighSustainabilityBandNumerator = 15
	SustainabilityBandDenominator   = 10
)

// AdjustmentReason tags why a committed rate change happened.
type AdjustmentReason uint64

const (
	ReasonManual AdjustmentReason = iota
	ReasonFloorForced
	ReasonDecreasedLowSustainability
	ReasonIncreasedHighSustainability
)

func (r AdjustmentReason) String() string {
	switch r {
	case ReasonManual:
		return "manual"
	case ReasonFloorForced:
		return "floor-forced"
	case ReasonDecreasedLowSustainability:
		return "decreased-low-sustainability"
	case ReasonIncreasedHighSustainability:
		return "increased-high-sustainability"
	default:
		return "unknown"
	}
}

// Policy defaults applied at construction; all but the fee tiers may be
// changed afterwards through governed setters.
var (
	// One whole token.
	DefaultMinimumStake = abi.NewTokenAmount(1e18)

	// The controller never proposes below this emission rate.
	DefaultMinRewardRate = abi.NewTokenAmount(1e12)

	DefaultRateAdjustmentPeriod = abi.ChainEpoch(builtin.EpochsInDay)

	// 50% yearly emission relative to total staked.
	DefaultMaxAPRBasisPoints uint64 = 5000

	DefaultTargetSustainabilityDays uint64 = 180
)

// Actor-specific exit codes.
const (
	ErrBelowMinimumStake = exitcode.FirstActorSpecificExitCode + iota
	ErrInsufficientBalance
	ErrZeroAmount
	ErrInvalidConfiguration
)
