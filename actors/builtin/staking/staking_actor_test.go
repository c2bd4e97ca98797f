package staking_test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
	"github.com/FeineCapital/PLSXSSS/actors/builtin/staking"
	"github.com/FeineCapital/PLSXSSS/actors/util/adt"
	"github.com/FeineCapital/PLSXSSS/support/mock"
	tutil "github.com/FeineCapital/PLSXSSS/support/testing"
)

func TestExports(t *testing.T) {
	mock.CheckActorExports(t, staking.Actor{})
}

func TestConstruction(t *testing.T) {
	t.Run("simple construction", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		st := h.state(rt)
		assert.Equal(t, h.recipient, st.FeeRecipient)
		assert.True(t, st.RewardRate.Equals(h.rewardRate))
		assert.True(t, st.MinimumStake.Equals(staking.DefaultMinimumStake))
		assert.True(t, st.TotalStaked.IsZero())
	})

	t.Run("rejects negative reward rate", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)

		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Constructor, &staking.ConstructorParams{
				FeeRecipient: h.recipient,
				RewardRate:   big.NewInt(-1),
			})
		})
	})

	t.Run("rejects unresolvable fee recipient", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)

		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Constructor, &staking.ConstructorParams{
				FeeRecipient: tutil.NewSECP256K1Addr(t, "unmapped"),
				RewardRate:   h.rewardRate,
			})
		})
	})

	t.Run("rejects non-system caller", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)

		rt.SetCaller(tutil.NewIDAddr(t, 501), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(h.Constructor, &staking.ConstructorParams{
				FeeRecipient: h.recipient,
				RewardRate:   h.rewardRate,
			})
		})
	})
}

func TestStake(t *testing.T) {
	staker := tutil.NewIDAddr(t, 101)

	t.Run("first deposit takes the entry fee and credits the rest", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)
		h.lowerMinimumStake(rt)

		rt.SetBalance(abi.NewTokenAmount(1000))
		h.stake(rt, staker, abi.NewTokenAmount(1000), abi.NewTokenAmount(10), abi.NewTokenAmount(990))

		st := h.state(rt)
		assert.True(t, st.TotalStaked.Equals(abi.NewTokenAmount(990)))
		assert.True(t, st.TotalFeesCollected.Equals(abi.NewTokenAmount(10)))

		info, found := h.getStaker(rt, staker)
		require.True(t, found)
		assert.True(t, info.StakedAmount.Equals(abi.NewTokenAmount(990)))
		assert.True(t, info.PendingReward.IsZero())
		assert.Equal(t, abi.ChainEpoch(0), info.WeightedStakeEpoch)
	})

	t.Run("second deposit blends the weighted stake epoch", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)
		h.lowerMinimumStake(rt)

		rt.SetBalance(abi.NewTokenAmount(2000))
		h.stake(rt, staker, abi.NewTokenAmount(1000), abi.NewTokenAmount(10), abi.NewTokenAmount(990))

		rt.SetEpoch(abi.ChainEpoch(200))
		h.stake(rt, staker, abi.NewTokenAmount(1000), abi.NewTokenAmount(10), abi.NewTokenAmount(990))

		info, found := h.getStaker(rt, staker)
		require.True(t, found)
		assert.True(t, info.StakedAmount.Equals(abi.NewTokenAmount(1980)))
		assert.Equal(t, abi.ChainEpoch(100), info.WeightedStakeEpoch)
	})

	t.Run("rejects deposit below minimum stake", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetCaller(staker, builtin.AccountActorCodeID)
		rt.SetReceived(abi.NewTokenAmount(1000))
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(staking.ErrBelowMinimumStake, func() {
			rt.Call(h.Stake, nil)
		})
	})

	t.Run("rejects non-signable caller", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetCaller(tutil.NewIDAddr(t, 501), builtin.StakingActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(h.Stake, nil)
		})
	})
}

func TestWithdraw(t *testing.T) {
	staker := tutil.NewIDAddr(t, 101)

	t.Run("full withdrawal after ten days pays the second tier fee", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)
		h.lowerMinimumStake(rt)

		rt.SetBalance(abi.NewTokenAmount(1000))
		h.stake(rt, staker, abi.NewTokenAmount(1000), abi.NewTokenAmount(10), abi.NewTokenAmount(990))

		tenDays := abi.ChainEpoch(10 * builtin.EpochsInDay)
		rt.SetEpoch(tenDays)

		// gross 990 at 350 bps: fee 34, net 956, split 23 pool / 10 recipient
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectSend(staker, builtin.MethodSend, nil, abi.NewTokenAmount(956), nil, exitcode.Ok)
		rt.ExpectSend(h.recipient, builtin.MethodSend, nil, abi.NewTokenAmount(10), nil, exitcode.Ok)
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnWithdraw, &builtin.WithdrawNotification{
			Staker:    staker,
			Amount:    abi.NewTokenAmount(990),
			Fee:       abi.NewTokenAmount(34),
			NetAmount: abi.NewTokenAmount(956),
		}, big.Zero(), nil, exitcode.Ok)
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnDurationFee, &builtin.DurationFeeNotification{
			Staker:      staker,
			Duration:    tenDays,
			BasisPoints: 350,
			Fee:         abi.NewTokenAmount(34),
		}, big.Zero(), nil, exitcode.Ok)
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnFeeSplit, &builtin.FeeSplitNotification{
			Payer:          staker,
			Total:          abi.NewTokenAmount(34),
			PoolShare:      abi.NewTokenAmount(23),
			RecipientShare: abi.NewTokenAmount(10),
		}, big.Zero(), nil, exitcode.Ok)
		rt.Call(h.Withdraw, &staking.WithdrawParams{Amount: abi.NewTokenAmount(990)})
		rt.Verify()

		st := h.state(rt)
		assert.True(t, st.TotalStaked.IsZero())
		assert.True(t, st.TotalFeesCollected.Equals(abi.NewTokenAmount(44)))

		// rewards settled during the withdrawal stay claimable
		info, found := h.getStaker(rt, staker)
		require.True(t, found)
		assert.True(t, info.StakedAmount.IsZero())
		expectedReward := accruedReward(abi.NewTokenAmount(990), h.rewardRate, tenDays)
		assert.True(t, info.PendingReward.Equals(expectedReward))
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetCaller(staker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(staking.ErrZeroAmount, func() {
			rt.Call(h.Withdraw, &staking.WithdrawParams{Amount: big.Zero()})
		})
	})

	t.Run("rejects withdrawal with no stake", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetCaller(staker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(staking.ErrInsufficientBalance, func() {
			rt.Call(h.Withdraw, &staking.WithdrawParams{Amount: abi.NewTokenAmount(1)})
		})
	})

	t.Run("rejects withdrawal above staked balance", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)
		h.lowerMinimumStake(rt)

		rt.SetBalance(abi.NewTokenAmount(1000))
		h.stake(rt, staker, abi.NewTokenAmount(1000), abi.NewTokenAmount(10), abi.NewTokenAmount(990))

		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(staking.ErrInsufficientBalance, func() {
			rt.Call(h.Withdraw, &staking.WithdrawParams{Amount: abi.NewTokenAmount(991)})
		})
	})
}

func TestClaim(t *testing.T) {
	staker := tutil.NewIDAddr(t, 101)

	t.Run("pushes the settled reward", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)
		h.lowerMinimumStake(rt)

		rt.SetBalance(abi.NewTokenAmount(1000))
		h.stake(rt, staker, abi.NewTokenAmount(1000), abi.NewTokenAmount(10), abi.NewTokenAmount(990))

		oneDay := abi.ChainEpoch(builtin.EpochsInDay)
		rt.SetEpoch(oneDay)
		// fund the pool for two hundred days of emission, inside the dead band
		rt.SetBalance(h.balanceForDays(rt, 200))

		reward := accruedReward(abi.NewTokenAmount(990), h.rewardRate, oneDay)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectSend(staker, builtin.MethodSend, nil, reward, nil, exitcode.Ok)
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnClaim, &builtin.ClaimNotification{
			Staker: staker,
			Amount: reward,
		}, big.Zero(), nil, exitcode.Ok)
		rt.Call(h.Claim, nil)
		rt.Verify()

		st := h.state(rt)
		assert.True(t, st.TotalRewardsDistributed.Equals(reward))

		info, found := h.getStaker(rt, staker)
		require.True(t, found)
		assert.True(t, info.PendingReward.IsZero())
		assert.True(t, info.StakedAmount.Equals(abi.NewTokenAmount(990)))
	})

	t.Run("no-op with nothing accrued", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetCaller(staker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.Call(h.Claim, nil)
		rt.Verify()
	})
}

func TestExit(t *testing.T) {
	staker := tutil.NewIDAddr(t, 101)

	t.Run("pays out principal and reward in one message", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)
		h.lowerMinimumStake(rt)

		rt.SetBalance(abi.NewTokenAmount(1000))
		h.stake(rt, staker, abi.NewTokenAmount(1000), abi.NewTokenAmount(10), abi.NewTokenAmount(990))

		thirtyDays := abi.ChainEpoch(30 * builtin.EpochsInDay)
		rt.SetEpoch(thirtyDays)
		rt.SetBalance(h.balanceForDays(rt, 200))

		// gross 990 at 100 bps: fee 9, net 981, split 6 pool / 2 recipient
		reward := accruedReward(abi.NewTokenAmount(990), h.rewardRate, thirtyDays)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectSend(staker, builtin.MethodSend, nil, big.Add(abi.NewTokenAmount(981), reward), nil, exitcode.Ok)
		rt.ExpectSend(h.recipient, builtin.MethodSend, nil, abi.NewTokenAmount(2), nil, exitcode.Ok)
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnWithdraw, &builtin.WithdrawNotification{
			Staker:    staker,
			Amount:    abi.NewTokenAmount(990),
			Fee:       abi.NewTokenAmount(9),
			NetAmount: abi.NewTokenAmount(981),
		}, big.Zero(), nil, exitcode.Ok)
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnDurationFee, &builtin.DurationFeeNotification{
			Staker:      staker,
			Duration:    thirtyDays,
			BasisPoints: 100,
			Fee:         abi.NewTokenAmount(9),
		}, big.Zero(), nil, exitcode.Ok)
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnFeeSplit, &builtin.FeeSplitNotification{
			Payer:          staker,
			Total:          abi.NewTokenAmount(9),
			PoolShare:      abi.NewTokenAmount(6),
			RecipientShare: abi.NewTokenAmount(2),
		}, big.Zero(), nil, exitcode.Ok)
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnClaim, &builtin.ClaimNotification{
			Staker: staker,
			Amount: reward,
		}, big.Zero(), nil, exitcode.Ok)
		rt.Call(h.Exit, nil)
		rt.Verify()

		st := h.state(rt)
		assert.True(t, st.TotalStaked.IsZero())
		assert.True(t, st.TotalFeesCollected.Equals(abi.NewTokenAmount(19)))
		assert.True(t, st.TotalRewardsDistributed.Equals(reward))

		// the emptied record is reclaimed
		_, found := h.getStaker(rt, staker)
		assert.False(t, found)
	})

	t.Run("no-op with no account", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetCaller(staker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.Call(h.Exit, nil)
		rt.Verify()
	})
}

func TestAddRewards(t *testing.T) {
	funder := tutil.NewIDAddr(t, 105)

	t.Run("anyone may fund the pool", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetCaller(funder, builtin.AccountActorCodeID)
		rt.SetReceived(abi.NewTokenAmount(5000))
		rt.ExpectValidateCallerAny()
		rt.Call(h.AddRewards, nil)
		rt.Verify()
	})

	t.Run("rejects an empty contribution", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetCaller(funder, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(staking.ErrZeroAmount, func() {
			rt.Call(h.AddRewards, nil)
		})
	})
}

func TestAdjustRewardRate(t *testing.T) {
	caller := tutil.NewIDAddr(t, 105)

	t.Run("no-op before the adjustment period elapses", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetEpoch(staking.DefaultRateAdjustmentPeriod - 1)
		rt.SetCaller(caller, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.Call(h.AdjustRewardRate, nil)
		rt.Verify()

		st := h.state(rt)
		assert.True(t, st.RewardRate.Equals(h.rewardRate))
		assert.Equal(t, uint64(0), h.adjustmentCount(rt))
	})

	t.Run("high sustainability steps the rate up", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)
		h.setTotalStaked(rt, big.MustFromString("10000000000000000000"))

		rt.SetEpoch(staking.DefaultRateAdjustmentPeriod)
		rt.SetBalance(h.balanceForDays(rt, 347))

		newRate := big.Div(big.Mul(h.rewardRate, big.NewInt(11)), big.NewInt(10))
		rt.SetCaller(caller, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnRateChange, &builtin.RateChangeNotification{
			OldRate: h.rewardRate,
			NewRate: newRate,
			Reason:  uint64(staking.ReasonIncreasedHighSustainability),
		}, big.Zero(), nil, exitcode.Ok)
		rt.Call(h.AdjustRewardRate, nil)
		rt.Verify()

		st := h.state(rt)
		assert.True(t, st.RewardRate.Equals(newRate))
		assert.Equal(t, staking.DefaultRateAdjustmentPeriod, st.LastRateAdjustmentEpoch)

		adj := h.lastAdjustment(rt)
		assert.Equal(t, staking.ReasonIncreasedHighSustainability, adj.Reason)
		assert.True(t, adj.OldRate.Equals(h.rewardRate))
	})

	t.Run("depleted pool forces the floor", func(t *testing.T) {
		h := newHarness(t)
		h.rewardRate = big.Mul(staking.DefaultMinRewardRate, big.NewInt(2))
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetEpoch(staking.DefaultRateAdjustmentPeriod)
		rt.SetCaller(caller, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnRateChange, &builtin.RateChangeNotification{
			OldRate: h.rewardRate,
			NewRate: staking.DefaultMinRewardRate,
			Reason:  uint64(staking.ReasonFloorForced),
		}, big.Zero(), nil, exitcode.Ok)
		rt.Call(h.AdjustRewardRate, nil)
		rt.Verify()

		st := h.state(rt)
		assert.True(t, st.RewardRate.Equals(staking.DefaultMinRewardRate))
	})
}

func TestSetRewardRate(t *testing.T) {
	governor := tutil.NewIDAddr(t, 70)

	t.Run("governor commits a manual rate", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		newRate := big.Mul(staking.DefaultMinRewardRate, big.NewInt(5))
		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetRewardRate, exitcode.Ok)
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnRateChange, &builtin.RateChangeNotification{
			OldRate: h.rewardRate,
			NewRate: newRate,
			Reason:  uint64(staking.ReasonManual),
		}, big.Zero(), nil, exitcode.Ok)
		rt.Call(h.SetRewardRate, &staking.RateParams{Rate: newRate})
		rt.Verify()

		st := h.state(rt)
		assert.True(t, st.RewardRate.Equals(newRate))

		adj := h.lastAdjustment(rt)
		assert.Equal(t, staking.ReasonManual, adj.Reason)
		assert.True(t, adj.NewRate.Equals(newRate))
	})

	t.Run("rejects ungranted caller", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetRewardRate, exitcode.ErrForbidden)
		rt.ExpectAbortContainsMessage(exitcode.ErrForbidden, "method not granted", func() {
			rt.Call(h.SetRewardRate, &staking.RateParams{Rate: big.Mul(staking.DefaultMinRewardRate, big.NewInt(5))})
		})
	})

	t.Run("rejects rate below the floor", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetRewardRate, exitcode.Ok)
		rt.ExpectAbort(staking.ErrInvalidConfiguration, func() {
			rt.Call(h.SetRewardRate, &staking.RateParams{Rate: big.Sub(staking.DefaultMinRewardRate, big.NewInt(1))})
		})
	})

	t.Run("rejects rate above the APR cap", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)
		h.setTotalStaked(rt, big.MustFromString("10000000000000000000"))

		// cap at 50% APR on 1e19 staked is just under 5e12 per epoch
		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetRewardRate, exitcode.Ok)
		rt.ExpectAbort(staking.ErrInvalidConfiguration, func() {
			rt.Call(h.SetRewardRate, &staking.RateParams{Rate: abi.NewTokenAmount(1e13)})
		})
	})
}

func TestGovernedConfiguration(t *testing.T) {
	governor := tutil.NewIDAddr(t, 70)

	setCaller := func(rt *mock.Runtime) {
		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	}

	t.Run("set minimum stake", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		setCaller(rt)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetMinimumStake, exitcode.Ok)
		rt.Call(h.SetMinimumStake, &staking.AmountParams{Amount: abi.NewTokenAmount(5e17)})
		rt.Verify()
		assert.True(t, h.state(rt).MinimumStake.Equals(abi.NewTokenAmount(5e17)))

		setCaller(rt)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetMinimumStake, exitcode.Ok)
		rt.ExpectAbort(staking.ErrInvalidConfiguration, func() {
			rt.Call(h.SetMinimumStake, &staking.AmountParams{Amount: big.Zero()})
		})
	})

	t.Run("set rate adjustment period", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		setCaller(rt)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetRateAdjustmentPeriod, exitcode.Ok)
		rt.Call(h.SetRateAdjustmentPeriod, &staking.EpochParams{Period: 2 * staking.DefaultRateAdjustmentPeriod})
		rt.Verify()
		assert.Equal(t, 2*staking.DefaultRateAdjustmentPeriod, h.state(rt).RateAdjustmentPeriod)

		setCaller(rt)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetRateAdjustmentPeriod, exitcode.Ok)
		rt.ExpectAbort(staking.ErrInvalidConfiguration, func() {
			rt.Call(h.SetRateAdjustmentPeriod, &staking.EpochParams{Period: 0})
		})
	})

	t.Run("set max APR", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		setCaller(rt)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetMaxAPR, exitcode.Ok)
		rt.Call(h.SetMaxAPR, &staking.BasisPointsParams{BasisPoints: 2000})
		rt.Verify()
		assert.Equal(t, uint64(2000), h.state(rt).MaxAPRBasisPoints)

		setCaller(rt)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetMaxAPR, exitcode.Ok)
		rt.ExpectAbort(staking.ErrInvalidConfiguration, func() {
			rt.Call(h.SetMaxAPR, &staking.BasisPointsParams{BasisPoints: 0})
		})
	})

	t.Run("set target sustainability days", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		setCaller(rt)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetTargetSustainabilityDays, exitcode.Ok)
		rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnTargetSet, &builtin.TargetUpdateNotification{
			OldDays: staking.DefaultTargetSustainabilityDays,
			NewDays: 90,
		}, big.Zero(), nil, exitcode.Ok)
		rt.Call(h.SetTargetSustainabilityDays, &staking.DaysParams{Days: 90})
		rt.Verify()
		assert.Equal(t, uint64(90), h.state(rt).TargetSustainabilityDays)

		setCaller(rt)
		h.expectGranted(rt, governor, builtin.MethodsStaking.SetTargetSustainabilityDays, exitcode.Ok)
		rt.ExpectAbort(staking.ErrInvalidConfiguration, func() {
			rt.Call(h.SetTargetSustainabilityDays, &staking.DaysParams{Days: 0})
		})
	})

	t.Run("change fee recipient", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)

		newRecipient := tutil.NewIDAddr(t, 91)
		setCaller(rt)
		h.expectGranted(rt, governor, builtin.MethodsStaking.ChangeFeeRecipient, exitcode.Ok)
		rt.Call(h.ChangeFeeRecipient, &newRecipient)
		rt.Verify()
		assert.Equal(t, newRecipient, h.state(rt).FeeRecipient)
	})
}

func TestQueries(t *testing.T) {
	staker := tutil.NewIDAddr(t, 101)

	setup := func(t *testing.T) (*actorHarness, *mock.Runtime) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt)
		h.lowerMinimumStake(rt)
		rt.SetBalance(abi.NewTokenAmount(1000))
		h.stake(rt, staker, abi.NewTokenAmount(1000), abi.NewTokenAmount(10), abi.NewTokenAmount(990))
		return h, rt
	}

	t.Run("reward per unit", func(t *testing.T) {
		h, rt := setup(t)

		rt.SetEpoch(abi.ChainEpoch(10))
		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.RewardPerUnit, nil).(*abi.TokenAmount)
		rt.Verify()

		expected := big.Div(big.Mul(big.NewInt(10), big.Mul(h.rewardRate, staking.RewardAccumulatorScale)), big.NewInt(990))
		assert.True(t, ret.Equals(expected))
	})

	t.Run("earned", func(t *testing.T) {
		h, rt := setup(t)

		oneDay := abi.ChainEpoch(builtin.EpochsInDay)
		rt.SetEpoch(oneDay)
		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.Earned, &staker).(*abi.TokenAmount)
		rt.Verify()

		assert.True(t, ret.Equals(accruedReward(abi.NewTokenAmount(990), h.rewardRate, oneDay)))
	})

	t.Run("earned for unknown staker is zero", func(t *testing.T) {
		h, rt := setup(t)

		unknown := tutil.NewIDAddr(t, 999)
		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.Earned, &unknown).(*abi.TokenAmount)
		rt.Verify()

		assert.True(t, ret.IsZero())
	})

	t.Run("pool stats", func(t *testing.T) {
		h, rt := setup(t)

		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.PoolStats, nil).(*staking.PoolStatsReturn)
		rt.Verify()

		assert.True(t, ret.TotalStaked.Equals(abi.NewTokenAmount(990)))
		assert.True(t, ret.RewardRate.Equals(h.rewardRate))
		assert.True(t, ret.TotalFeesCollected.Equals(abi.NewTokenAmount(10)))
		assert.True(t, ret.TotalRewardsDistributed.IsZero())
	})

	t.Run("stake info", func(t *testing.T) {
		h, rt := setup(t)

		tenDays := abi.ChainEpoch(10 * builtin.EpochsInDay)
		rt.SetEpoch(tenDays)
		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.StakeInfo, &staker).(*staking.StakeInfoReturn)
		rt.Verify()

		assert.True(t, ret.StakedAmount.Equals(abi.NewTokenAmount(990)))
		assert.Equal(t, tenDays, ret.StakeDuration)
		assert.Equal(t, uint64(350), ret.FeeBasisPoints)
		assert.True(t, ret.Earned.Equals(accruedReward(abi.NewTokenAmount(990), h.rewardRate, tenDays)))
	})
}

type actorHarness struct {
	staking.Actor
	t *testing.T

	recipient  addr.Address
	rewardRate abi.TokenAmount
}

func newHarness(t *testing.T) *actorHarness {
	return &actorHarness{
		t:          t,
		recipient:  tutil.NewIDAddr(t, 90),
		rewardRate: staking.DefaultMinRewardRate,
	}
}

func (h *actorHarness) builder() *mock.RuntimeBuilder {
	return mock.NewBuilder(context.Background(), builtin.StakingActorAddr).
		WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)
}

func (h *actorHarness) constructAndVerify(rt *mock.Runtime) {
	rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
	ret := rt.Call(h.Constructor, &staking.ConstructorParams{
		FeeRecipient: h.recipient,
		RewardRate:   h.rewardRate,
	})
	assert.Nil(h.t, ret)
	rt.Verify()
}

// stake runs a deposit with its expected fund push and telemetry, asserting
// the fee arithmetic via the expectation values.
func (h *actorHarness) stake(rt *mock.Runtime, staker addr.Address, amount, fee, net abi.TokenAmount) {
	poolShare, recipientShare := staking.SplitFee(fee)

	rt.SetCaller(staker, builtin.AccountActorCodeID)
	rt.SetReceived(amount)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	if !recipientShare.IsZero() {
		rt.ExpectSend(h.recipient, builtin.MethodSend, nil, recipientShare, nil, exitcode.Ok)
	}
	rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnStake, &builtin.StakeNotification{
		Staker:    staker,
		Amount:    amount,
		Fee:       fee,
		NetAmount: net,
	}, big.Zero(), nil, exitcode.Ok)
	rt.ExpectSend(builtin.TelemetryActorAddr, builtin.MethodsTelemetry.OnFeeSplit, &builtin.FeeSplitNotification{
		Payer:          staker,
		Total:          fee,
		PoolShare:      poolShare,
		RecipientShare: recipientShare,
	}, big.Zero(), nil, exitcode.Ok)
	rt.Call(h.Stake, nil)
	rt.Verify()
}

func (h *actorHarness) expectGranted(rt *mock.Runtime, governor addr.Address, method abi.MethodNum, code exitcode.ExitCode) {
	rt.ExpectSend(builtin.GovernActorAddr, builtin.MethodsGovern.ValidateGranted, &builtin.ValidateGrantedParams{
		Caller: governor,
		Method: method,
	}, big.Zero(), nil, code)
}

func (h *actorHarness) state(rt *mock.Runtime) *staking.State {
	var st staking.State
	rt.GetState(&st)
	return &st
}

func (h *actorHarness) lowerMinimumStake(rt *mock.Runtime) {
	st := h.state(rt)
	st.MinimumStake = abi.NewTokenAmount(1)
	rt.ReplaceState(st)
}

func (h *actorHarness) setTotalStaked(rt *mock.Runtime, amount abi.TokenAmount) {
	st := h.state(rt)
	st.TotalStaked = amount
	rt.ReplaceState(st)
}

// balanceForDays returns an actor balance whose surplus over the staked
// principal sustains the current emission rate for the given days.
func (h *actorHarness) balanceForDays(rt *mock.Runtime, days int64) abi.TokenAmount {
	st := h.state(rt)
	return big.Add(st.TotalStaked, big.Mul(st.RewardRate, big.NewInt(days*builtin.EpochsInDay)))
}

func (h *actorHarness) getStaker(rt *mock.Runtime, staker addr.Address) (*staking.StakerInfo, bool) {
	st := h.state(rt)
	stakers, err := adt.AsMap(rt.AdtStore(), st.Stakers, builtin.DefaultHamtBitwidth)
	require.NoError(h.t, err)
	info, found, err := st.GetStaker(stakers, staker)
	require.NoError(h.t, err)
	return info, found
}

func (h *actorHarness) adjustmentCount(rt *mock.Runtime) uint64 {
	st := h.state(rt)
	adjustments, err := adt.AsArray(rt.AdtStore(), st.Adjustments, builtin.DefaultAmtBitwidth)
	require.NoError(h.t, err)
	return adjustments.Length()
}

// accruedReward reproduces the accumulator's floor arithmetic for a single
// staker holding the whole pool.
func accruedReward(staked, rate abi.TokenAmount, elapsed abi.ChainEpoch) abi.TokenAmount {
	rpu := big.Div(big.Mul(big.Mul(rate, big.NewInt(int64(elapsed))), staking.RewardAccumulatorScale), staked)
	return big.Div(big.Mul(staked, rpu), staking.RewardAccumulatorScale)
}

func (h *actorHarness) lastAdjustment(rt *mock.Runtime) *staking.RateAdjustment {
	st := h.state(rt)
	adjustments, err := adt.AsArray(rt.AdtStore(), st.Adjustments, builtin.DefaultAmtBitwidth)
	require.NoError(h.t, err)
	count := adjustments.Length()
	require.NotZero(h.t, count)

	var adj staking.RateAdjustment
	found, err := adjustments.Get(count-1, &adj)
	require.NoError(h.t, err)
	require.True(h.t, found)
	return &adj
}
