package staking

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
	"github.com/FeineCapital/PLSXSSS/actors/runtime"
	"github.com/FeineCapital/PLSXSSS/actors/util/adt"
)

type Runtime = runtime.Runtime

// Actor is the staking pool: it holds custody of staked principal and the
// reward pool, accrues rewards per staked unit, levies duration-tiered exit
// fees, and runs the emission rate controller opportunistically on user
// traffic.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Stake,
		3:                         a.Withdraw,
		4:                         a.Claim,
		5:                         a.Exit,
		6:                         a.AddRewards,
		7:                         a.AdjustRewardRate,
		8:                         a.SetRewardRate,
		9:                         a.SetMinimumStake,
		10:                        a.SetRateAdjustmentPeriod,
		11:                        a.SetMaxAPR,
		12:                        a.SetTargetSustainabilityDays,
		13:                        a.ChangeFeeRecipient,
		14:                        a.RewardPerUnit,
		15:                        a.Earned,
		16:                        a.PoolStats,
		17:                        a.StakeInfo,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.StakingActorCodeID
}

func (a Actor) IsSingleton() bool {
	return true
}

func (a Actor) State() cbor.Er { return new(State) }

var _ runtime.VMActor = Actor{}

type ConstructorParams struct {
	FeeRecipient addr.Address
	RewardRate   abi.TokenAmount
}

func (a Actor) Constructor(rt Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	recipient, ok := rt.ResolveAddress(params.FeeRecipient)
	builtin.RequireParam(rt, ok, "failed to resolve fee recipient %s", params.FeeRecipient)
	builtin.RequireParam(rt, params.RewardRate.GreaterThanEqual(big.Zero()), "negative reward rate")

	st, err := ConstructState(adt.AsStore(rt), recipient, params.RewardRate, rt.CurrEpoch())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")

	rt.StateCreate(st)
	return nil
}

// Stake deposits the attached value into the pool. A flat entry fee is
// taken off the deposit; the remainder is credited to the caller's balance
// and the account's weighted stake epoch is blended toward now.
func (a Actor) Stake(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)

	staker := rt.Caller()
	amount := rt.ValueReceived()
	now := rt.CurrEpoch()
	balance := rt.CurrentBalance()

	var st State
	var adjusted *RateAdjustment
	var fee, net, poolShare, recipientShare abi.TokenAmount

	rt.StateTransaction(&st, func() {
		if amount.LessThan(st.MinimumStake) {
			rt.Abortf(ErrBelowMinimumStake, "stake %s below minimum %s", amount, st.MinimumStake)
		}

		adjusted = maybeAdjustRate(rt, &st, now, balance)

		stakers, err := adt.AsMap(adt.AsStore(rt), st.Stakers, builtin.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load stakers")

		info, _, err := st.GetStaker(stakers, staker)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get staker")

		st.SettleStaker(info, now)

		fee = DepositFee(amount)
		net = big.Sub(amount, fee)
		st.Deposit(info, net, now)

		poolShare, recipientShare = SplitFee(fee)
		st.TotalFeesCollected = big.Add(st.TotalFeesCollected, fee)

		err = st.PutStaker(stakers, staker, info)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to put staker")

		st.Stakers, err = stakers.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush stakers")
	})

	pushFunds(rt, st.FeeRecipient, recipientShare)

	notifyAdjustment(rt, adjusted)
	builtin.NotifyStake(rt, staker, amount, fee, net)
	builtin.NotifyFeeSplit(rt, staker, fee, poolShare, recipientShare)
	return nil
}

type WithdrawParams struct {
	Amount abi.TokenAmount
}

// Withdraw debits a gross amount from the caller's staked balance. The exit
// fee tier is chosen from the account's weighted stake age and charged out
// of the gross amount; the net remainder is pushed to the caller.
func (a Actor) Withdraw(rt Runtime, params *WithdrawParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)

	staker := rt.Caller()
	amount := params.Amount
	now := rt.CurrEpoch()
	balance := rt.CurrentBalance()

	var st State
	var adjusted *RateAdjustment
	var duration abi.ChainEpoch
	var feeBps uint64
	var fee, net, poolShare, recipientShare abi.TokenAmount

	rt.StateTransaction(&st, func() {
		if amount.IsZero() || amount.LessThan(big.Zero()) {
			rt.Abortf(ErrZeroAmount, "withdraw amount must be positive")
		}

		adjusted = maybeAdjustRate(rt, &st, now, balance)

		stakers, err := adt.AsMap(adt.AsStore(rt), st.Stakers, builtin.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load stakers")

		info, found, err := st.GetStaker(stakers, staker)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get staker")
		if !found || amount.GreaterThan(info.StakedAmount) {
			rt.Abortf(ErrInsufficientBalance, "withdraw %s exceeds staked balance", amount)
		}

		st.SettleStaker(info, now)

		duration = now - info.WeightedStakeEpoch
		feeBps = ExitFeeBasisPoints(duration)
		fee = ExitFee(amount, duration)
		net = big.Sub(amount, fee)

		err = st.Debit(info, amount)
		builtin.RequireNoErr(rt, err, ErrInsufficientBalance, "failed to debit staker")

		poolShare, recipientShare = SplitFee(fee)
		st.TotalFeesCollected = big.Add(st.TotalFeesCollected, fee)

		err = st.PutStaker(stakers, staker, info)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to put staker")

		st.Stakers, err = stakers.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush stakers")
	})

	pushFunds(rt, staker, net)
	pushFunds(rt, st.FeeRecipient, recipientShare)

	notifyAdjustment(rt, adjusted)
	builtin.NotifyWithdraw(rt, staker, amount, fee, net)
	builtin.NotifyDurationFee(rt, staker, duration, feeBps, fee)
	builtin.NotifyFeeSplit(rt, staker, fee, poolShare, recipientShare)
	return nil
}

// Claim pushes the caller's pending reward out of the pool. A zero pending
// reward is a silent no-op.
func (a Actor) Claim(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)

	staker := rt.Caller()
	now := rt.CurrEpoch()
	balance := rt.CurrentBalance()

	var st State
	var adjusted *RateAdjustment
	reward := big.Zero()

	rt.StateTransaction(&st, func() {
		adjusted = maybeAdjustRate(rt, &st, now, balance)

		stakers, err := adt.AsMap(adt.AsStore(rt), st.Stakers, builtin.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load stakers")

		info, found, err := st.GetStaker(stakers, staker)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get staker")
		if !found {
			return
		}

		st.SettleStaker(info, now)

		if info.PendingReward.IsZero() {
			return
		}

		reward = info.PendingReward
		info.PendingReward = big.Zero()
		st.TotalRewardsDistributed = big.Add(st.TotalRewardsDistributed, reward)

		err = st.PutStaker(stakers, staker, info)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to put staker")

		st.Stakers, err = stakers.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush stakers")
	})

	pushFunds(rt, staker, reward)

	notifyAdjustment(rt, adjusted)
	if !reward.IsZero() {
		builtin.NotifyClaim(rt, staker, reward)
	}
	return nil
}

// Exit withdraws the caller's entire staked balance and claims any pending
// reward in a single settlement pass. Either half silently no-ops when
// zero; the emptied account record is removed.
func (a Actor) Exit(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)

	staker := rt.Caller()
	now := rt.CurrEpoch()
	balance := rt.CurrentBalance()

	var st State
	var adjusted *RateAdjustment
	var duration abi.ChainEpoch
	var feeBps uint64
	gross := big.Zero()
	reward := big.Zero()
	fee := big.Zero()
	net := big.Zero()
	poolShare := big.Zero()
	recipientShare := big.Zero()

	rt.StateTransaction(&st, func() {
		adjusted = maybeAdjustRate(rt, &st, now, balance)

		stakers, err := adt.AsMap(adt.AsStore(rt), st.Stakers, builtin.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load stakers")

		info, found, err := st.GetStaker(stakers, staker)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get staker")
		if !found {
			return
		}

		st.SettleStaker(info, now)

		if !info.StakedAmount.IsZero() {
			gross = info.StakedAmount
			duration = now - info.WeightedStakeEpoch
			feeBps = ExitFeeBasisPoints(duration)
			fee = ExitFee(gross, duration)
			net = big.Sub(gross, fee)

			err = st.Debit(info, gross)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to debit staker")

			poolShare, recipientShare = SplitFee(fee)
			st.TotalFeesCollected = big.Add(st.TotalFeesCollected, fee)
		}

		if !info.PendingReward.IsZero() {
			reward = info.PendingReward
			info.PendingReward = big.Zero()
			st.TotalRewardsDistributed = big.Add(st.TotalRewardsDistributed, reward)
		}

		err = st.PutStaker(stakers, staker, info)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to put staker")

		st.Stakers, err = stakers.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush stakers")
	})

	pushFunds(rt, staker, big.Add(net, reward))
	pushFunds(rt, st.FeeRecipient, recipientShare)

	notifyAdjustment(rt, adjusted)
	if !gross.IsZero() {
		builtin.NotifyWithdraw(rt, staker, gross, fee, net)
		builtin.NotifyDurationFee(rt, staker, duration, feeBps, fee)
		builtin.NotifyFeeSplit(rt, staker, fee, poolShare, recipientShare)
	}
	if !reward.IsZero() {
		builtin.NotifyClaim(rt, staker, reward)
	}
	return nil
}

// AddRewards accepts the attached value into the reward pool. Anyone may
// fund the pool.
func (a Actor) AddRewards(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()

	amount := rt.ValueReceived()
	now := rt.CurrEpoch()
	balance := rt.CurrentBalance()

	var st State
	var adjusted *RateAdjustment

	rt.StateTransaction(&st, func() {
		if amount.IsZero() {
			rt.Abortf(ErrZeroAmount, "reward contribution must be positive")
		}
		st.SettleGlobal(now)
		adjusted = maybeAdjustRate(rt, &st, now, balance)
	})

	notifyAdjustment(rt, adjusted)
	return nil
}

// AdjustRewardRate is the permissionless controller poke: it runs the rate
// adjustment check immediately if the adjustment period has elapsed.
func (a Actor) AdjustRewardRate(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()

	now := rt.CurrEpoch()
	balance := rt.CurrentBalance()

	var st State
	var adjusted *RateAdjustment

	rt.StateTransaction(&st, func() {
		st.SettleGlobal(now)
		adjusted = maybeAdjustRate(rt, &st, now, balance)
	})

	notifyAdjustment(rt, adjusted)
	return nil
}

type RateParams struct {
	Rate abi.TokenAmount
}

// SetRewardRate commits a manual emission rate, subject to the same floor
// and APR cap the controller honors.
func (a Actor) SetRewardRate(rt Runtime, params *RateParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsStaking.SetRewardRate)

	now := rt.CurrEpoch()

	var st State
	var adjusted RateAdjustment

	rt.StateTransaction(&st, func() {
		if params.Rate.LessThan(st.MinRewardRate) {
			rt.Abortf(ErrInvalidConfiguration, "rate %s below floor %s", params.Rate, st.MinRewardRate)
		}
		if !st.TotalStaked.IsZero() && params.Rate.GreaterThan(st.maxRateForAPR()) {
			rt.Abortf(ErrInvalidConfiguration, "rate %s implies APR above %d bps", params.Rate, st.MaxAPRBasisPoints)
		}

		st.SettleGlobal(now)

		var err error
		adjusted, err = st.CommitRateChange(adt.AsStore(rt), now, params.Rate, ReasonManual)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to commit rate change")
	})

	builtin.NotifyRateChange(rt, adjusted.OldRate, adjusted.NewRate, uint64(ReasonManual))
	return nil
}

type AmountParams struct {
	Amount abi.TokenAmount
}

func (a Actor) SetMinimumStake(rt Runtime, params *AmountParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsStaking.SetMinimumStake)

	var st State
	rt.StateTransaction(&st, func() {
		if params.Amount.LessThanEqual(big.Zero()) {
			rt.Abortf(ErrInvalidConfiguration, "minimum stake must be positive")
		}
		st.MinimumStake = params.Amount
	})
	return nil
}

type EpochParams struct {
	Period abi.ChainEpoch
}

func (a Actor) SetRateAdjustmentPeriod(rt Runtime, params *EpochParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsStaking.SetRateAdjustmentPeriod)

	var st State
	rt.StateTransaction(&st, func() {
		if params.Period <= 0 {
			rt.Abortf(ErrInvalidConfiguration, "adjustment period must be positive")
		}
		st.RateAdjustmentPeriod = params.Period
	})
	return nil
}

type BasisPointsParams struct {
	BasisPoints uint64
}

func (a Actor) SetMaxAPR(rt Runtime, params *BasisPointsParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsStaking.SetMaxAPR)

	var st State
	rt.StateTransaction(&st, func() {
		if params.BasisPoints == 0 {
			rt.Abortf(ErrInvalidConfiguration, "max APR must be positive")
		}
		st.MaxAPRBasisPoints = params.BasisPoints
	})
	return nil
}

type DaysParams struct {
	Days uint64
}

func (a Actor) SetTargetSustainabilityDays(rt Runtime, params *DaysParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsStaking.SetTargetSustainabilityDays)

	var oldDays uint64
	var st State
	rt.StateTransaction(&st, func() {
		if params.Days == 0 {
			rt.Abortf(ErrInvalidConfiguration, "target sustainability days must be positive")
		}
		oldDays = st.TargetSustainabilityDays
		st.TargetSustainabilityDays = params.Days
	})

	builtin.NotifyTargetUpdate(rt, oldDays, params.Days)
	return nil
}

func (a Actor) ChangeFeeRecipient(rt Runtime, newRecipient *addr.Address) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsStaking.ChangeFeeRecipient)

	recipient, ok := rt.ResolveAddress(*newRecipient)
	builtin.RequireParam(rt, ok, "failed to resolve fee recipient %s", newRecipient)

	var st State
	rt.StateTransaction(&st, func() {
		st.FeeRecipient = recipient
	})
	return nil
}

//
// Read-only query surface
//

func (a Actor) RewardPerUnit(rt Runtime, _ *abi.EmptyValue) *abi.TokenAmount {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)

	rpu := st.RewardPerUnit(rt.CurrEpoch())
	return &rpu
}

func (a Actor) Earned(rt Runtime, stakerAddr *addr.Address) *abi.TokenAmount {
	rt.ValidateImmediateCallerAcceptAny()

	staker, ok := rt.ResolveAddress(*stakerAddr)
	builtin.RequireParam(rt, ok, "failed to resolve staker %s", stakerAddr)

	var st State
	rt.StateReadonly(&st)

	stakers, err := adt.AsMap(adt.AsStore(rt), st.Stakers, builtin.DefaultHamtBitwidth)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load stakers")

	info, _, err := st.GetStaker(stakers, staker)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get staker")

	earned := st.Earned(info, rt.CurrEpoch())
	return &earned
}

type PoolStatsReturn struct {
	TotalStaked             abi.TokenAmount
	RewardRate              abi.TokenAmount
	AvailableRewards        abi.TokenAmount
	SustainabilityDays      uint64
	APRBasisPoints          uint64
	TotalFeesCollected      abi.TokenAmount
	TotalRewardsDistributed abi.TokenAmount
}

func (a Actor) PoolStats(rt Runtime, _ *abi.EmptyValue) *PoolStatsReturn {
	rt.ValidateImmediateCallerAcceptAny()

	balance := rt.CurrentBalance()

	var st State
	rt.StateReadonly(&st)

	return &PoolStatsReturn{
		TotalStaked:             st.TotalStaked,
		RewardRate:              st.RewardRate,
		AvailableRewards:        st.AvailableRewards(balance),
		SustainabilityDays:      st.SustainabilityDays(balance),
		APRBasisPoints:          st.APRBasisPoints(),
		TotalFeesCollected:      st.TotalFeesCollected,
		TotalRewardsDistributed: st.TotalRewardsDistributed,
	}
}

type StakeInfoReturn struct {
	StakedAmount   abi.TokenAmount
	Earned         abi.TokenAmount
	StakeDuration  abi.ChainEpoch
	FeeBasisPoints uint64
}

func (a Actor) StakeInfo(rt Runtime, stakerAddr *addr.Address) *StakeInfoReturn {
	rt.ValidateImmediateCallerAcceptAny()

	staker, ok := rt.ResolveAddress(*stakerAddr)
	builtin.RequireParam(rt, ok, "failed to resolve staker %s", stakerAddr)

	now := rt.CurrEpoch()

	var st State
	rt.StateReadonly(&st)

	stakers, err := adt.AsMap(adt.AsStore(rt), st.Stakers, builtin.DefaultHamtBitwidth)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load stakers")

	info, found, err := st.GetStaker(stakers, staker)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get staker")

	ret := &StakeInfoReturn{
		StakedAmount: info.StakedAmount,
		Earned:       st.Earned(info, now),
	}
	if found && !info.StakedAmount.IsZero() {
		ret.StakeDuration = now - info.WeightedStakeEpoch
	}
	ret.FeeBasisPoints = ExitFeeBasisPoints(ret.StakeDuration)
	return ret
}

//
// Helpers
//

// maybeAdjustRate runs the opportunistic controller check inside a state
// transaction, committing a proposed rate when it differs from the current
// one. Returns the committed adjustment, or nil.
func maybeAdjustRate(rt Runtime, st *State, now abi.ChainEpoch, balance abi.TokenAmount) *RateAdjustment {
	should, proposed, reason := st.CheckAdjustment(now, balance)
	if !should || proposed.Equals(st.RewardRate) {
		return nil
	}

	st.SettleGlobal(now)

	adjustment, err := st.CommitRateChange(adt.AsStore(rt), now, proposed, reason)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to commit rate change")
	return &adjustment
}

// pushFunds sends value out of custody, aborting the whole message when the
// transfer fails.
func pushFunds(rt Runtime, to addr.Address, amount abi.TokenAmount) {
	if amount.IsZero() {
		return
	}
	code := rt.Send(to, builtin.MethodSend, nil, amount, &builtin.Discard{})
	builtin.RequireSuccess(rt, code, "failed to send %s to %s", amount, to)
}

func notifyAdjustment(rt Runtime, adjustment *RateAdjustment) {
	if adjustment == nil {
		return
	}
	builtin.NotifyRateChange(rt, adjustment.OldRate, adjustment.NewRate, uint64(adjustment.Reason))
}
