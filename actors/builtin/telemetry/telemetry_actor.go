package telemetry

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
	"github.com/FeineCapital/PLSXSSS/actors/runtime"
	"github.com/FeineCapital/PLSXSSS/actors/util/adt"
)

// Actor aggregates notifications pushed by the staking actor. It keeps
// running tallies per event kind so observers can read pool activity without
// replaying messages.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.OnStake,
		3:                         a.OnWithdraw,
		4:                         a.OnClaim,
		5:                         a.OnFeeSplit,
		6:                         a.OnDurationFee,
		7:                         a.OnRateChange,
		8:                         a.OnTargetSet,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.TelemetryActorCodeID
}

func (a Actor) IsSingleton() bool {
	return true
}

func (a Actor) State() cbor.Er { return new(State) }

var _ runtime.VMActor = Actor{}

func (a Actor) Constructor(rt runtime.Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	st, err := ConstructState(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")

	rt.StateCreate(st)
	return nil
}

func (a Actor) OnStake(rt runtime.Runtime, params *builtin.StakeNotification) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.StakingActorAddr)

	a.record(rt, EventStake, params.NetAmount)
	rt.Log(rtt.DEBUG, "stake by %s: net %s fee %s", params.Staker, params.NetAmount, params.Fee)
	return nil
}

func (a Actor) OnWithdraw(rt runtime.Runtime, params *builtin.WithdrawNotification) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.StakingActorAddr)

	a.record(rt, EventWithdraw, params.Amount)
	rt.Log(rtt.DEBUG, "withdraw by %s: gross %s fee %s", params.Staker, params.Amount, params.Fee)
	return nil
}

func (a Actor) OnClaim(rt runtime.Runtime, params *builtin.ClaimNotification) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.StakingActorAddr)

	a.record(rt, EventClaim, params.Amount)
	return nil
}

func (a Actor) OnFeeSplit(rt runtime.Runtime, params *builtin.FeeSplitNotification) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.StakingActorAddr)

	a.record(rt, EventFeeSplit, params.Total)
	return nil
}

func (a Actor) OnDurationFee(rt runtime.Runtime, params *builtin.DurationFeeNotification) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.StakingActorAddr)

	a.record(rt, EventDurationFee, params.Fee)
	rt.Log(rtt.DEBUG, "duration fee for %s: %d epochs at %d bps", params.Staker, params.Duration, params.BasisPoints)
	return nil
}

func (a Actor) OnRateChange(rt runtime.Runtime, params *builtin.RateChangeNotification) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.StakingActorAddr)

	var st State
	rt.StateTransaction(&st, func() {
		tallies, err := adt.AsMap(adt.AsStore(rt), st.Tallies, builtin.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load tallies")

		err = st.recordEvent(tallies, EventRateChange, params.NewRate)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to record event")

		st.Tallies, err = tallies.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush tallies")

		st.LastRewardRate = params.NewRate
	})
	rt.Log(rtt.INFO, "reward rate changed from %s to %s (reason %d)", params.OldRate, params.NewRate, params.Reason)
	return nil
}

func (a Actor) OnTargetSet(rt runtime.Runtime, params *builtin.TargetUpdateNotification) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.StakingActorAddr)

	var st State
	rt.StateTransaction(&st, func() {
		st.TargetSustainabilityDays = params.NewDays
	})
	rt.Log(rtt.INFO, "sustainability target changed from %d to %d days", params.OldDays, params.NewDays)
	return nil
}

func (a Actor) record(rt runtime.Runtime, event string, amount abi.TokenAmount) {
	var st State
	rt.StateTransaction(&st, func() {
		tallies, err := adt.AsMap(adt.AsStore(rt), st.Tallies, builtin.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load tallies")

		err = st.recordEvent(tallies, event, amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to record event")

		st.Tallies, err = tallies.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush tallies")
	})
}
