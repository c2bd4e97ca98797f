package builtin

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"

	"github.com/FeineCapital/PLSXSSS/actors/runtime"
)

// Telemetry notifications carry the literal values used in the computation
// they report. They are fire-and-forget: a failed send is ignored, because
// telemetry must never fail the operation it observes.

type StakeNotification struct {
	Staker    addr.Address
	Amount    abi.TokenAmount // gross amount transferred in
	Fee       abi.TokenAmount
	NetAmount abi.TokenAmount // amount credited to the stake balance
}

type WithdrawNotification struct {
	Staker    addr.Address
	Amount    abi.TokenAmount // gross amount debited from the stake balance
	Fee       abi.TokenAmount
	NetAmount abi.TokenAmount // amount transferred out to the staker
}

type ClaimNotification struct {
	Staker addr.Address
	Amount abi.TokenAmount
}

type FeeSplitNotification struct {
	Payer          addr.Address
	Total          abi.TokenAmount
	PoolShare      abi.TokenAmount
	RecipientShare abi.TokenAmount
}

type DurationFeeNotification struct {
	Staker      addr.Address
	Duration    abi.ChainEpoch
	BasisPoints uint64
	Fee         abi.TokenAmount
}

type RateChangeNotification struct {
	OldRate abi.TokenAmount
	NewRate abi.TokenAmount
	Reason  uint64
}

type TargetUpdateNotification struct {
	OldDays uint64
	NewDays uint64
}

func NotifyStake(rt runtime.Runtime, staker addr.Address, amount, fee, net abi.TokenAmount) {
	notify(rt, MethodsTelemetry.OnStake, &StakeNotification{Staker: staker, Amount: amount, Fee: fee, NetAmount: net})
}

func NotifyWithdraw(rt runtime.Runtime, staker addr.Address, amount, fee, net abi.TokenAmount) {
	notify(rt, MethodsTelemetry.OnWithdraw, &WithdrawNotification{Staker: staker, Amount: amount, Fee: fee, NetAmount: net})
}

func NotifyClaim(rt runtime.Runtime, staker addr.Address, amount abi.TokenAmount) {
	notify(rt, MethodsTelemetry.OnClaim, &ClaimNotification{Staker: staker, Amount: amount})
}

func NotifyFeeSplit(rt runtime.Runtime, payer addr.Address, total, poolShare, recipientShare abi.TokenAmount) {
	notify(rt, MethodsTelemetry.OnFeeSplit, &FeeSplitNotification{Payer: payer, Total: total, PoolShare: poolShare, RecipientShare: recipientShare})
}

func NotifyDurationFee(rt runtime.Runtime, staker addr.Address, duration abi.ChainEpoch, basisPoints uint64, fee abi.TokenAmount) {
	notify(rt, MethodsTelemetry.OnDurationFee, &DurationFeeNotification{Staker: staker, Duration: duration, BasisPoints: basisPoints, Fee: fee})
}

func NotifyRateChange(rt runtime.Runtime, oldRate, newRate abi.TokenAmount, reason uint64) {
	notify(rt, MethodsTelemetry.OnRateChange, &RateChangeNotification{OldRate: oldRate, NewRate: newRate, Reason: reason})
}

func NotifyTargetUpdate(rt runtime.Runtime, oldDays, newDays uint64) {
	notify(rt, MethodsTelemetry.OnTargetSet, &TargetUpdateNotification{OldDays: oldDays, NewDays: newDays})
}

func notify(rt runtime.Runtime, method abi.MethodNum, params cbor.Marshaler) {
	// Exit code deliberately ignored.
	_ = rt.Send(TelemetryActorAddr, method, params, big.Zero(), &Discard{})
}
