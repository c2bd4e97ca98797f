package main

import (
	gen "github.com/whyrusleeping/cbor-gen"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
	"github.com/FeineCapital/PLSXSSS/actors/builtin/govern"
	"github.com/FeineCapital/PLSXSSS/actors/builtin/staking"
	"github.com/FeineCapital/PLSXSSS/actors/builtin/system"
	"github.com/FeineCapital/PLSXSSS/actors/builtin/telemetry"
)

func main() {
	// Common types
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/cbor_gen.go", "builtin",
		builtin.ValidateGrantedParams{},
		builtin.StakeNotification{},
		builtin.WithdrawNotification{},
		builtin.ClaimNotification{},
		builtin.FeeSplitNotification{},
		builtin.DurationFeeNotification{},
		builtin.RateChangeNotification{},
		builtin.TargetUpdateNotification{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/system/cbor_gen.go", "system",
		system.State{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/govern/cbor_gen.go", "govern",
		govern.State{},
		govern.GrantOrRevokeParams{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/telemetry/cbor_gen.go", "telemetry",
		telemetry.State{},
		telemetry.EventTally{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/staking/cbor_gen.go", "staking",
		staking.State{},
		staking.StakerInfo{},
		staking.RateAdjustment{},
		staking.ConstructorParams{},
		staking.WithdrawParams{},
		staking.RateParams{},
		staking.AmountParams{},
		staking.EpochParams{},
		staking.BasisPointsParams{},
		staking.DaysParams{},
		staking.PoolStatsReturn{},
		staking.StakeInfoReturn{},
	); err != nil {
		panic(err)
	}
}
