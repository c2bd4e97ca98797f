package govern

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/ipfs/go-cid"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
)

// Methods of the staking actor that may be delegated to governors.
var GovernedMethods = map[abi.MethodNum]struct{}{
	builtin.MethodsStaking.SetRewardRate:               {},
	builtin.MethodsStaking.SetMinimumStake:             {},
	builtin.MethodsStaking.SetRateAdjustmentPeriod:     {},
	builtin.MethodsStaking.SetMaxAPR:                   {},
	builtin.MethodsStaking.SetTargetSustainabilityDays: {},
	builtin.MethodsStaking.ChangeFeeRecipient:          {},
}

// Actor code types permitted to query grants.
var GovernedCallerTypes = []cid.Cid{
	builtin.StakingActorCodeID,
}
