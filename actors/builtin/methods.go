package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

var MethodsSystem = struct {
	Constructor abi.MethodNum
}{MethodConstructor}

var MethodsStaking = struct {
	Constructor                 abi.MethodNum
	Stake                       abi.MethodNum
	Withdraw                    abi.MethodNum
	Claim                       abi.MethodNum
	Exit                        abi.MethodNum
	AddRewards                  abi.MethodNum
	AdjustRewardRate            abi.MethodNum
	SetRewardRate               abi.MethodNum
	SetMinimumStake             abi.MethodNum
	SetRateAdjustmentPeriod     abi.MethodNum
	SetMaxAPR                   abi.MethodNum
	SetTargetSustainabilityDays abi.MethodNum
	ChangeFeeRecipient          abi.MethodNum
	RewardPerUnit               abi.MethodNum
	Earned                      abi.MethodNum
	PoolStats                   abi.MethodNum
	StakeInfo                   abi.MethodNum
}{MethodConstructor, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}

var MethodsGovern = struct {
	Constructor     abi.MethodNum
	Grant           abi.MethodNum
	Revoke          abi.MethodNum
	ValidateGranted abi.MethodNum
}{MethodConstructor, 2, 3, 4}

var MethodsTelemetry = struct {
	Constructor   abi.MethodNum
	OnStake       abi.MethodNum
	OnWithdraw    abi.MethodNum
	OnClaim       abi.MethodNum
	OnFeeSplit    abi.MethodNum
	OnDurationFee abi.MethodNum
	OnRateChange  abi.MethodNum
	OnTargetSet   abi.MethodNum
}{MethodConstructor, 2, 3, 4, 5, 6, 7, 8}
