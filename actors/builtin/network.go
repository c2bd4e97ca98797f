package builtin

import "github.com/filecoin-project/go-state-types/big"

// The duration of a chain epoch.
const EpochDurationSeconds = 30
const SecondsInHour = 60 * 60
const SecondsInDay = 24 * SecondsInHour
const SecondsInYear = 365 * SecondsInDay
const EpochsInHour = SecondsInHour / EpochDurationSeconds
const EpochsInDay = 24 * EpochsInHour
const EpochsInYear = 365 * EpochsInDay

// The scale of the native token: 10^18 attotokens per whole token.
var TokenPrecision = big.NewIntUnsigned(1_000_000_000_000_000_000)

// Basis points denominator: 10000 bp == 100%.
const BasisPointsTotal = 10000

// Default branching factors for state HAMTs and AMTs.
const DefaultHamtBitwidth = 5
const DefaultAmtBitwidth = 3
