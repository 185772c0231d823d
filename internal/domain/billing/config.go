package billing

import (
	"odgpos/internal/core/types"
)

// ERP schema tags for a POS sale. The same ic_trans tables also carry
// warehouse transfers (trans_flag 124), so every row written here must be
// tagged consistently or sibling reports pick it up in the wrong bucket.
const (
	TransType    = 3
	TransFlagPOS = 44

	DocFormatPOS = "POS"

	DefaultBranchCode = "00"
	DefaultWHCode     = "1301"
	DefaultShelfCode  = "130101"
	DefaultUserCode   = "SYSTEM"
)

// Cash-book routing codes. trans_number and doc_type on cb_trans_detail
// depend only on the payment method.
const (
	CashTransNumber = "02"
	CashDocType     = 19

	TransferTransNumber = "1010201"
	TransferBankCode    = "BCEL"
	TransferBankBranch  = "0001"

	DefaultDocType = 0
)

// Config holds composer configuration.
type Config struct {
	// FallbackRate substitutes for a missing or zero live LAK->Baht rate.
	// Substitution is logged and flagged in the confirmation; it is an
	// explicit policy, not a silent default.
	FallbackRate types.Money
}

// DefaultConfig returns the composer defaults.
// 0.0015673 is the historical LAK->Baht rate the ERP shipped with.
func DefaultConfig() Config {
	return Config{
		FallbackRate: types.MustMoney("0.0015673"),
	}
}
