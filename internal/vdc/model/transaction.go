// Package model defines the ledger domain types: the sealed transaction
// variants, the commodity basket, and the block/draft pair.
package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// TxType tags the two transaction variants stored on chain.
type TxType string

const (
	TxMint TxType = "MINT"
	TxBurn TxType = "BURN"
)

// Transaction is the closed set of ledger transaction variants. Only Mint
// and Burn satisfy it.
type Transaction interface {
	Type() TxType
	TxWallet() string
	TxAmount() decimal.Decimal

	sealed()
}

// ValidationProof references the external attestation backing a mint.
type ValidationProof struct {
	Protocol       string `json:"protocol"`
	AttestationRef string `json:"attestation_ref"`
	ProofRef       string `json:"proof_ref"`
}

// Mint issues new supply against verified physical work.
type Mint struct {
	Wallet    string          `json:"wallet"`
	Amount    decimal.Decimal `json:"amount"`
	Asset     string          `json:"asset"`
	Joules    uint64          `json:"joules"`
	Timestamp int64           `json:"timestamp"`
	Proof     ValidationProof `json:"validation_proof"`
}

func (Mint) Type() TxType                { return TxMint }
func (t Mint) TxWallet() string          { return t.Wallet }
func (t Mint) TxAmount() decimal.Decimal { return t.Amount }
func (Mint) sealed()                     {}

// MarshalJSON adds the variant tag to the encoded transaction.
func (t Mint) MarshalJSON() ([]byte, error) {
	type alias Mint
	return json.Marshal(struct {
		Type TxType `json:"type"`
		alias
	}{TxMint, alias(t)})
}

// Basket is the commodity redemption owed for a burn, in grams.
type Basket struct {
	GoldGrams   decimal.Decimal `json:"gold_grams"`
	SilkGrams   decimal.Decimal `json:"silk_grams"`
	TencelGrams decimal.Decimal `json:"tencel_grams"`
}

// Burn destroys supply in exchange for a commodity basket shipment.
type Burn struct {
	Wallet      string          `json:"wallet"`
	Amount      decimal.Decimal `json:"amount"`
	Asset       string          `json:"asset"`
	Basket      Basket          `json:"redemption_basket"`
	ShippingRef string          `json:"shipping_txid"`
	Timestamp   int64           `json:"timestamp"`
}

func (Burn) Type() TxType                { return TxBurn }
func (t Burn) TxWallet() string          { return t.Wallet }
func (t Burn) TxAmount() decimal.Decimal { return t.Amount }
func (Burn) sealed()                     {}

// MarshalJSON adds the variant tag to the encoded transaction.
func (t Burn) MarshalJSON() ([]byte, error) {
	type alias Burn
	return json.Marshal(struct {
		Type TxType `json:"type"`
		alias
	}{TxBurn, alias(t)})
}

// Transactions orders transactions within a block and decodes the tagged
// encoding back into the concrete variants.
type Transactions []Transaction

func (ts *Transactions) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	out := make(Transactions, 0, len(raws))
	for _, raw := range raws {
		var tag struct {
			Type TxType `json:"type"`
		}
		if err := json.Unmarshal(raw, &tag); err != nil {
			return err
		}
		switch tag.Type {
		case TxMint:
			var tx Mint
			if err := json.Unmarshal(raw, &tx); err != nil {
				return err
			}
			out = append(out, tx)
		case TxBurn:
			var tx Burn
			if err := json.Unmarshal(raw, &tx); err != nil {
				return err
			}
			out = append(out, tx)
		default:
			return fmt.Errorf("unknown transaction type %q", tag.Type)
		}
	}

	*ts = out
	return nil
}
