package model

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vdcprotocol/vdc-backend/internal/vdc/protocol"
)

// BlockDraft is a block before its hash exists. Drafts are the only
// hashable form; a Block is produced exclusively by sealing a draft with
// its computed hash, so a hash can never be taken over a record that
// already carries one.
type BlockDraft struct {
	Index     uint64          `json:"index"`
	Timestamp int64           `json:"timestamp"`
	Txs       Transactions    `json:"txs"`
	Supply    decimal.Decimal `json:"supply"`
	PrevHash  string          `json:"prev_hash"`
}

// Seal attaches the computed content hash, producing the immutable block.
func (d BlockDraft) Seal(hash string) Block {
	return Block{BlockDraft: d, Hash: hash}
}

// Block is a sealed, hash-carrying chain entry.
type Block struct {
	BlockDraft
	Hash string `json:"block_hash"`
}

// Genesis returns the fixed root block shared by every chain. Its hash is
// a protocol sentinel, not derived from content.
func Genesis() Block {
	return BlockDraft{
		Index:     0,
		Timestamp: 0,
		Txs:       Transactions{},
		Supply:    decimal.Zero,
		PrevHash:  strings.Repeat("0", 64),
	}.Seal(protocol.GenesisHash)
}
