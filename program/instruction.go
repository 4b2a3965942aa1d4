// Package program holds the types shared by every program client in this
// repository: the instruction record handed to the transaction-submission
// collaborator, the fetched-account value handed back by the RPC
// collaborator, well-known program ids, and the validation gates every state
// loader applies.
package program

import "github.com/gagliardetto/solana-go"

// Instruction is a submittable program invocation: the target program, the
// ordered account references the program indexes into positionally, and the
// tag-prefixed payload bytes. It satisfies solana.Instruction.
type Instruction struct {
	IsAccounts  []*solana.AccountMeta
	IsData      []byte
	IsProgramID solana.PublicKey
}

func (i *Instruction) Accounts() []*solana.AccountMeta {
	return i.IsAccounts
}

func (i *Instruction) ProgramID() solana.PublicKey {
	return i.IsProgramID
}

func (i *Instruction) Data() ([]byte, error) {
	return i.IsData, nil
}

// Meta builds a read-only, non-signing account reference.
func Meta(key solana.PublicKey) *solana.AccountMeta {
	return &solana.AccountMeta{PublicKey: key}
}

// WritableMeta builds a writable, non-signing account reference.
func WritableMeta(key solana.PublicKey) *solana.AccountMeta {
	return &solana.AccountMeta{PublicKey: key, IsWritable: true}
}

// SignerMeta builds a read-only signing account reference.
func SignerMeta(key solana.PublicKey) *solana.AccountMeta {
	return &solana.AccountMeta{PublicKey: key, IsSigner: true}
}

// WritableSignerMeta builds a writable signing account reference.
func WritableSignerMeta(key solana.PublicKey) *solana.AccountMeta {
	return &solana.AccountMeta{PublicKey: key, IsSigner: true, IsWritable: true}
}
