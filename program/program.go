package program

import "github.com/gagliardetto/solana-go"

// Well-known program and sysvar ids referenced by instruction account lists.
// The swap and farm program ids are deployment-specific and always supplied
// by the caller.
var (
	Token    = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	System   = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")
	SysClock = solana.MustPublicKeyFromBase58("SysvarC1ock11111111111111111111111111111111")
	SysRent  = solana.MustPublicKeyFromBase58("SysvarRent111111111111111111111111111111111")
)

// Authority derives the swap authority address for a pool account.
func Authority(pool solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{pool.Bytes()}, programID)
}
