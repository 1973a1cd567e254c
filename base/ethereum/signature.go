package ethereum

import (
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"
)

// SignerOf recovers the account that produced a personal_sign signature over message.
// Both 0/1 and 27/28 recovery ids are accepted.
func SignerOf(message []byte, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, xerrors.Errorf("decode signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, xerrors.Errorf("signature must be %d bytes long", crypto.SignatureLength)
	}

	// the input is left untouched, callers may log it
	sig = append([]byte(nil), sig...)
	switch v := sig[crypto.RecoveryIDOffset]; v {
	case 0, 1:
	case 27, 28:
		sig[crypto.RecoveryIDOffset] = v - 27
	default:
		return common.Address{}, xerrors.Errorf("invalid recovery id %d", v)
	}

	pub, err := crypto.SigToPub(accounts.TextHash(message), sig)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// IsSignedBy reports whether signature over message was produced by signer
func IsSignedBy(message []byte, signature, signer string) (bool, error) {
	if !common.IsHexAddress(signer) {
		return false, xerrors.Errorf("invalid signer %q", signer)
	}
	recovered, err := SignerOf(message, signature)
	if err != nil {
		return false, err
	}
	return recovered == common.HexToAddress(signer), nil
}
