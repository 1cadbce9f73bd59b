package payload

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	zkdec "github.com/mr-shifu/mixnet-lib/core/zk/decryption"
	zkshuffle "github.com/mr-shifu/mixnet-lib/core/zk/shuffle"
)

// FinalPayload is produced by the last node: the plaintext votes and their
// decryption proofs.
type FinalPayload struct {
	encryptionGroup                    *group.GqGroup
	verifiableShuffle                  *zkshuffle.VerifiableShuffle
	verifiablePlaintextDecryption      *zkdec.VerifiablePlaintextDecryption
	previousRemainingElectionPublicKey *elgamal.PublicKey
}

// NewFinalPayload builds a final payload. verifiableShuffle may be nil.
func NewFinalPayload(gq *group.GqGroup, verifiableShuffle *zkshuffle.VerifiableShuffle,
	verifiablePlaintextDecryption *zkdec.VerifiablePlaintextDecryption, previousRemainingElectionPublicKey *elgamal.PublicKey,
) (*FinalPayload, error) {
	if gq == nil {
		return nil, fmt.Errorf("%w: encryptionGroup", ErrIncompletePayload)
	}
	if verifiablePlaintextDecryption == nil {
		return nil, fmt.Errorf("%w: verifiablePlaintextDecryption", ErrIncompletePayload)
	}
	if !verifiablePlaintextDecryption.Group().Equal(gq) {
		return nil, fmt.Errorf("%w: decrypted votes are not in the encryption group", group.ErrGroupMismatch)
	}
	if verifiableShuffle != nil && !verifiableShuffle.Group().Equal(gq) {
		return nil, fmt.Errorf("%w: verifiableShuffle is not in the encryption group", group.ErrGroupMismatch)
	}
	if err := checkKeyGroup("previousRemainingElectionPublicKey", gq, previousRemainingElectionPublicKey); err != nil {
		return nil, err
	}
	return &FinalPayload{
		encryptionGroup:                    gq,
		verifiableShuffle:                  verifiableShuffle,
		verifiablePlaintextDecryption:      verifiablePlaintextDecryption,
		previousRemainingElectionPublicKey: previousRemainingElectionPublicKey,
	}, nil
}

func (p *FinalPayload) Kind() Kind { return KindFinal }

func (p *FinalPayload) EncryptionGroup() *group.GqGroup { return p.encryptionGroup }

// VerifiableShuffle may be nil.
func (p *FinalPayload) VerifiableShuffle() *zkshuffle.VerifiableShuffle { return p.verifiableShuffle }

func (p *FinalPayload) VerifiablePlaintextDecryption() *zkdec.VerifiablePlaintextDecryption {
	return p.verifiablePlaintextDecryption
}

func (p *FinalPayload) PreviousRemainingElectionPublicKey() *elgamal.PublicKey {
	return p.previousRemainingElectionPublicKey
}

func (p *FinalPayload) Equal(other *FinalPayload) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.encryptionGroup.Equal(other.encryptionGroup) &&
		p.verifiableShuffle.Equal(other.verifiableShuffle) &&
		p.verifiablePlaintextDecryption.Equal(other.verifiablePlaintextDecryption) &&
		p.previousRemainingElectionPublicKey.Equal(other.previousRemainingElectionPublicKey)
}
