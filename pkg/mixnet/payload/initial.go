package payload

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

// InitialPayload carries a ballot box's encrypted votes into the mixnet.
type InitialPayload struct {
	encryptionGroup   *group.GqGroup
	ciphertexts       *CiphertextVector
	electionPublicKey *elgamal.PublicKey
}

func NewInitialPayload(gq *group.GqGroup, ciphertexts *CiphertextVector, electionPublicKey *elgamal.PublicKey) (*InitialPayload, error) {
	if gq == nil {
		return nil, fmt.Errorf("%w: encryptionGroup", ErrIncompletePayload)
	}
	if ciphertexts.IsEmpty() {
		return nil, fmt.Errorf("%w: ciphertexts must not be empty", group.ErrInconsistentVectorLength)
	}
	if !ciphertexts.At(0).Group().Equal(gq) {
		return nil, fmt.Errorf("%w: ciphertexts are not in the encryption group", group.ErrGroupMismatch)
	}
	if err := checkKeyGroup("electionPublicKey", gq, electionPublicKey); err != nil {
		return nil, err
	}
	return &InitialPayload{
		encryptionGroup:   gq,
		ciphertexts:       ciphertexts,
		electionPublicKey: electionPublicKey,
	}, nil
}

func (p *InitialPayload) Kind() Kind { return KindInitial }

func (p *InitialPayload) EncryptionGroup() *group.GqGroup { return p.encryptionGroup }

func (p *InitialPayload) Ciphertexts() *CiphertextVector { return p.ciphertexts }

func (p *InitialPayload) ElectionPublicKey() *elgamal.PublicKey { return p.electionPublicKey }

// RemainingElectionPublicKey is the full election key: no node has removed
// its share yet.
func (p *InitialPayload) RemainingElectionPublicKey() *elgamal.PublicKey { return p.electionPublicKey }

func (p *InitialPayload) Equal(other *InitialPayload) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.encryptionGroup.Equal(other.encryptionGroup) &&
		p.ciphertexts.Equal(other.ciphertexts) &&
		p.electionPublicKey.Equal(other.electionPublicKey)
}
