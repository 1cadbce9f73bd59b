package payload

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	zkdec "github.com/mr-shifu/mixnet-lib/core/zk/decryption"
	zkshuffle "github.com/mr-shifu/mixnet-lib/core/zk/shuffle"
)

// ShufflePayload is the output of an intermediate node: shuffled and
// partially decrypted ciphertexts, with the keys before and after the node
// removed its share.
type ShufflePayload struct {
	encryptionGroup                    *group.GqGroup
	verifiableDecryptions              *zkdec.VerifiableDecryptions
	verifiableShuffle                  *zkshuffle.VerifiableShuffle
	remainingElectionPublicKey         *elgamal.PublicKey
	previousRemainingElectionPublicKey *elgamal.PublicKey
	nodeElectionPublicKey              *elgamal.PublicKey
	nodeID                             int
}

// ShufflePayloadParams holds the constructor arguments of a ShufflePayload.
// VerifiableShuffle is optional.
type ShufflePayloadParams struct {
	EncryptionGroup                    *group.GqGroup
	VerifiableDecryptions              *zkdec.VerifiableDecryptions
	VerifiableShuffle                  *zkshuffle.VerifiableShuffle
	RemainingElectionPublicKey         *elgamal.PublicKey
	PreviousRemainingElectionPublicKey *elgamal.PublicKey
	NodeElectionPublicKey              *elgamal.PublicKey
	NodeID                             int
}

func NewShufflePayload(params ShufflePayloadParams) (*ShufflePayload, error) {
	gq := params.EncryptionGroup
	if gq == nil {
		return nil, fmt.Errorf("%w: encryptionGroup", ErrIncompletePayload)
	}
	if params.VerifiableDecryptions == nil {
		return nil, fmt.Errorf("%w: verifiableDecryptions", ErrIncompletePayload)
	}
	if !params.VerifiableDecryptions.Group().Equal(gq) {
		return nil, fmt.Errorf("%w: verifiableDecryptions are not in the encryption group", group.ErrGroupMismatch)
	}
	if vs := params.VerifiableShuffle; vs != nil && !vs.Group().Equal(gq) {
		return nil, fmt.Errorf("%w: verifiableShuffle is not in the encryption group", group.ErrGroupMismatch)
	}
	if err := checkKeyGroup("remainingElectionPublicKey", gq, params.RemainingElectionPublicKey); err != nil {
		return nil, err
	}
	if err := checkKeyGroup("previousRemainingElectionPublicKey", gq, params.PreviousRemainingElectionPublicKey); err != nil {
		return nil, err
	}
	if err := checkKeyGroup("nodeElectionPublicKey", gq, params.NodeElectionPublicKey); err != nil {
		return nil, err
	}
	if params.NodeID < 0 {
		return nil, fmt.Errorf("%w: negative nodeId %d", ErrIncompletePayload, params.NodeID)
	}
	return &ShufflePayload{
		encryptionGroup:                    gq,
		verifiableDecryptions:              params.VerifiableDecryptions,
		verifiableShuffle:                  params.VerifiableShuffle,
		remainingElectionPublicKey:         params.RemainingElectionPublicKey,
		previousRemainingElectionPublicKey: params.PreviousRemainingElectionPublicKey,
		nodeElectionPublicKey:              params.NodeElectionPublicKey,
		nodeID:                             params.NodeID,
	}, nil
}

func (p *ShufflePayload) Kind() Kind { return KindShuffle }

func (p *ShufflePayload) EncryptionGroup() *group.GqGroup { return p.encryptionGroup }

func (p *ShufflePayload) VerifiableDecryptions() *zkdec.VerifiableDecryptions {
	return p.verifiableDecryptions
}

// VerifiableShuffle may be nil.
func (p *ShufflePayload) VerifiableShuffle() *zkshuffle.VerifiableShuffle { return p.verifiableShuffle }

func (p *ShufflePayload) RemainingElectionPublicKey() *elgamal.PublicKey {
	return p.remainingElectionPublicKey
}

func (p *ShufflePayload) PreviousRemainingElectionPublicKey() *elgamal.PublicKey {
	return p.previousRemainingElectionPublicKey
}

func (p *ShufflePayload) NodeElectionPublicKey() *elgamal.PublicKey { return p.nodeElectionPublicKey }

func (p *ShufflePayload) NodeID() int { return p.nodeID }

func (p *ShufflePayload) Equal(other *ShufflePayload) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.encryptionGroup.Equal(other.encryptionGroup) &&
		p.verifiableDecryptions.Equal(other.verifiableDecryptions) &&
		p.verifiableShuffle.Equal(other.verifiableShuffle) &&
		p.remainingElectionPublicKey.Equal(other.remainingElectionPublicKey) &&
		p.previousRemainingElectionPublicKey.Equal(other.previousRemainingElectionPublicKey) &&
		p.nodeElectionPublicKey.Equal(other.nodeElectionPublicKey) &&
		p.nodeID == other.nodeID
}
