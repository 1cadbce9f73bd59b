package codec

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	zkdec "github.com/mr-shifu/mixnet-lib/core/zk/decryption"
	zkshuffle "github.com/mr-shifu/mixnet-lib/core/zk/shuffle"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
)

func EncodeGqGroup(gq *group.GqGroup) ([]byte, error) { return marshal(groupToWire(gq)) }

func EncodeCiphertext(c *elgamal.Ciphertext) ([]byte, error) { return marshal(ciphertextToWire(c)) }

func EncodeCiphertexts(v *payload.CiphertextVector) ([]byte, error) {
	return marshal(ciphertextsToWire(v))
}

// EncodePublicKey renders the key as a bare array of hex values.
func EncodePublicKey(pk *elgamal.PublicKey) ([]byte, error) { return marshal(gqHexes(pk.Elements())) }

func EncodePrivateKey(sk *elgamal.PrivateKey) ([]byte, error) { return marshal(zqHexes(sk.Elements())) }

func EncodeMessage(m *elgamal.Message) ([]byte, error) { return marshal(messageToWire(m)) }

func EncodeZeroArgument(z *zkshuffle.ZeroArgument) ([]byte, error) { return marshal(zeroToWire(z)) }

func EncodeHadamardArgument(h *zkshuffle.HadamardArgument) ([]byte, error) {
	return marshal(hadamardToWire(h))
}

func EncodeSingleValueProductArgument(s *zkshuffle.SingleValueProductArgument) ([]byte, error) {
	return marshal(svpToWire(s))
}

func EncodeProductArgument(p *zkshuffle.ProductArgument) ([]byte, error) {
	return marshal(productToWire(p))
}

func EncodeMultiExponentiationArgument(x *zkshuffle.MultiExponentiationArgument) ([]byte, error) {
	return marshal(multiExpToWire(x))
}

func EncodeShuffleArgument(s *zkshuffle.ShuffleArgument) ([]byte, error) {
	return marshal(shuffleToWire(s))
}

func EncodeVerifiableShuffle(v *zkshuffle.VerifiableShuffle) ([]byte, error) {
	return marshal(verifiableShuffleToWire(v))
}

func EncodeDecryptionProof(p *zkdec.DecryptionProof) ([]byte, error) { return marshal(proofToWire(p)) }

func EncodeVerifiableDecryptions(v *zkdec.VerifiableDecryptions) ([]byte, error) {
	return marshal(verifiableDecryptionsToWire(v))
}

func EncodeVerifiablePlaintextDecryption(v *zkdec.VerifiablePlaintextDecryption) ([]byte, error) {
	return marshal(verifiablePlaintextDecryptionToWire(v))
}

// EncodePayload renders a payload together with its signature, if any.
func EncodePayload(s *payload.Signed[payload.Payload]) ([]byte, error) {
	w, err := payloadToWire(s.Payload(), s.Signature())
	if err != nil {
		return nil, err
	}
	return marshal(w)
}

// EncodeUnsignedPayload renders p without a signature member. These are the
// bytes a signature covers.
func EncodeUnsignedPayload(p payload.Payload) ([]byte, error) {
	w, err := payloadToWire(p, nil)
	if err != nil {
		return nil, err
	}
	return marshal(w)
}

func EncodeState(s *state.MixnetState) ([]byte, error) {
	p, err := EncodePayload(s.Payload())
	if err != nil {
		return nil, err
	}
	w := stateWire{
		BallotBoxDetails: ballotBoxDetailsWire{
			BallotBoxID:     s.BallotBoxDetails().BallotBoxID(),
			ElectionEventID: s.BallotBoxDetails().ElectionEventID(),
		},
		NodeToVisit: s.NodeToVisit(),
		Payload:     p,
		RetryCount:  s.RetryCount(),
	}
	if msg, ok := s.MixnetError(); ok {
		w.MixnetError = &msg
	}
	return marshal(w)
}

func payloadToWire(p payload.Payload, sig *payload.Signature) (interface{}, error) {
	switch x := p.(type) {
	case *payload.InitialPayload:
		return initialPayloadWire{
			EncryptionGroup:   groupToWire(x.EncryptionGroup()),
			Ciphertexts:       ciphertextsToWire(x.Ciphertexts()),
			ElectionPublicKey: gqHexes(x.ElectionPublicKey().Elements()),
			Signature:         signatureToWire(sig),
		}, nil
	case *payload.ShufflePayload:
		return shufflePayloadWire{
			EncryptionGroup:                    groupToWire(x.EncryptionGroup()),
			VerifiableDecryptions:              verifiableDecryptionsToWire(x.VerifiableDecryptions()),
			VerifiableShuffle:                  optionalShuffleToWire(x.VerifiableShuffle()),
			RemainingElectionPublicKey:         gqHexes(x.RemainingElectionPublicKey().Elements()),
			PreviousRemainingElectionPublicKey: gqHexes(x.PreviousRemainingElectionPublicKey().Elements()),
			NodeElectionPublicKey:              gqHexes(x.NodeElectionPublicKey().Elements()),
			NodeID:                             x.NodeID(),
			Signature:                          signatureToWire(sig),
		}, nil
	case *payload.FinalPayload:
		return finalPayloadWire{
			EncryptionGroup:                    groupToWire(x.EncryptionGroup()),
			VerifiableShuffle:                  optionalShuffleToWire(x.VerifiableShuffle()),
			VerifiablePlaintextDecryption:      verifiablePlaintextDecryptionToWire(x.VerifiablePlaintextDecryption()),
			PreviousRemainingElectionPublicKey: gqHexes(x.PreviousRemainingElectionPublicKey().Elements()),
			Signature:                          signatureToWire(sig),
		}, nil
	}
	return nil, fmt.Errorf("codec: unsupported payload type %T", p)
}

func groupToWire(gq *group.GqGroup) groupWire {
	return groupWire{P: EncodeHex(gq.P()), Q: EncodeHex(gq.Q()), G: EncodeHex(gq.G())}
}

func gqHexes(v *elgamal.GqVector) []string {
	out := make([]string, v.Len())
	for i := range out {
		out[i] = EncodeHex(v.At(i).Value())
	}
	return out
}

func zqHexes(v *elgamal.ZqVector) []string {
	out := make([]string, v.Len())
	for i := range out {
		out[i] = EncodeHex(v.At(i).Value())
	}
	return out
}

func ciphertextToWire(c *elgamal.Ciphertext) ciphertextWire {
	return ciphertextWire{Gamma: EncodeHex(c.Gamma().Value()), Phis: gqHexes(c.Phis())}
}

func ciphertextsToWire(v *payload.CiphertextVector) []ciphertextWire {
	out := make([]ciphertextWire, v.Len())
	for i := range out {
		out[i] = ciphertextToWire(v.At(i))
	}
	return out
}

func messageToWire(m *elgamal.Message) messageWire {
	return messageWire{Message: gqHexes(m.Elements())}
}

func zeroToWire(z *zkshuffle.ZeroArgument) zeroWire {
	return zeroWire{
		CA0:    EncodeHex(z.CA0().Value()),
		CBm:    EncodeHex(z.CBm().Value()),
		Cd:     gqHexes(z.Cd()),
		APrime: zqHexes(z.APrime()),
		BPrime: zqHexes(z.BPrime()),
		RPrime: EncodeHex(z.RPrime().Value()),
		SPrime: EncodeHex(z.SPrime().Value()),
		TPrime: EncodeHex(z.TPrime().Value()),
	}
}

func hadamardToWire(h *zkshuffle.HadamardArgument) hadamardWire {
	return hadamardWire{Cb: gqHexes(h.Cb()), ZeroArgument: zeroToWire(h.ZeroArgument())}
}

func svpToWire(s *zkshuffle.SingleValueProductArgument) svpWire {
	return svpWire{
		Cd:          EncodeHex(s.Cd().Value()),
		CLowerDelta: EncodeHex(s.CLowerDelta().Value()),
		CUpperDelta: EncodeHex(s.CUpperDelta().Value()),
		ATilde:      zqHexes(s.ATilde()),
		BTilde:      zqHexes(s.BTilde()),
		RTilde:      EncodeHex(s.RTilde().Value()),
		STilde:      EncodeHex(s.STilde().Value()),
	}
}

// productToWire omits c_b and hadamardArgument for single column arguments.
func productToWire(p *zkshuffle.ProductArgument) productWire {
	w := productWire{SingleValueProductArgument: svpToWire(p.SingleValueProductArgument())}
	if p.HasHadamard() {
		cb := EncodeHex(p.Cb().Value())
		h := hadamardToWire(p.HadamardArgument())
		w.Cb, w.HadamardArgument = &cb, &h
	}
	return w
}

func multiExpToWire(x *zkshuffle.MultiExponentiationArgument) multiExpWire {
	return multiExpWire{
		CA0: EncodeHex(x.CA0().Value()),
		CB:  gqHexes(x.CB()),
		E:   ciphertextsToWire(x.E()),
		A:   zqHexes(x.A()),
		R:   EncodeHex(x.R().Value()),
		B:   EncodeHex(x.B().Value()),
		S:   EncodeHex(x.S().Value()),
		Tau: EncodeHex(x.Tau().Value()),
	}
}

func shuffleToWire(s *zkshuffle.ShuffleArgument) shuffleWire {
	return shuffleWire{
		CA:                          gqHexes(s.CA()),
		CB:                          gqHexes(s.CB()),
		ProductArgument:             productToWire(s.ProductArgument()),
		MultiExponentiationArgument: multiExpToWire(s.MultiExponentiationArgument()),
	}
}

func verifiableShuffleToWire(v *zkshuffle.VerifiableShuffle) verifiableShuffleWire {
	w := verifiableShuffleWire{ShuffledCiphertexts: ciphertextsToWire(v.ShuffledCiphertexts())}
	if arg := v.ShuffleArgument(); arg != nil {
		s := shuffleToWire(arg)
		w.ShuffleArgument = &s
	}
	return w
}

func optionalShuffleToWire(v *zkshuffle.VerifiableShuffle) *verifiableShuffleWire {
	if v == nil {
		return nil
	}
	w := verifiableShuffleToWire(v)
	return &w
}

func proofToWire(p *zkdec.DecryptionProof) proofWire {
	return proofWire{E: EncodeHex(p.E().Value()), Z: zqHexes(p.Z())}
}

func proofsToWire(v *zkdec.ProofVector) []proofWire {
	out := make([]proofWire, v.Len())
	for i := range out {
		out[i] = proofToWire(v.At(i))
	}
	return out
}

func verifiableDecryptionsToWire(v *zkdec.VerifiableDecryptions) verifiableDecryptionsWire {
	return verifiableDecryptionsWire{
		Ciphertexts:      ciphertextsToWire(v.Ciphertexts()),
		DecryptionProofs: proofsToWire(v.DecryptionProofs()),
	}
}

func verifiablePlaintextDecryptionToWire(v *zkdec.VerifiablePlaintextDecryption) verifiablePlaintextDecryptionWire {
	votes := make([]messageWire, v.DecryptedVotes().Len())
	for i := range votes {
		votes[i] = messageToWire(v.DecryptedVotes().At(i))
	}
	return verifiablePlaintextDecryptionWire{
		DecryptedVotes:   votes,
		DecryptionProofs: proofsToWire(v.DecryptionProofs()),
	}
}

func signatureToWire(sig *payload.Signature) *signatureWire {
	if sig == nil {
		return nil
	}
	w := &signatureWire{SignatureContents: sig.Contents, CertificateChain: sig.CertificateChain}
	if w.SignatureContents == nil {
		w.SignatureContents = []byte{}
	}
	if w.CertificateChain == nil {
		w.CertificateChain = [][]byte{}
	}
	return w
}
