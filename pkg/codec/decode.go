package codec

import (
	"encoding/json"
	"math/big"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	zkdec "github.com/mr-shifu/mixnet-lib/core/zk/decryption"
	zkshuffle "github.com/mr-shifu/mixnet-lib/core/zk/shuffle"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
)

func DecodeGqGroup(data []byte) (*group.GqGroup, error) { return decodeGroup("encryptionGroup", data) }

func DecodeCiphertext(ctx *GroupContext, data []byte) (*elgamal.Ciphertext, error) {
	ctx.established()
	return decodeCiphertext(ctx, "ciphertext", data)
}

func DecodeCiphertexts(ctx *GroupContext, data []byte) (*payload.CiphertextVector, error) {
	ctx.established()
	return decodeCiphertexts(ctx, "ciphertexts", data)
}

func DecodePublicKey(ctx *GroupContext, data []byte) (*elgamal.PublicKey, error) {
	ctx.established()
	return decodePublicKey(ctx, "publicKey", data)
}

func DecodePrivateKey(ctx *GroupContext, data []byte) (*elgamal.PrivateKey, error) {
	ctx.established()
	ss, err := decodeStrings("privateKey", data)
	if err != nil {
		return nil, err
	}
	elems, err := ctx.zqVector("privateKey", ss)
	if err != nil {
		return nil, err
	}
	sk, err := elgamal.NewPrivateKey(elems)
	if err != nil {
		return nil, at("privateKey", err)
	}
	return sk, nil
}

func DecodeMessage(ctx *GroupContext, data []byte) (*elgamal.Message, error) {
	ctx.established()
	return decodeMessage(ctx, "message", data)
}

func DecodeZeroArgument(ctx *GroupContext, data []byte) (*zkshuffle.ZeroArgument, error) {
	ctx.established()
	return decodeZero(ctx, "zeroArgument", data)
}

func DecodeHadamardArgument(ctx *GroupContext, data []byte) (*zkshuffle.HadamardArgument, error) {
	ctx.established()
	return decodeHadamard(ctx, "hadamardArgument", data)
}

func DecodeSingleValueProductArgument(ctx *GroupContext, data []byte) (*zkshuffle.SingleValueProductArgument, error) {
	ctx.established()
	return decodeSVP(ctx, "singleValueProductArgument", data)
}

func DecodeProductArgument(ctx *GroupContext, data []byte) (*zkshuffle.ProductArgument, error) {
	ctx.established()
	return decodeProduct(ctx, "productArgument", data)
}

func DecodeMultiExponentiationArgument(ctx *GroupContext, data []byte) (*zkshuffle.MultiExponentiationArgument, error) {
	ctx.established()
	return decodeMultiExp(ctx, "multiExponentiationArgument", data)
}

func DecodeShuffleArgument(ctx *GroupContext, data []byte) (*zkshuffle.ShuffleArgument, error) {
	ctx.established()
	return decodeShuffle(ctx, "shuffleArgument", data)
}

func DecodeVerifiableShuffle(ctx *GroupContext, data []byte) (*zkshuffle.VerifiableShuffle, error) {
	ctx.established()
	return decodeVerifiableShuffle(ctx, "verifiableShuffle", data)
}

func DecodeDecryptionProof(ctx *GroupContext, data []byte) (*zkdec.DecryptionProof, error) {
	ctx.established()
	return decodeProof(ctx, "decryptionProof", data)
}

func DecodeVerifiableDecryptions(ctx *GroupContext, data []byte) (*zkdec.VerifiableDecryptions, error) {
	ctx.established()
	return decodeVerifiableDecryptions(ctx, "verifiableDecryptions", data)
}

func DecodeVerifiablePlaintextDecryption(ctx *GroupContext, data []byte) (*zkdec.VerifiablePlaintextDecryption, error) {
	ctx.established()
	return decodeVerifiablePlaintextDecryption(ctx, "verifiablePlaintextDecryption", data)
}

// SniffPayloadKind classifies a payload document by the members it carries.
func SniffPayloadKind(data []byte) (payload.Kind, error) {
	o, err := decodeObject("payload", data)
	if err != nil {
		return 0, err
	}
	return sniff(o), nil
}

// DecodePayload reads the encryption group first and decodes the remaining
// members against it.
func DecodePayload(data []byte) (*payload.Signed[payload.Payload], error) {
	return decodePayload("payload", data)
}

func DecodeState(data []byte) (*state.MixnetState, error) {
	const path = "state"
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("ballotBoxDetails", "nodeToVisit", "payload", "retryCount", "mixnetError"); err != nil {
		return nil, err
	}
	do, err := o.obj("ballotBoxDetails")
	if err != nil {
		return nil, err
	}
	if err := do.only("ballotBoxId", "electionEventId"); err != nil {
		return nil, err
	}
	ballotBoxID, err := do.str("ballotBoxId")
	if err != nil {
		return nil, err
	}
	electionEventID, err := do.str("electionEventId")
	if err != nil {
		return nil, err
	}
	details, err := state.NewBallotBoxDetails(ballotBoxID, electionEventID)
	if err != nil {
		return nil, at(do.path, err)
	}
	nodeToVisit, err := o.integer("nodeToVisit")
	if err != nil {
		return nil, err
	}
	retryCount, err := o.integer("retryCount")
	if err != nil {
		return nil, err
	}
	raw, err := o.raw("payload")
	if err != nil {
		return nil, err
	}
	p, err := decodePayload(o.at("payload"), raw)
	if err != nil {
		return nil, err
	}
	var mixnetError *string
	if raw := o.optional("mixnetError"); raw != nil {
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, malformed(o.at("mixnetError"), "expected a string")
		}
		mixnetError = &msg
	}
	s, err := state.Restore(details, p, nodeToVisit, retryCount, mixnetError)
	if err != nil {
		return nil, at(path, err)
	}
	return s, nil
}

func sniff(o *object) payload.Kind {
	switch {
	case o.present("verifiablePlaintextDecryption"):
		return payload.KindFinal
	case o.present("verifiableDecryptions"):
		return payload.KindShuffle
	}
	return payload.KindInitial
}

func decodePayload(path string, data []byte) (*payload.Signed[payload.Payload], error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	raw, err := o.raw("encryptionGroup")
	if err != nil {
		return nil, err
	}
	gq, err := decodeGroup(o.at("encryptionGroup"), raw)
	if err != nil {
		return nil, err
	}
	ctx := NewGroupContext(gq)

	var p payload.Payload
	switch sniff(o) {
	case payload.KindFinal:
		p, err = decodeFinal(ctx, o)
	case payload.KindShuffle:
		p, err = decodeShufflePayload(ctx, o)
	default:
		p, err = decodeInitial(ctx, o)
	}
	if err != nil {
		return nil, err
	}
	sig, err := decodeSignature(o)
	if err != nil {
		return nil, err
	}
	return payload.WithSignature(p, sig), nil
}

func decodeInitial(ctx *GroupContext, o *object) (payload.Payload, error) {
	if err := o.only("encryptionGroup", "ciphertexts", "electionPublicKey", "signature"); err != nil {
		return nil, err
	}
	raw, err := o.raw("ciphertexts")
	if err != nil {
		return nil, err
	}
	cs, err := decodeCiphertexts(ctx, o.at("ciphertexts"), raw)
	if err != nil {
		return nil, err
	}
	pk, err := publicKeyField(ctx, o, "electionPublicKey")
	if err != nil {
		return nil, err
	}
	p, err := payload.NewInitialPayload(ctx.Gq(), cs, pk)
	if err != nil {
		return nil, at(o.path, err)
	}
	return p, nil
}

func decodeShufflePayload(ctx *GroupContext, o *object) (payload.Payload, error) {
	if err := o.only("encryptionGroup", "verifiableDecryptions", "verifiableShuffle",
		"remainingElectionPublicKey", "previousRemainingElectionPublicKey",
		"nodeElectionPublicKey", "nodeId", "signature"); err != nil {
		return nil, err
	}
	raw, err := o.raw("verifiableDecryptions")
	if err != nil {
		return nil, err
	}
	vd, err := decodeVerifiableDecryptions(ctx, o.at("verifiableDecryptions"), raw)
	if err != nil {
		return nil, err
	}
	vs, err := optionalVerifiableShuffle(ctx, o)
	if err != nil {
		return nil, err
	}
	remaining, err := publicKeyField(ctx, o, "remainingElectionPublicKey")
	if err != nil {
		return nil, err
	}
	previous, err := publicKeyField(ctx, o, "previousRemainingElectionPublicKey")
	if err != nil {
		return nil, err
	}
	node, err := publicKeyField(ctx, o, "nodeElectionPublicKey")
	if err != nil {
		return nil, err
	}
	nodeID, err := o.integer("nodeId")
	if err != nil {
		return nil, err
	}
	p, err := payload.NewShufflePayload(payload.ShufflePayloadParams{
		EncryptionGroup:                    ctx.Gq(),
		VerifiableDecryptions:              vd,
		VerifiableShuffle:                  vs,
		RemainingElectionPublicKey:         remaining,
		PreviousRemainingElectionPublicKey: previous,
		NodeElectionPublicKey:              node,
		NodeID:                             nodeID,
	})
	if err != nil {
		return nil, at(o.path, err)
	}
	return p, nil
}

func decodeFinal(ctx *GroupContext, o *object) (payload.Payload, error) {
	if err := o.only("encryptionGroup", "verifiableShuffle", "verifiablePlaintextDecryption",
		"previousRemainingElectionPublicKey", "signature"); err != nil {
		return nil, err
	}
	vs, err := optionalVerifiableShuffle(ctx, o)
	if err != nil {
		return nil, err
	}
	raw, err := o.raw("verifiablePlaintextDecryption")
	if err != nil {
		return nil, err
	}
	vpd, err := decodeVerifiablePlaintextDecryption(ctx, o.at("verifiablePlaintextDecryption"), raw)
	if err != nil {
		return nil, err
	}
	previous, err := publicKeyField(ctx, o, "previousRemainingElectionPublicKey")
	if err != nil {
		return nil, err
	}
	p, err := payload.NewFinalPayload(ctx.Gq(), vs, vpd, previous)
	if err != nil {
		return nil, at(o.path, err)
	}
	return p, nil
}

func optionalVerifiableShuffle(ctx *GroupContext, o *object) (*zkshuffle.VerifiableShuffle, error) {
	raw := o.optional("verifiableShuffle")
	if raw == nil {
		return nil, nil
	}
	return decodeVerifiableShuffle(ctx, o.at("verifiableShuffle"), raw)
}

func decodeSignature(o *object) (*payload.Signature, error) {
	raw := o.optional("signature")
	if raw == nil {
		return nil, nil
	}
	so, err := decodeObject(o.at("signature"), raw)
	if err != nil {
		return nil, err
	}
	if err := so.only("signatureContents", "certificateChain"); err != nil {
		return nil, err
	}
	contentsRaw, err := so.raw("signatureContents")
	if err != nil {
		return nil, err
	}
	var contents []byte
	if err := json.Unmarshal(contentsRaw, &contents); err != nil {
		return nil, malformed(so.at("signatureContents"), "expected base64")
	}
	chainRaw, err := so.raw("certificateChain")
	if err != nil {
		return nil, err
	}
	var chain [][]byte
	if err := json.Unmarshal(chainRaw, &chain); err != nil {
		return nil, malformed(so.at("certificateChain"), "expected an array of base64")
	}
	return &payload.Signature{Contents: contents, CertificateChain: chain}, nil
}

func decodeGroup(path string, data []byte) (*group.GqGroup, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("p", "q", "g"); err != nil {
		return nil, err
	}
	p, err := hexField(o, "p")
	if err != nil {
		return nil, err
	}
	q, err := hexField(o, "q")
	if err != nil {
		return nil, err
	}
	g, err := hexField(o, "g")
	if err != nil {
		return nil, err
	}
	gq, err := group.NewGqGroup(p, q, g)
	if err != nil {
		return nil, at(path, err)
	}
	return gq, nil
}

func decodeCiphertext(ctx *GroupContext, path string, data []byte) (*elgamal.Ciphertext, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("gamma", "phis"); err != nil {
		return nil, err
	}
	gamma, err := gqField(ctx, o, "gamma")
	if err != nil {
		return nil, err
	}
	phis, err := gqVectorField(ctx, o, "phis")
	if err != nil {
		return nil, err
	}
	c, err := elgamal.NewCiphertext(gamma, phis)
	if err != nil {
		return nil, at(path, err)
	}
	return c, nil
}

func decodeCiphertexts(ctx *GroupContext, path string, data []byte) (*payload.CiphertextVector, error) {
	return decodeVector(path, data, func(p string, raw []byte) (*elgamal.Ciphertext, error) {
		return decodeCiphertext(ctx, p, raw)
	})
}

func decodePublicKey(ctx *GroupContext, path string, data []byte) (*elgamal.PublicKey, error) {
	ss, err := decodeStrings(path, data)
	if err != nil {
		return nil, err
	}
	elems, err := ctx.gqVector(path, ss)
	if err != nil {
		return nil, err
	}
	pk, err := elgamal.NewPublicKey(elems)
	if err != nil {
		return nil, at(path, err)
	}
	return pk, nil
}

func decodeMessage(ctx *GroupContext, path string, data []byte) (*elgamal.Message, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("message"); err != nil {
		return nil, err
	}
	elems, err := gqVectorField(ctx, o, "message")
	if err != nil {
		return nil, err
	}
	m, err := elgamal.NewMessage(elems)
	if err != nil {
		return nil, at(path, err)
	}
	return m, nil
}

func decodeZero(ctx *GroupContext, path string, data []byte) (*zkshuffle.ZeroArgument, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("c_A_0", "c_B_m", "c_d", "a_prime", "b_prime", "r_prime", "s_prime", "t_prime"); err != nil {
		return nil, err
	}
	d := fields{ctx: ctx, o: o}
	z, err := zkshuffle.NewZeroArgumentBuilder().
		SetCA0(d.gq("c_A_0")).
		SetCBm(d.gq("c_B_m")).
		SetCd(d.gqs("c_d")).
		SetAPrime(d.zqs("a_prime")).
		SetBPrime(d.zqs("b_prime")).
		SetRPrime(d.zq("r_prime")).
		SetSPrime(d.zq("s_prime")).
		SetTPrime(d.zq("t_prime")).
		Build()
	return finish(path, d, z, err)
}

func decodeHadamard(ctx *GroupContext, path string, data []byte) (*zkshuffle.HadamardArgument, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("c_b", "zeroArgument"); err != nil {
		return nil, err
	}
	cb, err := gqVectorField(ctx, o, "c_b")
	if err != nil {
		return nil, err
	}
	raw, err := o.raw("zeroArgument")
	if err != nil {
		return nil, err
	}
	zero, err := decodeZero(ctx, o.at("zeroArgument"), raw)
	if err != nil {
		return nil, err
	}
	h, err := zkshuffle.NewHadamardArgumentBuilder().SetCb(cb).SetZeroArgument(zero).Build()
	if err != nil {
		return nil, at(path, err)
	}
	return h, nil
}

func decodeSVP(ctx *GroupContext, path string, data []byte) (*zkshuffle.SingleValueProductArgument, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("c_d", "c_delta", "c_Delta", "a_tilde", "b_tilde", "r_tilde", "s_tilde"); err != nil {
		return nil, err
	}
	d := fields{ctx: ctx, o: o}
	s, err := zkshuffle.NewSingleValueProductArgumentBuilder().
		SetCd(d.gq("c_d")).
		SetCLowerDelta(d.gq("c_delta")).
		SetCUpperDelta(d.gq("c_Delta")).
		SetATilde(d.zqs("a_tilde")).
		SetBTilde(d.zqs("b_tilde")).
		SetRTilde(d.zq("r_tilde")).
		SetSTilde(d.zq("s_tilde")).
		Build()
	return finish(path, d, s, err)
}

func decodeProduct(ctx *GroupContext, path string, data []byte) (*zkshuffle.ProductArgument, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("c_b", "hadamardArgument", "singleValueProductArgument"); err != nil {
		return nil, err
	}
	b := zkshuffle.NewProductArgumentBuilder()
	if o.has("c_b") {
		cb, err := gqField(ctx, o, "c_b")
		if err != nil {
			return nil, err
		}
		b.SetCb(cb)
	}
	if raw := o.optional("hadamardArgument"); raw != nil {
		h, err := decodeHadamard(ctx, o.at("hadamardArgument"), raw)
		if err != nil {
			return nil, err
		}
		b.SetHadamardArgument(h)
	}
	raw, err := o.raw("singleValueProductArgument")
	if err != nil {
		return nil, err
	}
	svp, err := decodeSVP(ctx, o.at("singleValueProductArgument"), raw)
	if err != nil {
		return nil, err
	}
	p, err := b.SetSingleValueProductArgument(svp).Build()
	if err != nil {
		return nil, at(path, err)
	}
	return p, nil
}

func decodeMultiExp(ctx *GroupContext, path string, data []byte) (*zkshuffle.MultiExponentiationArgument, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("c_A_0", "c_B", "E", "a", "r", "b", "s", "tau"); err != nil {
		return nil, err
	}
	raw, err := o.raw("E")
	if err != nil {
		return nil, err
	}
	e, err := decodeCiphertexts(ctx, o.at("E"), raw)
	if err != nil {
		return nil, err
	}
	d := fields{ctx: ctx, o: o}
	x, err := zkshuffle.NewMultiExponentiationArgumentBuilder().
		SetCA0(d.gq("c_A_0")).
		SetCB(d.gqs("c_B")).
		SetE(e).
		SetA(d.zqs("a")).
		SetR(d.zq("r")).
		SetB(d.zq("b")).
		SetS(d.zq("s")).
		SetTau(d.zq("tau")).
		Build()
	return finish(path, d, x, err)
}

func decodeShuffle(ctx *GroupContext, path string, data []byte) (*zkshuffle.ShuffleArgument, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("c_A", "c_B", "productArgument", "multiExponentiationArgument"); err != nil {
		return nil, err
	}
	cA, err := gqVectorField(ctx, o, "c_A")
	if err != nil {
		return nil, err
	}
	cB, err := gqVectorField(ctx, o, "c_B")
	if err != nil {
		return nil, err
	}
	raw, err := o.raw("productArgument")
	if err != nil {
		return nil, err
	}
	product, err := decodeProduct(ctx, o.at("productArgument"), raw)
	if err != nil {
		return nil, err
	}
	raw, err = o.raw("multiExponentiationArgument")
	if err != nil {
		return nil, err
	}
	multiExp, err := decodeMultiExp(ctx, o.at("multiExponentiationArgument"), raw)
	if err != nil {
		return nil, err
	}
	s, err := zkshuffle.NewShuffleArgumentBuilder().
		SetCA(cA).
		SetCB(cB).
		SetProductArgument(product).
		SetMultiExponentiationArgument(multiExp).
		Build()
	if err != nil {
		return nil, at(path, err)
	}
	return s, nil
}

func decodeVerifiableShuffle(ctx *GroupContext, path string, data []byte) (*zkshuffle.VerifiableShuffle, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("shuffledCiphertexts", "shuffleArgument"); err != nil {
		return nil, err
	}
	raw, err := o.raw("shuffledCiphertexts")
	if err != nil {
		return nil, err
	}
	shuffled, err := decodeCiphertexts(ctx, o.at("shuffledCiphertexts"), raw)
	if err != nil {
		return nil, err
	}
	var argument *zkshuffle.ShuffleArgument
	if raw := o.optional("shuffleArgument"); raw != nil {
		if argument, err = decodeShuffle(ctx, o.at("shuffleArgument"), raw); err != nil {
			return nil, err
		}
	}
	v, err := zkshuffle.NewVerifiableShuffle(shuffled, argument)
	if err != nil {
		return nil, at(path, err)
	}
	return v, nil
}

func decodeProof(ctx *GroupContext, path string, data []byte) (*zkdec.DecryptionProof, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("e", "z"); err != nil {
		return nil, err
	}
	e, err := zqField(ctx, o, "e")
	if err != nil {
		return nil, err
	}
	z, err := zqVectorField(ctx, o, "z")
	if err != nil {
		return nil, err
	}
	p, err := zkdec.NewDecryptionProof(e, z)
	if err != nil {
		return nil, at(path, err)
	}
	return p, nil
}

func decodeProofs(ctx *GroupContext, o *object) (*zkdec.ProofVector, error) {
	raw, err := o.raw("decryptionProofs")
	if err != nil {
		return nil, err
	}
	return decodeVector(o.at("decryptionProofs"), raw, func(p string, raw []byte) (*zkdec.DecryptionProof, error) {
		return decodeProof(ctx, p, raw)
	})
}

func decodeVerifiableDecryptions(ctx *GroupContext, path string, data []byte) (*zkdec.VerifiableDecryptions, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("ciphertexts", "decryptionProofs"); err != nil {
		return nil, err
	}
	raw, err := o.raw("ciphertexts")
	if err != nil {
		return nil, err
	}
	cs, err := decodeCiphertexts(ctx, o.at("ciphertexts"), raw)
	if err != nil {
		return nil, err
	}
	proofs, err := decodeProofs(ctx, o)
	if err != nil {
		return nil, err
	}
	v, err := zkdec.NewVerifiableDecryptions(cs, proofs)
	if err != nil {
		return nil, at(path, err)
	}
	return v, nil
}

func decodeVerifiablePlaintextDecryption(ctx *GroupContext, path string, data []byte) (*zkdec.VerifiablePlaintextDecryption, error) {
	o, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	if err := o.only("decryptedVotes", "decryptionProofs"); err != nil {
		return nil, err
	}
	raw, err := o.raw("decryptedVotes")
	if err != nil {
		return nil, err
	}
	votes, err := decodeVector(o.at("decryptedVotes"), raw, func(p string, raw []byte) (*elgamal.Message, error) {
		return decodeMessage(ctx, p, raw)
	})
	if err != nil {
		return nil, err
	}
	proofs, err := decodeProofs(ctx, o)
	if err != nil {
		return nil, err
	}
	v, err := zkdec.NewVerifiablePlaintextDecryption(votes, proofs)
	if err != nil {
		return nil, at(path, err)
	}
	return v, nil
}

// decodeVector decodes a json array element by element and collects the
// results into a group vector.
func decodeVector[E group.Element[E]](path string, data []byte, decode func(string, []byte) (E, error)) (*group.Vector[E], error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return nil, malformed(path, "expected an array")
	}
	elems := make([]E, len(items))
	for i, item := range items {
		e, err := decode(index(path, i), item)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	vec, err := group.NewVector(elems...)
	if err != nil {
		return nil, at(path, err)
	}
	return vec, nil
}

func decodeStrings(path string, data []byte) ([]string, error) {
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil || ss == nil {
		return nil, malformed(path, "expected an array of strings")
	}
	return ss, nil
}

func hexField(o *object, key string) (*big.Int, error) {
	s, err := o.str(key)
	if err != nil {
		return nil, err
	}
	v, err := DecodeHex(s)
	if err != nil {
		return nil, at(o.at(key), err)
	}
	return v, nil
}

func gqField(ctx *GroupContext, o *object, key string) (*group.GqElement, error) {
	s, err := o.str(key)
	if err != nil {
		return nil, err
	}
	return ctx.gqElement(o.at(key), s)
}

func zqField(ctx *GroupContext, o *object, key string) (*group.ZqElement, error) {
	s, err := o.str(key)
	if err != nil {
		return nil, err
	}
	return ctx.zqElement(o.at(key), s)
}

func gqVectorField(ctx *GroupContext, o *object, key string) (*elgamal.GqVector, error) {
	ss, err := o.strs(key)
	if err != nil {
		return nil, err
	}
	return ctx.gqVector(o.at(key), ss)
}

func zqVectorField(ctx *GroupContext, o *object, key string) (*elgamal.ZqVector, error) {
	ss, err := o.strs(key)
	if err != nil {
		return nil, err
	}
	return ctx.zqVector(o.at(key), ss)
}

func publicKeyField(ctx *GroupContext, o *object, key string) (*elgamal.PublicKey, error) {
	raw, err := o.raw(key)
	if err != nil {
		return nil, err
	}
	return decodePublicKey(ctx, o.at(key), raw)
}

// fields reads the flat members of an argument for a builder chain. The
// first failure is kept and the remaining reads return nil.
type fields struct {
	ctx *GroupContext
	o   *object
	err error
}

func (d *fields) gq(key string) *group.GqElement {
	if d.err != nil {
		return nil
	}
	v, err := gqField(d.ctx, d.o, key)
	d.err = err
	return v
}

func (d *fields) zq(key string) *group.ZqElement {
	if d.err != nil {
		return nil
	}
	v, err := zqField(d.ctx, d.o, key)
	d.err = err
	return v
}

func (d *fields) gqs(key string) *elgamal.GqVector {
	if d.err != nil {
		return nil
	}
	v, err := gqVectorField(d.ctx, d.o, key)
	d.err = err
	return v
}

func (d *fields) zqs(key string) *elgamal.ZqVector {
	if d.err != nil {
		return nil
	}
	v, err := zqVectorField(d.ctx, d.o, key)
	d.err = err
	return v
}

// finish prefers a read failure over the builder's own complaint about the
// field that could not be read.
func finish[T any](path string, d fields, v T, err error) (T, error) {
	if d.err != nil {
		var zero T
		return zero, d.err
	}
	if err != nil {
		var zero T
		return zero, at(path, err)
	}
	return v, nil
}
