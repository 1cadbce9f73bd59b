package codec

import (
	"math/big"
	"strings"
	"testing"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
	zkshuffle "github.com/mr-shifu/mixnet-lib/core/zk/shuffle"
	"github.com/mr-shifu/mixnet-lib/lib/test"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "0x4", EncodeHex(big.NewInt(4)))
	assert.Equal(t, "0x4A", EncodeHex(big.NewInt(74)))
	assert.Equal(t, "0x0", EncodeHex(big.NewInt(0)))

	v, err := DecodeHex("0x4a")
	require.NoError(t, err)
	assert.Equal(t, int64(74), v.Int64())

	for _, s := range []string{"4", "0x", "0X4", "0x-4", "0x+4", "0x4g", " 0x4", "0x_4"} {
		_, err := DecodeHex(s)
		assert.ErrorIs(t, err, ErrMalformedHex, s)
	}
}

func TestGqElementInLargerGroup(t *testing.T) {
	f := test.NewFixture(t, 23, 11, 2)
	data, err := EncodePublicKey(f.PublicKey(4))
	require.NoError(t, err)
	assert.Equal(t, `["0x4"]`, string(data))

	pk, err := DecodePublicKey(NewGroupContext(f.Gq), data)
	require.NoError(t, err)
	assert.True(t, pk.Equal(f.PublicKey(4)))
}

func TestGroupAndCiphertext(t *testing.T) {
	f := test.Small(t)

	data, err := EncodeGqGroup(f.Gq)
	require.NoError(t, err)
	assert.Equal(t, test.EncryptionGroupJSON, string(data))
	gq, err := DecodeGqGroup(data)
	require.NoError(t, err)
	assert.True(t, gq.Equal(f.Gq))

	data, err = EncodeCiphertext(f.Ciphertext(4, 5, 9))
	require.NoError(t, err)
	assert.Equal(t, test.CiphertextJSON, string(data))
	c, err := DecodeCiphertext(NewGroupContext(f.Gq), data)
	require.NoError(t, err)
	assert.True(t, c.Equal(f.Ciphertext(4, 5, 9)))
}

func TestRepeatedCiphertexts(t *testing.T) {
	f := test.Small(t)
	ctx := NewGroupContext(f.Gq)
	for _, n := range []int{1, 2, 10} {
		cs := f.RepeatedCiphertexts(n)
		data, err := EncodeCiphertexts(cs)
		require.NoError(t, err)
		assert.Equal(t, "["+strings.Repeat(test.CiphertextJSON+",", n-1)+test.CiphertextJSON+"]", string(data))

		decoded, err := DecodeCiphertexts(ctx, data)
		require.NoError(t, err)
		assert.True(t, decoded.Equal(cs))
	}
}

func TestShuffleArgumentRoundTrip(t *testing.T) {
	f := test.Small(t)
	ctx := NewGroupContext(f.Gq)

	tests := []struct {
		name     string
		argument *zkshuffle.ShuffleArgument
		json     string
	}{
		{"m=2", f.ShuffleArgument(), test.ShuffleArgumentJSON},
		{"m=1", f.SimplestShuffleArgument(), test.SimplestShuffleArgumentJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeShuffleArgument(tt.argument)
			require.NoError(t, err)
			assert.Equal(t, tt.json, string(data))

			decoded, err := DecodeShuffleArgument(ctx, []byte(tt.json))
			require.NoError(t, err)
			assert.True(t, decoded.Equal(tt.argument))
		})
	}
}

func TestSubArguments(t *testing.T) {
	f := test.Small(t)
	ctx := NewGroupContext(f.Gq)
	arg := f.ShuffleArgument()

	data, err := EncodeProductArgument(arg.ProductArgument())
	require.NoError(t, err)
	product, err := DecodeProductArgument(ctx, data)
	require.NoError(t, err)
	assert.True(t, product.Equal(arg.ProductArgument()))

	data, err = EncodeHadamardArgument(arg.ProductArgument().HadamardArgument())
	require.NoError(t, err)
	hadamard, err := DecodeHadamardArgument(ctx, data)
	require.NoError(t, err)
	assert.True(t, hadamard.Equal(arg.ProductArgument().HadamardArgument()))

	data, err = EncodeZeroArgument(hadamard.ZeroArgument())
	require.NoError(t, err)
	zero, err := DecodeZeroArgument(ctx, data)
	require.NoError(t, err)
	assert.True(t, zero.Equal(hadamard.ZeroArgument()))

	data, err = EncodeSingleValueProductArgument(product.SingleValueProductArgument())
	require.NoError(t, err)
	svp, err := DecodeSingleValueProductArgument(ctx, data)
	require.NoError(t, err)
	assert.True(t, svp.Equal(product.SingleValueProductArgument()))

	data, err = EncodeMultiExponentiationArgument(arg.MultiExponentiationArgument())
	require.NoError(t, err)
	multiExp, err := DecodeMultiExponentiationArgument(ctx, data)
	require.NoError(t, err)
	assert.True(t, multiExp.Equal(arg.MultiExponentiationArgument()))
}

func TestDecryptionValues(t *testing.T) {
	f := test.Small(t)
	ctx := NewGroupContext(f.Gq)

	data, err := EncodeDecryptionProof(f.Proof(2, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, `{"e":"0x2","z":["0x1","0x3"]}`, string(data))
	proof, err := DecodeDecryptionProof(ctx, data)
	require.NoError(t, err)
	assert.True(t, proof.Equal(f.Proof(2, 1, 3)))

	data, err = EncodeMessage(f.Message(4, 5))
	require.NoError(t, err)
	assert.Equal(t, `{"message":["0x4","0x5"]}`, string(data))

	data, err = EncodePrivateKey(f.PrivateKey(1, 3))
	require.NoError(t, err)
	sk, err := DecodePrivateKey(ctx, data)
	require.NoError(t, err)
	assert.True(t, sk.Equal(f.PrivateKey(1, 3)))

	vd := f.VerifiableDecryptions(2)
	data, err = EncodeVerifiableDecryptions(vd)
	require.NoError(t, err)
	assert.Equal(t, `{"ciphertexts":[`+test.CiphertextJSON+`,`+test.CiphertextJSON+`],`+
		`"decryptionProofs":[{"e":"0x2","z":["0x1","0x3"]},{"e":"0x2","z":["0x1","0x3"]}]}`, string(data))
	decoded, err := DecodeVerifiableDecryptions(ctx, data)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(vd))

	vpd := f.VerifiablePlaintextDecryption(2)
	data, err = EncodeVerifiablePlaintextDecryption(vpd)
	require.NoError(t, err)
	plain, err := DecodeVerifiablePlaintextDecryption(ctx, data)
	require.NoError(t, err)
	assert.True(t, plain.Equal(vpd))
}

func TestPayloadRoundTrip(t *testing.T) {
	f := test.Small(t)

	tests := []struct {
		name    string
		payload payload.Payload
		kind    payload.Kind
	}{
		{"initial", f.InitialPayload(3), payload.KindInitial},
		{"shuffle", f.ShufflePayload(true), payload.KindShuffle},
		{"shuffle without verifiable shuffle", f.ShufflePayload(false), payload.KindShuffle},
		{"final", f.FinalPayload(true), payload.KindFinal},
		{"final without verifiable shuffle", f.FinalPayload(false), payload.KindFinal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, sig := range []*payload.Signature{nil, test.Signature()} {
				signed := payload.WithSignature(tt.payload, sig)
				data, err := EncodePayload(signed)
				require.NoError(t, err)

				kind, err := SniffPayloadKind(data)
				require.NoError(t, err)
				assert.Equal(t, tt.kind, kind)

				decoded, err := DecodePayload(data)
				require.NoError(t, err)
				assert.True(t, decoded.Equal(signed))

				again, err := EncodePayload(decoded)
				require.NoError(t, err)
				assert.Equal(t, string(data), string(again))
			}
		})
	}
}

func TestInitialPayloadJSON(t *testing.T) {
	f := test.Small(t)
	unsigned := `{"encryptionGroup":` + test.EncryptionGroupJSON +
		`,"ciphertexts":[` + test.CiphertextJSON + `],"electionPublicKey":["0x4","0x9"]`

	data, err := EncodeUnsignedPayload(f.InitialPayload(1))
	require.NoError(t, err)
	assert.Equal(t, unsigned+`}`, string(data))

	data, err = EncodePayload(payload.WithSignature[payload.Payload](f.InitialPayload(1), test.Signature()))
	require.NoError(t, err)
	assert.Equal(t, unsigned+`,"signature":{"signatureContents":"3q2+7w==",`+
		`"certificateChain":["bm9kZS1jZXJ0aWZpY2F0ZQ=="]}}`, string(data))

	signed, err := DecodePayload([]byte(unsigned + `,"signature":null}`))
	require.NoError(t, err)
	assert.False(t, signed.IsSigned())
}

func TestShufflePayloadOmitsMissingShuffle(t *testing.T) {
	f := test.Small(t)
	data, err := EncodeUnsignedPayload(f.ShufflePayload(false))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "verifiableShuffle")
	assert.Contains(t, string(data), `"nodeId":0`)
	assert.True(t, strings.HasPrefix(string(data), `{"encryptionGroup":`+test.EncryptionGroupJSON+`,"verifiableDecryptions":`))
}

func TestDecodeErrors(t *testing.T) {
	f := test.Small(t)
	ctx := NewGroupContext(f.Gq)

	_, err := DecodeCiphertext(ctx, []byte(`{"gamma":"0x4"}`))
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = DecodeCiphertext(ctx, []byte(`{"gamma":"0x4","phis":["0x5"],"extra":1}`))
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = DecodeCiphertext(ctx, []byte(`[1, 2]`))
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = DecodeCiphertext(ctx, []byte(`{"gamma":"4","phis":["0x5"]}`))
	assert.ErrorIs(t, err, ErrMalformedHex)

	_, err = DecodeCiphertext(ctx, []byte(`{"gamma":"0x2","phis":["0x5"]}`))
	assert.ErrorIs(t, err, group.ErrInvalidGroupMember)

	_, err = DecodeCiphertexts(ctx, []byte(`[{"gamma":"0x4","phis":["0x5"]},{"gamma":"0x4","phis":["0x5","0x9"]}]`))
	assert.ErrorIs(t, err, group.ErrInconsistentRecipientCount)

	svp := `{"c_d":"0x4","c_delta":"0x4","c_Delta":"0x5","a_tilde":["0x1","0x2"],` +
		`"b_tilde":["0x0","0x2"],"r_tilde":"0x0","s_tilde":"0x0"}`
	_, err = DecodeProductArgument(ctx, []byte(`{"c_b":"0x4","singleValueProductArgument":`+svp+`}`))
	assert.ErrorIs(t, err, zkshuffle.ErrIncompleteArgument)

	_, err = DecodeSingleValueProductArgument(ctx, []byte(strings.Replace(svp, `"c_Delta"`, `"C_Delta"`, 1)))
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = DecodeGqGroup([]byte(`{"p":"0xB","q":"0x5","g":"0x2"}`))
	assert.ErrorIs(t, err, group.ErrInvalidGroup)

	_, err = DecodePayload([]byte(`{"ciphertexts":[]}`))
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = DecodePayload([]byte(`not json`))
	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestDecodeWithoutGroupContextPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = DecodeCiphertext(nil, []byte(test.CiphertextJSON))
	})
	assert.Panics(t, func() {
		_, _ = DecodeCiphertexts(nil, []byte(`[]`))
	})
	assert.Panics(t, func() { NewGroupContext(nil) })
}

func TestSniffPayloadKind(t *testing.T) {
	tests := []struct {
		json string
		kind payload.Kind
	}{
		{`{"encryptionGroup":{},"verifiablePlaintextDecryption":{}}`, payload.KindFinal},
		{`{"verifiableShuffle":{},"verifiablePlaintextDecryption":{}}`, payload.KindFinal},
		{`{"verifiableDecryptions":{}}`, payload.KindShuffle},
		{`{"verifiableDecryptions":null}`, payload.KindShuffle},
		{`{"ciphertexts":[]}`, payload.KindInitial},
	}
	for _, tt := range tests {
		kind, err := SniffPayloadKind([]byte(tt.json))
		require.NoError(t, err)
		assert.Equal(t, tt.kind, kind, tt.json)
	}
}

func TestStateRoundTrip(t *testing.T) {
	f := test.Small(t)
	details, err := state.NewBallotBoxDetails(test.BallotBoxID, test.ElectionEventID)
	require.NoError(t, err)
	s, err := state.New(details, payload.Erase(payload.Unsigned(f.InitialPayload(1))))
	require.NoError(t, err)

	data, err := EncodeState(s)
	require.NoError(t, err)
	assert.Equal(t, `{"ballotBoxDetails":{"ballotBoxId":"`+test.BallotBoxID+`","electionEventId":"`+test.ElectionEventID+`"},`+
		`"nodeToVisit":0,"payload":{"encryptionGroup":`+test.EncryptionGroupJSON+`,"ciphertexts":[`+test.CiphertextJSON+`],`+
		`"electionPublicKey":["0x4","0x9"]},"retryCount":5}`, string(data))

	decoded, err := DecodeState(data)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(s))

	s.IncrementNodeToVisit()
	require.NoError(t, s.DecrementRetryCount())
	s.SetMixnetError("node 1 unreachable")
	data, err = EncodeState(s)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), `"retryCount":4,"mixnetError":"node 1 unreachable"}`))

	decoded, err = DecodeState(data)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(s))
	msg, ok := decoded.MixnetError()
	assert.True(t, ok)
	assert.Equal(t, "node 1 unreachable", msg)

	_, err = DecodeState([]byte(strings.Replace(string(data), `"retryCount":4`, `"retryCount":6`, 1)))
	assert.ErrorIs(t, err, state.ErrIllegalState)
}
