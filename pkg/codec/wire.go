package codec

import "encoding/json"

// Wire shapes. Field order is the canonical member order.

type groupWire struct {
	P string `json:"p"`
	Q string `json:"q"`
	G string `json:"g"`
}

type ciphertextWire struct {
	Gamma string   `json:"gamma"`
	Phis  []string `json:"phis"`
}

type messageWire struct {
	Message []string `json:"message"`
}

type zeroWire struct {
	CA0    string   `json:"c_A_0"`
	CBm    string   `json:"c_B_m"`
	Cd     []string `json:"c_d"`
	APrime []string `json:"a_prime"`
	BPrime []string `json:"b_prime"`
	RPrime string   `json:"r_prime"`
	SPrime string   `json:"s_prime"`
	TPrime string   `json:"t_prime"`
}

type hadamardWire struct {
	Cb           []string `json:"c_b"`
	ZeroArgument zeroWire `json:"zeroArgument"`
}

type svpWire struct {
	Cd          string   `json:"c_d"`
	CLowerDelta string   `json:"c_delta"`
	CUpperDelta string   `json:"c_Delta"`
	ATilde      []string `json:"a_tilde"`
	BTilde      []string `json:"b_tilde"`
	RTilde      string   `json:"r_tilde"`
	STilde      string   `json:"s_tilde"`
}

type productWire struct {
	Cb                         *string       `json:"c_b,omitempty"`
	HadamardArgument           *hadamardWire `json:"hadamardArgument,omitempty"`
	SingleValueProductArgument svpWire       `json:"singleValueProductArgument"`
}

type multiExpWire struct {
	CA0 string           `json:"c_A_0"`
	CB  []string         `json:"c_B"`
	E   []ciphertextWire `json:"E"`
	A   []string         `json:"a"`
	R   string           `json:"r"`
	B   string           `json:"b"`
	S   string           `json:"s"`
	Tau string           `json:"tau"`
}

type shuffleWire struct {
	CA                          []string     `json:"c_A"`
	CB                          []string     `json:"c_B"`
	ProductArgument             productWire  `json:"productArgument"`
	MultiExponentiationArgument multiExpWire `json:"multiExponentiationArgument"`
}

type verifiableShuffleWire struct {
	ShuffledCiphertexts []ciphertextWire `json:"shuffledCiphertexts"`
	ShuffleArgument     *shuffleWire     `json:"shuffleArgument,omitempty"`
}

type proofWire struct {
	E string   `json:"e"`
	Z []string `json:"z"`
}

type verifiableDecryptionsWire struct {
	Ciphertexts      []ciphertextWire `json:"ciphertexts"`
	DecryptionProofs []proofWire      `json:"decryptionProofs"`
}

type verifiablePlaintextDecryptionWire struct {
	DecryptedVotes   []messageWire `json:"decryptedVotes"`
	DecryptionProofs []proofWire   `json:"decryptionProofs"`
}

// signatureWire byte slices render as standard base64.
type signatureWire struct {
	SignatureContents []byte   `json:"signatureContents"`
	CertificateChain  [][]byte `json:"certificateChain"`
}

type initialPayloadWire struct {
	EncryptionGroup   groupWire        `json:"encryptionGroup"`
	Ciphertexts       []ciphertextWire `json:"ciphertexts"`
	ElectionPublicKey []string         `json:"electionPublicKey"`
	Signature         *signatureWire   `json:"signature,omitempty"`
}

type shufflePayloadWire struct {
	EncryptionGroup                    groupWire                 `json:"encryptionGroup"`
	VerifiableDecryptions              verifiableDecryptionsWire `json:"verifiableDecryptions"`
	VerifiableShuffle                  *verifiableShuffleWire    `json:"verifiableShuffle,omitempty"`
	RemainingElectionPublicKey         []string                  `json:"remainingElectionPublicKey"`
	PreviousRemainingElectionPublicKey []string                  `json:"previousRemainingElectionPublicKey"`
	NodeElectionPublicKey              []string                  `json:"nodeElectionPublicKey"`
	NodeID                             int                       `json:"nodeId"`
	Signature                          *signatureWire            `json:"signature,omitempty"`
}

type finalPayloadWire struct {
	EncryptionGroup                    groupWire                         `json:"encryptionGroup"`
	VerifiableShuffle                  *verifiableShuffleWire            `json:"verifiableShuffle,omitempty"`
	VerifiablePlaintextDecryption      verifiablePlaintextDecryptionWire `json:"verifiablePlaintextDecryption"`
	PreviousRemainingElectionPublicKey []string                          `json:"previousRemainingElectionPublicKey"`
	Signature                          *signatureWire                    `json:"signature,omitempty"`
}

type ballotBoxDetailsWire struct {
	BallotBoxID     string `json:"ballotBoxId"`
	ElectionEventID string `json:"electionEventId"`
}

type stateWire struct {
	BallotBoxDetails ballotBoxDetailsWire `json:"ballotBoxDetails"`
	NodeToVisit      int                  `json:"nodeToVisit"`
	Payload          json.RawMessage      `json:"payload"`
	RetryCount       int                  `json:"retryCount"`
	MixnetError      *string              `json:"mixnetError,omitempty"`
}
