package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mr-shifu/mixnet-lib/core/hash"
	"github.com/mr-shifu/mixnet-lib/pkg/codec"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
	"github.com/mr-shifu/mixnet-lib/pkg/signing"
	"github.com/pkg/errors"
)

// document is either a MixnetState or a bare signed payload.
type document struct {
	state   *state.MixnetState
	payload *payload.Signed[payload.Payload]
}

// decodeDocument treats JSON carrying ballotBoxDetails as a state.
func decodeDocument(data []byte) (*document, error) {
	if strings.Contains(string(data), `"ballotBoxDetails"`) {
		s, err := codec.DecodeState(data)
		if err != nil {
			return nil, errors.WithMessage(err, "decode state")
		}
		return &document{state: s, payload: s.Payload()}, nil
	}
	p, err := codec.DecodePayload(data)
	if err != nil {
		return nil, errors.WithMessage(err, "decode payload")
	}
	return &document{payload: p}, nil
}

func (d *document) encode() ([]byte, error) {
	if d.state != nil {
		return codec.EncodeState(d.state)
	}
	return codec.EncodePayload(d.payload)
}

func inspect(w io.Writer, data []byte) error {
	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}
	if s := doc.state; s != nil {
		fmt.Fprintf(w, "ballot box:      %s\n", s.BallotBoxDetails())
		fmt.Fprintf(w, "status:          %s (%s)\n", s.Status(), s.MixDecStatus())
		fmt.Fprintf(w, "node to visit:   %d\n", s.NodeToVisit())
		fmt.Fprintf(w, "retry count:     %d\n", s.RetryCount())
		if msg, failed := s.MixnetError(); failed {
			color.Fprintf(w, "mixnet error:    <error>%s</>\n", msg)
		}
	}
	p := doc.payload.Payload()
	gq := p.EncryptionGroup()
	fmt.Fprintf(w, "payload:         %s\n", p.Kind())
	fmt.Fprintf(w, "group bits:      %d\n", gq.P().BitLen())
	fmt.Fprintf(w, "signed:          %t\n", doc.payload.IsSigned())
	switch x := p.(type) {
	case *payload.InitialPayload:
		fmt.Fprintf(w, "ciphertexts:     %d x %d\n", x.Ciphertexts().Len(), x.Ciphertexts().ElementSize())
		fmt.Fprintf(w, "key size:        %d\n", x.ElectionPublicKey().Size())
	case *payload.ShufflePayload:
		fmt.Fprintf(w, "node:            %d\n", x.NodeID())
		fmt.Fprintf(w, "ciphertexts:     %d\n", x.VerifiableDecryptions().Ciphertexts().Len())
		fmt.Fprintf(w, "shuffle proof:   %t\n", x.VerifiableShuffle() != nil)
	case *payload.FinalPayload:
		fmt.Fprintf(w, "votes:           %d\n", x.VerifiablePlaintextDecryption().DecryptedVotes().Len())
		fmt.Fprintf(w, "shuffle proof:   %t\n", x.VerifiableShuffle() != nil)
	}
	return nil
}

func canonicalize(w io.Writer, data []byte) error {
	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}
	out, err := doc.encode()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

// fingerprint hashes the unsigned canonical payload, so signing a payload
// does not change its fingerprint.
func fingerprint(w io.Writer, data []byte) error {
	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}
	canonical, err := codec.EncodeUnsignedPayload(doc.payload.Payload())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, hash.Fingerprint(hash.DomainPayload, canonical))
	return err
}

func verifySignature(w io.Writer, data []byte, pubkeys []string) error {
	trust := signing.NewTrustStore()
	for _, h := range pubkeys {
		raw, err := hex.DecodeString(strings.TrimPrefix(h, "0x"))
		if err != nil {
			return errors.Wrapf(err, "pubkey %q", h)
		}
		key, err := signing.PublicKeyFromBytes(raw)
		if err != nil {
			return err
		}
		trust.Add(key)
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}
	if err := trust.Verify(doc.payload); err != nil {
		return err
	}
	color.Fprintf(w, "<suc>OK</>\tsignature of %s payload verified\n", doc.payload.Kind())
	return nil
}
