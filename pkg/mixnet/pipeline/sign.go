package pipeline

import (
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/signing"
)

// SignPayload signs the canonical encoding of p and attaches the signature.
func SignPayload[P payload.Payload](signer signing.Signer, p P) (*payload.Signed[P], error) {
	sig, err := signer.Sign(p)
	if err != nil {
		return nil, err
	}
	return payload.WithSignature(p, sig), nil
}

func VerifyPayload[P payload.Payload](verifier signing.Verifier, s *payload.Signed[P]) error {
	return verifier.Verify(payload.Erase(s))
}
