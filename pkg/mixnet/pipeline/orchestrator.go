package pipeline

import (
	"context"
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	zkshuffle "github.com/mr-shifu/mixnet-lib/core/zk/shuffle"
	"github.com/mr-shifu/mixnet-lib/pkg/common/statestore"
	"github.com/mr-shifu/mixnet-lib/pkg/common/verifier"
	"github.com/mr-shifu/mixnet-lib/pkg/config"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
	"github.com/mr-shifu/mixnet-lib/pkg/signing"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Orchestrator drives ballot boxes through the chain of nodes, node 0 first.
// Node i must return a shuffle payload with nodeId i, except the last node,
// which returns the final payload.
type Orchestrator struct {
	nodes    []Node
	store    statestore.Store
	states   statestore.Manager
	verifier signing.Verifier
	proofs   verifier.ProofVerifier
	cfg      config.PipelineConfig
	log      zerolog.Logger
}

type OrchestratorParams struct {
	Nodes    []Node
	Store    statestore.Store
	States   statestore.Manager
	Verifier signing.Verifier

	// Proofs is optional. Without it node output is checked for signature
	// and structure only.
	Proofs verifier.ProofVerifier

	Config config.PipelineConfig
	Logger zerolog.Logger
}

func NewOrchestrator(params OrchestratorParams) (*Orchestrator, error) {
	if len(params.Nodes) == 0 {
		return nil, errors.New("pipeline: no nodes")
	}
	for i, n := range params.Nodes {
		if n.ID() != i {
			return nil, errors.Errorf("pipeline: node at position %d has id %d", i, n.ID())
		}
	}
	cfg := params.Config
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Orchestrator{
		nodes:    params.Nodes,
		store:    params.Store,
		states:   params.States,
		verifier: params.Verifier,
		proofs:   params.Proofs,
		cfg:      cfg,
		log:      params.Logger,
	}, nil
}

// Submit registers a ballot box with its signed initial payload.
func (o *Orchestrator) Submit(ctx context.Context, details state.BallotBoxDetails, initial *payload.Signed[*payload.InitialPayload]) (*state.MixnetState, error) {
	if err := VerifyPayload(o.verifier, initial); err != nil {
		return nil, errors.WithMessage(err, "initial payload")
	}
	return o.states.NewState(ctx, details, payload.Erase(initial))
}

// Result is the outcome of one ballot box in ProcessAll.
type Result struct {
	BallotBoxID string
	State       *state.MixnetState
}

// ProcessAll mixes the given ballot boxes concurrently. A failing ballot box
// is recorded in its state; only store and context errors abort the run.
func (o *Orchestrator) ProcessAll(ctx context.Context, ballotBoxIDs []string) ([]Result, error) {
	log := o.log.With().Str("runId", xid.New().String()).Logger()
	log.Info().Int("ballotBoxes", len(ballotBoxIDs)).Int("nodes", len(o.nodes)).Msg("mixing run started")

	results := make([]Result, len(ballotBoxIDs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.Concurrency)
	for i, id := range ballotBoxIDs {
		i, id := i, id
		g.Go(func() error {
			s, err := o.process(ctx, log, id)
			if err != nil {
				return err
			}
			results[i] = Result{BallotBoxID: id, State: s}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("mixing run aborted")
		return nil, err
	}
	log.Info().Msg("mixing run finished")
	return results, nil
}

// Process mixes one ballot box until it completes or fails.
func (o *Orchestrator) Process(ctx context.Context, ballotBoxID string) (*state.MixnetState, error) {
	return o.process(ctx, o.log, ballotBoxID)
}

func (o *Orchestrator) process(ctx context.Context, log zerolog.Logger, ballotBoxID string) (*state.MixnetState, error) {
	log = log.With().Str("ballotBoxId", ballotBoxID).Logger()
	s, err := o.store.Load(ctx, ballotBoxID)
	if err != nil {
		return nil, err
	}
	for s.Status() == state.StatusPending {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.NodeToVisit() >= len(o.nodes) {
			s.SetMixnetError(fmt.Sprintf("no node %d in a chain of %d", s.NodeToVisit(), len(o.nodes)))
			break
		}
		hopLog := log.With().Int("nodeToVisit", s.NodeToVisit()).Int("retryCount", s.RetryCount()).Logger()

		out, err := o.hop(ctx, s)
		switch {
		case err == nil:
			if err := s.SetPayload(out); err != nil {
				return nil, err
			}
			s.IncrementNodeToVisit()
			hopLog.Debug().Str("payload", out.Kind().String()).Msg("hop completed")
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case errors.Is(err, ErrValidation):
			hopLog.Warn().Err(err).Msg("node rejected the state")
			s.SetMixnetError(err.Error())
		case s.RetryCount() == 0:
			hopLog.Warn().Err(err).Msg("retries exhausted")
			s.SetMixnetError(err.Error())
		default:
			hopLog.Warn().Err(err).Msg("hop failed, retrying")
			if err := s.DecrementRetryCount(); err != nil {
				return nil, err
			}
		}
		if err := o.store.Save(ctx, s); err != nil {
			return nil, err
		}
	}
	if msg, failed := s.MixnetError(); failed {
		log.Error().Str("mixnetError", msg).Msg("ballot box failed")
	} else {
		log.Info().Msg("ballot box mixed")
	}
	return s, nil
}

func (o *Orchestrator) hop(ctx context.Context, s *state.MixnetState) (*payload.Signed[payload.Payload], error) {
	if o.cfg.HopTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.HopTimeout)
		defer cancel()
	}
	node := o.nodes[s.NodeToVisit()]
	out, err := node.Mix(ctx, s.Clone())
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return nil, err
		}
		return nil, errors.WithMessagef(ErrHopFailed, "node %d: %v", node.ID(), err)
	}
	if err := o.checkOutput(s, out); err != nil {
		return nil, errors.WithMessagef(ErrHopFailed, "node %d: %v", node.ID(), err)
	}
	return out, nil
}

// checkOutput verifies what node nodeToVisit returned for s.
func (o *Orchestrator) checkOutput(s *state.MixnetState, out *payload.Signed[payload.Payload]) error {
	if out == nil {
		return errors.New("no payload")
	}
	if err := VerifyPayload(o.verifier, out); err != nil {
		return err
	}
	in := s.Payload().Payload()
	gq := in.EncryptionGroup()
	if !out.Payload().EncryptionGroup().Equal(gq) {
		return errors.New("payload changed the encryption group")
	}
	ciphertexts, remaining, err := hopInput(in)
	if err != nil {
		return err
	}

	last := s.NodeToVisit() == len(o.nodes)-1
	switch p := out.Payload().(type) {
	case *payload.ShufflePayload:
		if last {
			return errors.New("last node returned a shuffle payload")
		}
		if p.NodeID() != s.NodeToVisit() {
			return errors.Errorf("payload claims node %d", p.NodeID())
		}
		if !p.PreviousRemainingElectionPublicKey().Equal(remaining) {
			return errors.New("previousRemainingElectionPublicKey does not match the input")
		}
		return o.verifyProofs(gq, remaining, ciphertexts, p.VerifiableShuffle(), func(decrypted *payload.CiphertextVector) error {
			return o.proofs.VerifyDecryptions(gq, remaining, decrypted, p.VerifiableDecryptions())
		})
	case *payload.FinalPayload:
		if !last {
			return errors.New("final payload before the last node")
		}
		if !p.PreviousRemainingElectionPublicKey().Equal(remaining) {
			return errors.New("previousRemainingElectionPublicKey does not match the input")
		}
		return o.verifyProofs(gq, remaining, ciphertexts, p.VerifiableShuffle(), func(decrypted *payload.CiphertextVector) error {
			return o.proofs.VerifyPlaintextDecryption(gq, remaining, decrypted, p.VerifiablePlaintextDecryption())
		})
	}
	return errors.Errorf("unexpected %s payload", out.Kind())
}

// verifyProofs runs the optional proof verifier. Decryptions apply to the
// shuffled ciphertexts when the node shuffled.
func (o *Orchestrator) verifyProofs(gq *group.GqGroup, pk *elgamal.PublicKey, in *payload.CiphertextVector,
	vs *zkshuffle.VerifiableShuffle, verifyDecryptions func(*payload.CiphertextVector) error) error {
	if o.proofs == nil {
		return nil
	}
	decrypted := in
	if vs != nil {
		if err := o.proofs.VerifyShuffle(gq, pk, in, vs); err != nil {
			return err
		}
		decrypted = vs.ShuffledCiphertexts()
	}
	return verifyDecryptions(decrypted)
}
