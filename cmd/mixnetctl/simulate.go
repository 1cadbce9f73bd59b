package main

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	"github.com/mr-shifu/mixnet-lib/pkg/codec"
	"github.com/mr-shifu/mixnet-lib/pkg/common/statestore"
	"github.com/mr-shifu/mixnet-lib/pkg/common/verifier"
	"github.com/mr-shifu/mixnet-lib/pkg/config"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/pipeline"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
	"github.com/mr-shifu/mixnet-lib/pkg/signing"
	pebblestore "github.com/mr-shifu/mixnet-lib/pkg/statestore"
	"github.com/mr-shifu/mixnet-lib/pkg/vault"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

// Safe prime 2039 = 2*1019 + 1 with generator 4.
const (
	defaultP = "0x7F7"
	defaultQ = "0x3FB"
	defaultG = "0x4"
)

type simulateParams struct {
	ConfigPath string
	Boxes      int
	P, Q, G    string
	Logger     zerolog.Logger
	Progress   bool
}

func simulateGroup(params simulateParams) (*group.GqGroup, error) {
	values := make([]*big.Int, 0, 3)
	for _, h := range []string{params.P, params.Q, params.G} {
		v, err := codec.DecodeHex(h)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return group.NewGqGroup(values[0], values[1], values[2])
}

func openStore(cfg config.StoreConfig) (statestore.Store, func() error, error) {
	if cfg.InMemory {
		return pebblestore.NewInMemoryStore(), func() error { return nil }, nil
	}
	store, err := pebblestore.OpenPebbleStore(cfg.Path, &pebble.Options{})
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

func simulate(ctx context.Context, w io.Writer, params simulateParams) (err error) {
	if params.Boxes < 1 {
		return errors.Errorf("simulate needs at least one ballot box, got %d", params.Boxes)
	}
	cfg := config.Default()
	if params.ConfigPath != "" {
		if cfg, err = config.Load(params.ConfigPath); err != nil {
			return err
		}
	}
	gq, err := simulateGroup(params)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeStore(); err == nil {
			err = cerr
		}
	}()

	chain, err := pipeline.NewLocalChain(gq, cfg.Pipeline.NodeCount, signing.NewKeyManager(vault.NewInMemoryVault()), nil)
	if err != nil {
		return err
	}
	orchestrator, err := pipeline.NewOrchestrator(pipeline.OrchestratorParams{
		Nodes:    chain.Nodes,
		Store:    store,
		States:   pebblestore.NewMixnetStateManager(store),
		Verifier: chain.Trust,
		Proofs:   verifier.Structural{},
		Config:   cfg.Pipeline,
		Logger:   params.Logger,
	})
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if params.Progress {
		bar = progressbar.Default(int64(params.Boxes))
	}
	ids := make([]string, params.Boxes)
	votes := make(map[string]*group.GqElement, params.Boxes)
	for i := range ids {
		vote, err := voteFor(gq, i)
		if err != nil {
			return err
		}
		ballot, err := chain.Ballot(vote)
		if err != nil {
			return err
		}
		details, err := state.NewBallotBoxDetails(uuid.NewString(), uuid.NewString())
		if err != nil {
			return err
		}
		if _, err := orchestrator.Submit(ctx, details, ballot); err != nil {
			return err
		}
		ids[i] = details.BallotBoxID()
		votes[ids[i]] = vote
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	results, err := orchestrator.ProcessAll(ctx, ids)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	failures := 0
	for _, r := range results {
		if err := checkResult(r.State, votes[r.BallotBoxID]); err != nil {
			failures++
			color.Fprintf(w, "<error>ERROR</>\t%s\t%s\n", r.BallotBoxID, err)
			continue
		}
		color.Fprintf(w, "<suc>OK</>\t%s\t%s\n", r.BallotBoxID, r.State.MixDecStatus())
	}
	if failures > 0 {
		return errors.Errorf("%d of %d ballot boxes failed", failures, len(results))
	}
	return nil
}

// voteFor returns g^(i+1), a distinct vote per ballot box.
func voteFor(gq *group.GqGroup, i int) (*group.GqElement, error) {
	exp, err := group.NewZqElement(new(big.Int).Mod(big.NewInt(int64(i+1)), gq.Q()), group.ZqGroupSameOrderAs(gq))
	if err != nil {
		return nil, err
	}
	return gq.Generator().Exponentiate(exp)
}

func checkResult(s *state.MixnetState, vote *group.GqElement) error {
	if msg, failed := s.MixnetError(); failed {
		return errors.New(msg)
	}
	final, ok := payload.As[*payload.FinalPayload](s.Payload())
	if !ok {
		return errors.Errorf("ballot box ended with a %s payload", s.Payload().Kind())
	}
	decrypted := final.Payload().VerifiablePlaintextDecryption().DecryptedVotes()
	if decrypted.Len() != 1 || !decrypted.At(0).At(0).Equal(vote) {
		return errors.New("decrypted vote does not match the ballot")
	}
	return nil
}
