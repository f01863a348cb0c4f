// Package bidding implements the confirm-then-write bid flow. A proposal is
// created only after the rule engine accepts the amount against a fresh
// snapshot read; confirmation then issues the paired current-bid and
// history writes and records the item on the bidder's watchlist.
package bidding

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"silent-auction/internal/auctionerrors"
	ident "silent-auction/internal/identity"
	model "silent-auction/internal/models"
	"silent-auction/internal/rules"
	"silent-auction/internal/store"
	"silent-auction/internal/toast"
	"silent-auction/internal/watchlist"
	"silent-auction/utils"
)

// ProposalState tracks a proposal through the two-step commit.
type ProposalState string

const (
	StateProposed   ProposalState = "proposed"
	StateCommitting ProposalState = "committing"
	StateAccepted   ProposalState = "accepted"
	StateFailed     ProposalState = "failed"
)

// Proposal is an accepted-but-unconfirmed bid awaiting the user's explicit
// confirmation.
type Proposal struct {
	ProposalID string           `json:"proposal_id"`
	Item       model.Item       `json:"item"`
	Bidder     model.Identity   `json:"-"`
	Evaluation rules.Evaluation `json:"evaluation"`
	State      ProposalState    `json:"state"`
	CreatedAt  time.Time        `json:"created_at"`
	FailReason string           `json:"fail_reason,omitempty"`
}

// BiddingService owns the proposal registry and the paired writes.
type BiddingService struct {
	st       store.SnapshotStore
	identity *ident.Cache
	watch    *watchlist.Set
	notices  *toast.Queue
	now      func() time.Time

	mu        sync.Mutex
	proposals map[string]*Proposal
}

// NewBiddingService creates a bidding service over the given collaborators.
func NewBiddingService(st store.SnapshotStore, identity *ident.Cache, watch *watchlist.Set, notices *toast.Queue) *BiddingService {
	return &BiddingService{
		st:        st,
		identity:  identity,
		watch:     watch,
		notices:   notices,
		now:       time.Now,
		proposals: make(map[string]*Proposal),
	}
}

// Propose validates a bid amount for an item and, if the rule engine
// accepts, registers a proposal for confirmation. No write is issued here.
func (s *BiddingService) Propose(itemID string, amount int64) (Proposal, error) {
	bidder, err := s.identity.Current()
	if err != nil {
		return Proposal{}, fmt.Errorf("propose bid: %w", err)
	}

	item, err := s.st.GetItem(itemID)
	if err != nil {
		return Proposal{}, fmt.Errorf("propose bid: %w", err)
	}

	current, err := s.currentBid(itemID)
	if err != nil {
		return Proposal{}, fmt.Errorf("propose bid: %w", err)
	}

	eval, err := rules.Evaluate(item, current, amount)
	if err != nil {
		return Proposal{}, fmt.Errorf("propose bid for item %s: %w", itemID, err)
	}

	p := &Proposal{
		ProposalID: utils.GenerateID(),
		Item:       item,
		Bidder:     bidder,
		Evaluation: eval,
		State:      StateProposed,
		CreatedAt:  s.now(),
	}

	s.mu.Lock()
	s.proposals[p.ProposalID] = p
	s.mu.Unlock()

	return *p, nil
}

// Confirm commits a proposed bid: the conditional current-bid overwrite and
// the history append are issued together, the item joins the watchlist, and
// bid analytics are tracked. Only a proposal in the Proposed state can be
// confirmed.
func (s *BiddingService) Confirm(proposalID string) (Proposal, error) {
	s.mu.Lock()
	p, ok := s.proposals[proposalID]
	if !ok {
		s.mu.Unlock()
		return Proposal{}, fmt.Errorf("confirm bid: %w", auctionerrors.ErrProposalNotFound)
	}
	if p.State != StateProposed {
		state := p.State
		s.mu.Unlock()
		return Proposal{}, fmt.Errorf("confirm bid: %w - proposal is %s", auctionerrors.ErrProposalNotPending, state)
	}
	p.State = StateCommitting
	s.mu.Unlock()

	rec, entry := rules.ProposedWrites(p.Item, p.Bidder, p.Evaluation.Amount, s.now())

	if err := s.st.SetCurrentBid(rec); err != nil {
		s.fail(p, err)
		s.notices.Push("Failed to submit bid. Please try again.", toast.KindError, 0)
		return *p, fmt.Errorf("confirm bid for item %s: %w", p.Item.ItemID, err)
	}

	if err := s.st.AppendHistory(p.Item.ItemID, entry); err != nil {
		// The current-bid write already landed, so the store now diverges
		// from its history. Surface loudly; the integrity check below will
		// see the same gap.
		utils.Error("bid history append failed after current-bid write", map[string]any{
			"item_id": p.Item.ItemID,
			"amount":  p.Evaluation.Amount,
			"error":   err.Error(),
		})
		s.fail(p, err)
		s.notices.Push("Failed to submit bid. Please try again.", toast.KindError, 0)
		return *p, fmt.Errorf("confirm bid for item %s: %w", p.Item.ItemID, err)
	}

	if err := s.watch.Add(p.Item.ItemID); err != nil {
		// The bid stands either way; a watchlist persistence problem is not
		// a bid failure.
		utils.Warn("watchlist add failed after accepted bid", map[string]any{
			"item_id": p.Item.ItemID,
			"error":   err.Error(),
		})
	}

	s.st.TrackBid(p.Item.ItemID, p.Evaluation.Amount, s.now())

	if report, err := s.st.CheckIntegrity(p.Item.ItemID); err == nil && report.Divergent {
		utils.Warn("current bid and latest history entry diverge", map[string]any{
			"item_id":        report.ItemID,
			"current_bid":    report.CurrentBid,
			"latest_history": report.LatestHistory,
		})
	}

	s.mu.Lock()
	p.State = StateAccepted
	out := *p
	delete(s.proposals, proposalID)
	s.mu.Unlock()

	s.notices.Push("Bid submitted!", toast.KindSuccess, 0)
	return out, nil
}

// Cancel discards a pending proposal without writing anything.
func (s *BiddingService) Cancel(proposalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals[proposalID]
	if !ok {
		return fmt.Errorf("cancel bid: %w", auctionerrors.ErrProposalNotFound)
	}
	if p.State != StateProposed {
		return fmt.Errorf("cancel bid: %w - proposal is %s", auctionerrors.ErrProposalNotPending, p.State)
	}
	delete(s.proposals, proposalID)
	return nil
}

// Suggest returns the minimum next bid for prefilling the bid input.
func (s *BiddingService) Suggest(itemID string) (int64, error) {
	if _, err := s.identity.Current(); err != nil {
		return 0, fmt.Errorf("suggest bid: %w", err)
	}
	item, err := s.st.GetItem(itemID)
	if err != nil {
		return 0, fmt.Errorf("suggest bid: %w", err)
	}
	current, err := s.currentBid(itemID)
	if err != nil {
		return 0, fmt.Errorf("suggest bid: %w", err)
	}
	return rules.Suggest(item, current), nil
}

// Proposal returns a registered proposal by id.
func (s *BiddingService) Proposal(proposalID string) (Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.proposals[proposalID]
	if !ok {
		return Proposal{}, fmt.Errorf("get proposal: %w", auctionerrors.ErrProposalNotFound)
	}
	return *p, nil
}

func (s *BiddingService) currentBid(itemID string) (*model.BidRecord, error) {
	rec, err := s.st.GetCurrentBid(itemID)
	if err == nil {
		return &rec, nil
	}
	if errors.Is(err, auctionerrors.ErrNoBids) {
		return nil, nil
	}
	return nil, err
}

func (s *BiddingService) fail(p *Proposal, cause error) {
	s.mu.Lock()
	p.State = StateFailed
	p.FailReason = cause.Error()
	s.mu.Unlock()
}
