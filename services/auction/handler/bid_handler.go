package handler

import (
	"fmt"
	"net/http"

	"silent-auction/internal/bidding"
	"silent-auction/services/auction/helpers"
	"silent-auction/utils"

	"github.com/gin-gonic/gin"
)

// BidFlowInterface is the two-step bid flow consumed by the HTTP layer.
type BidFlowInterface interface {
	Propose(itemID string, amount int64) (bidding.Proposal, error)
	Confirm(proposalID string) (bidding.Proposal, error)
	Cancel(proposalID string) error
	Suggest(itemID string) (int64, error)
}

type BidHandler struct {
	flow BidFlowInterface
}

func NewBidHandler(flow BidFlowInterface) *BidHandler {
	return &BidHandler{flow: flow}
}

// ProposeBidHandler handles POST /items/:item_id/bids
func (h *BidHandler) ProposeBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.ProposeBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ProposeBidHandler", err)
		return
	}

	proposal, err := h.flow.Propose(itemID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "ProposeBidHandler", err)
		return
	}

	resp := proposalResponse(proposal)
	utils.JSONResponse(c, http.StatusOK, resp, "bid accepted, awaiting confirmation")
	helpers.LogSuccess("ProposeBidHandler", "bid proposed", map[string]any{
		"proposal_id": proposal.ProposalID,
		"item_id":     proposal.Item.ItemID,
		"amount":      proposal.Evaluation.Amount,
	})
}

// ConfirmBidHandler handles POST /bids/:proposal_id/confirm
func (h *BidHandler) ConfirmBidHandler(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	proposal, err := h.flow.Confirm(proposalID)
	if err != nil {
		helpers.RespondError(c, "ConfirmBidHandler", err)
		return
	}

	resp := proposalResponse(proposal)
	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("ConfirmBidHandler", "bid recorded successfully", map[string]any{
		"proposal_id": proposal.ProposalID,
		"item_id":     proposal.Item.ItemID,
		"amount":      proposal.Evaluation.Amount,
		"bidder":      proposal.Bidder.Name,
	})
}

// CancelBidHandler handles DELETE /bids/:proposal_id
func (h *BidHandler) CancelBidHandler(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	if err := h.flow.Cancel(proposalID); err != nil {
		helpers.RespondError(c, "CancelBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid proposal cancelled")
	helpers.LogSuccess("CancelBidHandler", "bid proposal cancelled", map[string]any{
		"proposal_id": proposalID,
	})
}

// SuggestBidHandler handles GET /items/:item_id/suggest
func (h *BidHandler) SuggestBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	suggested, err := h.flow.Suggest(itemID)
	if err != nil {
		helpers.RespondError(c, "SuggestBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.SuggestResponse{
		ItemID:    itemID,
		Suggested: suggested,
	}, "suggested bid computed")
}

func proposalResponse(p bidding.Proposal) helpers.ProposalResponse {
	return helpers.ProposalResponse{
		ProposalID: p.ProposalID,
		ItemID:     p.Item.ItemID,
		ItemName:   p.Item.Name,
		Amount:     p.Evaluation.Amount,
		MinAllowed: p.Evaluation.MinAllowed,
		State:      string(p.State),
		Prompt:     fmt.Sprintf("Confirm your bid of %s for %q?", utils.FormatTHB(p.Evaluation.Amount), p.Item.Name),
	}
}
