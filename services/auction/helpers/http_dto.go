package helpers

// Request/Response DTOs
type RegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

type ProposeBidRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type ProposalResponse struct {
	ProposalID string `json:"proposal_id"`
	ItemID     string `json:"item_id"`
	ItemName   string `json:"item_name"`
	Amount     int64  `json:"amount"`
	MinAllowed int64  `json:"min_allowed"`
	State      string `json:"state"`
	Prompt     string `json:"prompt"`
}

type SuggestResponse struct {
	ItemID    string `json:"item_id"`
	Suggested int64  `json:"suggested_bid"`
}

type ItemUpsertRequest struct {
	ItemNo       string `json:"item_no" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Sponsor      string `json:"sponsor"`
	Value        string `json:"value"`
	StartingBid  string `json:"starting_bid"`
	BidIncrement string `json:"bid_increment"`
}
