// Package admin is the item-management surface: create, update, list, and
// delete catalog items with field validation. Money fields arrive as form
// strings and are parsed exactly before being stored as whole THB.
package admin

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"silent-auction/internal/auctionerrors"
	model "silent-auction/internal/models"
	"silent-auction/internal/store"
	"silent-auction/utils"
)

// ItemInput carries the raw admin-form fields for a create or update.
type ItemInput struct {
	ItemNo       string `json:"item_no"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Sponsor      string `json:"sponsor"`
	Value        string `json:"value"`
	StartingBid  string `json:"starting_bid"`
	BidIncrement string `json:"bid_increment"`
}

// Listing is one dashboard row: an item joined with its current bid.
type Listing struct {
	Item       model.Item       `json:"item"`
	CurrentBid *model.BidRecord `json:"current_bid,omitempty"`
}

// Service performs validated item CRUD against the snapshot store.
type Service struct {
	st               store.SnapshotStore
	defaultIncrement int64
}

// NewService creates an admin service. defaultIncrement is applied to items
// created without an explicit bid increment; non-positive values fall back to
// model.DefaultBidIncrement.
func NewService(st store.SnapshotStore, defaultIncrement int64) *Service {
	if defaultIncrement <= 0 {
		defaultIncrement = model.DefaultBidIncrement
	}
	return &Service{st: st, defaultIncrement: defaultIncrement}
}

// Create validates the input and writes a new item.
func (s *Service) Create(input ItemInput) (model.Item, error) {
	item, err := s.validate(input)
	if err != nil {
		return model.Item{}, fmt.Errorf("create item: %w", err)
	}
	item.ItemID = utils.GenerateID()
	if err := s.st.PutItem(item); err != nil {
		return model.Item{}, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// Update validates the input and overwrites an existing item.
func (s *Service) Update(itemID string, input ItemInput) (model.Item, error) {
	if _, err := s.st.GetItem(itemID); err != nil {
		return model.Item{}, fmt.Errorf("update item: %w", err)
	}
	item, err := s.validate(input)
	if err != nil {
		return model.Item{}, fmt.Errorf("update item %s: %w", itemID, err)
	}
	item.ItemID = itemID
	if err := s.st.PutItem(item); err != nil {
		return model.Item{}, fmt.Errorf("update item %s: %w", itemID, err)
	}
	return item, nil
}

// Get returns a single item.
func (s *Service) Get(itemID string) (model.Item, error) {
	return s.st.GetItem(itemID)
}

// List returns every item joined with its current bid, ordered by item
// number.
func (s *Service) List() []Listing {
	items := s.st.ItemsSnapshot()
	bids := s.st.BidsSnapshot()

	listings := make([]Listing, 0, len(items))
	for key, item := range items {
		l := Listing{Item: item}
		if rec, ok := bids[key]; ok && rec.Bid > 0 {
			r := rec
			l.CurrentBid = &r
		}
		listings = append(listings, l)
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].Item.ItemNo < listings[j].Item.ItemNo
	})
	return listings
}

// Delete removes an item. History entries are not cascaded; when any are
// left behind the orphan count is logged so the gap stays visible.
func (s *Service) Delete(itemID string) error {
	orphaned, err := s.st.DeleteItem(itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if orphaned > 0 {
		utils.Warn("item deleted with history entries left behind", map[string]any{
			"item_id":          itemID,
			"orphaned_entries": orphaned,
		})
	}
	return nil
}

// validate checks the form fields and builds the item to store. Money fields
// are parsed as exact decimals and rounded to whole THB.
func (s *Service) validate(input ItemInput) (model.Item, error) {
	itemNo, err := strconv.Atoi(strings.TrimSpace(input.ItemNo))
	if err != nil || itemNo <= 0 {
		return model.Item{}, fmt.Errorf("%w - item_no must be a positive number", auctionerrors.ErrInvalidItem)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Item{}, fmt.Errorf("%w - name is required", auctionerrors.ErrInvalidItem)
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return model.Item{}, fmt.Errorf("%w - description is required", auctionerrors.ErrInvalidItem)
	}

	value, err := parseMoney(input.Value)
	if err != nil {
		return model.Item{}, fmt.Errorf("%w - value must be a valid non-negative number", auctionerrors.ErrInvalidItem)
	}
	startingBid, err := parseMoney(input.StartingBid)
	if err != nil {
		return model.Item{}, fmt.Errorf("%w - starting_bid must be a valid non-negative number", auctionerrors.ErrInvalidItem)
	}

	increment := s.defaultIncrement
	if raw := strings.TrimSpace(input.BidIncrement); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return model.Item{}, fmt.Errorf("%w - bid_increment must be a positive number", auctionerrors.ErrInvalidItem)
		}
		increment = parsed
	}

	return model.Item{
		ItemNo:       itemNo,
		Name:         name,
		Description:  description,
		Sponsor:      strings.TrimSpace(input.Sponsor),
		Value:        value,
		StartingBid:  startingBid,
		BidIncrement: increment,
	}, nil
}

// parseMoney parses an optional money field into whole THB. Empty means
// absent and parses to zero.
func parseMoney(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("negative amount %s", raw)
	}
	return d.Round(0).IntPart(), nil
}
