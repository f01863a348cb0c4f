package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"silent-auction/internal/auctionerrors"
	"silent-auction/internal/bidding"
	model "silent-auction/internal/models"
	"silent-auction/internal/rules"
	"silent-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleProposal(state bidding.ProposalState) bidding.Proposal {
	return bidding.Proposal{
		ProposalID: uuid.NewString(),
		Item: model.Item{
			ItemID:       "item1",
			ItemNo:       1,
			Name:         "Dinner for Two",
			StartingBid:  1000,
			BidIncrement: 500,
		},
		Evaluation: rules.Evaluation{
			Amount:     1500,
			MinAllowed: 1001,
			Increment:  500,
		},
		State:     state,
		CreatedAt: time.Now(),
	}
}

// Test ProposeBidHandler
func TestProposeBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlow := NewMockBidFlowInterface(ctrl)
	handler := NewBidHandler(mockFlow)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/items/:item_id/bids", handler.ProposeBidHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_amount",
			requestBody: helpers.ProposeBidRequest{Amount: 1500},
			mockSetup: func() {
				mockFlow.EXPECT().
					Propose("item1", int64(1500)).
					Return(sampleProposal(bidding.StateProposed), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid accepted, awaiting confirmation",
			validateData: func(t *testing.T, data map[string]any) {
				proposalID := data["proposal_id"].(string)
				require.NotEmpty(t, proposalID)
				_, parseErr := uuid.Parse(proposalID)
				require.NoError(t, parseErr, "ProposalID should be a valid UUID")
				require.Equal(t, "item1", data["item_id"])
				require.Equal(t, 1500.0, data["amount"])
				require.Equal(t, string(bidding.StateProposed), data["state"])
				require.Contains(t, data["prompt"], "THB 1,500")
				require.Contains(t, data["prompt"], "Dinner for Two")
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_amount",
			requestBody:    map[string]any{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "negative_amount",
			requestBody:    helpers.ProposeBidRequest{Amount: -100},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_below_minimum",
			requestBody: helpers.ProposeBidRequest{Amount: 1200},
			mockSetup: func() {
				mockFlow.EXPECT().
					Propose("item1", int64(1200)).
					Return(bidding.Proposal{}, auctionerrors.ErrBelowMinimum)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid below minimum next bid",
		},
		{
			name:        "service_item_not_found",
			requestBody: helpers.ProposeBidRequest{Amount: 1500},
			mockSetup: func() {
				mockFlow.EXPECT().
					Propose("item1", int64(1500)).
					Return(bidding.Proposal{}, auctionerrors.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "item not found",
		},
		{
			name:        "service_identity_missing",
			requestBody: helpers.ProposeBidRequest{Amount: 1500},
			mockSetup: func() {
				mockFlow.EXPECT().
					Propose("item1", int64(1500)).
					Return(bidding.Proposal{}, auctionerrors.ErrIdentityMissing)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "registration required",
		},
		{
			name:        "service_generic_error",
			requestBody: helpers.ProposeBidRequest{Amount: 1500},
			mockSetup: func() {
				mockFlow.EXPECT().
					Propose("item1", int64(1500)).
					Return(bidding.Proposal{}, errors.New("store failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/items/item1/bids", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test ConfirmBidHandler
func TestConfirmBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlow := NewMockBidFlowInterface(ctrl)
	handler := NewBidHandler(mockFlow)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids/:proposal_id/confirm", handler.ConfirmBidHandler)

	tests := []struct {
		name           string
		proposalID     string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:       "success_bid_recorded",
			proposalID: "prop1",
			mockSetup: func() {
				mockFlow.EXPECT().
					Confirm("prop1").
					Return(sampleProposal(bidding.StateAccepted), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "item1", data["item_id"])
				require.Equal(t, 1500.0, data["amount"])
				require.Equal(t, string(bidding.StateAccepted), data["state"])
			},
		},
		{
			name:       "proposal_not_found",
			proposalID: "ghost",
			mockSetup: func() {
				mockFlow.EXPECT().
					Confirm("ghost").
					Return(bidding.Proposal{}, auctionerrors.ErrProposalNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "bid proposal not found",
		},
		{
			name:       "already_confirmed",
			proposalID: "prop2",
			mockSetup: func() {
				mockFlow.EXPECT().
					Confirm("prop2").
					Return(bidding.Proposal{}, auctionerrors.ErrProposalNotPending)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid proposal is not awaiting confirmation",
		},
		{
			name:       "superseded_by_higher_bid",
			proposalID: "prop3",
			mockSetup: func() {
				mockFlow.EXPECT().
					Confirm("prop3").
					Return(sampleProposal(bidding.StateFailed), auctionerrors.ErrBidSuperseded)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "a higher bid was recorded first",
		},
		{
			name:       "service_generic_error",
			proposalID: "prop4",
			mockSetup: func() {
				mockFlow.EXPECT().
					Confirm("prop4").
					Return(bidding.Proposal{}, errors.New("store failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/bids/"+tc.proposalID+"/confirm", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test CancelBidHandler
func TestCancelBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlow := NewMockBidFlowInterface(ctrl)
	handler := NewBidHandler(mockFlow)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/bids/:proposal_id", handler.CancelBidHandler)

	tests := []struct {
		name           string
		proposalID     string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:       "success_cancelled",
			proposalID: "prop1",
			mockSetup: func() {
				mockFlow.EXPECT().Cancel("prop1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid proposal cancelled",
		},
		{
			name:       "proposal_not_found",
			proposalID: "ghost",
			mockSetup: func() {
				mockFlow.EXPECT().Cancel("ghost").Return(auctionerrors.ErrProposalNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "bid proposal not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, "/bids/"+tc.proposalID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test SuggestBidHandler
func TestSuggestBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlow := NewMockBidFlowInterface(ctrl)
	handler := NewBidHandler(mockFlow)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/items/:item_id/suggest", handler.SuggestBidHandler)

	tests := []struct {
		name           string
		itemID         string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:   "success_no_bids_yet",
			itemID: "item1",
			mockSetup: func() {
				mockFlow.EXPECT().Suggest("item1").Return(int64(1001), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "suggested bid computed",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "item1", data["item_id"])
				require.Equal(t, 1001.0, data["suggested_bid"])
			},
		},
		{
			name:   "success_with_current_bid",
			itemID: "item2",
			mockSetup: func() {
				mockFlow.EXPECT().Suggest("item2").Return(int64(2000), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "suggested bid computed",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, 2000.0, data["suggested_bid"])
			},
		},
		{
			name:   "item_not_found",
			itemID: "ghost",
			mockSetup: func() {
				mockFlow.EXPECT().Suggest("ghost").Return(int64(0), auctionerrors.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "item not found",
		},
		{
			name:   "identity_missing_redirects_home",
			itemID: "item3",
			mockSetup: func() {
				mockFlow.EXPECT().Suggest("item3").Return(int64(0), auctionerrors.ErrIdentityMissing)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "registration required",
			validateData:   nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/items/"+tc.itemID+"/suggest", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// The identity-missing envelope carries the home redirect hint so the client
// can route back to registration.
func TestRespondError_IdentityRedirectHint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlow := NewMockBidFlowInterface(ctrl)
	mockFlow.EXPECT().Suggest("item1").Return(int64(0), auctionerrors.ErrIdentityMissing)

	handler := NewBidHandler(mockFlow)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/items/:item_id/suggest", handler.SuggestBidHandler)

	req := httptest.NewRequest(http.MethodGet, "/items/item1/suggest", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "/", resp["redirect_to"])
}
