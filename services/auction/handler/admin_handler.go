package handler

import (
	"net/http"

	"silent-auction/internal/admin"
	model "silent-auction/internal/models"
	"silent-auction/services/auction/helpers"
	"silent-auction/utils"

	"github.com/gin-gonic/gin"
)

// ItemAdminInterface is the item CRUD surface consumed by the HTTP layer.
type ItemAdminInterface interface {
	Create(input admin.ItemInput) (model.Item, error)
	Update(itemID string, input admin.ItemInput) (model.Item, error)
	Get(itemID string) (model.Item, error)
	List() []admin.Listing
	Delete(itemID string) error
}

type AdminHandler struct {
	service ItemAdminInterface
}

func NewAdminHandler(service ItemAdminInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// CreateItemHandler handles POST /admin/items
func (h *AdminHandler) CreateItemHandler(c *gin.Context) {
	var req helpers.ItemUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	item, err := h.service.Create(itemInput(req))
	if err != nil {
		helpers.RespondError(c, "CreateItemHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item created successfully")
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{
		"item_id": item.ItemID,
		"item_no": item.ItemNo,
	})
}

// UpdateItemHandler handles PUT /admin/items/:item_id
func (h *AdminHandler) UpdateItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.ItemUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateItemHandler", err)
		return
	}

	item, err := h.service.Update(itemID, itemInput(req))
	if err != nil {
		helpers.RespondError(c, "UpdateItemHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item updated successfully")
	helpers.LogSuccess("UpdateItemHandler", "item updated successfully", map[string]any{
		"item_id": item.ItemID,
	})
}

// GetItemHandler handles GET /admin/items/:item_id
func (h *AdminHandler) GetItemHandler(c *gin.Context) {
	item, err := h.service.Get(c.Param("item_id"))
	if err != nil {
		helpers.RespondError(c, "GetItemHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// ListItemsHandler handles GET /admin/items
func (h *AdminHandler) ListItemsHandler(c *gin.Context) {
	listings := h.service.List()
	utils.JSONResponse(c, http.StatusOK, listings, "items retrieved successfully")
	helpers.LogSuccess("AdminListItemsHandler", "items retrieved successfully", map[string]any{
		"count": len(listings),
	})
}

// DeleteItemHandler handles DELETE /admin/items/:item_id
func (h *AdminHandler) DeleteItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	if err := h.service.Delete(itemID); err != nil {
		helpers.RespondError(c, "DeleteItemHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "item deleted successfully")
	helpers.LogSuccess("DeleteItemHandler", "item deleted successfully", map[string]any{
		"item_id": itemID,
	})
}

func itemInput(req helpers.ItemUpsertRequest) admin.ItemInput {
	return admin.ItemInput{
		ItemNo:       req.ItemNo,
		Name:         req.Name,
		Description:  req.Description,
		Sponsor:      req.Sponsor,
		Value:        req.Value,
		StartingBid:  req.StartingBid,
		BidIncrement: req.BidIncrement,
	}
}
