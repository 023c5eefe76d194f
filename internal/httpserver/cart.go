package httpserver

import (
	"net/http"

	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

type cartOp int

const (
	cartOpAdd cartOp = iota
	cartOpRemove
)

type modifyCartRequest struct {
	Username string `json:"username"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func modifyCartHandler(svc cartService, op cartOp) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req modifyCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		var cart *domain.Cart
		var err error
		switch op {
		case cartOpAdd:
			cart, err = svc.AddItem(c.Request.Context(), req.Username, req.ItemID, req.Quantity)
		case cartOpRemove:
			cart, err = svc.RemoveItem(c.Request.Context(), req.Username, req.ItemID, req.Quantity)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
