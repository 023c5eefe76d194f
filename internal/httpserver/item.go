package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listItemsHandler(svc itemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func getItemHandler(svc itemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func findItemsByNameHandler(svc itemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.FindByName(c.Request.Context(), c.Param("name"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
