package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshbites/journalsim/internal/content"
)

// contentHandler serves the static reference data the UI needs: the chart of
// accounts for the account picker and the cast for the chat bubbles.
type contentHandler struct{}

// getAccounts returns the chart of accounts, both as a flat list and grouped
// by accounting type.
func (h *contentHandler) getAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"accounts": content.Accounts,
		"byType":   content.AccountsByType(),
	})
}

// getCharacters returns the cast indexed by character ID.
func (h *contentHandler) getCharacters(c *gin.Context) {
	c.JSON(http.StatusOK, content.Characters)
}

// registerContentRoutes registers the reference data routes
func registerContentRoutes(group *gin.RouterGroup) {
	h := &contentHandler{}
	group.GET("/accounts", h.getAccounts)
	group.GET("/characters", h.getCharacters)
}
