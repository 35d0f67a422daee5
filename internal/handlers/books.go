package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/servicehub-api/internal/service"
)

// BookHandler is the handler for book search requests.
type BookHandler struct {
	Service *service.BookService
}

// NewBookHandler is the constructor function for initializing a new BookHandler.
func NewBookHandler(bookService *service.BookService) *BookHandler {
	return &BookHandler{Service: bookService}
}

// SearchBooks returns one page of book results for ?q=&page=.
func (h *BookHandler) SearchBooks(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Search(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		respondError(c, "search books", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": result})
}
