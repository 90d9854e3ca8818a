package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ayushfaujdar/oodio-solutions/models"
	"github.com/ayushfaujdar/oodio-solutions/storage"
	"github.com/ayushfaujdar/oodio-solutions/utils"
)

type PortfolioController struct {
	Store    storage.Storage
	Validate *utils.Validator
}

type portfolioItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Image       string `json:"image" validate:"required"`
}

type portfolioItemUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	Image       *string `json:"image" validate:"omitempty,min=1"`
}

// GET /api/portfolio?category=
func (pc *PortfolioController) List(c *gin.Context) {
	var (
		items []models.PortfolioItem
		err   error
	)
	if category := c.Query("category"); category != "" {
		items, err = pc.Store.GetPortfolioItemsByCategory(c.Request.Context(), category)
	} else {
		items, err = pc.Store.GetPortfolioItems(c.Request.Context())
	}
	if err != nil {
		log.Printf("Error fetching portfolio items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch portfolio items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/portfolio
func (pc *PortfolioController) Create(c *gin.Context) {
	var req portfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if errs := pc.Validate.Validate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": errs})
		return
	}

	item := models.PortfolioItem{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
	}
	if err := pc.Store.CreatePortfolioItem(c.Request.Context(), &item); err != nil {
		log.Printf("Error creating portfolio item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create portfolio item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// PUT /api/portfolio/:id
func (pc *PortfolioController) Update(c *gin.Context) {
	var req portfolioItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if errs := pc.Validate.Validate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": errs})
		return
	}

	updates := models.PortfolioItemUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
	}
	item, err := pc.Store.UpdatePortfolioItem(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Portfolio item not found"})
			return
		}
		log.Printf("Error updating portfolio item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update portfolio item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /api/portfolio/:id
func (pc *PortfolioController) Delete(c *gin.Context) {
	err := pc.Store.DeletePortfolioItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Portfolio item not found"})
			return
		}
		log.Printf("Error deleting portfolio item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete portfolio item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted successfully"})
}
