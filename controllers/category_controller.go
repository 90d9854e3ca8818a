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

// defaultCategoryColor is applied at the boundary when the caller omits a
// color; downstream code never relies on the column default.
const defaultCategoryColor = "blue"

type CategoryController struct {
	Store    storage.Storage
	Validate *utils.Validator
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required,token"`
	DisplayName string `json:"displayName" validate:"required"`
	Color       string `json:"color"`
}

// GET /api/categories
func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.Store.GetCategories(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// POST /api/categories
func (cc *CategoryController) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if errs := cc.Validate.Validate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": errs})
		return
	}
	if req.Color == "" {
		req.Color = defaultCategoryColor
	}

	category := models.Category{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Color:       req.Color,
	}
	if err := cc.Store.CreateCategory(c.Request.Context(), &category); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{
				"message": "Invalid data",
				"errors":  []utils.FieldError{{Field: "name", Msg: "name is already in use"}},
			})
			return
		}
		log.Printf("Error creating category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// DELETE /api/categories/:id
func (cc *CategoryController) Delete(c *gin.Context) {
	err := cc.Store.DeleteCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		log.Printf("Error deleting category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
