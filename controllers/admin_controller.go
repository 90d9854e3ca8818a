package controllers

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ayushfaujdar/oodio-solutions/storage"
	"github.com/ayushfaujdar/oodio-solutions/utils"
)

type AdminController struct {
	Store         storage.Storage
	AdminPassword string
}

type loginRequest struct {
	Password string `json:"password"`
}

// POST /api/admin/login
//
// A correct password mints a short-lived token; every admin route requires
// it from then on. The password itself is never accepted per-call.
func (ac *AdminController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(ac.AdminPassword)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		log.Printf("Error generating admin token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Authentication failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin authenticated successfully",
		"token":   token,
	})
}

// GET /api/admin/contacts
func (ac *AdminController) ListContacts(c *gin.Context) {
	submissions, err := ac.Store.GetContactSubmissions(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching contact submissions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch contact submissions"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}
