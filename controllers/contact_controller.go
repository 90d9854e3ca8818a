package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ayushfaujdar/oodio-solutions/models"
	"github.com/ayushfaujdar/oodio-solutions/services"
	"github.com/ayushfaujdar/oodio-solutions/storage"
	"github.com/ayushfaujdar/oodio-solutions/utils"
)

type ContactController struct {
	Store    storage.Storage
	Validate *utils.Validator
	// Notifier may be nil when no mail account is configured; submissions
	// are still stored.
	Notifier services.Notifier
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// POST /api/contact
//
// The write must succeed before anything else happens; the email is a
// detached best-effort step whose failure is only logged.
func (cc *ContactController) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if errs := cc.Validate.Validate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": errs})
		return
	}

	submission := models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := cc.Store.CreateContactSubmission(c.Request.Context(), &submission); err != nil {
		log.Printf("Error storing contact submission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process contact form"})
		return
	}

	if cc.Notifier != nil {
		go func(s models.ContactSubmission) {
			if err := cc.Notifier.NotifyContact(s); err != nil {
				log.Printf("Error sending contact notification: %v", err)
			}
		}(submission)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact form submitted successfully"})
}
