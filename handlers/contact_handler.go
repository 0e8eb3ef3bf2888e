package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gruhahomes/gruha-backend/errors"
	"github.com/gruhahomes/gruha-backend/types"
)

// ContactHandler handles contact-form endpoints.
type ContactHandler struct {
	contactService ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// bindJSONOrError binds the request body into obj, attaching a validation
// error to the context on failure.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(errors.ValidationFailed("invalid_request_payload", err.Error()))
		return false
	}
	return true
}

// CreateContact godoc
// @Summary      Submit the contact form
// @Description  Persists a contact-form submission and returns the stored record
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      types.ContactCreate  true  "Contact payload"
// @Success      200   {object}  types.ContactSubmission
// @Failure      422   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req types.ContactCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	submission, err := h.contactService.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// ListContacts godoc
// @Summary      List contact submissions
// @Description  Returns all stored submissions, capped at 1000 records
// @Tags         contact
// @Produce      json
// @Success      200  {array}   types.ContactSubmission
// @Failure      500  {object}  types.ErrorResponse
// @Router       /api/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	submissions, err := h.contactService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}
