package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gruhahomes/gruha-backend/types"
)

// NewsletterHandler handles newsletter subscription endpoints.
type NewsletterHandler struct {
	newsletterService NewsletterServiceInterface
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(newsletterService NewsletterServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// Subscribe godoc
// @Summary      Subscribe to the newsletter
// @Description  Registers an email for the newsletter. Subscribing an already-registered email returns the existing record.
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body  body      types.NewsletterCreate  true  "Subscription payload"
// @Success      200   {object}  types.NewsletterSubscription
// @Failure      422   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /api/newsletter [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req types.NewsletterCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	sub, err := h.newsletterService.Subscribe(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ListSubscriptions godoc
// @Summary      List newsletter subscriptions
// @Description  Returns all stored subscriptions, capped at 1000 records
// @Tags         newsletter
// @Produce      json
// @Success      200  {array}   types.NewsletterSubscription
// @Failure      500  {object}  types.ErrorResponse
// @Router       /api/newsletter [get]
func (h *NewsletterHandler) ListSubscriptions(c *gin.Context) {
	subs, err := h.newsletterService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, subs)
}
