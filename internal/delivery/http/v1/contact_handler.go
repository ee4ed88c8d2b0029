package v1

import (
	"errors"
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// MaxContactBodyBytes caps a submission body; the form is a few kilobytes at most.
const MaxContactBodyBytes = 64 << 10

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers POST /contact on every given group (public, no
// auth). limit runs before the handler on each of them.
func NewContactHandler(contactUC domain.ContactUsecase, limit gin.HandlerFunc, groups ...*gin.RouterGroup) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	for _, g := range groups {
		g.POST("/contact", limit, handler.SubmitContact)
	}
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate an inquiry, notify the site owner and send the visitor a confirmation. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      413      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxContactBodyBytes)

	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			appErr := apperror.New(http.StatusRequestEntityTooLarge, "Request body too large", err)
			appErr.Kind = apperror.KindRequest
			c.Error(appErr)
			return
		}
		c.Error(apperror.RequestError(err))
		return
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}
