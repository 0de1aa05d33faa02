package v1

import (
	"io"
	"net/http"

	"zk-contact-backend/internal/delivery/http/response"
	"zk-contact-backend/internal/domain"
	"zk-contact-backend/pkg/apperror"
	"zk-contact-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// maxSubmissionBytes bounds the form payload read from the request.
const maxSubmissionBytes = 64 << 10

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the form endpoint. Every method is routed to
// the handler so the usecase can answer non-POST requests with 405.
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.Any("/contact", limiter, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit a website form
// @Description  Validates a contact, quote or work-together submission, emails the company inbox, then acknowledges the submitter.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        submission  body      map[string]string  true  "Form fields keyed by name; formType selects the form"
// @Success      200         {object}  response.SentBody
// @Failure      400         {object}  response.ErrorBody
// @Failure      405         {object}  response.ErrorBody
// @Failure      429         {object}  response.ErrorBody
// @Failure      500         {object}  response.ErrorBody
// @Failure      502         {object}  response.ErrorBody
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var body []byte
	if c.Request.Method == http.MethodPost && c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxSubmissionBytes))
		if err != nil {
			c.Error(apperror.BadRequest("Invalid JSON body"))
			return
		}
	}

	result, err := h.contactUC.Submit(c.Request.Context(), c.Request.Method, body)
	if err != nil {
		c.Error(err)
		return
	}

	logger.Log.DebugContext(c.Request.Context(), "Contact submission answered",
		"stage", domain.StageResponded, "request_id", c.GetString(string(domain.KeyRequestID)))
	response.Sent(c, http.StatusOK, result.InternalID, result.ClientID)
}
