package v1

import (
	"net/http"

	"zk-contact-backend/internal/preview"
	"zk-contact-backend/pkg/apperror"
	"zk-contact-backend/pkg/email"

	"github.com/gin-gonic/gin"
)

type PreviewHandler struct {
	branding email.Branding
}

// NewPreviewHandler registers the template preview route. Only mounted
// outside release mode.
func NewPreviewHandler(api *gin.RouterGroup, branding email.Branding) {
	handler := &PreviewHandler{branding: branding}

	api.GET("/mail-preview/:kind/:document", handler.Render)
}

// Render godoc
// @Summary      Preview a form email
// @Description  Renders the internal or client email for a sample submission. Not available in release mode.
// @Tags         preview
// @Produce      html
// @Param        kind      path  string  true  "contact, quote or work_together"
// @Param        document  path  string  true  "internal or client"
// @Success      200  {string}  string
// @Failure      400  {object}  response.ErrorBody
// @Router       /mail-preview/{kind}/{document} [get]
func (h *PreviewHandler) Render(c *gin.Context) {
	kind, err := preview.ParseKind(c.Param("kind"))
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	doc, err := preview.ParseDocument(c.Param("document"))
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	html, err := preview.Render(preview.Sample(kind), doc, h.branding)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
