package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/farmtech/agrirent/internal/httperr"
	"github.com/farmtech/agrirent/internal/mlproxy"
)

// MLHandler mirrors the crop/fertilizer advisory microservice: the
// request body goes upstream as-is and the upstream status and body
// come back as-is.
type MLHandler struct {
	forwarder *mlproxy.Forwarder
}

func NewMLHandler(forwarder *mlproxy.Forwarder) *MLHandler {
	return &MLHandler{forwarder: forwarder}
}

func (h *MLHandler) Forward(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			httperr.BadRequest(c, "unreadable_body", "Could not read request body.")
			return
		}

		status, body, err := h.forwarder.Forward(c.Request.Context(), path, payload)
		if err != nil {
			httperr.Write(c, 502, "ml_service_unreachable", "The advisory service did not respond.")
			return
		}

		c.Data(status, "application/json", body)
	}
}
