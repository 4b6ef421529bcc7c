package api

import (
	"net/http"

	resdto "ad-approval-service/internal/handler/dto/response"
	"ad-approval-service/internal/handler/httperr"
	"ad-approval-service/internal/pkg/errs"
	"ad-approval-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "Stripe-Signature"

	// Checkout events are a few KiB; anything far larger is not a payment event.
	maxWebhookBodyBytes = 65536
)

type PaymentWebhookHandler struct {
	cmds commands.PaymentEventCommands
}

func NewPaymentWebhookHandler(cmds commands.PaymentEventCommands) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{cmds: cmds}
}

// @Summary Payment provider webhook
// @Description Receives signed Stripe events. Completed checkouts approve and activate the matching ads.
// @Tags webhook
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature header"
// @Success 200 {object} resdto.WebhookAck
// @Failure 400 {object} resdto.WebhookAck
// @Router /webhook [post]
func (h *PaymentWebhookHandler) Handle(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithBody(c, http.StatusBadRequest, errs.Wrap(err, "failed to read webhook body"), resdto.WebhookAck{Success: false})
		return
	}

	result, err := h.cmds.Apply(c.Request.Context(), payload, c.GetHeader(signatureHeader))
	if err != nil {
		httperr.AbortWithBody(c, http.StatusBadRequest, err, resdto.WebhookAck{Success: false})
		return
	}

	if result != nil && result.Relevant {
		c.Set("payment_event_id", result.Event.ID)
	}
	c.JSON(http.StatusOK, resdto.WebhookAck{Success: true})
}
