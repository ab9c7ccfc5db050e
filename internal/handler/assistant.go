package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-reservation/internal/assistant"
)

// AssistantHandler relays the in-app help chat to the completion service.
type AssistantHandler struct {
	Client *assistant.Client
}

func NewAssistantHandler(c *assistant.Client) *AssistantHandler {
	return &AssistantHandler{Client: c}
}

type chatRequest struct {
	Messages []assistant.Message `json:"messages"`
}

// Chat handles POST /v1/assistant/chat. The client sends the running
// conversation; only a bounded window of the most recent messages is
// forwarded upstream. A failing or unconfigured assistant yields 502, the
// chat never blocks the rest of the app.
func (h *AssistantHandler) Chat(c echo.Context) error {
	var in chatRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(in.Messages) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "messages is required"})
	}
	reply, err := h.Client.Complete(c.Request().Context(), in.Messages)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "assistant unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reply": reply})
}
