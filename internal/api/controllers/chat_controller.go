package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// PostMessage godoc
// @Summary Send a chat message
// @Description One conversational turn with the trip assistant; degrades to a fixed reply when the model is unavailable
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatMessageRequest true "Message and optional itinerary ID"
// @Success 200 {object} response_models.ChatTurnResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/chat/message [post]
func (ch *ChatController) PostMessage(c *gin.Context) {
	var req request_models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	turn, err := ch.chatService.ProcessMessage(c.Request.Context(), req.Message, req.ItineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, turn, "Message processed successfully")
}

// GetHistory godoc
// @Summary Get chat history
// @Tags Chat
// @Produce json
// @Param itineraryId path string false "Itinerary ID (defaults to the current session)"
// @Success 200 {object} response_models.ChatHistoryResponse
// @Router /api/chat/history/{itineraryId} [get]
func (ch *ChatController) GetHistory(c *gin.Context) {
	itineraryID := c.Param("itineraryId")

	messages, err := ch.chatService.GetHistory(c.Request.Context(), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ChatHistoryResponse{Messages: messages}, "Chat history fetched successfully")
}
