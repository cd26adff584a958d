package http

import (
	"github.com/gin-gonic/gin"

	"a2a-orchestrator/internal/orchestrator"
	"a2a-orchestrator/pkg/response"
)

// Chat godoc
// @Summary     Process a conversational turn
// @Description Runs one user message through classification, resolution and synthesis, returning the assistant reply plus structured intermediates.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message and optional session id"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		if err == orchestrator.ErrEmptyMessage {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Sessions godoc
// @Summary     List active sessions
// @Description Returns the ids of all sessions currently held by the store.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} sessionsResp
// @Router      /api/v1/chat/sessions [GET]
func (h *handler) Sessions(c *gin.Context) {
	ctx := c.Request.Context()

	response.OK(c, newSessionsResp(h.uc.Sessions(ctx)))
}

// DeleteSession godoc
// @Summary     Delete a session
// @Description Removes a session's conversation state. Unknown ids are a no-op.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} deleteSessionResp
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	h.uc.DeleteSession(ctx, id)

	response.OK(c, deleteSessionResp{SessionID: id, Deleted: true})
}
