package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/internal/controller"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/service"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(ss service.SessionService) *SessionController {
	return &SessionController{sessionService: ss}
}

// GetSession godoc
// @Summary (User) Get session state
// @Description Current question, selections, remaining seconds and time warnings.
// @Tags User - Sessions
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Failure 403 {object} dto.ErrorResponse "Session belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	view, err := c.sessionService.GetSession(ctx.Param("session_id"), controller.CurrentIdentity(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to get session", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SelectAnswer godoc
// @Summary (User) Select an answer
// @Description Replaces any earlier selection for the same question. Ignored once the session has ended.
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param answer body dto.SelectAnswerDTO true "Question and option"
// @Success 200 {object} dto.SessionDTO
// @Failure 400 {object} dto.ErrorResponse "Option does not belong to the question"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/answers [put]
func (c *SessionController) SelectAnswer(ctx *gin.Context) {
	var req dto.SelectAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	view, err := c.sessionService.SelectAnswer(ctx.Param("session_id"), controller.CurrentIdentity(ctx), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to select answer", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Next godoc
// @Summary (User) Move to the next question
// @Tags User - Sessions
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Router /sessions/{session_id}/next [post]
func (c *SessionController) Next(ctx *gin.Context) {
	view, err := c.sessionService.Next(ctx.Param("session_id"), controller.CurrentIdentity(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to move to the next question", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Previous godoc
// @Summary (User) Move to the previous question
// @Tags User - Sessions
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Router /sessions/{session_id}/previous [post]
func (c *SessionController) Previous(ctx *gin.Context) {
	view, err := c.sessionService.Previous(ctx.Param("session_id"), controller.CurrentIdentity(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to move to the previous question", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Jump godoc
// @Summary (User) Jump to a question
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param jump body dto.JumpDTO true "Zero-based question index"
// @Success 200 {object} dto.SessionDTO
// @Failure 400 {object} dto.ErrorResponse "Index out of range"
// @Router /sessions/{session_id}/jump [post]
func (c *SessionController) Jump(ctx *gin.Context) {
	var req dto.JumpDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	view, err := c.sessionService.Jump(ctx.Param("session_id"), controller.CurrentIdentity(ctx), *req.Index)
	if err != nil {
		controller.RespondError(ctx, "Failed to jump to question", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Submit godoc
// @Summary (User) Submit the session
// @Description Scores every question, unanswered ones as incorrect, and stores the submission. Submitting again returns the same outcome.
// @Tags User - Sessions
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 409 {object} dto.ErrorResponse "Session was abandoned"
// @Failure 507 {object} dto.ErrorResponse "Storage limit reached"
// @Router /sessions/{session_id}/submit [post]
func (c *SessionController) Submit(ctx *gin.Context) {
	view, err := c.sessionService.Submit(ctx.Param("session_id"), controller.CurrentIdentity(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to submit session", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Abandon godoc
// @Summary (User) Abandon the session
// @Description Stops the countdown without storing anything.
// @Tags User - Sessions
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [delete]
func (c *SessionController) Abandon(ctx *gin.Context) {
	if err := c.sessionService.Abandon(ctx.Param("session_id"), controller.CurrentIdentity(ctx)); err != nil {
		controller.RespondError(ctx, "Failed to abandon session", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
