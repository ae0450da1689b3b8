package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/internal/controller"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/service"
)

type AuthController struct {
	userService       service.UserService
	submissionService service.SubmissionService
}

func NewAuthController(us service.UserService, ss service.SubmissionService) *AuthController {
	return &AuthController{userService: us, submissionService: ss}
}

// Register godoc
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body dto.RegisterRequest true "Name and email"
// @Success 201 {object} model.User
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	user, err := c.userService.Register(req)
	if err != nil {
		controller.RespondError(ctx, "Failed to register", err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in with an email
// @Description Issues a bearer token for the account registered with the email.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Unknown email"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.userService.Login(req)
	if err != nil {
		controller.RespondError(ctx, "Failed to log in", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Current account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.userService.GetUser(controller.CurrentIdentity(ctx).UserID)
	if err != nil {
		controller.RespondError(ctx, "Failed to get account", err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// MySubmissions godoc
// @Summary Submission history of the current account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SubmissionHistoryDTO
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /me/submissions [get]
func (c *AuthController) MySubmissions(ctx *gin.Context) {
	history, err := c.submissionService.GetUserHistory(controller.CurrentIdentity(ctx).UserID)
	if err != nil {
		controller.RespondError(ctx, "Failed to get submissions", err)
		return
	}
	ctx.JSON(http.StatusOK, history)
}
