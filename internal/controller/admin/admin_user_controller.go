package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/internal/controller"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/service"
)

type AdminUserController struct {
	userService service.UserService
}

func NewAdminUserController(userService service.UserService) *AdminUserController {
	return &AdminUserController{userService: userService}
}

// ListUsers godoc
// @Summary (Admin) List users with their grades
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Router /admin/users [get]
func (c *AdminUserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers()
	if err != nil {
		controller.RespondError(ctx, "Failed to list users", err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// SetGrade godoc
// @Summary (Admin) Set a grade slot
// @Description Grades are curated by hand on a 0-20 scale and are independent of submissions.
// @Tags Admin - Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Param grade body dto.GradeUpdateDTO true "Slot and grade"
// @Success 200 {object} model.User
// @Failure 400 {object} dto.ErrorResponse "Grade out of range"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{user_id}/grades [put]
func (c *AdminUserController) SetGrade(ctx *gin.Context) {
	var req dto.GradeUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	user, err := c.userService.SetGrade(ctx.Param("user_id"), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to set grade", err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
