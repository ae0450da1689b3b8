package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/internal/controller"
	"github.com/lshigami/atcprep/internal/document"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/service"
)

type AdminCourseController struct {
	courseService service.CourseService
	pipeline      *document.Pipeline
}

func NewAdminCourseController(courseService service.CourseService, pipeline *document.Pipeline) *AdminCourseController {
	return &AdminCourseController{courseService: courseService, pipeline: pipeline}
}

// CreateCourse godoc
// @Summary (Admin) Create a course
// @Description Accepts .txt, .doc, .docx and .pdf attachments. Plain text is stored as the course content. Oversized attachments are truncated and the response carries a warning.
// @Tags Admin - Courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Course title"
// @Param description formData string false "Course description"
// @Param content formData string false "Course content"
// @Param category formData string true "Content category" Enums(aerodrome, approach, ccr)
// @Param file formData file false "Course document"
// @Success 201 {object} dto.CourseWriteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unsupported file type"
// @Failure 413 {object} dto.ErrorResponse "File exceeds the upload size limit"
// @Failure 507 {object} dto.ErrorResponse "Storage limit reached"
// @Router /admin/courses [post]
func (c *AdminCourseController) CreateCourse(ctx *gin.Context) {
	var form dto.CourseForm
	if err := ctx.ShouldBind(&form); err != nil {
		controller.BindError(ctx, err)
		return
	}
	upload, err := controller.ReadUpload(ctx, "file", c.pipeline)
	if err != nil {
		controller.RespondError(ctx, "Failed to read uploaded file", err)
		return
	}

	resp, err := c.courseService.CreateCourse(form, upload)
	if err != nil {
		controller.RespondError(ctx, "Failed to create course", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateCourse godoc
// @Summary (Admin) Update a course
// @Description A new file replaces the attachment; removeFile clears it.
// @Tags Admin - Courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param course_id path string true "Course ID"
// @Param title formData string true "Course title"
// @Param description formData string false "Course description"
// @Param content formData string false "Course content"
// @Param category formData string true "Content category" Enums(aerodrome, approach, ccr)
// @Param removeFile formData bool false "Remove the current attachment"
// @Param file formData file false "Course document"
// @Success 200 {object} dto.CourseWriteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unsupported file type"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 413 {object} dto.ErrorResponse "File exceeds the upload size limit"
// @Failure 507 {object} dto.ErrorResponse "Storage limit reached"
// @Router /admin/courses/{course_id} [put]
func (c *AdminCourseController) UpdateCourse(ctx *gin.Context) {
	var form dto.CourseForm
	if err := ctx.ShouldBind(&form); err != nil {
		controller.BindError(ctx, err)
		return
	}
	upload, err := controller.ReadUpload(ctx, "file", c.pipeline)
	if err != nil {
		controller.RespondError(ctx, "Failed to read uploaded file", err)
		return
	}

	resp, err := c.courseService.UpdateCourse(ctx.Param("course_id"), form, upload)
	if err != nil {
		controller.RespondError(ctx, "Failed to update course", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteCourse godoc
// @Summary (Admin) Delete a course
// @Tags Admin - Courses
// @Security BearerAuth
// @Param course_id path string true "Course ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{course_id} [delete]
func (c *AdminCourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Param("course_id")); err != nil {
		controller.RespondError(ctx, "Failed to delete course", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
