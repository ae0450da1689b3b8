package user

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/internal/controller"
	"github.com/lshigami/atcprep/internal/service"
)

const (
	HeaderFileWarning = "X-File-Warning"
	HeaderFilePartial = "X-File-Partial"
)

type CourseController struct {
	courseService service.CourseService
}

func NewCourseController(cs service.CourseService) *CourseController {
	return &CourseController{courseService: cs}
}

// ListCourses godoc
// @Summary (User) List courses
// @Tags User - Courses
// @Produce json
// @Param category query string false "Content category" Enums(aerodrome, approach, ccr)
// @Success 200 {array} dto.CourseSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown category"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(categoryQuery(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to list courses", err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary (User) Get a course
// @Tags User - Courses
// @Produce json
// @Param course_id path string true "Course ID"
// @Success 200 {object} model.Course
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{course_id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx.Param("course_id"))
	if err != nil {
		controller.RespondError(ctx, "Failed to get course", err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// DownloadCourseFile godoc
// @Summary (User) Download the course attachment
// @Description When the stored copy was truncated the partial file is still served, flagged by the X-File-Warning and X-File-Partial headers.
// @Tags User - Courses
// @Produce octet-stream
// @Param course_id path string true "Course ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse "Course or attachment not found"
// @Failure 422 {object} dto.ErrorResponse "Stored attachment is corrupted"
// @Router /courses/{course_id}/file [get]
func (c *CourseController) DownloadCourseFile(ctx *gin.Context) {
	download, err := c.courseService.DownloadCourseFile(ctx.Param("course_id"))
	if err != nil {
		controller.RespondError(ctx, "Failed to download course file", err)
		return
	}

	doc := download.Document
	ctx.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	if download.Warning != "" {
		ctx.Header(HeaderFileWarning, download.Warning)
	}
	ctx.Header(HeaderFilePartial, strconv.FormatBool(doc.Partial))
	ctx.Data(http.StatusOK, doc.MIMEType, doc.Data)
}
