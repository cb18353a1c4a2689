package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandan/studenthub/internal/app/controllers"
	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/middleware"
)

// SetupRouter configures all application routes. The path layout mirrors the
// surface existing frontend builds already consume, so paths are not
// versioned.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	certificateController *controllers.CertificateController,
	projectController *controllers.ProjectController,
	marksController *controllers.MarksController,
	collegeController *controllers.CollegeController,
	groupController *controllers.GroupController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// Connectivity probe used by the frontend on startup
	api.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Backend connected successfully!"})
	})

	// --- Auth routes (public) ---
	api.POST("/register", authController.RegisterStudent)
	api.POST("/login", authController.LoginStudent)
	api.POST("/teacher/register", authController.RegisterTeacher)
	api.POST("/teacher/login", authController.LoginTeacher)
	api.POST("/admin/register", authController.RegisterAdmin)
	api.POST("/admin/login", authController.LoginAdmin)

	// --- Student document, profile, search ---
	api.GET("/students/:studentId", studentController.Get)
	api.GET("/profile/:studentId", studentController.GetProfile)
	api.PUT("/profile/:studentId", studentController.UpdateProfile)
	api.GET("/search/students", studentController.Search)

	// --- Certificates ---
	api.POST("/academic-certificates", certificateController.SubmitAcademic)
	api.GET("/academic-certificates/:studentId", certificateController.ListAcademic)
	api.DELETE("/academic-certificates/:studentId/:certificateId", certificateController.DeleteAcademic)
	api.GET("/teacher/academic-certificates/pending", certificateController.ListPending)
	api.PUT("/teacher/academic-certificates/:studentId/:certificateId/review", certificateController.Review)
	api.POST("/certificates", certificateController.SubmitPersonal)
	api.GET("/certificates/:studentId", certificateController.ListPersonal)
	api.DELETE("/certificates/:studentId/:certificateId", certificateController.DeletePersonal)

	// --- Projects ---
	api.POST("/projects", projectController.Create)
	api.GET("/projects/:studentId", projectController.List)
	api.DELETE("/projects/:studentId/:projectId", projectController.Delete)

	// --- Semester marks ---
	api.GET("/students/:studentId/marks", marksController.GetMarks)
	api.POST("/students/:studentId/marks", marksController.AddMarks)
	api.POST("/teacher/marks/:studentId", marksController.TeacherAddMarks)
	api.PUT("/teacher/marks/:studentId", marksController.UpdateSGPA)
	api.GET("/teacher/marks/:studentId", marksController.TeacherGetMarks)
	api.GET("/teacher/student/:studentId/marks", marksController.TeacherGetMarks)
	api.GET("/teacher/students", studentController.ListSummaries)

	// --- Colleges ---
	api.GET("/colleges", collegeController.List)
	api.POST("/colleges", collegeController.Create)
	api.POST("/colleges/:collegeId/departments", collegeController.AddDepartment)

	// --- Groups ---
	api.POST("/groups", groupController.Create)
	api.GET("/groups/:adminId", groupController.ListByCreator)
	api.GET("/teacher/groups/:teacherId", groupController.ListByTeacher)
	api.PUT("/groups/:groupId", groupController.Update)

	// --- Messaging ---
	api.POST("/messages/send", messageController.Send)
	api.GET("/messages/student/:studentId", messageController.ListForStudent)
	api.PUT("/messages/:messageId/read/:studentId", messageController.MarkRead)
	api.GET("/messages/unread-count/:studentId", messageController.UnreadCount)

	// --- Admin listings (token-protected, admin role only) ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		admin.GET("/students", studentController.ListStudents)
		admin.GET("/teachers", studentController.ListTeachers)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
