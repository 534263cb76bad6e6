package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/enrollhub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	facultyController *controllers.FacultyController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	faculties := v1.Group("/faculties")
	{
		faculties.GET("", facultyController.GetAllFaculties)
		faculties.GET("/:id", facultyController.GetFacultyByID)
		faculties.POST("", facultyController.CreateFaculty)
		faculties.PUT("/:id", facultyController.UpdateFaculty)
		faculties.DELETE("/:id", facultyController.DeleteFaculty)
	}

	users := v1.Group("/users")
	{
		users.GET("", userController.GetAllUsers)
		users.GET("/:id", userController.GetUserByID)
		users.POST("", userController.CreateUser)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)

		// Bulk lifecycle operation on a course's enrollments
		courses.PUT("/:id/close-enrollments", courseController.CloseCourseEnrollments)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)

		// Single enrollment lifecycle operation
		enrollments.PUT("/:id/close", enrollmentController.CloseEnrollment)
	}
}
