package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"portfolio.backend/internal/interfaces/http/handlers"
	"portfolio.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	profileHandler     *handlers.ProfileHandler
	skillHandler       *handlers.SkillHandler
	projectHandler     *handlers.ProjectHandler
	educationHandler   *handlers.EducationHandler
	experienceHandler  *handlers.ExperienceHandler
	certificateHandler *handlers.CertificateHandler
	messageHandler     *handlers.MessageHandler
	uploadHandler      *handlers.UploadHandler
	adminAuth          gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// registerMetricsRoute serves the registry the metrics middleware writes to
func registerMetricsRoute(r *gin.Engine, reg prometheus.Registerer) {
	gatherer, ok := reg.(prometheus.Gatherer)
	if !ok {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.adminAuth, d.authHandler.GetMe)
			auth.POST("/change-password", d.adminAuth, d.authHandler.ChangePassword)
		}

		v1.GET("/profile", d.profileHandler.GetProfile)
		v1.PUT("/profile", d.adminAuth, d.profileHandler.UpsertProfile)

		skills := v1.Group("/skills")
		{
			skills.GET("", d.skillHandler.ListSkills)
			skills.GET("/all", d.adminAuth, d.skillHandler.ListAllSkills)
			skills.POST("", d.adminAuth, d.skillHandler.CreateSkill)
			skills.PUT("/reorder", d.adminAuth, d.skillHandler.ReorderSkills)
			skills.PUT("/:id", d.adminAuth, d.skillHandler.UpdateSkill)
			skills.DELETE("/:id", d.adminAuth, d.skillHandler.DeleteSkill)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", d.projectHandler.ListProjects)
			projects.GET("/all", d.adminAuth, d.projectHandler.ListAllProjects)
			projects.POST("", d.adminAuth, d.projectHandler.CreateProject)
			projects.PUT("/reorder", d.adminAuth, d.projectHandler.ReorderProjects)
			projects.PUT("/:id", d.adminAuth, d.projectHandler.UpdateProject)
			projects.DELETE("/:id", d.adminAuth, d.projectHandler.DeleteProject)
		}

		education := v1.Group("/education")
		{
			education.GET("", d.educationHandler.ListEducation)
			education.GET("/all", d.adminAuth, d.educationHandler.ListAllEducation)
			education.POST("", d.adminAuth, d.educationHandler.CreateEducation)
			education.PUT("/reorder", d.adminAuth, d.educationHandler.ReorderEducation)
			education.PUT("/:id", d.adminAuth, d.educationHandler.UpdateEducation)
			education.DELETE("/:id", d.adminAuth, d.educationHandler.DeleteEducation)
		}

		experience := v1.Group("/experience")
		{
			experience.GET("", d.experienceHandler.ListExperience)
			experience.GET("/all", d.adminAuth, d.experienceHandler.ListAllExperience)
			experience.POST("", d.adminAuth, d.experienceHandler.CreateExperience)
			experience.PUT("/reorder", d.adminAuth, d.experienceHandler.ReorderExperience)
			experience.PUT("/:id", d.adminAuth, d.experienceHandler.UpdateExperience)
			experience.DELETE("/:id", d.adminAuth, d.experienceHandler.DeleteExperience)
		}

		certificates := v1.Group("/certificates")
		{
			certificates.GET("", d.certificateHandler.ListCertificates)
			certificates.GET("/all", d.adminAuth, d.certificateHandler.ListAllCertificates)
			certificates.POST("", d.adminAuth, d.certificateHandler.CreateCertificate)
			certificates.PUT("/:id", d.adminAuth, d.certificateHandler.UpdateCertificate)
			certificates.DELETE("/:id", d.adminAuth, d.certificateHandler.DeleteCertificate)
		}

		messages := v1.Group("/messages")
		{
			messages.POST("", middleware.IdempotencyMiddleware(), d.messageHandler.CreateMessage)
			messages.GET("", d.adminAuth, d.messageHandler.ListMessages)
			messages.PUT("/:id/read", d.adminAuth, d.messageHandler.MarkMessageRead)
			messages.DELETE("/:id", d.adminAuth, d.messageHandler.DeleteMessage)
		}

		v1.POST("/upload", d.adminAuth, d.uploadHandler.UploadImage)
	}
}
