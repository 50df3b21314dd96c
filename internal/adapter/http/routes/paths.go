package routes

import (
	"net/http"

	"estimatepro/internal/adapter/http/handlers"
	"estimatepro/internal/adapter/http/middleware"
	"estimatepro/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathBuilder  = "/builder"
	PathLeads    = "/leads"
	PathSurveys  = "/surveys"
	PathPayments = "/billing/payments"
	PathWebhooks = "/webhooks"
	PathAdmin    = "/admin"
)

func addHealthRoutes(r gin.IRoutes) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, authenticated gin.HandlerFunc) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.POST("/password/forgot", h.RequestPasswordReset)
		auth.POST("/password/reset", h.ResetPassword)
		auth.GET("/me", authenticated, h.Me)
	}
}

// Public client survey, not gated on the builder's subscription.
func addSurveyRoutes(rg *gin.RouterGroup, h *handlers.SurveyHandler) {
	surveys := rg.Group(PathSurveys)
	{
		surveys.GET("/:slug", h.GetSurvey)
		surveys.POST("/:slug", h.SubmitSurvey)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.SubscriptionPaymentHandler) {
	rg.POST(PathWebhooks+"/mercadopago", h.MercadoPagoWebhook)
}

func addBuilderRoutes(rg *gin.RouterGroup, h *handlers.BuilderHandler, subscribed gin.HandlerFunc) {
	builder := rg.Group(PathBuilder)
	{
		builder.GET("/profile", h.GetProfile)
		builder.PUT("/profile", h.UpdateProfile)
		builder.POST("/survey-link", h.RegenerateSurveySlug)
	}

	pricing := builder.Group("/pricing", subscribed)
	{
		pricing.GET("", h.GetPricing)
		pricing.PUT("", h.UpdatePricing)
		pricing.GET("/export", h.ExportPricing)
		pricing.POST("/import", h.ImportPricing)
		pricing.POST("/preview", h.PreviewEstimate)
	}
}

func addLeadRoutes(rg *gin.RouterGroup, h *handlers.LeadHandler, subscribed gin.HandlerFunc) {
	leads := rg.Group(PathLeads, subscribed)
	{
		leads.GET("", h.ListLeads)
		leads.GET("/:id", h.GetLead)
		leads.PATCH("/:id/status", h.UpdateLeadStatus)
		leads.PATCH("/:id/notes", h.UpdateLeadNotes)
		leads.DELETE("/:id", h.DeleteLead)
	}
}

// Billing stays reachable without a subscription so an expired trial can pay.
func addBillingRoutes(rg *gin.RouterGroup, h *handlers.SubscriptionPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", h.CreatePayment)
		payments.GET("", h.ListPayments)
		payments.GET("/:id", h.GetPayment)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/summary", h.Summary)
		admin.GET("/builders", h.ListBuilders)
		admin.GET("/builders/:id", h.GetBuilder)
		admin.PATCH("/builders/:id/access", h.SetBuilderAccess)
		admin.GET("/builders/:id/pricing", h.GetBuilderPricing)
		admin.PUT("/builders/:id/pricing", h.UpdateBuilderPricing)
		admin.GET("/leads", h.ListLeads)
	}
}
