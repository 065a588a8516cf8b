package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mahimamj/bdspro/pkg/middleware"
	"github.com/mahimamj/bdspro/pkg/service"
)

type Handler struct {
	service    *service.Service
	adminEmail string
}

func NewHandler(service *service.Service, adminEmail string) *Handler {
	return &Handler{
		service:    service,
		adminEmail: adminEmail,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://bdspro-fawn.vercel.app", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.Static("/uploads", "./uploads")

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
	}

	api := router.Group("/api")
	{
		api.POST("/deposits", h.SubmitDeposit)
		api.GET("/deposits", h.ListUserDeposits)
		api.GET("/referrals", h.GetReferralSummary)
		api.GET("/transactions", h.ListTransactions)
		api.GET("/rates/convert", h.ConvertRate)

		authorized := api.Group("/", middleware.UserIdentity(h.service.Authorization))
		{
			authorized.POST("/withdrawals", h.CreateWithdrawal)
		}

		admin := api.Group("/admin",
			middleware.UserIdentity(h.service.Authorization),
			middleware.AdminOnly(h.adminEmail))
		{
			admin.GET("/deposits", h.ListDeposits)
			admin.PUT("/deposits/:id", h.UpdateDeposit)
			admin.GET("/withdrawals", h.ListWithdrawals)
			admin.PUT("/withdrawals/:id", h.UpdateWithdrawal)
		}
	}
	return router
}
