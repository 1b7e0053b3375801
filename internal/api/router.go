package api

import (
	"github.com/dashteam/dashteam/internal/api/controller"
	"github.com/dashteam/dashteam/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// Controllers 路由需要的所有 controller
type Controllers struct {
	Auth       *controller.AuthController
	Contact    *controller.ContactController
	Followup   *controller.FollowupController
	Finance    *controller.FinanceController
	Calendar   *controller.CalendarController
	Sheet      *controller.SheetController
	Activity   *controller.ActivityController
	BattlePlan *controller.BattlePlanController
	Assistant  *controller.AssistantController
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, ctrls Controllers) {
	r.Use(middleware.Cors())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/api/auth")
	{
		public.POST("/register", ctrls.Auth.Register)
		public.POST("/login", ctrls.Auth.Login)
	}

	protected := r.Group("/api")
	protected.Use(middleware.JWTAuth())
	{
		protected.PATCH("/user/profile", ctrls.Auth.UpdateProfile)

		protected.GET("/contacts", ctrls.Contact.List)
		protected.POST("/contacts", ctrls.Contact.Create)
		protected.GET("/contacts/:id", ctrls.Contact.Get)
		protected.PATCH("/contacts/:id", ctrls.Contact.Update)
		protected.DELETE("/contacts/:id", ctrls.Contact.Delete)

		protected.GET("/followups", ctrls.Followup.List)
		protected.POST("/followups", ctrls.Followup.Create)
		protected.PATCH("/followups/:id", ctrls.Followup.Update)
		protected.DELETE("/followups/:id", ctrls.Followup.Delete)
		protected.GET("/followups/:id/checklist", ctrls.Followup.ListChecklist)
		protected.POST("/followups/:id/checklist", ctrls.Followup.AddChecklistItem)
		protected.POST("/followups/:id/checklist/sync", ctrls.Followup.SyncChecklist)
		protected.PATCH("/checklist/:itemId", ctrls.Followup.UpdateChecklistItem)
		protected.DELETE("/checklist/:itemId", ctrls.Followup.DeleteChecklistItem)

		protected.GET("/transactions", ctrls.Finance.ListTransactions)
		protected.POST("/transactions", ctrls.Finance.CreateTransaction)
		protected.DELETE("/transactions/:id", ctrls.Finance.DeleteTransaction)

		protected.GET("/subscriptions", ctrls.Finance.ListSubscriptions)
		protected.POST("/subscriptions", ctrls.Finance.CreateSubscription)
		protected.DELETE("/subscriptions/:id", ctrls.Finance.DeleteSubscription)

		protected.GET("/calendar", ctrls.Calendar.Events)

		protected.GET("/sheets", ctrls.Sheet.List)
		protected.POST("/sheets", ctrls.Sheet.Connect)
		protected.DELETE("/sheets", ctrls.Sheet.Disconnect)
		protected.POST("/sheets/:sheetId/sync", ctrls.Sheet.Sync)
		protected.GET("/sheets/stats", ctrls.Sheet.Stats)

		protected.GET("/activities", ctrls.Activity.List)
		protected.POST("/activities", ctrls.Activity.Record)
		protected.DELETE("/activities", ctrls.Activity.Clear)

		protected.GET("/battleplan", ctrls.BattlePlan.Get)
		protected.PATCH("/battleplan/:day", ctrls.BattlePlan.UpdateDay)

		protected.POST("/assistant/chat", ctrls.Assistant.Chat)
	}
}
