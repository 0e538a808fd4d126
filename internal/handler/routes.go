package handler

import (
	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, categoryHandler *CategoryHandler, transactionHandler *TransactionHandler, budgetHandler *BudgetHandler, goalHandler *GoalHandler, reportHandler *ReportHandler, notificationHandler *NotificationHandler, receiptHandler *ReceiptHandler) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(authMiddleware.Authenticate())
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Auth routes
	auth := api.Group("/auth")
	auth.GET("/me", authHandler.Me)

	// Category routes
	categories := api.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Receipt routes (nested under transactions)
	if receiptHandler != nil {
		transactions.POST("/:id/receipt", receiptHandler.AttachReceipt)
		transactions.GET("/:id/receipt", receiptHandler.GetReceiptURLs)
		transactions.DELETE("/:id/receipt", receiptHandler.DetachReceipt)
	}

	// Budget routes
	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.GET("/:id/status", budgetHandler.GetBudgetStatus)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Goal routes
	goals := api.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/summary", goalHandler.GetGoalSummary)
	goals.GET("/overdue", goalHandler.GetOverdueGoals)
	goals.GET("/search", goalHandler.SearchGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/contribute", goalHandler.Contribute)
	goals.PUT("/:id/progress", goalHandler.SetProgress)
	goals.POST("/:id/complete", goalHandler.CompleteGoal)
	goals.POST("/:id/cancel", goalHandler.CancelGoal)
	goals.POST("/:id/reactivate", goalHandler.ReactivateGoal)

	// Report routes
	reports := api.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/trend", reportHandler.GetTrend)

	// Notification routes
	notifications := api.Group("/notifications")
	notifications.GET("", notificationHandler.GetNotifications)
	notifications.GET("/unread-count", notificationHandler.GetUnreadCount)
	notifications.PATCH("/:id/read", notificationHandler.MarkRead)
}
