// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gymdesk/internal/delivery/http/middleware"
	"gymdesk/internal/delivery/http/router/handler"
	"gymdesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EmployeeHandler *handler.EmployeeHandler
	PackageHandler  *handler.PackageHandler
	MemberHandler   *handler.MemberHandler
	LedgerHandler   *handler.LedgerHandler
	ImportHandler   *handler.ImportHandler
	ReminderHandler *handler.ReminderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	employeeHandler *handler.EmployeeHandler
	packageHandler  *handler.PackageHandler
	memberHandler   *handler.MemberHandler
	ledgerHandler   *handler.LedgerHandler
	importHandler   *handler.ImportHandler
	reminderHandler *handler.ReminderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		employeeHandler: params.EmployeeHandler,
		packageHandler:  params.PackageHandler,
		memberHandler:   params.MemberHandler,
		ledgerHandler:   params.LedgerHandler,
		importHandler:   params.ImportHandler,
		reminderHandler: params.ReminderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	api := e.Group("/api")
	api.POST("/auth/login", r.employeeHandler.Login)

	// Everything below requires a logged in employee
	authed := api.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	authed.GET("/auth/me", r.employeeHandler.Me)

	employees := authed.Group("/employees", adminOnly)
	{
		employees.GET("", r.employeeHandler.ListEmployees)
		employees.POST("", r.employeeHandler.CreateEmployee)
	}

	packages := authed.Group("/packages")
	{
		packages.GET("", r.packageHandler.ListPackages)
		packages.POST("", r.packageHandler.CreatePackage, adminOnly)
		packages.POST("/quote", r.packageHandler.Quote)
		packages.PUT("/display-order", r.packageHandler.UpdateDisplayOrder, adminOnly)
		packages.GET("/import/template", r.packageHandler.ImportTemplate, adminOnly)
		packages.POST("/import/bulk", r.packageHandler.ImportPackages, adminOnly)
		packages.GET("/:id", r.packageHandler.GetPackage)
		packages.PUT("/:id", r.packageHandler.UpdatePackage, adminOnly)
		packages.DELETE("/:id", r.packageHandler.DeletePackage, adminOnly)
		packages.PATCH("/:id/toggle", r.packageHandler.TogglePackage, adminOnly)
		packages.POST("/:id/duplicate", r.packageHandler.DuplicatePackage, adminOnly)
	}

	members := authed.Group("/members")
	{
		members.GET("", r.memberHandler.ListMembers)
		members.POST("", r.memberHandler.CreateMember)
		members.GET("/expiring", r.memberHandler.ListExpiringMembers)
		members.GET("/statistics", r.memberHandler.GetStatistics, adminOnly)
		members.GET("/reports/revenue", r.memberHandler.GetRevenueReport, adminOnly)
		members.POST("/bulk-delete", r.memberHandler.BulkDeleteMembers, adminOnly)
		members.GET("/registration/:registrationNumber", r.memberHandler.GetMemberByRegistrationNumber)

		members.GET("/import/template", r.importHandler.Template, adminOnly)
		members.POST("/import/validate", r.importHandler.ValidateImport, adminOnly)
		members.POST("/import", r.importHandler.ImportMembers, adminOnly)
		members.POST("/reminders/trigger", r.reminderHandler.TriggerReminders, adminOnly)

		members.GET("/:id", r.memberHandler.GetMember)
		members.PUT("/:id", r.memberHandler.UpdateMember)
		members.DELETE("/:id", r.memberHandler.DeleteMember, adminOnly)
		members.PATCH("/:id/restore", r.memberHandler.RestoreMember, adminOnly)
		members.PATCH("/:id/suspend", r.memberHandler.SuspendMember, adminOnly)
		members.PATCH("/:id/reinstate", r.memberHandler.ReinstateMember, adminOnly)
		members.GET("/:id/card", r.memberHandler.GetMemberCard)

		members.GET("/:id/payments", r.memberHandler.ListPayments)
		members.POST("/:id/payments", r.ledgerHandler.RecordPayment)

		members.POST("/:id/packages", r.ledgerHandler.AddPackage)
		members.POST("/:id/packages/upgrade", r.ledgerHandler.UpgradePackage)
		members.POST("/:id/packages/:instanceId/renew", r.ledgerHandler.RenewPackage)
		members.PATCH("/:id/packages/:instanceId/extend", r.ledgerHandler.ExtendPackage)
		members.PATCH("/:id/packages/:instanceId/freeze", r.ledgerHandler.FreezePackage)
		members.PATCH("/:id/packages/:instanceId/expire", r.ledgerHandler.ExpirePackage)
		members.PATCH("/:id/packages/:instanceId/cancel", r.ledgerHandler.CancelPackage, adminOnly)
		members.PATCH("/:id/packages/:instanceId/start-date", r.ledgerHandler.ChangeStartDate, adminOnly)
	}
}
