package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *usecase.ClientUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	VehicleUC   *usecase.VehicleUseCase
	ServiceUC   *usecase.ServiceUseCase
	AdvanceUC   *usecase.SalaryAdvanceUseCase
	ConditionUC *usecase.ContractualConditionUseCase
	ToiletUC    *usecase.ChemicalToiletUseCase
	LicenseUC   *usecase.LicenseUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *usecase.DashboardUseCase
	PDF         *pdf.ListingGenerator
	Cookies     Cookies
}

// Router registra las páginas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookies)

	// Públicas
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/forgot-password", authHandler.ForgotPage)
	app.Post("/forgot-password", authHandler.Forgot)
	app.Get(ForbiddenPath, authHandler.Forbidden)
	app.Get("/session/status", authHandler.SessionStatus)

	// Con sesión (cualquier rol)
	protected := app.Group("/", RequireSession(deps.AuthUC.Guard(), deps.Cookies))
	protected.Get("/", authHandler.Home)
	protected.Get("/cambiar-password", authHandler.ChangePasswordPage)
	protected.Post("/cambiar-password", authHandler.ChangePassword)

	// Secciones
	clients := clientSection(deps.ClientUC, deps.PDF)
	employees := employeeSection(deps.EmployeeUC, deps.PDF)
	vehicles := vehicleSection(deps.VehicleUC, deps.PDF)
	toilets := toiletSection(deps.ToiletUC, deps.PDF)
	users := userSection(deps.UserUC, deps.EmployeeUC, deps.PDF)
	conditions := conditionSection(deps.ConditionUC, deps.ClientUC, deps.PDF)
	services := serviceSection(deps.ServiceUC, deps.ClientUC, deps.PDF)
	advances := advanceSection(deps.AdvanceUC, deps.PDF)
	licenses := licenseSection(deps.LicenseUC, deps.EmployeeUC, deps.PDF)

	clients.Links = []RowLink{{
		Label: "Condiciones",
		Href:  func(id int) string { return "/admin/condiciones/cliente/" + itoa(id) },
	}}

	dashboard := &DashboardHandler{
		dashboard:        deps.DashboardUC,
		services:         deps.ServiceUC,
		licenses:         deps.LicenseUC,
		conditions:       deps.ConditionUC,
		clients:          deps.ClientUC,
		conditionSection: conditions,
		licenseSection:   licenses,
	}

	// Admin
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/", dashboard.Admin)
	admin.Get("/licencias/por-vencer", dashboard.UpcomingLicenses)
	admin.Get("/condiciones/cliente/:id", dashboard.ClientConditions)
	clients.Mount(admin, "/admin")
	employees.Mount(admin, "/admin")
	vehicles.Mount(admin, "/admin")
	toilets.Mount(admin, "/admin")
	users.Mount(admin, "/admin")
	conditions.Mount(admin, "/admin")
	services.Mount(admin, "/admin")
	advances.Mount(admin, "/admin")
	licenses.Mount(admin, "/admin")

	// Supervisor: consulta, más el cambio de estado de servicios
	supervisor := protected.Group("/supervisor", RequireRole(entity.RoleSupervisor, entity.RoleAdmin))
	supervisor.Get("/", dashboard.Supervisor)
	supServices := readOnly(services)
	supServices.Actions = services.Actions
	supServices.Mount(supervisor, "/supervisor")
	readOnly(toilets).Mount(supervisor, "/supervisor")
	readOnly(vehicles).Mount(supervisor, "/supervisor")
	readOnly(employees).Mount(supervisor, "/supervisor")
	readOnly(licenses).Mount(supervisor, "/supervisor")

	// Operario
	operario := NewOperarioHandler(deps.ServiceUC, deps.AdvanceUC)
	op := protected.Group(operarioHome, RequireRole(entity.RoleOperario))
	op.Get("/", operario.Services)
	op.Post("/servicios/:id/iniciar", operario.Start)
	op.Post("/servicios/:id/completar", operario.Complete)
	op.Get("/adelantos", operario.Advances)
	op.Post("/adelantos", operario.RequestAdvance)
}
