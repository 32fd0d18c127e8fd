package modules

import (
	"draftroom/api/handlers"
	adminservice "draftroom/api/services/admin"
)

func initializeAdminHandler(deps *ModuleDependencies) *handlers.AdminHandler {
	adminDeps := &adminservice.AdminServiceDeps{
		DB:       deps.DB,
		Password: deps.AdminPassword,
		Logger:   deps.Logger.Named("admin"),
	}

	adminService := adminservice.NewAdminService(adminDeps)

	return handlers.NewAdminHandler(&handlers.AdminHandlerDependencies{
		Logger:       deps.Logger.Named("admin"),
		AdminService: adminService,
	})
}
