package service

import (
	"github.com/MKhiriev/go-rest-auth/internal/config"
	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/store"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	AdminUserService AdminUserService
	PostService      PostService
	ProfileService   ProfileService
	AppInfoService   AppInfoService
}

// NewServices wires every service to the repositories in storages. The
// password hasher and its slot pool are shared by all services.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher := NewPasswordHasher(cfg.App, logger)
	tokens := NewTokenService(cfg.App, logger)

	appInfo, err := NewAppInfoService(cfg.App, storages.Pinger, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, hasher, tokens, cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, hasher, logger),
		AdminUserService: NewAdminUserService(storages.UserRepository, hasher, cfg.App, logger),
		PostService:      NewPostService(storages.PostRepository, logger),
		ProfileService:   NewProfileService(storages.ProfileRepository, logger),
		AppInfoService:   appInfo,
	}, nil
}
