package services

import (
	portsrepo "github.com/CondoSphere/condo_management_app/internal/core/ports/repositories"
	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// Create the container structure first
	container := &portssvc.ServiceContainer{}

	// Initialize condominium service first since other services depend on it
	// for membership authorization
	container.Condominium = NewCondominiumService(repos.CondominiumRepo)

	condominiumAuthorizer := container.Condominium.(portssvc.CondominiumAuthorizerSvc)

	container.Apartment = NewApartmentService(
		repos.ApartmentRepo,
		WithApartmentCondominiumAuthorizer(condominiumAuthorizer),
	)

	container.MaintenanceFee = NewMaintenanceFeeService(
		repos.MaintenanceFeeRepo,
		WithFeeCondominiumAuthorizer(condominiumAuthorizer),
	)

	container.CommonService = NewCommonServiceService(
		repos.CommonServiceRepo,
		WithCommonServiceCondominiumAuthorizer(condominiumAuthorizer),
	)

	container.Payment = NewPaymentService(
		repos.PaymentRepo,
		WithPaymentCondominiumAuthorizer(condominiumAuthorizer),
		WithPaymentApartmentRepository(repos.ApartmentRepo),
		WithPaymentFeeRepository(repos.MaintenanceFeeRepo),
		WithPaymentCommonServiceRepository(repos.CommonServiceRepo),
	)

	container.Statement = NewStatementService(
		repos.StatementRepo,
		WithStatementCondominiumAuthorizer(condominiumAuthorizer),
		WithStatementFeeRepository(repos.MaintenanceFeeRepo),
		WithStatementCondominiumRepository(repos.CondominiumRepo),
		WithIncludeNonCollectible(cfg.StatementIncludeNonCollectible),
	)

	container.MonthlyStatement = NewMonthlyStatementService(
		repos.MonthlyStatementRepo,
		WithMonthlyStatementCondominiumAuthorizer(condominiumAuthorizer),
		WithMonthlyStatementStatementRepository(repos.StatementRepo),
		WithMonthlyStatementFeeRepository(repos.MaintenanceFeeRepo),
		WithMonthlyStatementApartmentRepository(repos.ApartmentRepo),
	)

	container.User = NewUserService(repos.UserRepo)

	// Initialize TokenService
	container.TokenService = NewTokenService(cfg, container.User)

	// Initialize GoogleSignInSvcFacade
	container.GoogleSignIn = NewGoogleSignInService(cfg, container.User)

	return container
}
