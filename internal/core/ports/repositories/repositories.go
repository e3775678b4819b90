package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo             UserRepositoryFacade
	CondominiumRepo      CondominiumRepositoryWithTx
	ApartmentRepo        ApartmentRepositoryFacade
	MaintenanceFeeRepo   MaintenanceFeeRepositoryFacade
	CommonServiceRepo    CommonServiceRepositoryFacade
	PaymentRepo          PaymentRepositoryWithTx
	StatementRepo        StatementRepositoryFacade
	MonthlyStatementRepo MonthlyStatementRepositoryFacade
}
