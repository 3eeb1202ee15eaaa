package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise committed.
	// All repository instances obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// CredentialRepo returns a CredentialRepository bound to the current transaction.
	CredentialRepo() CredentialRepository

	// AddressRepo returns an AddressRepository bound to the current transaction.
	AddressRepo() AddressRepository

	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// PrinterRepo returns a PrinterRepository bound to the current transaction.
	PrinterRepo() PrinterRepository

	// ServiceRepo returns a ServiceRepository bound to the current transaction.
	ServiceRepo() ServiceRepository

	// PromotionRepo returns a PromotionRepository bound to the current transaction.
	PromotionRepo() PromotionRepository

	// RefreshTokenRepo returns a RefreshTokenRepository bound to the current transaction.
	RefreshTokenRepo() RefreshTokenRepository
}
