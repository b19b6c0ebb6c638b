// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./approval_history.go -destination=../mocks/mock_approval_history_repository.go -package=mocks ApprovalHistoryRepositoryIface
