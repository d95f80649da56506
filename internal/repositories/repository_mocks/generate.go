package repository_mocks

//go:generate mockgen -source=../interfaces.go -destination=repository_mocks.go -package=repository_mocks
//go:generate mockgen -source=../clients.go -destination=client_mocks.go -package=repository_mocks

// This file contains the go:generate directives to generate mocks for the repository
// interfaces and the AWS client subsets they depend on. To regenerate the mocks, run:
//   go generate ./internal/repositories/repository_mocks
