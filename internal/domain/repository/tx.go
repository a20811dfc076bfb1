package repository

import "context"

// Atomic conjunto de repositorios atados a una misma transacción. Lo entrega
// TxRunner.Run; todo lo escrito a través de él se confirma o revierte junto.
type Atomic struct {
	Users         UserRepository
	Companies     CompanyRepository
	Memberships   MembershipRepository
	Assets        AssetRepository
	Contracts     ContractRepository
	Licenses      LicenseRepository
	Maintenance   MaintenanceRepository
	Activity      ActivityRepository
	Notifications NotificationRepository
	Support       SupportRepository
}

// TxRunner ejecuta fn dentro de una transacción. El patrón "mutación + entrada
// de bitácora" corre siempre por aquí para que ambas sean atómicas.
type TxRunner interface {
	Run(ctx context.Context, fn func(Atomic) error) error
}
