package restock

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Inventario-restock/internal/domain"
	"github.com/jhoicas/Inventario-restock/internal/domain/repository"
	"github.com/jhoicas/Inventario-restock/pkg/logger"
)

// DigestUseCase digest programado: un snapshot por cliente configurado,
// autenticado con el token de servicio.
type DigestUseCase struct {
	snapshots    *SnapshotUseCase
	serviceToken string
	customers    []string
	log          *logger.Logger
}

// NewDigestUseCase construye el digest.
func NewDigestUseCase(snapshots *SnapshotUseCase, serviceToken string, customers []string, log *logger.Logger) *DigestUseCase {
	return &DigestUseCase{
		snapshots:    snapshots,
		serviceToken: serviceToken,
		customers:    customers,
		log:          log.Component("restock.digest"),
	}
}

// Run procesa todos los clientes; el fallo de uno no detiene a los demás.
// Devuelve los errores unidos (nil si todos terminaron bien).
func (uc *DigestUseCase) Run(ctx context.Context) error {
	if uc.serviceToken == "" {
		return fmt.Errorf("digest sin BACKEND_SERVICE_TOKEN: %w", domain.ErrUnauthorized)
	}

	var errs []error
	ok := 0
	for _, customerID := range uc.customers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		cred := repository.Credentials{Token: uc.serviceToken, CustomerID: customerID}
		if _, err := uc.snapshots.Capture(ctx, cred, customerID); err != nil {
			uc.log.Error().Err(err).Str("customer_id", customerID).Msg("digest de cliente falló")
			errs = append(errs, fmt.Errorf("cliente %s: %w", customerID, err))
			continue
		}
		ok++
	}

	uc.log.Info().
		Int("customers", len(uc.customers)).
		Int("ok", ok).
		Int("failed", len(errs)).
		Msg("digest de reposición terminado")
	return errors.Join(errs...)
}
