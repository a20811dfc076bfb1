// Package scheduler corre el motor de alertas de vencimiento en background con
// una expresión cron configurable.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/Activos-api/internal/application/alerts"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

// AlertScheduler dispara la generación de alertas para todas las empresas
// activas según la expresión cron configurada.
type AlertScheduler struct {
	cron      *cron.Cron
	expiry    *alerts.ExpiryUseCase
	companies repository.CompanyRepository
	log       *logger.Logger
}

// NewAlertScheduler construye el scheduler (sin arrancarlo).
func NewAlertScheduler(expiry *alerts.ExpiryUseCase, companies repository.CompanyRepository, log *logger.Logger) *AlertScheduler {
	return &AlertScheduler{
		cron:      cron.New(),
		expiry:    expiry,
		companies: companies,
		log:       log,
	}
}

// Start registra el job con la expresión cron y arranca el loop.
func (s *AlertScheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.runAll)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("cron", spec).Msg("scheduler de alertas iniciado")
	return nil
}

// Stop detiene el loop y espera a que termine el job en curso.
func (s *AlertScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// runAll recorre todas las empresas activas y genera sus alertas. Un error en
// una empresa no corta la corrida de las demás.
func (s *AlertScheduler) runAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	const pageSize = 100
	for offset := 0; ; offset += pageSize {
		companies, err := s.companies.List(ctx, pageSize, offset)
		if err != nil {
			s.log.Error().Err(err).Msg("scheduler: listar empresas")
			return
		}
		if len(companies) == 0 {
			return
		}
		for _, c := range companies {
			if !c.IsActive {
				continue
			}
			created, err := s.expiry.GenerateForCompany(ctx, c.ID)
			if err != nil {
				s.log.Error().Err(err).Str("company_id", c.ID).Msg("scheduler: generar alertas")
				continue
			}
			if created > 0 {
				s.log.Info().Str("company_id", c.ID).Int("created", created).Msg("scheduler: alertas generadas")
			}
		}
	}
}
