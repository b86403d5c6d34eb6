// Package scheduler programa el digest de reposición con expresiones cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/Inventario-restock/pkg/logger"
)

// DefaultJobTimeout tope de cada ejecución.
const DefaultJobTimeout = 5 * time.Minute

// Job tarea programable (DigestUseCase la implementa).
type Job interface {
	Run(ctx context.Context) error
}

// Scheduler envuelve cron con logging y timeout por ejecución.
type Scheduler struct {
	cron    *cron.Cron
	job     Job
	expr    string
	timeout time.Duration
	log     *logger.Logger
}

// New valida la expresión (5 campos: min, hora, día, mes, día de semana).
// Con expr vacío el scheduler queda desactivado y Start/Stop no hacen nada.
func New(expr string, job Job, log *logger.Logger) (*Scheduler, error) {
	s := &Scheduler{
		job:     job,
		expr:    expr,
		timeout: DefaultJobTimeout,
		log:     log.Component("scheduler"),
	}
	if expr == "" {
		return s, nil
	}

	s.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := s.cron.AddFunc(expr, s.runOnce); err != nil {
		return nil, fmt.Errorf("expresión cron %q: %w", expr, err)
	}
	return s, nil
}

// Enabled indica si hay una expresión programada.
func (s *Scheduler) Enabled() bool { return s.cron != nil }

// Start arranca cron en segundo plano.
func (s *Scheduler) Start() {
	if s.cron == nil {
		s.log.Info().Msg("digest desactivado (DIGEST_CRON vacío)")
		return
	}
	s.log.Info().Str("cron", s.expr).Msg("iniciando scheduler")
	s.cron.Start()
}

// Stop detiene cron y espera a que termine la ejecución en curso o a que ctx expire.
func (s *Scheduler) Stop(ctx context.Context) {
	if s.cron == nil {
		return
	}
	s.log.Info().Msg("deteniendo scheduler")
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler detenido con una ejecución en curso")
	}
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.job.Run(ctx); err != nil {
		s.log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("digest con errores")
		return
	}
	s.log.Info().Dur("elapsed", time.Since(start)).Msg("digest ejecutado")
}

// RunNow ejecuta el job fuera de la programación (DIGEST_RUN_ON_START).
func (s *Scheduler) RunNow() { s.runOnce() }
