package service

import (
	"context"
	"time"

	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/logger"
	"company-profile-be/internal/repository/contract"
	"company-profile-be/internal/repository/unitofwork"

	"github.com/robfig/cron/v3"
)

// SystemActor is recorded as the actor of scheduled status changes.
const SystemActor = "system"

type MaintenanceReport struct {
	ClosedCareers   int `json:"closed_careers"`
	StartedEvents   int `json:"started_events"`
	CompletedEvents int `json:"completed_events"`
}

// MaintenanceService moves time-bound content along: careers past their
// application deadline close, events start and complete by their dates.
// Changes go through the resource services so caches and events follow.
type MaintenanceService struct {
	uowFactory unitofwork.RepositoryFactory
	careers    IResourceService[model.Career]
	events     IResourceService[model.Event]
	logger     logger.ILogger
	now        func() time.Time
}

func NewMaintenanceService(
	uowFactory unitofwork.RepositoryFactory,
	careers IResourceService[model.Career],
	events IResourceService[model.Event],
	log logger.ILogger,
) *MaintenanceService {
	return &MaintenanceService{
		uowFactory: uowFactory,
		careers:    careers,
		events:     events,
		logger:     log,
		now:        time.Now,
	}
}

// Start schedules RunOnce on spec (standard cron syntax or descriptors
// such as "@every 15m"). Stop the returned cron on shutdown.
func (s *MaintenanceService) Start(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		report, err := s.RunOnce(ctx)
		if err != nil {
			s.logger.Error("Maintenance", "Scheduled run failed", map[string]interface{}{"error": err.Error()})
			return
		}
		if report != (MaintenanceReport{}) {
			s.logger.Info("Maintenance", "Scheduled run finished", map[string]interface{}{"report": report})
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func (s *MaintenanceService) RunOnce(ctx context.Context) (MaintenanceReport, error) {
	var report MaintenanceReport
	now := s.now()

	closed, err := s.closeExpiredCareers(ctx, now)
	report.ClosedCareers = closed
	if err != nil {
		return report, err
	}

	report.StartedEvents, report.CompletedEvents, err = s.advanceEvents(ctx, now)
	return report, err
}

func (s *MaintenanceService) closeExpiredCareers(ctx context.Context, now time.Time) (int, error) {
	repo := unitofwork.Repository[model.Career](s.uowFactory.NewUnitOfWork(ctx))
	_, rows, err := repo.FindMany(ctx, contract.Query{
		Filters: []contract.Filter{
			contract.Eq("status", model.CareerStatusOpen),
			contract.Lt("application_deadline", now),
		},
	})
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, c := range rows {
		if _, err := s.careers.UpdateStatus(ctx, c.Id, model.CareerStatusClosed, SystemActor); err != nil {
			return closed, err
		}
		closed++
	}
	return closed, nil
}

// advanceEvents treats an event without an end date as ending when it starts.
func (s *MaintenanceService) advanceEvents(ctx context.Context, now time.Time) (started, completed int, err error) {
	repo := unitofwork.Repository[model.Event](s.uowFactory.NewUnitOfWork(ctx))
	_, rows, err := repo.FindMany(ctx, contract.Query{
		Filters: []contract.Filter{
			contract.In("status", model.EventStatusUpcoming, model.EventStatusOngoing),
			contract.Lt("event_date", now),
		},
	})
	if err != nil {
		return 0, 0, err
	}

	for _, e := range rows {
		end := e.EventDate
		if e.EndDate != nil {
			end = *e.EndDate
		}

		next := ""
		switch {
		case end.Before(now):
			next = model.EventStatusCompleted
		case e.Status == model.EventStatusUpcoming:
			next = model.EventStatusOngoing
		default:
			continue
		}

		if _, err := s.events.UpdateStatus(ctx, e.Id, next, SystemActor); err != nil {
			return started, completed, err
		}
		if next == model.EventStatusCompleted {
			completed++
		} else {
			started++
		}
	}
	return started, completed, nil
}
