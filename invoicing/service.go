package invoicing

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/invoicing/business/catalog"
	"encore.app/invoicing/business/draft"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/events"
	"encore.app/invoicing/gateway/propertycore"
	"encore.app/invoicing/repository"
	"encore.app/invoicing/repository/drafts"
	"encore.app/invoicing/workflow"
)

var invoicingDB = sqldb.NewDatabase("invoicing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

const taskQueue = "invoicing-drafts"

//encore:service
type Service struct {
	business  draft.Business
	catalog   catalog.Business
	temporal  client.Client
	worker    worker.Worker
	publisher events.Publisher
}

func initService() (*Service, error) {
	pool := sqldb.Driver[*pgxpool.Pool](invoicingDB)

	repo := repository.NewRepository(pool)
	draftQueries := drafts.New(pool)
	stateMachine := domain.NewDraftStateMachine(pool, draftQueries)

	gateway := propertycore.NewClient(envOr("PROPERTY_CORE_URL", "http://localhost:8080"), 10*time.Second)

	publisher := newPublisher()

	catalogBusiness := catalog.NewCatalogBusiness(gateway, repo.Snapshots)
	draftBusiness := draft.NewDraftBusiness(repo.Drafts, repo.Fees, gateway, publisher, stateMachine)

	temporalClient, err := client.Dial(client.Options{
		HostPort: envOr("TEMPORAL_ADDRESS", client.DefaultHostPort),
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	workflow.SetActivityDependencies(draftBusiness)

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.DraftSession)
	w.RegisterActivity(workflow.RecomputeDraftTotalActivity)
	w.RegisterActivity(workflow.DiscardDraftActivity)
	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("invoicing service initialized", "task_queue", taskQueue)

	return &Service{
		business:  draftBusiness,
		catalog:   catalogBusiness,
		temporal:  temporalClient,
		worker:    w,
		publisher: publisher,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			rlog.Error("failed to close event publisher", "error", err)
		}
	}
}

// newPublisher wires the Kafka event publisher, or a no-op publisher when no
// broker is configured.
func newPublisher() events.Publisher {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		rlog.Info("no kafka broker configured, domain events are dropped")
		return events.NopPublisher{}
	}
	return events.NewKafkaPublisher(broker, envOr("KAFKA_TOPIC", "invoicing.events"))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
