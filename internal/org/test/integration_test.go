package test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gartstein/orgchart/internal/org/controller"
	"github.com/gartstein/orgchart/internal/org/db"
	e "github.com/gartstein/orgchart/internal/org/errors"
	"github.com/gartstein/orgchart/internal/org/events"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/gartstein/orgchart/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// The suite talks to a real PostgreSQL (and optionally Kafka). It runs only
// when ORGCHART_INTEGRATION is set, e.g. against docker compose services.
const (
	envEnabled = "ORGCHART_INTEGRATION"
	envDBHost  = "ORGCHART_TEST_DB_HOST"
	envBrokers = "ORGCHART_TEST_KAFKA_BROKERS"
	testTopic  = "org-events-test"
)

type IntegrationTestSuite struct {
	suite.Suite
	dbRepo      *db.Repository
	logger      *zap.Logger
	testTimeout time.Duration
}

func TestIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests")
	}
	if os.Getenv(envEnabled) == "" {
		t.Skipf("Skipping integration tests, %s is not set", envEnabled)
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	s.logger = zap.NewNop()
	s.testTimeout = 20 * time.Second

	repo, err := initializeDBWithRetry()
	s.Require().NoError(err, "Database initialization failed")
	s.dbRepo = repo
	s.Require().NoError(s.dbRepo.SeedRoles(context.Background()))
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.dbRepo != nil {
		_ = s.dbRepo.Close()
	}
}

func (s *IntegrationTestSuite) SetupTest() {
	ctx, cancel := context.WithTimeout(context.Background(), s.testTimeout)
	defer cancel()

	err := s.dbRepo.Exec(ctx, "TRUNCATE TABLE activity_logs, employees, departments CASCADE")
	s.Require().NoError(err, "Failed to clean database")
}

func initializeDBWithRetry() (*db.Repository, error) {
	host := os.Getenv(envDBHost)
	if host == "" {
		host = "localhost"
	}
	cfg := &db.Config{
		Host:     host,
		Port:     5432,
		User:     "test",
		Password: "test",
		DBName:   "test",
		SSLMode:  "disable",
	}

	var repo *db.Repository
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	err := backoff.Retry(func() error {
		var err error
		repo, err = db.NewRepository(cfg)
		return err
	}, policy)
	return repo, err
}

func initializeKafkaWithRetry(brokers []string) (*events.Producer, *kafka.Reader, error) {
	var producer *events.Producer
	err := backoff.Retry(func() error {
		var err error
		producer, err = events.NewProducer(brokers, zap.NewNop(), testTopic)
		if err != nil {
			return fmt.Errorf("failed to create Kafka producer: %w", err)
		}
		return nil
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
	if err != nil {
		return nil, nil, err
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       testTopic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
	return producer, reader, nil
}

// seed creates a department with a head and two staff members reporting to it.
func (s *IntegrationTestSuite) seed(ctx context.Context, svc *controller.OrgService) (*models.Department, *models.Employee, []*models.Employee) {
	dept, err := svc.CreateDepartment(ctx, &models.CreateDepartment{Name: "Sales", Code: "SALES"})
	s.Require().NoError(err)

	head, err := svc.CreateEmployee(ctx, &models.CreateEmployee{
		Email: "helen.head@example.com", FullName: "Helen Head", RoleName: models.RoleDeptManager,
	})
	s.Require().NoError(err)
	_, err = svc.AssignManager(ctx, models.AssignManagerRequest{DepartmentID: dept.ID, ManagerID: &head.ID})
	s.Require().NoError(err)

	var staff []*models.Employee
	for _, name := range []string{"Sam Staff", "Sue Staff"} {
		emp, err := svc.CreateEmployee(ctx, &models.CreateEmployee{
			Email:        strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
			FullName:     name,
			DepartmentID: &dept.ID,
		})
		s.Require().NoError(err)
		staff = append(staff, emp)
	}
	return dept, head, staff
}

func (s *IntegrationTestSuite) TestRelationshipFlow() {
	ctx, cancel := context.WithTimeout(context.Background(), s.testTimeout)
	defer cancel()
	svc := controller.NewOrgService(s.dbRepo, events.NewRecorder(s.dbRepo, s.logger), s.logger)

	dept, head, staff := s.seed(ctx, svc)
	for _, emp := range staff {
		s.Require().NotNil(emp.ManagerID)
		s.Equal(head.ID, *emp.ManagerID)
	}

	_, err := svc.RemoveEmployees(ctx, models.BulkRemoveRequest{DepartmentID: dept.ID, EmployeeIDs: []uuid.UUID{head.ID}})
	s.ErrorIs(err, e.ErrHeadRemoval)

	_, err = svc.DeleteDepartment(ctx, models.DeleteDepartmentRequest{ID: dept.ID})
	s.ErrorIs(err, e.ErrDepartmentNotEmpty)

	res, err := svc.DeleteDepartment(ctx, models.DeleteDepartmentRequest{ID: dept.ID, Force: true})
	s.Require().NoError(err)
	s.Len(res.Detached, 3)

	for _, id := range res.Detached {
		emp, err := s.dbRepo.GetEmployee(ctx, id)
		s.Require().NoError(err)
		s.Nil(emp.DepartmentID)
		s.Nil(emp.ManagerID)
	}

	activity, err := svc.ListActivity(ctx, utils.Ptr(dept.ID), 0)
	s.Require().NoError(err)
	s.NotEmpty(activity)
	s.Equal(string(events.DepartmentDeleted), activity[0].Action)
}

func (s *IntegrationTestSuite) TestManagerUniqueness() {
	ctx, cancel := context.WithTimeout(context.Background(), s.testTimeout)
	defer cancel()
	svc := controller.NewOrgService(s.dbRepo, events.NewRecorder(s.dbRepo, s.logger), s.logger)

	_, head, _ := s.seed(ctx, svc)
	other, err := svc.CreateDepartment(ctx, &models.CreateDepartment{Name: "Support", Code: "SUP"})
	s.Require().NoError(err)

	_, err = svc.AssignManager(ctx, models.AssignManagerRequest{DepartmentID: other.ID, ManagerID: &head.ID})
	s.ErrorIs(err, e.ErrManagerAlreadyAssigned)

	err = s.dbRepo.SetDepartmentManager(ctx, other.ID, &head.ID)
	s.ErrorIs(err, e.ErrConflict, "the unique index backs the rule")
}

func (s *IntegrationTestSuite) TestEventsPublished() {
	raw := os.Getenv(envBrokers)
	if raw == "" {
		s.T().Skipf("%s is not set", envBrokers)
	}
	producer, reader, err := initializeKafkaWithRetry(strings.Split(raw, ","))
	s.Require().NoError(err, "Kafka initialization failed")
	defer reader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	svc := controller.NewOrgService(s.dbRepo, producer, s.logger)
	dept, err := svc.CreateDepartment(ctx, &models.CreateDepartment{Name: "Kafka", Code: "KAFKA"})
	s.Require().NoError(err)
	producer.Close()

	event := s.consumeEvent(ctx, reader, events.DepartmentCreated, dept.ID)
	assert.Equal(s.T(), events.EntityDepartment, event.Entity)
}

func (s *IntegrationTestSuite) consumeEvent(ctx context.Context, reader *kafka.Reader, eventType events.EventType, subjectID uuid.UUID) events.Event {
	for {
		msg, err := reader.ReadMessage(ctx)
		require.NoError(s.T(), err, "no %s event received", eventType)

		if string(msg.Key) != subjectID.String() {
			s.T().Logf("Skipping message with unmatched key: %s", string(msg.Key))
			continue
		}
		var event events.Event
		require.NoError(s.T(), json.Unmarshal(msg.Value, &event))
		if event.Type != eventType {
			continue
		}
		return event
	}
}
