package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"pbmledger/internal/audit"
	"pbmledger/internal/platform/metrics"
	"pbmledger/internal/registry/store"
	id "pbmledger/pkg/domain"
	dErrors "pbmledger/pkg/domain-errors"
	"pbmledger/pkg/requestcontext"
)

type RegistryServiceSuite struct {
	suite.Suite
	svc       *Service
	publisher *audit.Publisher
	callerCtx context.Context
	now       time.Time
}

func (s *RegistryServiceSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.publisher = audit.NewPublisher(audit.NewInMemoryStore(), logger)
	s.svc = New(store.NewInMemory(), s.publisher, metrics.NewForTest(), logger)

	s.now = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	s.callerCtx = requestcontext.WithTime(
		requestcontext.WithCaller(context.Background(), "bank-dbs"), s.now)
}

func TestRegistryServiceSuite(t *testing.T) {
	suite.Run(t, new(RegistryServiceSuite))
}

func (s *RegistryServiceSuite) TestCreateType() {
	s.Run("assigns sequential ids and records the creator", func() {
		first, err := s.svc.CreateType(s.callerCtx, id.CategorySettlement, s.now.Add(24*time.Hour), 100)
		s.Require().NoError(err)
		s.Equal(id.TypeID(1), first.ID)
		s.Equal(id.Identity("bank-dbs"), first.Creator)
		s.Equal(s.now, first.CreatedAt)

		second, err := s.svc.CreateType(s.callerCtx, id.CategoryRepatriation, s.now.Add(48*time.Hour), 50)
		s.Require().NoError(err)
		s.Equal(id.TypeID(2), second.ID)
	})

	s.Run("rejects missing caller identity", func() {
		_, err := s.svc.CreateType(context.Background(), id.CategorySettlement, s.now.Add(time.Hour), 100)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("rejects invalid category", func() {
		_, err := s.svc.CreateType(s.callerCtx, id.Category("premium"), s.now.Add(time.Hour), 100)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidArgument))
	})

	s.Run("rejects zero face value", func() {
		_, err := s.svc.CreateType(s.callerCtx, id.CategorySettlement, s.now.Add(time.Hour), 0)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidArgument))
	})

	s.Run("rejects settlement time not in the future", func() {
		_, err := s.svc.CreateType(s.callerCtx, id.CategorySettlement, s.now, 100)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidArgument))

		_, err = s.svc.CreateType(s.callerCtx, id.CategorySettlement, s.now.Add(-time.Minute), 100)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidArgument))
	})

	s.Run("frozen types skip the future settlement check", func() {
		entry, err := s.svc.CreateType(s.callerCtx, id.CategoryFrozen, s.now.Add(-time.Hour), 100)
		s.Require().NoError(err)
		s.Equal(id.CategoryFrozen, entry.Category)
	})

	s.Run("emits a creation audit event", func() {
		entry, err := s.svc.CreateType(s.callerCtx, id.CategorySettlement, s.now.Add(time.Hour), 100)
		s.Require().NoError(err)

		events, err := s.publisher.List(s.callerCtx)
		s.Require().NoError(err)
		s.Require().NotEmpty(events)
		last := events[len(events)-1]
		s.Equal(audit.EventTypeCreated, last.Action)
		s.Equal(entry.ID, last.TypeID)
		s.Equal(id.Identity("bank-dbs"), last.Actor)
	})
}

func (s *RegistryServiceSuite) TestGet() {
	s.Run("returns a created entry", func() {
		created, err := s.svc.CreateType(s.callerCtx, id.CategorySettlement, s.now.Add(time.Hour), 100)
		s.Require().NoError(err)

		found, err := s.svc.Get(s.callerCtx, created.ID)
		s.Require().NoError(err)
		s.Equal(created.ID, found.ID)
		s.Equal(created.FaceValue, found.FaceValue)
	})

	s.Run("unknown id maps to not found", func() {
		_, err := s.svc.Get(s.callerCtx, 999)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *RegistryServiceSuite) TestEntriesAreImmutable() {
	created, err := s.svc.CreateType(s.callerCtx, id.CategorySettlement, s.now.Add(time.Hour), 100)
	s.Require().NoError(err)

	created.FaceValue = 1
	found, err := s.svc.Get(s.callerCtx, created.ID)
	s.Require().NoError(err)
	s.Equal(uint64(100), found.FaceValue)
}
