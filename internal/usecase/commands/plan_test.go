//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/akshattiwarii/Peakster/internal/domain/quota"
	"github.com/akshattiwarii/Peakster/internal/infra"
	"github.com/akshattiwarii/Peakster/internal/pkg/clock"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"
	"github.com/akshattiwarii/Peakster/internal/usecase/commands"
	"github.com/akshattiwarii/Peakster/tests/common/builder"
	commandsmock "github.com/akshattiwarii/Peakster/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PlanCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockQuotaRepo *commandsmock.MockQuotaRepository
	mockGenerator *commandsmock.MockItineraryGenerator
	clock         *clock.MockClock
	planCommands  commands.PlanCommands

	userID uuid.UUID
	now    time.Time
}

func (s *PlanCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQuotaRepo = commandsmock.NewMockQuotaRepository(s.mockCtrl)
	s.mockGenerator = commandsmock.NewMockItineraryGenerator(s.mockCtrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.planCommands = commands.NewPlanCommands(s.mockQuotaRepo, s.mockGenerator, s.clock)
	s.userID = uuid.New()
}

func (s *PlanCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPlanCommandsSuite(t *testing.T) {
	suite.Run(t, new(PlanCommandsTestSuite))
}

func (s *PlanCommandsTestSuite) TestPlanTrip_SpendsOneCredit() {
	req := builder.NewPlanBuilder().BuildDTO()
	snap := builder.NewQuotaSnapshotBuilder(s.userID, s.now.Add(-2*time.Hour)).Build()

	s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(snap, nil).Times(1)
	s.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("PLAN", nil).Times(1)
	s.mockQuotaRepo.EXPECT().
		Update(gomock.Any(), s.userID, int32(4), snap.LastRefillAt, int32(5)).
		Return(nil).Times(1)

	result, err := s.planCommands.PlanTrip(context.Background(), req, s.userID)

	s.Require().NoError(err)
	s.Equal("PLAN", result.Itinerary)
	s.Equal(4, result.CreditsRemaining)
}

func (s *PlanCommandsTestSuite) TestPlanTrip_PromptContainsRequestFields() {
	req := builder.NewPlanBuilder().WithDestination("Jaipur").BuildDTO()
	snap := builder.NewQuotaSnapshotBuilder(s.userID, s.now).Build()

	var captured string
	s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(snap, nil)
	s.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			captured = prompt
			return "PLAN", nil
		})
	s.mockQuotaRepo.EXPECT().Update(gomock.Any(), s.userID, int32(4), snap.LastRefillAt, int32(5)).Return(nil)

	_, err := s.planCommands.PlanTrip(context.Background(), req, s.userID)

	s.Require().NoError(err)
	s.Contains(captured, "Jaipur")
	s.Contains(captured, "Duration: 3 days")
}

func (s *PlanCommandsTestSuite) TestPlanTrip_RefillThenSpend() {
	req := builder.NewPlanBuilder().BuildDTO()
	staleRefill := s.now.Add(-30 * time.Hour)
	snap := builder.NewQuotaSnapshotBuilder(s.userID, s.now).WithCredits(0).WithLastRefillAt(staleRefill).Build()

	s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(snap, nil).Times(1)
	s.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("PLAN", nil).Times(1)
	// Refill resets the window anchor to the evaluation instant, so the
	// committed row carries now, not the stale anchor.
	s.mockQuotaRepo.EXPECT().
		Update(gomock.Any(), s.userID, int32(4), s.now, int32(0)).
		Return(nil).Times(1)

	result, err := s.planCommands.PlanTrip(context.Background(), req, s.userID)

	s.Require().NoError(err)
	s.Equal(4, result.CreditsRemaining)
}

func (s *PlanCommandsTestSuite) TestPlanTrip_DeniedWhenExhausted() {
	req := builder.NewPlanBuilder().BuildDTO()
	lastRefill := s.now.Add(-2 * time.Hour)
	snap := builder.NewQuotaSnapshotBuilder(s.userID, lastRefill).WithCredits(0).Build()

	// Generate and Update must never be called on a denial.
	s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(snap, nil).Times(1)
	s.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)
	s.mockQuotaRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := s.planCommands.PlanTrip(context.Background(), req, s.userID)

	s.Nil(result)
	s.Require().True(errs.Is(err, commands.ErrQuotaExhausted))

	var exhausted *commands.QuotaExhaustedError
	s.Require().ErrorAs(err, &exhausted)
	s.Equal(22*time.Hour, exhausted.ResetIn)
}

func (s *PlanCommandsTestSuite) TestPlanTrip_ExactWindowBoundaryStillDenied() {
	req := builder.NewPlanBuilder().BuildDTO()
	snap := builder.NewQuotaSnapshotBuilder(s.userID, s.now.Add(-quota.RefillWindow)).WithCredits(0).Build()

	s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(snap, nil).Times(1)

	_, err := s.planCommands.PlanTrip(context.Background(), req, s.userID)

	s.Require().True(errs.Is(err, commands.ErrQuotaExhausted))
}

func (s *PlanCommandsTestSuite) TestPlanTrip_GenerationFailureKeepsCredit() {
	req := builder.NewPlanBuilder().BuildDTO()
	snap := builder.NewQuotaSnapshotBuilder(s.userID, s.now).Build()

	s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(snap, nil).Times(1)
	s.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return("", errs.New("backend unavailable")).Times(1)
	s.mockQuotaRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := s.planCommands.PlanTrip(context.Background(), req, s.userID)

	s.Nil(result)
	s.Require().True(errs.Is(err, commands.ErrGenerationFailed))
}

func (s *PlanCommandsTestSuite) TestPlanTrip_CommitFailureStillSucceeds() {
	req := builder.NewPlanBuilder().BuildDTO()
	snap := builder.NewQuotaSnapshotBuilder(s.userID, s.now).Build()

	s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(snap, nil).Times(1)
	s.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("PLAN", nil).Times(1)
	s.mockQuotaRepo.EXPECT().
		Update(gomock.Any(), s.userID, int32(4), snap.LastRefillAt, int32(5)).
		Return(errs.New("connection lost")).Times(1)

	result, err := s.planCommands.PlanTrip(context.Background(), req, s.userID)

	s.Require().NoError(err)
	s.Equal("PLAN", result.Itinerary)
	s.Equal(4, result.CreditsRemaining)
}

func (s *PlanCommandsTestSuite) TestPlanTrip_CommitConflictRetriesWithFreshRead() {
	req := builder.NewPlanBuilder().BuildDTO()
	first := builder.NewQuotaSnapshotBuilder(s.userID, s.now).WithCredits(5).Build()
	second := builder.NewQuotaSnapshotBuilder(s.userID, s.now).WithCredits(4).Build()

	conflict := infra.WrapRepoErr("credits moved", errs.New("conflict"), infra.KindConflict)

	gomock.InOrder(
		s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(first, nil),
		s.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("PLAN", nil),
		s.mockQuotaRepo.EXPECT().Update(gomock.Any(), s.userID, int32(4), s.now, int32(5)).Return(conflict),
		s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(second, nil),
		s.mockQuotaRepo.EXPECT().Update(gomock.Any(), s.userID, int32(3), s.now, int32(4)).Return(nil),
	)

	result, err := s.planCommands.PlanTrip(context.Background(), req, s.userID)

	s.Require().NoError(err)
	s.Equal(3, result.CreditsRemaining)
}

func (s *PlanCommandsTestSuite) TestPlanTrip_CommitSkippedWhenBalanceDrained() {
	req := builder.NewPlanBuilder().BuildDTO()
	first := builder.NewQuotaSnapshotBuilder(s.userID, s.now).WithCredits(1).Build()
	drained := builder.NewQuotaSnapshotBuilder(s.userID, s.now).WithCredits(0).Build()

	conflict := infra.WrapRepoErr("credits moved", errs.New("conflict"), infra.KindConflict)

	gomock.InOrder(
		s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(first, nil),
		s.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("PLAN", nil),
		s.mockQuotaRepo.EXPECT().Update(gomock.Any(), s.userID, int32(0), s.now, int32(1)).Return(conflict),
		s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(drained, nil),
	)

	result, err := s.planCommands.PlanTrip(context.Background(), req, s.userID)

	// The itinerary was already generated; the spend just goes unrecorded.
	s.Require().NoError(err)
	s.Equal("PLAN", result.Itinerary)
	s.Equal(0, result.CreditsRemaining)
}

func (s *PlanCommandsTestSuite) TestPlanTrip_ProfileNotFound() {
	req := builder.NewPlanBuilder().BuildDTO()

	notFound := infra.WrapRepoErr("no profile", errs.New("no rows"), infra.KindNotFound)
	s.mockQuotaRepo.EXPECT().Find(gomock.Any(), s.userID).Return(nil, notFound).Times(1)

	result, err := s.planCommands.PlanTrip(context.Background(), req, s.userID)

	s.Nil(result)
	s.Require().ErrorIs(err, commands.ErrProfileNotFound)
}

func (s *PlanCommandsTestSuite) TestPlanTrip_InvalidRequestRejectedBeforeAnyRead() {
	req := builder.NewPlanBuilder().WithDays(0).BuildDTO()

	s.mockQuotaRepo.EXPECT().Find(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.planCommands.PlanTrip(context.Background(), req, s.userID)

	s.Nil(result)
	s.Require().True(errs.Is(err, commands.ErrInvalidPlanRequest))
}
