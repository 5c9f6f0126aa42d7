//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/akshattiwarii/Peakster/internal/infra"
	"github.com/akshattiwarii/Peakster/internal/pkg/clock"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"
	"github.com/akshattiwarii/Peakster/internal/pkg/jwt"
	"github.com/akshattiwarii/Peakster/internal/pkg/password"
	"github.com/akshattiwarii/Peakster/internal/usecase/commands"
	"github.com/akshattiwarii/Peakster/tests/common/builder"
	commandsmock "github.com/akshattiwarii/Peakster/tests/mock/commands"
	queriesmock "github.com/akshattiwarii/Peakster/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUserRepo  *commandsmock.MockUserRepository
	mockReadStore *queriesmock.MockUserReadStore
	clock         *clock.MockClock
	authCommands  commands.AuthCommands
	now           time.Time
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.mockReadStore = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	jwtService := jwt.NewService("test-secret", time.Hour)
	s.authCommands = commands.NewAuthCommands(s.mockUserRepo, s.mockReadStore, jwtService, s.clock)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.Run("新規ユーザーは満額クレジットのプロフィール付きで作成される", func() {
		req := builder.NewAuthBuilder().BuildRegisterDTO()

		s.mockUserRepo.EXPECT().
			CreateWithProfile(gomock.Any(), gomock.Any(), int32(5), s.now).
			Return(nil).Times(1)

		userID, err := s.authCommands.Register(context.Background(), req)

		s.Require().NoError(err)
		s.NotEmpty(userID)
	})

	s.Run("重複メールアドレスはErrEmailTaken", func() {
		req := builder.NewAuthBuilder().BuildRegisterDTO()

		dup := infra.WrapRepoErr("duplicate", errs.New("23505"), infra.KindDuplicateKey)
		s.mockUserRepo.EXPECT().
			CreateWithProfile(gomock.Any(), gomock.Any(), int32(5), s.now).
			Return(dup).Times(1)

		_, err := s.authCommands.Register(context.Background(), req)

		s.Require().ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("不正なメールアドレスは弾かれる", func() {
		auth := builder.NewAuthBuilder()
		auth.Email = "not-an-email"

		_, err := s.authCommands.Register(context.Background(), auth.BuildRegisterDTO())

		s.Require().True(errs.Is(err, commands.ErrAuthenticationFailed))
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	plaintext := "password123"
	hash, err := password.HashPassword(plaintext)
	s.Require().NoError(err)

	s.Run("正しい認証情報でトークンが発行される", func() {
		req := builder.NewAuthBuilder().BuildLoginDTO()
		view := builder.NewUserBuilder().BuildReadModel()

		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(view, hash, nil).Times(1)
		s.mockUserRepo.EXPECT().UpdateLastLogin(gomock.Any(), view.ID).
			Return(nil).Times(1)

		result, err := s.authCommands.Login(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(view.ID, result.UserID)
		s.NotEmpty(result.Token)
	})

	s.Run("パスワード不一致はErrInvalidCredentials", func() {
		req := builder.NewAuthBuilder().BuildLoginDTO()
		view := builder.NewUserBuilder().BuildReadModel()

		otherHash, hashErr := password.HashPassword("different1")
		s.Require().NoError(hashErr)
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(view, otherHash, nil).Times(1)

		_, err := s.authCommands.Login(context.Background(), req)

		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("未知のメールアドレスもErrInvalidCredentials", func() {
		req := builder.NewAuthBuilder().BuildLoginDTO()

		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(nil, "", errs.New("no rows")).Times(1)

		_, err := s.authCommands.Login(context.Background(), req)

		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("無効化されたユーザーはErrUserInactive", func() {
		req := builder.NewAuthBuilder().BuildLoginDTO()
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()

		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(view, hash, nil).Times(1)

		_, err := s.authCommands.Login(context.Background(), req)

		s.Require().ErrorIs(err, commands.ErrUserInactive)
	})

	s.Run("最終ログイン更新の失敗はログインを妨げない", func() {
		req := builder.NewAuthBuilder().BuildLoginDTO()
		view := builder.NewUserBuilder().BuildReadModel()

		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(view, hash, nil).Times(1)
		s.mockUserRepo.EXPECT().UpdateLastLogin(gomock.Any(), view.ID).
			Return(errs.New("connection lost")).Times(1)

		result, err := s.authCommands.Login(context.Background(), req)

		s.Require().NoError(err)
		s.NotEmpty(result.Token)
	})
}
