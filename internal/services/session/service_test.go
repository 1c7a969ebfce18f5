package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/smartcare-id/admin-console/internal/dependencies/mocks"
	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/storage/memory"
	"github.com/smartcare-id/admin-console/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// InitializeDefault tests

func (s *ServiceSuite) TestInitializeDefaultSeedsEmptyCollection() {
	err := s.service.InitializeDefault(s.ctx)
	s.Require().NoError(err)

	admins, _ := s.storage.GetAdmins(s.ctx)
	s.Require().Len(admins, 1)
	s.Equal(DefaultAdminEmail, admins[0].Email)
	s.Equal(DefaultAdminPassword, admins[0].Password)
}

func (s *ServiceSuite) TestInitializeDefaultIsIdempotent() {
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.service.InitializeDefault(s.ctx))
	}

	admins, _ := s.storage.GetAdmins(s.ctx)
	count := 0
	for _, a := range admins {
		if a.Email == DefaultAdminEmail {
			count++
		}
	}
	s.Equal(1, count)
}

func (s *ServiceSuite) TestInitializeDefaultAppendsWithoutOverwriting() {
	_ = s.storage.SaveAdmins(s.ctx, []model.Admin{{Email: "other@x.com", Password: "pw"}})

	s.Require().NoError(s.service.InitializeDefault(s.ctx))

	admins, _ := s.storage.GetAdmins(s.ctx)
	s.Require().Len(admins, 2)
	s.Equal("other@x.com", admins[0].Email)
	s.Equal(DefaultAdminEmail, admins[1].Email)
}

func (s *ServiceSuite) TestInitializeDefaultNeverReplacesExistingRecord() {
	_ = s.storage.SaveAdmins(s.ctx, []model.Admin{{Email: DefaultAdminEmail, Password: "changed"}})

	s.Require().NoError(s.service.InitializeDefault(s.ctx))

	admins, _ := s.storage.GetAdmins(s.ctx)
	s.Require().Len(admins, 1)
	s.Equal("changed", admins[0].Password)
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	err := s.service.Register(s.ctx, "a@x.com", "pw1")
	s.Require().NoError(err)

	admins, _ := s.storage.GetAdmins(s.ctx)
	s.Require().Len(admins, 1)
	s.Equal("a@x.com", admins[0].Email)
	s.Equal("pw1", admins[0].Password)
	s.Equal(s.clock.CurrentTime, admins[0].CreatedAt)
}

func (s *ServiceSuite) TestRegisterDuplicateEmailFails() {
	s.Require().NoError(s.service.Register(s.ctx, "a@x.com", "pw1"))

	err := s.service.Register(s.ctx, "a@x.com", "pw2")
	s.ErrorIs(err, model.ErrEmailExists)

	// Collection unchanged: one entry, original password
	admins, _ := s.storage.GetAdmins(s.ctx)
	s.Require().Len(admins, 1)
	s.Equal("pw1", admins[0].Password)
}

func (s *ServiceSuite) TestRegisterEmailMatchIsCaseSensitive() {
	s.Require().NoError(s.service.Register(s.ctx, "a@x.com", "pw1"))
	s.Require().NoError(s.service.Register(s.ctx, "A@x.com", "pw2"))

	admins, _ := s.storage.GetAdmins(s.ctx)
	s.Len(admins, 2)
}

func (s *ServiceSuite) TestRegisterEmptyFields() {
	var validationErr *model.ValidationError
	s.ErrorAs(s.service.Register(s.ctx, "", "pw"), &validationErr)
	s.ErrorAs(s.service.Register(s.ctx, "a@x.com", ""), &validationErr)
}

// Login tests

func (s *ServiceSuite) TestLoginWithDefaultCredentialOnFreshState() {
	session, err := s.service.Login(s.ctx, "smartcare@gmail.com", "Bandung123")
	s.Require().NoError(err)
	s.Equal("smartcare@gmail.com", session.Email)

	loggedIn, err := s.service.IsLoggedIn(s.ctx)
	s.Require().NoError(err)
	s.True(loggedIn)
}

func (s *ServiceSuite) TestLoginWithRegisteredCredential() {
	_ = s.service.Register(s.ctx, "a@x.com", "pw1")

	session, err := s.service.Login(s.ctx, "a@x.com", "pw1")
	s.Require().NoError(err)
	s.Equal("a@x.com", session.Email)
	s.Equal(s.clock.CurrentTime, session.LoginTime)
}

func (s *ServiceSuite) TestLoginWrongPasswordFails() {
	_ = s.service.Register(s.ctx, "a@x.com", "pw1")

	_, err := s.service.Login(s.ctx, "a@x.com", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownEmailFails() {
	_, err := s.service.Login(s.ctx, "unknown@x.com", "pw")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestFailedLoginLeavesExistingSessionUntouched() {
	_, _ = s.service.Login(s.ctx, DefaultAdminEmail, DefaultAdminPassword)
	before, _ := s.service.CurrentAdmin(s.ctx)

	s.clock.Advance(time.Hour)
	_, err := s.service.Login(s.ctx, "unknown@x.com", "pw")
	s.Require().Error(err)

	after, _ := s.service.CurrentAdmin(s.ctx)
	s.Require().NotNil(after)
	s.Equal(before.Email, after.Email)
	s.Equal(before.LoginTime, after.LoginTime)
}

func (s *ServiceSuite) TestLoginOverwritesPriorSession() {
	_ = s.service.Register(s.ctx, "a@x.com", "pw1")
	_, _ = s.service.Login(s.ctx, DefaultAdminEmail, DefaultAdminPassword)

	s.clock.Advance(time.Hour)
	_, err := s.service.Login(s.ctx, "a@x.com", "pw1")
	s.Require().NoError(err)

	current, _ := s.service.CurrentAdmin(s.ctx)
	s.Equal("a@x.com", current.Email)
	s.Equal(s.clock.CurrentTime, current.LoginTime)
}

// Logout tests

func (s *ServiceSuite) TestLogoutClearsSession() {
	_, _ = s.service.Login(s.ctx, DefaultAdminEmail, DefaultAdminPassword)

	s.Require().NoError(s.service.Logout(s.ctx))

	loggedIn, _ := s.service.IsLoggedIn(s.ctx)
	s.False(loggedIn)
}

func (s *ServiceSuite) TestLogoutIsIdempotent() {
	s.NoError(s.service.Logout(s.ctx))
	s.NoError(s.service.Logout(s.ctx))
}

// UpdateAdmin tests

func (s *ServiceSuite) TestUpdateAdminRewritesInPlace() {
	_ = s.service.Register(s.ctx, "a@x.com", "pw1")
	_ = s.service.Register(s.ctx, "b@x.com", "pw2")

	err := s.service.UpdateAdmin(s.ctx, "a@x.com", "new@x.com", "newpw")
	s.Require().NoError(err)

	admins, _ := s.storage.GetAdmins(s.ctx)
	s.Require().Len(admins, 2)
	// Position preserved
	s.Equal("new@x.com", admins[0].Email)
	s.Equal("newpw", admins[0].Password)
	s.Equal("b@x.com", admins[1].Email)
}

func (s *ServiceSuite) TestUpdateAdminUnknownEmailFails() {
	err := s.service.UpdateAdmin(s.ctx, "missing@x.com", "new@x.com", "pw")
	s.ErrorIs(err, model.ErrAdminNotFound)
}

func (s *ServiceSuite) TestUpdateAdminRenamesActiveSessionKeepingLoginTime() {
	_ = s.service.Register(s.ctx, "a@x.com", "pw1")
	_, _ = s.service.Login(s.ctx, "a@x.com", "pw1")
	loginTime := s.clock.CurrentTime

	s.clock.Advance(2 * time.Hour)
	err := s.service.UpdateAdmin(s.ctx, "a@x.com", "new@x.com", "newpw")
	s.Require().NoError(err)

	current, _ := s.service.CurrentAdmin(s.ctx)
	s.Require().NotNil(current)
	s.Equal("new@x.com", current.Email)
	s.Equal(loginTime, current.LoginTime)
}

func (s *ServiceSuite) TestUpdateAdminLeavesForeignSessionAlone() {
	_ = s.service.Register(s.ctx, "a@x.com", "pw1")
	_ = s.service.Register(s.ctx, "b@x.com", "pw2")
	_, _ = s.service.Login(s.ctx, "b@x.com", "pw2")

	s.Require().NoError(s.service.UpdateAdmin(s.ctx, "a@x.com", "new@x.com", "newpw"))

	current, _ := s.service.CurrentAdmin(s.ctx)
	s.Equal("b@x.com", current.Email)
}
