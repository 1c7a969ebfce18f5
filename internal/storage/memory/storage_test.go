package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/smartcare-id/admin-console/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestGetAdminsEmptyByDefault() {
	admins, err := s.storage.GetAdmins(s.ctx)
	s.Require().NoError(err)
	s.Empty(admins)
}

func (s *StorageSuite) TestSaveAndGetAdmins() {
	admins := []model.Admin{
		{Email: "a@x.com", Password: "pw1", CreatedAt: time.Now()},
		{Email: "b@x.com", Password: "pw2", CreatedAt: time.Now()},
	}

	err := s.storage.SaveAdmins(s.ctx, admins)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAdmins(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 2)
	s.Equal("a@x.com", retrieved[0].Email)
	s.Equal("b@x.com", retrieved[1].Email)
}

func (s *StorageSuite) TestGetAdminsReturnsCopy() {
	_ = s.storage.SaveAdmins(s.ctx, []model.Admin{{Email: "a@x.com", Password: "pw"}})

	retrieved, _ := s.storage.GetAdmins(s.ctx)
	retrieved[0].Password = "mutated"

	again, _ := s.storage.GetAdmins(s.ctx)
	s.Equal("pw", again[0].Password)
}

func (s *StorageSuite) TestGetSessionNilByDefault() {
	session, err := s.storage.GetSession(s.ctx)
	s.Require().NoError(err)
	s.Nil(session)
}

func (s *StorageSuite) TestSaveAndGetSession() {
	loginTime := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	err := s.storage.SaveSession(s.ctx, &model.AdminSession{Email: "a@x.com", LoginTime: loginTime})
	s.Require().NoError(err)

	session, err := s.storage.GetSession(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(session)
	s.Equal("a@x.com", session.Email)
	s.Equal(loginTime, session.LoginTime)
}

func (s *StorageSuite) TestSaveSessionOverwrites() {
	_ = s.storage.SaveSession(s.ctx, &model.AdminSession{Email: "a@x.com"})
	_ = s.storage.SaveSession(s.ctx, &model.AdminSession{Email: "b@x.com"})

	session, _ := s.storage.GetSession(s.ctx)
	s.Equal("b@x.com", session.Email)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, &model.AdminSession{Email: "a@x.com"})

	err := s.storage.DeleteSession(s.ctx)
	s.Require().NoError(err)

	session, _ := s.storage.GetSession(s.ctx)
	s.Nil(session)
}

func (s *StorageSuite) TestDeleteSessionIdempotent() {
	s.NoError(s.storage.DeleteSession(s.ctx))
	s.NoError(s.storage.DeleteSession(s.ctx))
}
