// Copyright 2024 campusbridge
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package integration

import (
	"context"
	"testing"

	"github.com/campusbridge/campusbridge/internal/dispute"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/domain"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/integration/startup"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/service"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	testioc "github.com/campusbridge/campusbridge/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestDisputeModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc dispute.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	idGen, err := snowflake.NewEventIDGenerator(1, 3)
	require.NoError(s.T(), err)
	module, err := startup.InitModule(idGen)
	require.NoError(s.T(), err)
	s.svc = module.Svc
	s.db = testioc.InitDB()
}

func (s *ModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `disputes`").Error
	s.NoError(err)
	err = s.db.Exec("DROP TABLE `dispute_holds`").Error
	s.NoError(err)
	err = s.db.Exec("DROP TABLE `dispute_status_logs`").Error
	s.NoError(err)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `disputes`").Error
	s.NoError(err)
	err = s.db.Exec("TRUNCATE TABLE `dispute_holds`").Error
	s.NoError(err)
	err = s.db.Exec("TRUNCATE TABLE `dispute_status_logs`").Error
	s.NoError(err)
}

func (s *ModuleTestSuite) raise(subjectType domain.SubjectType, subjectID, raisedBy int64) domain.Dispute {
	t := s.T()
	d, err := s.svc.Raise(context.Background(), domain.Dispute{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Reason:      "交付物与验收标准不符",
		Description: "第二项验收标准未达成",
		Evidence:    []string{"https://cdn.campusbridge.cn/evidence/1.png"},
		RaisedBy:    raisedBy,
	})
	require.NoError(t, err)
	return d
}

func (s *ModuleTestSuite) TestRaise_RegistersHold() {
	t := s.T()
	ctx := context.Background()

	d := s.raise(domain.SubjectTypeMilestone, 42, 7001)
	require.Equal(t, domain.StatusOpen, d.Status)
	require.Equal(t, domain.LevelStudentPartner, d.Level)
	require.Len(t, d.SN, 32)

	held, err := s.svc.HasActiveHold(ctx, domain.SubjectTypeMilestone, 42)
	require.NoError(t, err)
	require.True(t, held)

	held, err = s.svc.HasActiveHold(ctx, domain.SubjectTypeMilestone, 43)
	require.NoError(t, err)
	require.False(t, held)

	got, err := s.svc.Detail(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"https://cdn.campusbridge.cn/evidence/1.png"}, got.Evidence)
}

func (s *ModuleTestSuite) TestEscalation_ClimbsLadderRungByRung() {
	t := s.T()
	ctx := context.Background()
	operator := domain.Operator{ID: 1, Role: domain.RoleAdmin}

	d := s.raise(domain.SubjectTypePayout, 55, 7002)

	levels := []domain.Level{
		domain.LevelSupervisor,
		domain.LevelUniversityAdmin,
		domain.LevelSuperAdmin,
	}
	for _, want := range levels {
		_, err := s.svc.StartReview(ctx, d.ID, 8001, operator)
		require.NoError(t, err)
		got, err := s.svc.Review(ctx, d.ID, domain.OutcomeEscalate, "无法在本层解决", operator)
		require.NoError(t, err)
		require.Equal(t, want, got.Level)
		require.Equal(t, domain.StatusOpen, got.Status)
		require.Equal(t, int64(0), got.AssigneeID)
	}

	// 顶层不能再升
	_, err := s.svc.StartReview(ctx, d.ID, 8002, operator)
	require.NoError(t, err)
	_, err = s.svc.Review(ctx, d.ID, domain.OutcomeEscalate, "还想升", operator)
	require.ErrorIs(t, err, service.ErrTerminalLevel)

	// 升级过程中标的一直被压着
	held, err := s.svc.HasActiveHold(ctx, domain.SubjectTypePayout, 55)
	require.NoError(t, err)
	require.True(t, held)

	disputes, total, err := s.svc.Queue(ctx, domain.LevelSuperAdmin, domain.StatusInReview, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, disputes, 1)
}

func (s *ModuleTestSuite) TestResolve_ReleasesHoldOnlyWhenLast() {
	t := s.T()
	ctx := context.Background()
	operator := domain.Operator{ID: 1, Role: domain.RoleAdmin}

	first := s.raise(domain.SubjectTypeMilestone, 77, 7003)
	second := s.raise(domain.SubjectTypeMilestone, 77, 7004)

	_, err := s.svc.StartReview(ctx, first.ID, 8001, operator)
	require.NoError(t, err)
	resolved, err := s.svc.Review(ctx, first.ID, domain.OutcomeResolve, "双方已和解", operator)
	require.NoError(t, err)
	require.Equal(t, domain.StatusResolved, resolved.Status)
	require.False(t, resolved.Active())

	// 同标的还有一起未结争议, 不能放
	held, err := s.svc.HasActiveHold(ctx, domain.SubjectTypeMilestone, 77)
	require.NoError(t, err)
	require.True(t, held)

	_, err = s.svc.StartReview(ctx, second.ID, 8001, operator)
	require.NoError(t, err)
	_, err = s.svc.Review(ctx, second.ID, domain.OutcomeResolve, "补交了交付物", operator)
	require.NoError(t, err)

	held, err = s.svc.HasActiveHold(ctx, domain.SubjectTypeMilestone, 77)
	require.NoError(t, err)
	require.False(t, held)

	list, err := s.svc.ListBySubject(ctx, domain.SubjectTypeMilestone, 77)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func (s *ModuleTestSuite) TestReview_DirectResolveFromOpen() {
	t := s.T()
	ctx := context.Background()
	operator := domain.Operator{ID: 1, Role: domain.RoleAdmin}

	d := s.raise(domain.SubjectTypeApplication, 99, 7005)

	// 不认领也可以直接裁决
	resolved, err := s.svc.Review(ctx, d.ID, domain.OutcomeResolve, "误操作发起", operator)
	require.NoError(t, err)
	require.Equal(t, domain.StatusResolved, resolved.Status)

	held, err := s.svc.HasActiveHold(ctx, domain.SubjectTypeApplication, 99)
	require.NoError(t, err)
	require.False(t, held)

	// 已关单不能再审
	_, err = s.svc.Review(ctx, d.ID, domain.OutcomeResolve, "", operator)
	require.ErrorIs(t, err, service.ErrInvalidTransition)
}
