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
	"encoding/json"
	"testing"
	"time"

	"github.com/campusbridge/campusbridge/internal/application"
	applicationmocks "github.com/campusbridge/campusbridge/internal/application/mocks"
	"github.com/campusbridge/campusbridge/internal/dispute"
	disputemocks "github.com/campusbridge/campusbridge/internal/dispute/mocks"
	"github.com/campusbridge/campusbridge/internal/milestone"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/domain"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/event"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/integration/startup"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/repository/dao"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service/custody"
	custodymocks "github.com/campusbridge/campusbridge/internal/milestone/internal/service/custody/mocks"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	testioc "github.com/campusbridge/campusbridge/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestMilestoneModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db    *egorm.Component
	mq    mq.MQ
	idGen *snowflake.EventIDGenerator
}

func (s *ModuleTestSuite) SetupSuite() {
	idGen, err := snowflake.NewEventIDGenerator(1, 3)
	require.NoError(s.T(), err)
	s.idGen = idGen
	s.db = testioc.InitDB()
	s.mq = testioc.InitMQ()
}

func (s *ModuleTestSuite) TearDownSuite() {
	for _, table := range []string{"milestones", "escrows", "milestone_artifacts", "milestone_status_logs"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"milestones", "escrows", "milestone_artifacts", "milestone_status_logs"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

// newModule 相邻模块与托管方都打桩, 只让里程碑模块落到真实存储上
func (s *ModuleTestSuite) newModule(ctrl *gomock.Controller,
	provider custody.Provider, cfg milestone.Config,
	holdFunc func(subjectType dispute.SubjectType, subjectID int64) bool) *milestone.Module {
	t := s.T()

	appSvc := applicationmocks.NewMockService(ctrl)
	appSvc.EXPECT().HasAcceptedApplication(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil).AnyTimes()

	disputeSvc := disputemocks.NewMockService(ctrl)
	disputeSvc.EXPECT().HasActiveHold(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, subjectType dispute.SubjectType, subjectID int64) (bool, error) {
			return holdFunc(subjectType, subjectID), nil
		}).AnyTimes()

	module, err := startup.InitModule(provider, s.idGen, cfg,
		&application.Module{Svc: appSvc}, &dispute.Module{Svc: disputeSvc})
	require.NoError(t, err)
	return module
}

func noHolds(_ dispute.SubjectType, _ int64) bool { return false }

func (s *ModuleTestSuite) propose(svc milestone.Service, projectID int64) domain.Milestone {
	t := s.T()
	m, err := svc.Propose(context.Background(), domain.Milestone{
		ProjectID:          projectID,
		StudentID:          7001,
		PartnerID:          2001,
		SupervisorID:       3001,
		Title:              "原型开发",
		Scope:              "完成登录与数据看板",
		AcceptanceCriteria: "通过全部验收用例",
		DueDate:            time.Now().Add(7 * 24 * time.Hour).UnixMilli(),
		Amount:             500000,
		Currency:           "CNY",
	}, domain.Operator{ID: 7001, Role: domain.RoleStudent})
	require.NoError(t, err)
	return m
}

// advanceToApproved 把一条里程碑从 PROPOSED 一路推到 APPROVED
func (s *ModuleTestSuite) advanceToApproved(svc milestone.Service, id int64) {
	t := s.T()
	ctx := context.Background()
	student := domain.Operator{ID: 7001, Role: domain.RoleStudent}
	partner := domain.Operator{ID: 2001, Role: domain.RolePartner}
	supervisor := domain.Operator{ID: 3001, Role: domain.RoleSupervisor}

	_, err := svc.Accept(ctx, id, partner)
	require.NoError(t, err)
	_, err = svc.Fund(ctx, id, partner)
	require.NoError(t, err)
	_, err = svc.Start(ctx, id, student)
	require.NoError(t, err)
	_, err = svc.AddArtifact(ctx, domain.Artifact{
		MilestoneID: id,
		Name:        "演示视频",
		URI:         "https://cdn.campusbridge.cn/artifacts/demo.mp4",
	}, student)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, id, student)
	require.NoError(t, err)
	_, err = svc.SupervisorReview(ctx, id, true, "验收通过", supervisor)
	require.NoError(t, err)
	_, err = svc.PartnerReview(ctx, id, true, "验收通过", partner)
	require.NoError(t, err)
}

func (s *ModuleTestSuite) TestLifecycle_ProposeToCompleted() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	partner := domain.Operator{ID: 2001, Role: domain.RolePartner}

	provider := custodymocks.NewMockProvider(ctrl)
	provider.EXPECT().Capture(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req custody.CaptureRequest) (string, error) {
			require.Equal(t, int64(500000), req.Amount)
			return "wx-txn-100", nil
		})
	provider.EXPECT().Disburse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req custody.DisburseRequest) (string, error) {
			require.Equal(t, "wx-txn-100", req.CustodyRef)
			require.Equal(t, "7001", req.PayeeAccount)
			return "batch-100", nil
		})

	module := s.newModule(ctrl, provider, milestone.Config{}, noHolds)
	svc := module.Svc

	m := s.propose(svc, 88)
	require.Equal(t, domain.StatusProposed, m.Status)
	require.Len(t, m.SN, 32)

	s.advanceToApproved(svc, m.ID)

	var escrow dao.Escrow
	err := s.db.WithContext(ctx).First(&escrow, "mid = ?", m.ID).Error
	require.NoError(t, err)
	require.Equal(t, int64(500000), escrow.AmountHeld)
	require.Equal(t, "wx-txn-100", escrow.CustodyRef)
	require.Equal(t, domain.EscrowStatusHeld.ToUint8(), escrow.Status)

	released, err := svc.Release(ctx, m.ID, partner)
	require.NoError(t, err)
	require.Equal(t, domain.StatusReleased, released.Status)

	err = s.db.WithContext(ctx).First(&escrow, "mid = ?", m.ID).Error
	require.NoError(t, err)
	require.Equal(t, domain.EscrowStatusReleased.ToUint8(), escrow.Status)

	// 先订阅事实事件, 再触发到账确认
	factConsumer, err := s.mq.Consumer(event.PortfolioFactsTopic, "test-portfolio")
	require.NoError(t, err)

	// 托管方到账确认走消息, 由消费者收口
	producer, err := s.mq.Producer(event.CustodyConfirmationEventsTopic)
	require.NoError(t, err)
	payload, err := json.Marshal(event.CustodyConfirmationEvent{
		SN:          m.SN,
		CustodyRef:  "batch-100",
		ConfirmedAt: time.Now().UnixMilli(),
	})
	require.NoError(t, err)
	_, err = producer.Produce(ctx, &mq.Message{Value: payload})
	require.NoError(t, err)

	consumeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	err = module.Consumer.Consume(consumeCtx)
	require.NoError(t, err)

	got, err := svc.Detail(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, got.Status)

	// 完成后对档案系统发事实事件, 交期之前到账算按时
	msg, err := factConsumer.Consume(consumeCtx)
	require.NoError(t, err)
	var fact event.PortfolioFactEvent
	require.NoError(t, json.Unmarshal(msg.Value, &fact))
	require.Equal(t, m.SN, fact.SN)
	require.True(t, fact.OnTime)
}

func (s *ModuleTestSuite) TestFund_PendingCaptureResolvedBySync() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	partner := domain.Operator{ID: 2001, Role: domain.RolePartner}

	provider := custodymocks.NewMockProvider(ctrl)
	// 未支付完成时托管方给不出交易号, 对账必须靠商户侧单号找回这一单
	provider.EXPECT().Capture(gomock.Any(), gomock.Any()).
		Return("", custody.ErrCapturePending)
	provider.EXPECT().QueryCapture(gomock.Any(), gomock.Any()).
		Return(custody.CaptureStatusHeld, "wx-txn-200", nil)

	module := s.newModule(ctrl, provider, milestone.Config{}, noHolds)
	svc := module.Svc

	m := s.propose(svc, 89)
	_, err := svc.Accept(ctx, m.ID, partner)
	require.NoError(t, err)

	_, err = svc.Fund(ctx, m.ID, partner)
	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
	require.Equal(t, domain.ReasonCapturePending, pre.Reason)

	got, err := svc.Detail(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusFinalized, got.Status)

	// 对账任务回查后补齐托管记录
	pending, total, err := svc.FindPendingCaptures(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, pending, 1)

	err = svc.ResolveCapture(ctx, pending[0])
	require.NoError(t, err)

	got, err = svc.Detail(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusFunded, got.Status)

	var escrow dao.Escrow
	err = s.db.WithContext(ctx).First(&escrow, "mid = ?", m.ID).Error
	require.NoError(t, err)
	require.Equal(t, "wx-txn-200", escrow.CustodyRef)
}

func (s *ModuleTestSuite) TestAccept_OnlyCounterpartyFinalizes() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	module := s.newModule(ctrl, custodymocks.NewMockProvider(ctrl), milestone.Config{}, noHolds)
	svc := module.Svc

	m := s.propose(svc, 93)
	require.Equal(t, int64(7001), m.ProposedBy)

	// 提案方自己不能定稿
	_, err := svc.Accept(ctx, m.ID, domain.Operator{ID: 7001, Role: domain.RoleStudent})
	require.ErrorIs(t, err, service.ErrUnauthorized)

	// 非参与方也不能定稿
	_, err = svc.Accept(ctx, m.ID, domain.Operator{ID: 9999, Role: domain.RolePartner})
	require.ErrorIs(t, err, service.ErrUnauthorized)

	accepted, err := svc.Accept(ctx, m.ID, domain.Operator{ID: 2001, Role: domain.RolePartner})
	require.NoError(t, err)
	require.Equal(t, domain.StatusFinalized, accepted.Status)
}

func (s *ModuleTestSuite) TestRelease_BlockedByDisputeHold() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	partner := domain.Operator{ID: 2001, Role: domain.RolePartner}

	provider := custodymocks.NewMockProvider(ctrl)
	provider.EXPECT().Capture(gomock.Any(), gomock.Any()).Return("wx-txn-300", nil)

	var mid int64
	module := s.newModule(ctrl, provider, milestone.Config{},
		func(subjectType dispute.SubjectType, subjectID int64) bool {
			return subjectType == dispute.SubjectTypeMilestone && subjectID == mid
		})
	svc := module.Svc

	m := s.propose(svc, 90)
	mid = m.ID
	s.advanceToApproved(svc, m.ID)

	_, err := svc.Release(ctx, m.ID, partner)
	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
	require.Equal(t, domain.ReasonDisputeOpen, pre.Reason)

	got, err := svc.Detail(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, got.Status)
}

func (s *ModuleTestSuite) TestReworkLoop_RevertThenResubmit() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	student := domain.Operator{ID: 7001, Role: domain.RoleStudent}
	partner := domain.Operator{ID: 2001, Role: domain.RolePartner}
	supervisor := domain.Operator{ID: 3001, Role: domain.RoleSupervisor}

	provider := custodymocks.NewMockProvider(ctrl)
	provider.EXPECT().Capture(gomock.Any(), gomock.Any()).Return("wx-txn-400", nil)

	module := s.newModule(ctrl, provider, milestone.Config{}, noHolds)
	svc := module.Svc

	m := s.propose(svc, 91)
	_, err := svc.Accept(ctx, m.ID, partner)
	require.NoError(t, err)
	_, err = svc.Fund(ctx, m.ID, partner)
	require.NoError(t, err)
	_, err = svc.Start(ctx, m.ID, student)
	require.NoError(t, err)
	_, err = svc.AddArtifact(ctx, domain.Artifact{
		MilestoneID: m.ID,
		Name:        "初版",
		URI:         "https://cdn.campusbridge.cn/artifacts/v1.zip",
	}, student)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, m.ID, student)
	require.NoError(t, err)

	reverted, err := svc.SupervisorReview(ctx, m.ID, false, "文档缺失", supervisor)
	require.NoError(t, err)
	require.Equal(t, domain.StatusChangesRequested, reverted.Status)
	require.False(t, reverted.SupervisorGate)

	// 返工后重新进入进行中, 再次提交
	_, err = svc.Start(ctx, m.ID, student)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, m.ID, student)
	require.NoError(t, err)
	_, err = svc.SupervisorReview(ctx, m.ID, true, "补齐了", supervisor)
	require.NoError(t, err)
	approved, err := svc.PartnerReview(ctx, m.ID, true, "验收通过", partner)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, approved.Status)
	require.True(t, approved.SupervisorGate)
}

func (s *ModuleTestSuite) TestFastPath_SmallAmountSkipsSupervisorGate() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	student := domain.Operator{ID: 7001, Role: domain.RoleStudent}
	partner := domain.Operator{ID: 2001, Role: domain.RolePartner}

	provider := custodymocks.NewMockProvider(ctrl)
	provider.EXPECT().Capture(gomock.Any(), gomock.Any()).Return("wx-txn-500", nil)
	provider.EXPECT().Disburse(gomock.Any(), gomock.Any()).Return("batch-500", nil)

	module := s.newModule(ctrl, provider, milestone.Config{FastPathMaxAmount: 10000}, noHolds)
	svc := module.Svc

	m, err := svc.Propose(ctx, domain.Milestone{
		ProjectID:          92,
		StudentID:          7001,
		PartnerID:          2001,
		SupervisorID:       3001,
		Title:              "小修小补",
		Scope:              "修三个样式问题",
		AcceptanceCriteria: "截图验收",
		DueDate:            time.Now().Add(48 * time.Hour).UnixMilli(),
		Amount:             8000,
		Currency:           "CNY",
	}, student)
	require.NoError(t, err)

	_, err = svc.Accept(ctx, m.ID, partner)
	require.NoError(t, err)
	_, err = svc.Fund(ctx, m.ID, partner)
	require.NoError(t, err)
	_, err = svc.Start(ctx, m.ID, student)
	require.NoError(t, err)
	_, err = svc.AddArtifact(ctx, domain.Artifact{
		MilestoneID: m.ID,
		Name:        "截图",
		URI:         "https://cdn.campusbridge.cn/artifacts/fix.png",
	}, student)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, m.ID, student)
	require.NoError(t, err)

	_, err = svc.SupervisorReview(ctx, m.ID, true, "", domain.Operator{ID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)
	// 模拟导师撤回放行: 门被清掉但仍停在合作方验收
	err = s.db.WithContext(ctx).Exec("UPDATE `milestones` SET supervisor_gate = ? WHERE id = ?",
		false, m.ID).Error
	require.NoError(t, err)

	// 小额快速通道: 合作方验收即视同导师门放行
	approved, err := svc.PartnerReview(ctx, m.ID, true, "验收通过", partner)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, approved.Status)
	require.True(t, approved.SupervisorGate)

	released, err := svc.Release(ctx, m.ID, partner)
	require.NoError(t, err)
	require.Equal(t, domain.StatusReleased, released.Status)
}
