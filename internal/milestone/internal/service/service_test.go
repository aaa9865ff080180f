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

package service

import (
	"context"
	"testing"
	"time"

	applicationmocks "github.com/campusbridge/campusbridge/internal/application/mocks"
	"github.com/campusbridge/campusbridge/internal/dispute"
	disputemocks "github.com/campusbridge/campusbridge/internal/dispute/mocks"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/domain"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/event"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/repository"
	repomocks "github.com/campusbridge/campusbridge/internal/milestone/internal/repository/mocks"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service/custody"
	custodymocks "github.com/campusbridge/campusbridge/internal/milestone/internal/service/custody/mocks"
	"github.com/campusbridge/campusbridge/internal/pkg/sequencenumber"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo       *repomocks.MockMilestoneRepository
	provider   *custodymocks.MockProvider
	appSvc     *applicationmocks.MockService
	disputeSvc *disputemocks.MockService
}

func newTestService(t *testing.T, ctrl *gomock.Controller, cfg Config) (Service, testDeps) {
	t.Helper()
	deps := testDeps{
		repo:       repomocks.NewMockMilestoneRepository(ctrl),
		provider:   custodymocks.NewMockProvider(ctrl),
		appSvc:     applicationmocks.NewMockService(ctrl),
		disputeSvc: disputemocks.NewMockService(ctrl),
	}
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), event.StatusEventsTopic, 1))
	require.NoError(t, q.CreateTopic(context.Background(), event.PortfolioFactsTopic, 1))
	statusProducer, err := event.NewStatusChangedEventProducer(q)
	require.NoError(t, err)
	factProducer, err := event.NewPortfolioFactEventProducer(q)
	require.NoError(t, err)
	idGen, err := snowflake.NewEventIDGenerator(1, 3)
	require.NoError(t, err)
	svc := NewService(deps.repo, deps.provider, deps.appSvc, deps.disputeSvc,
		statusProducer, factProducer, idGen, sequencenumber.NewGenerator(), cfg)
	return svc, deps
}

func partnerOperator() domain.Operator {
	return domain.Operator{ID: 3001, Role: domain.RolePartner}
}

func studentOperator() domain.Operator {
	return domain.Operator{ID: 2001, Role: domain.RoleStudent}
}

func supervisorOperator() domain.Operator {
	return domain.Operator{ID: 4001, Role: domain.RoleSupervisor}
}

func validMilestone() domain.Milestone {
	return domain.Milestone{
		ProjectID:          100,
		StudentID:          2001,
		PartnerID:          3001,
		SupervisorID:       4001,
		Title:              "第一阶段交付",
		Scope:              "完成数据接入与清洗",
		AcceptanceCriteria: "接入三个数据源, 清洗规则通过评审",
		DueDate:            time.Now().Add(30 * 24 * time.Hour).UnixMilli(),
		Amount:             500000,
		Currency:           "CNY",
	}
}

func TestService_Propose(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		milestone  func() domain.Milestone
		mock       func(deps testDeps)
		wantErr    error
		wantReason string
	}{
		{
			name:      "首个里程碑且申请已被录用",
			milestone: validMilestone,
			mock: func(deps testDeps) {
				deps.repo.EXPECT().TotalByProject(gomock.Any(), int64(100)).Return(int64(0), nil)
				deps.appSvc.EXPECT().HasAcceptedApplication(gomock.Any(), int64(100), int64(2001)).
					Return(true, nil)
				deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, m domain.Milestone) (domain.Milestone, error) {
						assert.Equal(t, domain.StatusProposed, m.Status)
						assert.Equal(t, domain.EscrowStatusPending, m.EscrowStatus)
						assert.Equal(t, int64(2001), m.ProposedBy)
						assert.Equal(t, int64(1), m.Version)
						assert.Len(t, m.SN, 32)
						m.ID = 301
						return m, nil
					})
			},
		},
		{
			name:      "首个里程碑但没有被录用的申请",
			milestone: validMilestone,
			mock: func(deps testDeps) {
				deps.repo.EXPECT().TotalByProject(gomock.Any(), int64(100)).Return(int64(0), nil)
				deps.appSvc.EXPECT().HasAcceptedApplication(gomock.Any(), int64(100), int64(2001)).
					Return(false, nil)
			},
			wantReason: domain.ReasonOfferNotAccepted,
		},
		{
			name:      "非首个里程碑不检查申请",
			milestone: validMilestone,
			mock: func(deps testDeps) {
				deps.repo.EXPECT().TotalByProject(gomock.Any(), int64(100)).Return(int64(2), nil)
				deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, m domain.Milestone) (domain.Milestone, error) {
						m.ID = 302
						return m, nil
					})
			},
		},
		{
			name: "验收标准为空",
			milestone: func() domain.Milestone {
				m := validMilestone()
				m.AcceptanceCriteria = ""
				return m
			},
			mock:    func(deps testDeps) {},
			wantErr: ErrValidationFailed,
		},
		{
			name: "金额必须为正",
			milestone: func() domain.Milestone {
				m := validMilestone()
				m.Amount = 0
				return m
			},
			mock:    func(deps testDeps) {},
			wantErr: ErrValidationFailed,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(t, ctrl, Config{})
			tc.mock(deps)
			m, err := svc.Propose(context.Background(), tc.milestone(), studentOperator())
			if tc.wantReason != "" {
				var pre *domain.PreconditionError
				require.ErrorAs(t, err, &pre)
				assert.Equal(t, tc.wantReason, pre.Reason)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, domain.StatusProposed, m.Status)
			}
		})
	}
}

func TestService_Propose_RequiresParty(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestService(t, ctrl, Config{})

	_, err := svc.Propose(context.Background(), validMilestone(),
		domain.Operator{ID: 9999, Role: domain.RoleStudent})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_Accept(t *testing.T) {
	t.Parallel()
	// 学生提案, 合作方定稿; 合作方提案, 学生定稿
	testCases := []struct {
		name       string
		proposedBy int64
		operator   domain.Operator
	}{
		{
			name:       "学生提案由合作方确认",
			proposedBy: 2001,
			operator:   partnerOperator(),
		},
		{
			name:       "合作方提案由学生确认",
			proposedBy: 3001,
			operator:   studentOperator(),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(t, ctrl, Config{})

			m := domain.Milestone{
				ID: 301, SN: "MS001", StudentID: 2001, PartnerID: 3001,
				ProposedBy: tc.proposedBy, Status: domain.StatusProposed, Version: 1,
			}
			deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(m, nil)
			gomock.InOrder(
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
					domain.StatusAccepted, nil, tc.operator, "").Return(nil),
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
					domain.StatusFinalized, nil, tc.operator, "").Return(nil),
			)

			got, err := svc.Accept(context.Background(), 301, tc.operator)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusFinalized, got.Status)
			assert.Equal(t, int64(3), got.Version)
		})
	}
}

func TestService_Accept_InvalidState(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, deps := newTestService(t, ctrl, Config{})

	deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).
		Return(domain.Milestone{
			ID: 301, StudentID: 2001, PartnerID: 3001, ProposedBy: 2001,
			Status: domain.StatusFunded,
		}, nil)

	_, err := svc.Accept(context.Background(), 301, partnerOperator())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Accept_Unauthorized(t *testing.T) {
	t.Parallel()
	proposed := domain.Milestone{
		ID: 301, StudentID: 2001, PartnerID: 3001, ProposedBy: 3001,
		Status: domain.StatusProposed, Version: 1,
	}
	testCases := []struct {
		name     string
		operator domain.Operator
		findByID bool
	}{
		{
			name:     "提案方不能确认自己的提案",
			operator: partnerOperator(),
			findByID: true,
		},
		{
			name:     "非参与方不能确认",
			operator: domain.Operator{ID: 9999, Role: domain.RoleStudent},
			findByID: true,
		},
		{
			name:     "导师不能定稿条款",
			operator: supervisorOperator(),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(t, ctrl, Config{})
			if tc.findByID {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(proposed, nil)
			}
			_, err := svc.Accept(context.Background(), 301, tc.operator)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestService_Fund(t *testing.T) {
	t.Parallel()
	finalized := domain.Milestone{
		ID: 301, SN: "MS001", PartnerID: 3001,
		Title: "第一阶段交付", Amount: 500000, Currency: "CNY",
		Status: domain.StatusFinalized, Version: 3,
	}
	testCases := []struct {
		name       string
		mock       func(deps testDeps)
		wantErr    error
		wantReason string
	}{
		{
			name: "托管确认持有, 入账成功",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(finalized, nil)
				deps.provider.EXPECT().Capture(gomock.Any(), custody.CaptureRequest{
					IdempotencyKey: "MS001:fund",
					Description:    "第一阶段交付",
					Amount:         500000,
					Currency:       "CNY",
				}).Return("wx-txn-001", nil)
				deps.repo.EXPECT().Fund(gomock.Any(), gomock.Any(), gomock.Any(), partnerOperator()).
					DoAndReturn(func(ctx context.Context, m domain.Milestone, escrow domain.Escrow, operator domain.Operator) error {
						assert.Equal(t, int64(500000), escrow.AmountHeld)
						assert.Equal(t, "wx-txn-001", escrow.CustodyRef)
						assert.Len(t, escrow.SN, 32)
						return nil
					})
			},
		},
		{
			name: "托管已受理未确认, 停在 FINALIZED",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(finalized, nil)
				// 未支付完成时托管方给不出交易号, 落库的是商户侧单号
				deps.provider.EXPECT().Capture(gomock.Any(), gomock.Any()).
					Return("", custody.ErrCapturePending)
				deps.repo.EXPECT().SetCaptureRef(gomock.Any(), int64(301), "MS001:fund").Return(nil)
			},
			wantReason: domain.ReasonCapturePending,
		},
		{
			name: "托管方不可用, 可重试",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(finalized, nil)
				deps.provider.EXPECT().Capture(gomock.Any(), gomock.Any()).
					Return("", custody.ErrCaptureFailed)
			},
			wantErr: ErrExternalCustodyFailure,
		},
		{
			name: "未定稿不能入账",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).
					Return(domain.Milestone{ID: 301, Status: domain.StatusProposed}, nil)
			},
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(t, ctrl, Config{})
			tc.mock(deps)
			m, err := svc.Fund(context.Background(), 301, partnerOperator())
			if tc.wantReason != "" {
				var pre *domain.PreconditionError
				require.ErrorAs(t, err, &pre)
				assert.Equal(t, tc.wantReason, pre.Reason)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, domain.StatusFunded, m.Status)
				assert.Equal(t, domain.EscrowStatusHeld, m.EscrowStatus)
			}
		})
	}
}

func TestService_Submit(t *testing.T) {
	t.Parallel()
	inProgress := domain.Milestone{ID: 301, SN: "MS001", Status: domain.StatusInProgress, Version: 5}
	testCases := []struct {
		name       string
		mock       func(deps testDeps)
		wantReason string
	}{
		{
			name: "有交付物, 提交后进入导师审核",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(inProgress, nil)
				deps.repo.EXPECT().CountArtifacts(gomock.Any(), int64(301)).Return(int64(2), nil)
				gomock.InOrder(
					deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
						domain.StatusSubmitted, nil, studentOperator(), "").Return(nil),
					deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
						domain.StatusSupervisorReview, nil, studentOperator(), "").Return(nil),
				)
			},
		},
		{
			name: "没有交付物不允许提交",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(inProgress, nil)
				deps.repo.EXPECT().CountArtifacts(gomock.Any(), int64(301)).Return(int64(0), nil)
			},
			wantReason: domain.ReasonArtifactRequired,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(t, ctrl, Config{})
			tc.mock(deps)
			m, err := svc.Submit(context.Background(), 301, studentOperator())
			if tc.wantReason != "" {
				var pre *domain.PreconditionError
				require.ErrorAs(t, err, &pre)
				assert.Equal(t, tc.wantReason, pre.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusSupervisorReview, m.Status)
		})
	}
}

func TestService_SupervisorReview(t *testing.T) {
	t.Parallel()
	inReview := domain.Milestone{ID: 301, SN: "MS001", Status: domain.StatusSupervisorReview, Version: 7}
	testCases := []struct {
		name       string
		approve    bool
		mock       func(deps testDeps)
		wantStatus domain.Status
		wantGate   bool
	}{
		{
			name:    "通过后置导师门并转合作方验收",
			approve: true,
			mock: func(deps testDeps) {
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
					domain.StatusPartnerReview,
					map[string]any{"supervisor_gate": true},
					supervisorOperator(), "质量达标").Return(nil)
			},
			wantStatus: domain.StatusPartnerReview,
			wantGate:   true,
		},
		{
			name:    "打回返工并清掉导师门",
			approve: false,
			mock: func(deps testDeps) {
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
					domain.StatusChangesRequested,
					map[string]any{"supervisor_gate": false},
					supervisorOperator(), "质量达标").Return(nil)
			},
			wantStatus: domain.StatusChangesRequested,
			wantGate:   false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(t, ctrl, Config{})
			deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(inReview, nil)
			tc.mock(deps)
			m, err := svc.SupervisorReview(context.Background(), 301, tc.approve, "质量达标", supervisorOperator())
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, m.Status)
			assert.Equal(t, tc.wantGate, m.SupervisorGate)
		})
	}
}

func TestService_PartnerReview(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		cfg        Config
		milestone  domain.Milestone
		approve    bool
		mock       func(deps testDeps)
		wantStatus domain.Status
		wantReason string
	}{
		{
			name: "导师门已放行, 验收通过",
			milestone: domain.Milestone{
				ID: 301, Status: domain.StatusPartnerReview,
				SupervisorGate: true, Amount: 500000, Version: 8,
			},
			approve: true,
			mock: func(deps testDeps) {
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
					domain.StatusApproved, map[string]any{},
					partnerOperator(), "").Return(nil)
			},
			wantStatus: domain.StatusApproved,
		},
		{
			name: "导师门未放行不能通过",
			milestone: domain.Milestone{
				ID: 301, Status: domain.StatusPartnerReview,
				SupervisorGate: false, Amount: 500000, Version: 8,
			},
			approve:    true,
			mock:       func(deps testDeps) {},
			wantReason: domain.ReasonGateNotSet,
		},
		{
			name: "小额快速通道视同导师门放行",
			cfg:  Config{FastPathMaxAmount: 10000},
			milestone: domain.Milestone{
				ID: 301, Status: domain.StatusPartnerReview,
				SupervisorGate: false, Amount: 8000, Version: 8,
			},
			approve: true,
			mock: func(deps testDeps) {
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
					domain.StatusApproved,
					map[string]any{"supervisor_gate": true},
					partnerOperator(), "").Return(nil)
			},
			wantStatus: domain.StatusApproved,
		},
		{
			name: "快速通道对大额不生效",
			cfg:  Config{FastPathMaxAmount: 10000},
			milestone: domain.Milestone{
				ID: 301, Status: domain.StatusPartnerReview,
				SupervisorGate: false, Amount: 500000, Version: 8,
			},
			approve:    true,
			mock:       func(deps testDeps) {},
			wantReason: domain.ReasonGateNotSet,
		},
		{
			name: "打回返工",
			milestone: domain.Milestone{
				ID: 301, Status: domain.StatusPartnerReview,
				SupervisorGate: true, Amount: 500000, Version: 8,
			},
			approve: false,
			mock: func(deps testDeps) {
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
					domain.StatusChangesRequested,
					map[string]any{"supervisor_gate": false},
					partnerOperator(), "").Return(nil)
			},
			wantStatus: domain.StatusChangesRequested,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(t, ctrl, tc.cfg)
			deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(tc.milestone, nil)
			tc.mock(deps)
			m, err := svc.PartnerReview(context.Background(), 301, tc.approve, "", partnerOperator())
			if tc.wantReason != "" {
				var pre *domain.PreconditionError
				require.ErrorAs(t, err, &pre)
				assert.Equal(t, tc.wantReason, pre.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, m.Status)
		})
	}
}

func TestService_Release(t *testing.T) {
	t.Parallel()
	approved := domain.Milestone{
		ID: 301, SN: "MS001", StudentID: 2001,
		Title: "第一阶段交付", Amount: 500000, Currency: "CNY",
		Status: domain.StatusApproved, SupervisorGate: true, Version: 9,
	}
	heldEscrow := domain.Escrow{
		ID: 11, MilestoneID: 301, SN: "ES001",
		AmountHeld: 500000, Currency: "CNY",
		CustodyRef: "wx-txn-001", Status: domain.EscrowStatusHeld,
	}
	noHolds := func(deps testDeps) {
		deps.disputeSvc.EXPECT().HasActiveHold(gomock.Any(), dispute.SubjectTypeMilestone, int64(301)).
			Return(false, nil)
		deps.disputeSvc.EXPECT().HasActiveHold(gomock.Any(), dispute.SubjectTypePayout, int64(301)).
			Return(false, nil)
	}
	testCases := []struct {
		name       string
		mock       func(deps testDeps)
		wantErr    error
		wantReason string
	}{
		{
			name: "守卫全过, 放款成功",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(approved, nil)
				deps.repo.EXPECT().FindEscrow(gomock.Any(), int64(301)).Return(heldEscrow, nil)
				noHolds(deps)
				deps.provider.EXPECT().Disburse(gomock.Any(), custody.DisburseRequest{
					IdempotencyKey: "MS001:release",
					CustodyRef:     "wx-txn-001",
					PayeeAccount:   "2001",
					Amount:         500000,
					Currency:       "CNY",
					Remark:         "第一阶段交付",
				}).Return("wx-batch-001", nil)
				deps.repo.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any(), partnerOperator()).
					Return(nil)
			},
		},
		{
			name: "没有托管记录不放款",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(approved, nil)
				deps.repo.EXPECT().FindEscrow(gomock.Any(), int64(301)).
					Return(domain.Escrow{}, repository.ErrRecordNotFound)
			},
			wantReason: domain.ReasonEscrowNotHeld,
		},
		{
			name: "托管已放款过不重复放",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(approved, nil)
				released := heldEscrow
				released.Status = domain.EscrowStatusReleased
				deps.repo.EXPECT().FindEscrow(gomock.Any(), int64(301)).Return(released, nil)
			},
			wantReason: domain.ReasonEscrowNotHeld,
		},
		{
			name: "里程碑被争议压住不放款",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(approved, nil)
				deps.repo.EXPECT().FindEscrow(gomock.Any(), int64(301)).Return(heldEscrow, nil)
				deps.disputeSvc.EXPECT().HasActiveHold(gomock.Any(), dispute.SubjectTypeMilestone, int64(301)).
					Return(true, nil)
				deps.disputeSvc.EXPECT().HasActiveHold(gomock.Any(), dispute.SubjectTypePayout, int64(301)).
					Return(false, nil)
			},
			wantReason: domain.ReasonDisputeOpen,
		},
		{
			name: "导师门未放行不放款",
			mock: func(deps testDeps) {
				gateless := approved
				gateless.SupervisorGate = false
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(gateless, nil)
			},
			wantReason: domain.ReasonGateNotSet,
		},
		{
			name: "托管放款失败保持原状态",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(approved, nil)
				deps.repo.EXPECT().FindEscrow(gomock.Any(), int64(301)).Return(heldEscrow, nil)
				noHolds(deps)
				deps.provider.EXPECT().Disburse(gomock.Any(), gomock.Any()).
					Return("", custody.ErrCaptureFailed)
			},
			wantErr: ErrExternalCustodyFailure,
		},
		{
			name: "并发放款只生效一个",
			mock: func(deps testDeps) {
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(approved, nil)
				deps.repo.EXPECT().FindEscrow(gomock.Any(), int64(301)).Return(heldEscrow, nil)
				noHolds(deps)
				deps.provider.EXPECT().Disburse(gomock.Any(), gomock.Any()).
					Return("wx-batch-001", nil)
				deps.repo.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any(), partnerOperator()).
					Return(ErrRecordChangedConcurrently)
			},
			wantErr: ErrRecordChangedConcurrently,
		},
		{
			name: "未通过验收不放款",
			mock: func(deps testDeps) {
				released := approved
				released.Status = domain.StatusReleased
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(released, nil)
			},
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(t, ctrl, Config{})
			tc.mock(deps)
			m, err := svc.Release(context.Background(), 301, partnerOperator())
			if tc.wantReason != "" {
				var pre *domain.PreconditionError
				require.ErrorAs(t, err, &pre)
				assert.Equal(t, tc.wantReason, pre.Reason)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, domain.StatusReleased, m.Status)
				assert.Equal(t, domain.EscrowStatusReleased, m.EscrowStatus)
			}
		})
	}
}

func TestService_DisapproveAndRevert(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		milestone domain.Milestone
		mock      func(deps testDeps)
		wantErr   error
	}{
		{
			name:      "验收后打回返工",
			milestone: domain.Milestone{ID: 301, Status: domain.StatusApproved, SupervisorGate: true, Version: 9},
			mock: func(deps testDeps) {
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
					domain.StatusChangesRequested,
					map[string]any{"supervisor_gate": false},
					partnerOperator(), "验收材料造假").Return(nil)
			},
		},
		{
			name:      "已打回时幂等",
			milestone: domain.Milestone{ID: 301, Status: domain.StatusChangesRequested, Version: 10},
			mock:      func(deps testDeps) {},
		},
		{
			name:      "进行中不能打回",
			milestone: domain.Milestone{ID: 301, Status: domain.StatusInProgress, Version: 5},
			mock:      func(deps testDeps) {},
			wantErr:   ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(t, ctrl, Config{})
			deps.repo.EXPECT().FindByID(gomock.Any(), int64(301)).Return(tc.milestone, nil)
			tc.mock(deps)
			m, err := svc.DisapproveAndRevert(context.Background(), 301, "验收材料造假", partnerOperator())
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, domain.StatusChangesRequested, m.Status)
				assert.False(t, m.SupervisorGate)
			}
		})
	}
}

func TestService_ConfirmRelease(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		milestone domain.Milestone
		mock      func(deps testDeps)
		wantErr   error
	}{
		{
			name: "放款到账后完成",
			milestone: domain.Milestone{
				ID: 301, SN: "MS001", ProjectID: 100, StudentID: 2001,
				Amount: 500000, Currency: "CNY",
				DueDate: time.Now().Add(24 * time.Hour).UnixMilli(),
				Status:  domain.StatusReleased, Version: 10,
			},
			mock: func(deps testDeps) {
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
					domain.StatusCompleted, nil,
					domain.Operator{Role: domain.RoleSystem}, "").Return(nil)
			},
		},
		{
			name:      "重复投递时幂等",
			milestone: domain.Milestone{ID: 301, SN: "MS001", Status: domain.StatusCompleted, Version: 11},
			mock:      func(deps testDeps) {},
		},
		{
			name:      "未放款不能完成",
			milestone: domain.Milestone{ID: 301, SN: "MS001", Status: domain.StatusApproved, Version: 9},
			mock:      func(deps testDeps) {},
			wantErr:   ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(t, ctrl, Config{})
			deps.repo.EXPECT().FindBySN(gomock.Any(), "MS001").Return(tc.milestone, nil)
			tc.mock(deps)
			err := svc.ConfirmRelease(context.Background(), "MS001", time.Now().UnixMilli())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_ResolveCapture(t *testing.T) {
	t.Parallel()
	pending := domain.Milestone{
		ID: 301, SN: "MS001", PartnerID: 3001,
		Amount: 500000, Currency: "CNY",
		Status: domain.StatusFinalized, Version: 3,
	}
	testCases := []struct {
		name string
		mock func(deps testDeps)
	}{
		{
			name: "回查确认持有后补做入账",
			mock: func(deps testDeps) {
				deps.provider.EXPECT().QueryCapture(gomock.Any(), "MS001:fund").
					Return(custody.CaptureStatusHeld, "wx-txn-001", nil)
				deps.repo.EXPECT().Fund(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "回查确认失败后清掉单号",
			mock: func(deps testDeps) {
				deps.provider.EXPECT().QueryCapture(gomock.Any(), "MS001:fund").
					Return(custody.CaptureStatusFailed, "", nil)
				deps.repo.EXPECT().SetCaptureRef(gomock.Any(), int64(301), "").Return(nil)
			},
		},
		{
			name: "仍在处理中则什么都不做",
			mock: func(deps testDeps) {
				deps.provider.EXPECT().QueryCapture(gomock.Any(), "MS001:fund").
					Return(custody.CaptureStatusPending, "wx-txn-001", nil)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(t, ctrl, Config{})
			tc.mock(deps)
			err := svc.ResolveCapture(context.Background(), pending)
			require.NoError(t, err)
		})
	}
}
