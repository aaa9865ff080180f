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
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/campusbridge/campusbridge/internal/application"
	"github.com/campusbridge/campusbridge/internal/dispute"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/domain"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/event"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/repository"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service/custody"
	"github.com/campusbridge/campusbridge/internal/pkg/sequencenumber"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidTransition         = errors.New("非法的状态流转")
	ErrValidationFailed          = errors.New("非法输入")
	ErrUnauthorized              = errors.New("无权限操作")
	ErrExternalCustodyFailure    = errors.New("托管方调用失败")
	ErrRecordChangedConcurrently = repository.ErrRecordChangedConcurrently
)

type Config struct {
	// FastPathMaxAmount 小额快速通道上限(分), 金额不超过它的里程碑
	// 合作方验收即视同导师门已放行, 0 表示关闭
	FastPathMaxAmount int64
}

//go:generate mockgen -source=./service.go -package=milestonemocks --destination=../../mocks/milestone.mock.go Service
type Service interface {
	// Propose 发起里程碑, 项目的第一个里程碑要求提案人已有被录用的申请
	Propose(ctx context.Context, m domain.Milestone, operator domain.Operator) (domain.Milestone, error)
	// Accept 对方确认条款, 确认即定稿, 此后标题/范围/金额不再可改
	Accept(ctx context.Context, id int64, operator domain.Operator) (domain.Milestone, error)
	// Fund 资金划入托管, 托管方未确认时停在 FINALIZED 可重试
	Fund(ctx context.Context, id int64, operator domain.Operator) (domain.Milestone, error)
	Start(ctx context.Context, id int64, operator domain.Operator) (domain.Milestone, error)
	AddArtifact(ctx context.Context, artifact domain.Artifact, operator domain.Operator) (domain.Artifact, error)
	// Submit 提交验收, 至少要有一件交付物
	Submit(ctx context.Context, id int64, operator domain.Operator) (domain.Milestone, error)
	SupervisorReview(ctx context.Context, id int64, approve bool, notes string, operator domain.Operator) (domain.Milestone, error)
	PartnerReview(ctx context.Context, id int64, approve bool, notes string, operator domain.Operator) (domain.Milestone, error)
	// Release 放款, 四个守卫全过才放: 状态 APPROVED, 托管 HELD, 导师门已放行, 无未结争议
	Release(ctx context.Context, id int64, operator domain.Operator) (domain.Milestone, error)
	// DisapproveAndRevert 审核期内强制打回返工, 已是 CHANGES_REQUESTED 时幂等
	DisapproveAndRevert(ctx context.Context, id int64, notes string, operator domain.Operator) (domain.Milestone, error)
	// ConfirmRelease 托管方到账确认回调, RELEASED -> COMPLETED
	ConfirmRelease(ctx context.Context, sn string, confirmedAt int64) error
	Detail(ctx context.Context, id int64) (domain.Milestone, error)
	List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Milestone, int64, error)
	// FindPendingCaptures 对账任务用, 找出停在 FINALIZED 且有外部单号的里程碑
	FindPendingCaptures(ctx context.Context, offset, limit int) ([]domain.Milestone, int64, error)
	// ResolveCapture 回查托管方划扣结果并收尾
	ResolveCapture(ctx context.Context, m domain.Milestone) error
	Archive(ctx context.Context, id int64) error
}

func NewService(repo repository.MilestoneRepository,
	provider custody.Provider,
	appSvc application.Service,
	disputeSvc dispute.Service,
	statusProducer event.StatusChangedEventProducer,
	factProducer event.PortfolioFactEventProducer,
	idGen *snowflake.EventIDGenerator,
	snGenerator *sequencenumber.Generator,
	cfg Config) Service {
	return &service{
		repo:           repo,
		provider:       provider,
		appSvc:         appSvc,
		disputeSvc:     disputeSvc,
		statusProducer: statusProducer,
		factProducer:   factProducer,
		idGen:          idGen,
		snGenerator:    snGenerator,
		cfg:            cfg,
		logger:         elog.DefaultLogger,
	}
}

type service struct {
	repo           repository.MilestoneRepository
	provider       custody.Provider
	appSvc         application.Service
	disputeSvc     dispute.Service
	statusProducer event.StatusChangedEventProducer
	factProducer   event.PortfolioFactEventProducer
	idGen          *snowflake.EventIDGenerator
	snGenerator    *sequencenumber.Generator
	cfg            Config
	logger         *elog.Component
}

func (s *service) Propose(ctx context.Context, m domain.Milestone, operator domain.Operator) (domain.Milestone, error) {
	if m.ProjectID <= 0 || m.StudentID <= 0 || m.PartnerID <= 0 {
		return domain.Milestone{}, fmt.Errorf("%w: 缺少项目或参与方", ErrValidationFailed)
	}
	if m.Scope == "" || m.AcceptanceCriteria == "" || m.DueDate <= 0 {
		return domain.Milestone{}, fmt.Errorf("%w: 范围/验收标准/截止时间不能为空", ErrValidationFailed)
	}
	if m.Amount <= 0 || m.Currency == "" {
		return domain.Milestone{}, fmt.Errorf("%w: 金额必须为正", ErrValidationFailed)
	}
	// 学生和合作方都可以提案
	if operator.Role != domain.RoleAdmin && operator.ID != m.StudentID && operator.ID != m.PartnerID {
		return domain.Milestone{}, fmt.Errorf("%w: 只有当事双方可以提案", ErrUnauthorized)
	}
	total, err := s.repo.TotalByProject(ctx, m.ProjectID)
	if err != nil {
		return domain.Milestone{}, err
	}
	if total == 0 {
		ok, err := s.appSvc.HasAcceptedApplication(ctx, m.ProjectID, m.StudentID)
		if err != nil {
			return domain.Milestone{}, err
		}
		if !ok {
			return domain.Milestone{}, domain.NewPreconditionError(domain.ReasonOfferNotAccepted)
		}
	}
	sn, err := s.snGenerator.Generate(m.StudentID)
	if err != nil {
		return domain.Milestone{}, err
	}
	m.SN = sn
	m.ProposedBy = operator.ID
	m.Status = domain.StatusProposed
	m.EscrowStatus = domain.EscrowStatusPending
	m.Version = 1
	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return domain.Milestone{}, err
	}
	s.produceStatusEvent(created, domain.StatusDraft, domain.StatusProposed)
	return created, nil
}

func (s *service) Accept(ctx context.Context, id int64, operator domain.Operator) (domain.Milestone, error) {
	if err := s.requireRole(operator, domain.RoleStudent, domain.RolePartner, domain.RoleAdmin); err != nil {
		return domain.Milestone{}, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Milestone{}, err
	}
	if err := s.requireCounterparty(m, operator); err != nil {
		return domain.Milestone{}, err
	}
	// 确认与定稿连着走, 对外只暴露一次确认
	m, err = s.transition(ctx, m, domain.StatusAccepted, nil, operator, "")
	if err != nil {
		return domain.Milestone{}, err
	}
	return s.transition(ctx, m, domain.StatusFinalized, nil, operator, "")
}

// requireCounterparty 提案只能由另一方定稿, 提案方不能自己确认
func (s *service) requireCounterparty(m domain.Milestone, operator domain.Operator) error {
	if operator.Role == domain.RoleAdmin {
		return nil
	}
	if operator.ID == m.ProposedBy {
		return fmt.Errorf("%w: 提案方不能确认自己的提案", ErrUnauthorized)
	}
	if operator.ID != m.StudentID && operator.ID != m.PartnerID {
		return fmt.Errorf("%w: 非里程碑参与方", ErrUnauthorized)
	}
	return nil
}

func (s *service) Fund(ctx context.Context, id int64, operator domain.Operator) (domain.Milestone, error) {
	if err := s.requireRole(operator, domain.RolePartner, domain.RoleAdmin); err != nil {
		return domain.Milestone{}, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Milestone{}, err
	}
	if m.Status != domain.StatusFinalized {
		return domain.Milestone{}, fmt.Errorf("%w: 里程碑未定稿, status=%d", ErrInvalidTransition, m.Status)
	}
	ref, err := s.provider.Capture(ctx, custody.CaptureRequest{
		IdempotencyKey: captureKey(m.SN),
		Description:    m.Title,
		Amount:         m.Amount,
		Currency:       m.Currency,
	})
	if err != nil {
		if errors.Is(err, custody.ErrCapturePending) {
			// 未支付完成时托管方还没有交易号, 落库商户侧单号, 对账任务据此回查
			if err := s.repo.SetCaptureRef(ctx, m.ID, captureKey(m.SN)); err != nil {
				return domain.Milestone{}, err
			}
			return domain.Milestone{}, domain.NewPreconditionError(domain.ReasonCapturePending)
		}
		return domain.Milestone{}, fmt.Errorf("%w: %w", ErrExternalCustodyFailure, err)
	}
	return s.completeFund(ctx, m, ref, operator)
}

// completeFund 托管已确认持有资金后的收尾: 建托管记录并推进状态
func (s *service) completeFund(ctx context.Context, m domain.Milestone, custodyRef string, operator domain.Operator) (domain.Milestone, error) {
	escrowSN, err := s.snGenerator.Generate(m.PartnerID)
	if err != nil {
		return domain.Milestone{}, err
	}
	err = s.repo.Fund(ctx, m, domain.Escrow{
		SN:         escrowSN,
		AmountHeld: m.Amount,
		Currency:   m.Currency,
		CustodyRef: custodyRef,
	}, operator)
	if err != nil {
		return domain.Milestone{}, err
	}
	from := m.Status
	m.Status = domain.StatusFunded
	m.EscrowStatus = domain.EscrowStatusHeld
	m.Version++
	s.produceStatusEvent(m, from, domain.StatusFunded)
	return m, nil
}

func (s *service) Start(ctx context.Context, id int64, operator domain.Operator) (domain.Milestone, error) {
	if err := s.requireRole(operator, domain.RoleStudent, domain.RoleAdmin); err != nil {
		return domain.Milestone{}, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Milestone{}, err
	}
	return s.transition(ctx, m, domain.StatusInProgress, nil, operator, "")
}

func (s *service) AddArtifact(ctx context.Context, artifact domain.Artifact, operator domain.Operator) (domain.Artifact, error) {
	if err := s.requireRole(operator, domain.RoleStudent, domain.RoleAdmin); err != nil {
		return domain.Artifact{}, err
	}
	if artifact.MilestoneID <= 0 || artifact.URI == "" {
		return domain.Artifact{}, fmt.Errorf("%w: 缺少里程碑或交付物地址", ErrValidationFailed)
	}
	m, err := s.repo.FindByID(ctx, artifact.MilestoneID)
	if err != nil {
		return domain.Artifact{}, err
	}
	if m.Status != domain.StatusInProgress {
		return domain.Artifact{}, fmt.Errorf("%w: 里程碑不在进行中, status=%d", ErrInvalidTransition, m.Status)
	}
	artifact.UploadedBy = operator.ID
	return s.repo.AddArtifact(ctx, artifact)
}

func (s *service) Submit(ctx context.Context, id int64, operator domain.Operator) (domain.Milestone, error) {
	if err := s.requireRole(operator, domain.RoleStudent, domain.RoleAdmin); err != nil {
		return domain.Milestone{}, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Milestone{}, err
	}
	if m.Status != domain.StatusInProgress {
		return domain.Milestone{}, fmt.Errorf("%w: 里程碑不在进行中, status=%d", ErrInvalidTransition, m.Status)
	}
	cnt, err := s.repo.CountArtifacts(ctx, m.ID)
	if err != nil {
		return domain.Milestone{}, err
	}
	if cnt == 0 {
		return domain.Milestone{}, domain.NewPreconditionError(domain.ReasonArtifactRequired)
	}
	// 提交后立即进入导师审核队列
	m, err = s.transition(ctx, m, domain.StatusSubmitted, nil, operator, "")
	if err != nil {
		return domain.Milestone{}, err
	}
	return s.transition(ctx, m, domain.StatusSupervisorReview, nil, operator, "")
}

func (s *service) SupervisorReview(ctx context.Context, id int64, approve bool, notes string, operator domain.Operator) (domain.Milestone, error) {
	if err := s.requireRole(operator, domain.RoleSupervisor, domain.RoleAdmin); err != nil {
		return domain.Milestone{}, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Milestone{}, err
	}
	if m.Status != domain.StatusSupervisorReview {
		return domain.Milestone{}, fmt.Errorf("%w: 里程碑不在导师审核中, status=%d", ErrInvalidTransition, m.Status)
	}
	if approve {
		m, err = s.transition(ctx, m, domain.StatusPartnerReview,
			map[string]any{"supervisor_gate": true}, operator, notes)
		if err != nil {
			return domain.Milestone{}, err
		}
		m.SupervisorGate = true
		return m, nil
	}
	m, err = s.transition(ctx, m, domain.StatusChangesRequested,
		map[string]any{"supervisor_gate": false}, operator, notes)
	if err != nil {
		return domain.Milestone{}, err
	}
	m.SupervisorGate = false
	return m, nil
}

func (s *service) PartnerReview(ctx context.Context, id int64, approve bool, notes string, operator domain.Operator) (domain.Milestone, error) {
	if err := s.requireRole(operator, domain.RolePartner, domain.RoleAdmin); err != nil {
		return domain.Milestone{}, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Milestone{}, err
	}
	if m.Status != domain.StatusPartnerReview {
		return domain.Milestone{}, fmt.Errorf("%w: 里程碑不在合作方验收中, status=%d", ErrInvalidTransition, m.Status)
	}
	if !approve {
		m, err = s.transition(ctx, m, domain.StatusChangesRequested,
			map[string]any{"supervisor_gate": false}, operator, notes)
		if err != nil {
			return domain.Milestone{}, err
		}
		m.SupervisorGate = false
		return m, nil
	}
	fields := map[string]any{}
	if !m.SupervisorGate {
		if !s.fastPathEligible(m) {
			return domain.Milestone{}, domain.NewPreconditionError(domain.ReasonGateNotSet)
		}
		// 小额快速通道: 合作方验收即视同导师门放行
		fields["supervisor_gate"] = true
	}
	m, err = s.transition(ctx, m, domain.StatusApproved, fields, operator, notes)
	if err != nil {
		return domain.Milestone{}, err
	}
	m.SupervisorGate = true
	return m, nil
}

func (s *service) fastPathEligible(m domain.Milestone) bool {
	return s.cfg.FastPathMaxAmount > 0 && m.Amount <= s.cfg.FastPathMaxAmount
}

func (s *service) Release(ctx context.Context, id int64, operator domain.Operator) (domain.Milestone, error) {
	if err := s.requireRole(operator, domain.RolePartner, domain.RoleAdmin); err != nil {
		return domain.Milestone{}, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Milestone{}, err
	}
	if m.Status != domain.StatusApproved {
		return domain.Milestone{}, fmt.Errorf("%w: 里程碑未通过验收, status=%d", ErrInvalidTransition, m.Status)
	}
	if !m.SupervisorGate {
		return domain.Milestone{}, domain.NewPreconditionError(domain.ReasonGateNotSet)
	}
	escrow, err := s.repo.FindEscrow(ctx, m.ID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Milestone{}, domain.NewPreconditionError(domain.ReasonEscrowNotHeld)
		}
		return domain.Milestone{}, err
	}
	if escrow.Status != domain.EscrowStatusHeld {
		return domain.Milestone{}, domain.NewPreconditionError(domain.ReasonEscrowNotHeld)
	}
	if err := s.requireNoActiveHold(ctx, m.ID); err != nil {
		return domain.Milestone{}, err
	}
	_, err = s.provider.Disburse(ctx, custody.DisburseRequest{
		IdempotencyKey: releaseKey(m.SN),
		CustodyRef:     escrow.CustodyRef,
		PayeeAccount:   strconv.FormatInt(m.StudentID, 10),
		Amount:         escrow.AmountHeld,
		Currency:       escrow.Currency,
		Remark:         m.Title,
	})
	if err != nil {
		return domain.Milestone{}, fmt.Errorf("%w: %w", ErrExternalCustodyFailure, err)
	}
	now := time.Now().UnixMilli()
	if err := s.repo.Release(ctx, m, now, operator); err != nil {
		return domain.Milestone{}, err
	}
	from := m.Status
	m.Status = domain.StatusReleased
	m.EscrowStatus = domain.EscrowStatusReleased
	m.Version++
	s.produceStatusEvent(m, from, domain.StatusReleased)
	return m, nil
}

// requireNoActiveHold 里程碑本身和款项任一被争议压住都不放款
func (s *service) requireNoActiveHold(ctx context.Context, milestoneID int64) error {
	var eg errgroup.Group
	var milestoneHeld, payoutHeld bool
	eg.Go(func() error {
		var err error
		milestoneHeld, err = s.disputeSvc.HasActiveHold(ctx, dispute.SubjectTypeMilestone, milestoneID)
		return err
	})
	eg.Go(func() error {
		var err error
		payoutHeld, err = s.disputeSvc.HasActiveHold(ctx, dispute.SubjectTypePayout, milestoneID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	if milestoneHeld || payoutHeld {
		return domain.NewPreconditionError(domain.ReasonDisputeOpen)
	}
	return nil
}

func (s *service) DisapproveAndRevert(ctx context.Context, id int64, notes string, operator domain.Operator) (domain.Milestone, error) {
	if err := s.requireRole(operator, domain.RolePartner, domain.RoleAdmin); err != nil {
		return domain.Milestone{}, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Milestone{}, err
	}
	if m.Status == domain.StatusChangesRequested {
		// 幂等: 已经打回就不再动
		return m, nil
	}
	switch m.Status {
	case domain.StatusSupervisorReview, domain.StatusPartnerReview, domain.StatusApproved:
	default:
		return domain.Milestone{}, fmt.Errorf("%w: 当前状态不允许打回, status=%d", ErrInvalidTransition, m.Status)
	}
	m, err = s.transition(ctx, m, domain.StatusChangesRequested,
		map[string]any{"supervisor_gate": false}, operator, notes)
	if err != nil {
		return domain.Milestone{}, err
	}
	m.SupervisorGate = false
	return m, nil
}

func (s *service) ConfirmRelease(ctx context.Context, sn string, confirmedAt int64) error {
	m, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return err
	}
	if m.Status == domain.StatusCompleted {
		// 消息可能重复投递
		return nil
	}
	if m.Status != domain.StatusReleased {
		return fmt.Errorf("%w: 里程碑未放款, status=%d", ErrInvalidTransition, m.Status)
	}
	_, err = s.transition(ctx, m, domain.StatusCompleted, nil,
		domain.Operator{Role: domain.RoleSystem}, "")
	if err != nil {
		return err
	}
	s.producePortfolioFact(m, confirmedAt)
	return nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Milestone, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Milestone, int64, error) {
	var (
		eg         errgroup.Group
		milestones []domain.Milestone
		total      int64
	)
	eg.Go(func() error {
		var err error
		milestones, err = s.repo.ListByProject(ctx, projectID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByProject(ctx, projectID)
		return err
	})
	return milestones, total, eg.Wait()
}

func (s *service) FindPendingCaptures(ctx context.Context, offset, limit int) ([]domain.Milestone, int64, error) {
	var (
		eg         errgroup.Group
		milestones []domain.Milestone
		total      int64
	)
	eg.Go(func() error {
		var err error
		milestones, err = s.repo.FindPendingCaptures(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalPendingCaptures(ctx)
		return err
	})
	return milestones, total, eg.Wait()
}

func (s *service) ResolveCapture(ctx context.Context, m domain.Milestone) error {
	status, ref, err := s.provider.QueryCapture(ctx, captureKey(m.SN))
	if err != nil {
		return err
	}
	switch status {
	case custody.CaptureStatusHeld:
		_, err = s.completeFund(ctx, m, ref, domain.Operator{Role: domain.RoleSystem})
		return err
	case custody.CaptureStatusFailed:
		// 划扣失败, 清掉外部单号, 合作方可重新发起
		return s.repo.SetCaptureRef(ctx, m.ID, "")
	default:
		return nil
	}
}

func (s *service) Archive(ctx context.Context, id int64) error {
	return s.repo.Archive(ctx, id)
}

func (s *service) transition(ctx context.Context, m domain.Milestone, to domain.Status,
	fields map[string]any, operator domain.Operator, notes string) (domain.Milestone, error) {
	if !m.Status.CanTransitionTo(to) {
		return domain.Milestone{}, fmt.Errorf("%w: %d -> %d", ErrInvalidTransition, m.Status, to)
	}
	if err := s.repo.UpdateStatus(ctx, m, to, fields, operator, notes); err != nil {
		return domain.Milestone{}, err
	}
	from := m.Status
	m.Status = to
	m.Version++
	s.produceStatusEvent(m, from, to)
	return m, nil
}

func (s *service) requireRole(operator domain.Operator, roles ...string) error {
	if !slice.Contains(roles, operator.Role) {
		return fmt.Errorf("%w: 角色 %q 不允许此操作", ErrUnauthorized, operator.Role)
	}
	return nil
}

func captureKey(sn string) string {
	return fmt.Sprintf("%s:fund", sn)
}

func releaseKey(sn string) string {
	return fmt.Sprintf("%s:release", sn)
}

func (s *service) produceStatusEvent(m domain.Milestone, from, to domain.Status) {
	eventID, err := s.idGen.Generate(snowflake.AppMilestone)
	if err != nil {
		s.logger.Error("生成事件ID失败", elog.FieldErr(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	evt := event.StatusChangedEvent{
		EventID:    eventID.Int64(),
		SN:         m.SN,
		ProjectID:  m.ProjectID,
		FromStatus: from.ToUint8(),
		ToStatus:   to.ToUint8(),
		OccurredAt: time.Now().UnixMilli(),
	}
	if err := s.statusProducer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送里程碑状态事件失败",
			elog.FieldErr(err),
			elog.String("sn", m.SN),
			elog.Any("event", evt),
		)
	}
}

func (s *service) producePortfolioFact(m domain.Milestone, completedAt int64) {
	eventID, err := s.idGen.Generate(snowflake.AppMilestone)
	if err != nil {
		s.logger.Error("生成事件ID失败", elog.FieldErr(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	evt := event.PortfolioFactEvent{
		EventID:     eventID.Int64(),
		SN:          m.SN,
		ProjectID:   m.ProjectID,
		StudentID:   m.StudentID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		OnTime:      completedAt <= m.DueDate,
		CompletedAt: completedAt,
	}
	if err := s.factProducer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送作品集事实事件失败",
			elog.FieldErr(err),
			elog.String("sn", m.SN),
			elog.Any("event", evt),
		)
	}
}
