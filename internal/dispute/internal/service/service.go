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
	"time"

	"github.com/campusbridge/campusbridge/internal/dispute/internal/domain"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/event"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/repository"
	"github.com/campusbridge/campusbridge/internal/pkg/sequencenumber"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidTransition         = errors.New("非法的状态流转")
	ErrValidationFailed          = errors.New("非法输入")
	ErrUnauthorized              = errors.New("无权限操作")
	ErrTerminalLevel             = domain.ErrTerminalLevel
	ErrRecordChangedConcurrently = repository.ErrRecordChangedConcurrently
)

//go:generate mockgen -source=./service.go -package=disputemocks --destination=../../mocks/dispute.mock.go Service
type Service interface {
	// Raise 发起争议, 固定从 STUDENT_PARTNER 层级开始, 并压住对应标的
	Raise(ctx context.Context, d domain.Dispute) (domain.Dispute, error)
	// StartReview 开始审理, 指定处理人
	StartReview(ctx context.Context, disputeID, assigneeID int64, operator domain.Operator) (domain.Dispute, error)
	// Review 审理结论: RESOLVE 关单放行, ESCALATE 升一级并重新排队
	// 未认领的 OPEN 争议也可以直接裁决, 不强制先 StartReview
	Review(ctx context.Context, disputeID int64, outcome domain.ReviewOutcome, notes string, operator domain.Operator) (domain.Dispute, error)
	Detail(ctx context.Context, id int64) (domain.Dispute, error)
	ListBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID int64) ([]domain.Dispute, error)
	// Queue 某层级的待办队列
	Queue(ctx context.Context, level domain.Level, status domain.Status, offset, limit int) ([]domain.Dispute, int64, error)
	// HasActiveHold 标的是否被未结争议压住, 放款守卫依赖它
	HasActiveHold(ctx context.Context, subjectType domain.SubjectType, subjectID int64) (bool, error)
}

func NewService(repo repository.DisputeRepository, producer event.DisputeEventProducer,
	idGen *snowflake.EventIDGenerator, snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		producer:    producer,
		idGen:       idGen,
		snGenerator: snGenerator,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.DisputeRepository
	producer    event.DisputeEventProducer
	idGen       *snowflake.EventIDGenerator
	snGenerator *sequencenumber.Generator
	logger      *elog.Component
}

func (s *service) Raise(ctx context.Context, d domain.Dispute) (domain.Dispute, error) {
	if d.SubjectType == 0 || d.SubjectID <= 0 || d.Reason == "" || d.RaisedBy <= 0 {
		return domain.Dispute{}, fmt.Errorf("%w: 缺少标的或事由", ErrValidationFailed)
	}
	sn, err := s.snGenerator.Generate(d.RaisedBy)
	if err != nil {
		return domain.Dispute{}, err
	}
	d.SN = sn
	d.Status = domain.StatusOpen
	d.Level = domain.LevelStudentPartner
	d.Version = 1
	created, err := s.repo.Create(ctx, d)
	if err != nil {
		return domain.Dispute{}, err
	}
	s.produceEvent(created, event.TypeRaised)
	return created, nil
}

func (s *service) StartReview(ctx context.Context, disputeID, assigneeID int64, operator domain.Operator) (domain.Dispute, error) {
	d, err := s.repo.FindByID(ctx, disputeID)
	if err != nil {
		return domain.Dispute{}, err
	}
	if err := s.requireLevelRole(operator, d.Level); err != nil {
		return domain.Dispute{}, err
	}
	if d.Status != domain.StatusOpen {
		return domain.Dispute{}, fmt.Errorf("%w: 争议不在待处理状态, status=%d", ErrInvalidTransition, d.Status)
	}
	err = s.repo.UpdateStatus(ctx, d, domain.StatusInReview, d.Level,
		map[string]any{"assignee_id": assigneeID}, operator, "")
	if err != nil {
		return domain.Dispute{}, err
	}
	d.Status = domain.StatusInReview
	d.AssigneeID = assigneeID
	d.Version++
	return d, nil
}

func (s *service) Review(ctx context.Context, disputeID int64, outcome domain.ReviewOutcome, notes string, operator domain.Operator) (domain.Dispute, error) {
	d, err := s.repo.FindByID(ctx, disputeID)
	if err != nil {
		return domain.Dispute{}, err
	}
	if err := s.requireLevelRole(operator, d.Level); err != nil {
		return domain.Dispute{}, err
	}
	if d.Status != domain.StatusOpen && d.Status != domain.StatusInReview {
		return domain.Dispute{}, fmt.Errorf("%w: 争议已关单, status=%d", ErrInvalidTransition, d.Status)
	}
	switch outcome {
	case domain.OutcomeResolve:
		return s.resolve(ctx, d, notes, operator)
	case domain.OutcomeEscalate:
		return s.escalate(ctx, d, notes, operator)
	default:
		return domain.Dispute{}, fmt.Errorf("%w: 未知的审理结论 %d", ErrValidationFailed, outcome)
	}
}

// levelRoles 每一层级的审理人角色, 平台管理员可以代审任意层级。
// 最低层级是当事双方自行协商, 学生和合作方都可以审理
var levelRoles = map[domain.Level][]string{
	domain.LevelStudentPartner:  {domain.RoleStudent, domain.RolePartner},
	domain.LevelSupervisor:      {domain.RoleSupervisor},
	domain.LevelUniversityAdmin: {domain.RoleAdmin},
	domain.LevelSuperAdmin:      {domain.RoleAdmin},
}

func (s *service) requireLevelRole(operator domain.Operator, level domain.Level) error {
	if operator.Role == domain.RoleAdmin {
		return nil
	}
	for _, role := range levelRoles[level] {
		if operator.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: role=%s, level=%d", ErrUnauthorized, operator.Role, level)
}

func (s *service) resolve(ctx context.Context, d domain.Dispute, notes string, operator domain.Operator) (domain.Dispute, error) {
	now := time.Now().UnixMilli()
	if err := s.repo.Resolve(ctx, d, notes, now, operator); err != nil {
		return domain.Dispute{}, err
	}
	d.Status = domain.StatusResolved
	d.Resolution = notes
	d.ResolvedAt = now
	d.Version++
	s.produceEvent(d, event.TypeResolved)
	return d, nil
}

// escalate 升级带版本守卫, 两个并发升级只会生效一个
func (s *service) escalate(ctx context.Context, d domain.Dispute, notes string, operator domain.Operator) (domain.Dispute, error) {
	next, err := d.Level.Next()
	if err != nil {
		return domain.Dispute{}, err
	}
	// 升级后回到待处理, 由上一级重新认领
	err = s.repo.UpdateStatus(ctx, d, domain.StatusOpen, next,
		map[string]any{"assignee_id": 0}, operator, notes)
	if err != nil {
		return domain.Dispute{}, err
	}
	d.Status = domain.StatusOpen
	d.Level = next
	d.AssigneeID = 0
	d.Version++
	s.produceEvent(d, event.TypeEscalated)
	return d, nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Dispute, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID int64) ([]domain.Dispute, error) {
	return s.repo.ListBySubject(ctx, subjectType, subjectID)
}

func (s *service) Queue(ctx context.Context, level domain.Level, status domain.Status, offset, limit int) ([]domain.Dispute, int64, error) {
	var (
		eg       errgroup.Group
		disputes []domain.Dispute
		total    int64
	)
	eg.Go(func() error {
		var err error
		disputes, err = s.repo.ListByLevelAndStatus(ctx, level, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByLevelAndStatus(ctx, level, status)
		return err
	})
	return disputes, total, eg.Wait()
}

func (s *service) HasActiveHold(ctx context.Context, subjectType domain.SubjectType, subjectID int64) (bool, error) {
	return s.repo.HasActiveHold(ctx, subjectType, subjectID)
}

func (s *service) produceEvent(d domain.Dispute, typ string) {
	eventID, err := s.idGen.Generate(snowflake.AppDispute)
	if err != nil {
		s.logger.Error("生成事件ID失败", elog.FieldErr(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	evt := event.DisputeEvent{
		EventID:     eventID.Int64(),
		Type:        typ,
		SN:          d.SN,
		SubjectType: d.SubjectType.ToUint8(),
		SubjectID:   d.SubjectID,
		Level:       d.Level.ToUint8(),
		OccurredAt:  time.Now().UnixMilli(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送争议事件失败",
			elog.FieldErr(err),
			elog.String("sn", d.SN),
			elog.Any("event", evt),
		)
	}
}
