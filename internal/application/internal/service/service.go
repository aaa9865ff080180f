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
	"sort"
	"time"

	"github.com/campusbridge/campusbridge/internal/application/internal/domain"
	"github.com/campusbridge/campusbridge/internal/application/internal/event"
	"github.com/campusbridge/campusbridge/internal/application/internal/repository"
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
	ErrOfferExpired              = errors.New("offer已过期")
	ErrRecordChangedConcurrently = repository.ErrRecordChangedConcurrently
)

//go:generate mockgen -source=./service.go -package=applicationmocks --destination=../../mocks/application.mock.go Service
type Service interface {
	Submit(ctx context.Context, app domain.Application) (domain.Application, error)
	// Evaluate 生成一条新的评分记录
	// 发出 offer 之前的评估会替换参与排名的评分, 之后的评估只追加审计记录
	Evaluate(ctx context.Context, applicationID int64, auto domain.AutoFactors, supervisor, partner *float64) (domain.Score, error)
	// Shortlist 把达标的 SUBMITTED 申请移入 SHORTLISTED, 返回入围的申请ID
	// 同分按提交时间早者优先
	Shortlist(ctx context.Context, projectID int64, criteria domain.ShortlistCriteria, operator domain.Operator) ([]int64, error)
	Waitlist(ctx context.Context, applicationID int64, operator domain.Operator) (domain.Application, error)
	Reject(ctx context.Context, applicationID int64, operator domain.Operator) (domain.Application, error)
	ExtendOffer(ctx context.Context, applicationID int64, expiresAt int64, operator domain.Operator) (domain.Application, error)
	RespondToOffer(ctx context.Context, applicationID int64, accept bool, operator domain.Operator) (domain.Application, error)
	Assign(ctx context.Context, applicationID int64, operator domain.Operator) (domain.Application, error)
	Detail(ctx context.Context, id int64) (domain.Application, error)
	List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Application, int64, error)
	// FindExpiredOffers 与 ExpireOffer 供过期清扫任务使用
	FindExpiredOffers(ctx context.Context, offset, limit int, now int64) ([]domain.Application, int64, error)
	ExpireOffer(ctx context.Context, app domain.Application) error
	// HasAcceptedApplication 里程碑模块据此校验首个里程碑的创建资格
	HasAcceptedApplication(ctx context.Context, projectID, uid int64) (bool, error)
	Archive(ctx context.Context, id int64) error
}

func NewService(repo repository.ApplicationRepository, weights domain.ScoreWeights,
	producer event.StatusChangedEventProducer, idGen *snowflake.EventIDGenerator,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		weights:     weights,
		producer:    producer,
		idGen:       idGen,
		snGenerator: snGenerator,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.ApplicationRepository
	weights     domain.ScoreWeights
	producer    event.StatusChangedEventProducer
	idGen       *snowflake.EventIDGenerator
	snGenerator *sequencenumber.Generator
	logger      *elog.Component
}

func (s *service) Submit(ctx context.Context, app domain.Application) (domain.Application, error) {
	if app.ProjectID <= 0 || len(app.ApplicantIDs) == 0 {
		return domain.Application{}, fmt.Errorf("%w: 缺少项目或申请人", ErrValidationFailed)
	}
	if app.Type == domain.TypeIndividual && len(app.ApplicantIDs) != 1 {
		return domain.Application{}, fmt.Errorf("%w: 个人申请只能有一个申请人", ErrValidationFailed)
	}
	sn, err := s.snGenerator.Generate(app.ApplicantIDs[0])
	if err != nil {
		return domain.Application{}, err
	}
	app.SN = sn
	app.Status = domain.StatusSubmitted
	app.Version = 1
	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return domain.Application{}, err
	}
	s.produceStatusEvent(created, 0, domain.StatusSubmitted)
	return created, nil
}

func (s *service) Evaluate(ctx context.Context, applicationID int64, auto domain.AutoFactors, supervisor, partner *float64) (domain.Score, error) {
	app, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return domain.Score{}, err
	}
	autoScore := s.weights.AutoScore(auto)
	score := domain.Score{
		ApplicationID: applicationID,
		Auto:          auto,
		AutoScore:     autoScore,
		Supervisor:    supervisor,
		Partner:       partner,
		Final:         s.weights.FinalScore(autoScore, supervisor, partner),
	}
	// offer 一旦发出, 排名用的评分即冻结, 重新评估只留档不替换
	link := app.Status == domain.StatusSubmitted ||
		app.Status == domain.StatusShortlisted ||
		app.Status == domain.StatusWaitlist
	return s.repo.CreateScore(ctx, score, link)
}

func (s *service) Shortlist(ctx context.Context, projectID int64, criteria domain.ShortlistCriteria, operator domain.Operator) ([]int64, error) {
	if err := s.requireRole(operator, domain.RolePartner, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if criteria.TopN <= 0 && criteria.Threshold <= 0 {
		return nil, fmt.Errorf("%w: 入围条件为空", ErrValidationFailed)
	}
	apps, err := s.repo.FindByProjectAndStatus(ctx, projectID, domain.StatusSubmitted)
	if err != nil {
		return nil, err
	}
	// 总分降序, 同分按提交时间升序, 再按ID保证完全确定
	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].Score.Final != apps[j].Score.Final {
			return apps[i].Score.Final > apps[j].Score.Final
		}
		if apps[i].Ctime != apps[j].Ctime {
			return apps[i].Ctime < apps[j].Ctime
		}
		return apps[i].ID < apps[j].ID
	})
	var selected []domain.Application
	if criteria.TopN > 0 {
		n := criteria.TopN
		if n > len(apps) {
			n = len(apps)
		}
		selected = apps[:n]
	} else {
		for _, app := range apps {
			if app.Score.Final >= criteria.Threshold {
				selected = append(selected, app)
			}
		}
	}
	ids := make([]int64, 0, len(selected))
	for _, app := range selected {
		if _, err := s.transition(ctx, app, domain.StatusShortlisted, nil, operator); err != nil {
			return ids, err
		}
		ids = append(ids, app.ID)
	}
	return ids, nil
}

func (s *service) Waitlist(ctx context.Context, applicationID int64, operator domain.Operator) (domain.Application, error) {
	if err := s.requireRole(operator, domain.RolePartner, domain.RoleAdmin); err != nil {
		return domain.Application{}, err
	}
	app, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return domain.Application{}, err
	}
	return s.transition(ctx, app, domain.StatusWaitlist, nil, operator)
}

func (s *service) Reject(ctx context.Context, applicationID int64, operator domain.Operator) (domain.Application, error) {
	if err := s.requireRole(operator, domain.RolePartner, domain.RoleAdmin); err != nil {
		return domain.Application{}, err
	}
	app, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return domain.Application{}, err
	}
	return s.transition(ctx, app, domain.StatusRejected, nil, operator)
}

func (s *service) ExtendOffer(ctx context.Context, applicationID int64, expiresAt int64, operator domain.Operator) (domain.Application, error) {
	if err := s.requireRole(operator, domain.RolePartner, domain.RoleAdmin); err != nil {
		return domain.Application{}, err
	}
	if expiresAt <= time.Now().UnixMilli() {
		return domain.Application{}, fmt.Errorf("%w: offer过期时间必须在未来", ErrValidationFailed)
	}
	app, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return domain.Application{}, err
	}
	return s.transition(ctx, app, domain.StatusOffered,
		map[string]any{"offer_expires_at": expiresAt}, operator)
}

func (s *service) RespondToOffer(ctx context.Context, applicationID int64, accept bool, operator domain.Operator) (domain.Application, error) {
	if err := s.requireRole(operator, domain.RoleStudent); err != nil {
		return domain.Application{}, err
	}
	app, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return domain.Application{}, err
	}
	if app.Status == domain.StatusOffered && time.Now().UnixMilli() > app.OfferExpiresAt {
		// 已过期未响应的 offer 由清扫任务按隐式谢绝处理
		return domain.Application{}, fmt.Errorf("%w: aid=%d", ErrOfferExpired, applicationID)
	}
	to := domain.StatusAccepted
	if !accept {
		to = domain.StatusDeclined
	}
	return s.transition(ctx, app, to, nil, operator)
}

func (s *service) Assign(ctx context.Context, applicationID int64, operator domain.Operator) (domain.Application, error) {
	if err := s.requireRole(operator, domain.RoleAdmin); err != nil {
		return domain.Application{}, err
	}
	app, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return domain.Application{}, err
	}
	return s.transition(ctx, app, domain.StatusAssigned, nil, operator)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Application, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Application, int64, error) {
	var (
		eg    errgroup.Group
		apps  []domain.Application
		total int64
	)
	eg.Go(func() error {
		var err error
		apps, err = s.repo.ListByProject(ctx, projectID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByProject(ctx, projectID)
		return err
	})
	return apps, total, eg.Wait()
}

func (s *service) FindExpiredOffers(ctx context.Context, offset, limit int, now int64) ([]domain.Application, int64, error) {
	var (
		eg    errgroup.Group
		apps  []domain.Application
		total int64
	)
	eg.Go(func() error {
		var err error
		apps, err = s.repo.FindExpiredOffers(ctx, offset, limit, now)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalExpiredOffers(ctx, now)
		return err
	})
	return apps, total, eg.Wait()
}

// ExpireOffer 把过期 offer 置为 DECLINED, 天然幂等:
// 状态已经变了就是无事可做, 并发清扫输掉版本竞争同样视作无事可做
func (s *service) ExpireOffer(ctx context.Context, app domain.Application) error {
	if app.Status != domain.StatusOffered {
		return nil
	}
	_, err := s.transition(ctx, app, domain.StatusDeclined, nil, domain.Operator{})
	if errors.Is(err, ErrRecordChangedConcurrently) {
		s.logger.Info("offer已被并发处理, 跳过",
			elog.Int64("aid", app.ID))
		return nil
	}
	return err
}

func (s *service) HasAcceptedApplication(ctx context.Context, projectID, uid int64) (bool, error) {
	return s.repo.HasApplicantInStatus(ctx, uid, projectID,
		[]domain.Status{domain.StatusAccepted, domain.StatusAssigned})
}

func (s *service) Archive(ctx context.Context, id int64) error {
	return s.repo.Archive(ctx, id)
}

func (s *service) transition(ctx context.Context, app domain.Application, to domain.Status,
	fields map[string]any, operator domain.Operator) (domain.Application, error) {
	if !app.Status.CanTransitionTo(to) {
		return domain.Application{}, fmt.Errorf("%w: %d -> %d", ErrInvalidTransition, app.Status, to)
	}
	if err := s.repo.UpdateStatus(ctx, app, to, fields, operator); err != nil {
		return domain.Application{}, err
	}
	s.produceStatusEvent(app, app.Status, to)
	app.Status = to
	app.Version++
	return app, nil
}

func (s *service) produceStatusEvent(app domain.Application, from, to domain.Status) {
	eventID, err := s.idGen.Generate(snowflake.AppApplication)
	if err != nil {
		s.logger.Error("生成事件ID失败", elog.FieldErr(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	evt := event.StatusChangedEvent{
		EventID:    eventID.Int64(),
		SN:         app.SN,
		ProjectID:  app.ProjectID,
		FromStatus: from.ToUint8(),
		ToStatus:   to.ToUint8(),
		OccurredAt: time.Now().UnixMilli(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送申请状态事件失败",
			elog.FieldErr(err),
			elog.String("sn", app.SN),
			elog.Any("event", evt),
		)
	}
}

func (s *service) requireRole(operator domain.Operator, roles ...string) error {
	if !slice.Contains(roles, operator.Role) {
		return fmt.Errorf("%w: 需要角色%v, 实际%q", ErrUnauthorized, roles, operator.Role)
	}
	return nil
}
