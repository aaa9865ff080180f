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

package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/campusbridge/campusbridge/internal/application/internal/domain"
	"github.com/campusbridge/campusbridge/internal/application/internal/repository/cache"
	"github.com/campusbridge/campusbridge/internal/application/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var ErrRecordChangedConcurrently = dao.ErrRecordChangedConcurrently

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (domain.Application, error)
	FindByID(ctx context.Context, id int64) (domain.Application, error)
	FindBySN(ctx context.Context, sn string) (domain.Application, error)
	FindByProjectAndStatus(ctx context.Context, projectID int64, status domain.Status) ([]domain.Application, error)
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]domain.Application, error)
	TotalByProject(ctx context.Context, projectID int64) (int64, error)
	UpdateStatus(ctx context.Context, app domain.Application, to domain.Status, fields map[string]any, operator domain.Operator) error
	CreateScore(ctx context.Context, score domain.Score, linkToApplication bool) (domain.Score, error)
	FindExpiredOffers(ctx context.Context, offset, limit int, now int64) ([]domain.Application, error)
	TotalExpiredOffers(ctx context.Context, now int64) (int64, error)
	HasApplicantInStatus(ctx context.Context, uid, projectID int64, statuses []domain.Status) (bool, error)
	Archive(ctx context.Context, id int64) error
}

func NewRepository(d dao.ApplicationDAO, c cache.ApplicationCache) ApplicationRepository {
	return &applicationRepository{
		d:      d,
		c:      c,
		logger: elog.DefaultLogger,
	}
}

type applicationRepository struct {
	d      dao.ApplicationDAO
	c      cache.ApplicationCache
	logger *elog.Component
}

func (r *applicationRepository) Create(ctx context.Context, app domain.Application) (domain.Application, error) {
	id, err := r.d.Create(ctx, r.toEntity(app), dao.ApplicationStatusLog{
		FromStatus: 0,
		ToStatus:   app.Status.ToUint8(),
	})
	if err != nil {
		return domain.Application{}, err
	}
	app.ID = id
	return app, nil
}

func (r *applicationRepository) FindByID(ctx context.Context, id int64) (domain.Application, error) {
	if app, err := r.c.Get(ctx, id); err == nil {
		return app, nil
	}
	entity, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	app, err := r.withScore(ctx, entity)
	if err != nil {
		return domain.Application{}, err
	}
	if err := r.c.Set(ctx, app); err != nil {
		r.logger.Warn("写入申请缓存失败", elog.FieldErr(err), elog.Int64("aid", id))
	}
	return app, nil
}

func (r *applicationRepository) FindBySN(ctx context.Context, sn string) (domain.Application, error) {
	entity, err := r.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Application{}, err
	}
	return r.withScore(ctx, entity)
}

func (r *applicationRepository) FindByProjectAndStatus(ctx context.Context, projectID int64, status domain.Status) ([]domain.Application, error) {
	entities, err := r.d.FindByProjectAndStatus(ctx, projectID, status.ToUint8())
	if err != nil {
		return nil, err
	}
	res := make([]domain.Application, 0, len(entities))
	for _, entity := range entities {
		app, err := r.withScore(ctx, entity)
		if err != nil {
			return nil, err
		}
		res = append(res, app)
	}
	return res, nil
}

func (r *applicationRepository) ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]domain.Application, error) {
	entities, err := r.d.ListByProject(ctx, projectID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *applicationRepository) TotalByProject(ctx context.Context, projectID int64) (int64, error) {
	return r.d.TotalByProject(ctx, projectID)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, app domain.Application, to domain.Status, fields map[string]any, operator domain.Operator) error {
	err := r.d.UpdateStatus(ctx, app.ID, app.Version, to.ToUint8(), fields, dao.ApplicationStatusLog{
		FromStatus:   app.Status.ToUint8(),
		ToStatus:     to.ToUint8(),
		OperatorId:   operator.ID,
		OperatorRole: operator.Role,
	})
	if err != nil {
		return err
	}
	if derr := r.c.Del(ctx, app.ID); derr != nil {
		r.logger.Warn("清理申请缓存失败", elog.FieldErr(derr), elog.Int64("aid", app.ID))
	}
	return nil
}

func (r *applicationRepository) CreateScore(ctx context.Context, score domain.Score, linkToApplication bool) (domain.Score, error) {
	id, err := r.d.CreateScore(ctx, r.toScoreEntity(score), linkToApplication)
	if err != nil {
		return domain.Score{}, err
	}
	score.ID = id
	if linkToApplication {
		if derr := r.c.Del(ctx, score.ApplicationID); derr != nil {
			r.logger.Warn("清理申请缓存失败", elog.FieldErr(derr), elog.Int64("aid", score.ApplicationID))
		}
	}
	return score, nil
}

func (r *applicationRepository) FindExpiredOffers(ctx context.Context, offset, limit int, now int64) ([]domain.Application, error) {
	entities, err := r.d.FindExpiredOffers(ctx, offset, limit, now)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *applicationRepository) TotalExpiredOffers(ctx context.Context, now int64) (int64, error) {
	return r.d.TotalExpiredOffers(ctx, now)
}

func (r *applicationRepository) HasApplicantInStatus(ctx context.Context, uid, projectID int64, statuses []domain.Status) (bool, error) {
	count, err := r.d.CountByApplicantAndProjectAndStatus(ctx, uid, projectID,
		slice.Map(statuses, func(idx int, src domain.Status) uint8 {
			return src.ToUint8()
		}))
	return count > 0, err
}

func (r *applicationRepository) Archive(ctx context.Context, id int64) error {
	if err := r.d.Archive(ctx, id); err != nil {
		return err
	}
	if derr := r.c.Del(ctx, id); derr != nil {
		r.logger.Warn("清理申请缓存失败", elog.FieldErr(derr), elog.Int64("aid", id))
	}
	return nil
}

func (r *applicationRepository) withScore(ctx context.Context, entity dao.Application) (domain.Application, error) {
	app := r.toDomain(entity)
	if entity.ScoreId == 0 {
		return app, nil
	}
	score, err := r.d.FindScoreByID(ctx, entity.ScoreId)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return app, nil
		}
		return domain.Application{}, err
	}
	app.Score = r.toScoreDomain(score)
	return app, nil
}

func (r *applicationRepository) toEntity(app domain.Application) dao.Application {
	ids, _ := json.Marshal(app.ApplicantIDs)
	return dao.Application{
		Id:             app.ID,
		SN:             app.SN,
		ProjectId:      app.ProjectID,
		Type:           uint8(app.Type),
		ApplicantIds:   string(ids),
		Statement:      app.Statement,
		Status:         app.Status.ToUint8(),
		ScoreId:        app.Score.ID,
		OfferExpiresAt: app.OfferExpiresAt,
		Version:        app.Version,
		Archived:       app.Archived,
	}
}

func (r *applicationRepository) toDomain(entity dao.Application) domain.Application {
	var ids []int64
	if entity.ApplicantIds != "" {
		if err := json.Unmarshal([]byte(entity.ApplicantIds), &ids); err != nil {
			r.logger.Warn("解析申请人列表失败", elog.FieldErr(err), elog.Int64("aid", entity.Id))
		}
	}
	return domain.Application{
		ID:             entity.Id,
		SN:             entity.SN,
		ProjectID:      entity.ProjectId,
		Type:           domain.ApplicationType(entity.Type),
		ApplicantIDs:   ids,
		Statement:      entity.Statement,
		Status:         domain.Status(entity.Status),
		Score:          domain.Score{ID: entity.ScoreId},
		OfferExpiresAt: entity.OfferExpiresAt,
		Version:        entity.Version,
		Archived:       entity.Archived,
		Ctime:          entity.Ctime,
		Utime:          entity.Utime,
	}
}

func (r *applicationRepository) toScoreEntity(score domain.Score) dao.ApplicationScore {
	entity := dao.ApplicationScore{
		Id:         score.ID,
		Aid:        score.ApplicationID,
		SkillMatch: score.Auto.SkillMatch,
		Portfolio:  score.Auto.Portfolio,
		Rating:     score.Auto.Rating,
		OnTimeRate: score.Auto.OnTimeRate,
		ReworkRate: score.Auto.ReworkRate,
		AutoScore:  score.AutoScore,
		FinalScore: score.Final,
	}
	if score.Supervisor != nil {
		entity.SupervisorScore = *score.Supervisor
		entity.HasSupervisor = true
	}
	if score.Partner != nil {
		entity.PartnerScore = *score.Partner
		entity.HasPartner = true
	}
	return entity
}

func (r *applicationRepository) toScoreDomain(entity dao.ApplicationScore) domain.Score {
	score := domain.Score{
		ID:            entity.Id,
		ApplicationID: entity.Aid,
		Auto: domain.AutoFactors{
			SkillMatch: entity.SkillMatch,
			Portfolio:  entity.Portfolio,
			Rating:     entity.Rating,
			OnTimeRate: entity.OnTimeRate,
			ReworkRate: entity.ReworkRate,
		},
		AutoScore: entity.AutoScore,
		Final:     entity.FinalScore,
		Ctime:     entity.Ctime,
	}
	if entity.HasSupervisor {
		v := entity.SupervisorScore
		score.Supervisor = &v
	}
	if entity.HasPartner {
		v := entity.PartnerScore
		score.Partner = &v
	}
	return score
}
