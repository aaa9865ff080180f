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

	"github.com/campusbridge/campusbridge/internal/dispute/internal/domain"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrRecordChangedConcurrently = dao.ErrRecordChangedConcurrently
	ErrRecordNotFound            = dao.ErrRecordNotFound
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go DisputeRepository
type DisputeRepository interface {
	Create(ctx context.Context, d domain.Dispute) (domain.Dispute, error)
	FindByID(ctx context.Context, id int64) (domain.Dispute, error)
	FindBySN(ctx context.Context, sn string) (domain.Dispute, error)
	ListBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID int64) ([]domain.Dispute, error)
	ListByLevelAndStatus(ctx context.Context, level domain.Level, status domain.Status, offset, limit int) ([]domain.Dispute, error)
	TotalByLevelAndStatus(ctx context.Context, level domain.Level, status domain.Status) (int64, error)
	UpdateStatus(ctx context.Context, d domain.Dispute, to domain.Status, toLevel domain.Level, fields map[string]any, operator domain.Operator, notes string) error
	Resolve(ctx context.Context, d domain.Dispute, resolution string, resolvedAt int64, operator domain.Operator) error
	HasActiveHold(ctx context.Context, subjectType domain.SubjectType, subjectID int64) (bool, error)
}

func NewRepository(d dao.DisputeDAO) DisputeRepository {
	return &disputeRepository{
		d:      d,
		logger: elog.DefaultLogger,
	}
}

type disputeRepository struct {
	d      dao.DisputeDAO
	logger *elog.Component
}

func (r *disputeRepository) Create(ctx context.Context, d domain.Dispute) (domain.Dispute, error) {
	id, err := r.d.Create(ctx, r.toEntity(d), dao.DisputeStatusLog{
		FromStatus:   0,
		ToStatus:     d.Status.ToUint8(),
		FromLevel:    0,
		ToLevel:      d.Level.ToUint8(),
		OperatorId:   d.RaisedBy,
	})
	if err != nil {
		return domain.Dispute{}, err
	}
	d.ID = id
	return d, nil
}

func (r *disputeRepository) FindByID(ctx context.Context, id int64) (domain.Dispute, error) {
	entity, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Dispute{}, err
	}
	return r.toDomain(entity), nil
}

func (r *disputeRepository) FindBySN(ctx context.Context, sn string) (domain.Dispute, error) {
	entity, err := r.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Dispute{}, err
	}
	return r.toDomain(entity), nil
}

func (r *disputeRepository) ListBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID int64) ([]domain.Dispute, error) {
	entities, err := r.d.ListBySubject(ctx, subjectType.ToUint8(), subjectID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Dispute) domain.Dispute {
		return r.toDomain(src)
	}), nil
}

func (r *disputeRepository) ListByLevelAndStatus(ctx context.Context, level domain.Level, status domain.Status, offset, limit int) ([]domain.Dispute, error) {
	entities, err := r.d.ListByLevelAndStatus(ctx, level.ToUint8(), status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Dispute) domain.Dispute {
		return r.toDomain(src)
	}), nil
}

func (r *disputeRepository) TotalByLevelAndStatus(ctx context.Context, level domain.Level, status domain.Status) (int64, error) {
	return r.d.TotalByLevelAndStatus(ctx, level.ToUint8(), status.ToUint8())
}

func (r *disputeRepository) UpdateStatus(ctx context.Context, d domain.Dispute, to domain.Status, toLevel domain.Level, fields map[string]any, operator domain.Operator, notes string) error {
	return r.d.UpdateStatus(ctx, d.ID, d.Version, to.ToUint8(), toLevel.ToUint8(), fields, dao.DisputeStatusLog{
		FromStatus:   d.Status.ToUint8(),
		ToStatus:     to.ToUint8(),
		FromLevel:    d.Level.ToUint8(),
		ToLevel:      toLevel.ToUint8(),
		OperatorId:   operator.ID,
		OperatorRole: operator.Role,
		Notes:        notes,
	})
}

func (r *disputeRepository) Resolve(ctx context.Context, d domain.Dispute, resolution string, resolvedAt int64, operator domain.Operator) error {
	return r.d.Resolve(ctx, d.ID, d.Version, resolution, resolvedAt, dao.DisputeStatusLog{
		FromStatus:   d.Status.ToUint8(),
		ToStatus:     domain.StatusResolved.ToUint8(),
		FromLevel:    d.Level.ToUint8(),
		ToLevel:      d.Level.ToUint8(),
		OperatorId:   operator.ID,
		OperatorRole: operator.Role,
		Notes:        resolution,
	})
}

func (r *disputeRepository) HasActiveHold(ctx context.Context, subjectType domain.SubjectType, subjectID int64) (bool, error) {
	return r.d.HasActiveHold(ctx, subjectType.ToUint8(), subjectID)
}

func (r *disputeRepository) toEntity(d domain.Dispute) dao.Dispute {
	evidence, _ := json.Marshal(d.Evidence)
	return dao.Dispute{
		Id:          d.ID,
		SN:          d.SN,
		SubjectType: d.SubjectType.ToUint8(),
		SubjectId:   d.SubjectID,
		Reason:      d.Reason,
		Description: d.Description,
		Evidence:    string(evidence),
		Status:      d.Status.ToUint8(),
		Level:       d.Level.ToUint8(),
		RaisedBy:    d.RaisedBy,
		AssigneeId:  d.AssigneeID,
		Resolution:  d.Resolution,
		Version:     d.Version,
		ResolvedAt:  d.ResolvedAt,
	}
}

func (r *disputeRepository) toDomain(entity dao.Dispute) domain.Dispute {
	var evidence []string
	if entity.Evidence != "" {
		if err := json.Unmarshal([]byte(entity.Evidence), &evidence); err != nil {
			r.logger.Warn("解析证据列表失败", elog.FieldErr(err), elog.Int64("did", entity.Id))
		}
	}
	return domain.Dispute{
		ID:          entity.Id,
		SN:          entity.SN,
		SubjectType: domain.SubjectType(entity.SubjectType),
		SubjectID:   entity.SubjectId,
		Reason:      entity.Reason,
		Description: entity.Description,
		Evidence:    evidence,
		Status:      domain.Status(entity.Status),
		Level:       domain.Level(entity.Level),
		RaisedBy:    entity.RaisedBy,
		AssigneeID:  entity.AssigneeId,
		Resolution:  entity.Resolution,
		Version:     entity.Version,
		Ctime:       entity.Ctime,
		Utime:       entity.Utime,
		ResolvedAt:  entity.ResolvedAt,
	}
}
