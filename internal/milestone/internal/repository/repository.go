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

	"github.com/campusbridge/campusbridge/internal/milestone/internal/domain"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrRecordChangedConcurrently = dao.ErrRecordChangedConcurrently
	ErrRecordNotFound            = dao.ErrRecordNotFound
)

// 资金相关的读写全部直达数据库, 刻意不加缓存

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go MilestoneRepository
type MilestoneRepository interface {
	Create(ctx context.Context, m domain.Milestone) (domain.Milestone, error)
	FindByID(ctx context.Context, id int64) (domain.Milestone, error)
	FindBySN(ctx context.Context, sn string) (domain.Milestone, error)
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]domain.Milestone, error)
	TotalByProject(ctx context.Context, projectID int64) (int64, error)
	UpdateStatus(ctx context.Context, m domain.Milestone, to domain.Status, fields map[string]any, operator domain.Operator, notes string) error
	Fund(ctx context.Context, m domain.Milestone, escrow domain.Escrow, operator domain.Operator) error
	Release(ctx context.Context, m domain.Milestone, releasedAt int64, operator domain.Operator) error
	FindEscrow(ctx context.Context, milestoneID int64) (domain.Escrow, error)
	AddArtifact(ctx context.Context, artifact domain.Artifact) (domain.Artifact, error)
	CountArtifacts(ctx context.Context, milestoneID int64) (int64, error)
	SetCaptureRef(ctx context.Context, milestoneID int64, ref string) error
	FindPendingCaptures(ctx context.Context, offset, limit int) ([]domain.Milestone, error)
	TotalPendingCaptures(ctx context.Context) (int64, error)
	Archive(ctx context.Context, id int64) error
}

func NewRepository(d dao.MilestoneDAO) MilestoneRepository {
	return &milestoneRepository{d: d}
}

type milestoneRepository struct {
	d dao.MilestoneDAO
}

func (r *milestoneRepository) Create(ctx context.Context, m domain.Milestone) (domain.Milestone, error) {
	id, err := r.d.Create(ctx, r.toEntity(m), dao.MilestoneStatusLog{
		FromStatus: 0,
		ToStatus:   m.Status.ToUint8(),
	})
	if err != nil {
		return domain.Milestone{}, err
	}
	m.ID = id
	return m, nil
}

func (r *milestoneRepository) FindByID(ctx context.Context, id int64) (domain.Milestone, error) {
	entity, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Milestone{}, err
	}
	return r.withArtifacts(ctx, entity)
}

func (r *milestoneRepository) FindBySN(ctx context.Context, sn string) (domain.Milestone, error) {
	entity, err := r.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Milestone{}, err
	}
	return r.withArtifacts(ctx, entity)
}

func (r *milestoneRepository) ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]domain.Milestone, error) {
	entities, err := r.d.ListByProject(ctx, projectID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Milestone) domain.Milestone {
		return r.toDomain(src)
	}), nil
}

func (r *milestoneRepository) TotalByProject(ctx context.Context, projectID int64) (int64, error) {
	return r.d.TotalByProject(ctx, projectID)
}

func (r *milestoneRepository) UpdateStatus(ctx context.Context, m domain.Milestone, to domain.Status, fields map[string]any, operator domain.Operator, notes string) error {
	return r.d.UpdateStatus(ctx, m.ID, m.Version, to.ToUint8(), fields, dao.MilestoneStatusLog{
		FromStatus:   m.Status.ToUint8(),
		ToStatus:     to.ToUint8(),
		OperatorId:   operator.ID,
		OperatorRole: operator.Role,
		Notes:        notes,
	})
}

func (r *milestoneRepository) Fund(ctx context.Context, m domain.Milestone, escrow domain.Escrow, operator domain.Operator) error {
	return r.d.Fund(ctx, m.ID, m.Version, dao.Escrow{
		SN:         escrow.SN,
		AmountHeld: escrow.AmountHeld,
		Currency:   escrow.Currency,
		CustodyRef: escrow.CustodyRef,
	}, dao.MilestoneStatusLog{
		FromStatus:   m.Status.ToUint8(),
		ToStatus:     domain.StatusFunded.ToUint8(),
		OperatorId:   operator.ID,
		OperatorRole: operator.Role,
	})
}

func (r *milestoneRepository) Release(ctx context.Context, m domain.Milestone, releasedAt int64, operator domain.Operator) error {
	return r.d.Release(ctx, m.ID, m.Version, releasedAt, dao.MilestoneStatusLog{
		FromStatus:   m.Status.ToUint8(),
		ToStatus:     domain.StatusReleased.ToUint8(),
		OperatorId:   operator.ID,
		OperatorRole: operator.Role,
	})
}

func (r *milestoneRepository) FindEscrow(ctx context.Context, milestoneID int64) (domain.Escrow, error) {
	entity, err := r.d.FindEscrowByMilestoneID(ctx, milestoneID)
	if err != nil {
		return domain.Escrow{}, err
	}
	return domain.Escrow{
		ID:          entity.Id,
		MilestoneID: entity.Mid,
		SN:          entity.SN,
		AmountHeld:  entity.AmountHeld,
		Currency:    entity.Currency,
		CustodyRef:  entity.CustodyRef,
		Status:      domain.EscrowStatus(entity.Status),
		FundedAt:    entity.FundedAt,
		ReleasedAt:  entity.ReleasedAt,
	}, nil
}

func (r *milestoneRepository) AddArtifact(ctx context.Context, artifact domain.Artifact) (domain.Artifact, error) {
	id, err := r.d.CreateArtifact(ctx, dao.MilestoneArtifact{
		Mid:        artifact.MilestoneID,
		Name:       artifact.Name,
		URI:        artifact.URI,
		UploadedBy: artifact.UploadedBy,
	})
	if err != nil {
		return domain.Artifact{}, err
	}
	artifact.ID = id
	return artifact, nil
}

func (r *milestoneRepository) CountArtifacts(ctx context.Context, milestoneID int64) (int64, error) {
	return r.d.CountArtifacts(ctx, milestoneID)
}

func (r *milestoneRepository) SetCaptureRef(ctx context.Context, milestoneID int64, ref string) error {
	return r.d.SetCaptureRef(ctx, milestoneID, ref)
}

func (r *milestoneRepository) FindPendingCaptures(ctx context.Context, offset, limit int) ([]domain.Milestone, error) {
	entities, err := r.d.FindPendingCaptures(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Milestone) domain.Milestone {
		return r.toDomain(src)
	}), nil
}

func (r *milestoneRepository) TotalPendingCaptures(ctx context.Context) (int64, error) {
	return r.d.TotalPendingCaptures(ctx)
}

func (r *milestoneRepository) Archive(ctx context.Context, id int64) error {
	return r.d.Archive(ctx, id)
}

func (r *milestoneRepository) withArtifacts(ctx context.Context, entity dao.Milestone) (domain.Milestone, error) {
	m := r.toDomain(entity)
	artifacts, err := r.d.FindArtifactsByMilestoneID(ctx, entity.Id)
	if err != nil {
		return domain.Milestone{}, err
	}
	m.Artifacts = slice.Map(artifacts, func(idx int, src dao.MilestoneArtifact) domain.Artifact {
		return domain.Artifact{
			ID:          src.Id,
			MilestoneID: src.Mid,
			Name:        src.Name,
			URI:         src.URI,
			UploadedBy:  src.UploadedBy,
			Ctime:       src.Ctime,
		}
	})
	return m, nil
}

func (r *milestoneRepository) toEntity(m domain.Milestone) dao.Milestone {
	return dao.Milestone{
		Id:             m.ID,
		SN:             m.SN,
		ProjectId:      m.ProjectID,
		StudentId:      m.StudentID,
		PartnerId:      m.PartnerID,
		SupervisorId:   m.SupervisorID,
		ProposedBy:     m.ProposedBy,
		Title:          m.Title,
		Scope:          m.Scope,
		Criteria:       m.AcceptanceCriteria,
		DueDate:        m.DueDate,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Status:         m.Status.ToUint8(),
		EscrowStatus:   m.EscrowStatus.ToUint8(),
		SupervisorGate: m.SupervisorGate,
		Version:        m.Version,
		Archived:       m.Archived,
	}
}

func (r *milestoneRepository) toDomain(entity dao.Milestone) domain.Milestone {
	return domain.Milestone{
		ID:                 entity.Id,
		SN:                 entity.SN,
		ProjectID:          entity.ProjectId,
		StudentID:          entity.StudentId,
		PartnerID:          entity.PartnerId,
		SupervisorID:       entity.SupervisorId,
		ProposedBy:         entity.ProposedBy,
		Title:              entity.Title,
		Scope:              entity.Scope,
		AcceptanceCriteria: entity.Criteria,
		DueDate:            entity.DueDate,
		Amount:             entity.Amount,
		Currency:           entity.Currency,
		Status:             domain.Status(entity.Status),
		EscrowStatus:       domain.EscrowStatus(entity.EscrowStatus),
		SupervisorGate:     entity.SupervisorGate,
		Version:            entity.Version,
		Archived:           entity.Archived,
		Ctime:              entity.Ctime,
		Utime:              entity.Utime,
	}
}
