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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordChangedConcurrently = errors.New("记录已被并发修改")
	ErrRecordNotFound            = gorm.ErrRecordNotFound
)

type DisputeDAO interface {
	// Create 落争议单的同时把对应标的的压单计数加一
	Create(ctx context.Context, d Dispute, l DisputeStatusLog) (int64, error)
	FindByID(ctx context.Context, id int64) (Dispute, error)
	FindBySN(ctx context.Context, sn string) (Dispute, error)
	ListBySubject(ctx context.Context, subjectType uint8, subjectID int64) ([]Dispute, error)
	ListByLevelAndStatus(ctx context.Context, level, status uint8, offset, limit int) ([]Dispute, error)
	TotalByLevelAndStatus(ctx context.Context, level, status uint8) (int64, error)
	// UpdateStatus 带版本号的状态流转, 版本不匹配返回 ErrRecordChangedConcurrently
	UpdateStatus(ctx context.Context, id, version int64, status, level uint8, fields map[string]any, l DisputeStatusLog) error
	// Resolve 在一个事务里关单并把压单计数减一
	Resolve(ctx context.Context, id, version int64, resolution string, resolvedAt int64, l DisputeStatusLog) error
	// HasActiveHold 强一致读, 放款守卫依赖它
	HasActiveHold(ctx context.Context, subjectType uint8, subjectID int64) (bool, error)
}

type disputeDAO struct {
	db *egorm.Component
}

func NewDisputeGORMDAO(db *egorm.Component) DisputeDAO {
	return &disputeDAO{db: db}
}

func (g *disputeDAO) Create(ctx context.Context, d Dispute, l DisputeStatusLog) (int64, error) {
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		d.Ctime, d.Utime, l.Ctime, l.Utime = now, now, now, now
		if err := tx.Create(&d).Error; err != nil {
			return err
		}
		id = d.Id
		l.Did = id
		if err := tx.Create(&l).Error; err != nil {
			return err
		}
		// 同一标的的多起争议合并为一条计数记录
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "subject_type"}, {Name: "subject_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"open_count": gorm.Expr("open_count + 1"),
				"utime":      now,
			}),
		}).Create(&DisputeHold{
			SubjectType: d.SubjectType,
			SubjectId:   d.SubjectId,
			OpenCount:   1,
			Ctime:       now,
			Utime:       now,
		}).Error
	})
	return id, err
}

func (g *disputeDAO) FindByID(ctx context.Context, id int64) (Dispute, error) {
	var res Dispute
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *disputeDAO) FindBySN(ctx context.Context, sn string) (Dispute, error) {
	var res Dispute
	err := g.db.WithContext(ctx).First(&res, "sn = ?", sn).Error
	return res, err
}

func (g *disputeDAO) ListBySubject(ctx context.Context, subjectType uint8, subjectID int64) ([]Dispute, error) {
	var res []Dispute
	err := g.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (g *disputeDAO) ListByLevelAndStatus(ctx context.Context, level, status uint8, offset, limit int) ([]Dispute, error) {
	var res []Dispute
	err := g.db.WithContext(ctx).
		Where("level = ? AND status = ?", level, status).
		Order("ctime ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *disputeDAO) TotalByLevelAndStatus(ctx context.Context, level, status uint8) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Dispute{}).
		Where("level = ? AND status = ?", level, status).
		Count(&count).Error
	return count, err
}

func (g *disputeDAO) UpdateStatus(ctx context.Context, id, version int64, status, level uint8, fields map[string]any, l DisputeStatusLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return g.updateStatusTx(tx, id, version, status, level, fields, l)
	})
}

func (g *disputeDAO) updateStatusTx(tx *gorm.DB, id, version int64, status, level uint8, fields map[string]any, l DisputeStatusLog) error {
	now := time.Now().UnixMilli()
	updates := map[string]any{
		"status":  status,
		"level":   level,
		"version": version + 1,
		"utime":   now,
	}
	for k, v := range fields {
		updates[k] = v
	}
	res := tx.Model(&Dispute{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("更新争议状态失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: did=%d", ErrRecordChangedConcurrently, id)
	}
	l.Did = id
	l.Ctime, l.Utime = now, now
	return tx.Create(&l).Error
}

func (g *disputeDAO) Resolve(ctx context.Context, id, version int64, resolution string, resolvedAt int64, l DisputeStatusLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d Dispute
		if err := tx.First(&d, "id = ?", id).Error; err != nil {
			return err
		}
		err := g.updateStatusTx(tx, id, version, statusResolved, d.Level, map[string]any{
			"resolution":  resolution,
			"resolved_at": resolvedAt,
		}, l)
		if err != nil {
			return err
		}
		// 计数归零即放行, 不删除记录
		res := tx.Model(&DisputeHold{}).
			Where("subject_type = ? AND subject_id = ? AND open_count > 0", d.SubjectType, d.SubjectId).
			Updates(map[string]any{
				"open_count": gorm.Expr("open_count - 1"),
				"utime":      resolvedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("更新压单计数失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("压单计数缺失: subject_type=%d, subject_id=%d", d.SubjectType, d.SubjectId)
		}
		return nil
	})
}

func (g *disputeDAO) HasActiveHold(ctx context.Context, subjectType uint8, subjectID int64) (bool, error) {
	var hold DisputeHold
	err := g.db.WithContext(ctx).
		First(&hold, "subject_type = ? AND subject_id = ?", subjectType, subjectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return hold.OpenCount > 0, nil
}

// 与 domain.StatusResolved 对齐, dao 层不引用 domain
const statusResolved uint8 = 3

type Dispute struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:争议自增ID"`
	SN          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_dispute_sn;comment:争议序列号"`
	SubjectType uint8  `gorm:"type:tinyint unsigned;not null;index:idx_subject,priority:1;comment:标的类型 1=里程碑 2=放款 3=申请 4=督导"`
	SubjectId   int64  `gorm:"not null;index:idx_subject,priority:2;comment:标的ID"`
	Reason      string `gorm:"type:varchar(512);not null;comment:争议事由"`
	Description string `gorm:"type:text;comment:详细描述"`
	// JSON 数组, 证据材料地址
	Evidence   string `gorm:"type:text;comment:证据列表"`
	Status     uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:争议状态 1=待处理 2=审理中 3=已解决"`
	Level      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:处理层级 1=学生企业 2=导师 3=校方 4=平台"`
	RaisedBy   int64  `gorm:"not null;comment:发起人ID"`
	AssigneeId int64  `gorm:"not null;default:0;comment:处理人ID"`
	Resolution string `gorm:"type:text;comment:处理结论"`
	Version    int64  `gorm:"not null;default:1;comment:乐观锁版本号"`
	ResolvedAt int64  `gorm:"not null;default:0;comment:解决时间"`
	Ctime      int64
	Utime      int64
}

// DisputeHold 标的压单计数, 同一标的的多起争议合并计数
type DisputeHold struct {
	Id          int64 `gorm:"primaryKey;autoIncrement;comment:压单自增ID"`
	SubjectType uint8 `gorm:"type:tinyint unsigned;not null;uniqueIndex:uniq_subject,priority:1;comment:标的类型"`
	SubjectId   int64 `gorm:"not null;uniqueIndex:uniq_subject,priority:2;comment:标的ID"`
	OpenCount   int64 `gorm:"not null;default:0;comment:未结争议数"`
	Ctime       int64
	Utime       int64
}

type DisputeStatusLog struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:流转审计自增ID"`
	Did          int64  `gorm:"not null;index:idx_dispute_id;comment:争议ID"`
	FromStatus   uint8  `gorm:"type:tinyint unsigned;not null;comment:流转前状态"`
	ToStatus     uint8  `gorm:"type:tinyint unsigned;not null;comment:流转后状态"`
	FromLevel    uint8  `gorm:"type:tinyint unsigned;not null;comment:流转前层级"`
	ToLevel      uint8  `gorm:"type:tinyint unsigned;not null;comment:流转后层级"`
	OperatorId   int64  `gorm:"not null;default:0;comment:操作者ID,0为系统"`
	OperatorRole string `gorm:"type:varchar(32);not null;default:'';comment:操作者角色"`
	Notes        string `gorm:"type:text;comment:处理意见"`
	Ctime        int64
	Utime        int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Dispute{}, &DisputeHold{}, &DisputeStatusLog{})
}
