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
)

var (
	ErrRecordChangedConcurrently = errors.New("记录已被并发修改")
	ErrRecordNotFound            = gorm.ErrRecordNotFound
)

type ApplicationDAO interface {
	Create(ctx context.Context, app Application, l ApplicationStatusLog) (int64, error)
	FindByID(ctx context.Context, id int64) (Application, error)
	FindBySN(ctx context.Context, sn string) (Application, error)
	FindByProjectAndStatus(ctx context.Context, projectID int64, status uint8) ([]Application, error)
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]Application, error)
	TotalByProject(ctx context.Context, projectID int64) (int64, error)
	// UpdateStatus 带版本号的状态流转, 版本不匹配返回 ErrRecordChangedConcurrently
	UpdateStatus(ctx context.Context, id, version int64, status uint8, fields map[string]any, l ApplicationStatusLog) error
	CreateScore(ctx context.Context, s ApplicationScore, linkToApplication bool) (int64, error)
	FindScoreByID(ctx context.Context, id int64) (ApplicationScore, error)
	// FindExpiredOffers 查出 offer 已过期但仍处于 OFFERED 的申请
	FindExpiredOffers(ctx context.Context, offset, limit int, now int64) ([]Application, error)
	TotalExpiredOffers(ctx context.Context, now int64) (int64, error)
	CountByApplicantAndProjectAndStatus(ctx context.Context, uid, projectID int64, statuses []uint8) (int64, error)
	Archive(ctx context.Context, id int64) error
}

type applicationDAO struct {
	db *egorm.Component
}

func NewApplicationGORMDAO(db *egorm.Component) ApplicationDAO {
	return &applicationDAO{db: db}
}

func (g *applicationDAO) Create(ctx context.Context, app Application, l ApplicationStatusLog) (int64, error) {
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		app.Ctime, app.Utime, l.Ctime, l.Utime = now, now, now, now
		if err := tx.Create(&app).Error; err != nil {
			return err
		}
		id = app.Id
		l.Aid = id
		return tx.Create(&l).Error
	})
	return id, err
}

func (g *applicationDAO) FindByID(ctx context.Context, id int64) (Application, error) {
	var res Application
	err := g.db.WithContext(ctx).First(&res, "id = ? AND archived = ?", id, false).Error
	return res, err
}

func (g *applicationDAO) FindBySN(ctx context.Context, sn string) (Application, error) {
	var res Application
	err := g.db.WithContext(ctx).First(&res, "sn = ? AND archived = ?", sn, false).Error
	return res, err
}

func (g *applicationDAO) FindByProjectAndStatus(ctx context.Context, projectID int64, status uint8) ([]Application, error) {
	var res []Application
	// 提交时间早者在前, 保证同分并列时的稳定顺序
	err := g.db.WithContext(ctx).
		Where("project_id = ? AND status = ? AND archived = ?", projectID, status, false).
		Order("ctime ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *applicationDAO) ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("project_id = ? AND archived = ?", projectID, false).
		Order("ctime ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *applicationDAO) TotalByProject(ctx context.Context, projectID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("project_id = ? AND archived = ?", projectID, false).
		Count(&count).Error
	return count, err
}

func (g *applicationDAO) UpdateStatus(ctx context.Context, id, version int64, status uint8, fields map[string]any, l ApplicationStatusLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		updates := map[string]any{
			"status":  status,
			"version": version + 1,
			"utime":   now,
		}
		for k, v := range fields {
			updates[k] = v
		}
		res := tx.Model(&Application{}).
			Where("id = ? AND version = ?", id, version).
			Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("更新申请状态失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: aid=%d", ErrRecordChangedConcurrently, id)
		}
		l.Aid = id
		l.Ctime, l.Utime = now, now
		return tx.Create(&l).Error
	})
}

func (g *applicationDAO) CreateScore(ctx context.Context, s ApplicationScore, linkToApplication bool) (int64, error) {
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		s.Ctime, s.Utime = now, now
		if err := tx.Create(&s).Error; err != nil {
			return err
		}
		id = s.Id
		if !linkToApplication {
			return nil
		}
		return tx.Model(&Application{}).
			Where("id = ?", s.Aid).
			Updates(map[string]any{"score_id": id, "utime": now}).Error
	})
	return id, err
}

func (g *applicationDAO) FindScoreByID(ctx context.Context, id int64) (ApplicationScore, error) {
	var res ApplicationScore
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *applicationDAO) FindExpiredOffers(ctx context.Context, offset, limit int, now int64) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("status = ? AND offer_expires_at > 0 AND offer_expires_at < ? AND archived = ?", statusOffered, now, false).
		Order("offer_expires_at ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *applicationDAO) TotalExpiredOffers(ctx context.Context, now int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("status = ? AND offer_expires_at > 0 AND offer_expires_at < ? AND archived = ?", statusOffered, now, false).
		Count(&count).Error
	return count, err
}

func (g *applicationDAO) CountByApplicantAndProjectAndStatus(ctx context.Context, uid, projectID int64, statuses []uint8) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("project_id = ? AND status IN ? AND archived = ? AND JSON_CONTAINS(applicant_ids, ?)",
			projectID, statuses, false, fmt.Sprintf("%d", uid)).
		Count(&count).Error
	return count, err
}

// Archive 软归档, 申请记录从不物理删除
func (g *applicationDAO) Archive(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Model(&Application{}).
		Where("id = ?", id).
		Updates(map[string]any{"archived": true, "utime": time.Now().UnixMilli()}).Error
}

// 与 domain.StatusOffered 对齐, dao 层不引用 domain
const statusOffered uint8 = 5

type Application struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:申请自增ID"`
	SN        string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_application_sn;comment:申请序列号"`
	ProjectId int64  `gorm:"not null;index:idx_project_id;comment:项目ID"`
	Type      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:申请类型 1=个人 2=小组"`
	// JSON 数组, 小组申请含全部成员
	ApplicantIds   string `gorm:"type:varchar(1024);not null;comment:申请人ID列表"`
	Statement      string `gorm:"type:text;comment:申请陈述"`
	Status         uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:申请状态 1=已提交 2=入围 3=候补 4=已拒绝 5=已发offer 6=已接受 7=已谢绝 8=已分配"`
	ScoreId        int64  `gorm:"not null;default:0;comment:当前参与排名的评分ID"`
	OfferExpiresAt int64  `gorm:"not null;default:0;comment:offer过期时间"`
	Version        int64  `gorm:"not null;default:1;comment:乐观锁版本号"`
	Archived       bool   `gorm:"not null;default:false;comment:软归档标记"`
	Ctime          int64
	Utime          int64
}

type ApplicationScore struct {
	Id  int64 `gorm:"primaryKey;autoIncrement;comment:评分自增ID"`
	Aid int64 `gorm:"not null;index:idx_application_id;comment:申请ID"`
	// 自动子分, 0-100
	SkillMatch float64 `gorm:"not null;comment:技能匹配分"`
	Portfolio  float64 `gorm:"not null;comment:作品集分"`
	Rating     float64 `gorm:"not null;comment:历史评价分"`
	OnTimeRate float64 `gorm:"not null;comment:历史按时交付率分"`
	ReworkRate float64 `gorm:"not null;comment:历史返工率分"`
	AutoScore  float64 `gorm:"not null;comment:自动综合分"`
	// 人工子分可缺席
	SupervisorScore float64 `gorm:"comment:导师评分"`
	HasSupervisor   bool    `gorm:"not null;default:false;comment:导师是否已评分"`
	PartnerScore    float64 `gorm:"comment:企业方评分"`
	HasPartner      bool    `gorm:"not null;default:false;comment:企业方是否已评分"`
	FinalScore      float64 `gorm:"not null;index:idx_final_score;comment:加权总分"`
	Ctime           int64
	Utime           int64
}

type ApplicationStatusLog struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:流转审计自增ID"`
	Aid          int64  `gorm:"not null;index:idx_application_id;comment:申请ID"`
	FromStatus   uint8  `gorm:"type:tinyint unsigned;not null;comment:流转前状态"`
	ToStatus     uint8  `gorm:"type:tinyint unsigned;not null;comment:流转后状态"`
	OperatorId   int64  `gorm:"not null;default:0;comment:操作者ID,0为系统"`
	OperatorRole string `gorm:"type:varchar(32);not null;default:'';comment:操作者角色"`
	Ctime        int64
	Utime        int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Application{}, &ApplicationScore{}, &ApplicationStatusLog{})
}
