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

type MilestoneDAO interface {
	Create(ctx context.Context, m Milestone, l MilestoneStatusLog) (int64, error)
	FindByID(ctx context.Context, id int64) (Milestone, error)
	FindBySN(ctx context.Context, sn string) (Milestone, error)
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]Milestone, error)
	TotalByProject(ctx context.Context, projectID int64) (int64, error)
	// UpdateStatus 带版本号的状态流转, 版本不匹配返回 ErrRecordChangedConcurrently
	UpdateStatus(ctx context.Context, id, version int64, status uint8, fields map[string]any, l MilestoneStatusLog) error
	// Fund 在一个事务里创建托管记录并推进里程碑, 失败则两者都不落库
	Fund(ctx context.Context, id, version int64, e Escrow, l MilestoneStatusLog) error
	// Release 同一事务里更新里程碑与托管记录
	Release(ctx context.Context, id, version int64, releasedAt int64, l MilestoneStatusLog) error
	// FindEscrowByMilestoneID 金额校验永远读库, 不走缓存
	FindEscrowByMilestoneID(ctx context.Context, milestoneID int64) (Escrow, error)
	CreateArtifact(ctx context.Context, a MilestoneArtifact) (int64, error)
	FindArtifactsByMilestoneID(ctx context.Context, milestoneID int64) ([]MilestoneArtifact, error)
	CountArtifacts(ctx context.Context, milestoneID int64) (int64, error)
	// SetCaptureRef 记录发起托管划扣时的外部单号, 供对账任务回查
	SetCaptureRef(ctx context.Context, id int64, ref string) error
	FindPendingCaptures(ctx context.Context, offset, limit int) ([]Milestone, error)
	TotalPendingCaptures(ctx context.Context) (int64, error)
	Archive(ctx context.Context, id int64) error
}

type milestoneDAO struct {
	db *egorm.Component
}

func NewMilestoneGORMDAO(db *egorm.Component) MilestoneDAO {
	return &milestoneDAO{db: db}
}

func (g *milestoneDAO) Create(ctx context.Context, m Milestone, l MilestoneStatusLog) (int64, error) {
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		m.Ctime, m.Utime, l.Ctime, l.Utime = now, now, now, now
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		id = m.Id
		l.Mid = id
		return tx.Create(&l).Error
	})
	return id, err
}

func (g *milestoneDAO) FindByID(ctx context.Context, id int64) (Milestone, error) {
	var res Milestone
	err := g.db.WithContext(ctx).First(&res, "id = ? AND archived = ?", id, false).Error
	return res, err
}

func (g *milestoneDAO) FindBySN(ctx context.Context, sn string) (Milestone, error) {
	var res Milestone
	err := g.db.WithContext(ctx).First(&res, "sn = ? AND archived = ?", sn, false).Error
	return res, err
}

func (g *milestoneDAO) ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]Milestone, error) {
	var res []Milestone
	err := g.db.WithContext(ctx).
		Where("project_id = ? AND archived = ?", projectID, false).
		Order("ctime ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *milestoneDAO) TotalByProject(ctx context.Context, projectID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Milestone{}).
		Where("project_id = ? AND archived = ?", projectID, false).
		Count(&count).Error
	return count, err
}

func (g *milestoneDAO) UpdateStatus(ctx context.Context, id, version int64, status uint8, fields map[string]any, l MilestoneStatusLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return g.updateStatusTx(tx, id, version, status, fields, l)
	})
}

func (g *milestoneDAO) updateStatusTx(tx *gorm.DB, id, version int64, status uint8, fields map[string]any, l MilestoneStatusLog) error {
	now := time.Now().UnixMilli()
	updates := map[string]any{
		"status":  status,
		"version": version + 1,
		"utime":   now,
	}
	for k, v := range fields {
		updates[k] = v
	}
	res := tx.Model(&Milestone{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("更新里程碑状态失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: mid=%d", ErrRecordChangedConcurrently, id)
	}
	l.Mid = id
	l.Ctime, l.Utime = now, now
	return tx.Create(&l).Error
}

func (g *milestoneDAO) Fund(ctx context.Context, id, version int64, e Escrow, l MilestoneStatusLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		e.Mid = id
		e.Status = escrowStatusHeld
		e.FundedAt = now
		e.Ctime, e.Utime = now, now
		if err := tx.Create(&e).Error; err != nil {
			return fmt.Errorf("创建托管记录失败: %w", err)
		}
		return g.updateStatusTx(tx, id, version, statusFunded, map[string]any{
			"escrow_status": escrowStatusHeld,
			// 托管已落库, 挂起的划扣单号清空
			"capture_ref": "",
		}, l)
	})
}

func (g *milestoneDAO) Release(ctx context.Context, id, version int64, releasedAt int64, l MilestoneStatusLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Escrow{}).
			Where("mid = ? AND status = ?", id, escrowStatusHeld).
			Updates(map[string]any{
				"status":      escrowStatusReleased,
				"released_at": releasedAt,
				"utime":       releasedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("更新托管记录失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: 托管记录不在持有状态 mid=%d", ErrRecordChangedConcurrently, id)
		}
		return g.updateStatusTx(tx, id, version, statusReleased, map[string]any{
			"escrow_status": escrowStatusReleased,
		}, l)
	})
}

func (g *milestoneDAO) FindEscrowByMilestoneID(ctx context.Context, milestoneID int64) (Escrow, error) {
	var res Escrow
	err := g.db.WithContext(ctx).First(&res, "mid = ?", milestoneID).Error
	return res, err
}

func (g *milestoneDAO) CreateArtifact(ctx context.Context, a MilestoneArtifact) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := g.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}

func (g *milestoneDAO) FindArtifactsByMilestoneID(ctx context.Context, milestoneID int64) ([]MilestoneArtifact, error) {
	var res []MilestoneArtifact
	err := g.db.WithContext(ctx).
		Where("mid = ?", milestoneID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *milestoneDAO) CountArtifacts(ctx context.Context, milestoneID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&MilestoneArtifact{}).
		Where("mid = ?", milestoneID).
		Count(&count).Error
	return count, err
}

func (g *milestoneDAO) SetCaptureRef(ctx context.Context, id int64, ref string) error {
	return g.db.WithContext(ctx).Model(&Milestone{}).
		Where("id = ?", id).
		Updates(map[string]any{"capture_ref": ref, "utime": time.Now().UnixMilli()}).Error
}

func (g *milestoneDAO) FindPendingCaptures(ctx context.Context, offset, limit int) ([]Milestone, error) {
	var res []Milestone
	err := g.db.WithContext(ctx).
		Where("status = ? AND capture_ref != '' AND archived = ?", statusFinalized, false).
		Order("utime ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *milestoneDAO) TotalPendingCaptures(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Milestone{}).
		Where("status = ? AND capture_ref != '' AND archived = ?", statusFinalized, false).
		Count(&count).Error
	return count, err
}

// Archive 软归档, 里程碑与资金记录从不物理删除
func (g *milestoneDAO) Archive(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Model(&Milestone{}).
		Where("id = ?", id).
		Updates(map[string]any{"archived": true, "utime": time.Now().UnixMilli()}).Error
}

// 与 domain 对齐, dao 层不引用 domain
const (
	statusFinalized uint8 = 4
	statusFunded    uint8 = 5
	statusReleased  uint8 = 12

	escrowStatusHeld     uint8 = 3
	escrowStatusReleased uint8 = 4
)

type Milestone struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:里程碑自增ID"`
	SN           string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_milestone_sn;comment:里程碑序列号"`
	ProjectId    int64  `gorm:"not null;index:idx_project_id;comment:项目ID"`
	StudentId    int64  `gorm:"not null;index:idx_student_id;comment:交付方学生ID"`
	PartnerId    int64  `gorm:"not null;index:idx_partner_id;comment:出资方ID"`
	SupervisorId int64  `gorm:"not null;comment:导师ID"`
	ProposedBy   int64  `gorm:"not null;default:0;comment:提案方ID"`
	Title        string `gorm:"type:varchar(512);not null;comment:标题"`
	Scope        string `gorm:"type:text;comment:交付范围"`
	Criteria     string `gorm:"type:text;comment:验收标准"`
	DueDate      int64  `gorm:"not null;default:0;comment:截止时间"`
	// 金额一律最小货币单位
	Amount       int64  `gorm:"not null;comment:托管金额"`
	Currency     string `gorm:"type:varchar(8);not null;default:'CNY';comment:币种"`
	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:里程碑状态 1=草稿 2=已提议 3=已接受 4=已定稿 5=已注资 6=进行中 7=已提交 8=导师审核 9=企业审核 10=已批准 11=需返工 12=已放款 13=已完成"`
	EscrowStatus uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:托管状态 1=待注资 2=已注资 3=持有中 4=已放款"`
	// 导师审核闸门, 返工时清零
	SupervisorGate bool `gorm:"not null;default:false;comment:导师审核是否通过"`
	// 发起划扣但尚未确认时的外部单号, 对账任务据此回查
	CaptureRef string `gorm:"type:varchar(255);not null;default:'';comment:挂起的托管划扣单号"`
	Version    int64  `gorm:"not null;default:1;comment:乐观锁版本号"`
	Archived   bool   `gorm:"not null;default:false;comment:软归档标记"`
	Ctime      int64
	Utime      int64
}

type Escrow struct {
	Id  int64 `gorm:"primaryKey;autoIncrement;comment:托管自增ID"`
	Mid int64 `gorm:"not null;uniqueIndex:uniq_milestone_id;comment:里程碑ID"`
	SN  string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_escrow_sn;comment:托管序列号"`
	// 入账后不再变化
	AmountHeld int64  `gorm:"not null;comment:持有金额"`
	Currency   string `gorm:"type:varchar(8);not null;default:'CNY';comment:币种"`
	CustodyRef string `gorm:"type:varchar(255);not null;comment:托管方交易单号"`
	Status     uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:托管状态 1=待注资 2=已注资 3=持有中 4=已放款"`
	FundedAt   int64  `gorm:"not null;default:0;comment:入账时间"`
	ReleasedAt int64  `gorm:"not null;default:0;comment:放款时间"`
	Ctime      int64
	Utime      int64
}

type MilestoneArtifact struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:交付物自增ID"`
	Mid        int64  `gorm:"not null;index:idx_milestone_id;comment:里程碑ID"`
	Name       string `gorm:"type:varchar(512);not null;comment:交付物名称"`
	URI        string `gorm:"type:varchar(1024);not null;comment:交付物地址"`
	UploadedBy int64  `gorm:"not null;comment:上传者ID"`
	Ctime      int64
	Utime      int64
}

type MilestoneStatusLog struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:流转审计自增ID"`
	Mid          int64  `gorm:"not null;index:idx_milestone_id;comment:里程碑ID"`
	FromStatus   uint8  `gorm:"type:tinyint unsigned;not null;comment:流转前状态"`
	ToStatus     uint8  `gorm:"type:tinyint unsigned;not null;comment:流转后状态"`
	OperatorId   int64  `gorm:"not null;default:0;comment:操作者ID,0为系统"`
	OperatorRole string `gorm:"type:varchar(32);not null;default:'';comment:操作者角色"`
	Notes        string `gorm:"type:text;comment:审核意见"`
	Ctime        int64
	Utime        int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Milestone{}, &Escrow{}, &MilestoneArtifact{}, &MilestoneStatusLog{})
}
