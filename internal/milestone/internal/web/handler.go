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

package web

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusbridge/campusbridge/internal/milestone/internal/domain"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var errDuplicateRequest = errors.New("重复请求")

// 资金操作的请求ID保留一天, 足够覆盖前端重试窗口
const requestIDExpiration = 24 * time.Hour

type Handler struct {
	svc    service.Service
	cache  ecache.Cache
	logger *elog.Component
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{
		svc:    svc,
		cache:  cache,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/milestones")
	g.POST("/propose", ginx.BS[ProposeReq](h.Propose))
	g.POST("/accept", ginx.BS[MidReq](h.Accept))
	g.POST("/fund", ginx.BS[FundReq](h.Fund))
	g.POST("/start", ginx.BS[MidReq](h.Start))
	g.POST("/artifact", ginx.BS[ArtifactReq](h.AddArtifact))
	g.POST("/submit", ginx.BS[MidReq](h.Submit))
	g.POST("/supervisor-review", ginx.BS[ReviewReq](h.SupervisorReview))
	g.POST("/partner-review", ginx.BS[ReviewReq](h.PartnerReview))
	g.POST("/release", ginx.BS[ReleaseReq](h.Release))
	g.POST("/revert", ginx.BS[RevertReq](h.DisapproveAndRevert))
	g.POST("/detail", ginx.B[MidReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *Handler) Propose(ctx *ginx.Context, req ProposeReq, sess session.Session) (ginx.Result, error) {
	m, err := h.svc.Propose(ctx, domain.Milestone{
		ProjectID:          req.ProjectID,
		StudentID:          req.StudentID,
		PartnerID:          req.PartnerID,
		SupervisorID:       req.SupervisorID,
		Title:              req.Title,
		Scope:              req.Scope,
		AcceptanceCriteria: req.Criteria,
		DueDate:            req.DueDate,
		Amount:             req.Amount,
		Currency:           req.Currency,
	}, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newMilestone(m),
	}, nil
}

func (h *Handler) Accept(ctx *ginx.Context, req MidReq, sess session.Session) (ginx.Result, error) {
	m, err := h.svc.Accept(ctx, req.MID, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newMilestone(m),
	}, nil
}

func (h *Handler) Fund(ctx *ginx.Context, req FundReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), "fund", req.RequestID); err != nil {
		return h.errResult(err), err
	}
	m, err := h.svc.Fund(ctx, req.MID, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newMilestone(m),
	}, nil
}

func (h *Handler) Start(ctx *ginx.Context, req MidReq, sess session.Session) (ginx.Result, error) {
	m, err := h.svc.Start(ctx, req.MID, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newMilestone(m),
	}, nil
}

func (h *Handler) AddArtifact(ctx *ginx.Context, req ArtifactReq, sess session.Session) (ginx.Result, error) {
	artifact, err := h.svc.AddArtifact(ctx, domain.Artifact{
		MilestoneID: req.MID,
		Name:        req.Name,
		URI:         req.URI,
	}, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: Artifact{
			ID:         artifact.ID,
			Name:       artifact.Name,
			URI:        artifact.URI,
			UploadedBy: artifact.UploadedBy,
		},
	}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req MidReq, sess session.Session) (ginx.Result, error) {
	m, err := h.svc.Submit(ctx, req.MID, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newMilestone(m),
	}, nil
}

func (h *Handler) SupervisorReview(ctx *ginx.Context, req ReviewReq, sess session.Session) (ginx.Result, error) {
	m, err := h.svc.SupervisorReview(ctx, req.MID, req.Approve, req.Notes, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newMilestone(m),
	}, nil
}

func (h *Handler) PartnerReview(ctx *ginx.Context, req ReviewReq, sess session.Session) (ginx.Result, error) {
	m, err := h.svc.PartnerReview(ctx, req.MID, req.Approve, req.Notes, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newMilestone(m),
	}, nil
}

func (h *Handler) Release(ctx *ginx.Context, req ReleaseReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), "release", req.RequestID); err != nil {
		return h.errResult(err), err
	}
	m, err := h.svc.Release(ctx, req.MID, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newMilestone(m),
	}, nil
}

func (h *Handler) DisapproveAndRevert(ctx *ginx.Context, req RevertReq, sess session.Session) (ginx.Result, error) {
	m, err := h.svc.DisapproveAndRevert(ctx, req.MID, req.Notes, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newMilestone(m),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req MidReq) (ginx.Result, error) {
	m, err := h.svc.Detail(ctx, req.MID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newMilestone(m),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	milestones, total, err := h.svc.List(ctx, req.ProjectID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newMilestoneList(milestones, total),
	}, nil
}

// checkRequestID 资金操作的请求去重, SetNX 失败即视为重复提交
func (h *Handler) checkRequestID(ctx context.Context, op, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("%w: 请求ID为空", errDuplicateRequest)
	}
	key := fmt.Sprintf("milestone:%s:%s", op, requestID)
	ok, err := h.cache.SetNX(ctx, key, requestID, requestIDExpiration)
	if err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	if !ok {
		return errDuplicateRequest
	}
	return nil
}

func (h *Handler) operator(sess session.Session) domain.Operator {
	return domain.Operator{
		ID:   sess.Claims().Uid,
		Role: sess.Claims().Get("role").StringOrDefault(""),
	}
}

func (h *Handler) errResult(err error) ginx.Result {
	var pre *domain.PreconditionError
	switch {
	case errors.As(err, &pre):
		return preconditionFailedResult(pre.Reason)
	case errors.Is(err, errDuplicateRequest):
		return duplicateRequestResult
	case errors.Is(err, service.ErrValidationFailed):
		return invalidInputResult
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult
	case errors.Is(err, service.ErrExternalCustodyFailure):
		return externalCustodyFailureResult
	case errors.Is(err, service.ErrRecordChangedConcurrently):
		return concurrentConflictResult
	default:
		return systemErrorResult
	}
}
