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
	"errors"

	"github.com/campusbridge/campusbridge/internal/dispute/internal/domain"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/disputes")
	g.POST("/raise", ginx.BS[RaiseReq](h.Raise))
	g.POST("/start-review", ginx.BS[StartReviewReq](h.StartReview))
	g.POST("/review", ginx.BS[ReviewReq](h.Review))
	g.POST("/detail", ginx.B[DidReq](h.Detail))
	g.POST("/by-subject", ginx.B[SubjectReq](h.ListBySubject))
	g.POST("/queue", ginx.B[QueueReq](h.Queue))
}

func (h *Handler) Raise(ctx *ginx.Context, req RaiseReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.Raise(ctx, domain.Dispute{
		SubjectType: domain.SubjectType(req.SubjectType),
		SubjectID:   req.SubjectID,
		Reason:      req.Reason,
		Description: req.Description,
		Evidence:    req.Evidence,
		RaisedBy:    sess.Claims().Uid,
	})
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newDispute(d),
	}, nil
}

func (h *Handler) StartReview(ctx *ginx.Context, req StartReviewReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.StartReview(ctx, req.DID, req.AssigneeID, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newDispute(d),
	}, nil
}

func (h *Handler) Review(ctx *ginx.Context, req ReviewReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.Review(ctx, req.DID, domain.ReviewOutcome(req.Outcome), req.Notes, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newDispute(d),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DidReq) (ginx.Result, error) {
	d, err := h.svc.Detail(ctx, req.DID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newDispute(d),
	}, nil
}

func (h *Handler) ListBySubject(ctx *ginx.Context, req SubjectReq) (ginx.Result, error) {
	disputes, err := h.svc.ListBySubject(ctx, domain.SubjectType(req.SubjectType), req.SubjectID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newDisputeList(disputes, int64(len(disputes))),
	}, nil
}

func (h *Handler) Queue(ctx *ginx.Context, req QueueReq) (ginx.Result, error) {
	disputes, total, err := h.svc.Queue(ctx, domain.Level(req.Level), domain.Status(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newDisputeList(disputes, total),
	}, nil
}

func (h *Handler) operator(sess session.Session) domain.Operator {
	return domain.Operator{
		ID:   sess.Claims().Uid,
		Role: sess.Claims().Get("role").StringOrDefault(""),
	}
}

func (h *Handler) errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		return invalidInputResult
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult
	case errors.Is(err, service.ErrTerminalLevel):
		return terminalLevelResult
	case errors.Is(err, service.ErrRecordChangedConcurrently):
		return concurrentConflictResult
	default:
		return systemErrorResult
	}
}
