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

	"github.com/campusbridge/campusbridge/internal/application/internal/domain"
	"github.com/campusbridge/campusbridge/internal/application/internal/service"
	"github.com/ecodeclub/ekit/slice"
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
	g := server.Group("/applications")
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/evaluate", ginx.BS[EvaluateReq](h.Evaluate))
	g.POST("/shortlist", ginx.BS[ShortlistReq](h.Shortlist))
	g.POST("/waitlist", ginx.BS[AidReq](h.Waitlist))
	g.POST("/reject", ginx.BS[AidReq](h.Reject))
	g.POST("/offer", ginx.BS[OfferReq](h.ExtendOffer))
	g.POST("/respond", ginx.BS[RespondReq](h.RespondToOffer))
	g.POST("/assign", ginx.BS[AidReq](h.Assign))
	g.POST("/detail", ginx.B[AidReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Submit(ctx, domain.Application{
		ProjectID:    req.ProjectID,
		Type:         domain.ApplicationType(req.Type),
		ApplicantIDs: req.ApplicantIDs,
		Statement:    req.Statement,
	})
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *Handler) Evaluate(ctx *ginx.Context, req EvaluateReq, sess session.Session) (ginx.Result, error) {
	score, err := h.svc.Evaluate(ctx, req.AID, domain.AutoFactors{
		SkillMatch: req.SkillMatch,
		Portfolio:  req.Portfolio,
		Rating:     req.Rating,
		OnTimeRate: req.OnTimeRate,
		ReworkRate: req.ReworkRate,
	}, req.Supervisor, req.Partner)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newScore(score),
	}, nil
}

func (h *Handler) Shortlist(ctx *ginx.Context, req ShortlistReq, sess session.Session) (ginx.Result, error) {
	ids, err := h.svc.Shortlist(ctx, req.ProjectID, domain.ShortlistCriteria{
		Threshold: req.Threshold,
		TopN:      req.TopN,
	}, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: ids,
	}, nil
}

func (h *Handler) Waitlist(ctx *ginx.Context, req AidReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Waitlist(ctx, req.AID, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *Handler) Reject(ctx *ginx.Context, req AidReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Reject(ctx, req.AID, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *Handler) ExtendOffer(ctx *ginx.Context, req OfferReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.ExtendOffer(ctx, req.AID, req.ExpiresAt, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *Handler) RespondToOffer(ctx *ginx.Context, req RespondReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.RespondToOffer(ctx, req.AID, req.Accept, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *Handler) Assign(ctx *ginx.Context, req AidReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Assign(ctx, req.AID, h.operator(sess))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req AidReq) (ginx.Result, error) {
	app, err := h.svc.Detail(ctx, req.AID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	apps, total, err := h.svc.List(ctx, req.ProjectID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ApplicationList{
			Total: total,
			Applications: slice.Map(apps, func(idx int, src domain.Application) Application {
				return newApplication(src)
			}),
		},
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
	case errors.Is(err, service.ErrOfferExpired):
		return offerExpiredResult
	case errors.Is(err, service.ErrRecordChangedConcurrently):
		return concurrentConflictResult
	default:
		return systemErrorResult
	}
}
