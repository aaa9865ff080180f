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

package job

import (
	"context"
	"errors"
	"testing"

	"github.com/campusbridge/campusbridge/internal/milestone/internal/domain"
	milestonemocks "github.com/campusbridge/campusbridge/internal/milestone/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSyncPendingCapturesJob_Run(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := milestonemocks.NewMockService(ctrl)

	milestones := []domain.Milestone{
		{ID: 301, SN: "MS001", Status: domain.StatusFinalized},
		{ID: 302, SN: "MS002", Status: domain.StatusFinalized},
	}
	svc.EXPECT().FindPendingCaptures(gomock.Any(), 0, 10).
		Return(milestones, int64(2), nil)
	svc.EXPECT().ResolveCapture(gomock.Any(), milestones[0]).Return(nil)
	svc.EXPECT().ResolveCapture(gomock.Any(), milestones[1]).Return(nil)

	job := NewSyncPendingCapturesJob(svc, 10)
	require.Equal(t, "SyncPendingCapturesJob", job.Name())
	err := job.Run(context.Background())
	require.NoError(t, err)
}

func TestSyncPendingCapturesJob_Run_Paginates(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := milestonemocks.NewMockService(ctrl)

	first := []domain.Milestone{{ID: 301, SN: "MS001"}, {ID: 302, SN: "MS002"}}
	second := []domain.Milestone{{ID: 303, SN: "MS003"}}
	gomock.InOrder(
		svc.EXPECT().FindPendingCaptures(gomock.Any(), 0, 2).
			Return(first, int64(3), nil),
		svc.EXPECT().ResolveCapture(gomock.Any(), first[0]).Return(nil),
		svc.EXPECT().ResolveCapture(gomock.Any(), first[1]).Return(nil),
		svc.EXPECT().FindPendingCaptures(gomock.Any(), 2, 2).
			Return(second, int64(3), nil),
		svc.EXPECT().ResolveCapture(gomock.Any(), second[0]).Return(nil),
	)

	job := NewSyncPendingCapturesJob(svc, 2)
	err := job.Run(context.Background())
	require.NoError(t, err)
}

func TestSyncPendingCapturesJob_Run_ContinuesOnResolveError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := milestonemocks.NewMockService(ctrl)

	milestones := []domain.Milestone{
		{ID: 301, SN: "MS001"},
		{ID: 302, SN: "MS002"},
	}
	svc.EXPECT().FindPendingCaptures(gomock.Any(), 0, 10).
		Return(milestones, int64(2), nil)
	svc.EXPECT().ResolveCapture(gomock.Any(), milestones[0]).
		Return(errors.New("托管方超时"))
	svc.EXPECT().ResolveCapture(gomock.Any(), milestones[1]).Return(nil)

	job := NewSyncPendingCapturesJob(svc, 10)
	err := job.Run(context.Background())
	assert.NoError(t, err)
}

func TestSyncPendingCapturesJob_Run_Empty(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := milestonemocks.NewMockService(ctrl)

	svc.EXPECT().FindPendingCaptures(gomock.Any(), 0, 10).
		Return([]domain.Milestone{}, int64(0), nil)

	job := NewSyncPendingCapturesJob(svc, 10)
	err := job.Run(context.Background())
	require.NoError(t, err)
}
