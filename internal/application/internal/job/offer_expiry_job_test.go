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
	"testing"

	"github.com/campusbridge/campusbridge/internal/application/internal/domain"
	applicationmocks "github.com/campusbridge/campusbridge/internal/application/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOfferExpiryJob_Run(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := applicationmocks.NewMockService(ctrl)

	expired := []domain.Application{
		{ID: 1, Status: domain.StatusOffered},
		{ID: 2, Status: domain.StatusOffered},
	}
	svc.EXPECT().FindExpiredOffers(gomock.Any(), 0, 10, gomock.Any()).
		Return(expired, int64(2), nil)
	svc.EXPECT().ExpireOffer(gomock.Any(), expired[0]).Return(nil)
	svc.EXPECT().ExpireOffer(gomock.Any(), expired[1]).Return(nil)

	j := NewOfferExpiryJob(svc, 10)
	require.Equal(t, "OfferExpiryJob", j.Name())
	require.NoError(t, j.Run(context.Background()))
}

func TestOfferExpiryJob_Run_Paginates(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := applicationmocks.NewMockService(ctrl)

	first := []domain.Application{
		{ID: 1, Status: domain.StatusOffered},
		{ID: 2, Status: domain.StatusOffered},
	}
	second := []domain.Application{
		{ID: 3, Status: domain.StatusOffered},
	}
	gomock.InOrder(
		svc.EXPECT().FindExpiredOffers(gomock.Any(), 0, 2, gomock.Any()).
			Return(first, int64(3), nil),
		svc.EXPECT().FindExpiredOffers(gomock.Any(), 0, 2, gomock.Any()).
			Return(second, int64(1), nil),
	)
	svc.EXPECT().ExpireOffer(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	j := NewOfferExpiryJob(svc, 2)
	require.NoError(t, j.Run(context.Background()))
}

func TestOfferExpiryJob_Run_Empty(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := applicationmocks.NewMockService(ctrl)

	svc.EXPECT().FindExpiredOffers(gomock.Any(), 0, 10, gomock.Any()).
		Return(nil, int64(0), nil)

	j := NewOfferExpiryJob(svc, 10)
	require.NoError(t, j.Run(context.Background()))
}
