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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Next(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		level   Level
		want    Level
		wantErr error
	}{
		{
			name:  "学生-合作方层升到导师层",
			level: LevelStudentPartner,
			want:  LevelSupervisor,
		},
		{
			name:  "导师层升到校级管理员",
			level: LevelSupervisor,
			want:  LevelUniversityAdmin,
		},
		{
			name:  "校级管理员升到平台管理员",
			level: LevelUniversityAdmin,
			want:  LevelSuperAdmin,
		},
		{
			name:    "平台管理员不能再升",
			level:   LevelSuperAdmin,
			want:    LevelSuperAdmin,
			wantErr: ErrTerminalLevel,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			next, err := tc.level.Next()
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, next)
		})
	}
}

func TestLevel_Next_Monotonic(t *testing.T) {
	t.Parallel()
	// 从最低层级逐级升到顶, 恰好三次
	level := LevelStudentPartner
	steps := 0
	for {
		next, err := level.Next()
		if err != nil {
			require.ErrorIs(t, err, ErrTerminalLevel)
			break
		}
		require.Greater(t, next, level)
		level = next
		steps++
	}
	assert.Equal(t, 3, steps)
	assert.Equal(t, LevelSuperAdmin, level)
}

func TestDispute_Active(t *testing.T) {
	t.Parallel()
	assert.True(t, Dispute{Status: StatusOpen}.Active())
	assert.True(t, Dispute{Status: StatusInReview}.Active())
	assert.False(t, Dispute{Status: StatusResolved}.Active())
}
