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
)

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "提案到确认", from: StatusProposed, to: StatusAccepted, want: true},
		{name: "确认到定稿", from: StatusAccepted, to: StatusFinalized, want: true},
		{name: "定稿到入账", from: StatusFinalized, to: StatusFunded, want: true},
		{name: "入账到开工", from: StatusFunded, to: StatusInProgress, want: true},
		{name: "开工到提交", from: StatusInProgress, to: StatusSubmitted, want: true},
		{name: "提交到导师审核", from: StatusSubmitted, to: StatusSupervisorReview, want: true},
		{name: "导师通过进合作方验收", from: StatusSupervisorReview, to: StatusPartnerReview, want: true},
		{name: "导师打回返工", from: StatusSupervisorReview, to: StatusChangesRequested, want: true},
		{name: "合作方通过", from: StatusPartnerReview, to: StatusApproved, want: true},
		{name: "合作方打回返工", from: StatusPartnerReview, to: StatusChangesRequested, want: true},
		{name: "验收后打回返工", from: StatusApproved, to: StatusChangesRequested, want: true},
		{name: "验收后放款", from: StatusApproved, to: StatusReleased, want: true},
		{name: "返工回到进行中", from: StatusChangesRequested, to: StatusInProgress, want: true},
		{name: "放款后完成", from: StatusReleased, to: StatusCompleted, want: true},
		{name: "不能跳过入账直接开工", from: StatusFinalized, to: StatusInProgress, want: false},
		{name: "不能跳过导师审核", from: StatusSubmitted, to: StatusPartnerReview, want: false},
		{name: "放款不能回退", from: StatusReleased, to: StatusApproved, want: false},
		{name: "完成是终态", from: StatusCompleted, to: StatusInProgress, want: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusReleased.IsTerminal())
	assert.False(t, StatusChangesRequested.IsTerminal())
}

func TestPreconditionError(t *testing.T) {
	t.Parallel()
	err := NewPreconditionError(ReasonEscrowNotHeld)
	assert.Equal(t, ReasonEscrowNotHeld, err.Reason)
	assert.Contains(t, err.Error(), ReasonEscrowNotHeld)
}
