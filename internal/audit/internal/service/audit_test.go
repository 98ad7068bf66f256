// Copyright 2023 ecodeclub
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

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/usedtech/internal/audit/internal/domain"
	"github.com/ecodeclub/usedtech/internal/audit/internal/event"
	evtmocks "github.com/ecodeclub/usedtech/internal/audit/internal/event/mocks"
	"github.com/ecodeclub/usedtech/internal/audit/internal/repository"
	repomocks "github.com/ecodeclub/usedtech/internal/audit/internal/repository/mocks"
	"github.com/ecodeclub/usedtech/internal/pkg/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Record(t *testing.T) {
	keyGen, err := snowflake.NewKeyGenerator(1, uint(len(domain.EntityTypes)))
	require.NoError(t, err)
	ctime := time.UnixMilli(1700000000000)

	testCases := []struct {
		name    string
		evt     domain.Event
		mock    func(ctrl *gomock.Controller) (repository.AuditRepository, event.AuditEventProducer)
		wantErr error
	}{
		{
			name: "发送消息成功",
			evt: domain.Event{
				ActorID:    1,
				Action:     domain.ActionItemCreated,
				EntityType: domain.EntityTypeItem,
				EntityID:   "12",
				Ctime:      ctime,
			},
			mock: func(ctrl *gomock.Controller) (repository.AuditRepository, event.AuditEventProducer) {
				repo := repomocks.NewMockAuditRepository(ctrl)
				producer := evtmocks.NewMockAuditEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.AuditEvent) error {
						assert.NotEmpty(t, evt.Key)
						assert.Equal(t, "item", evt.EntityType)
						assert.Equal(t, "12", evt.EntityID)
						assert.Equal(t, ctime.UnixMilli(), evt.Ctime)
						return nil
					})
				return repo, producer
			},
		},
		{
			name: "发送消息失败_直接写库",
			evt: domain.Event{
				ActorID:    1,
				Action:     domain.ActionPolicyUpdated,
				EntityType: domain.EntityTypePolicy,
				EntityID:   "warranty",
			},
			mock: func(ctrl *gomock.Controller) (repository.AuditRepository, event.AuditEventProducer) {
				repo := repomocks.NewMockAuditRepository(ctrl)
				producer := evtmocks.NewMockAuditEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq 不可用"))
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt domain.Event) error {
						assert.NotEmpty(t, evt.Key)
						assert.False(t, evt.Ctime.IsZero())
						return nil
					})
				return repo, producer
			},
		},
		{
			name: "发送消息和写库都失败",
			evt: domain.Event{
				ActorID:    1,
				Action:     domain.ActionStaffCreated,
				EntityType: domain.EntityTypeStaff,
				EntityID:   "2",
			},
			mock: func(ctrl *gomock.Controller) (repository.AuditRepository, event.AuditEventProducer) {
				repo := repomocks.NewMockAuditRepository(ctrl)
				producer := evtmocks.NewMockAuditEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq 不可用"))
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db 不可用"))
				return repo, producer
			},
			wantErr: errors.New("any"),
		},
		{
			name: "未知实体类型",
			evt: domain.Event{
				ActorID:    1,
				Action:     domain.ActionItemCreated,
				EntityType: "unknown",
			},
			mock: func(ctrl *gomock.Controller) (repository.AuditRepository, event.AuditEventProducer) {
				return repomocks.NewMockAuditRepository(ctrl), evtmocks.NewMockAuditEventProducer(ctrl)
			},
			wantErr: ErrUnknownEntityType,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, producer := tc.mock(ctrl)
			svc := NewService(repo, producer, keyGen)
			err := svc.Record(context.Background(), tc.evt)
			switch {
			case tc.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tc.wantErr, ErrUnknownEntityType):
				assert.ErrorIs(t, err, ErrUnknownEntityType)
			default:
				assert.Error(t, err)
			}
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockAuditRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), 0, MaxListLimit).Return([]domain.Event{{ID: 1}}, nil)

	svc := NewService(repo, evtmocks.NewMockAuditEventProducer(ctrl), nil)
	events, err := svc.List(context.Background(), 0, 1000)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
