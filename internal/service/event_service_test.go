package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports/mocks"
	"did-payment-splitter/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEventService_PublishFansOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := mocks.NewMockEventSink(ctrl)
	healthy := mocks.NewMockEventSink(ctrl)
	e := domain.NewEvent(domain.EventVendorRegistered, ownerAddr, common.HexToHash("0x01")).With("k", "v")

	failing.EXPECT().Append(gomock.Any(), []*domain.Event{e}).Return(errors.New("redis down"))
	failing.EXPECT().Name().Return("redis").AnyTimes()
	healthy.EXPECT().Append(gomock.Any(), []*domain.Event{e}).Return(nil)

	var buf bytes.Buffer
	svc := NewEventService(logger.NewWithWriter("debug", &buf), nil, failing, healthy)
	svc.Publish(context.Background(), e)

	out := buf.String()
	assert.Contains(t, out, `"kind":"VENDOR_REGISTERED"`)
	assert.Contains(t, out, `"k":"v"`)
	assert.Contains(t, out, "failed to append events")
	assert.Contains(t, out, `"sink":"redis"`)
}

func TestEventService_PublishNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Append expected.
	sink := mocks.NewMockEventSink(ctrl)
	svc := NewEventService(logger.NewWithWriter("debug", &bytes.Buffer{}), nil, sink)
	svc.Publish(context.Background())
}
