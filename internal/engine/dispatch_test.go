package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mkhandekar/restock-tracker/internal/notify"
	notifyMocks "github.com/mkhandekar/restock-tracker/internal/notify/mocks"
	storeMocks "github.com/mkhandekar/restock-tracker/internal/store/mocks"
	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

func newTestDispatcher(
	s *storeMocks.MockStore,
	email, telegram *notifyMocks.MockNotifier,
) *Dispatcher {
	return NewDispatcher(s, email, telegram,
		WithDispatchLogger(quietLogger()),
		WithStorefrontBase("https://shop.example.com/en/product/"),
	)
}

func TestDispatchRestocks_EmailAndTelegram(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := notifyMocks.NewMockNotifier(t)
	mt := notifyMocks.NewMockNotifier(t)
	d := newTestDispatcher(ms, me, mt)

	product := domain.Product{
		ProductID: "p1", Name: "Masala Chai", Alias: "masala-chai",
		Price: 12.5, InventoryQuantity: 6,
	}

	ms.EXPECT().FindActiveSubscriptions(mock.Anything, "p1").Return([]domain.Subscription{
		{
			Email:            "user@example.com",
			ProductID:        "p1",
			TelegramUsername: "chailover",
			TelegramChatID:   42,
		},
	}, nil).Once()

	me.EXPECT().SendRestock(mock.Anything, mock.MatchedBy(func(r *notify.RestockPayload) bool {
		return r.Email == "user@example.com" &&
			r.ProductName == "Masala Chai" &&
			r.ProductURL == "https://shop.example.com/en/product/masala-chai"
	})).Return(nil).Once()
	mt.EXPECT().SendRestock(mock.Anything, mock.MatchedBy(func(r *notify.RestockPayload) bool {
		return r.TelegramChatID == 42
	})).Return(nil).Once()

	report := d.DispatchRestocks(context.Background(), []domain.Product{product})

	assert.Equal(t, 2, report.Attempted)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 0, report.Failed)
}

func TestDispatchRestocks_EmailOnlyWithoutChatID(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := notifyMocks.NewMockNotifier(t)
	// No expectations: a telegram send would fail the test.
	mt := notifyMocks.NewMockNotifier(t)
	d := newTestDispatcher(ms, me, mt)

	ms.EXPECT().FindActiveSubscriptions(mock.Anything, "p1").Return([]domain.Subscription{
		// Username present but the bot never captured a chat ID.
		{Email: "user@example.com", ProductID: "p1", TelegramUsername: "chailover"},
	}, nil).Once()
	me.EXPECT().SendRestock(mock.Anything, mock.Anything).Return(nil).Once()

	report := d.DispatchRestocks(context.Background(), []domain.Product{
		{ProductID: "p1", Name: "Masala Chai"},
	})

	assert.Equal(t, 1, report.Attempted)
	assert.Equal(t, 1, report.Sent)
}

func TestDispatchRestocks_FailureDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := notifyMocks.NewMockNotifier(t)
	mt := notifyMocks.NewMockNotifier(t)
	d := newTestDispatcher(ms, me, mt)

	ms.EXPECT().FindActiveSubscriptions(mock.Anything, "p1").Return([]domain.Subscription{
		{Email: "a@example.com", ProductID: "p1"},
		{Email: "b@example.com", ProductID: "p1"},
	}, nil).Once()

	me.EXPECT().SendRestock(mock.Anything, mock.MatchedBy(func(r *notify.RestockPayload) bool {
		return r.Email == "a@example.com"
	})).Return(errors.New("smtp timeout")).Once()
	me.EXPECT().SendRestock(mock.Anything, mock.MatchedBy(func(r *notify.RestockPayload) bool {
		return r.Email == "b@example.com"
	})).Return(nil).Once()

	report := d.DispatchRestocks(context.Background(), []domain.Product{
		{ProductID: "p1", Name: "Masala Chai"},
	})

	assert.Equal(t, 2, report.Attempted)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
}

func TestDispatchRestocks_LookupFailureSkipsProduct(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := notifyMocks.NewMockNotifier(t)
	mt := notifyMocks.NewMockNotifier(t)
	d := newTestDispatcher(ms, me, mt)

	ms.EXPECT().FindActiveSubscriptions(mock.Anything, "p1").
		Return(nil, errors.New("db down")).Once()
	ms.EXPECT().FindActiveSubscriptions(mock.Anything, "p2").Return([]domain.Subscription{
		{Email: "user@example.com", ProductID: "p2"},
	}, nil).Once()
	me.EXPECT().SendRestock(mock.Anything, mock.Anything).Return(nil).Once()

	report := d.DispatchRestocks(context.Background(), []domain.Product{
		{ProductID: "p1", Name: "Masala Chai"},
		{ProductID: "p2", Name: "Green Tea"},
	})

	assert.Equal(t, 1, report.Attempted)
	assert.Equal(t, 1, report.Sent)
}

func TestDispatchRestocks_NoSubscribers(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := notifyMocks.NewMockNotifier(t)
	mt := notifyMocks.NewMockNotifier(t)
	d := newTestDispatcher(ms, me, mt)

	ms.EXPECT().FindActiveSubscriptions(mock.Anything, "p1").
		Return(nil, nil).Once()

	report := d.DispatchRestocks(context.Background(), []domain.Product{
		{ProductID: "p1", Name: "Masala Chai"},
	})

	assert.Equal(t, 0, report.Attempted)
}

func TestDispatchRestocks_SendsRunConcurrently(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := notifyMocks.NewMockNotifier(t)
	mt := notifyMocks.NewMockNotifier(t)
	d := newTestDispatcher(ms, me, mt)

	subs := []domain.Subscription{
		{Email: "a@example.com", ProductID: "p1"},
		{Email: "b@example.com", ProductID: "p1"},
		{Email: "c@example.com", ProductID: "p1"},
	}
	ms.EXPECT().FindActiveSubscriptions(mock.Anything, "p1").Return(subs, nil).Once()

	// Each send blocks until all three have started. Sequential sends
	// would deadlock here; the dispatcher must fan out.
	barrier := make(chan struct{}, len(subs))
	me.EXPECT().SendRestock(mock.Anything, mock.Anything).RunAndReturn(
		func(context.Context, *notify.RestockPayload) error {
			barrier <- struct{}{}
			for len(barrier) < len(subs) {
				time.Sleep(time.Millisecond)
			}
			return nil
		}).Times(len(subs))

	report := d.DispatchRestocks(context.Background(), []domain.Product{
		{ProductID: "p1", Name: "Masala Chai"},
	})

	require.Equal(t, 3, report.Sent)
}
