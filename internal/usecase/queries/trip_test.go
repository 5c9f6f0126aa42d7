//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/akshattiwarii/Peakster/internal/infra"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"
	"github.com/akshattiwarii/Peakster/internal/usecase/queries"
	queriesmock "github.com/akshattiwarii/Peakster/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTripGetByID(t *testing.T) {
	t.Run("所有者は自分のトリップを取得できる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTripReadStore(ctrl)
		q := queries.NewTripQueries(store)

		owner := uuid.New()
		view := &queries.TripView{ID: uuid.New(), UserID: owner, Destination: "Manali"}
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(context.Background(), owner, view.ID)

		require.NoError(t, err)
		assert.Equal(t, "Manali", got.Destination)
	})

	t.Run("他人のトリップはErrTripNotFoundに偽装される", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTripReadStore(ctrl)
		q := queries.NewTripQueries(store)

		view := &queries.TripView{ID: uuid.New(), UserID: uuid.New()}
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetByID(context.Background(), uuid.New(), view.ID)

		assert.ErrorIs(t, err, queries.ErrTripNotFound)
	})

	t.Run("存在しないトリップはErrTripNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTripReadStore(ctrl)
		q := queries.NewTripQueries(store)

		id := uuid.New()
		notFound := infra.WrapRepoErr("no trip", errs.New("no rows"), infra.KindNotFound)
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound)

		_, err := q.GetByID(context.Background(), uuid.New(), id)

		assert.ErrorIs(t, err, queries.ErrTripNotFound)
	})
}
