package listing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/carlot/internal/listing"
)

func TestService_Publish(t *testing.T) {
	type testCase struct {
		name       string
		params     listing.CreateParams
		setupMock  func(m *listing.MockRepository)
		wantStatus listing.Status
		wantErr    bool
	}

	valid := listing.CreateParams{VehicleID: "1", Title: "2019 Ford Ranger XLT", Price: 37300}

	tests := []testCase{
		{
			name:   "DefaultsToAvailable",
			params: valid,
			setupMock: func(m *listing.MockRepository) {
				m.EXPECT().
					CreateListing(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *listing.Listing) error {
						l.ID = uuid.New()
						return nil
					})
			},
			wantStatus: listing.StatusAvailable,
		},
		{
			name:   "ExplicitStatus",
			params: listing.CreateParams{VehicleID: "1", Title: "Ranger", Price: 100, Status: listing.StatusPending},
			setupMock: func(m *listing.MockRepository) {
				m.EXPECT().CreateListing(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: listing.StatusPending,
		},
		{
			name:    "MissingTitle",
			params:  listing.CreateParams{VehicleID: "1", Price: 100},
			wantErr: true,
		},
		{
			name:    "ZeroPrice",
			params:  listing.CreateParams{VehicleID: "1", Title: "Ranger"},
			wantErr: true,
		},
		{
			name:    "UnknownStatus",
			params:  listing.CreateParams{VehicleID: "1", Title: "Ranger", Price: 100, Status: "archived"},
			wantErr: true,
		},
		{
			name:   "RepoError",
			params: valid,
			setupMock: func(m *listing.MockRepository) {
				m.EXPECT().CreateListing(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := listing.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := listing.NewService(repo)
			got, err := svc.Publish(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.params.Price, got.Price)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := listing.NewMockRepository(ctrl)
	repo.EXPECT().UpdateStatus(gomock.Any(), id, listing.StatusSold).Return(nil)

	svc := listing.NewService(repo)

	require.NoError(t, svc.UpdateStatus(context.Background(), id, listing.StatusSold))
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), id, "archived"), listing.ErrInvalidStatus)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sold := listing.StatusSold

	repo := listing.NewMockRepository(ctrl)
	repo.EXPECT().
		ListListings(gomock.Any(), listing.ListFilter{Status: &sold}).
		Return([]*listing.Listing{{ID: uuid.New(), Status: listing.StatusSold}}, nil)

	svc := listing.NewService(repo)

	got, err := svc.List(context.Background(), listing.ListFilter{Status: &sold})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	bogus := listing.Status("archived")
	_, err = svc.List(context.Background(), listing.ListFilter{Status: &bogus})
	assert.ErrorIs(t, err, listing.ErrInvalidStatus)
}

func TestService_Counts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := listing.NewMockRepository(ctrl)
	repo.EXPECT().
		ListListings(gomock.Any(), listing.ListFilter{}).
		Return([]*listing.Listing{
			{Status: listing.StatusAvailable},
			{Status: listing.StatusAvailable},
			{Status: listing.StatusSold},
		}, nil)

	svc := listing.NewService(repo)

	got, err := svc.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[listing.Status]int{
		listing.StatusAvailable: 2,
		listing.StatusPending:   0,
		listing.StatusSold:      1,
	}, got)
}

func TestStatus_Next(t *testing.T) {
	assert.Equal(t, listing.StatusPending, listing.StatusAvailable.Next())
	assert.Equal(t, listing.StatusSold, listing.StatusPending.Next())
	assert.Equal(t, listing.StatusAvailable, listing.StatusSold.Next())
	assert.Equal(t, listing.StatusAvailable, listing.Status("bogus").Next())
}
