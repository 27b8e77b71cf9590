package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
)

func livingRoom(propertyID uint, components string) *dto.CreateChecklistRequest {
	return &dto.CreateChecklistRequest{
		Type:       "Residential",
		PropertyID: propertyID,
		BHKType:    "2BHK",
		RoomName:   "Living Room",
		Components: json.RawMessage(components),
	}
}

func TestCreateChecklistRoundTrip(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewChecklistService(db, nil)
	ctx := context.Background()

	item, err := svc.Create(ctx, livingRoom(1, `["Sofa","TV"]`))
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, []string{"Sofa", "TV"}, item.Components)

	var stored models.ChecklistItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.JSONEq(t, `["Sofa","TV"]`, stored.Components)

	all, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []string{"Sofa", "TV"}, all[0].Components)
	assert.Equal(t, "Living Room", all[0].RoomName)
}

func TestCreateChecklistAcceptsEncodedString(t *testing.T) {
	svc := NewChecklistService(dbtest.Open(t), nil)

	item, err := svc.Create(context.Background(), livingRoom(1, `"[\"Bed\",\"Wardrobe\"]"`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bed", "Wardrobe"}, item.Components)
}

func TestCreateChecklistValidation(t *testing.T) {
	svc := NewChecklistService(dbtest.Open(t), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, livingRoom(0, `["Sofa"]`))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, livingRoom(1, `[]`))
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "components must contain at least one item", err.Error())

	_, err = svc.Create(ctx, livingRoom(1, ``))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, livingRoom(1, `{"a":1}`))
	assert.ErrorIs(t, err, ErrValidation)

	req := livingRoom(1, `["Sofa"]`)
	req.RoomName = "  "
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "room_name is required", err.Error())
}

func TestListChecklistFilterAndCache(t *testing.T) {
	c := newMemCache()
	svc := NewChecklistService(dbtest.Open(t), c)
	ctx := context.Background()

	empty, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.True(t, c.has(keyChecklistAll))

	_, err = svc.Create(ctx, livingRoom(1, `["Sofa"]`))
	require.NoError(t, err)
	assert.False(t, c.has(keyChecklistAll))
	_, err = svc.Create(ctx, livingRoom(2, `["Bed"]`))
	require.NoError(t, err)

	all, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, []string{"Bed"}, filtered[0].Components)

	none, err := svc.List(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}
