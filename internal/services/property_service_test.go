package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
)

func lakeView() *dto.CreatePropertyRequest {
	return &dto.CreatePropertyRequest{
		Type: "Residential",
		Name: "Lake View",
		BHK:  "2BHK",
		Location: &dto.LocationRequest{
			Address: "12 Lake Rd",
			City:    "Pune",
			State:   "MH",
		},
		PropertiesImage: []string{"https://x/a.jpg"},
	}
}

func TestCreateProperty(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewPropertyService(db, nil)

	p, err := svc.Create(context.Background(), lakeView())
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, models.Location{Address: "12 Lake Rd", City: "Pune", State: "MH"}, p.Location)
	assert.Equal(t, []string{"https://x/a.jpg"}, p.PropertiesImage)
	assert.NotNil(t, p.CreatedAt)

	var stored models.Property
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.JSONEq(t, `{"address":"12 Lake Rd","city":"Pune","state":"MH"}`, stored.Location)
	assert.JSONEq(t, `["https://x/a.jpg"]`, stored.PropertiesImage)
}

func TestCreatePropertyValidation(t *testing.T) {
	svc := NewPropertyService(dbtest.Open(t), nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.CreatePropertyRequest)
		msg    string
	}{
		{"blank name", func(r *dto.CreatePropertyRequest) { r.Name = "   " }, "name is required"},
		{"unknown type", func(r *dto.CreatePropertyRequest) { r.Type = "Castle" }, ""},
		{"unknown bhk", func(r *dto.CreatePropertyRequest) { r.BHK = "9BHK" }, ""},
		{"missing location", func(r *dto.CreatePropertyRequest) { r.Location = nil }, "location is required"},
		{"blank city", func(r *dto.CreatePropertyRequest) { r.Location.City = " " }, "location.city is required"},
		{"no images", func(r *dto.CreatePropertyRequest) { r.PropertiesImage = nil }, "properties_image is required"},
		{"bad image url", func(r *dto.CreatePropertyRequest) { r.PropertiesImage = []string{"not a url"} }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := lakeView()
			tt.mutate(req)
			_, err := svc.Create(ctx, req)
			require.ErrorIs(t, err, ErrValidation)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, err.Error())
			}
		})
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreatePropertyAcceptsUITypes(t *testing.T) {
	svc := NewPropertyService(dbtest.Open(t), nil)

	req := lakeView()
	req.Type = "Villa"
	req.BHK = "4BHK"
	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestListPropertiesEmpty(t *testing.T) {
	svc := NewPropertyService(dbtest.Open(t), nil)
	ctx := context.Background()

	for _, list := range []func(context.Context) ([]dto.Property, error){svc.List, svc.ListOverview, svc.ListMobile} {
		got, err := list(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestListPropertyVariants(t *testing.T) {
	svc := NewPropertyService(dbtest.Open(t), nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, lakeView())
	require.NoError(t, err)
	req := lakeView()
	req.Name = "Hill Crest"
	second, err := svc.Create(ctx, req)
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	overview, err := svc.ListOverview(ctx)
	require.NoError(t, err)
	require.Len(t, overview, 2)
	assert.Equal(t, second.ID, overview[0].ID)
	assert.NotNil(t, overview[0].CreatedAt)

	mobile, err := svc.ListMobile(ctx)
	require.NoError(t, err)
	require.Len(t, mobile, 2)
	assert.Nil(t, mobile[0].CreatedAt)
	assert.Equal(t, []string{"https://x/a.jpg"}, mobile[0].PropertiesImage)
}

func TestListPropertiesToleratesMalformedRows(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewPropertyService(db, nil)

	require.NoError(t, db.Create(&models.Property{
		Type: "Land", Name: "Broken", BHK: "Other",
		Location: "{not json", PropertiesImage: "https://x/only.jpg",
	}).Error)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.Location{}, got[0].Location)
	assert.NotNil(t, got[0].PropertiesImage)
}

func TestGetAndDeleteProperty(t *testing.T) {
	svc := NewPropertyService(dbtest.Open(t), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, lakeView())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lake View", got.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 0), ErrValidation)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPropertyListCache(t *testing.T) {
	c := newMemCache()
	svc := NewPropertyService(dbtest.Open(t), c)
	ctx := context.Background()

	_, err := svc.Create(ctx, lakeView())
	require.NoError(t, err)

	_, err = svc.ListOverview(ctx)
	require.NoError(t, err)
	assert.True(t, c.has(keyPropertiesOverview))

	cached, err := svc.ListOverview(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 1)
	assert.Equal(t, 1, c.hits)

	req := lakeView()
	req.Name = "Hill Crest"
	_, err = svc.Create(ctx, req)
	require.NoError(t, err)
	assert.False(t, c.has(keyPropertiesOverview))

	fresh, err := svc.ListOverview(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}
