package vehicle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

func TestCatalog_Get(t *testing.T) {
	c := vehicle.Default()

	t.Run("Found", func(t *testing.T) {
		v := c.Get("3")
		assert.Equal(t, "3", v.ID)
		assert.Equal(t, "Mazda", v.Make)
	})

	t.Run("FallsBackToFirst", func(t *testing.T) {
		v := c.Get("does-not-exist")
		assert.Equal(t, c.List()[0].ID, v.ID)
	})

	t.Run("LookupReportsMiss", func(t *testing.T) {
		_, ok := c.Lookup("does-not-exist")
		assert.False(t, ok)
	})
}

func TestNewCatalog_DropsDuplicates(t *testing.T) {
	c := vehicle.NewCatalog([]vehicle.Vehicle{
		{ID: "a", Make: "First"},
		{ID: "b", Make: "Second"},
		{ID: "a", Make: "Shadowed"},
	})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "First", c.Get("a").Make)
}

func TestNewCatalog_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { vehicle.NewCatalog(nil) })
}

func TestCatalog_ListIsACopy(t *testing.T) {
	c := vehicle.Default()

	l := c.List()
	l[0].Make = "Mutated"

	assert.NotEqual(t, "Mutated", c.List()[0].Make)
}

func TestCatalog_Filter(t *testing.T) {
	c := vehicle.Default()

	assert.Len(t, c.Filter("  "), c.Len())

	got := c.Filter("ranger")
	require.NotEmpty(t, got)
	assert.Equal(t, "Ford", got[0].Make)

	assert.Empty(t, c.Filter("zzzzqqq"))
}

func TestVehicle_Ask(t *testing.T) {
	assert.Equal(t, int64(37300), vehicle.Vehicle{Price: 38990, AskingPrice: 37300}.Ask())
	assert.Equal(t, int64(38990), vehicle.Vehicle{Price: 38990}.Ask())
}

func TestVehicle_Title(t *testing.T) {
	v := vehicle.Vehicle{Year: 2019, Make: "Ford", Model: "Ranger", Variant: "XLT"}
	assert.Equal(t, "2019 Ford Ranger XLT", v.Title())

	assert.Equal(t, "Ford Ranger", vehicle.Vehicle{Make: "Ford", Model: "Ranger"}.Title())
}

func TestConditionReport_Overall(t *testing.T) {
	r := vehicle.ConditionReport{Exterior: 8, Interior: 8, Mechanical: 9, Tyres: 7}
	assert.Equal(t, 8, r.Overall())
}

func TestImageFor(t *testing.T) {
	assert.Equal(t, "assets/cars/ford-ranger.jpg", vehicle.ImageFor("ranger"))
	assert.Equal(t, vehicle.DefaultImage, vehicle.ImageFor("unknown"))
	assert.Equal(t, vehicle.DefaultImage, vehicle.ImageFor(""))
}

func TestBackgroundFor(t *testing.T) {
	assert.Equal(t, "assets/backgrounds/coast-road.jpg", vehicle.BackgroundFor(1))
	assert.Equal(t, vehicle.DefaultBackground, vehicle.BackgroundFor(-1))
	assert.Equal(t, vehicle.DefaultBackground, vehicle.BackgroundFor(99))
}
