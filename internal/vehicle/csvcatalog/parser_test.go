package csvcatalog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle/csvcatalog"
)

func TestLoad_CarlotExport(t *testing.T) {
	csv := `id,make,model,variant,year,body_type,odometer_km,price,asking_price,ppsr_status,image_key
1,Ford,Ranger,XLT,2019,Ute,84210,"38,990","37,300",clear,ranger
2,Toyota,Corolla,Ascent,2021,Hatchback,32870,29450,,encumbered,corolla
`

	vs, err := csvcatalog.Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, vs, 2)

	assert.Equal(t, "1", vs[0].ID)
	assert.Equal(t, "2019 Ford Ranger XLT", vs[0].Title())
	assert.Equal(t, int64(38990), vs[0].Price)
	assert.Equal(t, int64(37300), vs[0].Ask())
	assert.Equal(t, 84210, vs[0].OdometerKM)
	assert.Equal(t, vehicle.PPSRClear, vs[0].PPSR.Status)
	assert.Equal(t, "ranger", vs[0].ImageKey)

	assert.Equal(t, int64(29450), vs[1].Ask())
	assert.Equal(t, vehicle.PPSREncumbered, vs[1].PPSR.Status)
}

func TestLoad_DMSExportWithPreamble(t *testing.T) {
	csv := `Stock report;Westside Motors
Generated;01-06-2024

Stock No;Make;Model;Badge;Build Year;Kms;Drive Away;Web Price;PPSR;Salesperson;Dealer
WS1001;Holden;Commodore;SV6;2016;"112,400";18990;17500;Finance Owing;Dave;Westside Motors
;;;;;;;;;;
Total;1
`

	vs, err := csvcatalog.Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, vs, 1)

	v := vs[0]
	assert.Equal(t, "WS1001", v.ID)
	assert.Equal(t, "SV6", v.Variant)
	assert.Equal(t, 2016, v.Year)
	assert.Equal(t, 112400, v.OdometerKM)
	assert.Equal(t, int64(17500), v.Ask())
	assert.Equal(t, vehicle.PPSREncumbered, v.PPSR.Status)
	assert.Equal(t, "Westside Motors", v.Seller.Dealership)
}

func TestLoad_Windows1252(t *testing.T) {
	csv := "id,make,model,price\n7,Citroën,C4,15990\n"

	encoded, err := charmap.Windows1252.NewEncoder().String(csv)
	require.NoError(t, err)

	vs, err := csvcatalog.Load(bytes.NewReader([]byte(encoded)))
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "Citroën", vs[0].Make)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{name: "NoHeader", csv: "foo,bar\n1,2\n"},
		{name: "BadPrice", csv: "id,make,model,price\n1,Ford,Ranger,cheap\n"},
		{name: "BadAskingPrice", csv: "id,make,model,price,asking_price\n1,Ford,Ranger,100,-5\n"},
		{name: "MissingPrice", csv: "id,make,model,price\n1,Ford,Ranger,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := csvcatalog.Load(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}
}
