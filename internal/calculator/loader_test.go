package calculator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "investreports/internal/errors"
	"investreports/internal/validation"
)

func TestDefaultProperties(t *testing.T) {
	props := DefaultProperties()
	require.Len(t, props, 5)

	v := validation.NewStructValidator()
	for _, p := range props {
		assert.NoError(t, v.Struct(p), p.Address)
	}

	first := props[0]
	assert.Equal(t, "Unit 12/45 Queen Street, Auckland CBD", first.Address)
	assert.Equal(t, 650.0, first.WeeklyRent)
	assert.Equal(t, []float64{4500, 2800, 1200}, first.FixedCosts())
	assert.Equal(t, []float64{1800, 900}, first.EditableCosts())
	assert.Equal(t, 2015, first.BuildYear)
	assert.Equal(t, 520000.0, first.RV)

	assert.Equal(t, "Unit 22/156 Riccarton Road, Christchurch", props[4].Address)
}

func TestLoadPropertiesDefaultsOnEmptyPath(t *testing.T) {
	props, err := LoadProperties("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultProperties(), props)
}

func TestLoadPropertiesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "properties.yaml")
	doc := `properties:
  - address: 1 Test Street, Dunedin
    weekly_rent: 500
    body_corp: 3000
    rates: 2000
    insurance: 1000
    property_management: 1500
    maintenance_reserve: 700
    build_year: 2005
    rv: 400000
    asking_layout: $380000 / 2 bed 1 bath
    rental_status: Vacant
    link: https://example.com/test
    notes: Corner unit
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	props, err := LoadProperties(path, validation.NewStructValidator())
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "1 Test Street, Dunedin", props[0].Address)
	assert.Equal(t, 500.0, props[0].WeeklyRent)
	assert.Equal(t, 700.0, props[0].MaintenanceReserve)
	assert.Equal(t, 2005, props[0].BuildYear)
	assert.Equal(t, "Corner unit", props[0].Notes)
}

func TestLoadPropertiesMissingFile(t *testing.T) {
	_, err := LoadProperties(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestParseProperties(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantLen  int
		wantType apperrors.ErrorType
		wantMsg  string
	}{
		{name: "empty list", doc: "properties: []\n", wantLen: 0},
		{name: "empty document", doc: "", wantLen: 0},
		{
			name:     "unknown field",
			doc:      "properties:\n  - address: A\n    parking: 1\n",
			wantType: apperrors.ErrTypeParsing,
		},
		{
			name:     "malformed yaml",
			doc:      "properties: [",
			wantType: apperrors.ErrTypeParsing,
		},
		{
			name:     "missing address",
			doc:      "properties:\n  - address: A\n  - weekly_rent: 100\n",
			wantType: apperrors.ErrTypeValidation,
			wantMsg:  "property 2: address is required",
		},
		{
			name:     "negative cost",
			doc:      "properties:\n  - address: A\n    rates: -1\n",
			wantType: apperrors.ErrTypeValidation,
			wantMsg:  "rates must be >= 0",
		},
		{
			name:     "bad link",
			doc:      "properties:\n  - address: A\n    link: not a url\n",
			wantType: apperrors.ErrTypeValidation,
			wantMsg:  "link must be a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := ParseProperties([]byte(tt.doc), nil)
			if tt.wantType == "" {
				require.NoError(t, err)
				assert.NotNil(t, props)
				assert.Len(t, props, tt.wantLen)
				return
			}

			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType), err.Error())
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
