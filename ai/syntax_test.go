package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComponent(t *testing.T) {
	tests := []struct {
		spec    string
		want    Component
		wantErr bool
	}{
		{spec: "N14", want: Component{Type: Numeric, Min: 14, Max: 14}},
		{spec: "X..20", want: Component{Type: Alphanumeric, Min: 1, Max: 20}},
		{spec: "N6,yymmd0", want: Component{Type: Numeric, Min: 6, Max: 6, Linters: []string{"yymmd0"}}},
		{spec: "N13,csum,key", want: Component{Type: Numeric, Min: 13, Max: 13, Linters: []string{"csum", "key"}}},
		{spec: "Y..30", want: Component{Type: Alphanumeric, Min: 1, Max: 30}},
		{spec: "Z5", wantErr: true},
		{spec: "N", wantErr: true},
		{spec: "N..x", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseComponent(tt.spec)
		if tt.wantErr {
			assert.Error(t, err, tt.spec)
			continue
		}
		require.NoError(t, err, tt.spec)
		assert.Equal(t, tt.want, got, tt.spec)
	}
}

func TestBuildEntryFixedNumeric(t *testing.T) {
	e, err := buildEntry("01", "GTIN", "N14,csum,gcppos2", true, nil, nil, true, -1)
	require.NoError(t, err)

	assert.Equal(t, 14, e.FixedLength)
	assert.Equal(t, 14, e.MinLength)
	assert.Equal(t, 14, e.MaxLength)
	assert.True(t, e.CheckDigit)
	assert.False(t, e.SeparatorRequired)
	assert.Equal(t, Numeric, e.DataType)
	assert.True(t, e.Fixed())
	assert.True(t, e.DigitalLinkKey)
}

func TestBuildEntryVariable(t *testing.T) {
	e, err := buildEntry("10", "BATCH/LOT", "X..20", false, []string{"01"}, nil, false, -1)
	require.NoError(t, err)

	assert.Equal(t, 0, e.FixedLength)
	assert.Equal(t, 1, e.MinLength)
	assert.Equal(t, 20, e.MaxLength)
	assert.True(t, e.SeparatorRequired)
	assert.False(t, e.Fixed())
	assert.Equal(t, Alphanumeric, e.DataType)
	assert.Equal(t, []string{"01"}, e.RequiredAIs)
}

func TestBuildEntryMultiComponent(t *testing.T) {
	e, err := buildEntry("253", "GDTI", "N13,csum,key X..17", false, nil, nil, true, -1)
	require.NoError(t, err)

	require.Len(t, e.Components, 2)
	assert.Equal(t, 14, e.MinLength)
	assert.Equal(t, 30, e.MaxLength)
	assert.True(t, e.CheckDigit)
}

func TestBuildEntryDateLinters(t *testing.T) {
	tests := []struct {
		spec string
		want DateFormat
	}{
		{"N6,yymmdd", DateYYMMDD},
		{"N6,yymmd0", DateYYMMD0},
		{"N8,yyyymmdd", DateYYYYMMDD},
		{"N8,yymmddhh", DateYYMMDDHH},
		{"N6", DateNone},
	}
	for _, tt := range tests {
		e, err := buildEntry("17", "EXPIRY", tt.spec, true, nil, nil, false, -1)
		require.NoError(t, err, tt.spec)
		assert.Equal(t, tt.want, e.DateFormat, tt.spec)
	}
}

func TestBuildEntryEmptySpec(t *testing.T) {
	_, err := buildEntry("99", "INTERNAL", "", false, nil, nil, false, -1)
	assert.Error(t, err)
}
