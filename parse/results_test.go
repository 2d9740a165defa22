package parse

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/MeKo-Tech/gs1parse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	res := Parse(testutil.PharmaLabel())
	out, err := ToJSON(&res)
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, res.Raw, decoded.Raw)
	assert.Len(t, decoded.Elements, len(res.Elements))
	assert.InDelta(t, res.Confidence, decoded.Confidence, 1e-9)
}

func TestToPlainText(t *testing.T) {
	res := Parse(testutil.PharmaLabel())
	out, err := ToPlainText(&res)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "(01)")
	assert.Contains(t, lines[1], "(17)270630")
	assert.Contains(t, lines[4], "confidence:")
}

func TestToCSV(t *testing.T) {
	res := Parse(testutil.PharmaLabel())
	out, err := ToCSV(&res)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "ai,name,raw_value,value,valid,start,end", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "01,GTIN,"))
}

func TestSerializersRejectNil(t *testing.T) {
	if _, err := ToJSON(nil); err == nil {
		t.Error("ToJSON accepted nil")
	}
	if _, err := ToPlainText(nil); err == nil {
		t.Error("ToPlainText accepted nil")
	}
	if _, err := ToCSV(nil); err == nil {
		t.Error("ToCSV accepted nil")
	}
}
