package codec

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-shadow-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type thermostat struct {
	Mode   string `json:"mode"`
	Target int64  `json:"target,omitempty"`
}

func TestJSON_DecodeMalformed(t *testing.T) {
	c := NewJSON[thermostat]()

	_, err := c.Decode([]byte(`{"mode":`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = c.Decode([]byte(`{"mode": 5}`))
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestJSON_IgnoresUnknownFields(t *testing.T) {
	c := NewJSON[thermostat]()

	got, err := c.Decode([]byte(`{"mode":"on","$version":3}`))
	require.NoError(t, err)
	assert.Equal(t, thermostat{Mode: "on"}, got)
}

func TestParseDocument_KeepsNumbers(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"big": 9007199254740993}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("9007199254740993"), doc["big"])
}

func TestParseDocument_NotAnObject(t *testing.T) {
	_, err := ParseDocument([]byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDocumentRoundTrip(t *testing.T) {
	c := NewJSON[thermostat]()

	doc, err := ToDocument[thermostat](c, thermostat{Mode: "heat", Target: 21})
	require.NoError(t, err)
	assert.Equal(t, models.Document{"mode": "heat", "target": json.Number("21")}, doc)

	back, err := FromDocument[thermostat](c, doc)
	require.NoError(t, err)
	assert.Equal(t, thermostat{Mode: "heat", Target: 21}, back)
}

func TestSection(t *testing.T) {
	doc := models.Document{"desired": map[string]any{"mode": "on"}, "reported": "nope"}

	desired, ok := Section(doc, models.SectionDesired)
	require.True(t, ok)
	assert.Equal(t, "on", desired["mode"])

	_, ok = Section(doc, models.SectionReported)
	assert.False(t, ok)

	_, ok = Section(doc, "missing")
	assert.False(t, ok)
}
