package chartjs

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCanvas struct {
	id     string
	spec   []byte
	draws  int
	clears int
}

func (c *fakeCanvas) ID() string { return c.id }

func (c *fakeCanvas) Draw(spec []byte) error {
	if c.spec != nil {
		return errors.New("busy")
	}
	c.spec = spec
	c.draws++
	return nil
}

func (c *fakeCanvas) Clear() {
	c.spec = nil
	c.clears++
}

func TestNewAndDestroy(t *testing.T) {
	canvas := &fakeCanvas{id: "tsRidesChart"}

	chart, err := New(canvas, Config{Type: TypeLine})
	require.NoError(t, err)
	assert.Equal(t, "tsRidesChart", chart.MountID())
	assert.NotNil(t, canvas.spec)

	_, err = New(canvas, Config{Type: TypeLine})
	require.Error(t, err, "canvas still bound")

	chart.Destroy()
	chart.Destroy()
	assert.True(t, chart.Destroyed())
	assert.Equal(t, 1, canvas.clears)

	_, err = New(canvas, Config{Type: TypeBar})
	require.NoError(t, err)
	assert.Equal(t, 2, canvas.draws)
}

func TestNewNilCanvas(t *testing.T) {
	_, err := New(nil, Config{})
	require.Error(t, err)
}

func TestConfigMarshal(t *testing.T) {
	one := 1.0
	cfg := Config{
		Type: TypeBar,
		Data: Data{
			Labels: []string{"0h", "4h"},
			Datasets: []Dataset{{
				Data:            []*float64{&one, nil},
				BackgroundColor: Colors{"#c0392b", "#f1c40f"},
				BorderColor:     Color("#ffffff"),
			}},
		},
		Options: Options{
			Scales: &Scales{YAxes: []Axis{{Ticks: Ticks{Precision: Int(0)}}}},
		},
	}

	raw, err := cfg.Marshal()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	ds := got["data"].(map[string]any)["datasets"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{1.0, nil}, ds["data"])
	assert.Equal(t, []any{"#c0392b", "#f1c40f"}, ds["backgroundColor"])
	assert.Equal(t, "#ffffff", ds["borderColor"])

	ticks := got["options"].(map[string]any)["scales"].(map[string]any)["yAxes"].([]any)[0].(map[string]any)["ticks"].(map[string]any)
	assert.Equal(t, 0.0, ticks["precision"], "explicit zero survives omitempty")
}

func TestValues(t *testing.T) {
	v := Values(1, 2.5)
	require.Len(t, v, 2)
	assert.Equal(t, 2.5, *v[1])
}

func TestColorsRoundTrip(t *testing.T) {
	for _, in := range []Colors{Color("#fff"), {"#a", "#b"}} {
		raw, err := json.Marshal(in)
		require.NoError(t, err)

		var out Colors
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, in, out)
	}
}
