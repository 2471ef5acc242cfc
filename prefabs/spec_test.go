package prefabs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAllEmbeddedSpecs(t *testing.T) {
	specs, err := LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 1.6, specs.Player.EyeHeight)
	assert.Equal(t, 0.5, specs.Coin.CaptureRadius)
	assert.Equal(t, 2.0, specs.Wall.Height)
	assert.Equal(t, 100.0, specs.Floor.Width)
	assert.Equal(t, 75.0, specs.Camera.FOV)
	assert.Equal(t, 5, specs.Game.CoinCount)
	assert.Equal(t, 0.1, specs.Game.WallNudge)
}

func TestLoadSpecMissing(t *testing.T) {
	_, err := LoadSpec[CoinSpec]("missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefabs: load missing.yaml")
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"status.tengo", "scripts/status.tengo", "prefabs/scripts/status.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "message")
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#FFD700", color.RGBA{R: 0xff, G: 0xd7, A: 0xff}, false},
		{"0x87CEEB", color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}, false},
		{"228B2280", color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0x80}, false},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHexColor(c.in)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	def := color.RGBA{R: 1, A: 0xff}
	assert.Equal(t, def, ColorOr("", def))
	assert.Equal(t, def, ColorOr("nope", def))
}

func TestClassify(t *testing.T) {
	kind, ok := classify("prefabs/player.YAML")
	assert.True(t, ok)
	assert.Equal(t, ChangeSpec, kind)

	kind, ok = classify("prefabs/scripts/status.tengo")
	assert.True(t, ok)
	assert.Equal(t, ChangeScript, kind)

	_, ok = classify("prefabs/notes.txt")
	assert.False(t, ok)
}

func TestNamesListsEmbeddedSpecs(t *testing.T) {
	assert.Equal(t, []string{"camera.yaml", "coin.yaml", "floor.yaml", "game.yaml", "player.yaml", "wall.yaml"}, Names())
}
