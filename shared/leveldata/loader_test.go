package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roomTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="15" tilewidth="16" tileheight="16" infinite="0" nextlayerid="7" nextobjectid="9">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="320" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="Player">
  <object id="2" x="160" y="200">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Goblins">
  <object id="3" x="48" y="48">
   <point/>
  </object>
  <object id="4" x="272" y="64">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Chests">
  <object id="5" x="64" y="192">
   <properties>
    <property name="cost" type="int" value="2"/>
    <property name="upgrade" value="golden_aegis"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Portal">
  <object id="6" x="160" y="32">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="6" name="Notes">
  <object id="7" x="1" y="1"/>
 </objectgroup>
</map>
`

const emptyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Walls"/>
</map>
`

func TestLoadFlipsToYUp(t *testing.T) {
	fsys := fstest.MapFS{"levels/room.tmx": {Data: []byte(roomTMX)}}

	level, err := Load(fsys, "levels/room.tmx")
	require.NoError(t, err)

	assert.Equal(t, "room", level.Name)
	assert.Equal(t, 320.0, level.Width)
	assert.Equal(t, 240.0, level.Height)

	require.Len(t, level.Walls, 1)
	assert.Equal(t, Rect{X: 160, Y: 232, W: 320, H: 16}, level.Walls[0])

	assert.Equal(t, Point{X: 160, Y: 40}, level.Player)
	assert.Equal(t, []Point{{X: 48, Y: 192}, {X: 272, Y: 176}}, level.Goblins)

	require.Len(t, level.Chests, 1)
	assert.Equal(t, Point{X: 64, Y: 48}, level.Chests[0].Point)
	assert.Equal(t, 2, level.Chests[0].Cost)
	assert.Equal(t, "golden_aegis", level.Chests[0].Upgrade)

	require.NotNil(t, level.Portal)
	assert.Equal(t, Point{X: 160, Y: 208}, *level.Portal)
}

func TestLoadRequiresPlayer(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(emptyTMX)}}
	_, err := Load(fsys, "empty.tmx")
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)
}

func TestLoadAllLevelsSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/02-hall.tmx": {Data: []byte(roomTMX)},
		"levels/01-room.tmx": {Data: []byte(roomTMX)},
		"levels/readme.txt":  {Data: []byte("not a level")},
	}
	levels, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "01-room", levels[0].Name)
	assert.Equal(t, "02-hall", levels[1].Name)

	_, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

func TestDefaultLevel(t *testing.T) {
	level := DefaultLevel()
	assert.NotEmpty(t, level.Walls)
	assert.Len(t, level.Goblins, 2)
	assert.Len(t, level.Chests, 2)
	require.NotNil(t, level.Portal)
	assert.Less(t, level.Player.Y, level.Portal.Y)
}
