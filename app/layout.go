package app

import (
	"github.com/lixenwraith/termpaint/constants"
	"github.com/lixenwraith/termpaint/geom"
)

// Screen layout, resolved against the terminal on every draw
//
//	+------------------------------+-------+
//	| canvas frame                 | panel |
//	+------------------------------+-------+
//	| status                               |
var (
	canvasFrame = geom.NewArea(
		geom.NewPoint(0, 0, geom.TopLeft),
		geom.NewPoint(constants.PanelWidth, 1, geom.BottomRight),
	)
	panelArea = geom.NewArea(
		geom.NewPoint(constants.PanelWidth-1, 0, geom.TopRight),
		geom.NewPoint(0, 1, geom.BottomRight),
	)
	statusArea = geom.NewArea(
		geom.NewPoint(0, 0, geom.BottomLeft),
		geom.NewPoint(0, 0, geom.BottomRight),
	)
)
