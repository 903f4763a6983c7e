package spritegen

import "fmt"

// Base geometry of the figure inside a 32x32 tile, y growing down. The feet
// rest two pixels above the tile bottom so the bob never clips.
const (
	headX, headY, headW, headH     = 11, 5, 10, 9
	torsoX, torsoY, torsoW, torsoH = 11, 14, 10, 7
	legW, legH                     = 3, 6
	leftLegX, rightLegX            = 12, 17
	legY                           = 21
	shoeH                          = 2
	armW, armH                     = 3, 6
	armY                           = 15
	eyeW, eyeH                     = 2, 2
	eyeY                           = 9
)

// mirrorX flips an x coordinate across the tile's vertical center line.
func mirrorX(x, w int) int {
	return FrameWidth - x - w
}

// FrameCommands computes the back-to-front draw list for one grid cell:
// legs, torso, arm (side views only), head, then face and hair. Identical
// inputs always yield an identical list.
func FrameCommands(a Action, d Direction, frame int, p Palette) []DrawCommand {
	if d < 0 || d >= DirectionCount {
		panic(fmt.Sprintf("spritegen: invalid direction %d", int(d)))
	}
	checkFrame(a, frame)
	bob := VerticalOffset(a, frame)
	legs := LegOffsets(a, frame)

	cmds := make([]DrawCommand, 0, 12)

	// Legs and shoes move with the gait; the rest of the body bobs.
	lx := leftLegX + roundInt(legs.LeftX)
	ly := legY + roundInt(legs.LeftY)
	rx := rightLegX + roundInt(legs.RightX)
	ry := legY + roundInt(legs.RightY)
	cmds = append(cmds,
		rect(lx, ly, legW, legH, p.Pants),
		rect(lx, ly+legH, legW, shoeH, p.Shoes),
		rect(rx, ry, legW, legH, p.Pants),
		rect(rx, ry+legH, legW, shoeH, p.Shoes),
	)

	cmds = append(cmds, rect(torsoX, torsoY+bob, torsoW, torsoH, p.Shirt))

	// Front and back views never draw arms (occluded by the torso).
	switch d {
	case DirRight:
		swing := ArmSwing(a, frame)
		ax := torsoX + torsoW - 2 + swing
		cmds = append(cmds,
			rect(ax, armY+bob, armW, armH-2, p.Sleeve),
			rect(ax, armY+bob+armH-2, armW, 2, p.Skin),
		)
	case DirLeft:
		swing := -ArmSwing(a, frame)
		ax := mirrorX(torsoX+torsoW-2, armW) + swing
		cmds = append(cmds,
			rect(ax, armY+bob, armW, armH-2, p.Sleeve),
			rect(ax, armY+bob+armH-2, armW, 2, p.Skin),
		)
	}

	cmds = append(cmds, rect(headX, headY+bob, headW, headH, p.Skin))

	cmds = append(cmds, faceCommands(d, bob, p)...)
	return cmds
}

// faceCommands draws the view-dependent face and hair. The back view shows
// hair over the whole head and no face; the front view gets both eyes and a
// fringe; side views get one eye and side-parted hair.
func faceCommands(d Direction, bob int, p Palette) []DrawCommand {
	switch d {
	case DirUp:
		return []DrawCommand{
			rect(headX, headY+bob, headW, headH-1, p.Hair),
		}
	case DirDown:
		return []DrawCommand{
			rect(headX, headY+bob, headW, 3, p.Hair),
			rect(13, eyeY+bob, eyeW, eyeH, p.Eyes),
			rect(17, eyeY+bob, eyeW, eyeH, p.Eyes),
		}
	case DirRight:
		return []DrawCommand{
			rect(headX, headY+bob, headW, 3, p.Hair),
			rect(headX, headY+bob+3, 3, 5, p.Hair), // parted toward the back of the head
			rect(18, eyeY+bob, eyeW, eyeH, p.Eyes),
		}
	case DirLeft:
		return []DrawCommand{
			rect(headX, headY+bob, headW, 3, p.Hair),
			rect(mirrorX(headX, 3), headY+bob+3, 3, 5, p.Hair),
			rect(mirrorX(18, eyeW), eyeY+bob, eyeW, eyeH, p.Eyes),
		}
	}
	panic(fmt.Sprintf("spritegen: invalid direction %d", int(d)))
}
