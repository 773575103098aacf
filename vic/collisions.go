// This file is part of c64core.
//
// c64core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// c64core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with c64core.  If not, see <https://www.gnu.org/licenses/>.

package vic

// collisionTracker accumulates, for a single raster line's worth of
// pixels, which sprites and which background layer touched each pixel
// column, so a whole-line's collisions can be latched at once rather
// than compared pixel-by-pixel against every other sprite - mirroring
// the real chip's per-pixel comparator array without needing 8x8
// nested loops for every dot clock.
type collisionTracker struct {
	spriteAt     [spriteCount]bool // did sprite i draw a non-transparent pixel at the current column
	backgroundAt bool              // did the background/foreground layer draw here
}

// observeCollisions records one pixel column's sprite and background occupancy
// and raises the sprite-sprite and sprite-background collision latches
// per the real chip's behaviour: any two sprites occupying the same
// pixel column set both sprites' bits in $D01E, and any sprite
// occupying a column where the background's foreground colour (not the
// border or plain background colour) is also drawn sets that sprite's
// bit in $D01F. Both registers latch until read.
func (v *VIC) observeCollisions(spritePixel [spriteCount]bool, backgroundForeground bool) {
	var hit uint8
	for i := 0; i < spriteCount; i++ {
		if !spritePixel[i] {
			continue
		}
		for j := i + 1; j < spriteCount; j++ {
			if spritePixel[j] {
				hit |= 1 << i
				hit |= 1 << j
			}
		}
		if backgroundForeground {
			v.reg.spriteBackgroundCollision |= 1 << i
		}
	}
	if hit != 0 {
		v.reg.spriteSpriteCollision |= hit
		if v.reg.irqEnable&irqSpriteSprite != 0 {
			v.reg.irqStatus |= irqSpriteSprite
		}
	}
	if v.reg.spriteBackgroundCollision != 0 && v.reg.irqEnable&irqSpriteBG != 0 {
		v.reg.irqStatus |= irqSpriteBG
	}
}
