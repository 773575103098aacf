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

// SpriteState is the serializable form of one hardware sprite's DMA and
// shift-register state, exported so the snapshot package can encode it
// without reaching into the unexported sprite type directly.
type SpriteState struct {
	Pointer uint8
	Data    [3]uint8
	Shift   uint32

	McFlipFlop bool
	Expanded   bool

	DMAActive    bool
	DisplayingMC bool

	XCounter int
	Crunched bool
}

// State is the complete serializable state of a VIC-II instance: every
// memory-mapped register plus the internal raster, sprite and light pen
// state a bare register dump doesn't capture.
type State struct {
	SpriteX [8]uint8
	SpriteY [8]uint8
	MsbX    uint8

	Ctrl1         uint8
	Ctrl2         uint8
	RasterCompare uint8

	LightpenX, LightpenY uint8

	SpriteEnable     uint8
	SpriteYExpand    uint8
	SpriteXExpand    uint8
	SpritePriority   uint8
	SpriteMulticolor uint8

	SpriteSpriteCollision     uint8
	SpriteBackgroundCollision uint8

	IRQStatus uint8
	IRQEnable uint8

	MemoryPointers uint8

	BorderColor       uint8
	BackgroundColor   [4]uint8
	SpriteMulticolor0 uint8
	SpriteMulticolor1 uint8
	SpriteColor       [8]uint8

	RasterLine     uint16
	RasterCycle    int
	VC, VCBase     uint16
	RC             uint8
	BadLine        bool
	DisplayActive  bool
	VerticalBorder bool
	FrameCount     uint64

	Sprites [spriteCount]SpriteState

	LightPenTriggered   bool
	DenLatchedOnRow0x30 bool
}

// Snapshot captures the chip's complete internal state.
func (v *VIC) Snapshot() State {
	var s State
	s.SpriteX = v.reg.spriteX
	s.SpriteY = v.reg.spriteY
	s.MsbX = v.reg.msbX
	s.Ctrl1 = v.reg.ctrl1
	s.Ctrl2 = v.reg.ctrl2
	s.RasterCompare = v.reg.rasterCompare
	s.LightpenX = v.reg.lightpenX
	s.LightpenY = v.reg.lightpenY
	s.SpriteEnable = v.reg.spriteEnable
	s.SpriteYExpand = v.reg.spriteYExpand
	s.SpriteXExpand = v.reg.spriteXExpand
	s.SpritePriority = v.reg.spritePriority
	s.SpriteMulticolor = v.reg.spriteMulticolor
	s.SpriteSpriteCollision = v.reg.spriteSpriteCollision
	s.SpriteBackgroundCollision = v.reg.spriteBackgroundCollision
	s.IRQStatus = v.reg.irqStatus
	s.IRQEnable = v.reg.irqEnable
	s.MemoryPointers = v.reg.memoryPointers
	s.BorderColor = v.reg.borderColor
	s.BackgroundColor = v.reg.backgroundColor
	s.SpriteMulticolor0 = v.reg.spriteMulticolor0
	s.SpriteMulticolor1 = v.reg.spriteMulticolor1
	s.SpriteColor = v.reg.spriteColor

	s.RasterLine = v.raster.line
	s.RasterCycle = v.raster.cycle
	s.VC = v.raster.vc
	s.VCBase = v.raster.vcbase
	s.RC = v.raster.rc
	s.BadLine = v.raster.badLine
	s.DisplayActive = v.raster.displayActive
	s.VerticalBorder = v.raster.verticalBorder
	s.FrameCount = v.raster.frameCount

	for i := range v.sprites {
		sp := &v.sprites[i]
		s.Sprites[i] = SpriteState{
			Pointer:      sp.pointer,
			Data:         sp.data,
			Shift:        sp.shift,
			McFlipFlop:   sp.mcFlipFlop,
			Expanded:     sp.expanded,
			DMAActive:    sp.dmaActive,
			DisplayingMC: sp.displayingMC,
			XCounter:     sp.xCounter,
			Crunched:     sp.crunched,
		}
	}

	s.LightPenTriggered = v.lp.triggered
	s.DenLatchedOnRow0x30 = v.denLatchedOnRow0x30

	return s
}

// Restore replaces the chip's internal state with a previously captured
// Snapshot. The memory bus, frame buffer and IRQ callback are left as
// they are - those are wiring concerns for the caller to have already
// re-established, not part of the chip's own state.
func (v *VIC) Restore(s State) {
	v.reg = registers{
		spriteX:                   s.SpriteX,
		spriteY:                   s.SpriteY,
		msbX:                      s.MsbX,
		ctrl1:                     s.Ctrl1,
		ctrl2:                     s.Ctrl2,
		rasterCompare:             s.RasterCompare,
		lightpenX:                 s.LightpenX,
		lightpenY:                 s.LightpenY,
		spriteEnable:              s.SpriteEnable,
		spriteYExpand:             s.SpriteYExpand,
		spriteXExpand:             s.SpriteXExpand,
		spritePriority:            s.SpritePriority,
		spriteMulticolor:          s.SpriteMulticolor,
		spriteSpriteCollision:     s.SpriteSpriteCollision,
		spriteBackgroundCollision: s.SpriteBackgroundCollision,
		irqStatus:                 s.IRQStatus,
		irqEnable:                 s.IRQEnable,
		memoryPointers:            s.MemoryPointers,
		borderColor:               s.BorderColor,
		backgroundColor:           s.BackgroundColor,
		spriteMulticolor0:         s.SpriteMulticolor0,
		spriteMulticolor1:         s.SpriteMulticolor1,
		spriteColor:               s.SpriteColor,
	}

	v.raster = raster{
		line:           s.RasterLine,
		cycle:          s.RasterCycle,
		vc:             s.VC,
		vcbase:         s.VCBase,
		rc:             s.RC,
		badLine:        s.BadLine,
		displayActive:  s.DisplayActive,
		verticalBorder: s.VerticalBorder,
		frameCount:     s.FrameCount,
	}

	for i := range s.Sprites {
		sp := s.Sprites[i]
		v.sprites[i] = sprite{
			pointer:      sp.Pointer,
			data:         sp.Data,
			shift:        sp.Shift,
			mcFlipFlop:   sp.McFlipFlop,
			expanded:     sp.Expanded,
			dmaActive:    sp.DMAActive,
			displayingMC: sp.DisplayingMC,
			xCounter:     sp.XCounter,
			crunched:     sp.Crunched,
		}
	}

	v.lp = lightpen{triggered: s.LightPenTriggered}
	v.denLatchedOnRow0x30 = s.DenLatchedOnRow0x30
}
