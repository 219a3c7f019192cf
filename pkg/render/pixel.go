package render

import "github.com/philipparndt/rtweekend/pkg/geometry"

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	return max(lo, min(hi, x))
}

// ChannelToByte clamps a channel to [0,1] and scales it to [0,255],
// truncating toward zero.
func ChannelToByte(c float64) uint8 {
	return uint8(Clamp(c, 0, 1) * 255.0)
}

// ColorToBytes converts a color to three byte channels
func ColorToBytes(c geometry.Color3) (r, g, b uint8) {
	return ChannelToByte(c.X()), ChannelToByte(c.Y()), ChannelToByte(c.Z())
}

// PackRGB8 packs byte channels as 0x00RRGGBB
func PackRGB8(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB8 is the inverse of PackRGB8; the top byte is ignored
func UnpackRGB8(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// PackColor converts a color to a packed 0x00RRGGBB pixel
func PackColor(c geometry.Color3) uint32 {
	return PackRGB8(ColorToBytes(c))
}
