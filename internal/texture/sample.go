package texture

import "wallcaster/internal/media"

// Sample reads the image at the given UV. Coordinates wrap via true modulo,
// so negative values fold back into [0,1). With filtering enabled the four
// surrounding texels are blended bilinearly using integer 0-255 weights.
func Sample(img *media.Image, u, v float64, useFiltering bool) media.Color {
	u -= float64(int64(u))
	v -= float64(int64(v))
	if u < 0 {
		u += 1
	}
	if v < 0 {
		v += 1
	}

	tx := float64(img.Width) * u
	ty := float64(img.Height) * v
	txi := int(tx)
	tyi := int(ty)

	if !useFiltering {
		return texelRepeated(img, txi, tyi)
	}

	pa := texelRepeated(img, txi, tyi)
	pb := texelRepeated(img, txi+1, tyi)
	pc := texelRepeated(img, txi, tyi+1)
	pd := texelRepeated(img, txi+1, tyi+1)

	w1 := int(255 * (tx - float64(txi)))
	w2 := 255 - w1
	abR := int(pb.R)*w1 + int(pa.R)*w2
	abG := int(pb.G)*w1 + int(pa.G)*w2
	abB := int(pb.B)*w1 + int(pa.B)*w2
	cdR := int(pd.R)*w1 + int(pc.R)*w2
	cdG := int(pd.G)*w1 + int(pc.G)*w2
	cdB := int(pd.B)*w1 + int(pc.B)*w2

	w3 := int(255 * (ty - float64(tyi)))
	w4 := 255 - w3
	return media.Color{
		R: uint8((cdR*w3 + abR*w4) / (255 * 255)),
		G: uint8((cdG*w3 + abG*w4) / (255 * 255)),
		B: uint8((cdB*w3 + abB*w4) / (255 * 255)),
		A: 255,
	}
}

// texelRepeated fetches a texel with per-axis integer wraparound.
func texelRepeated(img *media.Image, x, y int) media.Color {
	return img.At(x%img.Width, y%img.Height)
}
