// SPDX-License-Identifier: EPL-2.0

package utils

// PCMToFloat32 scales a signed integer PCM sample of the given bit depth to
// [-1, 1]. 8-bit samples are unsigned (centred on 128) as in WAV files.
// Unknown depths are treated as 16-bit.
func PCMToFloat32(v, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32(v-128) / 128
	case 24:
		return float32(v) / (1 << 23)
	case 32:
		return float32(float64(v) / (1 << 31))
	}
	return float32(v) / (1 << 15)
}

// Float32ToPCM converts a sample in [-1, 1] to a signed PCM integer of the
// given bit depth, clamping out of range input. The positive peak is
// 2^(depth-1)-1 so full scale never overflows.
func Float32ToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	var peak float64
	switch bitDepth {
	case 8:
		return int(float64(x)*127) + 128
	case 24:
		peak = 1<<23 - 1
	case 32:
		peak = 1<<31 - 1
	default:
		peak = 1<<15 - 1
	}
	return int(float64(x) * peak)
}

// Float32ToInt16 is Float32ToPCM for 16-bit output.
func Float32ToInt16(x float32) int16 {
	return int16(Float32ToPCM(x, 16))
}
