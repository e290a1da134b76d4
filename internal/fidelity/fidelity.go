// Package fidelity measures how far a stego image drifts from its cover image.
package fidelity

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrBoundsMismatch = errors.New("images have different bounds")
)

// Report summarizes the per-channel error between two images over red, green and blue.
type Report struct {
	// MSE over all color channels.
	MSE float64
	// PSNR in dB against a peak of 255. +Inf for identical images.
	PSNR float64
	// ChannelMSE holds the red, green and blue MSE.
	ChannelMSE [3]float64
	// MaxDiff is the largest absolute difference of a single channel value.
	MaxDiff float64
	// Changed is the number of channel values that differ.
	Changed int
	// LumaPSNR is the PSNR of the BT.601 luma plane, closer to what the eye notices.
	LumaPSNR float64
}

// BT.601 luma weights
const (
	yr = 0.299
	yg = 0.587
	yb = 0.114
)

// Compare computes a Report for b against the reference a.
func Compare(a, b image.Image) (Report, error) {
	var r Report
	ra, rb := a.Bounds(), b.Bounds()
	if ra.Dx() != rb.Dx() || ra.Dy() != rb.Dy() {
		return r, fmt.Errorf("%w: %v vs %v", ErrBoundsMismatch, ra, rb)
	}
	area := ra.Dx() * ra.Dy()
	if area == 0 {
		r.PSNR = math.Inf(1)
		return r, nil
	}

	var (
		ref  = [3][]float64{make([]float64, area), make([]float64, area), make([]float64, area)}
		dist = [3][]float64{make([]float64, area), make([]float64, area), make([]float64, area)}
		idx  = 0
	)
	for y := range ra.Dy() {
		for x := range ra.Dx() {
			ca := color.NRGBAModel.Convert(a.At(ra.Min.X+x, ra.Min.Y+y)).(color.NRGBA)
			cb := color.NRGBAModel.Convert(b.At(rb.Min.X+x, rb.Min.Y+y)).(color.NRGBA)
			ref[0][idx], ref[1][idx], ref[2][idx] = float64(ca.R), float64(ca.G), float64(ca.B)
			dist[0][idx], dist[1][idx], dist[2][idx] = float64(cb.R), float64(cb.G), float64(cb.B)
			idx++
		}
	}

	sq := make([]float64, area)
	for c := range 3 {
		diff := make([]float64, area)
		floats.SubTo(diff, dist[c], ref[c])
		for i, d := range diff {
			if d != 0 {
				r.Changed++
			}
			sq[i] = d * d
			if ad := math.Abs(d); ad > r.MaxDiff {
				r.MaxDiff = ad
			}
		}
		r.ChannelMSE[c] = stat.Mean(sq, nil)
	}
	r.MSE = floats.Sum(r.ChannelMSE[:]) / 3
	r.PSNR = PSNR(r.MSE)

	lumaRef, lumaDist := make([]float64, area), make([]float64, area)
	for _, p := range []struct {
		dst []float64
		rgb [3][]float64
	}{{lumaRef, ref}, {lumaDist, dist}} {
		floats.AddScaled(p.dst, yr, p.rgb[0])
		floats.AddScaled(p.dst, yg, p.rgb[1])
		floats.AddScaled(p.dst, yb, p.rgb[2])
	}
	d := floats.Distance(lumaRef, lumaDist, 2)
	r.LumaPSNR = PSNR(d * d / float64(area))
	return r, nil
}

// PSNR converts a mean squared error over 8-bit values to decibels.
func PSNR(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(255*255/mse)
}
