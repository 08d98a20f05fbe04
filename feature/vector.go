package feature

import (
	"fmt"
	"math"

	"github.com/injsense/biosig/dsp/core"
	"github.com/injsense/biosig/stats/emg"
)

// Vector is an ordered sequence of named scalar features. Order
// matters: downstream consumers are positional.
type Vector struct {
	Names  []string
	Values []float64
}

// Len returns the feature count.
func (v Vector) Len() int {
	return len(v.Values)
}

// Extract computes the low-level window feature vector from one
// acquisition interval: for each EMG channel in channel order the
// five features [RMS, MAV, IEMG, WL, ZC], then the heart-rate
// aggregates [mean, population std, delta last-first], then the
// temperature aggregates [mean, rate last-first].
//
// Every channel must have at least two samples; degenerate windows
// fail with ErrInsufficientSamples rather than emitting NaN.
func Extract(emgWindow *SignalWindow, hr, temp []float64) (Vector, error) {
	if err := emgWindow.Validate(); err != nil {
		return Vector{}, err
	}

	if emgWindow.Len() < 2 {
		return Vector{}, fmt.Errorf("%w: emg window has %d samples", ErrInsufficientSamples, emgWindow.Len())
	}
	if len(hr) < 2 {
		return Vector{}, fmt.Errorf("%w: heart-rate window has %d samples", ErrInsufficientSamples, len(hr))
	}
	if len(temp) < 2 {
		return Vector{}, fmt.Errorf("%w: temperature window has %d samples", ErrInsufficientSamples, len(temp))
	}
	if !core.AllFinite(hr) {
		return Vector{}, fmt.Errorf("%w: non-finite heart-rate sample", ErrInvalidWindow)
	}
	if !core.AllFinite(temp) {
		return Vector{}, fmt.Errorf("%w: non-finite temperature sample", ErrInvalidWindow)
	}

	channels := emgWindow.Channels()
	names := make([]string, 0, 5*channels+5)
	values := make([]float64, 0, 5*channels+5)

	for c := 0; c < channels; c++ {
		s := emg.Calculate(emgWindow.Channel(c))

		names = append(names,
			fmt.Sprintf("emg%d_rms", c),
			fmt.Sprintf("emg%d_mav", c),
			fmt.Sprintf("emg%d_iemg", c),
			fmt.Sprintf("emg%d_wl", c),
			fmt.Sprintf("emg%d_zc", c),
		)
		values = append(values, s.RMS, s.MAV, s.IEMG, s.WaveformLength, float64(s.ZeroCrossings))
	}

	hrMean, hrStd := meanStd(hr)
	names = append(names, "hr_mean", "hr_std", "hr_delta")
	values = append(values, hrMean, hrStd, hr[len(hr)-1]-hr[0])

	tMean, _ := meanStd(temp)
	names = append(names, "temp_mean", "temp_rate")
	values = append(values, tMean, temp[len(temp)-1]-temp[0])

	return Vector{Names: names, Values: values}, nil
}

// meanStd returns the mean and population standard deviation.
func meanStd(data []float64) (mean, std float64) {
	n := float64(len(data))

	for _, v := range data {
		mean += v
	}
	mean /= n

	varSum := 0.0
	for _, v := range data {
		d := v - mean
		varSum += d * d
	}

	return mean, math.Sqrt(varSum / n)
}
