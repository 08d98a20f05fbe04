// Package emg computes windowed time-domain statistics of surface EMG
// channels: the amplitude and complexity measures used as inputs to
// feature engineering.
package emg

import "math"

// Stats holds the time-domain features of one EMG channel window.
type Stats struct {
	Length         int
	RMS            float64 // root mean square
	MAV            float64 // mean absolute value
	IEMG           float64 // integrated EMG, sum of absolute values
	WaveformLength float64 // sum of absolute first differences
	ZeroCrossings  int     // sign changes between consecutive samples
}

// Calculate computes all statistics in a single pass.
//
// A zero sample carries no sign, so a signal held at zero does not
// count as crossing: the crossing test is sign(x[i]) != sign(x[i+1])
// over nonzero pairs.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		sumSq  float64
		sumAbs float64
		wl     float64
		zc     int
	)

	prev := signal[0]
	prevSign := sign(prev)
	sumSq = prev * prev
	sumAbs = math.Abs(prev)

	for _, x := range signal[1:] {
		sumSq += x * x
		sumAbs += math.Abs(x)
		wl += math.Abs(x - prev)

		s := sign(x)
		if s != 0 && prevSign != 0 && s != prevSign {
			zc++
		}
		if s != 0 {
			prevSign = s
		}

		prev = x
	}

	return Stats{
		Length:         n,
		RMS:            math.Sqrt(sumSq / float64(n)),
		MAV:            sumAbs / float64(n),
		IEMG:           sumAbs,
		WaveformLength: wl,
		ZeroCrossings:  zc,
	}
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
