package emg_test

import (
	"fmt"

	"github.com/injsense/biosig/stats/emg"
)

func ExampleCalculate() {
	s := emg.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f zc=%d wl=%.1f\n", s.RMS, s.ZeroCrossings, s.WaveformLength)

	// Output:
	// rms=1.0 zc=3 wl=6.0
}
