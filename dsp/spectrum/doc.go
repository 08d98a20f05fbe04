// Package spectrum estimates power spectral densities of biosignal
// windows via Welch's method and derives spectral summary measures
// such as the median frequency.
package spectrum
