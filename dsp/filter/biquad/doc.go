// Package biquad implements second-order IIR filter sections and
// cascades in Direct Form II Transposed.
package biquad
