// SPDX-License-Identifier: EPL-2.0

// Package wavtest builds WAV byte streams for tests: canonical files,
// deliberately broken ones, and files produced by the go-audio encoder.
package wavtest
