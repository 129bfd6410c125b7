// SPDX-License-Identifier: EPL-2.0

// Package aiff adapts github.com/go-audio/aiff to the deckmix Source
// interface. Container handling is delegated entirely to go-audio;
// only 16-bit PCM files are accepted.
package aiff
