// Package config centralizes the tunable session parameters.
package config

import "time"

// Rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// FlashDuration is how long cleared rows stay highlighted.
const FlashDuration = 300 * time.Millisecond

// Inactivity
const (
	InactivityWarnUser       = 90 * time.Second
	InactivityDisconnectUser = 120 * time.Second
)

// Terminal requirements. The layout needs the well, the side panel and a
// footer line.
const (
	MinTermWidth  = 34
	MinTermHeight = 23
)

const MaxUsernameLength = 16
