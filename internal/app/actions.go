package app

import (
	"github.com/leg100/imbinder/internal/binder"
	"github.com/leg100/imbinder/internal/key"
	"github.com/leg100/imbinder/internal/logging"
)

// demoActions returns the actions registered by the application. Their
// callbacks log each time they're triggered.
func demoActions(logger logging.Interface) []binder.Action {
	return []binder.Action{
		{
			Name:      "Example Up Arrow",
			Key:       key.UpArrow,
			OnPress:   func() { logger.Info("Example Up Arrow press callback") },
			OnRelease: func() { logger.Info("Example Up Arrow release callback") },
		},
		{
			Name:    "Test A key press",
			Key:     key.A,
			OnPress: func() { logger.Info("A key pressed!") },
		},
		{
			Name:      "Test B key release",
			Key:       key.B,
			OnRelease: func() { logger.Info("B key released!") },
		},
	}
}
