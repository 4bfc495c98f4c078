// Package modkit provides module wiring and core deps
package modkit

import (
	"pashtolex/internal/platform/config"
	"pashtolex/internal/platform/logger"
	dictdom "pashtolex/internal/services/dictionary/domain"
	morphdom "pashtolex/internal/services/morph/domain"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Dict  dictdom.ReaderPort
	Morph morphdom.Capability
}
