package state

import (
	"time"

	"github.com/google/uuid"

	"webcheck/common"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:  time.Now(),
		RunID:  uuid.NewString(),
		Format: common.OutputFmtText,
	}
}
