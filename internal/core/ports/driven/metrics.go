package driven

import (
	"time"

	"github.com/custodia-labs/docproof/internal/core/domain"
)

// PipelineMetrics records pipeline activity.
type PipelineMetrics interface {
	// ObserveStage records how long a stage took and whether it failed.
	ObserveStage(stage domain.RunState, elapsed time.Duration, err error)

	// ObserveRun records a finished run.
	ObserveRun(run *domain.Run)
}
