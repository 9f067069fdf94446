package grid

import (
	"sync"

	"github.com/penwyp/go-portfolio-grid/internal/core/model"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

// RefreshController decides when the project files need reloading
type RefreshController struct {
	dataLoader   *DataLoader
	refreshMutex sync.Mutex // Prevent concurrent refreshes
}

// NewRefreshController creates a new RefreshController instance
func NewRefreshController(dataLoader *DataLoader) *RefreshController {
	return &RefreshController{dataLoader: dataLoader}
}

// Refresh reloads the project files when any of them changed, or always when
// force is set. reloaded is false when nothing needed loading.
func (rc *RefreshController) Refresh(force bool) (projects []model.Project, reloaded bool, err error) {
	rc.refreshMutex.Lock()
	defer rc.refreshMutex.Unlock()

	if !force {
		changed := rc.dataLoader.IdentifyChangedFiles()
		if len(changed) == 0 {
			util.LogDebug("Project files unchanged, skipping reload")
			return nil, false, nil
		}
		util.LogDebugf("Changed project files: %v", changed)
	}

	projects, err = rc.dataLoader.Load()
	if err != nil {
		return nil, false, err
	}
	return projects, true, nil
}
