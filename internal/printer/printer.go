package printer

import (
	"github.com/makspress/pressline/internal/app/dashboard"
	"github.com/makspress/pressline/internal/model"
)

// Printer knows how to print production board information in different formats.
type Printer interface {
	PrintJobList(jobs []model.PositionedJob) error
	PrintDashboard(d dashboard.Dashboard) error
	PrintVersionList(versions []model.ManuscriptVersion) error
	PrintMessage(msg string) error
}
