// Package job contains scheduled maintenance jobs for the staffdir
// panel, run through the server's cron scheduler.
package job

import (
	"os"

	"staffdir/logger"
	"staffdir/util/common"
)

// ClearLogsJob truncates the panel log file, keeping one previous
// generation alongside it.
type ClearLogsJob struct{}

func NewClearLogsJob() *ClearLogsJob {
	return new(ClearLogsJob)
}

// Run is an interface method of the cron Job interface.
func (j *ClearLogsJob) Run() {
	defer common.Recover("clear logs job")

	logPath := logger.GetLogPath()
	prevPath := logPath + ".prev"

	content, err := os.ReadFile(logPath)
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}

	if err := os.WriteFile(prevPath, content, 0o660); err != nil {
		logger.Warning("clear logs job err:", err)
	}

	if err := os.Truncate(logPath, 0); err != nil {
		logger.Warning("clear logs job err:", err)
	}
}
