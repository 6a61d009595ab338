package worker

import (
	"fmt"
	"path"
	"time"

	"medscribe.com/scribe/utils"
)

func getResultsFileKey(task *Task) string {
	return path.Join(
		"processed",
		"encounters",
		task.redisKey,
		fmt.Sprintf("%s.scribe_results.json", task.redisKey),
	)
}

func getFormattedNow() *string {
	now := time.Now().UTC().Format(utils.RFC3339Micro)
	return &now
}
