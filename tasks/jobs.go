package tasks

import (
	"medscribe.com/scribe/redis"
)

const JobsDB redis.DB = 1

// JobTask groups the encounters of one submission. FailedTasks is consulted
// when the job requests stop-on-failure semantics.
type JobTask struct {
	UserCanceled            bool                `json:"user_canceled"`
	StopEncountersOnFailure bool                `json:"stop_encounters_on_failure"`
	FailedTasks             []string            `json:"failed_tasks"`
	FailedEncounters        map[string][]string `json:"failed_encounters"`
}

type JobTasks struct {
	client redis.Client
}

func (tasks JobTasks) GetCached(redisKey string) (*JobTask, error) {
	var task JobTask
	key := cachedPropertiesKey(redisKey)
	err := tasks.client.GetDocument(key, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies updateFunc to both the job document and its cached
// properties copy, so readers of either key observe the change.
func (tasks JobTasks) Update(redisKey string, updateFunc func(task *JobTask)) error {
	var task JobTask
	err := tasks.client.UpdateDocument(redisKey, &task, func() {
		updateFunc(&task)
	})
	if err != nil {
		return err
	}
	var cached JobTask
	return tasks.client.UpdateDocument(cachedPropertiesKey(redisKey), &cached, func() {
		updateFunc(&cached)
	})
}
