package tasks

import (
	"medscribe.com/scribe/redis"
	"medscribe.com/scribe/types"
)

const EncountersDB redis.DB = 2

type TaskStatus string

const (
	TaskStatusProcessing       TaskStatus = "processing"
	TaskStatusSubmitted        TaskStatus = "submitted"
	TaskStatusStarted          TaskStatus = "started"
	TaskStatusFailed           TaskStatus = "failed"
	TaskStatusCompletedSuccess TaskStatus = "completed - success"
	TaskStatusCompletedFailure TaskStatus = "completed - failure"
	TaskStatusCanceled         TaskStatus = "canceled"
)

func (s TaskStatus) Complete() bool {
	return s == TaskStatusCompletedSuccess || s == TaskStatusCompletedFailure || s == TaskStatusCanceled
}

func (s TaskStatus) Submitted() bool {
	return s == TaskStatusSubmitted || s == TaskStatusStarted || s == TaskStatusProcessing
}

// EncounterTask is the per-transcript task document. Other workers own other
// entries of task_statuses; this service only ever touches "scribe".
type EncounterTask struct {
	JobID        string                  `json:"job_id"`
	TextFileKey  string                  `json:"text_file_key"`
	Patient      types.PatientAttributes `json:"patient"`
	TaskStatuses EncounterTaskStatuses   `json:"task_statuses"`
}

type EncounterTaskStatuses struct {
	Scribe EncounterTaskInfo `json:"scribe"`
}

type EncounterTaskInfo struct {
	ResultsFileKey string     `json:"results_file_key"`
	StartedAt      *string    `json:"started_at"`
	CompletedAt    *string    `json:"completed_at"`
	Attempts       int        `json:"attempts"`
	Status         TaskStatus `json:"status"`
	Dependencies   []string   `json:"dependencies"`
	ErrorMessages  []string   `json:"error_messages"`
}

type EncounterTasks struct {
	client redis.Client
}

func (tasks EncounterTasks) Get(redisKey string) (*EncounterTask, error) {
	var task EncounterTask
	err := tasks.client.GetDocument(redisKey, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (tasks EncounterTasks) Update(redisKey string, updateFunc func(task *EncounterTask)) error {
	var task EncounterTask
	return tasks.client.UpdateDocument(redisKey, &task, func() {
		updateFunc(&task)
	})
}
