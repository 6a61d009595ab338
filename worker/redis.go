package worker

import (
	"fmt"

	"medscribe.com/scribe/tasks"
)

type redisTransactions interface {
	getEncounterTask(redisKey string) (*tasks.EncounterTask, error)
	getJobTask(task *Task) (*tasks.JobTask, error)
	onTaskStarted(task *Task) error
	onTaskCancelled(task *Task, errorMessages ...string) error
	onTaskExceededRetries(task *Task, maxRetries int) error
	onTaskFailedWithError(task *Task, err error) error
	onTaskComplete(task *Task) error
	close()
}

type redisClientWrapper struct {
	tasksClient *tasks.Client
}

func (wrapper *redisClientWrapper) close() {
	wrapper.tasksClient.Close()
}

func (wrapper *redisClientWrapper) onTaskStarted(task *Task) error {
	err := wrapper.tasksClient.Encounters.Update(task.redisKey, func(task *tasks.EncounterTask) {
		task.TaskStatuses.Scribe.Status = tasks.TaskStatusStarted
		task.TaskStatuses.Scribe.Attempts += 1
		task.TaskStatuses.Scribe.StartedAt = getFormattedNow()
		task.TaskStatuses.Scribe.CompletedAt = nil
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskCancelled(task *Task, errorMessages ...string) error {
	err := wrapper.tasksClient.Encounters.Update(task.redisKey, func(encounterTask *tasks.EncounterTask) {
		encounterTask.TaskStatuses.Scribe.Status = tasks.TaskStatusCanceled
		encounterTask.TaskStatuses.Scribe.StartedAt = getFormattedNow()
		encounterTask.TaskStatuses.Scribe.CompletedAt = getFormattedNow()
		encounterTask.TaskStatuses.Scribe.Attempts += 1
		encounterTask.TaskStatuses.Scribe.ErrorMessages = append(
			encounterTask.TaskStatuses.Scribe.ErrorMessages,
			errorMessages...,
		)
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskExceededRetries(task *Task, maxRetries int) error {
	err := wrapper.tasksClient.Jobs.Update(task.encounterTask.JobID, func(jobTask *tasks.JobTask) {
		jobTask.FailedTasks = append(jobTask.FailedTasks, "scribe")
		if jobTask.FailedEncounters == nil {
			jobTask.FailedEncounters = make(map[string][]string)
		}
		jobTask.FailedEncounters[task.redisKey] = append(jobTask.FailedEncounters[task.redisKey], "scribe")
	})
	if err != nil {
		return err
	}
	err = wrapper.tasksClient.Encounters.Update(task.redisKey, func(encounterTask *tasks.EncounterTask) {
		encounterTask.TaskStatuses.Scribe.Status = tasks.TaskStatusCompletedFailure
		encounterTask.TaskStatuses.Scribe.StartedAt = getFormattedNow()
		encounterTask.TaskStatuses.Scribe.CompletedAt = getFormattedNow()
		encounterTask.TaskStatuses.Scribe.Attempts += 1
		encounterTask.TaskStatuses.Scribe.ErrorMessages = append(
			encounterTask.TaskStatuses.Scribe.ErrorMessages,
			fmt.Sprintf(
				"Task has exceeded retries. (Attempts: %d, max retries: %d )",
				encounterTask.TaskStatuses.Scribe.Attempts,
				maxRetries,
			),
		)
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskFailedWithError(task *Task, err error) error {
	return wrapper.tasksClient.Encounters.Update(task.redisKey, func(encounterTask *tasks.EncounterTask) {
		encounterTask.TaskStatuses.Scribe.Status = tasks.TaskStatusFailed
		encounterTask.TaskStatuses.Scribe.CompletedAt = getFormattedNow()
		encounterTask.TaskStatuses.Scribe.ErrorMessages = append(encounterTask.TaskStatuses.Scribe.ErrorMessages, err.Error())
	})
}

func (wrapper *redisClientWrapper) onTaskComplete(task *Task) error {
	return wrapper.tasksClient.Encounters.Update(task.redisKey, func(encounterTask *tasks.EncounterTask) {
		if !encounterTask.TaskStatuses.Scribe.Status.Complete() {
			encounterTask.TaskStatuses.Scribe.Status = tasks.TaskStatusCompletedSuccess
		}
		encounterTask.TaskStatuses.Scribe.CompletedAt = getFormattedNow()
		encounterTask.TaskStatuses.Scribe.ResultsFileKey = getResultsFileKey(task)
	})
}

func (wrapper *redisClientWrapper) getEncounterTask(redisKey string) (*tasks.EncounterTask, error) {
	return wrapper.tasksClient.Encounters.Get(redisKey)
}

func (wrapper *redisClientWrapper) getJobTask(task *Task) (*tasks.JobTask, error) {
	return wrapper.tasksClient.Jobs.GetCached(task.encounterTask.JobID)
}
