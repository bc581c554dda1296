package jobs

import (
	"fmt"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []namedJob
	started []Job
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager creates a job manager running the cache report job.
func NewJobManager(cacheReportJob *CacheReportJob) *JobManager {
	jm := &JobManager{}
	jm.Add("cache report", cacheReportJob)
	return jm
}

// Add registers a job to be started by StartAll.
func (jm *JobManager) Add(name string, job Job) {
	jm.jobs = append(jm.jobs, namedJob{name: name, job: job})
}

// StartAll starts all scheduled jobs in registration order.
// If one fails to start, the jobs already started are stopped and the error is returned.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		jm.started = append(jm.started, j.job)
	}
	return nil
}

// StopAll stops all started jobs gracefully, most recent first.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
