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
	started int
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager creates an empty manager.
func NewJobManager() *JobManager {
	return &JobManager{}
}

// Add registers a job. Jobs start in the order they were added.
func (jm *JobManager) Add(name string, job Job) {
	jm.jobs = append(jm.jobs, namedJob{name: name, job: job})
}

// Len returns the number of registered jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}

// StartAll starts all scheduled jobs.
// If one fails to start, the jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			jm.stopFirst(i)
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		jm.started = i + 1
	}
	return nil
}

// StopAll stops the started jobs, last started first.
func (jm *JobManager) StopAll() {
	jm.stopFirst(jm.started)
}

func (jm *JobManager) stopFirst(n int) {
	for i := n - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
	jm.started = 0
}
