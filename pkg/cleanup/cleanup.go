package cleanup

import (
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in reverse registration order and forgets them.
func CleanUp() error {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()

	var errs error
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		logger := log.WithField("job", j.Name)
		logger.Info("cleanup job started")
		if err := j.F(); err != nil {
			logger.WithError(err).Error("cleanup job failed")
			errs = errors.Join(errs, err)
			continue
		}
		logger.Info("cleaned")
	}
	return errs
}
