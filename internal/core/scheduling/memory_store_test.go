package scheduling

import (
	"context"
	"sync"

	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// memoryJobStore is a map-backed JobStore used to check end states
type memoryJobStore struct {
	mu     sync.Mutex
	nextID uint
	jobs   map[ports.JobKeyData]ports.JobData
}

func newMemoryJobStore() *memoryJobStore {
	return &memoryJobStore{jobs: make(map[ports.JobKeyData]ports.JobData)}
}

func (s *memoryJobStore) Upsert(_ context.Context, job *ports.JobData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.jobs[job.Key]; ok {
		job.ID = existing.ID
	} else {
		s.nextID++
		job.ID = s.nextID
	}
	stored := *job
	stored.Args = append([]uint(nil), job.Args...)
	s.jobs[job.Key] = stored
	return nil
}

func (s *memoryJobStore) FindByKey(_ context.Context, key ports.JobKeyData) (*ports.JobData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[key]
	if !ok {
		return nil, errors.NewNotFoundError("job not found")
	}
	job.Args = append([]uint(nil), job.Args...)
	return &job, nil
}

func (s *memoryJobStore) Delete(_ context.Context, key ports.JobKeyData) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[key]; !ok {
		return false, nil
	}
	delete(s.jobs, key)
	return true, nil
}

func (s *memoryJobStore) ListEnabled(_ context.Context) ([]*ports.JobData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*ports.JobData
	for _, job := range s.jobs {
		if job.Enabled {
			j := job
			out = append(out, &j)
		}
	}
	return out, nil
}

func (s *memoryJobStore) CountByKind(_ context.Context, kind string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for key := range s.jobs {
		if key.Kind == kind {
			n++
		}
	}
	return n, nil
}

func (s *memoryJobStore) snapshot() map[ports.JobKeyData]ports.JobData {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[ports.JobKeyData]ports.JobData, len(s.jobs))
	for k, v := range s.jobs {
		out[k] = v
	}
	return out
}
