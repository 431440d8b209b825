package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"singmeasong/pkg/discovery"
	"singmeasong/pkg/logging"
)

// staleAfter is how long an instance stays active without a heartbeat.
const staleAfter = 5 * time.Second

// Registry defines an in-memory service registry.
type Registry struct {
	sync.RWMutex
	serviceAddrs map[string]map[string]*serviceInstance
	logger       *zap.Logger
	now          func() time.Time
}

// serviceInstance defines a service instance record in the registry.
type serviceInstance struct {
	hostPort   string
	lastActive time.Time
}

// NewRegistry creates a new in-memory service registry instance.
func NewRegistry(logger *zap.Logger) *Registry {
	logger = logger.With(
		zap.String(logging.FieldComponent, "discovery"),
		zap.String(logging.FieldType, "memory"),
	)
	return &Registry{
		serviceAddrs: make(map[string]map[string]*serviceInstance),
		logger:       logger,
		now:          time.Now,
	}
}

// Register creates a service record in the registry.
func (r *Registry) Register(_ context.Context, instanceID string, serviceName string, hostPort string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.serviceAddrs[serviceName]; !ok {
		r.serviceAddrs[serviceName] = make(map[string]*serviceInstance)
	}
	r.serviceAddrs[serviceName][instanceID] = &serviceInstance{hostPort: hostPort, lastActive: r.now()}
	return nil
}

// Deregister removes a service record from the registry.
func (r *Registry) Deregister(_ context.Context, instanceID string, serviceName string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.serviceAddrs[serviceName]; !ok {
		return nil
	}
	delete(r.serviceAddrs[serviceName], instanceID)
	return nil
}

// ReportHealthyState is a push mechanism for reporting healthy state to the registry.
func (r *Registry) ReportHealthyState(instanceID string, serviceName string) error {
	r.Lock()
	defer r.Unlock()
	instances, ok := r.serviceAddrs[serviceName]
	if !ok {
		return fmt.Errorf("service %s is not registered yet", serviceName)
	}
	i, ok := instances[instanceID]
	if !ok {
		return fmt.Errorf("instance %s of service %s is not registered yet", instanceID, serviceName)
	}
	i.lastActive = r.now()
	return nil
}

// ServiceAddresses returns the list of addresses of active instances of the given service.
func (r *Registry) ServiceAddresses(_ context.Context, serviceName string) ([]string, error) {
	r.RLock()
	defer r.RUnlock()
	var res []string
	for instanceID, i := range r.serviceAddrs[serviceName] {
		if i.lastActive.Before(r.now().Add(-staleAfter)) {
			r.logger.Debug("Skipping inactive instance",
				zap.String("instance", instanceID),
				zap.String(logging.FieldService, serviceName),
			)
			continue
		}
		res = append(res, i.hostPort)
	}
	if len(res) == 0 {
		return nil, discovery.ErrNotFound
	}
	return res, nil
}
