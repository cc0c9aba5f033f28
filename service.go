package chanmesh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/chanmesh/allocator/process"
	"github.com/viant/chanmesh/extension"
	"github.com/viant/chanmesh/service/meta"
	"github.com/viant/x"
)

// Service is the high-level façade wiring configuration, message-type
// registration and the allocator group together.
type Service struct {
	config         *Config
	metaService    *meta.Service
	types          *extension.Types
	extensionTypes []*x.Type
	metaBaseURL    string
	metaFsOptions  []storage.Option

	mux        sync.Mutex
	allocators []*process.Process
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	for i := range s.extensionTypes {
		s.types.Register(s.extensionTypes[i])
	}
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.types == nil {
		s.types = extension.NewTypes()
	}
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
}

// RegisterExtensionTypes registers message types so that topology output
// names channel slots by their registered name.
func (s *Service) RegisterExtensionTypes(types ...*x.Type) {
	for i := range types {
		s.types.Register(types[i])
	}
}

// Types returns the message-type registry.
func (s *Service) Types() *extension.Types { return s.types }

// Config returns the effective configuration.
func (s *Service) Config() *Config { return s.config }

// LoadProfile loads a YAML mesh profile via the meta service and applies
// it. Profiles can only be applied before the allocator group is built.
func (s *Service) LoadProfile(ctx context.Context, location string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.allocators != nil {
		return fmt.Errorf("cannot load profile %v: mesh already built", location)
	}
	config := &Config{}
	if err := s.metaService.Load(ctx, location, config); err != nil {
		return err
	}
	if config.Mesh.Workers == 0 {
		config.Mesh.Workers = s.config.Mesh.Workers
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid profile %v: %w", location, err)
	}
	s.config = config
	return nil
}

// Allocators returns the connected allocator group sharing one channel
// table, building it on first use from the configured worker count. The
// returned slice is meant to be distributed one handle per worker.
func (s *Service) Allocators() []*process.Process {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.allocators == nil {
		s.allocators = process.NewVector(s.config.Mesh.Workers)
	}
	return s.allocators
}

// TopologySlot describes one allocated channel slot of the shared table.
type TopologySlot struct {
	ID       string    `json:"id" yaml:"id"`
	Position int       `json:"position" yaml:"position"`
	Type     string    `json:"type" yaml:"type"`
	Created  time.Time `json:"created" yaml:"created"`
	Takes    int       `json:"takes" yaml:"takes"`
}

// Topology returns a snapshot of the shared channel table, one entry per
// allocated slot, with slot types resolved through the type registry. It
// returns nil before the mesh has been built.
func (s *Service) Topology() []TopologySlot {
	s.mux.Lock()
	group := s.allocators
	s.mux.Unlock()
	if len(group) == 0 {
		return nil
	}
	slots := group[0].Topology()
	result := make([]TopologySlot, len(slots))
	for i, slot := range slots {
		result[i] = TopologySlot{
			ID:       slot.ID,
			Position: slot.Position,
			Type:     s.types.NameFor(slot.Type),
			Created:  slot.Created,
			Takes:    slot.Takes,
		}
	}
	return result
}

// New creates a new mesh service.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}
