package joint

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"gojoint/internal/modeldb"
)

// Capabilities describes the optional features of a synthesis run, resolved
// once up front instead of probed at each call site.
type Capabilities struct {
	// NormalHint, when set, orients the column's local frame so its web plane
	// contains the hinted direction (normally the beam axis).
	NormalHint *v3.Vec

	// PanelThickness is the panel-zone web plate thickness. Zero or negative
	// means "use the column web thickness".
	PanelThickness float64

	// GussetThickness is the corner stiffener plate thickness. Zero or
	// negative means stiffeners are not configured and the corner patches
	// are omitted with a diagnostic.
	GussetThickness float64
}

// GussetConfigured reports whether corner stiffener patches are requested.
func (c Capabilities) GussetConfigured() bool {
	return c.GussetThickness > 0
}

// Session is one exclusive synthesis run against a model database. It owns
// the node id allocator (seeded from the database's node count) and the
// diagnostics accumulated while building a local submodel. A Session is used
// by a single goroutine; components run strictly one after another.
type Session struct {
	db       modeldb.Database
	caps     Capabilities
	nextNode int
	warnings []string
}

// NewSession opens a synthesis session over db. The id allocator continues
// from the ids already present so freshly generated nodes never collide with
// the global-model nodes carried into the local file.
func NewSession(db modeldb.Database, caps Capabilities) (*Session, error) {
	total, err := db.Total(modeldb.KindNode)
	if err != nil {
		return nil, err
	}
	return &Session{db: db, caps: caps, nextNode: total + 1}, nil
}

// Capabilities returns the feature set resolved for this run.
func (s *Session) Capabilities() Capabilities {
	return s.caps
}

// Warnf records a recoverable condition for the end-of-run report.
func (s *Session) Warnf(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns the diagnostics accumulated so far, in emission order.
func (s *Session) Warnings() []string {
	return s.warnings
}

// newNode allocates a fresh model-unique id and inserts the point. Ids are
// never reused within a session.
func (s *Session) newNode(xyz v3.Vec) (int, error) {
	id := s.nextNode
	if err := s.db.PutNode(id, xyz); err != nil {
		return 0, err
	}
	s.nextNode++
	return id, nil
}
