// pkg/entity/system.go
package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/opd-ai/go-orrery/pkg/config"
	"github.com/opd-ai/go-orrery/pkg/physics"
)

// System is the data-driven body table. It owns every body for the
// lifetime of the process.
type System struct {
	bodies []*Body
	roots  []*Body
	byName map[string]*Body
}

// NewSystem builds the body table from configuration. Parents must be
// declared before their children.
func NewSystem(cfgs []config.BodyConfig) (*System, error) {
	s := &System{
		byName: make(map[string]*Body, len(cfgs)),
	}

	for i, c := range cfgs {
		if _, dup := s.byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate body %q", c.Name)
		}

		body := &Body{
			ID:          ID(i + 1),
			Name:        c.Name,
			TextureFile: c.Texture,
			Radius:      c.Radius,
			OrbitRadius: c.OrbitRadius,
			Angle:       physics.NormalizeDegrees(c.Angle),
			Speed:       c.Speed,
			Spin:        c.Spin,
		}
		if c.Ring != nil {
			body.Ring = &Ring{
				TextureFile: c.Ring.Texture,
				InnerFactor: c.Ring.InnerFactor,
				OuterFactor: c.Ring.OuterFactor,
			}
		}

		if c.Parent != "" {
			parent, ok := s.byName[c.Parent]
			if !ok {
				return nil, fmt.Errorf("body %q: unknown parent %q", c.Name, c.Parent)
			}
			body.Parent = parent
			parent.Children = append(parent.Children, body)
		} else {
			s.roots = append(s.roots, body)
		}

		s.bodies = append(s.bodies, body)
		s.byName[c.Name] = body
	}

	return s, nil
}

// Bodies returns every body in table order
func (s *System) Bodies() []*Body {
	return s.bodies
}

// Roots returns the bodies without a parent in table order
func (s *System) Roots() []*Body {
	return s.roots
}

// Body looks up a body by name
func (s *System) Body(name string) (*Body, bool) {
	b, ok := s.byName[name]
	return b, ok
}

// Advance applies one tick to every body
func (s *System) Advance() {
	for _, b := range s.bodies {
		b.Advance()
	}
}

// Walk visits every body depth-first in draw order: each root in table
// order, then its children, each child immediately after its parent's
// subtree begins. frame is the body's world frame.
func (s *System) Walk(fn func(b *Body, frame mgl32.Mat4)) {
	for _, root := range s.roots {
		walk(root, mgl32.Ident4(), fn)
	}
}

func walk(b *Body, parentFrame mgl32.Mat4, fn func(*Body, mgl32.Mat4)) {
	frame := physics.Compose(parentFrame, b.Local())
	fn(b, frame)
	for _, child := range b.Children {
		walk(child, frame, fn)
	}
}

// WorldTransform composes the body's frame from its parent chain
func (s *System) WorldTransform(b *Body) mgl32.Mat4 {
	if b.Parent == nil {
		return b.Local()
	}
	return physics.Compose(s.WorldTransform(b.Parent), b.Local())
}

// WorldPosition returns the centre of the body in scene coordinates
func (s *System) WorldPosition(b *Body) mgl32.Vec3 {
	return physics.Position(s.WorldTransform(b))
}
