package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/raymarcher/internal/app/shaders"
	"github.com/Faultbox/raymarcher/internal/engine/resource"
	"github.com/Faultbox/raymarcher/internal/engine/shader"
	"github.com/Faultbox/raymarcher/internal/engine/shader/glsl"
	"github.com/Faultbox/raymarcher/internal/logger"
)

type programID int

const (
	programLit programID = iota
	programRaymarch
	programScreen
	programCount
)

var programSources = [programCount]struct {
	name, vert, frag string
}{
	programLit:      {"lit", shaders.DefaultVertex, shaders.DefaultFragment},
	programRaymarch: {"raymarch", shaders.ScreenVertex, shaders.RaymarchFragment},
	programScreen:   {"screen", shaders.ScreenVertex, shaders.ScreenFragment},
}

// compileFunc turns preprocessed sources into a program.
type compileFunc func(name, vert, frag string) (*shader.Program, error)

// programSet owns the application's shader programs and rebuilds them from
// source on demand.
type programSet struct {
	src     fs.FS
	compile compileFunc
	slots   [programCount]resource.Slot[*shader.Program]
}

// shaderSource returns the embedded sources, or dir on disk when set.
func shaderSource(dir string) fs.FS {
	if dir == "" {
		return shaders.FS
	}
	return os.DirFS(dir)
}

func newProgramSet(src fs.FS, compile compileFunc) *programSet {
	return &programSet{src: src, compile: compile}
}

// load (re)builds every program. A program that fails keeps its previous
// version; the failures are returned together.
func (p *programSet) load() error {
	var errs []error
	for id := range p.slots {
		s := programSources[id]
		err := p.slots[id].Reload(func() (*shader.Program, error) {
			vert, err := glsl.Load(p.src, s.vert)
			if err != nil {
				return nil, err
			}
			frag, err := glsl.Load(p.src, s.frag)
			if err != nil {
				return nil, err
			}
			return p.compile(s.name, vert, frag)
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s program: %w", s.name, err))
			continue
		}
		logger.Debug("program built", zap.String("program", s.name), zap.Int("generation", p.slots[id].Generation()))
	}
	return errors.Join(errs...)
}

// ready reports whether every program has been built at least once.
func (p *programSet) ready() bool {
	for id := range p.slots {
		if _, ok := p.slots[id].Get(); !ok {
			return false
		}
	}
	return true
}

func (p *programSet) get(id programID) *shader.Program {
	prog, _ := p.slots[id].Get()
	return prog
}

func (p *programSet) release() {
	for id := range p.slots {
		p.slots[id].Release()
	}
}
