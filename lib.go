package tinylisp

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed lib/*.lisp
var libFS embed.FS

// LoadLib evaluates the embedded prelude in env.
func LoadLib(env *Env) error {
	fis, err := fs.ReadDir(libFS, "lib")
	if err != nil {
		return err
	}
	for _, fi := range fis {
		f, err := libFS.Open(path.Join("lib", fi.Name()))
		if err != nil {
			return err
		}
		_, err = env.RunReader(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", fi.Name(), err)
		}
	}

	return nil
}
