// SPDX-License-Identifier: MIT
// Package: model
//
// OFF reader and writer.
//
// Determinism:
//   - Encode writes vertices with the shortest representation that
//     round-trips (strconv 'g', -1), so Decode(Encode(m)) reproduces m.
//   - Decode reads records in file order; anything after the last
//     announced face is ignored and reported with Logger.Warn.

package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgeom/vector"
)

const offHeader = "OFF"

// maxPrealloc caps the capacity reserved from the counts line; records
// beyond it are appended as they are read.
const maxPrealloc = 1 << 16

// lineReader yields non-blank, comment-stripped lines split into fields.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (r *lineReader) next() ([]string, error) {
	for r.sc.Scan() {
		r.line++
		text := r.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if f := strings.Fields(text); len(f) > 0 {
			return f, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}

// Decode reads an OFF mesh from r and builds a Model from it.
func Decode(r io.Reader, opts ...Option) (*Model, error) {
	o := resolve(opts)
	vs, faces, err := decodeOFF(r, o)
	if err != nil {
		return nil, modelErrorf(methodDecode, err)
	}
	m, err := build(vs, faces, o)
	if err != nil {
		return nil, modelErrorf(methodDecode, err)
	}

	return m, nil
}

func decodeOFF(r io.Reader, o Options) ([]vector.Vec3, [][]int, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	fields, err := lr.next()
	if err != nil {
		return nil, nil, eofAs(err, "missing counts")
	}
	if fields[0] == offHeader {
		fields = fields[1:]
		if len(fields) == 0 {
			if fields, err = lr.next(); err != nil {
				return nil, nil, eofAs(err, "missing counts")
			}
		}
	}
	nv, nf, err := parseCounts(fields)
	if err != nil {
		return nil, nil, lineError(lr.line, "%w", err)
	}

	vs := make([]vector.Vec3, 0, min(nv, maxPrealloc))
	for i := 0; i < nv; i++ {
		if fields, err = lr.next(); err != nil {
			return nil, nil, eofAs(err, "vertex %d of %d", i, nv)
		}
		v, err := parseVertex(fields)
		if err != nil {
			return nil, nil, lineError(lr.line, "%w", err)
		}
		vs = append(vs, v)
	}

	faces := make([][]int, 0, min(nf, maxPrealloc))
	for i := 0; i < nf; i++ {
		if fields, err = lr.next(); err != nil {
			return nil, nil, eofAs(err, "face %d of %d", i, nf)
		}
		face, err := parseFace(fields)
		if err != nil {
			return nil, nil, lineError(lr.line, "%w", err)
		}
		faces = append(faces, face)
	}

	if _, err = lr.next(); err == nil {
		o.Logger.Warn("ignoring content after last face", "name", o.Name, "line", lr.line)
	} else if !errors.Is(err, io.EOF) {
		return nil, nil, err
	}

	return vs, faces, nil
}

// eofAs turns a premature io.EOF into ErrCount; read errors pass through.
func eofAs(err error, format string, args ...any) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf(format+": %w", append(args, ErrCount)...)
	}

	return err
}

func parseCounts(fields []string) (nv, nf int, err error) {
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("counts line needs V F [E]: %w", ErrSyntax)
	}
	n := make([]int, 0, 3)
	for _, f := range fields[:min(len(fields), 3)] {
		x, err := strconv.Atoi(f)
		if err != nil {
			return 0, 0, fmt.Errorf("count %q: %w", f, ErrSyntax)
		}
		if x < 0 {
			return 0, 0, fmt.Errorf("negative count %d: %w", x, ErrCount)
		}
		n = append(n, x)
	}

	return n[0], n[1], nil
}

func parseVertex(fields []string) (vector.Vec3, error) {
	if len(fields) < 3 {
		return vector.Vec3{}, fmt.Errorf("vertex needs x y z, got %d fields: %w", len(fields), ErrSyntax)
	}
	xyz := make([]float64, 3)
	for i, f := range fields[:3] {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return vector.Vec3{}, fmt.Errorf("coordinate %q: %w", f, ErrSyntax)
		}
		xyz[i] = x
	}

	return vector.AsVector3D(xyz)
}

func parseFace(fields []string) ([]int, error) {
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("face arity %q: %w", fields[0], ErrSyntax)
	}
	if len(fields)-1 < n {
		return nil, fmt.Errorf("face announces %d indices, has %d: %w", n, len(fields)-1, ErrSyntax)
	}
	face := make([]int, n)
	for i, f := range fields[1 : n+1] {
		if face[i], err = strconv.Atoi(f); err != nil {
			return nil, fmt.Errorf("face index %q: %w", f, ErrSyntax)
		}
	}

	return face, nil
}

// Load decodes the OFF file at path. The model is named after the file
// (base name without extension) unless WithName is given.
func Load(path string, opts ...Option) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, modelErrorf(methodLoad, err)
	}
	defer f.Close()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if base != "" {
		opts = append([]Option{WithName(base)}, opts...)
	}
	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", methodLoad, path, err)
	}

	return m, nil
}

// Encode writes m as OFF text. Vertices are written as stored, so a model
// loaded WithTransform is saved in its transformed coordinates.
func Encode(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d %d\n", offHeader, len(m.Vertices), len(m.Faces), m.EdgeCount())
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "%s %s %s\n", ftoa(v[0]), ftoa(v[1]), ftoa(v[2]))
	}
	for _, face := range m.Faces {
		bw.WriteString(strconv.Itoa(len(face)))
		for _, vi := range face {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(vi))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return modelErrorf(methodEncode, err)
	}

	return nil
}

func ftoa(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
