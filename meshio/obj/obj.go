// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj reads UV maps from the Wavefront OBJ file format (*.obj),
// with the diffuse colors of the associated materials (*.mtl).
// Only texture coordinates, faces, objects, groups and materials are
// used; positions are only counted so that vertex indexes resolve.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/plush/base/errors"
	"cogentcore.org/plush/geom"
	"github.com/lucasb-eyer/go-colorful"
)

// Decoder contains all decoded data from the obj and mtl files.
type Decoder struct {
	Objfile     string               // .obj filename (without path)
	Objdir      string               // path to .obj file
	Objects     []Object             // decoded objects
	Matlib      string               // name of the material lib
	Mtlfile     string               // path of the material lib that was read, if any
	Materials   map[string]*Material // maps material name to object
	NumVertices int                  // number of vertex positions
	Uvs         []geom.Point         // vertex texture coordinates
	Warnings    []string             // warning messages

	line         int       // current line number
	objCurrent   *Object   // current object
	matCurrent   *Material // current material
	groupCurrent []string  // current group names

	// groups of each vertex position, in the order the faces using the
	// vertex assigned them
	vertexGroups map[int][]string
}

// Object contains all information about one decoded object.
type Object struct {
	Name  string // Object name
	Faces []Face // Faces
}

// Face contains all information about an object face.
type Face struct {
	Vertices []int    // Indices to the face vertices
	Uvs      []int    // Indices to the face UV coordinates, or invIndex
	Material string   // Material name
	Groups   []string // Names of the groups the face is in
	line     int      // line of the face in the obj file
}

// Material contains the information about a material that is used
// for outlines.
type Material struct {
	Name       string         // Material name
	Diffuse    colorful.Color // Diffuse color reflectivity
	HasDiffuse bool           // whether Diffuse was set by a Kd line
	Opacity    float64        // Opacity factor
}

// Local constants
const (
	blanks   = "\r\n\t "
	invIndex = -1
	objType  = "obj"
	mtlType  = "mtl"

	// defaultGroup is the group name that exporters write for faces
	// that are in no group.
	defaultGroup = "default"
)

// New returns a new empty decoder.
func New() *Decoder {
	dec := &Decoder{}
	dec.Materials = make(map[string]*Material)
	dec.vertexGroups = make(map[int][]string)
	dec.line = 1
	return dec
}

// Open decodes the given .obj file and the material library that it
// names, or else the .mtl file with the same base name, if it exists.
func Open(fname string) (*Decoder, error) {
	dec := New()
	dec.Objdir, dec.Objfile = filepath.Split(fname)
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := dec.parse(f, dec.parseObjLine); err != nil {
		return nil, fmt.Errorf("obj: %s: %w", fname, err)
	}
	mtlf := dec.mtlFile(fname)
	if mf, err := os.Open(mtlf); err == nil {
		defer mf.Close()
		if err := dec.decodeMtl(mf); err != nil {
			return nil, fmt.Errorf("obj: %s: %w", mtlf, err)
		}
		dec.Mtlfile = mtlf
	} else if len(dec.Materials) > 0 {
		dec.appendWarn(mtlType, "material library not found: "+mtlf)
	}
	dec.finish()
	return dec, nil
}

// Decode decodes the obj data in obj and the material data in mtl,
// which may be nil.
func (dec *Decoder) Decode(obj, mtl io.Reader) error {
	if err := dec.parse(obj, dec.parseObjLine); err != nil {
		return fmt.Errorf("obj: %w", err)
	}
	if mtl != nil {
		if err := dec.decodeMtl(mtl); err != nil {
			return fmt.Errorf("obj: %w", err)
		}
	}
	dec.finish()
	return nil
}

// mtlFile returns the path of the material library for the given obj file.
func (dec *Decoder) mtlFile(fname string) string {
	if dec.Matlib != "" {
		return filepath.Join(dec.Objdir, dec.Matlib)
	}
	return strings.TrimSuffix(fname, filepath.Ext(fname)) + ".mtl"
}

func (dec *Decoder) decodeMtl(r io.Reader) error {
	dec.matCurrent = nil
	return dec.parse(r, dec.parseMtlLine)
}

// finish computes the groups of each vertex from the faces using it
// and logs the warnings.
func (dec *Decoder) finish() {
	for _, ob := range dec.Objects {
		for _, fc := range ob.Faces {
			for _, v := range fc.Vertices {
				for _, g := range fc.Groups {
					if !slices.Contains(dec.vertexGroups[v], g) {
						dec.vertexGroups[v] = append(dec.vertexGroups[v], g)
					}
				}
			}
		}
	}
	for _, w := range dec.Warnings {
		slog.Warn(w, "file", dec.Objfile)
	}
}

// parse reads the lines from the specified reader and dispatch them
// to the specified line parser.
func (dec *Decoder) parse(reader io.Reader, parseLine func(string) error) error {
	bufin := bufio.NewReader(reader)
	dec.line = 1
	for {
		// Reads next line and abort on errors (not EOF)
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.Trim(line, blanks)
		if perr := parseLine(line); perr != nil {
			return perr
		}
		if err == io.EOF {
			break
		}
		dec.line++
	}
	return nil
}

// Parses obj file line, dispatching to specific parsers
func (dec *Decoder) parseObjLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	switch ltype {
	case "mtllib":
		return dec.parseMatlib(fields[1:])
	case "o":
		return dec.parseObject(fields[1:])
	// Groups are kept per face and become the groups of its vertices
	case "g":
		dec.parseGroup(fields[1:])
	case "v":
		return dec.parseVertex(fields[1:])
	case "vt":
		return dec.parseTex(fields[1:])
	case "f":
		return dec.parseFace(fields[1:])
	case "usemtl":
		return dec.parseUsemtl(fields[1:])
	// Normals, smoothing and lines do not affect outlines
	case "vn", "s", "l", "vp":
	default:
		dec.appendWarn(objType, "field not supported: "+ltype)
	}
	return nil
}

// Parses a mtllib line:
// mtllib <name>
func (dec *Decoder) parseMatlib(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("Material library (mtllib) with no fields")
	}
	dec.Matlib = strings.Join(fields, " ")
	return nil
}

// Parses an object line:
// o <name>
func (dec *Decoder) parseObject(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("Object line (o) with no fields")
	}
	dec.Objects = append(dec.Objects, Object{Name: strings.Join(fields, " ")})
	dec.objCurrent = &dec.Objects[len(dec.Objects)-1]
	return nil
}

// Parses a group line:
// g [<name> ...]
func (dec *Decoder) parseGroup(fields []string) {
	dec.groupCurrent = nil
	for _, f := range fields {
		if f != defaultGroup {
			dec.groupCurrent = append(dec.groupCurrent, f)
		}
	}
}

// Parses a vertex position line, which is only counted:
// v <x> <y> <z> [w]
func (dec *Decoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("Less than 3 vertices in 'v' line")
	}
	for _, f := range fields[:3] {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return dec.formatError("'v' parse float error")
		}
	}
	dec.NumVertices++
	return nil
}

// Parses a vertex texture coordinate line:
// vt <u> <v> [w]
func (dec *Decoder) parseTex(fields []string) error {
	if len(fields) < 2 {
		return dec.formatError("Less than 2 texture coords. in 'vt' line")
	}
	var uv [2]float64
	for pos, f := range fields[:2] {
		val, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return dec.formatError("'vt' parse float error")
		}
		uv[pos] = val
	}
	dec.Uvs = append(dec.Uvs, geom.Pt(uv[0], uv[1]))
	return nil
}

// parseIndex parses a one-based, possibly negative, index into a list
// of n elements and returns the zero-based index.
func (dec *Decoder) parseIndex(s string, n int, what string) (int, error) {
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, dec.formatError(fmt.Sprintf("Face %s index %q is not a number", what, s))
	}
	switch {
	case val > 0:
		// Positive index is an absolute index
		val--
	case val < 0:
		// Negative index is relative to the last parsed element
		val += n
	default:
		return 0, dec.formatError(fmt.Sprintf("Face %s index value equal to 0", what))
	}
	if val < 0 || val >= n {
		return 0, dec.formatError(fmt.Sprintf("Face %s index %s out of range", what, s))
	}
	return val, nil
}

// parseFace parses a face decription line:
// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
func (dec *Decoder) parseFace(fields []string) error {
	if dec.objCurrent == nil {
		// if a face line is encountered before an object (o),
		// create a new "default" object. This 'handles' the case when
		// an o line is not specified (allowed in OBJ format)
		dec.parseObject([]string{fmt.Sprintf("unnamed%d", dec.line)})
	}
	if len(fields) < 3 {
		return dec.formatError("Face line with less 3 fields")
	}
	face := Face{
		Vertices: make([]int, len(fields)),
		Uvs:      make([]int, len(fields)),
		Groups:   dec.groupCurrent,
		line:     dec.line,
	}
	if dec.matCurrent != nil {
		face.Material = dec.matCurrent.Name
	}
	for pos, f := range fields {
		// Separate the current field in its components: v vt vn
		vfields := strings.Split(f, "/")
		vi, err := dec.parseIndex(vfields[0], dec.NumVertices, "vertex")
		if err != nil {
			return err
		}
		face.Vertices[pos] = vi
		face.Uvs[pos] = invIndex
		if len(vfields) > 1 && len(vfields[1]) > 0 {
			ti, err := dec.parseIndex(vfields[1], len(dec.Uvs), "uv")
			if err != nil {
				return err
			}
			face.Uvs[pos] = ti
		}
	}
	dec.objCurrent.Faces = append(dec.objCurrent.Faces, face)
	return nil
}

// parseUsemtl parses a "usemtl" decription line:
// usemtl <name>
func (dec *Decoder) parseUsemtl(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("Usemtl with no fields")
	}
	dec.matCurrent = dec.material(fields[0])
	return nil
}

// material returns the material with the given name, creating it if needed.
func (dec *Decoder) material(name string) *Material {
	mat := dec.Materials[name]
	if mat == nil {
		mat = &Material{Name: name, Diffuse: colorful.Color{R: 1, G: 1, B: 1}, Opacity: 1}
		dec.Materials[name] = mat
	}
	return mat
}

// Parses material file line, dispatching to specific parsers
func (dec *Decoder) parseMtlLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	if ltype != "newmtl" && dec.matCurrent == nil {
		return dec.formatError(fmt.Sprintf("'%s' before newmtl", ltype))
	}
	switch ltype {
	case "newmtl":
		if len(fields) < 2 {
			return dec.formatError("newmtl with no fields")
		}
		dec.matCurrent = dec.material(fields[1])
	case "d":
		return dec.parseDissolve(fields[1:])
	case "Kd":
		return dec.parseKd(fields[1:])
	// Other reflectivities and maps do not affect outline colors
	case "Ka", "Ke", "Ks", "Ni", "Ns", "Tr", "Tf", "illum", "map_Kd", "map_Ka", "map_Ks", "map_Bump", "map_d", "bump", "refl":
	default:
		dec.appendWarn(mtlType, "field not supported: "+ltype)
	}
	return nil
}

// Parses the dissolve factor (opacity)
// d <factor>
func (dec *Decoder) parseDissolve(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("'d' with no fields")
	}
	val, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return dec.formatError("'d' parse float error")
	}
	dec.matCurrent.Opacity = val
	return nil
}

// Parses diffuse reflectivity:
// Kd r g b
func (dec *Decoder) parseKd(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("'Kd' with less than 3 fields")
	}
	var colors [3]float64
	for pos, f := range fields[:3] {
		val, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return dec.formatError("'Kd' parse float error")
		}
		colors[pos] = val
	}
	dec.matCurrent.Diffuse = colorful.Color{R: colors[0], G: colors[1], B: colors[2]}
	dec.matCurrent.HasDiffuse = true
	return nil
}

func (dec *Decoder) formatError(msg string) error {
	return fmt.Errorf("%s in line:%d", msg, dec.line)
}

func (dec *Decoder) appendWarn(ftype string, msg string) {
	wline := fmt.Sprintf("%s(%d): %s", ftype, dec.line, msg)
	dec.Warnings = append(dec.Warnings, wline)
}

// errNoUVs is reported for faces without texture coordinates.
var errNoUVs = errors.New("face has no texture coordinates")
