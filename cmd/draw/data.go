package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/charts3d"
	"github.com/midbel/slices"
)

// columns are the indexes of the fields of a row. A negative index disables the
// field.
type columns struct {
	X     int
	Y     int
	Z     int
	W     int
	Label int
}

func (c columns) max() int {
	all := []int{c.X, c.Y, c.Z, c.W, c.Label}
	n := slices.Fst(all)
	for _, i := range slices.Rest(all) {
		if i > n {
			n = i
		}
	}
	return n
}

func readSerie(file string, cols columns, delim rune) (charts3d.Serie, error) {
	r, err := os.Open(file)
	if err != nil {
		return charts3d.Serie{}, err
	}
	defer r.Close()

	points, err := readPoints(r, file, cols, delim)
	if err != nil {
		return charts3d.Serie{}, err
	}
	return charts3d.NewSerie(getIdent(file), charts3d.Transparent, points...), nil
}

func readPoints(r io.Reader, file string, cols columns, delim rune) ([]charts3d.Point, error) {
	var (
		rs     = csv.NewReader(r)
		points []charts3d.Point
		line   int
	)
	rs.Comma = delim
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		line++
		if n := cols.max(); n >= len(row) {
			return nil, ColumnError{
				File:   file,
				Line:   line,
				Column: n,
				Count:  len(row),
			}
		}
		pt, err := getPoint(row, cols)
		if err != nil {
			if line == 1 && len(points) == 0 {
				continue
			}
			var perr ParseError
			if errors.As(err, &perr) {
				perr.File = file
				perr.Line = line
				return nil, perr
			}
			return nil, err
		}
		points = append(points, pt)
	}
	return points, nil
}

func getPoint(row []string, cols columns) (charts3d.Point, error) {
	var (
		pt  charts3d.Point
		err error
	)
	if pt.X, err = getNumber(row, cols.X); err != nil {
		return pt, err
	}
	if pt.Y, err = getNumber(row, cols.Y); err != nil {
		return pt, err
	}
	if pt.Z, err = getNumber(row, cols.Z); err != nil {
		return pt, err
	}
	if cols.W >= 0 {
		if pt.W, err = getNumber(row, cols.W); err != nil {
			return pt, err
		}
		pt.HasW = true
	}
	if cols.Label >= 0 {
		pt.Label = strings.TrimSpace(row[cols.Label])
	}
	return pt, nil
}

func getNumber(row []string, col int) (float64, error) {
	if col < 0 {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
	if err != nil {
		return 0, ParseError{
			Column: col,
			Err:    err,
		}
	}
	return f, nil
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}

// getAxis builds the configuration of an axis from a min:max domain. An empty
// side of the domain is left to auto.
func getAxis(title, dom string, log bool) (charts3d.AxisConfig, error) {
	axis := charts3d.DefaultAxis()
	axis.Title = title
	axis.Logarithmic = log
	if dom == "" {
		return axis, nil
	}
	vs := strings.Split(dom, ":")
	if len(vs) != 2 {
		return axis, fmt.Errorf("%s: invalid number of values given for domain", dom)
	}
	if str := slices.Fst(vs); str != "" {
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return axis, err
		}
		axis.Min = charts3d.Fixed(f)
	}
	if str := slices.Lst(vs); str != "" {
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return axis, err
		}
		axis.Max = charts3d.Fixed(f)
	}
	return axis, nil
}

// getKeys parses serie:point pairs.
func getKeys(list []string) ([]charts3d.SliceKey, error) {
	var keys []charts3d.SliceKey
	for _, str := range list {
		vs := strings.Split(str, ":")
		if len(vs) != 2 {
			return nil, fmt.Errorf("%s: expected serie:point", str)
		}
		s, err := strconv.Atoi(slices.Fst(vs))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", str, err)
		}
		p, err := strconv.Atoi(slices.Lst(vs))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", str, err)
		}
		keys = append(keys, charts3d.SliceKey{Serie: s, Point: p})
	}
	return keys, nil
}
