package raster

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ttpr0/go-evacuation/geo"
)

//*******************************************
// binary store
//*******************************************

// StoreGrid writes a grid to a little-endian binary file.
// Layout: rows, cols (int32), transform (4 float64), data (rows*cols float64).
func StoreGrid(grid *Grid, filename string) {
	buffer := bytes.Buffer{}

	binary.Write(&buffer, binary.LittleEndian, int32(grid.rows))
	binary.Write(&buffer, binary.LittleEndian, int32(grid.cols))
	binary.Write(&buffer, binary.LittleEndian, grid.transform)
	binary.Write(&buffer, binary.LittleEndian, grid.data)

	gridfile, _ := os.Create(filename)
	defer gridfile.Close()
	gridfile.Write(buffer.Bytes())
}

func LoadGrid(filename string) *Grid {
	_, err := os.Stat(filename)
	if errors.Is(err, os.ErrNotExist) {
		panic("file not found: " + filename)
	}

	griddata, _ := os.ReadFile(filename)
	reader := bytes.NewReader(griddata)

	var rows int32
	binary.Read(reader, binary.LittleEndian, &rows)
	var cols int32
	binary.Read(reader, binary.LittleEndian, &cols)
	var transform geo.Transform
	binary.Read(reader, binary.LittleEndian, &transform)

	grid := NewGrid(int(rows), int(cols), transform)
	binary.Read(reader, binary.LittleEndian, &grid.data)

	return grid
}

// StoreSurface writes a multi-band surface to a little-endian binary file.
func StoreSurface(surface *Surface, filename string) {
	buffer := bytes.Buffer{}

	binary.Write(&buffer, binary.LittleEndian, int32(surface.bands))
	binary.Write(&buffer, binary.LittleEndian, int32(surface.rows))
	binary.Write(&buffer, binary.LittleEndian, int32(surface.cols))
	binary.Write(&buffer, binary.LittleEndian, surface.transform)
	binary.Write(&buffer, binary.LittleEndian, surface.data)

	surfacefile, _ := os.Create(filename)
	defer surfacefile.Close()
	surfacefile.Write(buffer.Bytes())
}

func LoadSurface(filename string) *Surface {
	_, err := os.Stat(filename)
	if errors.Is(err, os.ErrNotExist) {
		panic("file not found: " + filename)
	}

	surfacedata, _ := os.ReadFile(filename)
	reader := bytes.NewReader(surfacedata)

	var bands int32
	binary.Read(reader, binary.LittleEndian, &bands)
	var rows int32
	binary.Read(reader, binary.LittleEndian, &rows)
	var cols int32
	binary.Read(reader, binary.LittleEndian, &cols)
	var transform geo.Transform
	binary.Read(reader, binary.LittleEndian, &transform)

	surface := NewSurface(int(bands), int(rows), int(cols), transform)
	binary.Read(reader, binary.LittleEndian, &surface.data)

	return surface
}

//*******************************************
// esri ascii grid
//*******************************************

// WriteASC writes a grid as ESRI ASCII grid. NaN cells are written as the
// given nodata value.
func WriteASC(grid *Grid, filename string, nodata float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	left, bottom, _, _ := grid.transform.Bounds(grid.rows, grid.cols)
	fmt.Fprintf(writer, "ncols %d\n", grid.cols)
	fmt.Fprintf(writer, "nrows %d\n", grid.rows)
	fmt.Fprintf(writer, "xllcorner %f\n", left)
	fmt.Fprintf(writer, "yllcorner %f\n", bottom)
	fmt.Fprintf(writer, "cellsize %f\n", grid.transform.CellSizeX)
	fmt.Fprintf(writer, "NODATA_value %s\n", strconv.FormatFloat(nodata, 'f', -1, 64))

	for r := 0; r < grid.rows; r++ {
		for c := 0; c < grid.cols; c++ {
			if c > 0 {
				writer.WriteByte(' ')
			}
			v := grid.Get(r, c)
			if math.IsNaN(v) {
				v = nodata
			}
			writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		writer.WriteByte('\n')
	}
	return writer.Flush()
}

// ReadASC reads an ESRI ASCII grid. Nodata cells are mapped to NaN.
func ReadASC(filename string) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)

	header := map[string]float64{}
	var values []float64
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 2 && !_isNumeric(fields[0]) {
			val, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid header line %q: %w", line, err)
			}
			header[strings.ToLower(fields[0])] = val
			continue
		}
		for _, field := range fields {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid cell value %q: %w", field, err)
			}
			values = append(values, val)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	rows := int(header["nrows"])
	cols := int(header["ncols"])
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("missing nrows/ncols header in %s", filename)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("expected %d cells, got %d in %s", rows*cols, len(values), filename)
	}
	cellsize := header["cellsize"]
	left := header["xllcorner"]
	bottom := header["yllcorner"]
	transform := geo.NewTransform(left, bottom+float64(rows)*cellsize, cellsize)

	grid := NewGrid(rows, cols, transform)
	nodata, has_nodata := header["nodata_value"]
	for i, v := range values {
		if has_nodata && v == nodata {
			grid.data[i] = math.NaN()
		} else {
			grid.data[i] = v
		}
	}
	return grid, nil
}

func _isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
