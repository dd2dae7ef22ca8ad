package nuclear

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/phil-mansfield/table"
)

// ReadTable reads a two column (energy, value) table from the given file.
// Columns may be separated by whitespace.
func ReadTable(file string) (Table, error) {
	cols, err := table.ReadTable(file, []int{0, 1}, nil)
	if err != nil {
		return Table{}, fmt.Errorf("reading table %s: %v", file, err)
	}
	return Table{E: cols[0], V: cols[1]}, nil
}

// ReadAngularTable reads an angular distribution table from the given file:
// one row per energy breakpoint, the first column the energy and the
// remaining columns the Legendre coefficients in ascending order. Rows may
// have different numbers of coefficients, and columns may be separated by
// whitespace or commas, so this is parsed by hand rather than with the
// fixed-column table reader.
func ReadAngularTable(file string) (AngularTable, error) {
	f, err := os.Open(file)
	if err != nil {
		return AngularTable{}, err
	}
	defer f.Close()

	sep := func(r rune) bool { return r == ',' || unicode.IsSpace(r) }

	out := AngularTable{}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.FieldsFunc(scanner.Text(), sep)
		if len(fields) == 0 {
			continue
		}
		if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
			// Header line.
			continue
		}
		if len(fields) < 2 {
			return AngularTable{}, fmt.Errorf(
				"%s: line %d has no coefficient columns", file, line,
			)
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			row[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return AngularTable{}, fmt.Errorf(
					"%s: line %d, column %d: %v", file, line, i+1, err,
				)
			}
		}
		out.E = append(out.E, row[0])
		out.Coeffs = append(out.Coeffs, row[1:])
	}
	if err := scanner.Err(); err != nil {
		return AngularTable{}, err
	}
	if len(out.E) == 0 {
		return AngularTable{}, fmt.Errorf("%s: no data rows", file)
	}
	return out, nil
}
