// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
)

// CSVPath returns the per-algorithm results file inside dir.
func CSVPath(dir string, res Result) string {
	return filepath.Join(dir, res.Algorithm.String()+".csv")
}

// AppendCSV appends one "size,avg_us" row for res to <dir>/<algorithm>.csv,
// creating dir and the file if needed. There is no header row; repeated
// runs accumulate in the same file.
func AppendCSV(dir string, res Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	path := CSVPath(dir, res)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}

	w := csv.NewWriter(f)
	record := []string{
		strconv.Itoa(res.Size),
		strconv.FormatInt(res.Avg().Microseconds(), 10),
	}
	if err = w.Write(record); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	w.Flush()
	if err = w.Error(); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "flushing %s", path)
	}

	return errors.Wrapf(f.Close(), "closing %s", path)
}
