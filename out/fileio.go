// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SaveCsv writes the time series to a comma-separated-values file
//  dirout -- directory to save file; created if absent
//  fname  -- file name; e.g. results.csv
func SaveCsv(dirout, fname string, verbose bool) (err error) {
	if R == nil {
		return chk.Err("results are not available. Start must be called first")
	}
	var buf bytes.Buffer
	io.Ff(&buf, "t,c,q")
	if R.Mb != nil {
		io.Ff(&buf, ",mb")
	}
	io.Ff(&buf, "\n")
	for i := 0; i < len(R.T); i++ {
		io.Ff(&buf, "%g,%g,%g", R.T[i], R.C[i], R.Q[i])
		if R.Mb != nil {
			io.Ff(&buf, ",%g", R.Mb[i])
		}
		io.Ff(&buf, "\n")
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return
	}
	return save_file(path.Join(dirout, fname), &buf, verbose)
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() { err = fil.Close() }()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
